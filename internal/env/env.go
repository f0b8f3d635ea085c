package env

import (
	"os"
	"path/filepath"
)

// Build information, set with -ldflags "-X crush-hub/internal/env.SoftwareVer=..."
var (
	SoftwareVer   = "dev"
	BuildTime     = ""
	BuildTag      = ""
	BuildCommitId = ""
)

// (default: %USERPROFILE%/.crush-hub on Windows, $HOME/.crush-hub on Linux)
var CrushHubDir string = GetCrushHubDir()

/**
 * Get crush-hub directory path
 * @returns {string} Returns crush-hub directory path
 */
func GetCrushHubDir() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".crush-hub")
}
