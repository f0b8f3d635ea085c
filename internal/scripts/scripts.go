package scripts

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"strings"
	"text/template"

	"crush-hub/internal/binaries"
)

//go:embed templates/*.tmpl
var files embed.FS

var ErrUnknownScript = errors.New("unknown install script")

// Kinds maps a script name to its template file.
var Kinds = map[string]string{
	"unix":    "install.sh.tmpl",
	"windows": "install.ps1.tmpl",
}

var tmpl = template.Must(template.ParseFS(files, "templates/*.tmpl"))

type scriptData struct {
	BaseURL       string
	Platforms     string
	Architectures string
}

// Render returns the install script for kind with baseURL substituted.
func Render(kind, baseURL string) (string, error) {
	name, ok := Kinds[kind]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownScript, kind)
	}
	data := scriptData{
		BaseURL:       strings.TrimRight(baseURL, "/"),
		Platforms:     strings.Join(binaries.Platforms, ", "),
		Architectures: strings.Join(binaries.Architectures, ", "),
	}
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("render %s script: %w", kind, err)
	}
	return buf.String(), nil
}
