package binaries

import (
	"fmt"
	"strings"

	"crush-hub/internal/baseurl"
)

// BinaryName is the executable name outside windows.
const BinaryName = "crush"

var (
	Platforms     = []string{"linux", "darwin", "windows"}
	Architectures = []string{"amd64", "arm64"}
)

// Kind tags why a download request was rejected.
type Kind string

const (
	InvalidPlatform        Kind = "Invalid Platform"
	InvalidArchitecture    Kind = "Invalid Architecture"
	UnsupportedCombination Kind = "Unsupported Combination"
)

// Rejection is a validation failure the caller can fix by changing the request.
type Rejection struct {
	Kind    Kind
	Message string
}

func (r *Rejection) Error() string {
	return string(r.Kind) + ": " + r.Message
}

// Target is where a valid download request is redirected.
type Target struct {
	Platform string
	Arch     string
	Path     string
	URL      string
}

type Pair struct {
	Platform string
	Arch     string
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

/**
 * Check a platform/architecture pair against the supported matrix
 * @param {string} platform - linux, darwin or windows
 * @param {string} arch - amd64 or arm64
 * @returns {*Rejection} nil when the pair is offered
 * @description
 * - Platform is checked first, then architecture, then the combination
 * - windows/arm64 is rejected although both values are valid alone
 */
func Check(platform, arch string) *Rejection {
	if !contains(Platforms, platform) {
		return &Rejection{
			Kind:    InvalidPlatform,
			Message: fmt.Sprintf("Platform '%s' is not supported. Supported platforms: %s", platform, strings.Join(Platforms, ", ")),
		}
	}
	if !contains(Architectures, arch) {
		return &Rejection{
			Kind:    InvalidArchitecture,
			Message: fmt.Sprintf("Architecture '%s' is not supported. Supported architectures: %s", arch, strings.Join(Architectures, ", ")),
		}
	}
	if platform == "windows" && arch == "arm64" {
		return &Rejection{
			Kind:    UnsupportedCombination,
			Message: "Windows ARM64 is not currently supported. Please use amd64.",
		}
	}
	return nil
}

// FileName returns the executable name for a platform.
func FileName(platform string) string {
	if platform == "windows" {
		return BinaryName + ".exe"
	}
	return BinaryName
}

// StaticPath returns /binaries/{platform}/{arch}/{file}.
func StaticPath(platform, arch string) string {
	return "/binaries/" + platform + "/" + arch + "/" + FileName(platform)
}

// Validate checks the pair and builds the redirect target against base.
func Validate(platform, arch string, base baseurl.Context) (*Target, *Rejection) {
	if rej := Check(platform, arch); rej != nil {
		return nil, rej
	}
	path := StaticPath(platform, arch)
	return &Target{
		Platform: platform,
		Arch:     arch,
		Path:     path,
		URL:      base.Join(path),
	}, nil
}

// Matrix lists every offered pair in a stable order.
func Matrix() []Pair {
	var pairs []Pair
	for _, p := range Platforms {
		for _, a := range Architectures {
			if Check(p, a) == nil {
				pairs = append(pairs, Pair{Platform: p, Arch: a})
			}
		}
	}
	return pairs
}
