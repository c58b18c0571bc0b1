package kics

import (
	"fmt"
	"path/filepath"
	"strings"
)

// binaryPath resolves the bundled kics executable for the given platform.
// kics ships 64-bit x86 and ARM builds only; anything else is a
// construction-time configuration error, not a scan-time one.
func binaryPath(assetsDir, goos, goarch string) (string, error) {
	switch goarch {
	case "amd64", "arm64":
	default:
		return "", &ConfigurationError{
			Reason: fmt.Sprintf("unsupported architecture %q: kics binaries are bundled for amd64 and arm64 only", goarch),
		}
	}

	osName := strings.ToLower(goos)
	name := fmt.Sprintf("kics_%s_%s", osName, goarch)
	if osName == "windows" {
		name += ".exe"
	}
	return filepath.Join(assetsDir, "bin", name), nil
}
