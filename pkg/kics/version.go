package kics

import (
	"context"
	"fmt"
	"regexp"

	"github.com/hashicorp/go-version"
)

// minKicsVersion is the oldest scanner whose CLI flags and results schema
// match what this adapter renders and parses.
const minKicsVersion = "1.7.0"

// kics prints "Keeping Infrastructure as Code Secure v1.7.13" for `version`.
var versionPattern = regexp.MustCompile(`v(\d+\.\d+\.\d+)`)

func parseVersionOutput(out string) (*version.Version, error) {
	m := versionPattern.FindStringSubmatch(out)
	if m == nil {
		return nil, fmt.Errorf("no version in %q", out)
	}
	return version.NewVersion(m[1])
}

// checkVersion runs `kics version` and rejects binaries older than
// minKicsVersion at construction time.
func checkVersion(ctx context.Context, runner commandRunner, bin string) error {
	out, err := runner.Run(ctx, bin, "version")
	if err != nil {
		return &ConfigurationError{Reason: fmt.Sprintf("could not determine kics version: %v", err)}
	}

	current, err := parseVersionOutput(string(out))
	if err != nil {
		return &ConfigurationError{Reason: fmt.Sprintf("could not determine kics version: %v", err)}
	}

	minimum := version.Must(version.NewVersion(minKicsVersion))
	if current.LessThan(minimum) {
		return &ConfigurationError{
			Reason: fmt.Sprintf("kics %s is older than the minimum supported %s", current, minimum),
		}
	}
	return nil
}
