package kics

import (
	"path/filepath"
	"time"

	"github.com/templateguard/kics-validator/pkg/validation"
)

// defaultFailureSeverities is the build-breaking threshold applied when the
// caller supplies none: only the two highest severities fail the scan.
var defaultFailureSeverities = []validation.Severity{
	validation.SeverityHigh,
	validation.SeverityMedium,
}

// Config is the immutable per-validator configuration. The zero value is
// usable: no exclusions, default failure severities, bundled assets dir.
type Config struct {
	// ExcludeQueries suppresses individual kics query IDs.
	ExcludeQueries []string `yaml:"excludeQueries"`
	// ExcludeCategories suppresses whole query categories.
	ExcludeCategories []string `yaml:"excludeCategories"`
	// ExcludeSeverities removes findings of these severities from the
	// results entirely. Independent from FailureSeverities: an excluded
	// severity can still be part of the failure threshold.
	ExcludeSeverities []validation.Severity `yaml:"excludeSeverities"`
	// FailureSeverities are passed to kics as --fail-on. nil means
	// "not supplied" and defaults to HIGH and MEDIUM.
	FailureSeverities []validation.Severity `yaml:"failOn"`
	// AssetsDir holds the bundled kics binary, libraries and queries.
	AssetsDir string `yaml:"assetsDir"`
	// Timeout bounds a single scan; zero means no limit.
	Timeout time.Duration `yaml:"-"`
	// OutputDir receives the results file. Empty means a fresh temporary
	// directory per scan, which also keeps concurrent scans from
	// colliding on the report path.
	OutputDir string `yaml:"-"`
}

const defaultAssetsDir = "assets"

func (c Config) assetsDir() string {
	if c.AssetsDir == "" {
		return defaultAssetsDir
	}
	return c.AssetsDir
}

// librariesPath and queriesPath are fixed locations inside the bundled
// assets, not user-configurable.
func (c Config) librariesPath() string {
	return filepath.Join(c.assetsDir(), "libraries")
}

func (c Config) queriesPath() string {
	return filepath.Join(c.assetsDir(), "queries")
}

func (c Config) failureSeverities() []validation.Severity {
	if c.FailureSeverities == nil {
		return defaultFailureSeverities
	}
	return c.FailureSeverities
}
