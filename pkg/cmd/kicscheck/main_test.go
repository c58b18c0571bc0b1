package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/templateguard/kics-validator/pkg/validation"
)

func TestReadConfigFile(t *testing.T) {
	cfg, err := readConfigFile(filepath.Join("testdata", "config.yaml"))
	require.NoError(t, err)

	require.Equal(t, []string{"a1b2c3", "d4e5f6"}, cfg.ExcludeQueries)
	require.Equal(t, []string{"Encryption"}, cfg.ExcludeCategories)
	require.Equal(t, []validation.Severity{validation.SeverityInfo}, cfg.ExcludeSeverities)
	require.Equal(t, []validation.Severity{validation.SeverityCritical, validation.SeverityHigh}, cfg.FailureSeverities)
	require.Equal(t, "/opt/kics/assets", cfg.AssetsDir)
}

func TestReadConfigFileMissing(t *testing.T) {
	_, err := readConfigFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestExpandTemplatePaths(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.json", "b.json", "c.yaml"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("{}"), 0o600))
	}

	paths, err := expandTemplatePaths([]string{filepath.Join(dir, "*.json")})
	require.NoError(t, err)
	require.Len(t, paths, 2)

	// no matches: the argument passes through verbatim
	paths, err = expandTemplatePaths([]string{filepath.Join(dir, "missing.json")})
	require.NoError(t, err)
	require.Equal(t, []string{filepath.Join(dir, "missing.json")}, paths)
}

func TestExpandTemplatePathsBadPattern(t *testing.T) {
	_, err := expandTemplatePaths([]string{"[unclosed"})
	require.Error(t, err)
}
