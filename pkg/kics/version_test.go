package kics

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseVersionOutput(t *testing.T) {
	v, err := parseVersionOutput("Keeping Infrastructure as Code Secure v1.7.13")
	require.NoError(t, err)
	require.Equal(t, "1.7.13", v.String())
}

func TestParseVersionOutputNoVersion(t *testing.T) {
	_, err := parseVersionOutput("command not found")
	require.Error(t, err)
}

func TestCheckVersionAcceptsSupported(t *testing.T) {
	runner := &fakeRunner{out: []byte("Keeping Infrastructure as Code Secure v1.7.13")}
	require.NoError(t, checkVersion(context.Background(), runner, "kics"))
	require.Equal(t, [][]string{{"version"}}, runner.calls)
}

func TestCheckVersionRejectsTooOld(t *testing.T) {
	runner := &fakeRunner{out: []byte("Keeping Infrastructure as Code Secure v1.5.1")}
	err := checkVersion(context.Background(), runner, "kics")
	require.Error(t, err)

	var cfgErr *ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
}

func TestCheckVersionRunFailure(t *testing.T) {
	runner := &fakeRunner{err: errors.New("exec format error")}
	err := checkVersion(context.Background(), runner, "kics")
	require.Error(t, err)

	var cfgErr *ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
}
