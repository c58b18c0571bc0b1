package kics

import (
	"context"
	"errors"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestInvokeToleratesFindingsExitCode(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses sh")
	}

	// kics exits 50 when HIGH findings cross the --fail-on threshold
	err := invoke(context.Background(), execRunner{}, "sh", []string{"-c", "exit 50"})
	require.NoError(t, err)
}

func TestInvokeCleanExit(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses sh")
	}

	err := invoke(context.Background(), execRunner{}, "sh", []string{"-c", "exit 0"})
	require.NoError(t, err)
}

func TestInvokeSpawnFailure(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "kics")
	err := invoke(context.Background(), execRunner{}, missing, []string{"scan"})
	require.Error(t, err)

	var invocationErr *InvocationError
	require.ErrorAs(t, err, &invocationErr)
}

func TestInvokeTimeout(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses sleep")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := invoke(ctx, execRunner{}, "sleep", []string{"10"})
	require.Error(t, err)

	var invocationErr *InvocationError
	require.ErrorAs(t, err, &invocationErr)
	require.True(t, errors.Is(err, context.DeadlineExceeded))
}
