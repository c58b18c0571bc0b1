package kics

import (
	"context"
	"errors"
	"os/exec"

	"github.com/templateguard/kics-validator/pkg/logme"
)

// commandRunner abstracts process execution so scans are testable without
// the real kics binary.
type commandRunner interface {
	Run(ctx context.Context, bin string, args ...string) ([]byte, error)
}

type execRunner struct{}

func (execRunner) Run(ctx context.Context, bin string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, bin, args...).CombinedOutput()
}

// invoke runs the scanner synchronously and classifies the outcome. A
// regular non-zero exit is expected — kics signals "findings crossed the
// --fail-on threshold" through its exit code — so it is not an error here;
// the results file on disk decides the verdict. Spawn failures, signals and
// context cancellation become an InvocationError.
func invoke(ctx context.Context, runner commandRunner, bin string, args []string) error {
	out, err := runner.Run(ctx, bin, args...)
	if err == nil {
		return nil
	}

	if ctx.Err() != nil {
		return &InvocationError{Err: ctx.Err()}
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() > 0 {
		logme.DebugFln("kics exited %d: %s", exitErr.ExitCode(), out)
		return nil
	}

	return &InvocationError{Err: err}
}
