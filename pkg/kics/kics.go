// Package kics adapts the KICS infrastructure-as-code scanner to the
// validation host contract: it renders a scan invocation from configuration,
// runs the bundled binary, parses the results file it writes, and normalizes
// findings into violations with a deterministic pass/fail verdict.
package kics

import (
	"context"
	"errors"
	"os"
	"runtime"
	"strings"

	"github.com/google/uuid"

	"github.com/templateguard/kics-validator/pkg/logme"
	"github.com/templateguard/kics-validator/pkg/validation"
)

const reportBaseName = "results"

// Validator runs kics scans. Safe for concurrent use: it holds no mutable
// state, and every scan gets its own output directory and report name.
type Validator struct {
	cfg    Config
	bin    string
	runner commandRunner
}

// New resolves the bundled scanner binary for the current platform and
// verifies its version when it is present. An unsupported architecture is a
// construction-time error; a missing binary is deferred to scan time.
func New(cfg Config) (*Validator, error) {
	return newValidator(cfg, execRunner{}, runtime.GOOS, runtime.GOARCH)
}

func newValidator(cfg Config, runner commandRunner, goos, goarch string) (*Validator, error) {
	bin, err := binaryPath(cfg.assetsDir(), goos, goarch)
	if err != nil {
		return nil, err
	}

	v := &Validator{cfg: cfg, bin: bin, runner: runner}

	if _, err := os.Stat(bin); err == nil {
		if err := checkVersion(context.Background(), runner, bin); err != nil {
			return nil, err
		}
	} else {
		logme.DebugFln("kics binary not found at %s, skipping version check", bin)
	}
	return v, nil
}

// Validate runs one scan over the context's template files. It always
// returns a report value: infrastructure failures (spawn, timeout, missing
// or unparsable results file) are logged, recorded as diagnostics, and
// folded into a failing verdict with an empty violation list.
func (v *Validator) Validate(ctx context.Context, vctx validation.Context) validation.Report {
	report, err := v.scan(ctx, vctx.TemplatePaths)
	if err != nil {
		logme.Errorln("kics scan failed:", err)
		return validation.Report{
			Violations:  []validation.Violation{},
			Success:     false,
			Diagnostics: []validation.Diagnostic{diagnosticFor(err)},
		}
	}

	// The verdict comes from the parsed report, not the exit code: the
	// scanner already applied the exclusion and --fail-on flags, so any
	// surviving query fails the scan.
	return validation.Report{
		Violations: mapViolations(report.Queries),
		Success:    len(report.Queries) == 0,
	}
}

func (v *Validator) scan(ctx context.Context, templatePaths []string) (*Report, error) {
	if v.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, v.cfg.Timeout)
		defer cancel()
	}

	outputDir := v.cfg.OutputDir
	if outputDir == "" {
		dir, err := os.MkdirTemp("", "kics-scan-")
		if err != nil {
			return nil, &InvocationError{Err: err}
		}
		outputDir = dir
	}

	// A per-scan report name keeps concurrent scans that share an output
	// directory from colliding on the results file.
	reportName := reportBaseName + "-" + uuid.NewString()

	args := scanArgs(v.cfg, templatePaths, outputDir, reportName)
	logme.DebugFln("running %s %s", v.bin, strings.Join(args, " "))

	if err := invoke(ctx, v.runner, v.bin, args); err != nil {
		return nil, err
	}
	return loadReport(outputDir, reportName)
}

func diagnosticFor(err error) validation.Diagnostic {
	var (
		invocationErr *InvocationError
		reportErr     *ReportError
	)
	switch {
	case errors.As(err, &invocationErr):
		return validation.Diagnostic{
			Name:   "invocation-error",
			Title:  "the kics process could not run to completion",
			Detail: err.Error(),
		}
	case errors.As(err, &reportErr):
		return validation.Diagnostic{
			Name:   "report-" + string(reportErr.Kind),
			Title:  "the kics results file could not be read",
			Detail: err.Error(),
		}
	default:
		return validation.Diagnostic{
			Name:   "scan-error",
			Title:  "the kics scan failed",
			Detail: err.Error(),
		}
	}
}
