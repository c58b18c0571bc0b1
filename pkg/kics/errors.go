package kics

import "fmt"

// ConfigurationError is fatal and raised at construction time, for example
// when the host runs on an architecture kics does not ship binaries for.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "kics configuration: " + e.Reason
}

// InvocationError means the scanner process itself broke: it could not be
// spawned, was killed, or ran past the configured timeout. A non-zero exit
// from a scan that ran to completion is not an InvocationError; kics uses
// the exit code to signal that findings crossed the --fail-on threshold.
type InvocationError struct {
	Err error
}

func (e *InvocationError) Error() string {
	return fmt.Sprintf("kics invocation failed: %v", e.Err)
}

func (e *InvocationError) Unwrap() error {
	return e.Err
}

// ReportErrorKind distinguishes the ways a results file can be unusable.
type ReportErrorKind string

const (
	// ReportMissing: the scan exited before writing its results file.
	ReportMissing ReportErrorKind = "missing"
	// ReportMalformed: the results file is not valid JSON.
	ReportMalformed ReportErrorKind = "malformed"
	// ReportSchemaMismatch: valid JSON that does not match the kics
	// results schema, typically a scanner version drift.
	ReportSchemaMismatch ReportErrorKind = "schema-mismatch"
)

// ReportError means the results file kics was expected to write could not
// be read or parsed. All kinds are handled identically by the verdict but
// stay distinguishable for diagnostics.
type ReportError struct {
	Kind ReportErrorKind
	Path string
	Err  error
}

func (e *ReportError) Error() string {
	return fmt.Sprintf("kics report %s (%s): %v", e.Path, e.Kind, e.Err)
}

func (e *ReportError) Unwrap() error {
	return e.Err
}
