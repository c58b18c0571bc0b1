// Package output renders validation reports for machine and human
// consumers and maps a report onto a process exit code.
package output

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/fatih/color"

	"github.com/templateguard/kics-validator/pkg/validation"
)

type Marshaler interface {
	Marshal(report validation.Report) ([]byte, error)
}

type marshalerFunc func(report validation.Report) ([]byte, error)

func (f marshalerFunc) Marshal(report validation.Report) ([]byte, error) {
	return f(report)
}

type jsonMarshaler struct {
	plugin string
}

// NewJSONMarshaler renders the report as indented JSON tagged with the
// producing plugin's name.
func NewJSONMarshaler(plugin string) Marshaler {
	return jsonMarshaler{plugin: plugin}
}

type jsonOutput struct {
	Plugin string `json:"plugin"`
	validation.Report
}

func (j jsonMarshaler) Marshal(report validation.Report) ([]byte, error) {
	return json.MarshalIndent(jsonOutput{
		Plugin: j.plugin,
		Report: report,
	}, "", "  ")
}

func severityString(s validation.Severity) string {
	switch s {
	case validation.SeverityCritical, validation.SeverityHigh:
		return color.RedString("%s: ", s)
	case validation.SeverityMedium:
		return color.YellowString("%s: ", s)
	case validation.SeverityLow:
		return color.CyanString("%s: ", s)
	default:
		return color.GreenString("%s: ", s)
	}
}

var MarshalCLI = marshalerFunc(func(report validation.Report) ([]byte, error) {
	var buf bytes.Buffer

	for _, v := range report.Violations {
		buf.WriteString(severityString(v.Severity))
		buf.WriteString(v.RuleName)
		buf.WriteRune('\n')
		for _, r := range v.ViolatingResources {
			fmt.Fprintf(&buf, "  %s (%s)", r.ResourceLogicalID, r.TemplatePath)
			for _, loc := range r.Locations {
				fmt.Fprintf(&buf, " at %s", loc)
			}
			buf.WriteRune('\n')
		}
		if v.Fix != "" {
			buf.WriteString(color.BlueString("fix: "))
			buf.WriteString(v.Fix)
			buf.WriteRune('\n')
		}
	}

	for _, d := range report.Diagnostics {
		buf.WriteString(color.RedString("error: "))
		buf.WriteString(d.Title)
		if d.Detail != "" {
			buf.WriteString(": " + d.Detail)
		}
		buf.WriteRune('\n')
	}

	if report.Success {
		buf.WriteString(color.GreenString("ok: "))
		buf.WriteString("no violations found\n")
	}

	return buf.Bytes(), nil
})

// ExitCode maps the verdict onto a process exit code: anything but a clean
// successful scan exits 1.
func ExitCode(report validation.Report) int {
	if report.Success {
		return 0
	}
	return 1
}

// Static checks

var (
	_ = Marshaler(jsonMarshaler{})
	_ = Marshaler(MarshalCLI)
)
