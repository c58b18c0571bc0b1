package kics

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// The kics CLI flags and results format are an external, versioned contract.
// The embedded schema pins the subset this adapter depends on so that
// scanner drift surfaces as a distinct, diagnosable error instead of
// silently dropped fields.
//
//go:embed schema/results.schema.json
var resultsSchema string

// Report mirrors the relevant parts of the results.json file kics writes.
type Report struct {
	KicsVersion  string  `json:"kics_version"`
	TotalCounter int     `json:"total_counter"`
	Queries      []Query `json:"queries"`
}

// Query is one violated rule, potentially affecting several files.
type Query struct {
	QueryID     string      `json:"query_id"`
	QueryName   string      `json:"query_name"`
	QueryURL    string      `json:"query_url"`
	Severity    string      `json:"severity"`
	Category    string      `json:"category"`
	Description string      `json:"description"`
	Files       []FileMatch `json:"files"`
}

// FileMatch locates a query hit inside one template file.
type FileMatch struct {
	FileName     string `json:"file_name"`
	ResourceName string `json:"resource_name"`
	ResourceType string `json:"resource_type"`
	SearchKey    string `json:"search_key"`
	Line         int    `json:"line"`
}

// loadReport reads and parses <outputDir>/<reportName>.json. The file is
// scanner-owned: read once, never mutated or cleaned up here.
func loadReport(outputDir, reportName string) (*Report, error) {
	path := filepath.Join(outputDir, reportName+".json")

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, &ReportError{Kind: ReportMissing, Path: path, Err: err}
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(resultsSchema),
		gojsonschema.NewBytesLoader(raw),
	)
	if err != nil {
		return nil, &ReportError{Kind: ReportMalformed, Path: path, Err: err}
	}
	if !result.Valid() {
		descs := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			descs = append(descs, fmt.Sprintf("%s: %s", desc.Field(), desc.Description()))
		}
		return nil, &ReportError{
			Kind: ReportSchemaMismatch,
			Path: path,
			Err:  errors.New(strings.Join(descs, "; ")),
		}
	}

	var report Report
	if err := json.Unmarshal(raw, &report); err != nil {
		return nil, &ReportError{Kind: ReportMalformed, Path: path, Err: err}
	}
	return &report, nil
}
