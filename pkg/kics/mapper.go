package kics

import (
	"path/filepath"

	"github.com/templateguard/kics-validator/pkg/validation"
)

// mapViolations converts parsed queries into the host's violation model,
// one Violation per query in input order, one ViolatingResource per file
// match. Template paths are re-joined from their dir and base components to
// iron out separator inconsistencies between the scanner's platform and the
// consuming host.
func mapViolations(queries []Query) []validation.Violation {
	violations := make([]validation.Violation, 0, len(queries))
	for _, q := range queries {
		resources := make([]validation.ViolatingResource, 0, len(q.Files))
		for _, f := range q.Files {
			resources = append(resources, validation.ViolatingResource{
				ResourceLogicalID: f.ResourceName,
				TemplatePath:      filepath.Join(filepath.Dir(f.FileName), filepath.Base(f.FileName)),
				Locations:         []string{f.SearchKey},
			})
		}

		severity, ok := validation.ParseSeverity(q.Severity)
		if !ok {
			// schema validation keeps this from happening for known
			// scanner versions; carry the raw value through regardless
			severity = validation.Severity(q.Severity)
		}

		violations = append(violations, validation.Violation{
			RuleName:           q.QueryName,
			Description:        q.Description,
			Fix:                q.QueryURL,
			Severity:           severity,
			ViolatingResources: resources,
		})
	}
	return violations
}
