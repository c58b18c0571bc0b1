package kics

// scanArgs renders the argument vector for one kics scan invocation. Empty
// exclusion lists contribute no flags; list order is preserved.
func scanArgs(cfg Config, templatePaths []string, outputDir, reportName string) []string {
	args := []string{"scan"}

	for _, p := range templatePaths {
		args = append(args, "--path", p)
	}

	args = append(args,
		"--output-path", outputDir,
		"--output-name", reportName,
		"--libraries-path", cfg.librariesPath(),
		"--queries-path", cfg.queriesPath(),
	)

	for _, s := range cfg.failureSeverities() {
		args = append(args, "--fail-on", s.String())
	}
	for _, q := range cfg.ExcludeQueries {
		args = append(args, "--exclude-queries", q)
	}
	for _, c := range cfg.ExcludeCategories {
		args = append(args, "--exclude-categories", c)
	}
	for _, s := range cfg.ExcludeSeverities {
		args = append(args, "--exclude-severities", s.String())
	}

	return append(args, "--ci", "--report-formats", "json")
}
