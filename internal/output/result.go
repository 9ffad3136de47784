// Package output provides shared result serialization for baseline summaries.
package output

import (
	"github.com/farcloser/baseline"
)

// ResultToMap converts a run result into the canonical map structure
// used for console, JSON and Markdown summaries.
func ResultToMap(result *baseline.Result) map[string]any {
	files := make([]any, 0, len(result.Files))
	for _, name := range result.Files {
		files = append(files, name)
	}

	meta := map[string]any{
		"summary": map[string]any{
			"checks":       result.Counts.Total(),
			"ok":           result.Counts.OK,
			"warn":         result.Counts.Warn,
			"fail":         result.Counts.Fail,
			"worst_status": result.Worst.String(),
			"risk":         result.Risk.String(),
		},
		"files": files,
	}

	findings := make([]any, 0, len(result.Findings))
	for _, finding := range result.Findings {
		findings = append(findings, FindingToMap(finding))
	}

	meta["findings"] = findings

	errs := make([]any, 0, len(result.Errors))
	for _, err := range result.Errors {
		errs = append(errs, err.Error())
	}

	meta["errors"] = errs

	return meta
}

// FindingToMap converts a single non-passing record to a map.
func FindingToMap(record baseline.Record) map[string]any {
	return map[string]any{
		"host":    record.Host.Or("?"),
		"os":      record.OS.Or("?"),
		"check":   record.Check.Or("?"),
		"status":  record.Status.String(),
		"details": record.Details.Or(""),
		"file":    record.File,
		"line":    record.Line,
	}
}
