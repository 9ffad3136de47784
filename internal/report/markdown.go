// Package report renders a baseline result as a Markdown (or PDF) document.
package report

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/farcloser/baseline"
)

// TimeLayout is the layout of the generation timestamp.
const TimeLayout = "2006-01-02 15:04:05"

var errEmptyPath = errors.New("output path is empty")

// Options configures report rendering.
type Options struct {
	Strings Strings
	// Now is the generation time, rendered in local time.
	Now time.Time
}

// Markdown renders result.
func Markdown(result *baseline.Result, opts Options) []byte {
	text := opts.Strings

	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", text.Title)
	fmt.Fprintf(&b, "**%s:** %s\n\n", text.Generated, opts.Now.Local().Format(TimeLayout))

	fmt.Fprintf(&b, "## %s\n", text.LogFiles)

	for _, name := range result.Files {
		fmt.Fprintf(&b, "- %s\n", name)
	}

	b.WriteString("\n")

	fmt.Fprintf(&b, "## %s\n", text.Summary)
	fmt.Fprintf(&b, "- %s: %d\n", text.TotalChecks, len(result.Records))
	fmt.Fprintf(&b, "- %s: %d\n", baseline.StatusOK, result.Counts.OK)
	fmt.Fprintf(&b, "- %s: %d\n", baseline.StatusWarn, result.Counts.Warn)
	fmt.Fprintf(&b, "- %s: %d\n", baseline.StatusFail, result.Counts.Fail)
	fmt.Fprintf(&b, "- %s: **%s**\n", text.WorstStatus, result.Worst)
	fmt.Fprintf(&b, "- %s: **%s**\n\n", text.RiskLevel, text.Risk(result.Risk))

	fmt.Fprintf(&b, "## %s\n", text.Findings)

	if len(result.Findings) == 0 {
		fmt.Fprintf(&b, "%s\n\n", text.NoFindings)
	} else {
		for _, finding := range result.Findings {
			fmt.Fprintf(&b, "- **%s** / %s / `%s` → **%s**\n",
				finding.Host.Or("?"), finding.OS.Or("?"), finding.Check.Or("?"), finding.Status)
			fmt.Fprintf(&b, "  - %s: %s\n", text.Details, finding.Details.Or(""))
		}

		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "## %s\n", text.DecodeErrors)

	if len(result.Errors) == 0 {
		fmt.Fprintf(&b, "%s\n", text.NoDecodeErrors)
	} else {
		for _, err := range result.Errors {
			fmt.Fprintf(&b, "- %s\n", err)
		}
	}

	return []byte(b.String())
}

// Save writes data to path, creating missing parent directories and replacing any existing file.
func Save(path string, data []byte) error {
	if path == "" {
		return errEmptyPath
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating report directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil { //nolint:gosec // reports are meant to be shared
		return fmt.Errorf("writing report: %w", err)
	}

	return nil
}
