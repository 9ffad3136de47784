package baseline

import (
	"log/slog"

	"github.com/farcloser/baseline/internal/jsonl"
	"github.com/farcloser/baseline/internal/logdir"
)

/*
Usage:

result, err := baseline.Analyze("/var/log/baseline")
if err != nil {
    // logdir.ErrNotDirectory or logdir.ErrNoLogFiles
}

fmt.Printf("%d checks, worst %s, risk %s\n", result.Counts.Total(), result.Worst, result.Risk)

for _, finding := range result.Findings {
    fmt.Printf("[%s] %s\n", finding.Status, finding.Check.Or("?"))
}

// Decode errors never abort a run
for _, err := range result.Errors {
    fmt.Println(err)
}

*/

// Check kinds that describe the run itself rather than a check outcome.
const (
	CheckRunStart   = "run_start"
	CheckRunSummary = "run_summary"
)

// Result is the aggregated outcome of a baseline run.
type Result struct {
	// Dir is the resolved log directory.
	Dir string
	// Files are the log file names, in read order.
	Files []string

	// Records are all classified records, in file then line order.
	Records []Record
	Counts  Counts
	Worst   Status
	Risk    Risk
	// Findings are the records that did not pass, in encounter order.
	Findings []Record

	// Errors are decode errors, in file then line order.
	Errors []*jsonl.DecodeError
}

// HasFailures tells whether at least one check failed.
func (r *Result) HasFailures() bool {
	return r.Counts.Fail > 0
}

// Analyze reads every log file in dir and aggregates the check outcomes.
// The only errors returned are configuration errors from discovery; unreadable files and
// malformed lines end up in Result.Errors.
func Analyze(dir string) (*Result, error) {
	resolved, files, err := logdir.Discover(dir)
	if err != nil {
		return nil, err
	}

	result := &Result{Dir: resolved}

	var entries []jsonl.Entry

	for _, file := range files {
		result.Files = append(result.Files, file.Name)

		fileEntries, errs := jsonl.ReadFile(file.Path, file.Name)
		entries = append(entries, fileEntries...)
		result.Errors = append(result.Errors, errs...)

		slog.Debug("baseline.Analyze", "file", file.Name, "entries", len(fileEntries), "errors", len(errs))
	}

	Aggregate(result, Classify(entries))

	return result, nil
}

// Classify drops run metadata records and normalizes the status of the others.
// Order is preserved.
func Classify(entries []jsonl.Entry) []Record {
	records := make([]Record, 0, len(entries))

	for _, entry := range entries {
		check := FieldFrom(entry.Fields["check"])
		if isRunMetadata(check) {
			continue
		}

		records = append(records, Record{
			Host:    FieldFrom(entry.Fields["host"]),
			OS:      FieldFrom(entry.Fields["os"]),
			Check:   check,
			Details: FieldFrom(entry.Fields["details"]),
			Status:  NormalizeStatus(entry.Fields["status"]),
			File:    entry.File,
			Line:    entry.Line,
		})
	}

	return records
}

// Aggregate tallies records into result: counts, worst status, findings and risk.
func Aggregate(result *Result, records []Record) {
	result.Records = records
	result.Counts = Counts{}
	result.Worst = StatusOK
	result.Findings = nil

	for _, record := range records {
		result.Counts.Add(record.Status)

		if record.Status.WorseThan(result.Worst) {
			result.Worst = record.Status
		}

		if record.Status != StatusOK {
			result.Findings = append(result.Findings, record)
		}
	}

	result.Risk = RiskFor(result.Counts.Fail)
}

func isRunMetadata(check Field) bool {
	return check.IsString && (check.Value == CheckRunStart || check.Value == CheckRunSummary)
}
