package output_test

import (
	"testing"

	"github.com/farcloser/baseline"
	"github.com/farcloser/baseline/internal/output"
)

func TestResultToMap(t *testing.T) {
	result := &baseline.Result{Files: []string{"a.jsonl"}}
	baseline.Aggregate(result, []baseline.Record{
		{Status: baseline.StatusWarn, File: "a.jsonl", Line: 2},
		{Status: baseline.StatusOK},
	})

	meta := output.ResultToMap(result)

	summary, ok := meta["summary"].(map[string]any)
	if !ok {
		t.Fatalf("missing summary: %v", meta)
	}

	if summary["checks"] != 2 || summary["warn"] != 1 || summary["worst_status"] != "WARN" || summary["risk"] != "low" {
		t.Fatalf("unexpected summary: %v", summary)
	}

	findings, ok := meta["findings"].([]any)
	if !ok || len(findings) != 1 {
		t.Fatalf("unexpected findings: %v", meta["findings"])
	}

	finding, _ := findings[0].(map[string]any)
	if finding["host"] != "?" || finding["details"] != "" || finding["line"] != 2 {
		t.Fatalf("unexpected finding: %v", finding)
	}
}
