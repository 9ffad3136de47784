package jsonl_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/farcloser/primordium/fault"

	"github.com/farcloser/baseline/internal/jsonl"
)

func TestReadSkipsBadLines(t *testing.T) {
	input := strings.Join([]string{
		`{"check":"a","status":"OK"}`,
		``,
		`   `,
		`{"check":`,
		`[1, 2, 3]`,
		`  {"check":"b"}  `,
		`{"check":"c"} trailing`,
	}, "\n")

	entries, errs := jsonl.Read(strings.NewReader(input), "x.jsonl")

	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}

	if entries[0].Line != 1 || entries[1].Line != 5 || entries[2].Line != 6 {
		t.Fatalf("unexpected line numbers: %d %d %d", entries[0].Line, entries[1].Line, entries[2].Line)
	}

	if entries[1].Fields != nil {
		t.Fatalf("a JSON array has no fields: %v", entries[1].Fields)
	}

	if string(entries[2].Fields["check"]) != `"b"` {
		t.Fatalf("unexpected fields: %v", entries[2].Fields)
	}

	if len(errs) != 2 {
		t.Fatalf("expected 2 errors, got %v", errs)
	}

	if errs[0].Line != 4 || errs[1].Line != 7 {
		t.Fatalf("unexpected error lines: %d %d", errs[0].Line, errs[1].Line)
	}

	if !strings.HasPrefix(errs[0].Error(), "x.jsonl:4 JSONDecodeError: ") {
		t.Fatalf("unexpected message: %s", errs[0])
	}

	if !errors.Is(errs[0], fault.ErrInvalidJSON) {
		t.Fatalf("expected ErrInvalidJSON, got %v", errs[0])
	}
}

func TestReadByteOrderMark(t *testing.T) {
	input := "\xef\xbb\xbf" + `{"check":"a"}` + "\r\n" + `{"check":"b"}` + "\r\n"

	entries, errs := jsonl.Read(strings.NewReader(input), "bom.jsonl")
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}

	if len(entries) != 2 || string(entries[0].Fields["check"]) != `"a"` {
		t.Fatalf("unexpected entries: %+v", entries)
	}
}

func TestReadInvalidUTF8DropsFile(t *testing.T) {
	input := `{"check":"a","status":"FAIL"}` + "\n" + `not-json` + "\n" + "{\"check\":\"\xff\"}\n" + `{"check":"c"}`

	entries, errs := jsonl.Read(strings.NewReader(input), "bad.jsonl")

	if len(entries) != 0 {
		t.Fatalf("a file that is not UTF-8 contributes no entries, got %+v", entries)
	}

	if len(errs) != 1 || errs[0].Line != 0 {
		t.Fatalf("expected one file-level error, got %v", errs)
	}

	if !strings.HasPrefix(errs[0].Error(), "bad.jsonl: Could not read file: ") {
		t.Fatalf("unexpected message: %s", errs[0])
	}

	if !errors.Is(errs[0], fault.ErrReadFailure) {
		t.Fatalf("expected ErrReadFailure, got %v", errs[0])
	}
}

func TestReadLineEndings(t *testing.T) {
	input := `{"check":"a"}` + "\r" + `{"check":"b"}` + "\r\n" + `{"check":"c"}` + "\n\r" + `{"check":"d"}` + "\r"

	entries, errs := jsonl.Read(strings.NewReader(input), "cr.jsonl")
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}

	if len(entries) != 4 {
		t.Fatalf("expected 4 entries, got %+v", entries)
	}

	// "\n\r" is two line endings, so "d" sits on line 5.
	for i, want := range []int{1, 2, 3, 5} {
		if entries[i].Line != want {
			t.Errorf("entry %d: line = %d, want %d", i, entries[i].Line, want)
		}
	}
}

func TestReadLongLine(t *testing.T) {
	details := strings.Repeat("x", 20*1024*1024)
	input := `{"check":"a"}` + "\n" + `{"check":"big","details":"` + details + `"}` + "\n" + `{"check":"c"}`

	entries, errs := jsonl.Read(strings.NewReader(input), "big.jsonl")
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}

	if len(entries) != 3 || entries[2].Line != 3 {
		t.Fatalf("unexpected entries: %d", len(entries))
	}

	if len(entries[1].Fields["details"]) != len(details)+2 {
		t.Fatalf("details truncated to %d bytes", len(entries[1].Fields["details"]))
	}
}

func TestReadFileMissing(t *testing.T) {
	entries, errs := jsonl.ReadFile(filepath.Join(t.TempDir(), "gone.jsonl"), "gone.jsonl")

	if entries != nil {
		t.Fatalf("expected no entries, got %v", entries)
	}

	if len(errs) != 1 || !errors.Is(errs[0], os.ErrNotExist) || !errors.Is(errs[0], fault.ErrReadFailure) {
		t.Fatalf("unexpected errors: %v", errs)
	}
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "host.jsonl")
	if err := os.WriteFile(path, []byte(`{"host":"h1","status":"WARN"}`), 0o600); err != nil {
		t.Fatal(err)
	}

	entries, errs := jsonl.ReadFile(path, "host.jsonl")
	if len(errs) != 0 || len(entries) != 1 {
		t.Fatalf("entries=%v errs=%v", entries, errs)
	}

	if entries[0].File != "host.jsonl" || entries[0].Line != 1 {
		t.Fatalf("unexpected entry: %+v", entries[0])
	}
}
