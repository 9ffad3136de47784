// Package jsonl decodes line-delimited JSON log files.
//
// Every non-blank line is decoded on its own. A bad line is reported and skipped; it never
// stops the rest of the file from being read. A file that cannot be read, or is not valid
// UTF-8, yields a single file-level error and no entries.
package jsonl

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"unicode/utf8"

	"github.com/farcloser/primordium/fault"
)

var (
	errInvalidUTF8 = errors.New("invalid UTF-8")
	bom            = []byte("\xef\xbb\xbf")
)

// Entry is one decoded line.
type Entry struct {
	File string
	Line int // 1-based
	// Fields holds the members of a JSON object. It is nil when the line decoded to any other JSON value.
	Fields map[string]json.RawMessage
}

// DecodeError describes a line that failed to decode (Line > 0) or a file that failed to read (Line == 0).
type DecodeError struct {
	File string
	Line int
	Err  error
}

func (e *DecodeError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d JSONDecodeError: %v", e.File, e.Line, e.Err)
	}

	return fmt.Sprintf("%s: Could not read file: %v", e.File, e.Err)
}

// Unwrap exposes both the fault class and the underlying cause.
func (e *DecodeError) Unwrap() []error {
	if e.Line > 0 {
		return []error{fault.ErrInvalidJSON, e.Err}
	}

	return []error{fault.ErrReadFailure, e.Err}
}

// ReadFile decodes the file at path. name is the label used in entries and errors.
func ReadFile(path, name string) ([]Entry, []*DecodeError) {
	slog.Debug("jsonl.ReadFile", "file path", path)

	file, err := os.Open(path) //nolint:gosec // CLI tool reads user-specified log files
	if err != nil {
		return nil, []*DecodeError{{File: name, Err: err}}
	}
	defer file.Close()

	return Read(file, name)
}

// Read decodes lines from reader. Lines end with "\n", "\r\n" or a lone "\r".
func Read(reader io.Reader, name string) ([]Entry, []*DecodeError) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, []*DecodeError{{File: name, Err: err}}
	}

	// The whole file is checked up front: a file that does not decode contributes nothing.
	if !utf8.Valid(data) {
		return nil, []*DecodeError{{File: name, Err: errInvalidUTF8}}
	}

	data = bytes.TrimPrefix(data, bom)

	var (
		entries []Entry
		errs    []*DecodeError
	)

	scanner := bufio.NewScanner(bytes.NewReader(data))
	// Sized to the file so that no line is ever too long.
	scanner.Buffer(make([]byte, 0, min(len(data)+1, 64*1024)), len(data)+1)
	scanner.Split(scanUniversalLines)

	lineNo := 0

	for scanner.Scan() {
		lineNo++

		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		entry, err := decodeLine(line)
		if err != nil {
			errs = append(errs, &DecodeError{File: name, Line: lineNo, Err: err})

			continue
		}

		entry.File = name
		entry.Line = lineNo
		entries = append(entries, entry)
	}

	if err := scanner.Err(); err != nil {
		return nil, []*DecodeError{{File: name, Err: err}}
	}

	return entries, errs
}

// scanUniversalLines is bufio.ScanLines that also ends a line on a lone '\r'.
func scanUniversalLines(data []byte, atEOF bool) (int, []byte, error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}

	if idx := bytes.IndexAny(data, "\r\n"); idx >= 0 {
		if data[idx] == '\n' {
			return idx + 1, data[:idx], nil
		}

		// '\r' as the last buffered byte may be the first half of "\r\n".
		if idx+1 == len(data) && !atEOF {
			return 0, nil, nil
		}

		if idx+1 < len(data) && data[idx+1] == '\n' {
			return idx + 2, data[:idx], nil
		}

		return idx + 1, data[:idx], nil
	}

	if atEOF {
		return len(data), data, nil
	}

	return 0, nil, nil
}

func decodeLine(line []byte) (Entry, error) {
	var raw json.RawMessage
	if err := json.Unmarshal(line, &raw); err != nil {
		return Entry{}, err
	}

	if raw[0] != '{' {
		return Entry{}, nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return Entry{}, err
	}

	return Entry{Fields: fields}, nil
}
