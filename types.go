package baseline

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Status is the normalized outcome of a single check. Values are ordered by severity.
type Status int

const (
	StatusOK Status = iota
	StatusWarn
	StatusFail
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "OK"
	case StatusWarn:
		return "WARN"
	case StatusFail:
		return "FAIL"
	}

	return "unknown"
}

// WorseThan reports whether s is strictly more severe than other.
func (s Status) WorseThan(other Status) bool {
	return s > other
}

// NormalizeStatus maps the raw "status" member of a log record to a Status.
// Anything that is not one of the known levels as a JSON string (case and surrounding
// whitespace aside) is a failure, including a missing member.
func NormalizeStatus(raw json.RawMessage) Status {
	var str string
	if len(raw) == 0 || raw[0] != '"' || json.Unmarshal(raw, &str) != nil {
		return StatusFail
	}

	switch strings.ToUpper(strings.TrimSpace(str)) {
	case "OK":
		return StatusOK
	case "WARN":
		return StatusWarn
	default:
		return StatusFail
	}
}

// Risk is the coarse risk level of a run.
type Risk int

const (
	RiskLow Risk = iota
	RiskMedium
	RiskHigh
)

func (r Risk) String() string {
	switch r {
	case RiskLow:
		return "low"
	case RiskMedium:
		return "medium"
	case RiskHigh:
		return "high"
	}

	return "unknown"
}

// RiskFor maps the number of failed checks to a risk level.
// Warnings deliberately play no part in it.
func RiskFor(failures int) Risk {
	switch {
	case failures <= 0:
		return RiskLow
	case failures == 1:
		return RiskMedium
	default:
		return RiskHigh
	}
}

// Field is an optional member of a log record.
type Field struct {
	Value string // string members verbatim, other JSON values as their compact text
	Set   bool
	// IsString tells whether the member was a JSON string.
	IsString bool
}

// FieldFrom builds a Field out of a raw JSON member. A nil raw means absent.
func FieldFrom(raw json.RawMessage) Field {
	if raw == nil {
		return Field{}
	}

	var str string
	if len(raw) > 0 && raw[0] == '"' && json.Unmarshal(raw, &str) == nil {
		return Field{Value: str, Set: true, IsString: true}
	}

	var compact bytes.Buffer
	if err := json.Compact(&compact, raw); err != nil {
		return Field{Value: string(raw), Set: true}
	}

	return Field{Value: compact.String(), Set: true}
}

// Or returns the field value, or fallback when the field is absent.
func (f Field) Or(fallback string) string {
	if !f.Set {
		return fallback
	}

	return f.Value
}

// Record is a classified check record.
type Record struct {
	Host    Field
	OS      Field
	Check   Field
	Details Field
	Status  Status

	// Where the record came from.
	File string
	Line int
}

// Counts tallies records per status.
type Counts struct {
	OK   int
	Warn int
	Fail int
}

// Total is the number of counted records.
func (c Counts) Total() int {
	return c.OK + c.Warn + c.Fail
}

// Add counts one record of the given status.
func (c *Counts) Add(status Status) {
	switch status {
	case StatusOK:
		c.OK++
	case StatusWarn:
		c.Warn++
	case StatusFail:
		c.Fail++
	}
}
