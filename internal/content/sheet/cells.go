package sheet

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Spreadsheet cells arrive as whatever type the sheet inferred: an id column
// may be a number in one row and a string in the next, dates come back as
// ISO timestamps, and checkbox columns as booleans or "TRUE". The types below
// decode those leniently.

// text decodes any scalar cell into its string form.
type text string

func (t *text) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case len(b) == 0 || bytes.Equal(b, []byte("null")):
		*t = ""
	case b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*t = text(s)
	default:
		*t = text(b)
	}
	return nil
}

func (t text) String() string { return strings.TrimSpace(string(t)) }

// number decodes numeric cells, including numbers typed as text.
type number float64

func (n *number) UnmarshalJSON(b []byte) error {
	var raw text
	if err := raw.UnmarshalJSON(b); err != nil {
		return err
	}
	s := strings.ReplaceAll(raw.String(), " ", "")
	if s == "" {
		*n = 0
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("invalid numeric cell %q: %w", s, err)
	}
	*n = number(f)
	return nil
}

// flag decodes checkbox cells: true, "TRUE", "true", "1".
type flag bool

func (f *flag) UnmarshalJSON(b []byte) error {
	var raw text
	if err := raw.UnmarshalJSON(b); err != nil {
		return err
	}
	switch strings.ToLower(raw.String()) {
	case "true", "1", "yes", "ya":
		*f = true
	default:
		*f = false
	}
	return nil
}

var timeLayouts = []string{time.RFC3339Nano, time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"}

// parseTime reads a timestamp cell; the zero time and false mean empty or unparseable.
func parseTime(t text) (time.Time, bool) {
	s := t.String()
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range timeLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, true
		}
	}
	// Sheet-generated ids are millisecond epochs; createdAt occasionally is too.
	if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.UnixMilli(ms).UTC(), true
	}
	return time.Time{}, false
}

// clock normalizes a time-of-day cell. Time-formatted cells are serialized by
// the sheet as a full timestamp on 1899-12-30; plain text is kept as-is.
func clock(t text) string {
	s := t.String()
	ts, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return s
	}
	return ts.Format("15:04")
}

// date normalizes a date cell to YYYY-MM-DD when it is a timestamp.
func date(t text) string {
	s := t.String()
	ts, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return s
	}
	return ts.Format("2006-01-02")
}
