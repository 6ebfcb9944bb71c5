package model

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// timestampLayouts are tried in order; layouts without a zone are read as UTC.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Timestamp is an ISO-8601 instant exactly as an adapter delivered it.
// It may be empty (absent) or malformed; Parse reports which.
type Timestamp string

// At formats t as an RFC 3339 Timestamp in UTC.
func At(t time.Time) Timestamp {
	return Timestamp(t.UTC().Format(time.RFC3339))
}

// IsZero reports whether the timestamp is absent.
func (t Timestamp) IsZero() bool {
	return strings.TrimSpace(string(t)) == ""
}

// Parse returns the instant in the offset it was written with; values without
// a zone are read as UTC. ok is false when the value is absent or matches none
// of the accepted layouts.
func (t Timestamp) Parse() (parsed time.Time, ok bool) {
	s := strings.TrimSpace(string(t))
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if v, err := time.Parse(layout, s); err == nil {
			return v, true
		}
	}
	return time.Time{}, false
}

// Value stores absent timestamps as NULL.
func (t Timestamp) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	return string(t), nil
}

// Scan implements sql.Scanner.
func (t *Timestamp) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*t = ""
	case string:
		*t = Timestamp(v)
	case []byte:
		*t = Timestamp(v)
	case time.Time:
		*t = At(v)
	default:
		return fmt.Errorf("unsupported timestamp type %T", value)
	}
	return nil
}
