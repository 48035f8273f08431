package models

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Well-known status labels.
const (
	StatusCaseReceived = "Case Was Received"
	StatusCaseApproved = "Case Was Approved"
)

// CaseEntry is one decoded record of the case-status feed.
// Day is the numeric suffix of a case-number range (queue position), not a calendar date.
// UpdateDay identifies the scrape snapshot as a day count since 1970-01-01.
type CaseEntry struct {
	Center    string `json:"center"`
	Year      string `json:"year"`
	Day       string `json:"day"`
	Code      string `json:"code"`
	Form      string `json:"form"`
	Status    string `json:"status"`
	UpdateDay string `json:"update_day"`
	Count     Count  `json:"count"`
}

// DayNumber returns the queue position as an integer.
func (e CaseEntry) DayNumber() (int, bool) {
	return parseInt(e.Day)
}

// UpdateDayNumber returns the snapshot day as an integer.
func (e CaseEntry) UpdateDayNumber() (int, bool) {
	return parseInt(e.UpdateDay)
}

// Count is a case count from the feed. The feed carries either a JSON number
// or a numeric string; anything else decodes as an invalid count instead of failing.
type Count struct {
	Value int64
	Valid bool
}

// NewCount returns a valid count.
func NewCount(v int64) Count {
	return Count{Value: v, Valid: true}
}

// ParseCount parses a count the way the dashboard reads them: leading
// integer part, fractional digits truncated, surrounding whitespace ignored.
// Values outside the int64 range are invalid.
func ParseCount(s string) Count {
	s = strings.TrimSpace(s)
	if s == "" {
		return Count{}
	}
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		return NewCount(v)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return Count{}
	}
	return NewCount(int64(f))
}

// MarshalJSON encodes invalid counts as null.
func (c Count) MarshalJSON() ([]byte, error) {
	if !c.Valid {
		return []byte("null"), nil
	}
	return strconv.AppendInt(nil, c.Value, 10), nil
}

// UnmarshalJSON accepts numbers and numeric strings. Other values leave the count invalid.
func (c *Count) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0, bytes.Equal(data, []byte("null")):
		*c = Count{}
	case data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			*c = Count{}
			return nil
		}
		*c = ParseCount(s)
	default:
		*c = ParseCount(string(data))
	}
	return nil
}

// String returns the decimal form, or "" for an invalid count.
func (c Count) String() string {
	if !c.Valid {
		return ""
	}
	return strconv.FormatInt(c.Value, 10)
}

func parseInt(s string) (int, bool) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	return v, true
}
