package models

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Default selection values.
const (
	DefaultForm   = "I-129"
	DefaultCenter = "WAC"
)

var (
	ErrInvalidUpdateDay = errors.New("update day must be an integer")
	ErrInvalidSelection = errors.New("invalid selection")
)

// Selection is the filter state of the dashboard.
// A nil UpdateDay selects the latest snapshot available for the form and center.
type Selection struct {
	Form      string `json:"form"`
	Center    string `json:"center"`
	UpdateDay *int   `json:"update_day"`
}

// ParseSelection builds a selection from raw query values, falling back to
// defaults for empty form and center.
func ParseSelection(form, center, updateDay string, defaults Selection) (Selection, error) {
	sel := Selection{
		Form:   strings.TrimSpace(form),
		Center: strings.TrimSpace(center),
	}
	if sel.Form == "" {
		sel.Form = defaults.Form
	}
	if sel.Center == "" {
		sel.Center = defaults.Center
	}
	if sel.Form == "" || sel.Center == "" {
		return Selection{}, fmt.Errorf("%w: form and center are required", ErrInvalidSelection)
	}

	updateDay = strings.TrimSpace(updateDay)
	if updateDay != "" {
		day, err := strconv.Atoi(updateDay)
		if err != nil {
			return Selection{}, fmt.Errorf("%w: %q", ErrInvalidUpdateDay, updateDay)
		}
		sel.UpdateDay = &day
	}
	return sel, nil
}

// WithUpdateDay returns a copy of the selection pinned to a snapshot.
func (s Selection) WithUpdateDay(day int) Selection {
	s.UpdateDay = &day
	return s
}

// snapshotEpoch is the origin of update day counts.
var snapshotEpoch = time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC)

// SnapshotDate converts an update day to its calendar date.
func SnapshotDate(updateDay int) time.Time {
	return snapshotEpoch.AddDate(0, 0, updateDay)
}

// FormatSnapshotDay renders an update day as a short date, e.g. "Tue Jan 09 2024".
func FormatSnapshotDay(updateDay int) string {
	return SnapshotDate(updateDay).Format("Mon Jan 02 2006")
}
