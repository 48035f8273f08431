package models

import "strconv"

// PivotRow is one x-axis tick of the chart: a queue position and the count
// observed for each status at that position in the selected snapshot.
// Backfilled rows have no counts.
type PivotRow struct {
	Day    string           `json:"day"`
	Counts map[string]Count `json:"counts"`
}

// NewPivotRow creates an empty row for the given day.
func NewPivotRow(day int) PivotRow {
	return PivotRow{Day: strconv.Itoa(day), Counts: map[string]Count{}}
}

// Status returns the count for a status, if the row has one.
func (r PivotRow) Status(status string) (Count, bool) {
	c, ok := r.Counts[status]
	return c, ok
}

// IsBackfill reports whether the row only carries its day.
func (r PivotRow) IsBackfill() bool {
	return len(r.Counts) == 0
}
