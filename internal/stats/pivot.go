package stats

import (
	"slices"
	"strconv"

	"casetracker/internal/models"
)

// View is everything the dashboard renders for one selection.
type View struct {
	Selection models.Selection `json:"selection"`
	Filtered
	Rows []models.PivotRow `json:"rows"`
}

// Build runs the whole reshaping pipeline for a selection.
func Build(entries []models.CaseEntry, sel models.Selection) *View {
	f := Filter(entries, sel)
	return &View{
		Selection: sel,
		Filtered:  f,
		Rows:      Backfill(Pivot(f.Selected), f.ExistingDays),
	}
}

// Pivot groups entries by queue position and turns each status into a column.
// Rows are ordered by numeric day. When two entries share a day and status the
// later one wins. Entries whose day is not an integer cannot be placed on the
// axis and are skipped.
func Pivot(entries []models.CaseEntry) []models.PivotRow {
	byDay := map[int]models.PivotRow{}
	for _, e := range entries {
		day, ok := e.DayNumber()
		if !ok {
			continue
		}
		row, ok := byDay[day]
		if !ok {
			row = models.NewPivotRow(day)
			byDay[day] = row
		}
		row.Counts[e.Status] = e.Count
	}

	days := make([]int, 0, len(byDay))
	for day := range byDay {
		days = append(days, day)
	}
	slices.Sort(days)

	rows := make([]models.PivotRow, 0, len(days))
	for _, day := range days {
		rows = append(rows, byDay[day])
	}
	return rows
}

// Backfill returns one row per day in days, in that order, taking the pivoted
// row when there is one and an empty row otherwise. This keeps the chart's
// x-axis contiguous regardless of how sparse the snapshot is.
func Backfill(rows []models.PivotRow, days []int) []models.PivotRow {
	byDay := make(map[int]models.PivotRow, len(rows))
	for _, r := range rows {
		if day, err := strconv.Atoi(r.Day); err == nil {
			byDay[day] = r
		}
	}

	out := make([]models.PivotRow, 0, len(days))
	for _, day := range days {
		if r, ok := byDay[day]; ok {
			out = append(out, r)
			continue
		}
		out = append(out, models.NewPivotRow(day))
	}
	return out
}
