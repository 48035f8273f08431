// Package stats reshapes decoded feed entries into the dashboard table.
//
// Everything here is a pure function of the entries and the selection, so a
// view can be rebuilt on every request without caching.
package stats

import (
	"slices"

	"casetracker/internal/models"
)

// Filtered is the selection-dependent working set of the dashboard.
type Filtered struct {
	// AllDates holds the entries of the selected form and center across every snapshot.
	AllDates []models.CaseEntry `json:"-"`
	// Selected holds the AllDates entries that belong to the effective snapshot.
	Selected []models.CaseEntry `json:"-"`

	FormTypes           []string `json:"form_types"`
	CenterNames         []string `json:"center_names"`
	AvailableUpdateDays []int    `json:"available_update_days"`
	LatestUpdateDay     *int     `json:"latest_update_day"`
	EffectiveUpdateDay  *int     `json:"effective_update_day"`
	ExistStatus         []string `json:"exist_status"`
	ExistingDays        []int    `json:"existing_days"`
	MaxCount            int64    `json:"max_count"`
}

// Filter narrows entries to the selected form and center and resolves the
// effective snapshot: the selected update day, or the latest one available.
func Filter(entries []models.CaseEntry, sel models.Selection) Filtered {
	f := Filtered{
		AllDates:            []models.CaseEntry{},
		Selected:            []models.CaseEntry{},
		AvailableUpdateDays: []int{},
		ExistStatus:         []string{},
		ExistingDays:        []int{},
	}

	forms := newOrderedSet()
	centers := newOrderedSet()
	for _, e := range entries {
		forms.add(e.Form)
		centers.add(e.Center)
		if e.Form == sel.Form && e.Center == sel.Center {
			f.AllDates = append(f.AllDates, e)
		}
	}
	f.FormTypes = forms.values()
	f.CenterNames = centers.values()

	updateDays := map[int]struct{}{}
	days := map[int]struct{}{}
	for _, e := range f.AllDates {
		if d, ok := e.UpdateDayNumber(); ok {
			updateDays[d] = struct{}{}
		}
		if d, ok := e.DayNumber(); ok {
			days[d] = struct{}{}
		}
		if e.Count.Valid && e.Count.Value > f.MaxCount {
			f.MaxCount = e.Count.Value
		}
	}
	f.AvailableUpdateDays = sortedKeys(updateDays)
	f.ExistingDays = sortedKeys(days)

	if n := len(f.AvailableUpdateDays); n > 0 {
		latest := f.AvailableUpdateDays[n-1]
		f.LatestUpdateDay = &latest
	}

	f.EffectiveUpdateDay = f.LatestUpdateDay
	if sel.UpdateDay != nil {
		effective := *sel.UpdateDay
		f.EffectiveUpdateDay = &effective
	}
	if f.EffectiveUpdateDay == nil {
		return f
	}

	statuses := newOrderedSet()
	for _, e := range f.AllDates {
		d, ok := e.UpdateDayNumber()
		if !ok || d != *f.EffectiveUpdateDay {
			continue
		}
		f.Selected = append(f.Selected, e)
		statuses.add(e.Status)
	}
	f.ExistStatus = statuses.values()

	return f
}

// HasData reports whether the form and center have any entries.
func (f Filtered) HasData() bool {
	return len(f.AllDates) > 0
}

// orderedSet keeps distinct strings in first-seen order.
type orderedSet struct {
	seen  map[string]struct{}
	order []string
}

func newOrderedSet() *orderedSet {
	return &orderedSet{seen: map[string]struct{}{}, order: []string{}}
}

func (s *orderedSet) add(v string) {
	if _, ok := s.seen[v]; ok {
		return
	}
	s.seen[v] = struct{}{}
	s.order = append(s.order, v)
}

func (s *orderedSet) values() []string {
	return s.order
}

func sortedKeys(m map[int]struct{}) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
