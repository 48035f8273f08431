package stats

import (
	"reflect"
	"strings"
	"testing"

	"casetracker/internal/feed"
	"casetracker/internal/models"
	"casetracker/internal/testutil"
)

func loadEntries(t *testing.T, body string) []models.CaseEntry {
	t.Helper()

	pairs, _, err := feed.Parse(strings.NewReader(body))
	if err != nil {
		t.Fatalf("failed to parse feed: %v", err)
	}
	entries, _ := feed.Decode(pairs)
	return entries
}

func defaultSelection() models.Selection {
	return models.Selection{Form: models.DefaultForm, Center: models.DefaultCenter}
}

func counts(pairs ...any) map[string]models.Count {
	m := map[string]models.Count{}
	for i := 0; i+1 < len(pairs); i += 2 {
		m[pairs[i].(string)] = models.NewCount(int64(pairs[i+1].(int)))
	}
	return m
}

func TestBuild_Scenario(t *testing.T) {
	entries := loadEntries(t, testutil.ScenarioFeed)

	view := Build(entries, defaultSelection())

	if !reflect.DeepEqual(view.ExistingDays, []int{10, 12}) {
		t.Errorf("ExistingDays = %v, want [10 12]", view.ExistingDays)
	}
	want := []models.PivotRow{
		{Day: "10", Counts: counts(models.StatusCaseReceived, 5, models.StatusCaseApproved, 2)},
		{Day: "12", Counts: counts(models.StatusCaseReceived, 3)},
	}
	if !reflect.DeepEqual(view.Rows, want) {
		t.Errorf("Rows = %+v, want %+v", view.Rows, want)
	}
	if view.EffectiveUpdateDay == nil || *view.EffectiveUpdateDay != 19000 {
		t.Errorf("EffectiveUpdateDay = %v, want 19000", view.EffectiveUpdateDay)
	}
	if view.MaxCount != 5 {
		t.Errorf("MaxCount = %d, want 5", view.MaxCount)
	}
}

func TestFilter_Layered(t *testing.T) {
	entries := loadEntries(t, testutil.LayeredFeed)

	f := Filter(entries, defaultSelection())

	if len(f.AllDates) != 6 {
		t.Errorf("len(AllDates) = %d, want 6", len(f.AllDates))
	}
	if !reflect.DeepEqual(f.AvailableUpdateDays, []int{19000, 19001}) {
		t.Errorf("AvailableUpdateDays = %v", f.AvailableUpdateDays)
	}
	if f.LatestUpdateDay == nil || *f.LatestUpdateDay != 19001 {
		t.Errorf("LatestUpdateDay = %v, want 19001", f.LatestUpdateDay)
	}
	if len(f.Selected) != 3 {
		t.Errorf("len(Selected) = %d, want 3", len(f.Selected))
	}
	if !reflect.DeepEqual(f.FormTypes, []string{"I-129", "I-765"}) {
		t.Errorf("FormTypes = %v", f.FormTypes)
	}
	if !reflect.DeepEqual(f.CenterNames, []string{"WAC", "EAC", "LIN"}) {
		t.Errorf("CenterNames = %v", f.CenterNames)
	}
	wantStatus := []string{models.StatusCaseReceived, models.StatusCaseApproved, "Case Is Being Actively Reviewed"}
	if !reflect.DeepEqual(f.ExistStatus, wantStatus) {
		t.Errorf("ExistStatus = %v, want %v", f.ExistStatus, wantStatus)
	}
	if !reflect.DeepEqual(f.ExistingDays, []int{10, 12, 14}) {
		t.Errorf("ExistingDays = %v", f.ExistingDays)
	}
	if f.MaxCount != 9 {
		t.Errorf("MaxCount = %d, want 9 (across all snapshots)", f.MaxCount)
	}
}

func TestBuild_SnapshotSelection(t *testing.T) {
	entries := loadEntries(t, testutil.LayeredFeed)

	tests := []struct {
		name      string
		updateDay *int
		want      []models.PivotRow
	}{
		{
			name: "latest by default",
			want: []models.PivotRow{
				{Day: "10", Counts: counts(models.StatusCaseReceived, 4, models.StatusCaseApproved, 6)},
				{Day: "12", Counts: counts("Case Is Being Actively Reviewed", 1)},
				{Day: "14", Counts: counts()},
			},
		},
		{
			name:      "older snapshot",
			updateDay: intPtr(19000),
			want: []models.PivotRow{
				{Day: "10", Counts: counts(models.StatusCaseReceived, 5)},
				{Day: "12", Counts: counts(models.StatusCaseReceived, 3)},
				{Day: "14", Counts: counts(models.StatusCaseReceived, 9)},
			},
		},
		{
			name:      "snapshot without data",
			updateDay: intPtr(18000),
			want: []models.PivotRow{
				{Day: "10", Counts: counts()},
				{Day: "12", Counts: counts()},
				{Day: "14", Counts: counts()},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel := defaultSelection()
			sel.UpdateDay = tt.updateDay

			view := Build(entries, sel)
			if !reflect.DeepEqual(view.Rows, tt.want) {
				t.Errorf("Rows = %+v, want %+v", view.Rows, tt.want)
			}
		})
	}
}

func TestBuild_DefaultSnapshotIsLatest(t *testing.T) {
	entries := loadEntries(t, testutil.LayeredFeed)

	for _, sel := range []models.Selection{
		defaultSelection(),
		{Form: "I-765", Center: "EAC"},
		{Form: "I-129", Center: "LIN"},
	} {
		view := Build(entries, sel)
		days := view.AvailableUpdateDays
		if len(days) == 0 {
			t.Fatalf("%s/%s: no update days", sel.Form, sel.Center)
		}
		if view.EffectiveUpdateDay == nil || *view.EffectiveUpdateDay != days[len(days)-1] {
			t.Errorf("%s/%s: EffectiveUpdateDay = %v, want %d", sel.Form, sel.Center, view.EffectiveUpdateDay, days[len(days)-1])
		}
	}
}

func TestBuild_EmptyFeed(t *testing.T) {
	view := Build(nil, defaultSelection())

	if view.EffectiveUpdateDay != nil || view.LatestUpdateDay != nil {
		t.Errorf("update days should be unset, got %v / %v", view.EffectiveUpdateDay, view.LatestUpdateDay)
	}
	if len(view.Rows) != 0 || len(view.ExistingDays) != 0 || len(view.ExistStatus) != 0 {
		t.Errorf("empty feed should give an empty view, got %+v", view)
	}
	if view.Rows == nil || view.FormTypes == nil || view.AvailableUpdateDays == nil {
		t.Error("empty view should use empty slices, not nil")
	}
	if view.HasData() {
		t.Error("HasData() should be false")
	}
}

func TestBuild_UnknownFormCenter(t *testing.T) {
	entries := loadEntries(t, testutil.LayeredFeed)

	view := Build(entries, models.Selection{Form: "I-999", Center: "XYZ"})
	if len(view.Rows) != 0 || view.EffectiveUpdateDay != nil {
		t.Errorf("unknown form/center should give an empty table, got %+v", view)
	}
	if len(view.FormTypes) != 2 || len(view.CenterNames) != 3 {
		t.Errorf("selector values must cover the whole feed, got %v / %v", view.FormTypes, view.CenterNames)
	}
}

func TestBuild_Idempotent(t *testing.T) {
	entries := loadEntries(t, testutil.LayeredFeed)

	for _, sel := range []models.Selection{
		defaultSelection(),
		defaultSelection().WithUpdateDay(19000),
		{Form: "I-765", Center: "EAC"},
	} {
		first := Build(entries, sel)
		second := Build(entries, sel)
		if !reflect.DeepEqual(first, second) {
			t.Errorf("Build(%+v) is not idempotent", sel)
		}
	}
}

func TestBuild_BackfillProperties(t *testing.T) {
	entries := loadEntries(t, testutil.LayeredFeed)

	for _, sel := range []models.Selection{
		defaultSelection(),
		defaultSelection().WithUpdateDay(19000),
		defaultSelection().WithUpdateDay(42),
		{Form: "I-129", Center: "LIN"},
	} {
		view := Build(entries, sel)

		if len(view.Rows) != len(view.ExistingDays) {
			t.Fatalf("len(Rows) = %d, len(ExistingDays) = %d", len(view.Rows), len(view.ExistingDays))
		}

		observed := map[string]map[string]models.Count{}
		for _, e := range view.Selected {
			if observed[e.Day] == nil {
				observed[e.Day] = map[string]models.Count{}
			}
			observed[e.Day][e.Status] = e.Count
		}

		for i, day := range view.ExistingDays {
			row := view.Rows[i]
			if row.Day != models.NewPivotRow(day).Day {
				t.Errorf("Rows[%d].Day = %q, want %d", i, row.Day, day)
			}
			want, present := observed[row.Day]
			if !present {
				if !row.IsBackfill() {
					t.Errorf("day %s is absent from the snapshot but has counts %v", row.Day, row.Counts)
				}
				continue
			}
			if !reflect.DeepEqual(row.Counts, want) {
				t.Errorf("day %s counts = %v, want %v", row.Day, row.Counts, want)
			}
		}
	}
}

func TestPivot_LastWriteWins(t *testing.T) {
	entries := []models.CaseEntry{
		testutil.Entry("WAC", "5", "I-129", models.StatusCaseReceived, "1", 1),
		testutil.Entry("WAC", "3", "I-129", models.StatusCaseReceived, "1", 2),
		testutil.Entry("WAC", "5", "I-129", models.StatusCaseReceived, "1", 9),
		testutil.Entry("WAC", "abc", "I-129", models.StatusCaseReceived, "1", 4),
	}

	rows := Pivot(entries)
	want := []models.PivotRow{
		{Day: "3", Counts: counts(models.StatusCaseReceived, 2)},
		{Day: "5", Counts: counts(models.StatusCaseReceived, 9)},
	}
	if !reflect.DeepEqual(rows, want) {
		t.Errorf("Pivot() = %+v, want %+v", rows, want)
	}
}

func TestPivot_NormalizesDay(t *testing.T) {
	entries := []models.CaseEntry{
		testutil.Entry("WAC", "010", "I-129", models.StatusCaseReceived, "1", 3),
	}

	rows := Backfill(Pivot(entries), []int{9, 10})
	if len(rows) != 2 {
		t.Fatalf("len(rows) = %d, want 2", len(rows))
	}
	if !rows[0].IsBackfill() {
		t.Errorf("day 9 should be backfilled, got %v", rows[0].Counts)
	}
	if c, ok := rows[1].Status(models.StatusCaseReceived); rows[1].Day != "10" || !ok || c.Value != 3 {
		t.Errorf("rows[1] = %+v, want day 10 with 3 received", rows[1])
	}
}

func TestBackfill_FollowsDayOrder(t *testing.T) {
	rows := []models.PivotRow{
		{Day: "2", Counts: counts("A", 1)},
		{Day: "7", Counts: counts("A", 2)},
		{Day: "99", Counts: counts("A", 3)},
	}

	out := Backfill(rows, []int{1, 2, 3, 7})
	var got []string
	for _, r := range out {
		got = append(got, r.Day)
	}
	if !reflect.DeepEqual(got, []string{"1", "2", "3", "7"}) {
		t.Errorf("Backfill() days = %v, want [1 2 3 7]", got)
	}
	if out[0].Counts == nil || !out[0].IsBackfill() || !out[2].IsBackfill() {
		t.Error("synthesized rows should carry an empty counts map")
	}
}

func intPtr(v int) *int { return &v }
