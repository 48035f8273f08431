package models

import "time"

// SnapshotInfo describes one snapshot of the feed.
type SnapshotInfo struct {
	UpdateDay int    `json:"update_day"`
	Date      string `json:"date"`
}

// NewSnapshotInfo returns the info for an update day.
func NewSnapshotInfo(updateDay int) SnapshotInfo {
	return SnapshotInfo{UpdateDay: updateDay, Date: SnapshotDate(updateDay).Format(time.DateOnly)}
}

// OptionsResponse lists the values the dashboard selectors offer.
type OptionsResponse struct {
	FormTypes   []string       `json:"form_types"`
	CenterNames []string       `json:"center_names"`
	Snapshots   []SnapshotInfo `json:"snapshots"`
	Latest      *SnapshotInfo  `json:"latest"`
}

// FeedStatusResponse reports the state of the loaded feed.
type FeedStatusResponse struct {
	State      string     `json:"state"`
	Source     string     `json:"source,omitempty"`
	Entries    int        `json:"entries"`
	Duplicates int        `json:"duplicate_keys"`
	Malformed  int        `json:"malformed_keys"`
	FetchedAt  *time.Time `json:"fetched_at"`
	Error      string     `json:"error,omitempty"`
}

// HealthResponse is returned by the liveness endpoint.
type HealthResponse struct {
	Status string `json:"status"`
	Feed   string `json:"feed"`
}
