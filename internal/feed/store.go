package feed

import (
	"sync/atomic"
	"time"

	"casetracker/internal/models"
)

const (
	statePending = models.FeedPending
	stateOK      = models.FeedOK
	stateFailed  = models.FeedFailed
)

// Snapshot is an immutable, fully decoded feed. Nothing modifies a snapshot
// after it has been published to a Store.
type Snapshot struct {
	State     string
	Source    string
	Entries   []models.CaseEntry
	Report    Report
	FetchedAt time.Time
	Err       error
}

// EmptySnapshot is the state before the feed has been fetched.
func EmptySnapshot() *Snapshot {
	return &Snapshot{State: statePending}
}

// FailedSnapshot is an empty feed standing in for one that could not be loaded.
func FailedSnapshot(source string, err error) *Snapshot {
	return &Snapshot{
		State:     stateFailed,
		Source:    source,
		FetchedAt: time.Now(),
		Err:       err,
	}
}

// Loaded reports whether a fetch has completed, successfully or not.
func (s *Snapshot) Loaded() bool {
	return s.State != statePending
}

// Failed reports whether the fetch failed.
func (s *Snapshot) Failed() bool {
	return s.State == stateFailed
}

// ErrorMessage returns the fetch error text, or "".
func (s *Snapshot) ErrorMessage() string {
	if s.Err == nil {
		return ""
	}
	return s.Err.Error()
}

// Store holds the current snapshot. Readers always see either the empty
// snapshot or a complete published one.
type Store struct {
	current atomic.Pointer[Snapshot]
}

// NewStore creates a store holding the empty snapshot.
func NewStore() *Store {
	s := &Store{}
	s.current.Store(EmptySnapshot())
	return s
}

// Load returns the current snapshot.
func (s *Store) Load() *Snapshot {
	return s.current.Load()
}

// Publish replaces the current snapshot.
func (s *Store) Publish(snap *Snapshot) {
	if snap == nil {
		snap = EmptySnapshot()
	}
	s.current.Store(snap)
}
