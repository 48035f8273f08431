// Package testutil provides test utilities and helpers.
package testutil

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"casetracker/internal/models"
)

// ScenarioFeed is a small feed with one snapshot and two queue positions.
const ScenarioFeed = `{
	"WAC|2024|10|SRC|I-129|Case Was Received|19000": 5,
	"WAC|2024|12|SRC|I-129|Case Was Received|19000": 3,
	"WAC|2024|10|SRC|I-129|Case Was Approved|19000": 2
}`

// LayeredFeed carries two snapshots for I-129/WAC plus other forms and centers.
// Day 14 only appears in the older snapshot.
const LayeredFeed = `{
	"WAC|2024|10|SRC|I-129|Case Was Received|19000": 5,
	"WAC|2024|12|SRC|I-129|Case Was Received|19000": 3,
	"WAC|2024|14|SRC|I-129|Case Was Received|19000": 9,
	"WAC|2024|10|SRC|I-129|Case Was Received|19001": 4,
	"WAC|2024|10|SRC|I-129|Case Was Approved|19001": "6",
	"WAC|2024|12|SRC|I-129|Case Is Being Actively Reviewed|19001": 1,
	"EAC|2024|10|IOE|I-765|Case Was Received|19001": 8,
	"LIN|2024|20|LIN|I-129|Case Was Approved|18990": 2
}`

// FeedServer serves body with the given status code and counts requests.
func FeedServer(t *testing.T, status int, body string) (*httptest.Server, *atomic.Int64) {
	t.Helper()

	var hits atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &hits
}

// WriteFeedFile writes body to a temporary file and returns its path.
func WriteFeedFile(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "data.json")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("failed to write feed file: %v", err)
	}
	return path
}

// Entry builds a well-formed case entry.
func Entry(center, day, form, status, updateDay string, count int64) models.CaseEntry {
	return models.CaseEntry{
		Center:    center,
		Year:      "2024",
		Day:       day,
		Code:      "SRC",
		Form:      form,
		Status:    status,
		UpdateDay: updateDay,
		Count:     models.NewCount(count),
	}
}
