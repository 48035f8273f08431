package jobs

import (
	"context"
	"log/slog"
	"time"

	"casetracker/internal/feed"
	"casetracker/internal/metrics"
)

// FeedFetcher loads the case-status feed into the store.
type FeedFetcher struct {
	loader *feed.Loader
	store  *feed.Store
}

// NewFeedFetcher creates a new feed fetcher.
func NewFeedFetcher(loader *feed.Loader, store *feed.Store) *FeedFetcher {
	return &FeedFetcher{loader: loader, store: store}
}

// Run fetches the feed once and publishes the result. A failed fetch
// publishes an empty snapshot in the failed state; the feed is not retried.
func (f *FeedFetcher) Run(ctx context.Context) {
	source := f.loader.Source()
	slog.Info("Fetching case feed", "source", source)

	start := time.Now()
	snap, err := f.loader.Fetch(ctx)
	elapsed := time.Since(start)

	if err != nil {
		metrics.ObserveFetch(elapsed, "error")
		slog.Error("Failed to load case feed", "source", source, "error", err, "duration", elapsed)
		f.store.Publish(feed.FailedSnapshot(source, err))
		return
	}

	metrics.ObserveFetch(elapsed, "ok")
	f.store.Publish(snap)

	r := snap.Report
	if r.Duplicates > 0 || r.Malformed > 0 {
		slog.Warn("Case feed decoded with anomalies",
			"duplicate_keys", r.Duplicates,
			"malformed_keys", r.Malformed)
	}
	slog.Info("Case feed loaded",
		"source", source,
		"entries", len(snap.Entries),
		"duration", elapsed)
}
