package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"casetracker/internal/feed"
	"casetracker/internal/models"
)

var (
	feedEntriesDesc = prometheus.NewDesc(
		"casetracker_feed_entries",
		"Number of decoded entries in the current feed snapshot",
		nil, nil,
	)
	feedStateDesc = prometheus.NewDesc(
		"casetracker_feed_state",
		"Current feed state (1 for the active state)",
		[]string{"state"}, nil,
	)
	feedAnomaliesDesc = prometheus.NewDesc(
		"casetracker_feed_decode_anomalies",
		"Decode anomalies in the current feed snapshot by kind",
		[]string{"kind"}, nil,
	)
	feedFetchedDesc = prometheus.NewDesc(
		"casetracker_feed_fetched_timestamp_seconds",
		"Unix time the current feed snapshot was fetched",
		nil, nil,
	)
)

// FeedCollector is a custom Prometheus collector that reads the current
// feed snapshot on each scrape.
type FeedCollector struct {
	store *feed.Store
}

// NewFeedCollector creates a collector over store.
func NewFeedCollector(store *feed.Store) *FeedCollector {
	return &FeedCollector{store: store}
}

// Describe sends the metric descriptors to the channel.
func (c *FeedCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- feedEntriesDesc
	ch <- feedStateDesc
	ch <- feedAnomaliesDesc
	ch <- feedFetchedDesc
}

// Collect emits gauges for the current snapshot.
func (c *FeedCollector) Collect(ch chan<- prometheus.Metric) {
	snap := c.store.Load()

	ch <- prometheus.MustNewConstMetric(feedEntriesDesc, prometheus.GaugeValue, float64(len(snap.Entries)))
	for _, state := range []string{models.FeedPending, models.FeedOK, models.FeedFailed} {
		v := 0.0
		if snap.State == state {
			v = 1
		}
		ch <- prometheus.MustNewConstMetric(feedStateDesc, prometheus.GaugeValue, v, state)
	}
	ch <- prometheus.MustNewConstMetric(feedAnomaliesDesc, prometheus.GaugeValue, float64(snap.Report.Duplicates), "duplicate_key")
	ch <- prometheus.MustNewConstMetric(feedAnomaliesDesc, prometheus.GaugeValue, float64(snap.Report.Malformed), "malformed_key")

	fetched := 0.0
	if !snap.FetchedAt.IsZero() {
		fetched = float64(snap.FetchedAt.Unix())
	}
	ch <- prometheus.MustNewConstMetric(feedFetchedDesc, prometheus.GaugeValue, fetched)
}

// Recorder holds the request-side metrics.
type Recorder struct {
	dashboardViews *prometheus.CounterVec
	fetchDuration  *prometheus.HistogramVec
}

// NewRecorder creates the request-side metrics without registering them.
func NewRecorder() *Recorder {
	return &Recorder{
		dashboardViews: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "casetracker_dashboard_views_total",
			Help: "Dashboard and dataset views by form type and center",
		}, []string{"form", "center"}),
		fetchDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "casetracker_feed_fetch_duration_seconds",
			Help:    "Duration of feed fetches by outcome",
			Buckets: prometheus.ExponentialBuckets(0.05, 2, 10),
		}, []string{"outcome"}),
	}
}

// Collectors returns the recorder's collectors for registration.
func (r *Recorder) Collectors() []prometheus.Collector {
	return []prometheus.Collector{r.dashboardViews, r.fetchDuration}
}

var (
	recorder     *Recorder
	recorderOnce sync.Once
)

// Init registers the feed collector and the recorder with the default registry.
// Must be called once at startup.
func Init(store *feed.Store) {
	recorderOnce.Do(func() {
		recorder = NewRecorder()
		prometheus.MustRegister(NewFeedCollector(store))
		prometheus.MustRegister(recorder.Collectors()...)
	})
}

// RecordDashboardView counts a rendered view for a form type and center.
func RecordDashboardView(form, center string) {
	if recorder == nil {
		return
	}
	recorder.dashboardViews.WithLabelValues(form, center).Inc()
}

// ObserveFetch records how long a feed fetch took and whether it succeeded.
func ObserveFetch(d time.Duration, outcome string) {
	if recorder == nil {
		return
	}
	recorder.fetchDuration.WithLabelValues(outcome).Observe(d.Seconds())
}
