package feed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// DefaultURL is the published case-status feed.
const DefaultURL = "https://raw.githubusercontent.com/vicdus/uscis-case-statistics/master/src/data.json"

// Loader fetches and decodes the case-status feed.
type Loader struct {
	url    string
	file   string
	client *http.Client
}

// NewLoader creates a loader for url. When file is set the feed is read from
// disk instead. A zero timeout leaves requests without a deadline.
func NewLoader(url, file string, timeout time.Duration) *Loader {
	return &Loader{
		url:  url,
		file: file,
		client: &http.Client{
			Timeout: timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return errors.New("too many redirects")
				}
				return nil
			},
		},
	}
}

// Source describes where the feed is read from.
func (l *Loader) Source() string {
	if l.file != "" {
		return "file://" + l.file
	}
	return l.url
}

// Fetch performs a single fetch of the feed. There is no retry.
func (l *Loader) Fetch(ctx context.Context) (*Snapshot, error) {
	body, err := l.open(ctx)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	pairs, report, err := Parse(body)
	if err != nil {
		return nil, fmt.Errorf("parse feed from %s: %w", l.Source(), err)
	}

	entries, malformed := Decode(pairs)
	report.Malformed = malformed

	return &Snapshot{
		State:     stateOK,
		Source:    l.Source(),
		Entries:   entries,
		Report:    report,
		FetchedAt: time.Now(),
	}, nil
}

func (l *Loader) open(ctx context.Context) (io.ReadCloser, error) {
	if l.file != "" {
		f, err := os.Open(l.file)
		if err != nil {
			return nil, fmt.Errorf("open feed file: %w", err)
		}
		return f, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build feed request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "CaseTracker/1.0")

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch feed: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("%w: %s", ErrUnexpectedStatus, resp.Status)
	}
	return resp.Body, nil
}
