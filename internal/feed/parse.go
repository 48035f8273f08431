package feed

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"casetracker/internal/models"
)

// Pair is one key/count member of the feed object, in document order.
type Pair struct {
	Key   string
	Count models.Count
}

// Report summarizes anomalies seen while parsing and decoding a feed.
type Report struct {
	Entries    int `json:"entries"`
	Duplicates int `json:"duplicates"`
	Malformed  int `json:"malformed"`
}

// Parse reads a feed object from r, preserving member order.
// A key that appears more than once keeps the position of its first
// occurrence and the value of its last one.
func Parse(r io.Reader) ([]Pair, Report, error) {
	var report Report

	dec := json.NewDecoder(r)
	tok, err := dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, report, fmt.Errorf("%w: empty body", ErrNotObject)
		}
		return nil, report, fmt.Errorf("read feed: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, report, fmt.Errorf("%w: got %v", ErrNotObject, tok)
	}

	var pairs []Pair
	index := map[string]int{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, report, fmt.Errorf("read feed key: %w", err)
		}
		key, ok := tok.(string)
		if !ok {
			return nil, report, fmt.Errorf("%w: unexpected key token %v", ErrNotObject, tok)
		}

		var count models.Count
		if err := dec.Decode(&count); err != nil {
			return nil, report, fmt.Errorf("read count for %q: %w", key, err)
		}

		if i, seen := index[key]; seen {
			pairs[i].Count = count
			report.Duplicates++
			continue
		}
		index[key] = len(pairs)
		pairs = append(pairs, Pair{Key: key, Count: count})
	}

	if _, err := dec.Token(); err != nil {
		return nil, report, fmt.Errorf("read feed end: %w", err)
	}

	report.Entries = len(pairs)
	return pairs, report, nil
}
