package models

// Feed load states.
const (
	FeedPending = "pending"
	FeedOK      = "ok"
	FeedFailed  = "failed"
)
