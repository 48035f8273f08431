package feed

import "errors"

var (
	ErrUnexpectedStatus = errors.New("unexpected feed response status")
	ErrNotObject        = errors.New("feed is not a JSON object")
)
