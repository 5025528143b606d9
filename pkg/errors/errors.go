package chatterbox_errors

import "errors"

// Common errors
var (
	ErrNotFound        = errors.New("not found")
	ErrRejectedPayload = errors.New("rejected payload")
	ErrMalformedBody   = errors.New("malformed body")
	ErrTooLarge        = errors.New("body too large")
	ErrQueueFull       = errors.New("queue full")
)
