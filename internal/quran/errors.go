package quran

import "errors"

var (
	// ErrUnavailable indicates the content server could not be reached.
	ErrUnavailable = errors.New("quran content server unavailable")

	// ErrTimeout indicates a request exceeded the configured timeout.
	ErrTimeout = errors.New("quran content request timed out")

	// ErrInvalidResponse indicates a response that could not be decoded or
	// carried a non-OK status.
	ErrInvalidResponse = errors.New("invalid quran content response")

	// ErrRetryExhausted indicates all retry attempts failed.
	ErrRetryExhausted = errors.New("quran content retry attempts exhausted")
)
