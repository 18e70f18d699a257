package llm

import "errors"

// Failure classes for outbound inference calls. Handlers map these to
// HTTP status codes with errors.Is; implementations wrap them with %w
// and attach detail.
var (
	// ErrUnavailable: the inference server could not be reached at all.
	ErrUnavailable = errors.New("inference server unreachable")
	// ErrTimeout: the call did not complete within the configured timeout.
	ErrTimeout = errors.New("inference call timed out")
	// ErrUpstream: the inference server answered with a non-success status.
	ErrUpstream = errors.New("inference server returned an error")
	// ErrEmptyAnswer: upstream reported success but the answer was blank.
	ErrEmptyAnswer = errors.New("inference server returned an empty answer")
)
