package domain

import "errors"

// Sentinel errors for cross-binding error classification. Provider
// implementations wrap these so callers can handle error categories
// uniformly without importing binding-specific packages.
//
//	return fmt.Errorf("agent returned %d: %w", code, domain.ErrRequestFailed)
var (
	// ErrChannelUnavailable indicates no request channel to a metrics
	// backend could be resolved. Permanent for the session; consumers
	// switch to offline placeholders.
	ErrChannelUnavailable = errors.New("metrics channel unavailable")

	// ErrRequestFailed indicates a provider call failed during a tick.
	// Handled per-tick: readouts revert to placeholders and the next
	// regular tick retries.
	ErrRequestFailed = errors.New("metrics request failed")

	// ErrUnauthorized indicates the remote agent rejected the request
	// due to an invalid, expired, or missing token.
	ErrUnauthorized = errors.New("unauthorized")
)
