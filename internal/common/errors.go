// Package common defines shared sentinel errors used across the TinyTracker
// core. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Store-level errors.
	ErrUnknownCategory  = errors.New("unknown category")
	ErrCategoryMismatch = errors.New("record does not match category")

	// Wire-format errors. Each transfer channel fails with its own sentinel
	// so the caller can tell which channel rejected the input.
	ErrIncompatiblePayload = errors.New("incompatible sync payload")
	ErrInvalidSyncCode     = errors.New("invalid backup code")

	// Scan-session errors.
	ErrNoActiveScan = errors.New("no active scan session")

	// Document-understanding service errors.
	ErrDocServiceUnavailable = errors.New("document import unavailable")
	ErrMalformedDocResponse  = errors.New("malformed document import response")
)
