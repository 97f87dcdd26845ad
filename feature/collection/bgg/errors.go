package bgg

import (
	"errors"
	"fmt"
)

var (
	// ErrAuthRejected indicates the configured credential was refused.
	// It is never retried; the caller should prompt for credential renewal.
	ErrAuthRejected = errors.New("bgg: authentication rejected")

	// ErrRemoteUnavailable indicates the collection could not be fetched
	// at all, after exhausting the retry budget where applicable.
	ErrRemoteUnavailable = errors.New("bgg: remote service unavailable")
)

// ParseError describes a single malformed collection item. It is recorded
// per item and never aborts the rest of the sequence.
type ParseError struct {
	// ExternalID is the remote identifier, if one was present.
	ExternalID string
	// Name is the item name, if one was present.
	Name string
	// Reason describes what was missing or malformed.
	Reason string
}

func (e *ParseError) Error() string {
	id := e.ExternalID
	if id == "" {
		id = "?"
	}
	return fmt.Sprintf("bgg: item %s: %s", id, e.Reason)
}
