package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Preconditions checked before any network call.
var (
	ErrEmptyQuery        = errors.New("search query cannot be empty")
	ErrMissingCredential = errors.New("no API credential configured")
)

// UpstreamError means a fetch phase failed outright: network failure, invalid
// credential, quota exhaustion or a malformed response. It never mutates
// already displayed state.
type UpstreamError struct {
	Phase string // "search" or "details"
	Err   error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream %s call failed: %v", e.Phase, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// PartialDataError is the soft failure of the detail phase: one or more
// identifiers from the search phase came back without a detail record. The
// page accompanying it is still valid, with the affected items degraded.
type PartialDataError struct {
	Missing []string
}

func (e *PartialDataError) Error() string {
	return fmt.Sprintf("details missing for %d item(s): %s",
		len(e.Missing), strings.Join(e.Missing, ", "))
}
