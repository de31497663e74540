package listing

import (
	"errors"
	"fmt"
)

// ErrFetchFailed is matched by every FetchError via errors.Is.
var ErrFetchFailed = errors.New("fetch failed")

// FailureKind classifies why a fetch did not produce a page.
type FailureKind string

const (
	FailureTransport FailureKind = "transport" // network error or timeout
	FailureStatus    FailureKind = "status"    // non-2xx response
	FailurePayload   FailureKind = "payload"   // body did not match the listing schema
)

// FetchError describes a failed page fetch.
type FetchError struct {
	Kind       FailureKind
	PageIndex  int
	PageSize   int
	StatusCode int // set for FailureStatus
	Err        error
}

func (e *FetchError) Error() string {
	switch e.Kind {
	case FailureStatus:
		return fmt.Sprintf("fetch page %d (limit %d): unexpected status %d", e.PageIndex, e.PageSize, e.StatusCode)
	default:
		return fmt.Sprintf("fetch page %d (limit %d): %s: %v", e.PageIndex, e.PageSize, e.Kind, e.Err)
	}
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Is reports FetchError as ErrFetchFailed so callers can test the class
// without caring about the concrete kind.
func (e *FetchError) Is(target error) bool {
	return target == ErrFetchFailed
}

// IsFetchFailure returns true if err is any kind of fetch failure.
func IsFetchFailure(err error) bool {
	return errors.Is(err, ErrFetchFailed)
}
