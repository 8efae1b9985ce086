package market

import (
	"errors"
	"fmt"
)

// ErrMissingCredentials is returned when no API credentials are configured.
// The provider degrades to a neutral snapshot without attempting the call.
var ErrMissingCredentials = errors.New("market credentials not configured")

// UnreachableError means the job-search service could not be reached or
// returned a non-success status.
type UnreachableError struct {
	Title string
	Cause error
}

func (e *UnreachableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("market service unreachable for %q: %v", e.Title, e.Cause)
	}
	return fmt.Sprintf("market service unreachable for %q", e.Title)
}

func (e *UnreachableError) Unwrap() error {
	return e.Cause
}

// MalformedError means the service responded but the payload was not the
// expected shape. Kept distinct from UnreachableError so genuine bugs don't
// masquerade as outages in the logs.
type MalformedError struct {
	Title   string
	Message string
	Cause   error
}

func (e *MalformedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("malformed market response for %q: %s: %v", e.Title, e.Message, e.Cause)
	}
	return fmt.Sprintf("malformed market response for %q: %s", e.Title, e.Message)
}

func (e *MalformedError) Unwrap() error {
	return e.Cause
}
