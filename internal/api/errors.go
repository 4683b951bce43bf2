package api

import (
	"errors"
	"fmt"
)

// APIError is an application-level failure: the response parsed cleanly but
// carried success=false. The message comes from the server verbatim.
type APIError struct {
	Path    string
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api: %s failed (status %d)", e.Path, e.Status)
	}
	return fmt.Sprintf("api: %s: %s", e.Path, e.Message)
}

// DecodeError means the response did not match the endpoint's envelope:
// non-JSON body, missing data payload, or a payload of the wrong shape.
// The client fails loudly on these instead of guessing at field locations.
type DecodeError struct {
	Path  string
	Cause error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("api: %s: unexpected response shape: %v", e.Path, e.Cause)
}

func (e *DecodeError) Unwrap() error { return e.Cause }

// IsAPIError reports whether err is an application-level failure and returns
// it when so.
func IsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
