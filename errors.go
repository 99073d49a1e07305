package landsat

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedFilter is returned when a stored filter value has a
	// nested shape the search endpoint cannot accept. Only single-key
	// comparison objects (e.g. {"lt": 50}) are supported.
	ErrUnsupportedFilter = errors.New("unsupported nested filter shape")

	// ErrPlatformUnrecognized is returned when a band list is requested
	// for a platform without a known band table.
	ErrPlatformUnrecognized = errors.New("unrecognized platform")

	// ErrIndexOutOfRange is returned by ResultSet.Scene for an index
	// outside [0, Len).
	ErrIndexOutOfRange = errors.New("scene index out of range")
)

// ValidationError reports a rejected filter value. A setter that returns
// one leaves the builder's previous value for that field untouched.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// RequestError reports a non-200 response from the search endpoint. Body
// holds the raw response body, which may or may not be JSON.
type RequestError struct {
	StatusCode int
	Body       []byte
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("search request failed with status %d", e.StatusCode)
}
