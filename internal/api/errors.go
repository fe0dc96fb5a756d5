package api

import (
	"errors"
	"fmt"
	"strings"
)

// Common API errors that can be checked with errors.Is.
var (
	// ErrUnauthorized indicates the application key, username or password
	// was rejected by the API.
	ErrUnauthorized = errors.New("authorization failed")
	// ErrNotFound indicates the requested resource does not exist.
	ErrNotFound = errors.New("resource not found")
	// ErrRateLimited indicates the API rate limit has been exceeded.
	ErrRateLimited = errors.New("rate limit exceeded")
)

// APIError represents an HTTP error response from the iContact API.
// The API reports failures as a JSON body with an "errors" list of
// human-readable messages; Messages carries that list. When the body
// does not contain an errors list, Messages holds the raw body instead.
type APIError struct {
	StatusCode int
	Messages   []string
}

func (e *APIError) Error() string {
	if len(e.Messages) > 0 {
		return fmt.Sprintf("API error %d: %s", e.StatusCode, strings.Join(e.Messages, "; "))
	}
	return fmt.Sprintf("API error %d", e.StatusCode)
}

// IContactError implements the IContactError interface.
func (e *APIError) IContactError() {}

// Is implements errors.Is for sentinel error matching.
func (e *APIError) Is(target error) bool {
	switch e.StatusCode {
	case 401, 403:
		return target == ErrUnauthorized
	case 404:
		return target == ErrNotFound
	case 429, 503:
		// iContact signals rate limiting with 503; 429 is matched for
		// completeness.
		return target == ErrRateLimited
	}
	return false
}

// ExcessiveRetriesError is returned when the consecutive-failure counter
// reaches the configured maximum. The failing call is rejected locally,
// before any network I/O, until a successful request resets the counter.
type ExcessiveRetriesError struct {
	Limit int
}

func (e *ExcessiveRetriesError) Error() string {
	return fmt.Sprintf("exceeded maximum retry count (%d)", e.Limit)
}

// IContactError implements the IContactError interface.
func (e *ExcessiveRetriesError) IContactError() {}

// NetworkError represents a transport-level failure before any HTTP
// status was received.
type NetworkError struct {
	Err error
	URL string
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// IContactError implements the IContactError interface.
func (e *NetworkError) IContactError() {}
