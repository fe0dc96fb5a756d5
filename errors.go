package icontact

import (
	"errors"

	"github.com/LifePosts/icontact-go/internal/api"
)

// Sentinel errors for errors.Is() checks.
var (
	// ErrMissingAppID is returned when no application key is provided.
	ErrMissingAppID = errors.New("application key is required")

	// ErrMissingCredentials is returned when the username or password is empty.
	ErrMissingCredentials = errors.New("username and password are required")

	// ErrUnauthorized is returned when the API rejects the credentials.
	ErrUnauthorized = api.ErrUnauthorized

	// ErrNotFound is returned when a resource does not exist.
	ErrNotFound = api.ErrNotFound

	// ErrRateLimited is returned when the API rate limit is exceeded.
	ErrRateLimited = api.ErrRateLimited

	// ErrNoAccount is returned when account discovery yields no accounts.
	ErrNoAccount = errors.New("no account available for these credentials")

	// ErrNoClientFolder is returned when client-folder discovery yields
	// no folders.
	ErrNoClientFolder = errors.New("no client folder available for this account")
)

// IContactError is implemented by all SDK errors.
type IContactError interface {
	error
	IContactError() // marker method
}

// APIError is an HTTP error response from the iContact API, carrying the
// status code and the API's reported error messages.
type APIError = api.APIError

// ExcessiveRetriesError signals that the consecutive-failure cap was
// reached and the call was rejected before any network I/O.
type ExcessiveRetriesError = api.ExcessiveRetriesError

// NetworkError is a transport-level failure.
type NetworkError = api.NetworkError
