// Package api provides HTTP client functionality for communicating with
// the iContact API. It builds authenticated requests, encodes parameters
// per verb and content type, and converts error responses into typed
// errors.
//
// # Authentication
//
// Every request carries the full credential set as headers: Api-AppId,
// Api-Username, Api-Password and Api-Version. There is no session or
// token exchange.
//
// # Parameter Encoding
//
// GET and DELETE requests encode parameters into the query string; an
// empty parameter map leaves the URL untouched. POST requests carry a
// JSON body by default, or form-encoded fields when [Request.Form] is
// set. PUT requests always serialize the payload in the negotiated
// format.
//
// # Retry Gate
//
// The client keeps a consecutive-failure counter. Every failed call
// (network error or status >= 400) increments it; once it reaches
// [Config.MaxRetries] the next call is rejected locally with
// [*ExcessiveRetriesError], before any network I/O. Any successful
// response resets the counter to zero. There is no sleeping and no
// backoff: the gate only stops a client that keeps failing.
//
// # Error Handling
//
// Statuses >= 400 produce [*APIError] carrying the status code and the
// API's "errors" message list. Sentinels are matched with errors.Is:
//
//   - [ErrUnauthorized]: credentials rejected (401, 403).
//   - [ErrNotFound]: resource does not exist (404).
//   - [ErrRateLimited]: request rate exceeded (503, 429).
//
// # Thread Safety
//
// The retry counter is unsynchronized mutable state; a Client must not
// be shared across goroutines without external locking.
package api
