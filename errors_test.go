package icontact

import (
	"errors"
	"strings"
	"testing"
)

func TestAPIError_Message(t *testing.T) {
	err := &APIError{
		StatusCode: 400,
		Messages:   []string{"Invalid email", "Missing listId"},
	}
	msg := err.Error()
	if !strings.Contains(msg, "400") {
		t.Errorf("Error() = %q, want status code", msg)
	}
	if !strings.Contains(msg, "Invalid email") || !strings.Contains(msg, "Missing listId") {
		t.Errorf("Error() = %q, want both messages", msg)
	}
}

func TestAPIError_SentinelMatching(t *testing.T) {
	cases := []struct {
		status   int
		sentinel error
	}{
		{401, ErrUnauthorized},
		{403, ErrUnauthorized},
		{404, ErrNotFound},
		{429, ErrRateLimited},
		{503, ErrRateLimited},
	}
	for _, tc := range cases {
		err := &APIError{StatusCode: tc.status}
		if !errors.Is(err, tc.sentinel) {
			t.Errorf("status %d: errors.Is() = false, want true for %v", tc.status, tc.sentinel)
		}
	}

	if errors.Is(&APIError{StatusCode: 400}, ErrNotFound) {
		t.Error("status 400 matched ErrNotFound")
	}
}

func TestExcessiveRetriesError_Message(t *testing.T) {
	err := &ExcessiveRetriesError{Limit: 5}
	if !strings.Contains(err.Error(), "5") {
		t.Errorf("Error() = %q, want retry limit", err.Error())
	}
}

func TestMarkerInterface(t *testing.T) {
	for _, err := range []error{
		&APIError{StatusCode: 500},
		&ExcessiveRetriesError{Limit: 3},
		&NetworkError{Err: errors.New("refused")},
	} {
		if _, ok := err.(IContactError); !ok {
			t.Errorf("%T does not implement IContactError", err)
		}
	}
}

func TestNetworkError_Unwrap(t *testing.T) {
	inner := errors.New("connection refused")
	err := &NetworkError{Err: inner}
	if !errors.Is(err, inner) {
		t.Error("errors.Is(err, inner) = false")
	}
}
