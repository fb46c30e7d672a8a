package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an API failure so the command layer can decide
// presentation (inline message, re-login hint, etc.) uniformly.
type Kind string

const (
	KindValidation Kind = "validation"
	KindAuth       Kind = "auth"
	KindForbidden  Kind = "forbidden"
	KindNotFound   Kind = "not_found"
	KindServer     Kind = "server"
	KindNetwork    Kind = "network"
)

// Error is the unified error contract for every non-2xx response.
type Error struct {
	Status int
	Kind   Kind
	Detail string
}

func (e *Error) Error() string {
	if e.Status == 0 {
		return e.Detail
	}
	return fmt.Sprintf("%s (status %d)", e.Detail, e.Status)
}

// kindForStatus maps an HTTP status code to an error kind.
func kindForStatus(status int) Kind {
	switch {
	case status == http.StatusUnauthorized:
		return KindAuth
	case status == http.StatusForbidden:
		return KindForbidden
	case status == http.StatusNotFound:
		return KindNotFound
	case status >= 500:
		return KindServer
	default:
		return KindValidation
	}
}

// newAPIError builds an Error from a response body. The backend sends
// {"detail": "..."} on failures; anything else falls back to a generic
// message so callers never see raw response bodies.
func newAPIError(status int, body []byte) *Error {
	detail := ""

	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		detail = payload.Detail
	}

	if detail == "" {
		detail = fmt.Sprintf("request failed: %s", http.StatusText(status))
	}

	return &Error{
		Status: status,
		Kind:   kindForStatus(status),
		Detail: detail,
	}
}

func newNetworkError(err error) *Error {
	return &Error{
		Kind:   KindNetwork,
		Detail: fmt.Sprintf("failed to reach server: %v", err),
	}
}

// AsError unwraps err into an *Error if it carries one.
func AsError(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsUnauthorized reports whether err is a 401 from the backend. Call sites
// use this to tear down the session and ask the user to log in again.
func IsUnauthorized(err error) bool {
	apiErr, ok := AsError(err)
	return ok && apiErr.Kind == KindAuth
}

// IsNotFound reports whether err is a 404 from the backend.
func IsNotFound(err error) bool {
	apiErr, ok := AsError(err)
	return ok && apiErr.Kind == KindNotFound
}
