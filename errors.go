package restclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
)

// ErrorKind classifies REST client failures.
type ErrorKind int

const (
	// KindArgument indicates an invalid argument, detected before any I/O.
	KindArgument ErrorKind = iota
	// KindTransport indicates a network-level failure (connection, timeout).
	KindTransport
	// KindRedirect indicates a redirect response, which is treated as a failure.
	KindRedirect
	// KindClient indicates an HTTP client error (4xx).
	KindClient
	// KindServer indicates an HTTP server error (5xx).
	KindServer
)

// String returns the kind name as it appears in the error log.
func (k ErrorKind) String() string {
	switch k {
	case KindArgument:
		return "argument"
	case KindTransport:
		return "failure"
	case KindRedirect:
		return "redirect"
	case KindClient:
		return "client"
	case KindServer:
		return "server"
	default:
		return "unknown"
	}
}

// Error is a structured REST client error with classification.
type Error struct {
	// Kind classifies the error.
	Kind ErrorKind
	// Status is the HTTP status code (0 for argument and transport errors).
	Status int
	// Code is the machine-readable code from the error payload ("-" when absent).
	Code string
	// Message describes the error.
	Message string
	// Location is the redirect target (KindRedirect only).
	Location string
	// Body is the raw response body (may be nil).
	Body []byte
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("restclient: %s (HTTP %d): %s", e.Kind, e.Status, e.Message)
	}
	return fmt.Sprintf("restclient: %s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// newArgumentError creates an invalid-argument error.
func newArgumentError(msg string) *Error {
	return &Error{
		Kind:    KindArgument,
		Message: msg,
	}
}

// newTransportError creates a network-level error, preserving the cause.
func newTransportError(err error) *Error {
	return &Error{
		Kind:    KindTransport,
		Code:    transportCode(err),
		Message: err.Error(),
		Err:     err,
	}
}

// newRedirectError creates a redirect-as-failure error.
func newRedirectError(resp *Response) *Error {
	return &Error{
		Kind:     KindRedirect,
		Status:   resp.StatusCode,
		Code:     "redirect",
		Message:  resp.Status(),
		Location: resp.Location(),
		Body:     resp.Body,
	}
}

// errorPayload is the error body the client expects from JSON APIs:
//
//	{
//	    "error": "TypeOfError",
//	    "message": "Details about this error"
//	}
type errorPayload struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// classifyResponse converts an HTTP error response into a typed error.
// The payload parse is failsafe: a malformed or absent body yields "-"
// placeholders rather than a secondary error.
func classifyResponse(resp *Response) *Error {
	kind := KindClient
	if resp.StatusCode >= 500 {
		kind = KindServer
	}

	payload := errorPayload{Error: "-", Message: "-"}
	if len(resp.Body) > 0 {
		var decoded errorPayload
		if err := json.Unmarshal(resp.Body, &decoded); err == nil {
			if decoded.Error != "" {
				payload.Error = decoded.Error
			}
			if decoded.Message != "" {
				payload.Message = decoded.Message
			}
		}
	}

	return &Error{
		Kind:    kind,
		Status:  resp.StatusCode,
		Code:    payload.Error,
		Message: payload.Message,
		Body:    resp.Body,
	}
}

// transportCode distinguishes timeouts from other connection failures.
func transportCode(err error) string {
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return "timeout"
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return "timeout"
	}
	return "connection"
}

// IsArgument checks if an error is an invalid-argument error.
func IsArgument(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindArgument
}

// IsTransport checks if an error is a network-level error.
func IsTransport(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindTransport
}

// IsRedirect checks if an error is a redirect-as-failure error.
func IsRedirect(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindRedirect
}

// IsClientError checks if an error is an HTTP 4xx error.
func IsClientError(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindClient
}

// IsServerError checks if an error is an HTTP 5xx error.
func IsServerError(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindServer
}
