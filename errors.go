package client

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// Sentinel errors for errors.Is checks against an [*Error].
var (
	// ErrMissingAPIKey is returned by [New] when no API key is provided.
	ErrMissingAPIKey = errors.New("API key is required")

	// ErrValidation matches any [KindValidation] error.
	ErrValidation = errors.New("validation failed")

	// ErrUnauthorized matches HTTP 401 responses.
	ErrUnauthorized = errors.New("invalid or expired API key")

	// ErrNotFound matches HTTP 404 responses.
	ErrNotFound = errors.New("resource not found")

	// ErrRateLimited matches HTTP 429 responses.
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrTimeout matches any [KindTimeout] error.
	ErrTimeout = errors.New("request timeout")

	// ErrClientClosed matches requests made on, or aborted by, a closed client.
	ErrClientClosed = errors.New("client has been closed")
)

// ErrorKind discriminates the failure classes reported by [Client].
type ErrorKind string

const (
	// KindConfig is a construction failure, such as a missing API key.
	KindConfig ErrorKind = "config"
	// KindValidation is a missing required input, raised before any request.
	KindValidation ErrorKind = "validation"
	// KindHTTP is a response with status code >= 400.
	KindHTTP ErrorKind = "http"
	// KindNetwork is a transport failure; no response was received.
	KindNetwork ErrorKind = "network"
	// KindTimeout is a request that did not complete within the configured timeout.
	KindTimeout ErrorKind = "timeout"
	// KindParse is a response body that is not valid JSON for the expected shape.
	KindParse ErrorKind = "parse"
)

// Error is the single error type returned by [Client]. Which fields are
// populated depends on Kind.
type Error struct {
	Kind    ErrorKind
	Message string

	// Field names the missing input for KindValidation.
	Field string

	// StatusCode and Body are set for KindHTTP. Body holds the decoded JSON
	// error response, or nil when the body was empty or not JSON.
	StatusCode int
	Body       any

	// Timeout is the configured timeout for KindTimeout.
	Timeout time.Duration

	// Err is the underlying cause for KindNetwork, KindTimeout and KindParse.
	Err error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *Error) Is(target error) bool {
	switch e.Kind {
	case KindConfig:
		return target == ErrMissingAPIKey
	case KindValidation:
		return target == ErrValidation
	case KindTimeout:
		return target == ErrTimeout
	case KindHTTP:
		switch e.StatusCode {
		case http.StatusUnauthorized:
			return target == ErrUnauthorized
		case http.StatusNotFound:
			return target == ErrNotFound
		case http.StatusTooManyRequests:
			return target == ErrRateLimited
		}
	}
	return false
}

// StatusCode returns the HTTP status code carried by err, or 0 if err is not
// an HTTP failure.
func StatusCode(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Kind == KindHTTP {
		return apiErr.StatusCode
	}
	return 0
}

func validationError(field, message string) *Error {
	return &Error{Kind: KindValidation, Field: field, Message: message}
}

func missingField(field string) *Error {
	return validationError(field, fmt.Sprintf("Email %q field is required", field))
}

func httpError(statusCode int, body any) *Error {
	message := fmt.Sprintf("HTTP %d: %s", statusCode, http.StatusText(statusCode))
	if m, ok := body.(map[string]any); ok {
		if s, ok := m["message"].(string); ok && s != "" {
			message = s
		}
	}
	return &Error{
		Kind:       KindHTTP,
		Message:    message,
		StatusCode: statusCode,
		Body:       body,
	}
}

func networkError(err error) *Error {
	return &Error{
		Kind:    KindNetwork,
		Message: fmt.Sprintf("Request failed: %v", err),
		Err:     err,
	}
}

func timeoutError(timeout time.Duration, err error) *Error {
	return &Error{
		Kind:    KindTimeout,
		Message: fmt.Sprintf("Request timeout after %dms", timeout.Milliseconds()),
		Timeout: timeout,
		Err:     err,
	}
}

func parseError(err error) *Error {
	return &Error{
		Kind:    KindParse,
		Message: fmt.Sprintf("Failed to parse response: %v", err),
		Err:     err,
	}
}
