package weaviate

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/Aleph-Alpha/weaviate/v1/weaviate/models"
)

// Common Weaviate errors
var (
	// ErrNotFound matches any *RequestError with status 404.
	ErrNotFound = errors.New("weaviate: not found")

	// ErrOIDCNotConfigured is returned by OIDC.GetConfig when the server
	// has no OpenID Connect provider.
	ErrOIDCNotConfigured = errors.New("weaviate: oidc is not configured")

	// ErrPollAttemptsExceeded is returned when a job did not reach a
	// terminal status within PollConfig.MaxAttempts status checks.
	ErrPollAttemptsExceeded = errors.New("weaviate: poll attempts exceeded")

	// ErrInvalidConfig wraps every configuration problem.
	ErrInvalidConfig = errors.New("weaviate: invalid config")
)

// TransportError is a failure to get any HTTP response: DNS, connection,
// TLS, timeout or cancellation.
type TransportError struct {
	Method string
	Path   string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("weaviate: %s %s: %v", e.Method, e.Path, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// RequestError is a response whose status is not one the operation accepts.
// Body is the raw response body.
type RequestError struct {
	Method     string
	Path       string
	StatusCode int
	Body       []byte
}

func (e *RequestError) Error() string {
	msg := fmt.Sprintf("weaviate: %s %s: status %d %s", e.Method, e.Path, e.StatusCode, http.StatusText(e.StatusCode))
	if len(e.Body) > 0 {
		msg += ": " + string(e.Body)
	}
	return msg
}

// Is lets errors.Is(err, ErrNotFound) match 404 responses.
func (e *RequestError) Is(target error) bool {
	return target == ErrNotFound && e.StatusCode == http.StatusNotFound
}

// Messages extracts the messages of a standard {"error": [{"message": ...}]}
// body. It returns nil for other bodies.
func (e *RequestError) Messages() []string {
	var body models.ErrorResponse
	if err := json.Unmarshal(e.Body, &body); err != nil {
		return nil
	}
	return body.Messages()
}

// DecodeError is a success response whose body does not have the expected
// shape.
type DecodeError struct {
	Method string
	Path   string
	Body   []byte
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("weaviate: %s %s: decode response: %v", e.Method, e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// ValidationError is bad input detected before any request was sent.
type ValidationError struct {
	Operation string
	Err       error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("weaviate: %s: invalid input: %v", e.Operation, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

func invalid(operation string, err error) error {
	return &ValidationError{Operation: operation, Err: err}
}

// IsTransportError checks if the error is a *TransportError.
func IsTransportError(err error) bool {
	var target *TransportError
	return errors.As(err, &target)
}

// IsRequestError checks if the error is a *RequestError.
func IsRequestError(err error) bool {
	var target *RequestError
	return errors.As(err, &target)
}

// IsDecodeError checks if the error is a *DecodeError.
func IsDecodeError(err error) bool {
	var target *DecodeError
	return errors.As(err, &target)
}

// IsValidationError checks if the error is a *ValidationError.
func IsValidationError(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

// IsNotFound checks if the error is a 404 response.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// StatusCode returns the HTTP status of a *RequestError.
func StatusCode(err error) (int, bool) {
	var target *RequestError
	if errors.As(err, &target) {
		return target.StatusCode, true
	}
	return 0, false
}
