package fetch

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrCancelled marks an attempt whose outcome was discarded. It is never
	// shown to users.
	ErrCancelled = errors.New("fetch: attempt cancelled")

	// ErrSuperseded marks an attempt replaced by a newer Execute on the same controller.
	ErrSuperseded = fmt.Errorf("%w: superseded by a newer attempt", ErrCancelled)
)

// TransportError is a failed upstream call. StatusCode is zero when no
// response was received.
type TransportError struct {
	StatusCode int
	Message    string
	Body       []byte
	Err        error
}

func (e *TransportError) Error() string {
	switch {
	case e.StatusCode > 0 && e.Message != "":
		return fmt.Sprintf("fetch: upstream responded %d: %s", e.StatusCode, e.Message)
	case e.StatusCode > 0:
		return fmt.Sprintf("fetch: upstream responded %d", e.StatusCode)
	case e.Err != nil:
		return fmt.Sprintf("fetch: transport failure: %v", e.Err)
	default:
		return "fetch: transport failure"
	}
}

func (e *TransportError) Unwrap() error { return e.Err }

// NewStatusError builds the TransportError for a non-2xx response.
func NewStatusError(statusCode int, body []byte) *TransportError {
	return &TransportError{
		StatusCode: statusCode,
		Message:    fmt.Sprintf("Request failed with status code %d", statusCode),
		Body:       append([]byte(nil), body...),
	}
}

// StatusCode returns the upstream status carried by err, or zero.
func StatusCode(err error) int {
	var transportErr *TransportError
	if errors.As(err, &transportErr) {
		return transportErr.StatusCode
	}
	return 0
}

// IsAuthExpired reports whether err is an upstream 401.
func IsAuthExpired(err error) bool {
	return StatusCode(err) == http.StatusUnauthorized
}

// RawBody returns the upstream error payload carried by err, if any.
func RawBody(err error) []byte {
	var transportErr *TransportError
	if errors.As(err, &transportErr) {
		return transportErr.Body
	}
	return nil
}
