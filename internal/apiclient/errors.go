package apiclient

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound matches any StatusError carrying a 404.
var ErrNotFound = errors.New("apiclient: not found")

// StatusError is returned when the API answers with a non-2xx status.
type StatusError struct {
	Method  string
	Path    string
	Status  int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s %s: %d %s", e.Method, e.Path, e.Status, http.StatusText(e.Status))
	}
	return fmt.Sprintf("%s %s: %d %s", e.Method, e.Path, e.Status, e.Message)
}

func (e *StatusError) Is(target error) bool {
	return target == ErrNotFound && e.Status == http.StatusNotFound
}

// TransportError wraps failures that happened before a response arrived.
type TransportError struct {
	Method string
	Path   string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.Path, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// SchemaError is returned when a response body does not have the shape the
// caller asked for, e.g. an object where a bare JSON array was expected.
type SchemaError struct {
	Path string
	Want string
	Got  string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s: expected %s, got %s", e.Path, e.Want, e.Got)
}
