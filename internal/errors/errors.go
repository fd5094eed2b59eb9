package errors

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

var (
	// ErrContactNotFound is returned when no contact has the requested id.
	ErrContactNotFound = errors.New("contact not found")
	// ErrEmailConflict is returned when another contact already uses the email.
	ErrEmailConflict = errors.New("a contact with this email already exists")
	// ErrIDMismatch is returned when the body id differs from the target id.
	ErrIDMismatch = errors.New("contact ID mismatch")
	// ErrInvalidID is returned when a path id is not a positive integer.
	ErrInvalidID = errors.New("invalid contact id")
)

// ValidationError carries field-level violations keyed by field name.
type ValidationError struct {
	Fields map[string][]string
}

// NewValidationError creates an empty ValidationError.
func NewValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string][]string)}
}

// Add records a message for field.
func (e *ValidationError) Add(field, message string) {
	e.Fields[field] = append(e.Fields[field], message)
}

// Empty reports whether no violation was recorded.
func (e *ValidationError) Empty() bool {
	return e == nil || len(e.Fields) == 0
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s: %s", name, strings.Join(e.Fields[name], "; ")))
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

// Problem is the RFC 7807 style body returned for every non-2xx response.
type Problem struct {
	Type    string              `json:"type"`
	Title   string              `json:"title"`
	Status  int                 `json:"status"`
	Detail  string              `json:"detail,omitempty"`
	Errors  map[string][]string `json:"errors,omitempty"`
	TraceID string              `json:"traceId,omitempty"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Title      string
	Message    string
	Fields     map[string][]string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, title, message string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Title:      title,
		Message:    message,
	}
}

// ToProblem converts an HTTPError to a Problem body.
func (e *HTTPError) ToProblem(traceID string) Problem {
	return Problem{
		Type:    problemType(e.StatusCode),
		Title:   e.Title,
		Status:  e.StatusCode,
		Detail:  e.Message,
		Errors:  e.Fields,
		TraceID: traceID,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Anything unrecognised
// becomes a generic 500 with no internal detail.
func MapErrorToHTTP(err error) *HTTPError {
	var verr *ValidationError
	switch {
	case errors.As(err, &verr):
		httpErr := NewHTTPError(http.StatusBadRequest, "One or more validation errors occurred.", verr.Error())
		httpErr.Fields = verr.Fields
		return httpErr
	case errors.Is(err, ErrIDMismatch):
		return NewHTTPError(http.StatusBadRequest, "Bad Request", "Contact ID mismatch.")
	case errors.Is(err, ErrInvalidID):
		return NewHTTPError(http.StatusBadRequest, "Bad Request", "The contact id must be a positive integer.")
	case errors.Is(err, ErrContactNotFound):
		return NewHTTPError(http.StatusNotFound, "Not Found", "The contact was not found.")
	case errors.Is(err, ErrEmailConflict):
		return NewHTTPError(http.StatusConflict, "Conflict", "A contact with this email already exists.")
	default:
		return NewHTTPError(http.StatusInternalServerError, "Internal Server Error", "An unexpected error occurred.")
	}
}

func problemType(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "https://tools.ietf.org/html/rfc9110#section-15.5.1"
	case http.StatusNotFound:
		return "https://tools.ietf.org/html/rfc9110#section-15.5.5"
	case http.StatusConflict:
		return "https://tools.ietf.org/html/rfc9110#section-15.5.10"
	case http.StatusInternalServerError:
		return "https://tools.ietf.org/html/rfc9110#section-15.6.1"
	default:
		return "about:blank"
	}
}
