// Package errors defines the typed failures shared by the loader, the
// TON Center client and the aggregate store. Each type maps onto one of
// the sentinels below so callers can branch with errors.Is.
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// New and As forward to the standard library so callers need one import.
var (
	New = errors.New
	As  = errors.As
)

var (
	ErrNotFound          = errors.New("not found")
	ErrInvalidInput      = errors.New("invalid input")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrRateLimited       = errors.New("rate limited")
	ErrSourceUnavailable = errors.New("source unavailable")
)

// NotFoundError reports a missing description file or aggregate.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %s not found", e.Resource, e.ID)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// NewNotFoundError returns a NotFoundError for resource id.
func NewNotFoundError(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// ValidationError reports input that breaks a schema or option rule.
// Field is empty when the whole document is at fault.
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "validation failed: " + e.Message
	}
	return "validation failed for field " + e.Field + ": " + e.Message
}

func (e *ValidationError) Is(target error) bool { return target == ErrInvalidInput }

// NewValidationError returns a ValidationError for field.
func NewValidationError(field string, value any, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// APIError is a failed exchange with a remote source. StatusCode is the
// HTTP status, the API's own error code, or zero when no response arrived.
type APIError struct {
	Source     string
	StatusCode int
	Message    string
	Endpoint   string
	Err        error
}

func (e *APIError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("API error from %s: %s", e.Source, e.Message)
	}
	return fmt.Sprintf("API error from %s (status %d): %s", e.Source, e.StatusCode, e.Message)
}

func (e *APIError) Unwrap() error { return e.Err }

func (e *APIError) Is(target error) bool {
	switch target {
	case ErrRateLimited:
		return e.StatusCode == http.StatusTooManyRequests
	case ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
	case ErrSourceUnavailable:
		return e.StatusCode >= http.StatusInternalServerError
	}
	return false
}

// NewAPIError returns an APIError for a response that arrived with status.
func NewAPIError(source string, status int, message string) *APIError {
	return &APIError{Source: source, StatusCode: status, Message: message}
}

// ConfigError reports a bad setting. Component names the key or option.
type ConfigError struct {
	Component string
	Message   string
	Err       error
}

func (e *ConfigError) Error() string {
	if e.Component == "" {
		return "configuration error: " + e.Message
	}
	return "configuration error in " + e.Component + ": " + e.Message
}

func (e *ConfigError) Unwrap() error { return e.Err }

// NewConfigError returns a ConfigError wrapping err, which may be nil.
func NewConfigError(component, message string, err error) *ConfigError {
	return &ConfigError{Component: component, Message: message, Err: err}
}

// ParseError reports undecodable YAML, JSON or BoC input.
type ParseError struct {
	Format  string
	File    string
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	if e.File == "" {
		return fmt.Sprintf("%s parse error: %s", e.Format, e.Message)
	}
	return fmt.Sprintf("parse error in %s file %s: %s", e.Format, e.File, e.Message)
}

func (e *ParseError) Unwrap() error { return e.Err }

// NewParseError returns a ParseError. file may be empty for in-memory input.
func NewParseError(format, file, message string, err error) *ParseError {
	return &ParseError{Format: format, File: file, Message: message, Err: err}
}

// IOError reports a failed filesystem operation such as read or rename.
type IOError struct {
	Operation string
	Path      string
	Err       error
}

func (e *IOError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("IO error during %s: %v", e.Operation, e.Err)
	}
	return fmt.Sprintf("IO error during %s of %s: %v", e.Operation, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// NewIOError returns an IOError for op on path.
func NewIOError(op, path string, err error) *IOError {
	return &IOError{Operation: op, Path: path, Err: err}
}

func IsNotFound(err error) bool          { return errors.Is(err, ErrNotFound) }
func IsValidationError(err error) bool   { return errors.Is(err, ErrInvalidInput) }
func IsRateLimited(err error) bool       { return errors.Is(err, ErrRateLimited) }
func IsUnauthorized(err error) bool      { return errors.Is(err, ErrUnauthorized) }
func IsSourceUnavailable(err error) bool { return errors.Is(err, ErrSourceUnavailable) }

// The Wrap helpers return nil for a nil err.

// WrapValidation turns err into a ValidationError on field.
func WrapValidation(field string, err error) error {
	if err == nil {
		return nil
	}
	return &ValidationError{Field: field, Message: err.Error()}
}

// WrapIO turns err into an IOError.
func WrapIO(op, path string, err error) error {
	if err == nil {
		return nil
	}
	return NewIOError(op, path, err)
}

// WrapParse turns err into a ParseError.
func WrapParse(format, file string, err error) error {
	if err == nil {
		return nil
	}
	return NewParseError(format, file, err.Error(), err)
}

// WrapAPI turns a transport failure against endpoint into an APIError
// with no status, since no response arrived.
func WrapAPI(source, endpoint string, err error) error {
	if err == nil {
		return nil
	}
	return &APIError{Source: source, Endpoint: endpoint, Message: "request failed", Err: err}
}
