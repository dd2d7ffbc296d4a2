package domain

import (
	"fmt"
	"strings"
)

// ValidationError is returned when a required source field is missing or malformed.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// UnsupportedFormatError is returned for output format or snippet environment
// tokens outside the supported set.
type UnsupportedFormatError struct {
	Kind  string
	Token string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported %s format %q", e.Kind, e.Token)
}

type NotFoundError struct {
	Host string
	ID   string
}

func (e *NotFoundError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("nothing found on %s", e.Host)
	}
	return fmt.Sprintf("dataset %s not found on %s", e.ID, e.Host)
}

type NetworkError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *NetworkError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("request to %s failed: %s", e.URL, e.Err.Error())
	}
	return fmt.Sprintf("request to %s failed with status code %d", e.URL, e.StatusCode)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// SchemaComplianceError is returned when a generated document breaks the
// constraints of its target schema. It is never corrected silently.
type SchemaComplianceError struct {
	Document   string
	Violations []string
}

func (e *SchemaComplianceError) Error() string {
	return fmt.Sprintf("%s is not schema compliant: %s", e.Document, strings.Join(e.Violations, "; "))
}
