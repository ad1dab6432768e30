// Package apperrors defines the closed set of request-failure kinds shared by
// every handler. Each kind carries enough context to build a diagnostic
// response body; the mapping to HTTP status codes lives in the api layer.
package apperrors

import (
	"errors"
	"fmt"
	"strings"
)

// InvalidFieldError is returned when a single field value fails validation.
type InvalidFieldError struct {
	Field string
	Value string
}

func (e *InvalidFieldError) Error() string {
	return fmt.Sprintf("invalid value for field %q: %q", e.Field, e.Value)
}

// NewInvalidField creates a new invalid field error
func NewInvalidField(field, value string) error {
	return &InvalidFieldError{Field: field, Value: value}
}

// IsInvalidField checks if error is an invalid field error
func IsInvalidField(err error) bool {
	var e *InvalidFieldError
	return errors.As(err, &e)
}

// MissingFieldsError is returned when required fields are absent from a
// request body. It carries every missing key, not just the first.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Fields, ", "))
}

// NewMissingFields creates a new missing fields error
func NewMissingFields(fields []string) error {
	return &MissingFieldsError{Fields: fields}
}

// IsMissingFields checks if error is a missing fields error
func IsMissingFields(err error) bool {
	var e *MissingFieldsError
	return errors.As(err, &e)
}

// MalformedBodyError is returned when a request payload cannot be parsed.
type MalformedBodyError struct {
	Detail string
}

func (e *MalformedBodyError) Error() string {
	return fmt.Sprintf("malformed request body: %s", e.Detail)
}

// NewMalformedBody creates a new malformed body error
func NewMalformedBody(detail string) error {
	return &MalformedBodyError{Detail: detail}
}

// IsMalformedBody checks if error is a malformed body error
func IsMalformedBody(err error) bool {
	var e *MalformedBodyError
	return errors.As(err, &e)
}

// MalformedIDError is returned when a path identifier is not a valid id
// shape. Raised before any existence check.
type MalformedIDError struct {
	Resource string
	ID       string
}

func (e *MalformedIDError) Error() string {
	return fmt.Sprintf("malformed %s id: %s", e.Resource, e.ID)
}

// NewMalformedID creates a new malformed id error
func NewMalformedID(resource, id string) error {
	return &MalformedIDError{Resource: resource, ID: id}
}

// IsMalformedID checks if error is a malformed id error
func IsMalformedID(err error) bool {
	var e *MalformedIDError
	return errors.As(err, &e)
}

// NotFoundError is returned when a referenced resource does not exist.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// NewNotFound creates a new not found error
func NewNotFound(resource, id string) error {
	return &NotFoundError{Resource: resource, ID: id}
}

// IsNotFound checks if error is a not found error
func IsNotFound(err error) bool {
	var e *NotFoundError
	return errors.As(err, &e)
}

// ConflictError is returned when a create collides with an existing id.
type ConflictError struct {
	Resource string
	ID       string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s already exists: %s", e.Resource, e.ID)
}

// NewConflict creates a new resource conflict error
func NewConflict(resource, id string) error {
	return &ConflictError{Resource: resource, ID: id}
}

// IsConflict checks if error is a resource conflict error
func IsConflict(err error) bool {
	var e *ConflictError
	return errors.As(err, &e)
}

// DependencyError is returned when cross-referenced fields disagree, e.g. a
// comment body declaring a different parent post than the request path. Both
// values are carried for diagnostics.
type DependencyError struct {
	Expected map[string]string
}

func (e *DependencyError) Error() string {
	parts := make([]string, 0, len(e.Expected))
	for k, v := range e.Expected {
		parts = append(parts, fmt.Sprintf("%s=%s", k, v))
	}
	return fmt.Sprintf("dependent fields disagree: %s", strings.Join(parts, ", "))
}

// NewDependency creates a new dependency error from the disagreeing fields
func NewDependency(fields map[string]string) error {
	return &DependencyError{Expected: fields}
}

// IsDependency checks if error is a dependency error
func IsDependency(err error) bool {
	var e *DependencyError
	return errors.As(err, &e)
}
