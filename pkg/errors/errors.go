// Package errors provides custom error types for the data source catalog.
// These errors enable programmatic error checking, clean fallback handling
// in callers, and improved debugging throughout the system.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Common sentinel errors for the catalog system
var (
	// ErrNotFound indicates that a requested catalog entry was not found
	ErrNotFound = errors.New("not found")

	// ErrUnknownEnvironment indicates that a requested environment is not configured
	ErrUnknownEnvironment = errors.New("unknown environment")

	// ErrInvalidDocument indicates that a catalog document failed schema validation
	ErrInvalidDocument = errors.New("invalid document")

	// ErrReadOnly indicates an attempt to modify a loaded, immutable catalog
	ErrReadOnly = errors.New("read only")
)

// NotFoundError represents an error when a catalog entry is not found
type NotFoundError struct {
	Resource string
	ID       string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %s not found", e.Resource, e.ID)
}

// Is implements errors.Is support
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// UnknownEnvironmentError represents a request for an environment that is
// not present in the loaded catalog document.
type UnknownEnvironmentError struct {
	Environment string
	Known       []string
}

// Error implements the error interface
func (e *UnknownEnvironmentError) Error() string {
	if len(e.Known) > 0 {
		return fmt.Sprintf("unknown environment %q (known: %s)", e.Environment, strings.Join(e.Known, ", "))
	}
	return fmt.Sprintf("unknown environment %q", e.Environment)
}

// Is implements errors.Is support
func (e *UnknownEnvironmentError) Is(target error) bool {
	return target == ErrUnknownEnvironment
}

// NewUnknownEnvironmentError creates a new UnknownEnvironmentError
func NewUnknownEnvironmentError(environment string, known []string) *UnknownEnvironmentError {
	return &UnknownEnvironmentError{Environment: environment, Known: known}
}

// SchemaError represents a catalog document that violates the catalog schema.
// Loading fails outright on the first violation; no partial catalog is returned.
type SchemaError struct {
	Path    string // JSON-ish path to the offending value, e.g. "prod.publicData.genomes.ws"
	Message string
	Err     error
}

// Error implements the error interface
func (e *SchemaError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("schema violation at %s: %s", e.Path, e.Message)
	}
	return fmt.Sprintf("schema violation: %s", e.Message)
}

// Unwrap implements errors.Unwrap
func (e *SchemaError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *SchemaError) Is(target error) bool {
	return target == ErrInvalidDocument
}

// NewSchemaError creates a new SchemaError
func NewSchemaError(path, message string) *SchemaError {
	return &SchemaError{Path: path, Message: message}
}

// ParseError represents an error when parsing data formats
type ParseError struct {
	Format  string // "json", "yaml"
	File    string
	Message string
	Err     error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("parse error in %s file %s: %s", e.Format, e.File, e.Message)
	}
	return fmt.Sprintf("%s parse error: %s", e.Format, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError creates a new ParseError
func NewParseError(format, file, message string, err error) *ParseError {
	return &ParseError{
		Format:  format,
		File:    file,
		Message: message,
		Err:     err,
	}
}

// IOError represents an error during I/O operations
type IOError struct {
	Operation string // "read", "open", "stat", "walk"
	Path      string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("IO error during %s of %s: %s", e.Operation, e.Path, e.Message)
	}
	return fmt.Sprintf("IO error during %s: %s", e.Operation, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *IOError) Unwrap() error {
	return e.Err
}

// NewIOError creates a new IOError
func NewIOError(operation, path string, err error) *IOError {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &IOError{
		Operation: operation,
		Path:      path,
		Message:   message,
		Err:       err,
	}
}

// Helper functions for error checking

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsUnknownEnvironment checks if an error is an unknown environment error
func IsUnknownEnvironment(err error) bool {
	return errors.Is(err, ErrUnknownEnvironment)
}

// IsSchemaError checks if an error indicates an invalid catalog document
func IsSchemaError(err error) bool {
	return errors.Is(err, ErrInvalidDocument)
}

// Helper wrapping functions for common patterns

// WrapSchema wraps an error as a SchemaError at the given document path
func WrapSchema(path string, err error) error {
	if err == nil {
		return nil
	}
	return &SchemaError{Path: path, Message: err.Error(), Err: err}
}

// WrapIO wraps an error as an IOError
func WrapIO(operation, path string, err error) error {
	if err == nil {
		return nil
	}
	return NewIOError(operation, path, err)
}

// WrapParse wraps an error as a ParseError
func WrapParse(format, file string, err error) error {
	if err == nil {
		return nil
	}
	return NewParseError(format, file, err.Error(), err)
}
