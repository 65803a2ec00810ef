// Package errors provides the error types used across the marketmaster
// system. Malformed input is the only error class a reconciliation run
// surfaces: a run aborts as a whole with one descriptive failure and no
// partial artifact. Unmatched marketplace rows and corrupted ERP lines
// are recoverable conditions and never reported through these types.
package errors

import (
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Common sentinel errors for the marketmaster system
var (
	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound indicates that a requested resource was not found
	ErrNotFound = errors.New("not found")

	// ErrUnknownPlatform indicates a platform id with no registered adapter
	ErrUnknownPlatform = errors.New("unknown platform")
)

// SchemaError reports a table that does not carry the layout an adapter
// expects: a missing required column or a missing worksheet.
type SchemaError struct {
	Platform string
	Column   string
	Sheet    string
	Message  string
}

// Error implements the error interface
func (e *SchemaError) Error() string {
	switch {
	case e.Column != "":
		return fmt.Sprintf("schema error for %s: required column %q %s", e.Platform, e.Column, e.Message)
	case e.Sheet != "":
		return fmt.Sprintf("schema error for %s: worksheet %q %s", e.Platform, e.Sheet, e.Message)
	default:
		return fmt.Sprintf("schema error for %s: %s", e.Platform, e.Message)
	}
}

// Is implements errors.Is support
func (e *SchemaError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewSchemaError creates a new SchemaError for a missing column.
func NewSchemaError(platform, column, message string) *SchemaError {
	return &SchemaError{Platform: platform, Column: column, Message: message}
}

// ParseError represents an error when parsing an input artifact.
type ParseError struct {
	Format  string // "csv", "xlsx", "yaml"
	File    string
	Row     int
	Message string
	Err     error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.File != "" && e.Row > 0 {
		return fmt.Sprintf("parse error in %s file %s at row %d: %s", e.Format, e.File, e.Row, e.Message)
	}
	if e.File != "" {
		return fmt.Sprintf("parse error in %s file %s: %s", e.Format, e.File, e.Message)
	}
	return fmt.Sprintf("%s parse error: %s", e.Format, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *ParseError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewParseError creates a new ParseError
func NewParseError(format, file, message string, err error) *ParseError {
	return &ParseError{Format: format, File: file, Message: message, Err: err}
}

// IOError represents an error during I/O operations
type IOError struct {
	Operation string // "read", "write", "create", "rename"
	Path      string
	Err       error
}

// Error implements the error interface
func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("IO error during %s of %s: %v", e.Operation, e.Path, e.Err)
	}
	return fmt.Sprintf("IO error during %s: %v", e.Operation, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *IOError) Unwrap() error {
	return e.Err
}

// NewIOError creates a new IOError
func NewIOError(operation, path string, err error) *IOError {
	return &IOError{Operation: operation, Path: path, Err: err}
}

// ConfigError represents an invalid adapter or run configuration.
type ConfigError struct {
	Component string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	if e.Component != "" {
		return fmt.Sprintf("configuration error in %s: %s", e.Component, e.Message)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new ConfigError
func NewConfigError(component, message string, err error) *ConfigError {
	return &ConfigError{Component: component, Message: message, Err: err}
}

// Helper functions for error checking

// IsInvalidInput checks if an error is a malformed-input error
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// Helper wrapping functions for common patterns

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
