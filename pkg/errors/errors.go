package errors

import (
	"fmt"
)

// ParseError represents a component file parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures component declaration issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// MatcherError reports a matcher function that failed while resolving a variant.
// It aborts the render that triggered it.
type MatcherError struct {
	Component string
	Variant   string
	Err       error
}

// NewMatcherError constructs a MatcherError.
func NewMatcherError(component, variant string, err error) error {
	return &MatcherError{Component: component, Variant: variant, Err: err}
}

func (e *MatcherError) Error() string {
	if e == nil {
		return ""
	}
	if e.Component != "" {
		return fmt.Sprintf("matcher error [%s.%s]: %v", e.Component, e.Variant, e.Err)
	}
	return fmt.Sprintf("matcher error [%s]: %v", e.Variant, e.Err)
}

// Unwrap exposes the root error.
func (e *MatcherError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// LookupError indicates a component that is not present in a catalog.
type LookupError struct {
	Name  string
	Known []string
}

// NewLookupError constructs a LookupError for the given component name.
func NewLookupError(name string, known []string) error {
	return &LookupError{Name: name, Known: append([]string(nil), known...)}
}

func (e *LookupError) Error() string {
	if e == nil {
		return ""
	}
	if len(e.Known) > 0 {
		return fmt.Sprintf("unknown component %q (known: %v)", e.Name, e.Known)
	}
	return fmt.Sprintf("unknown component %q", e.Name)
}
