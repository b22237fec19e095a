package errors

import (
	stdErrors "errors"
	"fmt"
)

// ParseError represents a YAML parsing failure with optional line metadata.
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

// ValidationError captures document validation issues.
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

// Code identifies the category of an input format failure.
type Code string

const (
	CodeInvalidColorFormat      Code = "INVALID_COLOR_FORMAT"
	CodeUnsupportedShadowFormat Code = "UNSUPPORTED_SHADOW_FORMAT"
	CodeInvalidLengthValue      Code = "INVALID_LENGTH_VALUE"
)

// Sentinels for errors.Is comparisons. Only the code is compared.
var (
	ErrInvalidColorFormat      = &FormatError{Code: CodeInvalidColorFormat}
	ErrUnsupportedShadowFormat = &FormatError{Code: CodeUnsupportedShadowFormat}
	ErrInvalidLengthValue      = &FormatError{Code: CodeInvalidLengthValue}
)

// FormatError reports a value that could not be interpreted by the color or
// shadow engines. These failures are deterministic and never retried.
type FormatError struct {
	Code  Code
	Value string
	Err   error
}

// NewFormatError constructs a FormatError for the offending value.
func NewFormatError(code Code, value string, err error) error {
	return &FormatError{Code: code, Value: value, Err: err}
}

func (e *FormatError) Error() string {
	if e == nil {
		return ""
	}
	msg := fmt.Sprintf("%s: %q", e.Code, e.Value)
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap exposes the underlying error.
func (e *FormatError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is matches any FormatError carrying the same code.
func (e *FormatError) Is(target error) bool {
	if e == nil {
		return false
	}
	var other *FormatError
	if !stdErrors.As(target, &other) {
		return false
	}
	return e.Code == other.Code
}

// ExportError represents a failure while producing or writing an export artifact.
type ExportError struct {
	Target string
	Err    error
}

// NewExportError constructs an ExportError for the given artifact.
func NewExportError(target string, err error) error {
	return &ExportError{Target: target, Err: err}
}

func (e *ExportError) Error() string {
	if e == nil {
		return ""
	}
	if e.Target != "" {
		return fmt.Sprintf("export error [%s]: %v", e.Target, e.Err)
	}
	return fmt.Sprintf("export error: %v", e.Err)
}

// Unwrap exposes the root error.
func (e *ExportError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
