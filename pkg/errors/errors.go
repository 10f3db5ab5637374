package errors

import (
	"fmt"
	"strings"
)

// ParseError represents a theme document parsing failure with optional line metadata.
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

// ValidationError captures a single schema violation in a theme document or settings file.
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

// ValidationErrors aggregates every violation found in one validation pass.
type ValidationErrors []*ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	lines := make([]string, 0, len(e))
	for _, ve := range e {
		lines = append(lines, ve.Error())
	}
	return strings.Join(lines, "\n")
}

// Unwrap exposes the individual violations to errors.As and errors.Is.
func (e ValidationErrors) Unwrap() []error {
	out := make([]error, 0, len(e))
	for _, ve := range e {
		out = append(out, ve)
	}
	return out
}

// ConfigurationError reports caller misuse of the theme API, such as building a
// color set without tones or resolving a style that is not a mapping.
type ConfigurationError struct {
	Subject string
	Message string
	Err     error
}

// NewConfigurationError constructs a ConfigurationError.
func NewConfigurationError(subject, message string, err error) error {
	return &ConfigurationError{Subject: subject, Message: message, Err: err}
}

func (e *ConfigurationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Subject != "" {
		return fmt.Sprintf("configuration error: %s: %s", e.Subject, e.Message)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ConfigurationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ThemeError is raised by the error and warning diagnostic channels in strict
// mode. Message holds the joined diagnostic arguments.
type ThemeError struct {
	Channel string
	Message string
	Err     error
}

// NewThemeError constructs a ThemeError for the given diagnostic channel.
func NewThemeError(channel, message string, err error) error {
	return &ThemeError{Channel: channel, Message: message, Err: err}
}

func (e *ThemeError) Error() string {
	if e == nil {
		return ""
	}
	if e.Channel != "" {
		return fmt.Sprintf("theme %s: %s", e.Channel, e.Message)
	}
	return fmt.Sprintf("theme error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ThemeError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
