package config

import (
	"fmt"
	"strings"
)

// ConfigErrorType categorizes configuration errors.
type ConfigErrorType int

const (
	// ConfigNotFound indicates the configuration file does not exist.
	ConfigNotFound ConfigErrorType = iota
	// ConfigInvalid indicates the file could not be read or decoded.
	ConfigInvalid
	// ConfigUnsupportedFormat indicates a file extension pagegen has no decoder for.
	ConfigUnsupportedFormat
	// ConfigValidationFailed indicates a decoded value was rejected.
	ConfigValidationFailed
)

// String returns a short name for the error type.
func (t ConfigErrorType) String() string {
	switch t {
	case ConfigNotFound:
		return "not found"
	case ConfigInvalid:
		return "invalid"
	case ConfigUnsupportedFormat:
		return "unsupported format"
	case ConfigValidationFailed:
		return "validation failed"
	default:
		return "unknown"
	}
}

// ConfigError reports a problem with a pagegen config file or one of its fields.
type ConfigError struct {
	Type    ConfigErrorType
	Message string
	// File is empty when a config built in memory fails validation.
	File string
	// Field is the dotted key, e.g. "generation.fallback_pattern".
	Field string
	Cause error
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	var b strings.Builder
	b.WriteString("config")
	if e.File != "" {
		b.WriteString(" " + e.File)
	}
	if e.Field != "" {
		fmt.Fprintf(&b, " [%s]", e.Field)
	}
	b.WriteString(": " + e.Message)
	if e.Cause != nil {
		fmt.Fprintf(&b, ": %v", e.Cause)
	}
	return b.String()
}

// Unwrap returns the underlying cause error.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// NewConfigError creates a ConfigError for file.
func NewConfigError(typ ConfigErrorType, file, message string) *ConfigError {
	return &ConfigError{Type: typ, File: file, Message: message}
}

// NewConfigErrorWithField creates a ConfigError for one field.
func NewConfigErrorWithField(typ ConfigErrorType, file, field, message string) *ConfigError {
	return &ConfigError{Type: typ, File: file, Field: field, Message: message}
}

// NewConfigErrorWithCause creates a ConfigError wrapping cause.
func NewConfigErrorWithCause(typ ConfigErrorType, file, message string, cause error) *ConfigError {
	return &ConfigError{Type: typ, File: file, Message: message, Cause: cause}
}
