package app

import "fmt"

// AppErrorType represents the type of application error.
type AppErrorType int

const (
	// TemplateLoadFailed indicates the template file could not be read.
	TemplateLoadFailed AppErrorType = iota
	// RowsLoadFailed indicates a variation rows file could not be imported.
	RowsLoadFailed
	// WriteFailed indicates generated pages could not be written.
	WriteFailed
	// StoreFailed indicates the page store could not be opened or updated.
	StoreFailed
	// ProjectLoadFailed indicates a project directory could not be read.
	ProjectLoadFailed
	// ValidationFailed indicates validation failed.
	ValidationFailed
)

// AppError represents an application-layer error.
type AppError struct {
	// Type is the error type.
	Type AppErrorType
	// Message is the error message.
	Message string
	// Cause is the underlying error.
	Cause error
}

// Error returns the error message.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// NewAppError creates a new AppError.
func NewAppError(errType AppErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Cause:   cause,
	}
}

// NewTemplateLoadError creates a template load error.
func NewTemplateLoadError(message string, cause error) *AppError {
	return NewAppError(TemplateLoadFailed, message, cause)
}

// NewRowsLoadError creates a rows load error.
func NewRowsLoadError(message string, cause error) *AppError {
	return NewAppError(RowsLoadFailed, message, cause)
}

// NewWriteError creates a write error.
func NewWriteError(message string, cause error) *AppError {
	return NewAppError(WriteFailed, message, cause)
}

// NewStoreError creates a store error.
func NewStoreError(message string, cause error) *AppError {
	return NewAppError(StoreFailed, message, cause)
}

// NewProjectLoadError creates a project load error.
func NewProjectLoadError(message string, cause error) *AppError {
	return NewAppError(ProjectLoadFailed, message, cause)
}

// NewValidationError creates a validation error.
func NewValidationError(message string, cause error) *AppError {
	return NewAppError(ValidationFailed, message, cause)
}
