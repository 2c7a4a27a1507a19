package project

import "fmt"

// ProjectErrorType represents the type of project loading error.
type ProjectErrorType int

const (
	// ProjectNotFound indicates the project directory does not exist.
	ProjectNotFound ProjectErrorType = iota
	// ProjectInvalid indicates the path exists but is not a directory.
	ProjectInvalid
	// ProjectReadFailed indicates a file in the project could not be read.
	ProjectReadFailed
)

// String returns the string representation of the error type.
func (t ProjectErrorType) String() string {
	switch t {
	case ProjectNotFound:
		return "NotFound"
	case ProjectInvalid:
		return "Invalid"
	case ProjectReadFailed:
		return "ReadFailed"
	default:
		return "Unknown"
	}
}

// ProjectError represents a project loading error.
type ProjectError struct {
	// Type is the error type classification.
	Type ProjectErrorType
	// Message is the human-readable error message.
	Message string
	// Path is the file or directory involved.
	Path string
	// Cause is the underlying error, if any.
	Cause error
}

// Error implements the error interface.
func (e *ProjectError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("project error [%s] at '%s': %s (caused by: %v)", e.Type, e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("project error [%s] at '%s': %s", e.Type, e.Path, e.Message)
}

// Unwrap returns the underlying cause error.
func (e *ProjectError) Unwrap() error {
	return e.Cause
}

func newProjectError(typ ProjectErrorType, path, message string, cause error) *ProjectError {
	return &ProjectError{
		Type:    typ,
		Message: message,
		Path:    path,
		Cause:   cause,
	}
}
