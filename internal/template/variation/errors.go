package variation

import "fmt"

// TableErrorType categorizes variation table errors.
type TableErrorType int

const (
	// RowOutOfRange indicates a row index outside the table.
	RowOutOfRange TableErrorType = iota
	// InvalidRow indicates a nil row or an invalid tag name.
	InvalidRow
	// ImportFailed indicates bulk import data could not be decoded.
	ImportFailed
	// UnsupportedFormat indicates an unknown import format.
	UnsupportedFormat
)

// TableError represents a variation table error.
type TableError struct {
	// Type categorizes the error.
	Type TableErrorType
	// Message is the error message.
	Message string
	// Index is the row index involved (-1 if not applicable).
	Index int
	// Cause is the underlying error (if any).
	Cause error
}

// Error implements the error interface.
func (e *TableError) Error() string {
	msg := e.Message
	if e.Index >= 0 {
		msg = fmt.Sprintf("%s (row index: %d)", msg, e.Index)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

// Unwrap returns the underlying cause error for error unwrapping.
func (e *TableError) Unwrap() error {
	return e.Cause
}

func newTableError(typ TableErrorType, message string, index int, cause error) *TableError {
	return &TableError{
		Type:    typ,
		Message: message,
		Index:   index,
		Cause:   cause,
	}
}
