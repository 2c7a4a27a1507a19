package store

import "fmt"

// StoreErrorType categorizes store errors.
type StoreErrorType int

const (
	// StoreOpenFailed indicates the database could not be opened or migrated.
	StoreOpenFailed StoreErrorType = iota
	// StoreQueryFailed indicates a read failed.
	StoreQueryFailed
	// StoreWriteFailed indicates a write or transaction failed.
	StoreWriteFailed
	// StoreInvalidInput indicates a file record is missing required fields.
	StoreInvalidInput
)

// StoreError represents a persistence error.
type StoreError struct {
	// Type categorizes the error.
	Type StoreErrorType
	// Message is the error message.
	Message string
	// Cause is the underlying error (if any).
	Cause error
}

// Error implements the error interface.
func (e *StoreError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("store: %s: %v", e.Message, e.Cause)
	}
	return "store: " + e.Message
}

// Unwrap returns the underlying cause error.
func (e *StoreError) Unwrap() error {
	return e.Cause
}

func newStoreError(typ StoreErrorType, message string, cause error) *StoreError {
	return &StoreError{
		Type:    typ,
		Message: message,
		Cause:   cause,
	}
}
