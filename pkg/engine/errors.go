package engine

import "errors"

// EngineError represents a domain error from engine operations.
//
// These are filesystem-semantics errors (name not found, wrong node type,
// table exhausted, etc.) as opposed to programming errors. Adapters
// translate ErrorCode values to their own conventions (OS errno values,
// protocol status codes).
type EngineError struct {
	// Code is the error category
	Code ErrorCode

	// Message is a human-readable error description
	Message string

	// Name is the entry name related to the error (if applicable)
	Name string
}

// Error implements the error interface.
func (e *EngineError) Error() string {
	if e.Name != "" {
		return e.Message + ": " + e.Name
	}
	return e.Message
}

// ErrorCode represents the category of an engine error.
//
// These are generic categories that adapters map to their own error
// vocabulary. The engine never retries internally; every error is returned
// to the immediate caller.
type ErrorCode int

const (
	// ErrNotFound indicates an identifier or name does not resolve
	ErrNotFound ErrorCode = iota

	// ErrNotDirectory indicates the operation expected a directory but got a file
	ErrNotDirectory

	// ErrIsDirectory indicates the operation expected a file but got a directory
	ErrIsDirectory

	// ErrNotEmpty indicates a directory is not empty (cannot be removed)
	ErrNotEmpty

	// ErrNameTooLong indicates a name exceeds the configured length limit
	ErrNameTooLong

	// ErrAlreadyExists indicates an entry with the name already exists
	// in the target directory
	ErrAlreadyExists

	// ErrTableFull indicates the node table has no free slots.
	// This is a normal, expected failure mode, not a bug.
	ErrTableFull

	// ErrNoSpace indicates a content buffer could not grow because the
	// write would exceed the configured maximum file size
	ErrNoSpace

	// ErrInvalidArgument indicates invalid parameters were provided
	// Examples: empty name, "." or ".." as a name, negative offset
	ErrInvalidArgument
)

// CodeOf extracts the ErrorCode from an error.
//
// Returns the code and true if err (or anything it wraps) is an
// *EngineError, otherwise returns zero and false.
func CodeOf(err error) (ErrorCode, bool) {
	var engineErr *EngineError
	if errors.As(err, &engineErr) {
		return engineErr.Code, true
	}
	return 0, false
}

// IsCode reports whether err carries the given engine error code.
func IsCode(err error, code ErrorCode) bool {
	got, ok := CodeOf(err)
	return ok && got == code
}
