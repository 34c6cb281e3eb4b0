package store

import "fmt"

// NotFoundError indicates the dataset file does not exist.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("file is not found: %s", e.Path)
}

// LoadError represents an error during file I/O or JSON parsing.
type LoadError struct {
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("load error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("load error: %s", e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// ValidationError represents a record that failed schema validation.
type ValidationError struct {
	Index   int
	Message string
	Cause   error
}

func (e *ValidationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("validation error in record %d: %s: %v", e.Index, e.Message, e.Cause)
	}
	return fmt.Sprintf("validation error in record %d: %s", e.Index, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Cause
}
