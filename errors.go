package jsonparse

import (
	"errors"
	"fmt"
)

// Sentinel errors, matched with errors.Is
var (
	// ErrInvalidJSON reports that the input text was rejected by the JSON decoder.
	ErrInvalidJSON = errors.New("invalid JSON input")

	// ErrPathSyntax reports a malformed path string: empty, or containing
	// an empty segment from a leading, trailing, or doubled period.
	ErrPathSyntax = errors.New("malformed path")

	// ErrTypeMismatch reports an operation that expected a node of one
	// shape (object, array, or scalar) but received another.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrKeyNotFound reports a key step whose key is absent from the object.
	ErrKeyNotFound = errors.New("key not found")

	// ErrIndexOutOfBounds reports an index step outside the array's bounds.
	ErrIndexOutOfBounds = errors.New("array index out of bounds")

	// ErrCoercion reports a scalar value that cannot be converted to the
	// requested target type.
	ErrCoercion = errors.New("coercion failed")
)

// NodeError represents a navigation or coercion error with essential context
type NodeError struct {
	Op      string `json:"op"`      // Operation that failed
	Path    string `json:"path"`    // Path being resolved, if any
	Message string `json:"message"` // Human-readable error message
	Err     error  `json:"err"`     // Underlying sentinel error
}

func (e *NodeError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("jsonparse %s failed at path %q: %s", e.Op, e.Path, e.Message)
	}
	return fmt.Sprintf("jsonparse %s failed: %s", e.Op, e.Message)
}

// Unwrap returns the underlying error for error chain support
func (e *NodeError) Unwrap() error {
	return e.Err
}

// Is implements error matching for Go 1.13+ error handling
func (e *NodeError) Is(target error) bool {
	if target == nil {
		return false
	}

	if targetErr, ok := target.(*NodeError); ok {
		return e.Op == targetErr.Op && e.Err == targetErr.Err
	}

	return errors.Is(e.Err, target)
}

// Error helper functions for creating consistent error values

// newParseError creates a NodeError for decoder rejections
func newParseError(message string) error {
	return &NodeError{
		Op:      opParse,
		Message: message,
		Err:     ErrInvalidJSON,
	}
}

// newPathSyntaxError creates a NodeError for malformed path strings
func newPathSyntaxError(path, message string) error {
	return &NodeError{
		Op:      opResolve,
		Path:    path,
		Message: message,
		Err:     ErrPathSyntax,
	}
}

// newTypeMismatchError creates a NodeError for shape violations
func newTypeMismatchError(op, path, message string) error {
	return &NodeError{
		Op:      op,
		Path:    path,
		Message: message,
		Err:     ErrTypeMismatch,
	}
}

// newKeyNotFoundError creates a NodeError for absent object keys
func newKeyNotFoundError(path, key string) error {
	return &NodeError{
		Op:      opResolve,
		Path:    path,
		Message: fmt.Sprintf("key %q not found in object", key),
		Err:     ErrKeyNotFound,
	}
}

// newIndexOutOfBoundsError creates a NodeError for out-of-range index steps
func newIndexOutOfBoundsError(path string, index, length int) error {
	return &NodeError{
		Op:      opResolve,
		Path:    path,
		Message: fmt.Sprintf("index %d out of bounds for array of length %d", index, length),
		Err:     ErrIndexOutOfBounds,
	}
}

// newCoercionError creates a NodeError for failed scalar conversions
func newCoercionError(op, message string) error {
	return &NodeError{
		Op:      op,
		Message: message,
		Err:     ErrCoercion,
	}
}
