// Package fconv2d structured error types for argument validation
package fconv2d

import (
	"errors"
	"fmt"
)

// ErrorType represents categories of errors
type ErrorType int

const (
	// Invalid argument errors
	ErrTypeInvalidArg ErrorType = iota
	// Shape mismatch errors
	ErrTypeShape
	// Overlapping buffer errors
	ErrTypeAlias
	// Unsupported configuration errors
	ErrTypeUnsupported
)

// FconvError represents a structured error with context
type FconvError struct {
	Type    ErrorType
	Op      string      // Operation that failed
	Message string      // Human-readable message
	Err     error       // Underlying error if any
	Context interface{} // Additional context
}

// Error implements the error interface
func (e *FconvError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fconv2d %s error in %s: %s (caused by: %v)",
			e.Type.String(), e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("fconv2d %s error in %s: %s",
		e.Type.String(), e.Op, e.Message)
}

// Unwrap allows error chain inspection
func (e *FconvError) Unwrap() error {
	return e.Err
}

// String returns the error type as a string
func (t ErrorType) String() string {
	switch t {
	case ErrTypeInvalidArg:
		return "InvalidArgument"
	case ErrTypeShape:
		return "Shape"
	case ErrTypeAlias:
		return "Alias"
	case ErrTypeUnsupported:
		return "Unsupported"
	default:
		return "Unknown"
	}
}

// Common error constructors

// NewInvalidArgError creates an invalid argument error
func NewInvalidArgError(op string, message string, err error) error {
	return &FconvError{
		Type:    ErrTypeInvalidArg,
		Op:      op,
		Message: message,
		Err:     err,
	}
}

// NewShapeError creates a shape mismatch error. context usually carries the
// offending dimensions.
func NewShapeError(op string, message string, err error, context interface{}) error {
	return &FconvError{
		Type:    ErrTypeShape,
		Op:      op,
		Message: message,
		Err:     err,
		Context: context,
	}
}

// NewAliasError creates an error for buffers that must not overlap
func NewAliasError(op string, message string) error {
	return &FconvError{
		Type:    ErrTypeAlias,
		Op:      op,
		Message: message,
		Err:     ErrAliasedOutput,
	}
}

// NewUnsupportedError creates an unsupported configuration error
func NewUnsupportedError(op string, message string, err error) error {
	return &FconvError{
		Type:    ErrTypeUnsupported,
		Op:      op,
		Message: message,
		Err:     err,
	}
}

// Common pre-defined errors, matched with errors.Is

var (
	// ErrNilMatrix indicates a nil matrix argument
	ErrNilMatrix = errors.New("nil matrix")

	// ErrBadStride indicates a matrix whose rows are not densely packed
	ErrBadStride = errors.New("matrix stride must equal its column count")

	// ErrShortData indicates backing data too small for the declared shape
	ErrShortData = errors.New("matrix data shorter than rows*stride")

	// ErrShapeMismatch indicates input, filter and output shapes that do not agree
	ErrShapeMismatch = errors.New("input must be (R+F-1)x(C+F-1) for an RxC output")

	// ErrRowRemainder indicates an output height that is not a multiple of
	// the tile height
	ErrRowRemainder = errors.New("output rows not a multiple of the tile height")

	// ErrUnsupportedFilter indicates a filter size without a kernel instance
	ErrUnsupportedFilter = errors.New("unsupported filter size")

	// ErrAliasedOutput indicates an output that overlaps another buffer
	ErrAliasedOutput = errors.New("output overlaps another buffer")
)

// DimsContext records the dimensions involved in a shape error
type DimsContext struct {
	R, C, F   int
	BlockSize int
}

// IsInvalidArgError checks if an error is an invalid argument error
func IsInvalidArgError(err error) bool {
	return hasType(err, ErrTypeInvalidArg)
}

// IsShapeError checks if an error is a shape error
func IsShapeError(err error) bool {
	return hasType(err, ErrTypeShape)
}

// IsAliasError checks if an error is an aliasing error
func IsAliasError(err error) bool {
	return hasType(err, ErrTypeAlias)
}

// IsUnsupportedError checks if an error is an unsupported configuration error
func IsUnsupportedError(err error) bool {
	return hasType(err, ErrTypeUnsupported)
}

func hasType(err error, t ErrorType) bool {
	var e *FconvError
	if errors.As(err, &e) {
		return e.Type == t
	}
	return false
}
