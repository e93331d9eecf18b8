package dynamo

import (
	"errors"
	"fmt"
)

// Domain errors for construction and compilation.
var (
	// ErrShapeMismatch indicates matrix or vector dimensions that disagree.
	ErrShapeMismatch = errors.New("dynamo: shape mismatch")

	// ErrDimensionConflict indicates an explicit dimension that disagrees with
	// the one implied by an expression.
	ErrDimensionConflict = errors.New("dynamo: explicit dimension conflicts with inferred dimension")

	// ErrUnsupportedExpression indicates an expression outside the compilable grammar.
	ErrUnsupportedExpression = errors.New("dynamo: unsupported expression")

	// ErrOrderMismatch indicates arithmetic between identity multiples of different order.
	ErrOrderMismatch = errors.New("dynamo: identity order mismatch")

	// ErrNilSet indicates a constrained variant built without its constraint region.
	ErrNilSet = errors.New("dynamo: nil constraint set")

	// ErrNilField indicates a polynomial variant built without its vector field.
	ErrNilField = errors.New("dynamo: nil vector field")
)

// ShapeError wraps an error with the offending field and sizes.
type ShapeError struct {
	Field   string
	Want    int
	Got     int
	Wrapped error
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s: %s has size %d, want %d", e.Wrapped.Error(), e.Field, e.Got, e.Want)
}

func (e *ShapeError) Unwrap() error {
	return e.Wrapped
}

func shapeErr(field string, want, got int) error {
	return &ShapeError{Field: field, Want: want, Got: got, Wrapped: ErrShapeMismatch}
}
