package dynamo

import (
	"reflect"

	"gonum.org/v1/gonum/mat"
)

// IsNil reports whether v is nil or an interface holding a nil pointer,
// e.g. (*mat.Dense)(nil).
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}

// SquareOrder returns the order of a square matrix.
func SquareOrder(field string, m mat.Matrix) (int, error) {
	if IsNil(m) {
		return 0, shapeErr(field, 0, -1)
	}
	r, c := m.Dims()
	if r != c {
		return 0, shapeErr(field+" columns", r, c)
	}
	return r, nil
}

// Rows returns the row count of m.
func Rows(m mat.Matrix) int {
	r, _ := m.Dims()
	return r
}

// Cols returns the column count of m.
func Cols(m mat.Matrix) int {
	_, c := m.Dims()
	return c
}

// RequireRows fails unless m is non-nil with n rows.
func RequireRows(field string, m mat.Matrix, n int) error {
	if IsNil(m) {
		return shapeErr(field, n, -1)
	}
	if r := Rows(m); r != n {
		return shapeErr(field+" rows", n, r)
	}
	return nil
}

// RequireLen fails unless v is non-nil with length n.
func RequireLen(field string, v mat.Vector, n int) error {
	if IsNil(v) {
		return shapeErr(field, n, -1)
	}
	if l := v.Len(); l != n {
		return shapeErr(field, n, l)
	}
	return nil
}

// RequireSameShape fails unless a and b have identical dimensions.
func RequireSameShape(field string, a, b mat.Matrix) error {
	if IsNil(b) {
		return shapeErr(field, Rows(a), -1)
	}
	ar, ac := a.Dims()
	br, bc := b.Dims()
	if ar != br {
		return shapeErr(field+" rows", ar, br)
	}
	if ac != bc {
		return shapeErr(field+" columns", ac, bc)
	}
	return nil
}

// RequireNonNegative fails if n is negative.
func RequireNonNegative(field string, n int) error {
	if n < 0 {
		return shapeErr(field, 0, n)
	}
	return nil
}

// RequireMatrix fails if m is nil or a typed nil.
func RequireMatrix(field string, m mat.Matrix) error {
	if IsNil(m) {
		return shapeErr(field, 0, -1)
	}
	return nil
}
