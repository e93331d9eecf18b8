package maps

import (
	"github.com/san-kum/mathsys/internal/dynamo"
	"github.com/san-kum/mathsys/internal/sets"
	"gonum.org/v1/gonum/mat"
)

// LinearMap is x ↦ Ax. A may be rectangular.
type LinearMap struct {
	constraints
	a mat.Matrix
}

func NewLinearMap(A mat.Matrix) (*LinearMap, error) {
	if err := dynamo.RequireMatrix("A", A); err != nil {
		return nil, err
	}
	return &LinearMap{a: A}, nil
}

func NewConstrainedLinearMap(A mat.Matrix, X sets.Set) (*LinearMap, error) {
	m, err := NewLinearMap(A)
	if err != nil {
		return nil, err
	}
	if m.constraints, err = stateConstraint(X); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *LinearMap) Kind() dynamo.Kind {
	return dynamo.Kind{Class: dynamo.ClassLinear, Constrained: m.x != nil}
}

func (m *LinearMap) A() mat.Matrix  { return m.a }
func (m *LinearMap) StateDim() int  { return dynamo.Cols(m.a) }
func (m *LinearMap) InputDim() int  { return 0 }
func (m *LinearMap) OutputDim() int { return dynamo.Rows(m.a) }

func (m *LinearMap) Apply(x mat.Vector) (*mat.VecDense, error) {
	return mulAdd(m.a, x, nil, nil, nil)
}

// AffineMap is x ↦ Ax + b.
type AffineMap struct {
	constraints
	a mat.Matrix
	b mat.Vector
}

func NewAffineMap(A mat.Matrix, b mat.Vector) (*AffineMap, error) {
	if err := dynamo.RequireMatrix("A", A); err != nil {
		return nil, err
	}
	if err := dynamo.RequireLen("b", b, dynamo.Rows(A)); err != nil {
		return nil, err
	}
	return &AffineMap{a: A, b: b}, nil
}

func NewConstrainedAffineMap(A mat.Matrix, b mat.Vector, X sets.Set) (*AffineMap, error) {
	m, err := NewAffineMap(A, b)
	if err != nil {
		return nil, err
	}
	if m.constraints, err = stateConstraint(X); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *AffineMap) Kind() dynamo.Kind {
	return dynamo.Kind{Class: dynamo.ClassAffine, Constrained: m.x != nil}
}

func (m *AffineMap) A() mat.Matrix  { return m.a }
func (m *AffineMap) B() mat.Vector  { return m.b }
func (m *AffineMap) StateDim() int  { return dynamo.Cols(m.a) }
func (m *AffineMap) InputDim() int  { return 0 }
func (m *AffineMap) OutputDim() int { return dynamo.Rows(m.a) }

func (m *AffineMap) Apply(x mat.Vector) (*mat.VecDense, error) {
	return mulAdd(m.a, x, nil, nil, m.b)
}
