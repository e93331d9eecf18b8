package maps

import (
	"github.com/san-kum/mathsys/internal/dynamo"
	"github.com/san-kum/mathsys/internal/sets"
	"gonum.org/v1/gonum/mat"
)

// LinearControlMap is (x, u) ↦ Ax + Bu.
type LinearControlMap struct {
	constraints
	a mat.Matrix
	b mat.Matrix
}

func NewLinearControlMap(A, B mat.Matrix) (*LinearControlMap, error) {
	if err := checkControl(A, B); err != nil {
		return nil, err
	}
	return &LinearControlMap{a: A, b: B}, nil
}

func NewConstrainedLinearControlMap(A, B mat.Matrix, X, U sets.Set) (*LinearControlMap, error) {
	m, err := NewLinearControlMap(A, B)
	if err != nil {
		return nil, err
	}
	if m.constraints, err = controlConstraints(X, U); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *LinearControlMap) Kind() dynamo.Kind {
	return dynamo.Kind{Class: dynamo.ClassLinearControl, Constrained: m.x != nil}
}

func (m *LinearControlMap) A() mat.Matrix  { return m.a }
func (m *LinearControlMap) B() mat.Matrix  { return m.b }
func (m *LinearControlMap) StateDim() int  { return dynamo.Cols(m.a) }
func (m *LinearControlMap) InputDim() int  { return dynamo.Cols(m.b) }
func (m *LinearControlMap) OutputDim() int { return dynamo.Rows(m.a) }

func (m *LinearControlMap) ApplyControl(x, u mat.Vector) (*mat.VecDense, error) {
	return mulAdd(m.a, x, m.b, u, nil)
}

// AffineControlMap is (x, u) ↦ Ax + Bu + c.
type AffineControlMap struct {
	constraints
	a mat.Matrix
	b mat.Matrix
	c mat.Vector
}

func NewAffineControlMap(A, B mat.Matrix, c mat.Vector) (*AffineControlMap, error) {
	if err := checkControl(A, B); err != nil {
		return nil, err
	}
	if err := dynamo.RequireLen("c", c, dynamo.Rows(A)); err != nil {
		return nil, err
	}
	return &AffineControlMap{a: A, b: B, c: c}, nil
}

func NewConstrainedAffineControlMap(A, B mat.Matrix, c mat.Vector, X, U sets.Set) (*AffineControlMap, error) {
	m, err := NewAffineControlMap(A, B, c)
	if err != nil {
		return nil, err
	}
	if m.constraints, err = controlConstraints(X, U); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *AffineControlMap) Kind() dynamo.Kind {
	return dynamo.Kind{Class: dynamo.ClassAffineControl, Constrained: m.x != nil}
}

func (m *AffineControlMap) A() mat.Matrix  { return m.a }
func (m *AffineControlMap) B() mat.Matrix  { return m.b }
func (m *AffineControlMap) C() mat.Vector  { return m.c }
func (m *AffineControlMap) StateDim() int  { return dynamo.Cols(m.a) }
func (m *AffineControlMap) InputDim() int  { return dynamo.Cols(m.b) }
func (m *AffineControlMap) OutputDim() int { return dynamo.Rows(m.a) }

func (m *AffineControlMap) ApplyControl(x, u mat.Vector) (*mat.VecDense, error) {
	return mulAdd(m.a, x, m.b, u, m.c)
}

func checkControl(A, B mat.Matrix) error {
	if err := dynamo.RequireMatrix("A", A); err != nil {
		return err
	}
	return dynamo.RequireRows("B", B, dynamo.Rows(A))
}
