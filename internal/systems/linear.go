package systems

import (
	"github.com/san-kum/mathsys/internal/dynamo"
	"github.com/san-kum/mathsys/internal/sets"
	"gonum.org/v1/gonum/mat"
)

// LinearSystem is x' = Ax or x⁺ = Ax with A square.
type LinearSystem struct {
	constraints
	time dynamo.TimeDomain
	a    mat.Matrix
	n    int
}

func newLinear(time dynamo.TimeDomain, A mat.Matrix) (*LinearSystem, error) {
	n, err := dynamo.SquareOrder("A", A)
	if err != nil {
		return nil, err
	}
	return &LinearSystem{time: time, a: A, n: n}, nil
}

func newConstrainedLinear(time dynamo.TimeDomain, A mat.Matrix, X sets.Set) (*LinearSystem, error) {
	s, err := newLinear(time, A)
	if err != nil {
		return nil, err
	}
	if s.constraints, err = stateConstraint(X); err != nil {
		return nil, err
	}
	return s, nil
}

func NewLinearContinuousSystem(A mat.Matrix) (*LinearSystem, error) {
	return newLinear(dynamo.Continuous, A)
}

func NewConstrainedLinearContinuousSystem(A mat.Matrix, X sets.Set) (*LinearSystem, error) {
	return newConstrainedLinear(dynamo.Continuous, A, X)
}

func NewLinearDiscreteSystem(A mat.Matrix) (*LinearSystem, error) {
	return newLinear(dynamo.Discrete, A)
}

func NewConstrainedLinearDiscreteSystem(A mat.Matrix, X sets.Set) (*LinearSystem, error) {
	return newConstrainedLinear(dynamo.Discrete, A, X)
}

func (s *LinearSystem) Kind() dynamo.Kind {
	return dynamo.Kind{Time: s.time, Class: dynamo.ClassLinear, Constrained: s.constrained()}
}

func (s *LinearSystem) A() mat.Matrix { return s.a }
func (s *LinearSystem) StateDim() int { return s.n }
func (s *LinearSystem) InputDim() int { return 0 }

// AffineSystem is x' = Ax + b or x⁺ = Ax + b.
type AffineSystem struct {
	constraints
	time dynamo.TimeDomain
	a    mat.Matrix
	b    mat.Vector
	n    int
}

func newAffine(time dynamo.TimeDomain, A mat.Matrix, b mat.Vector) (*AffineSystem, error) {
	n, err := dynamo.SquareOrder("A", A)
	if err != nil {
		return nil, err
	}
	if err := dynamo.RequireLen("b", b, n); err != nil {
		return nil, err
	}
	return &AffineSystem{time: time, a: A, b: b, n: n}, nil
}

func newConstrainedAffine(time dynamo.TimeDomain, A mat.Matrix, b mat.Vector, X sets.Set) (*AffineSystem, error) {
	s, err := newAffine(time, A, b)
	if err != nil {
		return nil, err
	}
	if s.constraints, err = stateConstraint(X); err != nil {
		return nil, err
	}
	return s, nil
}

func NewAffineContinuousSystem(A mat.Matrix, b mat.Vector) (*AffineSystem, error) {
	return newAffine(dynamo.Continuous, A, b)
}

func NewConstrainedAffineContinuousSystem(A mat.Matrix, b mat.Vector, X sets.Set) (*AffineSystem, error) {
	return newConstrainedAffine(dynamo.Continuous, A, b, X)
}

func NewAffineDiscreteSystem(A mat.Matrix, b mat.Vector) (*AffineSystem, error) {
	return newAffine(dynamo.Discrete, A, b)
}

func NewConstrainedAffineDiscreteSystem(A mat.Matrix, b mat.Vector, X sets.Set) (*AffineSystem, error) {
	return newConstrainedAffine(dynamo.Discrete, A, b, X)
}

func (s *AffineSystem) Kind() dynamo.Kind {
	return dynamo.Kind{Time: s.time, Class: dynamo.ClassAffine, Constrained: s.constrained()}
}

func (s *AffineSystem) A() mat.Matrix { return s.a }
func (s *AffineSystem) B() mat.Vector { return s.b }
func (s *AffineSystem) StateDim() int { return s.n }
func (s *AffineSystem) InputDim() int { return 0 }
