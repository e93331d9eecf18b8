package systems

import (
	"github.com/san-kum/mathsys/internal/dynamo"
	"github.com/san-kum/mathsys/internal/sets"
	"gonum.org/v1/gonum/mat"
)

// LinearAlgebraicSystem is the descriptor system Ex' = Ax (or Ex⁺ = Ax),
// with E the same shape as A.
type LinearAlgebraicSystem struct {
	constraints
	time dynamo.TimeDomain
	a    mat.Matrix
	e    mat.Matrix
	n    int
}

func newLinearAlgebraic(time dynamo.TimeDomain, A, E mat.Matrix) (*LinearAlgebraicSystem, error) {
	n, err := dynamo.SquareOrder("A", A)
	if err != nil {
		return nil, err
	}
	if err := dynamo.RequireSameShape("E", A, E); err != nil {
		return nil, err
	}
	return &LinearAlgebraicSystem{time: time, a: A, e: E, n: n}, nil
}

func newConstrainedLinearAlgebraic(time dynamo.TimeDomain, A, E mat.Matrix, X sets.Set) (*LinearAlgebraicSystem, error) {
	s, err := newLinearAlgebraic(time, A, E)
	if err != nil {
		return nil, err
	}
	if s.constraints, err = stateConstraint(X); err != nil {
		return nil, err
	}
	return s, nil
}

func NewLinearAlgebraicContinuousSystem(A, E mat.Matrix) (*LinearAlgebraicSystem, error) {
	return newLinearAlgebraic(dynamo.Continuous, A, E)
}

func NewConstrainedLinearAlgebraicContinuousSystem(A, E mat.Matrix, X sets.Set) (*LinearAlgebraicSystem, error) {
	return newConstrainedLinearAlgebraic(dynamo.Continuous, A, E, X)
}

func NewLinearAlgebraicDiscreteSystem(A, E mat.Matrix) (*LinearAlgebraicSystem, error) {
	return newLinearAlgebraic(dynamo.Discrete, A, E)
}

func NewConstrainedLinearAlgebraicDiscreteSystem(A, E mat.Matrix, X sets.Set) (*LinearAlgebraicSystem, error) {
	return newConstrainedLinearAlgebraic(dynamo.Discrete, A, E, X)
}

func (s *LinearAlgebraicSystem) Kind() dynamo.Kind {
	return dynamo.Kind{Time: s.time, Class: dynamo.ClassLinearAlgebraic, Constrained: s.constrained()}
}

func (s *LinearAlgebraicSystem) A() mat.Matrix { return s.a }
func (s *LinearAlgebraicSystem) E() mat.Matrix { return s.e }
func (s *LinearAlgebraicSystem) StateDim() int { return s.n }
func (s *LinearAlgebraicSystem) InputDim() int { return 0 }
