package systems

import (
	"github.com/san-kum/mathsys/internal/dynamo"
	"github.com/san-kum/mathsys/internal/sets"
	"gonum.org/v1/gonum/mat"
)

// LinearControlSystem is x' = Ax + Bu or x⁺ = Ax + Bu.
type LinearControlSystem struct {
	constraints
	time dynamo.TimeDomain
	a    mat.Matrix
	b    mat.Matrix
	n    int
}

// checkControl validates A square and B with one row per state.
func checkControl(A, B mat.Matrix) (int, error) {
	n, err := dynamo.SquareOrder("A", A)
	if err != nil {
		return 0, err
	}
	if err := dynamo.RequireRows("B", B, n); err != nil {
		return 0, err
	}
	return n, nil
}

func newLinearControl(time dynamo.TimeDomain, A, B mat.Matrix) (*LinearControlSystem, error) {
	n, err := checkControl(A, B)
	if err != nil {
		return nil, err
	}
	return &LinearControlSystem{time: time, a: A, b: B, n: n}, nil
}

func newConstrainedLinearControl(time dynamo.TimeDomain, A, B mat.Matrix, X, U sets.Set) (*LinearControlSystem, error) {
	s, err := newLinearControl(time, A, B)
	if err != nil {
		return nil, err
	}
	if s.constraints, err = controlConstraints(X, U); err != nil {
		return nil, err
	}
	return s, nil
}

func NewLinearControlContinuousSystem(A, B mat.Matrix) (*LinearControlSystem, error) {
	return newLinearControl(dynamo.Continuous, A, B)
}

func NewConstrainedLinearControlContinuousSystem(A, B mat.Matrix, X, U sets.Set) (*LinearControlSystem, error) {
	return newConstrainedLinearControl(dynamo.Continuous, A, B, X, U)
}

func NewLinearControlDiscreteSystem(A, B mat.Matrix) (*LinearControlSystem, error) {
	return newLinearControl(dynamo.Discrete, A, B)
}

func NewConstrainedLinearControlDiscreteSystem(A, B mat.Matrix, X, U sets.Set) (*LinearControlSystem, error) {
	return newConstrainedLinearControl(dynamo.Discrete, A, B, X, U)
}

func (s *LinearControlSystem) Kind() dynamo.Kind {
	return dynamo.Kind{Time: s.time, Class: dynamo.ClassLinearControl, Constrained: s.constrained()}
}

func (s *LinearControlSystem) A() mat.Matrix { return s.a }
func (s *LinearControlSystem) B() mat.Matrix { return s.b }
func (s *LinearControlSystem) StateDim() int { return s.n }
func (s *LinearControlSystem) InputDim() int { return dynamo.Cols(s.b) }

// AffineControlSystem is x' = Ax + Bu + c with x ∈ X and u ∈ U. It only
// exists in constrained form.
type AffineControlSystem struct {
	constraints
	time dynamo.TimeDomain
	a    mat.Matrix
	b    mat.Matrix
	c    mat.Vector
	n    int
}

func newConstrainedAffineControl(time dynamo.TimeDomain, A, B mat.Matrix, c mat.Vector, X, U sets.Set) (*AffineControlSystem, error) {
	n, err := checkControl(A, B)
	if err != nil {
		return nil, err
	}
	if err := dynamo.RequireLen("c", c, n); err != nil {
		return nil, err
	}
	cons, err := controlConstraints(X, U)
	if err != nil {
		return nil, err
	}
	return &AffineControlSystem{constraints: cons, time: time, a: A, b: B, c: c, n: n}, nil
}

func NewConstrainedAffineControlContinuousSystem(A, B mat.Matrix, c mat.Vector, X, U sets.Set) (*AffineControlSystem, error) {
	return newConstrainedAffineControl(dynamo.Continuous, A, B, c, X, U)
}

func NewConstrainedAffineControlDiscreteSystem(A, B mat.Matrix, c mat.Vector, X, U sets.Set) (*AffineControlSystem, error) {
	return newConstrainedAffineControl(dynamo.Discrete, A, B, c, X, U)
}

func (s *AffineControlSystem) Kind() dynamo.Kind {
	return dynamo.Kind{Time: s.time, Class: dynamo.ClassAffineControl, Constrained: true}
}

func (s *AffineControlSystem) A() mat.Matrix { return s.a }
func (s *AffineControlSystem) B() mat.Matrix { return s.b }
func (s *AffineControlSystem) C() mat.Vector { return s.c }
func (s *AffineControlSystem) StateDim() int { return s.n }
func (s *AffineControlSystem) InputDim() int { return dynamo.Cols(s.b) }
