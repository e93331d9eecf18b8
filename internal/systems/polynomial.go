package systems

import (
	"fmt"

	"github.com/san-kum/mathsys/internal/dynamo"
	"github.com/san-kum/mathsys/internal/sets"
	"gonum.org/v1/gonum/mat"
)

// VectorField is the right-hand side p of a polynomial system. It is stored,
// never evaluated, by this package.
type VectorField func(x mat.Vector) mat.Vector

// PolynomialSystem is x' = p(x) or x⁺ = p(x).
type PolynomialSystem struct {
	constraints
	time dynamo.TimeDomain
	p    VectorField
	dim  int
}

func newPolynomial(time dynamo.TimeDomain, p VectorField, dim int) (*PolynomialSystem, error) {
	if p == nil {
		return nil, fmt.Errorf("%w: p", dynamo.ErrNilField)
	}
	if err := dynamo.RequireNonNegative("statedim", dim); err != nil {
		return nil, err
	}
	return &PolynomialSystem{time: time, p: p, dim: dim}, nil
}

func newConstrainedPolynomial(time dynamo.TimeDomain, p VectorField, X sets.Set, dim int) (*PolynomialSystem, error) {
	s, err := newPolynomial(time, p, dim)
	if err != nil {
		return nil, err
	}
	if s.constraints, err = stateConstraint(X); err != nil {
		return nil, err
	}
	return s, nil
}

func NewPolynomialContinuousSystem(p VectorField, statedim int) (*PolynomialSystem, error) {
	return newPolynomial(dynamo.Continuous, p, statedim)
}

func NewConstrainedPolynomialContinuousSystem(p VectorField, X sets.Set, statedim int) (*PolynomialSystem, error) {
	return newConstrainedPolynomial(dynamo.Continuous, p, X, statedim)
}

func NewPolynomialDiscreteSystem(p VectorField, statedim int) (*PolynomialSystem, error) {
	return newPolynomial(dynamo.Discrete, p, statedim)
}

func NewConstrainedPolynomialDiscreteSystem(p VectorField, X sets.Set, statedim int) (*PolynomialSystem, error) {
	return newConstrainedPolynomial(dynamo.Discrete, p, X, statedim)
}

func (s *PolynomialSystem) Kind() dynamo.Kind {
	return dynamo.Kind{Time: s.time, Class: dynamo.ClassPolynomial, Constrained: s.constrained()}
}

func (s *PolynomialSystem) P() VectorField { return s.p }
func (s *PolynomialSystem) StateDim() int  { return s.dim }
func (s *PolynomialSystem) InputDim() int  { return 0 }
