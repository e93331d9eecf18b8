package systems

import (
	"github.com/san-kum/mathsys/internal/dynamo"
	"github.com/san-kum/mathsys/internal/sets"
)

// IdentitySystem is the trivial system x' = 0 (continuous) or x⁺ = x (discrete).
type IdentitySystem struct {
	constraints
	time dynamo.TimeDomain
	dim  int
}

func newIdentity(time dynamo.TimeDomain, dim int) (*IdentitySystem, error) {
	if err := dynamo.RequireNonNegative("statedim", dim); err != nil {
		return nil, err
	}
	return &IdentitySystem{time: time, dim: dim}, nil
}

func newConstrainedIdentity(time dynamo.TimeDomain, dim int, X sets.Set) (*IdentitySystem, error) {
	s, err := newIdentity(time, dim)
	if err != nil {
		return nil, err
	}
	if s.constraints, err = stateConstraint(X); err != nil {
		return nil, err
	}
	return s, nil
}

func NewContinuousIdentitySystem(statedim int) (*IdentitySystem, error) {
	return newIdentity(dynamo.Continuous, statedim)
}

func NewConstrainedContinuousIdentitySystem(statedim int, X sets.Set) (*IdentitySystem, error) {
	return newConstrainedIdentity(dynamo.Continuous, statedim, X)
}

func NewDiscreteIdentitySystem(statedim int) (*IdentitySystem, error) {
	return newIdentity(dynamo.Discrete, statedim)
}

func NewConstrainedDiscreteIdentitySystem(statedim int, X sets.Set) (*IdentitySystem, error) {
	return newConstrainedIdentity(dynamo.Discrete, statedim, X)
}

func (s *IdentitySystem) Kind() dynamo.Kind {
	return dynamo.Kind{Time: s.time, Class: dynamo.ClassIdentity, Constrained: s.constrained()}
}

func (s *IdentitySystem) StateDim() int { return s.dim }
func (s *IdentitySystem) InputDim() int { return 0 }
