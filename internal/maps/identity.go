package maps

import (
	"github.com/san-kum/mathsys/internal/dynamo"
	"github.com/san-kum/mathsys/internal/identity"
	"github.com/san-kum/mathsys/internal/linalg"
	"github.com/san-kum/mathsys/internal/sets"
	"gonum.org/v1/gonum/mat"
)

// IdentityMap is x ↦ x on a space of fixed dimension.
type IdentityMap struct {
	constraints
	dim int
}

func NewIdentityMap(dim int) (*IdentityMap, error) {
	if err := dynamo.RequireNonNegative("dim", dim); err != nil {
		return nil, err
	}
	return &IdentityMap{dim: dim}, nil
}

func NewConstrainedIdentityMap(dim int, X sets.Set) (*IdentityMap, error) {
	m, err := NewIdentityMap(dim)
	if err != nil {
		return nil, err
	}
	if m.constraints, err = stateConstraint(X); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *IdentityMap) Kind() dynamo.Kind {
	return dynamo.Kind{Class: dynamo.ClassIdentity, Constrained: m.x != nil}
}

// A returns the implicit identity matrix I(dim).
func (m *IdentityMap) A() identity.Multiple {
	I, _ := identity.New(1, m.dim)
	return I
}

func (m *IdentityMap) StateDim() int  { return m.dim }
func (m *IdentityMap) InputDim() int  { return 0 }
func (m *IdentityMap) OutputDim() int { return m.dim }

func (m *IdentityMap) Apply(x mat.Vector) (*mat.VecDense, error) {
	if err := dynamo.RequireLen("x", x, m.dim); err != nil {
		return nil, err
	}
	return linalg.CloneVec(x), nil
}
