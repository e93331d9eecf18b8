package maps

import (
	"fmt"
	"slices"

	"github.com/san-kum/mathsys/internal/dynamo"
	"github.com/san-kum/mathsys/internal/linalg"
	"github.com/san-kum/mathsys/internal/sets"
	"gonum.org/v1/gonum/mat"
)

// ResetMap overwrites some coordinates of x and passes the rest through.
// Override keys are 1-based coordinate indices.
type ResetMap struct {
	constraints
	dim   int
	reset map[int]float64
}

func NewResetMap(dim int, reset map[int]float64) (*ResetMap, error) {
	if err := dynamo.RequireNonNegative("dim", dim); err != nil {
		return nil, err
	}
	r := make(map[int]float64, len(reset))
	for k, v := range reset {
		if k < 1 || k > dim {
			return nil, &dynamo.ShapeError{
				Field:   fmt.Sprintf("reset index %d", k),
				Want:    dim,
				Got:     k,
				Wrapped: dynamo.ErrShapeMismatch,
			}
		}
		r[k] = v
	}
	return &ResetMap{dim: dim, reset: r}, nil
}

func NewConstrainedResetMap(dim int, X sets.Set, reset map[int]float64) (*ResetMap, error) {
	m, err := NewResetMap(dim, reset)
	if err != nil {
		return nil, err
	}
	if m.constraints, err = stateConstraint(X); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *ResetMap) Kind() dynamo.Kind {
	return dynamo.Kind{Class: dynamo.ClassReset, Constrained: m.x != nil}
}

func (m *ResetMap) StateDim() int  { return m.dim }
func (m *ResetMap) InputDim() int  { return 0 }
func (m *ResetMap) OutputDim() int { return m.dim }

// Indices returns the reset coordinates in increasing order.
func (m *ResetMap) Indices() []int {
	keys := make([]int, 0, len(m.reset))
	for k := range m.reset {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Value returns the value assigned to coordinate k.
func (m *ResetMap) Value(k int) (float64, bool) {
	v, ok := m.reset[k]
	return v, ok
}

func (m *ResetMap) Apply(x mat.Vector) (*mat.VecDense, error) {
	if err := dynamo.RequireLen("x", x, m.dim); err != nil {
		return nil, err
	}
	res := linalg.CloneVec(x)
	for k, v := range m.reset {
		res.SetVec(k-1, v)
	}
	return res, nil
}
