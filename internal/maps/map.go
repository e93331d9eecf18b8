package maps

import (
	"fmt"

	"github.com/san-kum/mathsys/internal/dynamo"
	"github.com/san-kum/mathsys/internal/sets"
	"gonum.org/v1/gonum/mat"
)

// Map is the accessor contract shared by every map variant.
type Map interface {
	dynamo.Kinded
	// StateDim is the length of the x argument.
	StateDim() int
	// InputDim is the length of the u argument, 0 for maps without one.
	InputDim() int
	OutputDim() int
	StateSet() (sets.Set, bool)
	InputSet() (sets.Set, bool)
}

// StateMap is a map applied to a state alone.
type StateMap interface {
	Map
	Apply(x mat.Vector) (*mat.VecDense, error)
}

// ControlMap is a map applied to a state and an input.
type ControlMap interface {
	Map
	ApplyControl(x, u mat.Vector) (*mat.VecDense, error)
}

// Apply evaluates m at x, or at (x, u) for control maps.
func Apply(m Map, x mat.Vector, u ...mat.Vector) (*mat.VecDense, error) {
	switch m := m.(type) {
	case ControlMap:
		if len(u) != 1 {
			return nil, fmt.Errorf("%w: %s takes one input vector, got %d", dynamo.ErrShapeMismatch, m.Kind(), len(u))
		}
		return m.ApplyControl(x, u[0])
	case StateMap:
		if len(u) != 0 {
			return nil, fmt.Errorf("%w: %s takes no input vector, got %d", dynamo.ErrShapeMismatch, m.Kind(), len(u))
		}
		return m.Apply(x)
	default:
		return nil, fmt.Errorf("maps: %T cannot be applied", m)
	}
}

// constraints holds the optional regions of a variant. A nil region means
// the variant is unconstrained on that argument.
type constraints struct {
	x sets.Set
	u sets.Set
}

func (c constraints) StateSet() (sets.Set, bool) { return c.x, c.x != nil }

func (c constraints) InputSet() (sets.Set, bool) { return c.u, c.u != nil }

func stateConstraint(x sets.Set) (constraints, error) {
	if x == nil {
		return constraints{}, fmt.Errorf("%w: state set X", dynamo.ErrNilSet)
	}
	return constraints{x: x}, nil
}

func controlConstraints(x, u sets.Set) (constraints, error) {
	if x == nil {
		return constraints{}, fmt.Errorf("%w: state set X", dynamo.ErrNilSet)
	}
	if u == nil {
		return constraints{}, fmt.Errorf("%w: input set U", dynamo.ErrNilSet)
	}
	return constraints{x: x, u: u}, nil
}

// mulAdd returns A x (+ B u) (+ c) after checking argument lengths.
func mulAdd(a mat.Matrix, x mat.Vector, b mat.Matrix, u mat.Vector, c mat.Vector) (*mat.VecDense, error) {
	if err := dynamo.RequireLen("x", x, dynamo.Cols(a)); err != nil {
		return nil, err
	}
	if b != nil {
		if err := dynamo.RequireLen("u", u, dynamo.Cols(b)); err != nil {
			return nil, err
		}
	}
	// gonum has no zero-length vectors to multiply into.
	if dynamo.Rows(a) == 0 {
		return &mat.VecDense{}, nil
	}
	var res mat.VecDense
	res.MulVec(a, x)
	if b != nil {
		var bu mat.VecDense
		bu.MulVec(b, u)
		res.AddVec(&res, &bu)
	}
	if c != nil {
		res.AddVec(&res, c)
	}
	return &res, nil
}
