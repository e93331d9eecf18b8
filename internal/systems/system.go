package systems

import (
	"fmt"

	"github.com/san-kum/mathsys/internal/dynamo"
	"github.com/san-kum/mathsys/internal/sets"
)

// System is the accessor contract shared by every system variant.
type System interface {
	dynamo.Kinded
	StateDim() int
	// InputDim is 0 for variants without a control axis.
	InputDim() int
	StateSet() (sets.Set, bool)
	InputSet() (sets.Set, bool)
}

// StateDim returns the state dimension of s.
func StateDim(s System) int { return s.StateDim() }

// InputDim returns the input dimension of s.
func InputDim(s System) int { return s.InputDim() }

// StateSet returns the state region of s, or false when s is unconstrained.
func StateSet(s System) (sets.Set, bool) { return s.StateSet() }

// InputSet returns the input region of s, or false when s has none.
func InputSet(s System) (sets.Set, bool) { return s.InputSet() }

type constraints struct {
	x sets.Set
	u sets.Set
}

func (c constraints) StateSet() (sets.Set, bool) { return c.x, c.x != nil }

func (c constraints) InputSet() (sets.Set, bool) { return c.u, c.u != nil }

func (c constraints) constrained() bool { return c.x != nil }

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
