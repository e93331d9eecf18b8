package systems

import (
	"github.com/san-kum/mathsys/internal/dynamo"
	"github.com/san-kum/mathsys/internal/sets"
	"gonum.org/v1/gonum/mat"
)

// InitialValueProblem pairs a system with an initial state. The length of
// x0 is not checked on construction; call CheckInitialState where it matters.
type InitialValueProblem[S System] struct {
	s  S
	x0 mat.Vector
}

// IVP is shorthand for InitialValueProblem.
type IVP[S System] = InitialValueProblem[S]

func NewInitialValueProblem[S System](s S, x0 mat.Vector) InitialValueProblem[S] {
	return InitialValueProblem[S]{s: s, x0: x0}
}

func (p InitialValueProblem[S]) System() S      { return p.s }
func (p InitialValueProblem[S]) X0() mat.Vector { return p.x0 }

// Base returns the wrapped system without its type parameter.
func (p InitialValueProblem[S]) Base() System { return p.s }

func (p InitialValueProblem[S]) Kind() dynamo.Kind          { return p.s.Kind() }
func (p InitialValueProblem[S]) StateDim() int              { return p.s.StateDim() }
func (p InitialValueProblem[S]) InputDim() int              { return p.s.InputDim() }
func (p InitialValueProblem[S]) StateSet() (sets.Set, bool) { return p.s.StateSet() }
func (p InitialValueProblem[S]) InputSet() (sets.Set, bool) { return p.s.InputSet() }

// CheckInitialState fails if x0 does not have the system's state dimension.
func (p InitialValueProblem[S]) CheckInitialState() error {
	return dynamo.RequireLen("x0", p.x0, p.s.StateDim())
}
