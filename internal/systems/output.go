package systems

import (
	"github.com/san-kum/mathsys/internal/dynamo"
	"github.com/san-kum/mathsys/internal/maps"
	"github.com/san-kum/mathsys/internal/sets"
	"gonum.org/v1/gonum/mat"
)

// SystemWithOutput pairs a system with the map producing its output.
type SystemWithOutput[S System, M maps.Map] struct {
	s         S
	outputmap M
}

func NewSystemWithOutput[S System, M maps.Map](s S, outputmap M) SystemWithOutput[S, M] {
	return SystemWithOutput[S, M]{s: s, outputmap: outputmap}
}

func (w SystemWithOutput[S, M]) System() S    { return w.s }
func (w SystemWithOutput[S, M]) OutputMap() M { return w.outputmap }
func (w SystemWithOutput[S, M]) OutputDim() int {
	return w.outputmap.OutputDim()
}

// Base and Output return the parts without their type parameters.
func (w SystemWithOutput[S, M]) Base() System     { return w.s }
func (w SystemWithOutput[S, M]) Output() maps.Map { return w.outputmap }

func (w SystemWithOutput[S, M]) Kind() dynamo.Kind          { return w.s.Kind() }
func (w SystemWithOutput[S, M]) StateDim() int              { return w.s.StateDim() }
func (w SystemWithOutput[S, M]) InputDim() int              { return w.s.InputDim() }
func (w SystemWithOutput[S, M]) StateSet() (sets.Set, bool) { return w.s.StateSet() }
func (w SystemWithOutput[S, M]) InputSet() (sets.Set, bool) { return w.s.InputSet() }

// LTISystem is the system-with-output returned by NewLinearTimeInvariantSystem.
type LTISystem = SystemWithOutput[*LinearControlSystem, *maps.LinearControlMap]

// NewLinearTimeInvariantSystem returns
//
//	x' = Ax + Bu
//	y  = Cx + Du
//
// as a linear control continuous system with a linear control output map.
func NewLinearTimeInvariantSystem(A, B, C, D mat.Matrix) (LTISystem, error) {
	s, err := NewLinearControlContinuousSystem(A, B)
	if err != nil {
		return LTISystem{}, err
	}
	m, err := outputMap(s, C, D)
	if err != nil {
		return LTISystem{}, err
	}
	return NewSystemWithOutput(s, m), nil
}

// NewConstrainedLinearTimeInvariantSystem is NewLinearTimeInvariantSystem with
// x(t) ∈ X and u(t) ∈ U for all t.
func NewConstrainedLinearTimeInvariantSystem(A, B, C, D mat.Matrix, X, U sets.Set) (LTISystem, error) {
	s, err := NewConstrainedLinearControlContinuousSystem(A, B, X, U)
	if err != nil {
		return LTISystem{}, err
	}
	m, err := outputMap(s, C, D)
	if err != nil {
		return LTISystem{}, err
	}
	return NewSystemWithOutput(s, m), nil
}

func outputMap(s *LinearControlSystem, C, D mat.Matrix) (*maps.LinearControlMap, error) {
	m, err := maps.NewLinearControlMap(C, D)
	if err != nil {
		return nil, err
	}
	if m.StateDim() != s.StateDim() {
		return nil, &dynamo.ShapeError{Field: "C columns", Want: s.StateDim(), Got: m.StateDim(), Wrapped: dynamo.ErrShapeMismatch}
	}
	if m.InputDim() != s.InputDim() {
		return nil, &dynamo.ShapeError{Field: "D columns", Want: s.InputDim(), Got: m.InputDim(), Wrapped: dynamo.ErrShapeMismatch}
	}
	return m, nil
}
