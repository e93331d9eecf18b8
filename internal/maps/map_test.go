package maps

import (
	"errors"
	"testing"

	"github.com/san-kum/mathsys/internal/dynamo"
	"github.com/san-kum/mathsys/internal/identity"
	"github.com/san-kum/mathsys/internal/sets"
	"gonum.org/v1/gonum/mat"
)

func vec(data ...float64) *mat.VecDense {
	return mat.NewVecDense(len(data), data)
}

func assertVec(t *testing.T, got *mat.VecDense, want ...float64) {
	t.Helper()
	if !mat.Equal(got, vec(want...)) {
		t.Errorf("expected %v, got %v", want, got.RawVector().Data)
	}
}

func TestResetMap_Apply(t *testing.T) {
	m, err := NewResetMap(3, map[int]float64{2: 9.0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	y, err := Apply(m, vec(1, 1, 1))
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	assertVec(t, y, 1, 9, 1)

	if m.OutputDim() != 3 {
		t.Errorf("expected output dim 3, got %d", m.OutputDim())
	}
	if v, ok := m.Value(2); !ok || v != 9 {
		t.Errorf("expected (9, true), got (%f, %v)", v, ok)
	}
}

func TestResetMap_OutOfRange(t *testing.T) {
	for _, k := range []int{0, 4, -1} {
		_, err := NewResetMap(3, map[int]float64{k: 1})
		if !errors.Is(err, dynamo.ErrShapeMismatch) {
			t.Errorf("key %d: expected ErrShapeMismatch, got %v", k, err)
		}
	}
}

func TestResetMap_CopiesOverrides(t *testing.T) {
	reset := map[int]float64{1: 0, 3: 5}
	m, err := NewResetMap(3, reset)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	reset[2] = 7

	if _, ok := m.Value(2); ok {
		t.Error("map picked up an override added after construction")
	}
	if got := m.Indices(); len(got) != 2 || got[0] != 1 || got[1] != 3 {
		t.Errorf("expected indices [1 3], got %v", got)
	}
}

func TestApply(t *testing.T) {
	A := mat.NewDense(2, 2, []float64{1, 0, 0, 0})
	B := mat.NewDense(2, 1, []float64{0, 1})
	b := vec(2, 0)

	id, _ := NewIdentityMap(2)
	lin, _ := NewLinearMap(A)
	aff, _ := NewAffineMap(A, b)
	lc, _ := NewLinearControlMap(A, B)
	ac, _ := NewAffineControlMap(A, B, b)

	x := vec(3, 4)
	u := vec(5)

	tests := []struct {
		name string
		m    Map
		u    []mat.Vector
		want []float64
	}{
		{"identity", id, nil, []float64{3, 4}},
		{"linear", lin, nil, []float64{3, 0}},
		{"affine", aff, nil, []float64{5, 0}},
		{"linear control", lc, []mat.Vector{u}, []float64{3, 5}},
		{"affine control", ac, []mat.Vector{u}, []float64{5, 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			y, err := Apply(tt.m, x, tt.u...)
			if err != nil {
				t.Fatalf("apply failed: %v", err)
			}
			assertVec(t, y, tt.want...)
		})
	}
}

func TestApply_ShapeMismatch(t *testing.T) {
	A := mat.NewDense(2, 2, []float64{1, 0, 0, 1})
	B := mat.NewDense(2, 1, []float64{0, 1})

	lin, _ := NewLinearMap(A)
	lc, _ := NewLinearControlMap(A, B)
	reset, _ := NewResetMap(2, nil)

	tests := []struct {
		name string
		m    Map
		x    mat.Vector
		u    []mat.Vector
	}{
		{"short state", lin, vec(1), nil},
		{"reset short state", reset, vec(1, 2, 3), nil},
		{"input to state map", lin, vec(1, 2), []mat.Vector{vec(1)}},
		{"missing input", lc, vec(1, 2), nil},
		{"long input", lc, vec(1, 2), []mat.Vector{vec(1, 2)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Apply(tt.m, tt.x, tt.u...); !errors.Is(err, dynamo.ErrShapeMismatch) {
				t.Errorf("expected ErrShapeMismatch, got %v", err)
			}
		})
	}
}

func TestConstructors_ShapeMismatch(t *testing.T) {
	A := mat.NewDense(2, 3, nil)
	B := mat.NewDense(3, 1, nil)

	tests := []struct {
		name string
		err  error
	}{
		{"nil A", func() error { _, err := NewLinearMap(nil); return err }()},
		{"typed nil A", func() error { _, err := NewLinearMap((*mat.Dense)(nil)); return err }()},
		{"typed nil B", func() error { _, err := NewLinearControlMap(A, (*mat.Dense)(nil)); return err }()},
		{"b length", func() error { _, err := NewAffineMap(A, vec(1, 2, 3)); return err }()},
		{"B rows", func() error { _, err := NewLinearControlMap(A, B); return err }()},
		{"c length", func() error { _, err := NewAffineControlMap(A, mat.NewDense(2, 1, nil), vec(1)); return err }()},
		{"negative dim", func() error { _, err := NewIdentityMap(-1); return err }()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, dynamo.ErrShapeMismatch) {
				t.Errorf("expected ErrShapeMismatch, got %v", tt.err)
			}
		})
	}
}

func TestApply_ZeroDimension(t *testing.T) {
	I0, err := identity.New(2, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m, err := NewLinearMap(I0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	y, err := Apply(m, &mat.VecDense{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if y.Len() != 0 {
		t.Errorf("expected empty result, got length %d", y.Len())
	}
	if _, err := Apply(m, vec(1)); !errors.Is(err, dynamo.ErrShapeMismatch) {
		t.Errorf("expected ErrShapeMismatch, got %v", err)
	}
}

func TestDimensions(t *testing.T) {
	C := mat.NewDense(1, 3, []float64{0, 0, 1})
	D := mat.NewDense(1, 2, nil)

	m, err := NewLinearControlMap(C, D)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.StateDim() != 3 {
		t.Errorf("expected state dim 3, got %d", m.StateDim())
	}
	if m.InputDim() != 2 {
		t.Errorf("expected input dim 2, got %d", m.InputDim())
	}
	if m.OutputDim() != 1 {
		t.Errorf("expected output dim 1, got %d", m.OutputDim())
	}
}

func TestConstrained(t *testing.T) {
	A := mat.NewDense(2, 2, []float64{1, 0, 0, 1})
	B := mat.NewDense(2, 1, []float64{0, 1})
	X := sets.Universe(2)
	U := sets.Universe(1)

	plain, _ := NewLinearControlMap(A, B)
	if _, ok := plain.StateSet(); ok {
		t.Error("unconstrained map reported a state set")
	}
	if plain.Kind().Constrained {
		t.Error("unconstrained map tagged constrained")
	}

	m, err := NewConstrainedLinearControlMap(A, B, X, U)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, ok := m.StateSet(); !ok || got != X {
		t.Errorf("expected state set %v, got %v", X, got)
	}
	if got, ok := m.InputSet(); !ok || got != U {
		t.Errorf("expected input set %v, got %v", U, got)
	}
	if m.Kind().String() != "ConstrainedLinearControlMap" {
		t.Errorf("unexpected kind %s", m.Kind())
	}

	if _, err := NewConstrainedAffineMap(A, vec(0, 0), nil); !errors.Is(err, dynamo.ErrNilSet) {
		t.Errorf("expected ErrNilSet, got %v", err)
	}
	if _, err := NewConstrainedLinearControlMap(A, B, X, nil); !errors.Is(err, dynamo.ErrNilSet) {
		t.Errorf("expected ErrNilSet, got %v", err)
	}
}

func TestTraits(t *testing.T) {
	A := mat.NewDense(1, 1, []float64{2})
	X := sets.Universe(1)

	id, _ := NewConstrainedIdentityMap(1, X)
	lin, _ := NewConstrainedLinearMap(A, X)
	aff, _ := NewAffineMap(A, vec(1))
	reset, _ := NewConstrainedResetMap(1, X, map[int]float64{1: 0})

	tests := []struct {
		m      Map
		linear bool
		affine bool
	}{
		{id, true, true},
		{lin, true, true},
		{aff, false, true},
		{reset, false, true},
	}

	for _, tt := range tests {
		if got := dynamo.IsLinear(tt.m); got != tt.linear {
			t.Errorf("%s: expected islinear %v, got %v", tt.m.Kind(), tt.linear, got)
		}
		if got := dynamo.IsAffine(tt.m); got != tt.affine {
			t.Errorf("%s: expected isaffine %v, got %v", tt.m.Kind(), tt.affine, got)
		}
	}
}

func TestIdentityMap_A(t *testing.T) {
	m, _ := NewIdentityMap(4)
	I := m.A()
	if I.Order() != 4 || I.Scale() != 1 {
		t.Errorf("expected 1*I(4), got %v", I)
	}
}
