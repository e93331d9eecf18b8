package mapexpr

import (
	"fmt"

	"github.com/san-kum/mathsys/internal/dynamo"
	"github.com/san-kum/mathsys/internal/maps"
	"gonum.org/v1/gonum/mat"
)

// Compile parses src, classifies it and builds the matching map. Passing
// WithStateSet selects the constrained variant; control expressions then
// also need WithInputSet.
func Compile(src string, opts ...Option) (maps.Map, error) {
	o := newOptions(opts)
	nf, err := parse(src, o)
	if err != nil {
		return nil, err
	}
	n, err := resolveDim(nf, o)
	if err != nil {
		return nil, err
	}
	return build(nf, Classify(nf), n, o)
}

// resolveDim returns the state dimension implied by nf, checked against
// any WithDim option.
func resolveDim(nf *NormalForm, o *options) (int, error) {
	inferred, ok := inferDim(nf)
	switch {
	case ok && o.hasDim && inferred != o.dim:
		return 0, fmt.Errorf("%w: expression implies %d, got %d", dynamo.ErrDimensionConflict, inferred, o.dim)
	case ok:
		return inferred, nil
	case o.hasDim:
		if err := dynamo.RequireNonNegative("dim", o.dim); err != nil {
			return 0, err
		}
		return o.dim, nil
	default:
		return 0, fmt.Errorf("%w: cannot infer the dimension of %q, pass WithDim", dynamo.ErrUnsupportedExpression, nf.State)
	}
}

// inferDim reads the state dimension from the state coefficient. A
// coefficient of unknown order is square, so B rows or the constant length
// fix it instead.
func inferDim(nf *NormalForm) (int, bool) {
	if _, c, ok := nf.A.Dims(); ok {
		return c, true
	}
	if nf.B != nil {
		if r, _, ok := nf.B.Dims(); ok {
			return r, true
		}
	}
	if nf.C != nil {
		return nf.C.Len(), true
	}
	return 0, false
}

// inputDim sizes a B coefficient of unknown order; it is square with the
// output dimension.
func inputDim(nf *NormalForm, A mat.Matrix) int {
	if _, c, ok := nf.B.Dims(); ok {
		return c
	}
	return dynamo.Rows(A)
}

func build(nf *NormalForm, class dynamo.Class, n int, o *options) (maps.Map, error) {
	if o.inputSet != nil && !nf.HasInput() {
		return nil, fmt.Errorf("%w: input set given for a map without input", dynamo.ErrUnsupportedExpression)
	}
	constrained := o.stateSet != nil || o.inputSet != nil

	var (
		m   maps.Map
		err error
	)
	if class == dynamo.ClassIdentity {
		if constrained {
			m, err = maps.NewConstrainedIdentityMap(n, o.stateSet)
		} else {
			m, err = maps.NewIdentityMap(n)
		}
		return checked(m, err)
	}

	A, err := nf.A.matrix(n)
	if err != nil {
		return nil, err
	}
	var B mat.Matrix
	if nf.HasInput() {
		if B, err = nf.B.matrix(inputDim(nf, A)); err != nil {
			return nil, err
		}
	}

	switch {
	case class == dynamo.ClassLinear && constrained:
		m, err = maps.NewConstrainedLinearMap(A, o.stateSet)
	case class == dynamo.ClassLinear:
		m, err = maps.NewLinearMap(A)
	case class == dynamo.ClassAffine && constrained:
		m, err = maps.NewConstrainedAffineMap(A, nf.C, o.stateSet)
	case class == dynamo.ClassAffine:
		m, err = maps.NewAffineMap(A, nf.C)
	case class == dynamo.ClassLinearControl && constrained:
		m, err = maps.NewConstrainedLinearControlMap(A, B, o.stateSet, o.inputSet)
	case class == dynamo.ClassLinearControl:
		m, err = maps.NewLinearControlMap(A, B)
	case class == dynamo.ClassAffineControl && constrained:
		m, err = maps.NewConstrainedAffineControlMap(A, B, nf.C, o.stateSet, o.inputSet)
	default:
		m, err = maps.NewAffineControlMap(A, B, nf.C)
	}
	return checked(m, err)
}

// checked drops the typed nil a failed constructor leaves in m.
func checked(m maps.Map, err error) (maps.Map, error) {
	if err != nil {
		return nil, err
	}
	return m, nil
}
