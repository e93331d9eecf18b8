package mapexpr

import (
	"github.com/san-kum/mathsys/internal/sets"
	"gonum.org/v1/gonum/mat"
)

// Option configures Parse and Compile.
type Option func(*options)

type options struct {
	dim      int
	hasDim   bool
	stateSet sets.Set
	inputSet sets.Set
	matrices map[string]mat.Matrix
	vectors  map[string]mat.Vector
}

func newOptions(opts []Option) *options {
	o := &options{
		matrices: make(map[string]mat.Matrix),
		vectors:  make(map[string]mat.Vector),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithDim declares the state dimension. It must agree with any dimension
// implied by the expression.
func WithDim(n int) Option {
	return func(o *options) {
		o.dim = n
		o.hasDim = true
	}
}

// WithStateSet compiles to the constrained variant with state region X.
func WithStateSet(X sets.Set) Option {
	return func(o *options) { o.stateSet = X }
}

// WithInputSet sets the input region U of a control map.
func WithInputSet(U sets.Set) Option {
	return func(o *options) { o.inputSet = U }
}

// WithMatrix binds name to a coefficient matrix usable as "name*x".
func WithMatrix(name string, m mat.Matrix) Option {
	return func(o *options) { o.matrices[name] = m }
}

// WithVector binds name to a constant vector usable as a "+ name" term.
func WithVector(name string, v mat.Vector) Option {
	return func(o *options) { o.vectors[name] = v }
}
