package mapexpr

import (
	"fmt"

	"github.com/san-kum/mathsys/internal/identity"
	"github.com/san-kum/mathsys/internal/linalg"
	"gonum.org/v1/gonum/mat"
)

// CoeffKind is the syntactic form of a coefficient.
type CoeffKind int

const (
	// CoeffUnit is a bare symbol, x.
	CoeffUnit CoeffKind = iota
	// CoeffScalar is k*x, a multiple of an identity of unknown order.
	CoeffScalar
	// CoeffIdentity is [k*]I(n)*x.
	CoeffIdentity
	// CoeffMatrix is a literal or bound matrix.
	CoeffMatrix
)

// Coefficient multiplies one symbol of the normal form.
type Coefficient struct {
	Kind   CoeffKind
	Scale  float64
	Order  int
	Matrix mat.Matrix
}

// IsIdentity reports whether the coefficient is exactly I.
func (c Coefficient) IsIdentity() bool {
	return c.Kind != CoeffMatrix && c.Scale == 1
}

// Dims returns the coefficient shape when the expression fixes it.
func (c Coefficient) Dims() (r, cols int, ok bool) {
	switch c.Kind {
	case CoeffMatrix:
		r, cols = c.Matrix.Dims()
		return r, cols, true
	case CoeffIdentity:
		return c.Order, c.Order, true
	default:
		return 0, 0, false
	}
}

// matrix materializes the coefficient, using n for identities of unknown order.
func (c Coefficient) matrix(n int) (mat.Matrix, error) {
	switch c.Kind {
	case CoeffMatrix:
		return c.Matrix, nil
	case CoeffIdentity:
		return identity.New(c.Scale, c.Order)
	default:
		return identity.New(c.Scale, n)
	}
}

func (c Coefficient) String() string {
	switch c.Kind {
	case CoeffUnit:
		return "I"
	case CoeffScalar:
		return fmt.Sprintf("%g*I", c.Scale)
	case CoeffIdentity:
		return fmt.Sprintf("%g*I(%d)", c.Scale, c.Order)
	default:
		r, cols := c.Matrix.Dims()
		return fmt.Sprintf("%dx%d matrix", r, cols)
	}
}

// NormalForm is an expression rewritten as A·x [+ B·u] [+ c].
type NormalForm struct {
	State string
	// Input is empty unless the expression declares (x, u).
	Input string
	A     Coefficient
	// B is nil when no input term appears.
	B *Coefficient
	// C is nil when no constant term appears. An all-zero C still fixes
	// the dimension but does not count as a constant term.
	C mat.Vector
}

// HasInput reports whether the normal form carries an input term.
func (nf *NormalForm) HasInput() bool { return nf.B != nil }

// HasConstant reports whether the normal form carries a nonzero constant term.
func (nf *NormalForm) HasConstant() bool { return nf.C != nil && !linalg.IsZero(nf.C) }

func (nf *NormalForm) String() string {
	s := fmt.Sprintf("%s·%s", nf.A, nf.State)
	if nf.B != nil {
		s += fmt.Sprintf(" + %s·%s", *nf.B, nf.Input)
	}
	if nf.HasConstant() {
		s += fmt.Sprintf(" + c(%d)", nf.C.Len())
	}
	return s
}
