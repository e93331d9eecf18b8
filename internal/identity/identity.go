// Package identity provides a scalar multiple of the identity matrix with a
// fixed order. It satisfies mat.Matrix, so it can fill any matrix slot
// without materializing n*n entries.
package identity

import (
	"fmt"

	"github.com/san-kum/mathsys/internal/dynamo"
	"gonum.org/v1/gonum/mat"
)

// Multiple is λ·I(n).
type Multiple struct {
	scale float64
	n     int
}

var _ mat.Matrix = Multiple{}

// New returns scale·I(n).
func New(scale float64, n int) (Multiple, error) {
	if err := dynamo.RequireNonNegative("identity order", n); err != nil {
		return Multiple{}, err
	}
	return Multiple{scale: scale, n: n}, nil
}

// Scale returns the multiplier λ.
func (m Multiple) Scale() float64 { return m.scale }

// Order returns n.
func (m Multiple) Order() int { return m.n }

func (m Multiple) Dims() (r, c int) { return m.n, m.n }

func (m Multiple) At(i, j int) float64 {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		panic(mat.ErrIndexOutOfRange)
	}
	if i == j {
		return m.scale
	}
	return 0
}

func (m Multiple) T() mat.Matrix { return m }

func (m Multiple) checkOrder(o Multiple) error {
	if m.n != o.n {
		return fmt.Errorf("%w: order %d and %d", dynamo.ErrOrderMismatch, m.n, o.n)
	}
	return nil
}

// Add returns (λ+μ)·I(n).
func (m Multiple) Add(o Multiple) (Multiple, error) {
	if err := m.checkOrder(o); err != nil {
		return Multiple{}, err
	}
	return Multiple{scale: m.scale + o.scale, n: m.n}, nil
}

// Sub returns (λ-μ)·I(n).
func (m Multiple) Sub(o Multiple) (Multiple, error) {
	if err := m.checkOrder(o); err != nil {
		return Multiple{}, err
	}
	return Multiple{scale: m.scale - o.scale, n: m.n}, nil
}

// Mul returns (λμ)·I(n).
func (m Multiple) Mul(o Multiple) (Multiple, error) {
	if err := m.checkOrder(o); err != nil {
		return Multiple{}, err
	}
	return Multiple{scale: m.scale * o.scale, n: m.n}, nil
}

// AddScalar returns (λ+s)·I(n), treating s as s·I(n).
func (m Multiple) AddScalar(s float64) Multiple {
	return Multiple{scale: m.scale + s, n: m.n}
}

// MulScalar returns (sλ)·I(n).
func (m Multiple) MulScalar(s float64) Multiple {
	return Multiple{scale: m.scale * s, n: m.n}
}

// MulVec returns λ·x.
func (m Multiple) MulVec(x mat.Vector) (*mat.VecDense, error) {
	if err := dynamo.RequireLen("x", x, m.n); err != nil {
		return nil, err
	}
	var res mat.VecDense
	if m.n == 0 {
		return &res, nil
	}
	res.ScaleVec(m.scale, x)
	return &res, nil
}

// Dense materializes the matrix.
func (m Multiple) Dense() *mat.Dense {
	if m.n == 0 {
		return &mat.Dense{}
	}
	d := mat.NewDense(m.n, m.n, nil)
	for i := 0; i < m.n; i++ {
		d.Set(i, i, m.scale)
	}
	return d
}

func (m Multiple) String() string {
	return fmt.Sprintf("%g*I(%d)", m.scale, m.n)
}
