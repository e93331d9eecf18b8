// Package sets provides constraint regions for states and inputs.
//
// The taxonomy never inspects a region beyond storing it; [Set] is the only
// contract a caller-supplied region has to meet.
package sets

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Set is an opaque region with membership semantics.
type Set interface {
	Contains(x mat.Vector) bool
}

// Universe is the whole space of the given dimension.
type Universe int

func (u Universe) Contains(x mat.Vector) bool {
	return x.Len() == int(u)
}

// Hyperrectangle is the axis-aligned box lo <= x <= hi.
type Hyperrectangle struct {
	lo []float64
	hi []float64
}

// NewHyperrectangle returns the box with the given corner bounds.
func NewHyperrectangle(lo, hi []float64) (*Hyperrectangle, error) {
	if len(lo) != len(hi) {
		return nil, fmt.Errorf("sets: bounds of length %d and %d", len(lo), len(hi))
	}
	for i := range lo {
		if lo[i] > hi[i] {
			return nil, fmt.Errorf("sets: empty interval %d: [%g, %g]", i, lo[i], hi[i])
		}
	}
	h := &Hyperrectangle{lo: make([]float64, len(lo)), hi: make([]float64, len(hi))}
	copy(h.lo, lo)
	copy(h.hi, hi)
	return h, nil
}

func (h *Hyperrectangle) Dim() int {
	return len(h.lo)
}

func (h *Hyperrectangle) Contains(x mat.Vector) bool {
	if x.Len() != len(h.lo) {
		return false
	}
	for i := range h.lo {
		v := x.AtVec(i)
		if v < h.lo[i] || v > h.hi[i] {
			return false
		}
	}
	return true
}

func (h *Hyperrectangle) String() string {
	return fmt.Sprintf("Hyperrectangle(lo=%v, hi=%v)", h.lo, h.hi)
}
