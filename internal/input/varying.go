package input

import (
	"iter"
	"slices"
)

// Varying is an input given by a finite sequence of elements.
type Varying[T any] struct {
	u []T
}

// NewVarying returns the varying input over a copy of u.
func NewVarying[T any](u []T) Varying[T] {
	return Varying[T]{u: slices.Clone(u)}
}

func (v Varying[T]) Len() int { return len(v.u) }

func (v Varying[T]) At(k int) (T, bool) {
	if k < 0 || k >= len(v.u) {
		var zero T
		return zero, false
	}
	return v.u[k], true
}

// Next yields min(n, Len()) elements; asking for more than stored is not an error.
func (v Varying[T]) Next(n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < n && i < len(v.u); i++ {
			if !yield(v.u[i]) {
				return
			}
		}
	}
}

func (v Varying[T]) All() iter.Seq[T] {
	return slices.Values(v.u)
}

func (Varying[T]) sealed() {}
