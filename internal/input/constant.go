package input

import "iter"

// Constant is an input that holds one element for all time.
type Constant[T any] struct {
	u T
}

// NewConstant returns the constant input u.
func NewConstant[T any](u T) Constant[T] {
	return Constant[T]{u: u}
}

// Value returns the stored element.
func (c Constant[T]) Value() T { return c.u }

func (c Constant[T]) Len() int { return Unbounded }

func (c Constant[T]) At(k int) (T, bool) {
	if k < 0 {
		var zero T
		return zero, false
	}
	return c.u, true
}

func (c Constant[T]) Next(n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < n; i++ {
			if !yield(c.u) {
				return
			}
		}
	}
}

func (c Constant[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for yield(c.u) {
		}
	}
}

func (Constant[T]) sealed() {}
