// Package input models the exogenous input fed to controlled systems.
//
// Two behaviours share one lazy-sequence contract:
//
//   - [Constant]: a single element repeated forever
//   - [Varying]: a finite ordered sequence
//
// Sequences are derived from the stored value on every call, so they can be
// ranged over any number of times with identical results.
//
//	c := input.NewConstant(-0.5)
//	for u := range input.Next(c, 4) { ... } // four copies of -0.5
package input

import "iter"

// Unbounded is the length reported by inputs with no last element.
const Unbounded = -1

// Input is the shared contract of constant and varying inputs.
type Input[T any] interface {
	// Next returns the first n elements as a restartable sequence.
	Next(n int) iter.Seq[T]
	// All returns every element; infinite for constant input.
	All() iter.Seq[T]
	// At returns the element at 0-based index k, if there is one.
	At(k int) (T, bool)
	// Len returns the number of elements or Unbounded.
	Len() int

	sealed()
}

// Next returns the first n elements of in. Negative n yields nothing.
func Next[T any](in Input[T], n int) iter.Seq[T] {
	return in.Next(n)
}

// Collect materializes the first n elements of in.
func Collect[T any](in Input[T], n int) []T {
	out := make([]T, 0, max(0, min(n, capHint(in, n))))
	for v := range in.Next(n) {
		out = append(out, v)
	}
	return out
}

func capHint[T any](in Input[T], n int) int {
	if l := in.Len(); l != Unbounded {
		return l
	}
	return n
}

// Map lifts f over in. A constant input stays constant and a varying input
// stays varying; in is left untouched.
func Map[T, U any](in Input[T], f func(T) U) Input[U] {
	switch v := in.(type) {
	case Constant[T]:
		return Constant[U]{u: f(v.u)}
	case Varying[T]:
		out := make([]U, len(v.u))
		for i, e := range v.u {
			out[i] = f(e)
		}
		return Varying[U]{u: out}
	default:
		panic("input: unknown input variant")
	}
}
