// Package dynamo provides the core primitives shared by every system and
// map variant.
//
// The package defines the closed taxonomy tag and the structural queries
// answered from it:
//
//   - [Kind]: the four orthogonal axes (time domain, class, constrained, controlled)
//   - [IsLinear], [IsAffine]: trait queries that read the tag, never the values
//   - [Kinds]: every variant of the taxonomy, in a fixed order
//   - [SquareOrder], [RequireRows], [RequireLen]: shape checks used by constructors
//
// # Errors
//
// All construction and compile failures wrap one of the sentinel errors in
// errors.go and are matched with errors.Is:
//
//	_, err := systems.NewLinearContinuousSystem(A)
//	if errors.Is(err, dynamo.ErrShapeMismatch) { ... }
//
// # Thread Safety
//
// Every value built on top of this package is immutable after construction
// and may be read from multiple goroutines without synchronization.
package dynamo
