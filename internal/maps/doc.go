// Package maps provides the closed set of map variants used as output and
// reset transformations.
//
//   - [IdentityMap]: x ↦ x
//   - [LinearMap]: x ↦ Ax
//   - [AffineMap]: x ↦ Ax + b
//   - [LinearControlMap]: (x, u) ↦ Ax + Bu
//   - [AffineControlMap]: (x, u) ↦ Ax + Bu + c
//   - [ResetMap]: x ↦ x with a subset of coordinates overwritten
//
// Each variant also has a constrained form carrying a state region X (and an
// input region U for the control variants). Constructors are the only place
// shapes are validated; a constructed map never fails an accessor.
//
// # Usage
//
//	m, err := maps.NewAffineMap(A, b)
//	y, err := maps.Apply(m, x)
package maps
