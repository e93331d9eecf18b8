// Package systems provides the closed taxonomy of continuous- and
// discrete-time systems and the wrappers composed from them.
//
// One payload struct exists per dynamics class; the time domain and the
// presence of constraints are recorded in the variant tag returned by Kind:
//
//   - [IdentitySystem]: x' = 0 / x⁺ = x
//   - [LinearSystem]: x' = Ax
//   - [AffineSystem]: x' = Ax + b
//   - [LinearControlSystem]: x' = Ax + Bu
//   - [AffineControlSystem]: x' = Ax + Bu + c (constrained only)
//   - [LinearAlgebraicSystem]: Ex' = Ax
//   - [PolynomialSystem]: x' = p(x)
//
// Every variant has a constructor per time domain, e.g.
// NewLinearContinuousSystem and NewConstrainedLinearDiscreteSystem. The
// constructor is the only validation point.
//
// # Wrappers
//
//	ivp := systems.NewInitialValueProblem(sys, x0)
//	lti, err := systems.NewLinearTimeInvariantSystem(A, B, C, D)
//	lti.OutputDim()
package systems
