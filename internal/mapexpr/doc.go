// Package mapexpr compiles a map written as an anonymous-function expression
// into the matching variant of package maps.
//
// Compilation runs in separate stages that can be used on their own:
//
//  1. [Parse] reads the expression into a [NormalForm] A·x [+ B·u] [+ c].
//  2. [Classify] picks the dynamics class from the terms present.
//  3. [Compile] resolves the state dimension, checks it against WithDim and
//     calls the constructor for the class.
//
// # Grammar
//
//	expr  := lhs ("->" | "↦") term { "+" term }
//	lhs   := ident | "(" ident "," ident ")"
//	term  := [coeff "*"] ident | vector | name
//	coeff := matrix | name | number | [number "*"] "I(" int ")"
//
// Matrices are written row by row, e.g. [1 0; 0 0]; vectors as [2, 0].
// Names refer to values registered with WithMatrix and WithVector.
// Subtraction, products of symbols and function calls other than I(n) are
// rejected with ErrUnsupportedExpression.
//
// # Examples
//
//	m, _ := mapexpr.Compile("x -> [1 0; 0 0]*x")            // *maps.LinearMap
//	m, _ = mapexpr.Compile("x -> [1 0; 0 0]*x + [2, 0]")    // *maps.AffineMap
//	m, _ = mapexpr.Compile("x -> x", mapexpr.WithDim(5))    // *maps.IdentityMap
//	m, _ = mapexpr.Compile("(x, u) -> A*x + B*u",
//		mapexpr.WithMatrix("A", A), mapexpr.WithMatrix("B", B)) // *maps.LinearControlMap
package mapexpr
