package mapexpr

import "github.com/san-kum/mathsys/internal/dynamo"

// Classify picks the map class from the terms present in nf.
func Classify(nf *NormalForm) dynamo.Class {
	switch {
	case nf.HasInput() && nf.HasConstant():
		return dynamo.ClassAffineControl
	case nf.HasInput():
		return dynamo.ClassLinearControl
	case nf.HasConstant():
		return dynamo.ClassAffine
	case nf.A.IsIdentity():
		return dynamo.ClassIdentity
	default:
		return dynamo.ClassLinear
	}
}
