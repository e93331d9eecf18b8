package dynamo

// Kind makes a bare tag usable wherever a Kinded is expected.
func (k Kind) Kind() Kind { return k }

var systemClasses = []Class{
	ClassIdentity, ClassLinear, ClassAffine, ClassLinearControl,
	ClassAffineControl, ClassLinearAlgebraic, ClassPolynomial,
}

var mapClasses = []Class{
	ClassIdentity, ClassLinear, ClassAffine, ClassLinearControl,
	ClassAffineControl, ClassReset,
}

// Valid reports whether k names a variant of the taxonomy. Affine control
// systems exist only in constrained form, and resets only as maps.
func (k Kind) Valid() bool {
	classes := systemClasses
	if k.IsMap() {
		classes = mapClasses
	} else if k.Time != Continuous && k.Time != Discrete {
		return false
	}
	for _, c := range classes {
		if c == k.Class {
			return k.Constrained || k.IsMap() || c != ClassAffineControl
		}
	}
	return false
}

// Kinds lists every variant: continuous systems, discrete systems, then
// maps, each unconstrained before constrained.
func Kinds() []Kind {
	var out []Kind
	add := func(time TimeDomain, classes []Class) {
		for _, c := range classes {
			for _, constrained := range []bool{false, true} {
				if k := (Kind{Time: time, Class: c, Constrained: constrained}); k.Valid() {
					out = append(out, k)
				}
			}
		}
	}
	add(Continuous, systemClasses)
	add(Discrete, systemClasses)
	add(NoTime, mapClasses)
	return out
}
