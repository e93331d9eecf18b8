package dynamo

// TimeDomain is the time axis of a system. Maps carry NoTime.
type TimeDomain int

const (
	NoTime TimeDomain = iota
	Continuous
	Discrete
)

func (t TimeDomain) String() string {
	switch t {
	case Continuous:
		return "Continuous"
	case Discrete:
		return "Discrete"
	default:
		return ""
	}
}

// Class is the dynamics class of a variant.
type Class int

const (
	ClassIdentity Class = iota
	ClassLinear
	ClassAffine
	ClassLinearControl
	ClassAffineControl
	ClassLinearAlgebraic
	ClassPolynomial
	ClassReset
)

var classNames = [...]string{
	ClassIdentity:        "Identity",
	ClassLinear:          "Linear",
	ClassAffine:          "Affine",
	ClassLinearControl:   "LinearControl",
	ClassAffineControl:   "AffineControl",
	ClassLinearAlgebraic: "LinearAlgebraic",
	ClassPolynomial:      "Polynomial",
	ClassReset:           "Reset",
}

func (c Class) String() string {
	if c < 0 || int(c) >= len(classNames) {
		return "Unknown"
	}
	return classNames[c]
}

// Controlled reports whether the class takes an exogenous input.
func (c Class) Controlled() bool {
	return c == ClassLinearControl || c == ClassAffineControl
}

// traits holds the structural answers for one class.
type traits struct {
	linear bool
	affine bool
}

var classTraits = map[Class]traits{
	ClassIdentity:        {linear: true, affine: true},
	ClassLinear:          {linear: true, affine: true},
	ClassLinearControl:   {linear: true, affine: true},
	ClassLinearAlgebraic: {linear: true, affine: true},
	ClassAffine:          {linear: false, affine: true},
	ClassAffineControl:   {linear: false, affine: true},
	ClassReset:           {linear: false, affine: true},
	ClassPolynomial:      {linear: false, affine: false},
}

// Kind is the variant tag of a system or map.
type Kind struct {
	Time        TimeDomain
	Class       Class
	Constrained bool
}

// Controlled reports whether the variant carries a control axis.
func (k Kind) Controlled() bool {
	return k.Class.Controlled()
}

// IsMap reports whether the tag describes a map rather than a system.
func (k Kind) IsMap() bool {
	return k.Time == NoTime
}

// String returns the variant name, e.g. ConstrainedLinearControlDiscreteSystem
// or AffineMap.
func (k Kind) String() string {
	name := ""
	if k.Constrained {
		name = "Constrained"
	}
	if k.IsMap() {
		return name + k.Class.String() + "Map"
	}
	// identity systems read ContinuousIdentitySystem, the others LinearContinuousSystem
	if k.Class == ClassIdentity {
		return name + k.Time.String() + "IdentitySystem"
	}
	return name + k.Class.String() + k.Time.String() + "System"
}

// Kinded is implemented by every system, map and wrapper.
type Kinded interface {
	Kind() Kind
}

// IsLinear reports whether every instance of v's variant is linear in
// (state, input). It reads the tag only.
func IsLinear(v Kinded) bool {
	return classTraits[v.Kind().Class].linear
}

// IsAffine reports whether every instance of v's variant is affine in
// (state, input). It reads the tag only.
func IsAffine(v Kinded) bool {
	return classTraits[v.Kind().Class].affine
}
