package viz

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/mathsys/internal/dynamo"
	"github.com/san-kum/mathsys/internal/maps"
	"github.com/san-kum/mathsys/internal/sets"
	"github.com/san-kum/mathsys/internal/systems"
	"gonum.org/v1/gonum/mat"
)

// FormatMatrix prints m with prec significant digits.
func FormatMatrix(m mat.Matrix, prec int) string {
	if m == nil {
		return "<nil>"
	}
	if r, c := m.Dims(); r == 0 || c == 0 {
		return "[]"
	}
	return fmt.Sprintf("%.*g", prec, mat.Formatted(m, mat.Squeeze()))
}

// FormatVector prints v as a row.
func FormatVector(v mat.Vector, prec int) string {
	if v == nil {
		return "<nil>"
	}
	return FormatMatrix(v.T(), prec)
}

type section struct {
	name string
	body string
}

type described interface {
	dynamo.Kinded
	StateDim() int
	InputDim() int
	StateSet() (sets.Set, bool)
	InputSet() (sets.Set, bool)
}

// Describe renders v as a panel. v is a map, a system, or a wrapper of
// either.
func Describe(v described, prec int) string {
	k := v.Kind()

	var b strings.Builder
	b.WriteString(Title.Render(k.String()))
	b.WriteString("\n")

	row := func(label, value string) {
		b.WriteString(Label.Render(label))
		b.WriteString(value)
		b.WriteString("\n")
	}

	row("statedim", Value.Render(fmt.Sprint(v.StateDim())))
	row("inputdim", Value.Render(fmt.Sprint(v.InputDim())))
	if o, ok := v.(interface{ OutputDim() int }); ok {
		row("outputdim", Value.Render(fmt.Sprint(o.OutputDim())))
	}
	row("linear", Bool(dynamo.IsLinear(v)))
	row("affine", Bool(dynamo.IsAffine(v)))
	if X, ok := v.StateSet(); ok {
		row("state set", fmt.Sprint(X))
	}
	if U, ok := v.InputSet(); ok {
		row("input set", fmt.Sprint(U))
	}

	for _, s := range sections(v, prec) {
		b.WriteString("\n")
		b.WriteString(Subtle.Render(s.name))
		b.WriteString("\n")
		b.WriteString(s.body)
		b.WriteString("\n")
	}

	return Panel.Render(strings.TrimRight(b.String(), "\n"))
}

func sections(v any, prec int) []section {
	m := func(name string, a mat.Matrix) section { return section{name, FormatMatrix(a, prec)} }
	vec := func(name string, a mat.Vector) section { return section{name, FormatVector(a, prec)} }

	switch v := v.(type) {
	case *maps.IdentityMap:
		return []section{{"A", v.A().String()}}
	case *maps.LinearMap:
		return []section{m("A", v.A())}
	case *maps.AffineMap:
		return []section{m("A", v.A()), vec("b", v.B())}
	case *maps.LinearControlMap:
		return []section{m("A", v.A()), m("B", v.B())}
	case *maps.AffineControlMap:
		return []section{m("A", v.A()), m("B", v.B()), vec("c", v.C())}
	case *maps.ResetMap:
		var parts []string
		for _, i := range v.Indices() {
			val, _ := v.Value(i)
			parts = append(parts, fmt.Sprintf("x%d <- %.*g", i, prec, val))
		}
		return []section{{"reset", strings.Join(parts, "\n")}}
	case *systems.LinearSystem:
		return []section{m("A", v.A())}
	case *systems.AffineSystem:
		return []section{m("A", v.A()), vec("b", v.B())}
	case *systems.LinearControlSystem:
		return []section{m("A", v.A()), m("B", v.B())}
	case *systems.AffineControlSystem:
		return []section{m("A", v.A()), m("B", v.B()), vec("c", v.C())}
	case *systems.LinearAlgebraicSystem:
		return []section{m("A", v.A()), m("E", v.E())}
	case interface {
		Base() systems.System
		Output() maps.Map
	}:
		out := sections(v.Base(), prec)
		for _, s := range sections(v.Output(), prec) {
			s.name = "output " + s.name
			out = append(out, s)
		}
		return out
	case interface{ Base() systems.System }:
		return sections(v.Base(), prec)
	default:
		return nil
	}
}

// PlotSequence draws values as a line plot. An empty sequence renders as
// the empty string.
func PlotSequence(values []float64, height, width int, caption string) string {
	if len(values) == 0 {
		return ""
	}
	opts := []asciigraph.Option{asciigraph.Height(height), asciigraph.Caption(caption)}
	if width > 0 {
		opts = append(opts, asciigraph.Width(width))
	}
	return asciigraph.Plot(values, opts...)
}
