package mapexpr_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/mathsys/internal/dynamo"
	"github.com/san-kum/mathsys/internal/mapexpr"
	"github.com/san-kum/mathsys/internal/maps"
	"github.com/san-kum/mathsys/internal/sets"
)

func apply(m maps.Map, x []float64, u ...[]float64) []float64 {
	var us []mat.Vector
	for _, v := range u {
		us = append(us, mat.NewVecDense(len(v), v))
	}
	y, err := maps.Apply(m, mat.NewVecDense(len(x), x), us...)
	Expect(err).NotTo(HaveOccurred())
	return y.RawVector().Data
}

var _ = Describe("Compile", func() {
	Context("linear expressions", func() {
		It("compiles a matrix literal to a LinearMap", func() {
			m, err := mapexpr.Compile("x -> [1 0; 0 0]*x")
			Expect(err).NotTo(HaveOccurred())
			Expect(m).To(BeAssignableToTypeOf(&maps.LinearMap{}))
			Expect(mat.Equal(m.(*maps.LinearMap).A(), mat.NewDense(2, 2, []float64{1, 0, 0, 0}))).To(BeTrue())
			Expect(m.OutputDim()).To(Equal(2))
			Expect(m.StateDim()).To(Equal(2))
			Expect(dynamo.IsLinear(m)).To(BeTrue())
			Expect(apply(m, []float64{3, 4})).To(Equal([]float64{3, 0}))
		})

		It("keeps rectangular coefficients", func() {
			m, err := mapexpr.Compile("x -> [1 0 0; 0 1 0]*x")
			Expect(err).NotTo(HaveOccurred())
			Expect(m.StateDim()).To(Equal(3))
			Expect(m.OutputDim()).To(Equal(2))
		})

		It("scales by an identity of the declared dimension", func() {
			m, err := mapexpr.Compile("x -> 2*x", mapexpr.WithDim(3))
			Expect(err).NotTo(HaveOccurred())
			Expect(m.Kind().Class).To(Equal(dynamo.ClassLinear))
			Expect(apply(m, []float64{1, 2, 3})).To(Equal([]float64{2, 4, 6}))
		})

		It("uses bound matrices", func() {
			A := mat.NewDense(2, 2, []float64{0, 1, 1, 0})
			m, err := mapexpr.Compile("x -> A*x", mapexpr.WithMatrix("A", A))
			Expect(err).NotTo(HaveOccurred())
			Expect(apply(m, []float64{1, 2})).To(Equal([]float64{2, 1}))
		})
	})

	Context("affine expressions", func() {
		It("compiles a constant term to an AffineMap", func() {
			m, err := mapexpr.Compile("x -> [1 0; 0 0]*x + [2, 0]")
			Expect(err).NotTo(HaveOccurred())
			Expect(m).To(BeAssignableToTypeOf(&maps.AffineMap{}))
			am := m.(*maps.AffineMap)
			Expect(mat.Equal(am.A(), mat.NewDense(2, 2, []float64{1, 0, 0, 0}))).To(BeTrue())
			Expect(mat.Equal(am.B(), mat.NewVecDense(2, []float64{2, 0}))).To(BeTrue())
			Expect(dynamo.IsLinear(m)).To(BeFalse())
			Expect(dynamo.IsAffine(m)).To(BeTrue())
			Expect(apply(m, []float64{3, 4})).To(Equal([]float64{5, 0}))
		})

		It("infers the dimension from the constant", func() {
			m, err := mapexpr.Compile("x -> x + [1, 1, 1]")
			Expect(err).NotTo(HaveOccurred())
			Expect(m.StateDim()).To(Equal(3))
			Expect(apply(m, []float64{0, 1, 2})).To(Equal([]float64{1, 2, 3}))
		})

		It("checks an all-zero constant against the coefficient rows", func() {
			_, err := mapexpr.Compile("x -> [1 0; 0 1]*x + [0, 0, 0]")
			Expect(err).To(MatchError(dynamo.ErrShapeMismatch))
		})

		It("infers the dimension from an all-zero constant", func() {
			_, err := mapexpr.Compile("x -> x + [0, 0, 0]", mapexpr.WithDim(5))
			Expect(err).To(MatchError(dynamo.ErrDimensionConflict))

			m, err := mapexpr.Compile("x -> x + [0, 0, 0]")
			Expect(err).NotTo(HaveOccurred())
			Expect(m).To(BeAssignableToTypeOf(&maps.IdentityMap{}))
			Expect(m.StateDim()).To(Equal(3))
		})

		It("drops an all-zero constant", func() {
			m, err := mapexpr.Compile("x -> [1 2; 3 4]*x + [0, 0]")
			Expect(err).NotTo(HaveOccurred())
			Expect(m).To(BeAssignableToTypeOf(&maps.LinearMap{}))
		})
	})

	Context("identity expressions", func() {
		It("compiles x -> x with an explicit dimension", func() {
			m, err := mapexpr.Compile("x -> x", mapexpr.WithDim(5))
			Expect(err).NotTo(HaveOccurred())
			Expect(m).To(BeAssignableToTypeOf(&maps.IdentityMap{}))
			Expect(m.OutputDim()).To(Equal(5))
		})

		It("reads the order of I(n)", func() {
			m, err := mapexpr.Compile("x ↦ I(3)*x")
			Expect(err).NotTo(HaveOccurred())
			Expect(m).To(BeAssignableToTypeOf(&maps.IdentityMap{}))
			Expect(m.StateDim()).To(Equal(3))
		})

		It("rejects a conflicting explicit dimension", func() {
			_, err := mapexpr.Compile("x -> I(3)*x", mapexpr.WithDim(5))
			Expect(err).To(MatchError(dynamo.ErrDimensionConflict))
		})

		It("needs a dimension when none can be inferred", func() {
			_, err := mapexpr.Compile("x -> x")
			Expect(err).To(MatchError(dynamo.ErrUnsupportedExpression))
		})
	})

	Context("control expressions", func() {
		A := mat.NewDense(2, 2, []float64{1, 0, 0, 1})
		B := mat.NewDense(2, 1, []float64{0, 1})

		It("compiles A*x + B*u to a LinearControlMap", func() {
			m, err := mapexpr.Compile("(x, u) -> A*x + B*u",
				mapexpr.WithMatrix("A", A), mapexpr.WithMatrix("B", B))
			Expect(err).NotTo(HaveOccurred())
			Expect(m).To(BeAssignableToTypeOf(&maps.LinearControlMap{}))
			Expect(m.InputDim()).To(Equal(1))
			Expect(apply(m, []float64{1, 1}, []float64{2})).To(Equal([]float64{1, 3}))
		})

		It("compiles a constant term to an AffineControlMap", func() {
			m, err := mapexpr.Compile("(x, u) -> A*x + B*u + c",
				mapexpr.WithMatrix("A", A), mapexpr.WithMatrix("B", B),
				mapexpr.WithVector("c", mat.NewVecDense(2, []float64{1, 1})))
			Expect(err).NotTo(HaveOccurred())
			Expect(m).To(BeAssignableToTypeOf(&maps.AffineControlMap{}))
			Expect(apply(m, []float64{0, 0}, []float64{1})).To(Equal([]float64{1, 2}))
		})

		It("sizes a bare input by the output dimension", func() {
			m, err := mapexpr.Compile("(x, u) -> [1 2; 3 4]*x + u")
			Expect(err).NotTo(HaveOccurred())
			Expect(m.InputDim()).To(Equal(2))
		})

		It("builds the constrained variant from both regions", func() {
			X := sets.Universe(2)
			U := sets.Universe(1)
			m, err := mapexpr.Compile("(x, u) -> A*x + B*u",
				mapexpr.WithMatrix("A", A), mapexpr.WithMatrix("B", B),
				mapexpr.WithStateSet(X), mapexpr.WithInputSet(U))
			Expect(err).NotTo(HaveOccurred())
			Expect(m.Kind().Constrained).To(BeTrue())
			got, ok := m.InputSet()
			Expect(ok).To(BeTrue())
			Expect(got).To(Equal(sets.Set(U)))
		})

		It("fails when only the state region is given", func() {
			_, err := mapexpr.Compile("(x, u) -> A*x + B*u",
				mapexpr.WithMatrix("A", A), mapexpr.WithMatrix("B", B),
				mapexpr.WithStateSet(sets.Universe(2)))
			Expect(err).To(MatchError(dynamo.ErrNilSet))
		})

		It("rejects mismatched input rows", func() {
			_, err := mapexpr.Compile("(x, u) -> [1 0; 0 1]*x + [1 2 3]*u")
			Expect(err).To(MatchError(dynamo.ErrShapeMismatch))
		})
	})

	Context("constrained state maps", func() {
		It("attaches the state region", func() {
			X, err := sets.NewHyperrectangle([]float64{0, 0}, []float64{1, 1})
			Expect(err).NotTo(HaveOccurred())
			m, err := mapexpr.Compile("x -> [1 0; 0 0]*x", mapexpr.WithStateSet(X))
			Expect(err).NotTo(HaveOccurred())
			Expect(m.Kind().String()).To(Equal("ConstrainedLinearMap"))
		})

		It("rejects an input region without an input symbol", func() {
			_, err := mapexpr.Compile("x -> x", mapexpr.WithDim(2), mapexpr.WithInputSet(sets.Universe(1)))
			Expect(err).To(MatchError(dynamo.ErrUnsupportedExpression))
		})
	})

	DescribeTable("nil bindings",
		func(src string, opt mapexpr.Option) {
			m, err := mapexpr.Compile(src, opt, mapexpr.WithDim(2))
			Expect(err).To(MatchError(dynamo.ErrUnsupportedExpression))
			Expect(m).To(BeNil())
		},
		Entry("nil vector", "x -> x + c", mapexpr.WithVector("c", nil)),
		Entry("typed nil vector", "x -> x + c", mapexpr.WithVector("c", (*mat.VecDense)(nil))),
		Entry("nil matrix", "x -> A*x", mapexpr.WithMatrix("A", nil)),
		Entry("typed nil matrix", "x -> A*x", mapexpr.WithMatrix("A", (*mat.Dense)(nil))),
	)

	It("compiles a zero-order scaled identity that applies to the empty vector", func() {
		m, err := mapexpr.Compile("x -> 2*I(0)*x")
		Expect(err).NotTo(HaveOccurred())
		y, err := maps.Apply(m, &mat.VecDense{})
		Expect(err).NotTo(HaveOccurred())
		Expect(y.Len()).To(Equal(0))
	})

	DescribeTable("unsupported expressions",
		func(src string) {
			_, err := mapexpr.Compile(src, mapexpr.WithDim(2))
			Expect(err).To(MatchError(dynamo.ErrUnsupportedExpression))
			var perr *mapexpr.ParseError
			Expect(err).To(BeAssignableToTypeOf(perr))
		},
		Entry("subtraction", "x -> x - [1, 1]"),
		Entry("product of symbols", "x -> x*x"),
		Entry("power", "x -> x^2"),
		Entry("function call", "x -> sin(x)"),
		Entry("unknown name", "x -> A*x"),
		Entry("missing arrow", "x x"),
		Entry("repeated state", "x -> x + 2*x"),
		Entry("unapplied matrix", "x -> x + [1 0; 0 1]"),
		Entry("no state term", "(x, u) -> u"),
		Entry("foreign symbol", "x -> 2*y"),
		Entry("unterminated literal", "x -> [1 0*x"),
	)
})
