package decmath_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"

	"github.com/san-kum/finquant/internal/decmath"
)

// closeTo adapts decimal comparison to a gomega float matcher; the
// conversion is for assertion display only, the computation under test
// never leaves decimal.
func closeTo(d decimal.Decimal, tol float64) OmegaMatcher {
	return BeNumerically("~", d.InexactFloat64(), tol)
}

var _ = Describe("kernel identities", func() {
	samples := []string{"0.1", "0.5", "1.3", "2", "3.75", "7"}

	It("squares sqrt back to the argument", func() {
		for _, s := range samples {
			x := decimal.RequireFromString(s)
			r, err := decmath.Sqrt(x)
			Expect(err).NotTo(HaveOccurred())
			Expect(r.Mul(r).InexactFloat64()).To(closeTo(x, 1e-7))
		}
	})

	It("inverts exp with ln", func() {
		for _, s := range samples {
			x := decimal.RequireFromString(s)
			y, err := decmath.Ln(decmath.Exp(x))
			Expect(err).NotTo(HaveOccurred())
			Expect(y.InexactFloat64()).To(closeTo(x, 1e-4))
		}
	})

	It("splits exp over addition", func() {
		a := decimal.RequireFromString("1.2")
		b := decimal.RequireFromString("2.3")
		prod := decmath.Exp(a).Mul(decmath.Exp(b))
		Expect(decmath.Exp(a.Add(b)).InexactFloat64()).To(closeTo(prod, 1e-6))
	})

	It("keeps cosh^2 - sinh^2 pinned at one", func() {
		for _, s := range samples {
			x := decimal.RequireFromString(s)
			ch, sh := decmath.Cosh(x), decmath.Sinh(x)
			ident := ch.Mul(ch).Sub(sh.Mul(sh))
			Expect(ident.InexactFloat64()).To(BeNumerically("~", 1.0, 1e-7))
		}
	})

	It("returns bit-identical results on repeated calls", func() {
		x := decimal.RequireFromString("3.75")
		Expect(decmath.Exp(x).String()).To(Equal(decmath.Exp(x).String()))
		a, _ := decmath.Ln(x)
		b, _ := decmath.Ln(x)
		Expect(a.String()).To(Equal(b.String()))
		Expect(decmath.NormCDF(x).String()).To(Equal(decmath.NormCDF(x).String()))
	})
})
