package hyperdual

import (
	"fmt"
	"math"
	"testing"

	"github.com/shabbyrobe/golib/assert"
	"gonum.org/v1/gonum/diff/fd"
)

// elementary lists every lifted function with its scalar counterpart and
// independently derived first and second derivatives.
var elementary = []struct {
	name   string
	lifted func(Number[float64]) Number[float64]
	f      func(float64) float64
	d1, d2 func(float64) float64
	points []float64
}{
	{
		name: "exp", lifted: Exp[float64], f: math.Exp,
		d1:     math.Exp,
		d2:     math.Exp,
		points: []float64{-2, -0.3, 0, 0.5, 3},
	},
	{
		name: "log", lifted: Log[float64], f: math.Log,
		d1:     func(x float64) float64 { return 1 / x },
		d2:     func(x float64) float64 { return -1 / (x * x) },
		points: []float64{0.1, 0.5, 1, 2, 30},
	},
	{
		name: "sin", lifted: Sin[float64], f: math.Sin,
		d1:     math.Cos,
		d2:     func(x float64) float64 { return -math.Sin(x) },
		points: []float64{-2, -0.3, 0, 0.3, 1, 4},
	},
	{
		name: "cos", lifted: Cos[float64], f: math.Cos,
		d1:     func(x float64) float64 { return -math.Sin(x) },
		d2:     func(x float64) float64 { return -math.Cos(x) },
		points: []float64{-2, -0.3, 0, 0.3, 1, 4},
	},
	{
		name: "tan", lifted: Tan[float64], f: math.Tan,
		d1:     func(x float64) float64 { c := math.Cos(x); return 1 / (c * c) },
		d2:     func(x float64) float64 { c := math.Cos(x); return 2 * math.Sin(x) / (c * c * c) },
		points: []float64{-1.2, -0.3, 0, 0.3, 1},
	},
	{
		name: "asin", lifted: Asin[float64], f: math.Asin,
		d1:     func(x float64) float64 { return 1 / math.Sqrt(1-x*x) },
		d2:     func(x float64) float64 { return x / math.Pow(1-x*x, 1.5) },
		points: []float64{-0.9, -0.3, 0, 0.5, 0.8},
	},
	{
		name: "acos", lifted: Acos[float64], f: math.Acos,
		d1:     func(x float64) float64 { return -1 / math.Sqrt(1-x*x) },
		d2:     func(x float64) float64 { return -x / math.Pow(1-x*x, 1.5) },
		points: []float64{-0.9, -0.3, 0, 0.5, 0.8},
	},
	{
		name: "atan", lifted: Atan[float64], f: math.Atan,
		d1:     func(x float64) float64 { return 1 / (1 + x*x) },
		d2:     func(x float64) float64 { return -2 * x / ((1 + x*x) * (1 + x*x)) },
		points: []float64{-3, -0.3, 0, 0.7, 2},
	},
	{
		name: "sqrt", lifted: Sqrt[float64], f: math.Sqrt,
		d1:     func(x float64) float64 { return 0.5 / math.Sqrt(x) },
		d2:     func(x float64) float64 { return -0.25 / (x * math.Sqrt(x)) },
		points: []float64{0.01, 0.5, 1, 4, 100},
	},
	{
		name:   "pow3",
		lifted: func(x Number[float64]) Number[float64] { return Pow(x, 3) },
		f:      func(x float64) float64 { return x * x * x },
		d1:     func(x float64) float64 { return 3 * x * x },
		d2:     func(x float64) float64 { return 6 * x },
		points: []float64{-2, -0.5, 0.5, 1, 3},
	},
	{
		name:   "pow-1.5",
		lifted: func(x Number[float64]) Number[float64] { return Pow(x, -1.5) },
		f:      func(x float64) float64 { return math.Pow(x, -1.5) },
		d1:     func(x float64) float64 { return -1.5 * math.Pow(x, -2.5) },
		d2:     func(x float64) float64 { return 3.75 * math.Pow(x, -3.5) },
		points: []float64{0.25, 1, 2.5},
	},
}

// chainInputs are the epsilon parts pushed through each function.
var chainInputs = [][3]float64{
	{1, 0, 0},
	{0, 1, 0},
	{1, 1, 0},
	{0.3, -0.7, 1.1},
	{-2, 0.5, -0.25},
}

func TestChainRule(t *testing.T) {
	for _, tc := range elementary {
		for _, x0 := range tc.points {
			for _, in := range chainInputs {
				x1, x2, x12 := in[0], in[1], in[2]
				t.Run(fmt.Sprintf("%s(%g,%g,%g,%g)", tc.name, x0, x1, x2, x12), func(t *testing.T) {
					tt := assert.WrapTB(t)

					d1, d2 := tc.d1(x0), tc.d2(x0)
					exp := hd(tc.f(x0), d1*x1, d1*x2, d1*x12+d2*x1*x2)
					mustNumberNear(tt, exp, tc.lifted(hd(x0, x1, x2, x12)), tightAbs, 1e-11)
				})
			}
		}
	}
}

// TestChainRuleFiniteDifference checks the lifted derivatives against
// numerical ones that share nothing with this package.
func TestChainRuleFiniteDifference(t *testing.T) {
	for _, tc := range elementary {
		for _, x0 := range tc.points {
			t.Run(fmt.Sprintf("%s(%g)", tc.name, x0), func(t *testing.T) {
				tt := assert.WrapTB(t)

				d := Extract(tc.lifted(Seed(x0, 1, 1)), 1, 1)
				fd1 := fd.Derivative(tc.f, x0, &fd.Settings{Formula: fd.Central})
				fd2 := fd.Derivative(tc.f, x0, &fd.Settings{Formula: fd.Central2nd})

				tt.MustAssert(near(fd1, d.First, 1e-6, 1e-6), "first: fd %g, hyperdual %g", fd1, d.First)
				tt.MustAssert(near(fd2, d.Second, 1e-4, 1e-4), "second: fd %g, hyperdual %g", fd2, d.Second)
			})
		}
	}
}

func TestLogMixedTerm(t *testing.T) {
	tt := assert.WrapTB(t)
	x := hd(1.7, 0.3, -0.9, 2.2)
	r := Log(x)
	tt.MustEqual(x.eps1eps2/x.real-(x.eps1/x.real)*(x.eps2/x.real), r.Eps1Eps2())
}

func TestSqrtIsPow(t *testing.T) {
	for idx, x := range []Number[float64]{
		hd(0.25, 1, 1, 0),
		hd(2, 0.3, -0.7, 1.1),
		hd(1e-8, 1, 0, 0),
		hd(1e10, 5, 5, 5),
	} {
		t.Run(fmt.Sprintf("%d/%s", idx, x), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(Pow(x, 0.5), Sqrt(x))
		})
	}
}

func TestPowClamp(t *testing.T) {
	tt := assert.WrapTB(t)

	// The clamp triggers below 1e-15, keeps the value exact and the
	// derivatives finite.
	r := Pow(hd(1e-20, 1, 1, 0), 2)
	tt.MustAssert(near(1e-40, r.Real(), 0, tightRel), "value should use the true base, found %g", r.Real())
	tt.MustEqual(2*1e-15, r.Eps1())
	tt.MustEqual(2*1e-15, r.Eps2())
	tt.MustEqual(2.0, r.Eps1Eps2())

	// Sign of the base is preserved.
	r = Pow(hd(-1e-20, 1, 0, 0), 2)
	tt.MustEqual(-2*1e-15, r.Eps1())

	// Both zeros clamp to the positive tolerance.
	for _, z := range []float64{0, math.Copysign(0, -1)} {
		r = Pow(hd(z, 1, 1, 0), 0.5)
		tt.MustEqual(z, r.Real())
		tt.MustEqual(0.5*math.Pow(1e-15, -0.5), r.Eps1())
		tt.MustAssert(!math.IsInf(r.Eps1Eps2(), 0) && !math.IsNaN(r.Eps1Eps2()))
	}

	// At the threshold itself the true base is used.
	r = Pow(hd(1e-15, 1, 0, 0), 3)
	tt.MustEqual(3*math.Pow(1e-15, 2), r.Eps1())
	r = Pow(hd(2e-15, 1, 0, 0), 2)
	tt.MustEqual(2*2e-15, r.Eps1())
}

func TestPowNumber(t *testing.T) {
	for idx, tc := range []struct {
		x Number[float64]
		a float64
	}{
		{hd(2, 1, 1, 0), 3},
		{hd(0.5, 0.3, -0.7, 1.1), -1.5},
		{hd(7, 1, 0, 0), 0.5},
	} {
		t.Run(fmt.Sprintf("%d/%s^%g", idx, tc.x, tc.a), func(t *testing.T) {
			tt := assert.WrapTB(t)

			// A constant exponent agrees with the scalar power rule.
			mustNumberNear(tt, Pow(tc.x, tc.a), PowNumber(tc.x, FromReal(tc.a)), tightAbs, 1e-12)
		})
	}

	// x^y with x seeded along ε1 and y along ε2.
	tt := assert.WrapTB(t)
	p := Partials(PowNumber[float64], 2, 3)
	ln2 := math.Log(2)
	tt.MustAssert(near(8, p.Value, 0, tightRel))
	tt.MustAssert(near(12, p.DX, 0, tightRel))
	tt.MustAssert(near(8*ln2, p.DY, 0, tightRel))

	// x^(y-1)·(1 + y·ln x)
	tt.MustAssert(near(4+12*ln2, p.DXY, 0, 1e-12))
}

func TestAbs(t *testing.T) {
	for idx, tc := range []struct {
		in, out Number[float64]
	}{
		{hd(2, 1, -1, 3), hd(2, 1, -1, 3)},
		{hd(-2, 1, -1, 3), hd(2, -1, 1, -3)},
		{hd(0, 1, 1, 1), hd(0, 1, 1, 1)},
	} {
		t.Run(fmt.Sprintf("%d/|%s|", idx, tc.in), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.out, Abs(tc.in))
		})
	}

	tt := assert.WrapTB(t)
	nan := hd(math.NaN(), 1, 2, 3)
	r := Abs(nan)
	tt.MustAssert(math.IsNaN(r.Real()))
	tt.MustEqual([]float64{1, 2, 3}, []float64{r.Eps1(), r.Eps2(), r.Eps1Eps2()})
}

func TestDomainErrorsPropagate(t *testing.T) {
	for idx, tc := range []struct {
		name string
		out  Number[float64]
	}{
		{"asin(2)", Asin(hd(2, 1, 1, 0))},
		{"acos(-1.5)", Acos(hd(-1.5, 1, 1, 0))},
		{"log(-1)", Log(hd(-1, 1, 1, 0))},
		{"pow(-2, 0.5)", Pow(hd(-2, 1, 1, 0), 0.5)},
		{"pownumber(-2, 3)", PowNumber(hd(-2, 1, 0, 0), FromReal(3.0))},
	} {
		t.Run(fmt.Sprintf("%d/%s", idx, tc.name), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustAssert(math.IsNaN(tc.out.Real()), "expected NaN, found %v", tc.out)
		})
	}
}
