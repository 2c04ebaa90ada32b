package rodrigues

import (
	hyperdual "github.com/shabbyrobe/go-hyperdual"
	"gonum.org/v1/gonum/diff/fd"
)

// FiniteDifference differentiates the Direct values numerically with central
// differences. Step is the finite-difference step; zero lets gonum choose its
// default for each formula.
//
// Unlike HyperDual this subtracts nearby function values, so its accuracy
// degrades as Step shrinks and it cannot be evaluated exactly at θ = 0, where
// the Direct values are undefined.
type FiniteDifference[F hyperdual.Float] struct {
	Step float64
}

var _ Coeffs[float64] = FiniteDifference[float64]{}

func (FiniteDifference[F]) Mode() Mode { return ModeFiniteDifference }

func (FiniteDifference[F]) A(fn Func, theta F) F { return Direct[F]{}.A(fn, theta) }

func (d FiniteDifference[F]) DA(fn Func, theta F) F {
	return d.derivative(fn, theta, fd.Central)
}

func (d FiniteDifference[F]) D2A(fn Func, theta F) F {
	return d.derivative(fn, theta, fd.Central2nd)
}

func (d FiniteDifference[F]) B(fn Func, theta F) F {
	return d.DA(fn, theta) / theta
}

func (d FiniteDifference[F]) derivative(fn Func, theta F, formula fd.Formula) F {
	if !fn.valid() {
		return nan[F]()
	}
	f := func(t float64) float64 {
		return float64(Direct[F]{}.A(fn, F(t)))
	}
	return F(fd.Derivative(f, float64(theta), &fd.Settings{
		Formula: formula,
		Step:    d.Step,
	}))
}
