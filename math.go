package hyperdual

// chain lifts a scalar function to a Number given its value f, first
// derivative d1 and second derivative d2 at x.Real():
//
//	real     = f
//	eps1     = d1·eps1
//	eps2     = d1·eps2
//	eps1eps2 = d1·eps1eps2 + d2·eps1·eps2
//
// Every elementary function in this file is this rule with a particular
// choice of d1 and d2.
func chain[F Float](x Number[F], f, d1, d2 F) Number[F] {
	return Number[F]{
		real:     f,
		eps1:     d1 * x.eps1,
		eps2:     d1 * x.eps2,
		eps1eps2: d1*x.eps1eps2 + d2*x.eps1*x.eps2,
	}
}

func Exp[F Float](x Number[F]) Number[F] {
	v := fexp(x.real)
	return chain(x, v, v, v)
}

// Log returns the natural logarithm of x. Non-positive real parts give
// whatever math.Log gives (NaN or -Inf), propagated through every component.
func Log[F Float](x Number[F]) Number[F] {
	d1 := x.eps1 / x.real
	d2 := x.eps2 / x.real
	return Number[F]{
		real:     flog(x.real),
		eps1:     d1,
		eps2:     d2,
		eps1eps2: x.eps1eps2/x.real - d1*d2,
	}
}

func Sin[F Float](x Number[F]) Number[F] {
	v := fsin(x.real)
	return chain(x, v, fcos(x.real), -v)
}

func Cos[F Float](x Number[F]) Number[F] {
	v := fcos(x.real)
	return chain(x, v, -fsin(x.real), -v)
}

func Tan[F Float](x Number[F]) Number[F] {
	v := ftan(x.real)
	d1 := v*v + 1
	return chain(x, v, d1, 2*v*d1)
}

// Asin is defined for |x.Real()| < 1; outside that range the result is NaN.
func Asin[F Float](x Number[F]) Number[F] {
	r := 1 - x.real*x.real
	return chain(x, fasin(x.real), 1/fsqrt(r), x.real*fpow(r, -1.5))
}

// Acos is defined for |x.Real()| < 1; outside that range the result is NaN.
func Acos[F Float](x Number[F]) Number[F] {
	r := 1 - x.real*x.real
	return chain(x, facos(x.real), -1/fsqrt(r), -x.real*fpow(r, -1.5))
}

func Atan[F Float](x Number[F]) Number[F] {
	r := 1 + x.real*x.real
	return chain(x, fatan(x.real), 1/r, -2*x.real/(r*r))
}

// Sqrt is Pow(x, 0.5).
func Sqrt[F Float](x Number[F]) Number[F] {
	return Pow(x, 0.5)
}

// Abs returns x if x.Real() >= 0, otherwise x.Neg(). The whole number is
// negated, not only the real part. A NaN real part returns x unchanged.
func Abs[F Float](x Number[F]) Number[F] {
	if x.LessThanReal(0) {
		return x.Neg()
	}
	return x
}

// Pow raises x to the scalar power a.
//
// The real part is x.Real()^a. The derivative factor a·x.Real()^(a-1), and the
// second-order factor a(a-1)·x.Real()^(a-2), are evaluated with the base
// clamped to ±1e-15 (keeping its sign, with +0 and -0 going to +1e-15) when
// |x.Real()| is below that. This keeps the derivative parts finite at a zero
// base at the cost of accuracy in a vanishing neighbourhood.
func Pow[F Float](x Number[F], a F) Number[F] {
	xc := x.real
	if fabs(xc) < powTolerance {
		if xc >= 0 {
			xc = powTolerance
		} else {
			xc = -powTolerance
		}
	}

	deriv := a * fpow(xc, a-1)
	return Number[F]{
		real:     fpow(x.real, a),
		eps1:     x.eps1 * deriv,
		eps2:     x.eps2 * deriv,
		eps1eps2: x.eps1eps2*deriv + a*(a-1)*x.eps1*x.eps2*fpow(xc, a-2),
	}
}

// PowNumber raises x to the hyper-dual power a, as Exp(a·Log(x)). Like Log it
// requires x.Real() > 0.
func PowNumber[F Float](x, a Number[F]) Number[F] {
	return Exp(a.Mul(Log(x)))
}
