package hyperdual

// Seed returns (theta, h1, h2, 0): a variable at theta perturbed by h1 along
// ε1 and h2 along ε2. Evaluating f on it and passing the result to Extract
// with the same steps recovers f(theta), f′(theta) and f″(theta).
func Seed[F Float](theta, h1, h2 F) Number[F] {
	return Number[F]{real: theta, eps1: h1, eps2: h2}
}

// Derivatives holds a function value and its first two derivatives along a
// single seeded direction.
type Derivatives[F Float] struct {
	Value  F
	First  F
	Second F
}

// Extract recovers the value, first and second derivative from y, the result
// of evaluating a function on Seed(theta, h1, h2).
//
// Because the algebra carries exact derivative coefficients, the result does
// not lose accuracy as h1 and h2 shrink, as long as h1·h2 stays representable.
func Extract[F Float](y Number[F], h1, h2 F) Derivatives[F] {
	return Derivatives[F]{
		Value:  y.real,
		First:  y.eps1 / h1,
		Second: y.eps1eps2 / (h1 * h2),
	}
}

// Differentiator evaluates functions of one variable with fixed seed steps.
// A zero H1 or H2 is replaced with DefaultStep.
//
// The zero value is ready to use.
type Differentiator[F Float] struct {
	H1, H2 F
}

func (d Differentiator[F]) steps() (h1, h2 F) {
	h1, h2 = d.H1, d.H2
	if h1 == 0 {
		h1 = DefaultStep
	}
	if h2 == 0 {
		h2 = DefaultStep
	}
	return h1, h2
}

// Eval returns f evaluated on the seeded variable at theta, before
// extraction.
func (d Differentiator[F]) Eval(f func(Number[F]) Number[F], theta F) Number[F] {
	h1, h2 := d.steps()
	return f(Seed(theta, h1, h2))
}

// Differentiate returns f(theta), f′(theta) and f″(theta).
func (d Differentiator[F]) Differentiate(f func(Number[F]) Number[F], theta F) Derivatives[F] {
	h1, h2 := d.steps()
	return Extract(f(Seed(theta, h1, h2)), h1, h2)
}

// Differentiate returns f(theta), f′(theta) and f″(theta) using DefaultStep
// for both seed steps.
func Differentiate[F Float](f func(Number[F]) Number[F], theta F) Derivatives[F] {
	return Differentiator[F]{}.Differentiate(f, theta)
}

// Partials2 holds a function value of two variables with its first partials
// and the mixed second partial.
type Partials2[F Float] struct {
	Value F
	DX    F
	DY    F
	DXY   F
}

// Partials evaluates f(x0, y0) with x seeded along ε1 and y along ε2, so the
// ε1ε2 component of the result is the mixed partial ∂²f/∂x∂y.
func Partials[F Float](f func(x, y Number[F]) Number[F], x0, y0 F) Partials2[F] {
	r := f(Number[F]{real: x0, eps1: 1}, Number[F]{real: y0, eps2: 1})
	return Partials2[F]{Value: r.real, DX: r.eps1, DY: r.eps2, DXY: r.eps1eps2}
}
