package rodrigues

import hyperdual "github.com/shabbyrobe/go-hyperdual"

// HyperDual evaluates ai on a seeded hyper-dual angle and extracts the
// derivatives from the ε1 and ε1ε2 components. H1 and H2 are the seed steps;
// zero means hyperdual.DefaultStep.
//
// A and B are not defined at θ = 0 for a1 and a2: the hyper-dual algebra
// evaluates sin θ/θ exactly as written and so divides by zero.
type HyperDual[F hyperdual.Float] struct {
	H1, H2 F
}

var _ Coeffs[float64] = HyperDual[float64]{}

func (HyperDual[F]) Mode() Mode { return ModeHyperDual }

func (h HyperDual[F]) differentiator() hyperdual.Differentiator[F] {
	return hyperdual.Differentiator[F]{H1: h.H1, H2: h.H2}
}

// Eval returns ai evaluated on the seeded angle, before the derivatives are
// extracted.
func (h HyperDual[F]) Eval(fn Func, theta F) hyperdual.Number[F] {
	return h.differentiator().Eval(lifted[F](fn), theta)
}

func (h HyperDual[F]) derivatives(fn Func, theta F) hyperdual.Derivatives[F] {
	return h.differentiator().Differentiate(lifted[F](fn), theta)
}

func (h HyperDual[F]) A(fn Func, theta F) F   { return h.derivatives(fn, theta).Value }
func (h HyperDual[F]) DA(fn Func, theta F) F  { return h.derivatives(fn, theta).First }
func (h HyperDual[F]) D2A(fn Func, theta F) F { return h.derivatives(fn, theta).Second }
func (h HyperDual[F]) B(fn Func, theta F) F   { return h.DA(fn, theta) / theta }

// lifted returns ai written in terms of hyper-dual operations.
func lifted[F hyperdual.Float](fn Func) func(hyperdual.Number[F]) hyperdual.Number[F] {
	switch fn {
	case A0:
		return hyperdual.Cos[F]
	case A1:
		return func(t hyperdual.Number[F]) hyperdual.Number[F] {
			return hyperdual.Sin(t).Quo(t)
		}
	case A2:
		return func(t hyperdual.Number[F]) hyperdual.Number[F] {
			return hyperdual.RealSub(1, hyperdual.Cos(t)).Quo(hyperdual.Pow(t, 2))
		}
	}
	return func(hyperdual.Number[F]) hyperdual.Number[F] {
		n := nan[F]()
		return hyperdual.FromRaw(n, n, n, n)
	}
}
