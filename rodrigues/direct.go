package rodrigues

import hyperdual "github.com/shabbyrobe/go-hyperdual"

// Direct evaluates the closed-form expressions. a1, a2, their derivatives and
// all bi are 0/0 at θ = 0 and return NaN there.
//
// The derivatives were derived from a1 = sin θ/θ and a2 = (1 - cos θ)/θ²:
//
//	da1  = (θ cos θ - sin θ) / θ²
//	d2a1 = -((θ² - 2) sin θ + 2θ cos θ) / θ³
//	da2  = (θ sin θ + 2 cos θ - 2) / θ³
//	d2a2 = ((θ² - 6) cos θ - 4θ sin θ + 6) / θ⁴
type Direct[F hyperdual.Float] struct{}

var _ Coeffs[float64] = Direct[float64]{}

func (Direct[F]) Mode() Mode { return ModeDirect }

func (Direct[F]) A(fn Func, theta F) F {
	switch fn {
	case A0:
		return cos(theta)
	case A1:
		return sin(theta) / theta
	case A2:
		return (1 - cos(theta)) / (theta * theta)
	}
	return nan[F]()
}

func (Direct[F]) DA(fn Func, theta F) F {
	s, c := sin(theta), cos(theta)
	switch fn {
	case A0:
		return -s
	case A1:
		return (theta*c - s) / (theta * theta)
	case A2:
		return (theta*s + 2*c - 2) / pow(theta, 3)
	}
	return nan[F]()
}

func (Direct[F]) D2A(fn Func, theta F) F {
	s, c := sin(theta), cos(theta)
	t2 := theta * theta
	switch fn {
	case A0:
		return -c
	case A1:
		return -((t2-2)*s + 2*theta*c) / pow(theta, 3)
	case A2:
		return ((t2-6)*c - 4*theta*s + 6) / pow(theta, 4)
	}
	return nan[F]()
}

func (Direct[F]) B(fn Func, theta F) F {
	s, c := sin(theta), cos(theta)
	switch fn {
	case A0:
		return -s / theta
	case A1:
		return (theta*c - s) / pow(theta, 3)
	case A2:
		return (theta*s + 2*c - 2) / pow(theta, 4)
	}
	return nan[F]()
}
