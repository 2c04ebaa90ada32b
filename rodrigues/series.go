package rodrigues

import hyperdual "github.com/shabbyrobe/go-hyperdual"

const (
	// DefaultSeriesThreshold is the |θ| at or below which Series uses the
	// truncated expansion.
	DefaultSeriesThreshold = 0.25

	seriesTerms = 6
)

// invFactorials[k] is 1/k!. The largest index used is 2·(seriesTerms-1)+2+2.
var invFactorials = func() (out [2*seriesTerms + 3]float64) {
	f := 1.0
	for k := range out {
		if k > 0 {
			f *= float64(k)
		}
		out[k] = 1 / f
	}
	return out
}()

// Series evaluates a six-term Taylor expansion about zero when |θ| is at or
// below Threshold (zero means DefaultSeriesThreshold) and defers to Direct
// otherwise. Unlike Direct it is well defined at θ = 0.
//
// With c(k) = 1/k!:
//
//	ai   = Σ (-1)^j                   θ^(2j) c(2j+i)
//	bi   = Σ (-1)^(j+1) 2(j+1)        θ^(2j) c(2j+2+i)
//	d2ai = Σ (-1)^(j+1) (2j+2)(2j+1)  θ^(2j) c(2j+2+i)
//	dai  = θ·bi
//
// for j = 0 … 5.
type Series[F hyperdual.Float] struct {
	Threshold F
}

var _ Coeffs[float64] = Series[float64]{}

func (Series[F]) Mode() Mode { return ModeSeries }

func (s Series[F]) useSeries(fn Func, theta F) bool {
	t := s.Threshold
	if t == 0 {
		t = DefaultSeriesThreshold
	}
	return fn.valid() && abs(theta) <= t
}

func (s Series[F]) A(fn Func, theta F) F {
	if !s.useSeries(fn, theta) {
		return Direct[F]{}.A(fn, theta)
	}
	return seriesSum(theta, func(j int) (coeff F, fact int) {
		return sign[F](j), 2*j + int(fn)
	})
}

func (s Series[F]) B(fn Func, theta F) F {
	if !s.useSeries(fn, theta) {
		return Direct[F]{}.B(fn, theta)
	}
	return seriesSum(theta, func(j int) (coeff F, fact int) {
		return -sign[F](j) * F(2*(j+1)), 2*j + 2 + int(fn)
	})
}

func (s Series[F]) DA(fn Func, theta F) F {
	if !s.useSeries(fn, theta) {
		return Direct[F]{}.DA(fn, theta)
	}
	return theta * s.B(fn, theta)
}

func (s Series[F]) D2A(fn Func, theta F) F {
	if !s.useSeries(fn, theta) {
		return Direct[F]{}.D2A(fn, theta)
	}
	return seriesSum(theta, func(j int) (coeff F, fact int) {
		return -sign[F](j) * F((2*j+2)*(2*j+1)), 2*j + 2 + int(fn)
	})
}

// seriesSum adds term(j)·θ^(2j)/fact! for j = 0 … seriesTerms-1, smallest
// power first.
func seriesSum[F hyperdual.Float](theta F, term func(j int) (coeff F, fact int)) F {
	var terms [seriesTerms]F
	theta2 := theta * theta
	power := F(1)
	for j := range terms {
		coeff, fact := term(j)
		terms[j] = coeff * power * F(invFactorials[fact])
		power *= theta2
	}

	var sum F
	for _, t := range terms {
		sum += t
	}
	return sum
}

func sign[F hyperdual.Float](j int) F {
	if j%2 == 1 {
		return -1
	}
	return 1
}
