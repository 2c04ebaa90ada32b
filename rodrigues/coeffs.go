/*
Package rodrigues evaluates the trigonometric coefficients of the Rodrigues
rotation formula and their derivatives with respect to the rotation angle θ:

	a0(θ) = cos θ
	a1(θ) = sin θ / θ
	a2(θ) = (1 - cos θ) / θ²
	bi(θ) = (1/θ) · dai/dθ

a1, a2 and the bi are removable singularities at θ = 0, which makes them a
good test bed for differentiation techniques. Each technique is a Coeffs
implementation:

	Direct             closed-form expressions
	HyperDual          a single forward pass through hyper-dual numbers
	Series             truncated Taylor series near zero, Direct elsewhere
	FiniteDifference   central differences of the Direct values

Table renders any number of them side by side over a range of angles.
*/
package rodrigues

import (
	"fmt"
	"math"

	hyperdual "github.com/shabbyrobe/go-hyperdual"
)

// Func selects one of the coefficient functions a0, a1, a2.
type Func int

const (
	A0 Func = iota
	A1
	A2
)

// Funcs lists every coefficient function in order.
var Funcs = []Func{A0, A1, A2}

func (f Func) String() string {
	switch f {
	case A0, A1, A2:
		return fmt.Sprintf("a%d", int(f))
	}
	return fmt.Sprintf("Func(%d)", int(f))
}

func (f Func) valid() bool { return f >= A0 && f <= A2 }

// Mode names a differentiation technique.
type Mode string

const (
	ModeDirect           Mode = "direct"
	ModeHyperDual        Mode = "hyperdual"
	ModeSeries           Mode = "series"
	ModeFiniteDifference Mode = "finitediff"
)

// Modes lists every supported mode.
var Modes = []Mode{ModeDirect, ModeFiniteDifference, ModeHyperDual, ModeSeries}

// ParseMode returns the Mode named s.
func ParseMode(s string) (Mode, error) {
	for _, m := range Modes {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("rodrigues: unknown mode %q", s)
}

// Coeffs evaluates the coefficient functions and their derivatives in one
// particular mode. Passing a Func other than A0, A1 or A2 returns NaN.
type Coeffs[F hyperdual.Float] interface {
	Mode() Mode

	// A returns ai(θ).
	A(fn Func, theta F) F

	// DA returns dai/dθ.
	DA(fn Func, theta F) F

	// D2A returns d²ai/dθ².
	D2A(fn Func, theta F) F

	// B returns bi(θ) = (1/θ)·dai/dθ.
	B(fn Func, theta F) F
}

// New returns the Coeffs for mode with default settings.
func New[F hyperdual.Float](mode Mode) (Coeffs[F], error) {
	switch mode {
	case ModeDirect:
		return Direct[F]{}, nil
	case ModeHyperDual:
		return HyperDual[F]{}, nil
	case ModeSeries:
		return Series[F]{}, nil
	case ModeFiniteDifference:
		return FiniteDifference[F]{}, nil
	}
	return nil, fmt.Errorf("rodrigues: unknown mode %q", mode)
}

func nan[F hyperdual.Float]() F       { return F(math.NaN()) }
func sin[F hyperdual.Float](x F) F    { return F(math.Sin(float64(x))) }
func cos[F hyperdual.Float](x F) F    { return F(math.Cos(float64(x))) }
func pow[F hyperdual.Float](x, y F) F { return F(math.Pow(float64(x), float64(y))) }
func abs[F hyperdual.Float](x F) F    { return F(math.Abs(float64(x))) }
