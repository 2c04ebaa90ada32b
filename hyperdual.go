package hyperdual

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// Number is a hyper-dual number real + eps1·ε1 + eps2·ε2 + eps1eps2·ε1ε2.
//
// When a Number is seeded as (θ, h1, h2, 0) and pushed through a function f,
// the result holds f(θ), h1·f′(θ), h2·f′(θ) and h1·h2·f″(θ).
//
// The zero value is the constant 0.
type Number[F Float] struct {
	real     F
	eps1     F
	eps2     F
	eps1eps2 F
}

// FromReal embeds v as a constant: all epsilon components are zero.
func FromReal[F Float](v F) Number[F] {
	return Number[F]{real: v}
}

// FromRaw is the complement to Number.Raw(); it creates a Number from its four
// components.
func FromRaw[F Float](real, eps1, eps2, eps1eps2 F) Number[F] {
	return Number[F]{real: real, eps1: eps1, eps2: eps2, eps1eps2: eps1eps2}
}

// Set replaces all four components of x.
func (x *Number[F]) Set(real, eps1, eps2, eps1eps2 F) {
	*x = Number[F]{real: real, eps1: eps1, eps2: eps2, eps1eps2: eps1eps2}
}

// Raw returns the four components in basis order. See FromRaw() for the
// counterpart.
func (x Number[F]) Raw() (real, eps1, eps2, eps1eps2 F) {
	return x.real, x.eps1, x.eps2, x.eps1eps2
}

func (x Number[F]) Real() F     { return x.real }
func (x Number[F]) Eps1() F     { return x.eps1 }
func (x Number[F]) Eps2() F     { return x.eps2 }
func (x Number[F]) Eps1Eps2() F { return x.eps1eps2 }

// IsZero reports whether all four components are zero.
func (x Number[F]) IsZero() bool {
	return x.real == 0 && x.eps1 == 0 && x.eps2 == 0 && x.eps1eps2 == 0
}

// IsReal reports whether x is a constant, i.e. all epsilon components are
// zero.
func (x Number[F]) IsReal() bool {
	return x.eps1 == 0 && x.eps2 == 0 && x.eps1eps2 == 0
}

func (x Number[F]) Add(y Number[F]) Number[F] {
	return Number[F]{
		real:     x.real + y.real,
		eps1:     x.eps1 + y.eps1,
		eps2:     x.eps2 + y.eps2,
		eps1eps2: x.eps1eps2 + y.eps1eps2,
	}
}

func (x Number[F]) Sub(y Number[F]) Number[F] {
	return Number[F]{
		real:     x.real - y.real,
		eps1:     x.eps1 - y.eps1,
		eps2:     x.eps2 - y.eps2,
		eps1eps2: x.eps1eps2 - y.eps1eps2,
	}
}

// Neg negates every component, not just the real part.
func (x Number[F]) Neg() Number[F] {
	return Number[F]{real: -x.real, eps1: -x.eps1, eps2: -x.eps2, eps1eps2: -x.eps1eps2}
}

// Mul returns the product of two Numbers. Terms in ε1², ε2² and (ε1ε2)²
// vanish, so only the cross terms below survive.
func (x Number[F]) Mul(y Number[F]) Number[F] {
	return Number[F]{
		real:     x.real * y.real,
		eps1:     x.real*y.eps1 + x.eps1*y.real,
		eps2:     x.real*y.eps2 + x.eps2*y.real,
		eps1eps2: x.real*y.eps1eps2 + x.eps1*y.eps2 + x.eps2*y.eps1 + x.eps1eps2*y.real,
	}
}

// Inv returns the reciprocal of x, computed as Pow(x, -1). Near x.Real() == 0
// the derivative parts are subject to the same clamp as Pow.
func (x Number[F]) Inv() Number[F] {
	return Pow(x, -1)
}

// Quo returns x/y, computed as x.Mul(y.Inv()) rather than by a separate
// quotient rule.
func (x Number[F]) Quo(y Number[F]) Number[F] {
	return x.Mul(y.Inv())
}

func (x Number[F]) AddReal(s F) Number[F] {
	x.real += s
	return x
}

func (x Number[F]) SubReal(s F) Number[F] {
	x.real -= s
	return x
}

// MulReal scales every component by s.
func (x Number[F]) MulReal(s F) Number[F] {
	return Number[F]{real: x.real * s, eps1: x.eps1 * s, eps2: x.eps2 * s, eps1eps2: x.eps1eps2 * s}
}

// QuoReal multiplies every component by 1/s. Unlike Quo it does not go
// through Pow; for a constant y with y.Real() == s both agree.
func (x Number[F]) QuoReal(s F) Number[F] {
	return x.MulReal(1 / s)
}

// RealAdd returns s + x.
func RealAdd[F Float](s F, x Number[F]) Number[F] { return x.AddReal(s) }

// RealSub returns s - x.
func RealSub[F Float](s F, x Number[F]) Number[F] {
	return Number[F]{real: s - x.real, eps1: -x.eps1, eps2: -x.eps2, eps1eps2: -x.eps1eps2}
}

// RealMul returns s * x.
func RealMul[F Float](s F, x Number[F]) Number[F] { return x.MulReal(s) }

// RealQuo returns s / x. s is embedded as a constant and divided through the
// power rule, as with Quo.
func RealQuo[F Float](s F, x Number[F]) Number[F] {
	return FromReal(s).Quo(x)
}

// AddAssign sets x to x + y and returns x.
func (x *Number[F]) AddAssign(y Number[F]) *Number[F] {
	*x = x.Add(y)
	return x
}

// SubAssign sets x to x - y and returns x.
func (x *Number[F]) SubAssign(y Number[F]) *Number[F] {
	*x = x.Sub(y)
	return x
}

// MulAssign sets x to x * y and returns x.
func (x *Number[F]) MulAssign(y Number[F]) *Number[F] {
	*x = x.Mul(y)
	return x
}

// MulRealAssign scales x by s in place and returns x.
func (x *Number[F]) MulRealAssign(s F) *Number[F] {
	*x = x.MulReal(s)
	return x
}

// QuoRealAssign divides x by s in place and returns x.
func (x *Number[F]) QuoRealAssign(s F) *Number[F] {
	*x = x.QuoReal(s)
	return x
}

func (x Number[F]) components() [numComponents]F {
	return [numComponents]F{x.real, x.eps1, x.eps2, x.eps1eps2}
}

func fromComponents[F Float](c [numComponents]F) Number[F] {
	return Number[F]{
		real:     c[componentReal],
		eps1:     c[componentEps1],
		eps2:     c[componentEps2],
		eps1eps2: c[componentEps1Eps2],
	}
}

var unitSuffixes = [numComponents]string{"", "ε1", "ε2", "ε1ε2"}

// String renders x as "f0 + f1ε1 + f2ε2 + f12ε1ε2", using the shortest
// representation that round-trips at the precision of F.
func (x Number[F]) String() string {
	var sb strings.Builder
	bits := bitSize[F]()
	for i, c := range x.components() {
		v := float64(c)
		if i > 0 {
			v = writeSeparator(&sb, v)
		}
		sb.WriteString(strings.TrimPrefix(strconv.FormatFloat(v, 'g', -1, bits), "+"))
		sb.WriteString(unitSuffixes[i])
	}
	return sb.String()
}

// writeSeparator writes the operator joining a component to the one before
// it and returns the magnitude left to print.
func writeSeparator(w io.StringWriter, v float64) float64 {
	if math.Signbit(v) {
		w.WriteString(" - ")
		return -v
	}
	w.WriteString(" + ")
	return v
}

// Format applies the verb and flags to each component in turn, so
// fmt.Sprintf("%.3f", x) gives "1.000 + 0.500ε1 + 0.500ε2 + 0.000ε1ε2".
// Signs are written as with String; the '+' flag only affects the real part.
func (x Number[F]) Format(s fmt.State, c rune) {
	switch c {
	case 'v':
		if !s.Flag('+') && !s.Flag('#') {
			if _, hasWidth := s.Width(); !hasWidth {
				if _, hasPrec := s.Precision(); !hasPrec {
					fmt.Fprint(s, x.String())
					return
				}
			}
		}
	case 's':
		fmt.Fprint(s, x.String())
		return
	case 'b', 'e', 'E', 'f', 'F', 'g', 'G', 'x', 'X':
	default:
		fmt.Fprintf(s, "%%!%c(hyperdual.Number=%s)", c, x.String())
		return
	}

	var sb strings.Builder
	verb := fmt.FormatString(s, c)
	for i, comp := range x.components() {
		v := float64(comp)
		if i == 0 {
			fmt.Fprintf(&sb, verb, v)
		} else {
			v = writeSeparator(&sb, v)
			sb.WriteString(strings.TrimPrefix(fmt.Sprintf(verb, v), "+"))
		}
		sb.WriteString(unitSuffixes[i])
	}
	fmt.Fprint(s, sb.String())
}

// MarshalText encodes x as its four components separated by commas, in basis
// order.
func (x Number[F]) MarshalText() ([]byte, error) {
	bits := bitSize[F]()
	out := make([]byte, 0, 32)
	for i, c := range x.components() {
		if i > 0 {
			out = append(out, ',')
		}
		out = strconv.AppendFloat(out, float64(c), 'g', -1, bits)
	}
	return out, nil
}

func (x *Number[F]) UnmarshalText(bts []byte) (err error) {
	parts := strings.Split(string(bts), ",")
	if len(parts) != numComponents {
		return fmt.Errorf("hyperdual: text %q has %d components, expected %d", string(bts), len(parts), numComponents)
	}

	bits := bitSize[F]()
	var c [numComponents]F
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), bits)
		if err != nil {
			return fmt.Errorf("hyperdual: invalid component %d in %q: %w", i, string(bts), err)
		}
		c[i] = F(v)
	}
	*x = fromComponents(c)
	return nil
}

var errJSONNonFinite = errors.New("hyperdual: non-finite component cannot be encoded as JSON")

// MarshalJSON encodes x as the array [real, eps1, eps2, eps1eps2]. NaN and
// infinite components cannot be represented in JSON and return an error.
func (x Number[F]) MarshalJSON() ([]byte, error) {
	bits := bitSize[F]()
	out := make([]byte, 0, 40)
	out = append(out, '[')
	for i, c := range x.components() {
		v := float64(c)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, errJSONNonFinite
		}
		if i > 0 {
			out = append(out, ',')
		}
		out = strconv.AppendFloat(out, v, 'g', -1, bits)
	}
	out = append(out, ']')
	return out, nil
}

func (x *Number[F]) UnmarshalJSON(bts []byte) (err error) {
	var raw []float64
	if err := json.Unmarshal(bts, &raw); err != nil {
		return fmt.Errorf("hyperdual: invalid JSON %q: %w", string(bts), err)
	}
	if len(raw) != numComponents {
		return fmt.Errorf("hyperdual: JSON %q has %d components, expected %d", string(bts), len(raw), numComponents)
	}

	var c [numComponents]F
	for i, v := range raw {
		c[i] = F(v)
	}
	*x = fromComponents(c)
	return nil
}
