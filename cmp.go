package hyperdual

import "cmp"

// Comparisons look only at the real part. Two Numbers with the same real part
// and different derivative parts are Equal. Abs, Max and Min branch on these.
//
// NaN real parts behave as NaN floats do: every relation is false except
// NotEqual.

type relation int

const (
	relEqual relation = iota
	relNotEqual
	relLess
	relLessOrEqual
	relGreater
	relGreaterOrEqual
)

// relate is the single comparison primitive; every comparison method and
// function below wraps it for a particular operand order.
func relate[F Float](rel relation, a, b F) bool {
	switch rel {
	case relEqual:
		return a == b
	case relNotEqual:
		return a != b
	case relLess:
		return a < b
	case relLessOrEqual:
		return a <= b
	case relGreater:
		return a > b
	default: // relGreaterOrEqual
		return a >= b
	}
}

// Cmp compares the real parts of x and y and returns:
//
//	-1 if x <  y
//	 0 if x == y
//	+1 if x >  y
//
// A NaN real part is considered less than any non-NaN real part and equal to
// another NaN, as with cmp.Compare. Use it with slices.SortFunc.
func (x Number[F]) Cmp(y Number[F]) int {
	return cmp.Compare(x.real, y.real)
}

func (x Number[F]) Equal(y Number[F]) bool {
	return relate(relEqual, x.real, y.real)
}

func (x Number[F]) NotEqual(y Number[F]) bool {
	return relate(relNotEqual, x.real, y.real)
}

func (x Number[F]) LessThan(y Number[F]) bool {
	return relate(relLess, x.real, y.real)
}

func (x Number[F]) LessOrEqualTo(y Number[F]) bool {
	return relate(relLessOrEqual, x.real, y.real)
}

func (x Number[F]) GreaterThan(y Number[F]) bool {
	return relate(relGreater, x.real, y.real)
}

func (x Number[F]) GreaterOrEqualTo(y Number[F]) bool {
	return relate(relGreaterOrEqual, x.real, y.real)
}

func (x Number[F]) EqualReal(s F) bool {
	return relate(relEqual, x.real, s)
}

func (x Number[F]) NotEqualReal(s F) bool {
	return relate(relNotEqual, x.real, s)
}

func (x Number[F]) LessThanReal(s F) bool {
	return relate(relLess, x.real, s)
}

func (x Number[F]) LessOrEqualToReal(s F) bool {
	return relate(relLessOrEqual, x.real, s)
}

func (x Number[F]) GreaterThanReal(s F) bool {
	return relate(relGreater, x.real, s)
}

func (x Number[F]) GreaterOrEqualToReal(s F) bool {
	return relate(relGreaterOrEqual, x.real, s)
}

// The Real* functions take the scalar first: RealLessThan(s, x) is s < x.

func RealEqual[F Float](s F, x Number[F]) bool {
	return relate(relEqual, s, x.real)
}

func RealNotEqual[F Float](s F, x Number[F]) bool {
	return relate(relNotEqual, s, x.real)
}

func RealLessThan[F Float](s F, x Number[F]) bool {
	return relate(relLess, s, x.real)
}

func RealLessOrEqualTo[F Float](s F, x Number[F]) bool {
	return relate(relLessOrEqual, s, x.real)
}

func RealGreaterThan[F Float](s F, x Number[F]) bool {
	return relate(relGreater, s, x.real)
}

func RealGreaterOrEqualTo[F Float](s F, x Number[F]) bool {
	return relate(relGreaterOrEqual, s, x.real)
}
