package hyperdual

// Max and Min select one operand by comparing real parts and return its full
// tuple unmodified; the derivative parts are never blended. On a tie the
// second operand is returned, so neither function is differentiable at a
// tie: this is selection, not interpolation.

// Max returns x if x.Real() > y.Real(), otherwise y.
func Max[F Float](x, y Number[F]) Number[F] {
	if x.GreaterThan(y) {
		return x
	}
	return y
}

// Min returns x if x.Real() < y.Real(), otherwise y.
func Min[F Float](x, y Number[F]) Number[F] {
	if x.LessThan(y) {
		return x
	}
	return y
}

// MaxReal returns x if x.Real() > s, otherwise s as a constant.
func MaxReal[F Float](x Number[F], s F) Number[F] {
	if x.GreaterThanReal(s) {
		return x
	}
	return FromReal(s)
}

// MinReal returns x if x.Real() < s, otherwise s as a constant.
func MinReal[F Float](x Number[F], s F) Number[F] {
	if x.LessThanReal(s) {
		return x
	}
	return FromReal(s)
}

// RealMax returns s as a constant if s > x.Real(), otherwise x.
func RealMax[F Float](s F, x Number[F]) Number[F] {
	if RealGreaterThan(s, x) {
		return FromReal(s)
	}
	return x
}

// RealMin returns s as a constant if s < x.Real(), otherwise x.
func RealMin[F Float](s F, x Number[F]) Number[F] {
	if RealLessThan(s, x) {
		return FromReal(s)
	}
	return x
}
