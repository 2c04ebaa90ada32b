package hyperdual

import (
	"math"
	"unsafe"
)

// Float is the constraint for the scalar type underlying a Number.
type Float interface {
	~float32 | ~float64
}

// The helpers below evaluate the scalar primitives in float64 and round the
// result back to F. For float64 this is exact; for float32 it is correctly
// rounded for everything except the transcendental functions, which are
// within an ulp.

func fabs[F Float](x F) F    { return F(math.Abs(float64(x))) }
func fexp[F Float](x F) F    { return F(math.Exp(float64(x))) }
func flog[F Float](x F) F    { return F(math.Log(float64(x))) }
func fsin[F Float](x F) F    { return F(math.Sin(float64(x))) }
func fcos[F Float](x F) F    { return F(math.Cos(float64(x))) }
func ftan[F Float](x F) F    { return F(math.Tan(float64(x))) }
func fasin[F Float](x F) F   { return F(math.Asin(float64(x))) }
func facos[F Float](x F) F   { return F(math.Acos(float64(x))) }
func fatan[F Float](x F) F   { return F(math.Atan(float64(x))) }
func fsqrt[F Float](x F) F   { return F(math.Sqrt(float64(x))) }
func fpow[F Float](x, a F) F { return F(math.Pow(float64(x), float64(a))) }

// bitSize reports the width of F in bits, for use with strconv.
func bitSize[F Float]() int {
	var z F
	return int(unsafe.Sizeof(z)) * 8
}
