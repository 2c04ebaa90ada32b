/*
Package hyperdual provides hyper-dual numbers (Number[F]), which carry the
value of a scalar function together with its first derivatives along two
independent directions and the mixed second derivative through ordinary
arithmetic.

A hyper-dual number has four components in the basis {1, ε1, ε2, ε1ε2},
where ε1² = ε2² = 0 but ε1ε2 != 0. Every product truncates the nilpotent
terms, which is exactly a two-variable Taylor expansion to first order in each
direction plus the cross term. The derivatives are exact to machine precision
regardless of the seed step sizes: there is no finite-difference subtraction.

Number is a value type; all operations return new values except the *Assign
methods, which update the receiver in place.

Simple example:

	x := hyperdual.Seed(0.3, 1e-14, 1e-14)
	y := hyperdual.Sin(x).Quo(x)
	d := hyperdual.Extract(y, 1e-14, 1e-14)
	fmt.Println(d.Value, d.First, d.Second)

Numbers can be created from a variety of sources:

	Number[F]{}                                    // all zero
	FromReal(v F) Number[F]                        // a constant
	FromRaw(real, eps1, eps2, eps1eps2 F) Number[F]
	Seed(theta, h1, h2 F) Number[F]                // (theta, h1, h2, 0)

Comparisons (Equal, LessThan, Cmp, Max, Min, ...) look at the real part only,
so a hyper-dual value can take part in ordinary control flow like a plain
float. Go's built-in == operator on Number is componentwise and is NOT the same
relation as Equal.

Number supports the following formatting and marshalling interfaces:

  - fmt.Formatter
  - fmt.Stringer
  - json.Marshaler
  - json.Unmarshaler
  - encoding.TextMarshaler
  - encoding.TextUnmarshaler
*/
package hyperdual
