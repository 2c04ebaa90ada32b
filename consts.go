package hyperdual

const (
	// powTolerance is the magnitude below which Pow evaluates its derivative
	// factor at ±powTolerance instead of the true base. The value of the
	// result always uses the true base.
	powTolerance = 1e-15

	// DefaultStep is the seed step used by Differentiator when H1 or H2 is
	// zero.
	DefaultStep = 1e-14
)

// Order of components as used by Raw, FromRaw, the text and JSON encodings.
const (
	componentReal = iota
	componentEps1
	componentEps2
	componentEps1Eps2

	numComponents
)
