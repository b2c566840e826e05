package binint

// Integrand defines a scalar function of a fixed number of dimensions which can be integrated.
// The integrator only holds a reference to it and never mutates it.
type Integrand interface {
	Dimension() int                // Number of dimensions of the domain.
	MinLimit(d int) float64        // Lower bound of dimension d.
	MaxLimit(d int) float64        // Upper bound of dimension d.
	BinBoundaries(d int) []float64 // Ascending bin edges of dimension d, or nil if the integrand has no binning.
	Eval(x []float64) float64      // Value of the function at x, where len(x) == Dimension().
	IsValid() bool                 // Whether the integrand can be evaluated.
}
