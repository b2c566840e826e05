package integrands

import (
	"fmt"

	"github.com/gonum/floats"
)

// Polynomial is a separable polynomial: the product of one polynomial per dimension.
// Coefficients are stored in increasing order of power.
type Polynomial struct {
	Coeffs   [][]float64
	Min, Max []float64
}

// NewPolynomial returns the product of the polynomials of coeffs on [min, max].
func NewPolynomial(coeffs [][]float64, min, max []float64) (*Polynomial, error) {
	if len(coeffs) != len(min) || len(coeffs) != len(max) {
		return nil, fmt.Errorf("%d polynomials for %d-D and %d-D bounds", len(coeffs), len(min), len(max))
	}
	return &Polynomial{Coeffs: coeffs, Min: min, Max: max}, nil
}

// horner evaluates c at x.
func horner(c []float64, x float64) (v float64) {
	for i := len(c) - 1; i >= 0; i-- {
		v = v*x + c[i]
	}
	return
}

// antiderivative returns the coefficients of the primitive of c which is zero at zero.
func antiderivative(c []float64) []float64 {
	p := make([]float64, len(c)+1)
	for i, ci := range c {
		p[i+1] = ci / float64(i+1)
	}
	return p
}

// Exact returns the analytical integral over the whole domain.
func (p *Polynomial) Exact() float64 {
	vals := make([]float64, len(p.Coeffs))
	for d, c := range p.Coeffs {
		prim := antiderivative(c)
		vals[d] = horner(prim, p.Max[d]) - horner(prim, p.Min[d])
	}
	return floats.Prod(vals)
}

// Dimension implements the binint.Integrand interface.
func (p *Polynomial) Dimension() int { return len(p.Coeffs) }

// MinLimit implements the binint.Integrand interface.
func (p *Polynomial) MinLimit(d int) float64 { return p.Min[d] }

// MaxLimit implements the binint.Integrand interface.
func (p *Polynomial) MaxLimit(d int) float64 { return p.Max[d] }

// BinBoundaries implements the binint.Integrand interface. Polynomials have no binning.
func (p *Polynomial) BinBoundaries(d int) []float64 { return nil }

// Eval implements the binint.Integrand interface.
func (p *Polynomial) Eval(x []float64) float64 {
	v := 1.
	for d, c := range p.Coeffs {
		v *= horner(c, x[d])
	}
	return v
}

// IsValid implements the binint.Integrand interface.
func (p *Polynomial) IsValid() bool {
	return p != nil && len(p.Coeffs) > 0
}
