package integrands

import "github.com/ChristopherRabotin/binint"

// Counting wraps an integrand and counts how many times it is evaluated.
type Counting struct {
	binint.Integrand
	evals int
}

// NewCounting returns a counting wrapper of f.
func NewCounting(f binint.Integrand) *Counting {
	return &Counting{Integrand: f}
}

// Eval implements the binint.Integrand interface.
func (c *Counting) Eval(x []float64) float64 {
	c.evals++
	return c.Integrand.Eval(x)
}

// Evals returns the number of evaluations since the creation or the last reset.
func (c *Counting) Evals() int {
	return c.evals
}

// Reset sets the evaluation count back to zero.
func (c *Counting) Reset() {
	c.evals = 0
}
