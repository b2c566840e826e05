package integrands

import (
	"errors"
	"fmt"

	"github.com/ChristopherRabotin/gokalman"
	"github.com/gonum/matrix/mat64"
	"github.com/gonum/stat/distmv"
)

// Gaussian is the density of a multivariate normal distribution on a rectangular domain.
type Gaussian struct {
	normal   *distmv.Normal
	min, max []float64
	bins     [][]float64
}

// NewGaussian returns the density of N(μ, Σ) restricted to [min, max].
// Σ must be symmetric positive definite.
func NewGaussian(μ []float64, Σ mat64.Matrix, min, max []float64) (*Gaussian, error) {
	if len(μ) != len(min) || len(μ) != len(max) {
		return nil, fmt.Errorf("mean is %d-D but bounds are %d-D and %d-D", len(μ), len(min), len(max))
	}
	sym, err := gokalman.AsSymDense(Σ)
	if err != nil {
		return nil, err
	}
	normal, ok := distmv.NewNormal(μ, sym, nil)
	if !ok {
		return nil, errors.New("covariance is not positive definite")
	}
	return &Gaussian{normal: normal, min: min, max: max}, nil
}

// NewIsotropicGaussian returns the density of N(μ, σ²I) restricted to [min, max].
func NewIsotropicGaussian(μ []float64, σ2 float64, min, max []float64) (*Gaussian, error) {
	return NewGaussian(μ, gokalman.ScaledDenseIdentity(len(μ), σ2), min, max)
}

// SetBins sets the bin edges of dimension d.
func (g *Gaussian) SetBins(d int, edges []float64) {
	if g.bins == nil {
		g.bins = make([][]float64, len(g.min))
	}
	g.bins[d] = edges
}

// Dimension implements the binint.Integrand interface.
func (g *Gaussian) Dimension() int { return len(g.min) }

// MinLimit implements the binint.Integrand interface.
func (g *Gaussian) MinLimit(d int) float64 { return g.min[d] }

// MaxLimit implements the binint.Integrand interface.
func (g *Gaussian) MaxLimit(d int) float64 { return g.max[d] }

// BinBoundaries implements the binint.Integrand interface.
func (g *Gaussian) BinBoundaries(d int) []float64 {
	if d >= len(g.bins) {
		return nil
	}
	return g.bins[d]
}

// Eval implements the binint.Integrand interface.
func (g *Gaussian) Eval(x []float64) float64 {
	return g.normal.Prob(x)
}

// IsValid implements the binint.Integrand interface.
func (g *Gaussian) IsValid() bool {
	return g != nil && g.normal != nil
}
