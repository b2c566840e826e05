package integrands

import (
	"fmt"
	"sort"

	"github.com/gonum/floats"
)

// Histogram is a 1-D piecewise constant function whose binning is its own.
type Histogram struct {
	edges    []float64
	contents []float64
}

// NewHistogram returns a histogram with len(edges)-1 bins holding contents.
func NewHistogram(edges, contents []float64) (*Histogram, error) {
	if len(edges) != len(contents)+1 {
		return nil, fmt.Errorf("%d edges for %d bins", len(edges), len(contents))
	}
	for i := 1; i < len(edges); i++ {
		if !(edges[i-1] < edges[i]) {
			return nil, fmt.Errorf("histogram edges are not strictly increasing at %d (%f, %f)", i, edges[i-1], edges[i])
		}
	}
	return &Histogram{edges: edges, contents: contents}, nil
}

// Sum returns the sum of the contents weighted by the bin widths.
func (h *Histogram) Sum() float64 {
	widths := make([]float64, len(h.contents))
	floats.SubTo(widths, h.edges[1:], h.edges[:len(h.edges)-1])
	return floats.Dot(widths, h.contents)
}

// Dimension implements the binint.Integrand interface.
func (h *Histogram) Dimension() int { return 1 }

// MinLimit implements the binint.Integrand interface.
func (h *Histogram) MinLimit(d int) float64 { return h.edges[0] }

// MaxLimit implements the binint.Integrand interface.
func (h *Histogram) MaxLimit(d int) float64 { return h.edges[len(h.edges)-1] }

// BinBoundaries implements the binint.Integrand interface.
func (h *Histogram) BinBoundaries(d int) []float64 { return h.edges }

// Eval implements the binint.Integrand interface. Values outside of the histogram are zero.
func (h *Histogram) Eval(x []float64) float64 {
	i := sort.SearchFloat64s(h.edges, x[0])
	// SearchFloat64s returns the index of the first edge >= x.
	if i < len(h.edges) && h.edges[i] == x[0] {
		i++
	}
	if i == 0 || i == len(h.edges) {
		return 0
	}
	return h.contents[i-1]
}

// IsValid implements the binint.Integrand interface.
func (h *Histogram) IsValid() bool {
	return h != nil && len(h.contents) > 0
}
