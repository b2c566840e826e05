package binint

import (
	"fmt"
	"math"
)

// Binding is an Integrand wrapping a plain Go function on a rectangular domain.
type Binding struct {
	Fn       func(x []float64) float64
	Min, Max []float64   // Bounds per dimension.
	Bins     [][]float64 // Optional bin edges per dimension, a nil entry means no binning.
}

// NewBinding returns a new Binding of fn on the domain [min, max].
// It panics if min and max are of different lengths, like a programming error would.
func NewBinding(fn func(x []float64) float64, min, max []float64) *Binding {
	if len(min) != len(max) {
		panic(fmt.Errorf("binding bounds of different dimensions (%d != %d)", len(min), len(max)))
	}
	return &Binding{Fn: fn, Min: min, Max: max}
}

// WithBins sets the bin edges of dimension d and returns the binding.
func (b *Binding) WithBins(d int, edges ...float64) *Binding {
	if b.Bins == nil {
		b.Bins = make([][]float64, len(b.Min))
	}
	b.Bins[d] = edges
	return b
}

// Dimension implements the Integrand interface.
func (b *Binding) Dimension() int {
	return len(b.Min)
}

// MinLimit implements the Integrand interface.
func (b *Binding) MinLimit(d int) float64 {
	return b.Min[d]
}

// MaxLimit implements the Integrand interface.
func (b *Binding) MaxLimit(d int) float64 {
	return b.Max[d]
}

// BinBoundaries implements the Integrand interface.
func (b *Binding) BinBoundaries(d int) []float64 {
	if d >= len(b.Bins) {
		return nil
	}
	return b.Bins[d]
}

// Eval implements the Integrand interface.
func (b *Binding) Eval(x []float64) float64 {
	return b.Fn(x)
}

// IsValid implements the Integrand interface.
func (b *Binding) IsValid() bool {
	if b == nil || b.Fn == nil || len(b.Min) == 0 || len(b.Min) != len(b.Max) {
		return false
	}
	for i := range b.Min {
		if math.IsNaN(b.Min[i]) || math.IsNaN(b.Max[i]) {
			return false
		}
	}
	return true
}

// Constant returns a function of any dimension which is always k.
func Constant(k float64) func(x []float64) float64 {
	return func(x []float64) float64 {
		return k
	}
}
