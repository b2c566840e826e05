package binint

import (
	"fmt"
	"math"

	kitlog "github.com/go-kit/kit/log"
	"github.com/gonum/floats"
)

// resolveBoundaries returns the bin edges of every dimension of f.
// Dimensions without a binning from the integrand are uniformly split in numBins bins.
func resolveBoundaries(f Integrand, numBins int, logger kitlog.Logger) ([][]float64, error) {
	dim := f.Dimension()
	binb := make([][]float64, dim)
	for i := 0; i < dim; i++ {
		edges := f.BinBoundaries(i)
		if len(edges) == 0 {
			logger.Log("level", "warning", "subsys", "binning", "dim", i, "message", "integrand provides no binning definition", "substitute", fmt.Sprintf("%d uniform bins", numBins))
			binb[i] = uniformBoundaries(f.MinLimit(i), f.MaxLimit(i), numBins)
			continue
		}
		if err := checkBoundaries(edges); err != nil {
			return nil, fmt.Errorf("dimension %d: %w", i, err)
		}
		binb[i] = append(make([]float64, 0, len(edges)), edges...)
	}
	return binb, nil
}

// uniformBoundaries returns numBins+1 equally spaced edges from min to max.
// The j-th edge is computed as min + j*(max-min)/numBins so that the grid does not depend on an accumulated step.
func uniformBoundaries(min, max float64, numBins int) []float64 {
	edges := make([]float64, numBins+1)
	for j := range edges {
		edges[j] = min + float64(j)*(max-min)/float64(numBins)
	}
	return edges
}

// checkBoundaries returns ErrBadBoundaries unless edges are at least two strictly increasing finite values.
func checkBoundaries(edges []float64) error {
	if len(edges) < 2 || floats.HasNaN(edges) {
		return ErrBadBoundaries
	}
	for j, e := range edges {
		if math.IsInf(e, 0) {
			return ErrBadBoundaries
		}
		if j > 0 && edges[j-1] >= e {
			return ErrBadBoundaries
		}
	}
	return nil
}
