package binint

import (
	"fmt"
	"math"
	"os"

	kitlog "github.com/go-kit/kit/log"
)

const (
	// BinIntegratorName is the method name of the bin integrator, and its configuration section.
	BinIntegratorName = "BinIntegrator"
	// NumBinsOption is the only configuration option of the bin integrator.
	NumBinsOption = "numBins"
	// DefaultNumBins is the number of bins used when an integrand provides no binning.
	DefaultNumBins = 100
	// MaxDimension is the largest integrand dimension the bin integrator sums over.
	MaxDimension = 3
)

// BinIntegrator computes the integral of a binned distribution by summing the midpoint rule over all its bins.
// An instance must not be used from several goroutines at once: each check of the limits may refresh them
// from the integrand.
type BinIntegrator struct {
	function           Integrand
	numBins            int
	useIntegrandLimits bool
	xmin, xmax         []float64
	binb               [][]float64 // Bin edges per dimension.
	valid              bool        // Result of the last limit check.
	logger             kitlog.Logger
	baseLogger         kitlog.Logger // Logger before the integrator context, handed to clones.
}

// NewBinIntegrator returns a new bin integrator of f which uses the limits of f and DefaultNumBins bins
// in every dimension f does not provide a binning for.
func NewBinIntegrator(f Integrand) (*BinIntegrator, error) {
	return newBinIntegrator(f, DefaultNumBins, nil)
}

// NewBinIntegratorWithConfig is like NewBinIntegrator but reads the number of bins from the
// BinIntegrator section of the configuration.
func NewBinIntegratorWithConfig(f Integrand, cfg *Config) (*BinIntegrator, error) {
	return binIntegratorFromConfig(f, cfg, nil)
}

// binIntegratorFromConfig uses the logger of cfg if it has one, and logger otherwise.
func binIntegratorFromConfig(f Integrand, cfg *Config, logger kitlog.Logger) (*BinIntegrator, error) {
	numBins := DefaultNumBins
	if cfg != nil {
		if v, set := cfg.RealValue(BinIntegratorName, NumBinsOption); set {
			if v < 1 || v != math.Trunc(v) || v > math.MaxInt32 {
				return nil, fmt.Errorf("%w (got %v)", ErrBadNumBins, v)
			}
			numBins = int(v)
		}
		if l := cfg.Logger(); l != nil {
			logger = l
		}
	}
	return newBinIntegrator(f, numBins, logger)
}

func newBinIntegrator(f Integrand, numBins int, logger kitlog.Logger) (*BinIntegrator, error) {
	if f == nil || !f.IsValid() {
		return nil, ErrInvalidIntegrand
	}
	if logger == nil {
		logger = kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stderr))
	}
	klog := kitlog.With(logger, "integrator", BinIntegratorName)
	binb, err := resolveBoundaries(f, numBins, klog)
	if err != nil {
		return nil, err
	}
	b := &BinIntegrator{function: f, numBins: numBins, useIntegrandLimits: true, binb: binb, logger: klog, baseLogger: logger}
	b.CheckLimits()
	return b, nil
}

// Clone returns a new and independent bin integrator of f configured with cfg.
// The clone shares nothing with b but its logger, unless cfg has its own.
func (b *BinIntegrator) Clone(f Integrand, cfg *Config) (Integrator, error) {
	c, err := binIntegratorFromConfig(f, cfg, b.baseLogger)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// SetLogger replaces the logger.
func (b *BinIntegrator) SetLogger(logger kitlog.Logger) {
	b.baseLogger = logger
	b.logger = kitlog.With(logger, "integrator", BinIntegratorName)
}

// Integrand returns the integrand.
func (b *BinIntegrator) Integrand() Integrand {
	return b.function
}

// Dimension returns the number of dimensions integrated over.
func (b *BinIntegrator) Dimension() int {
	return len(b.binb)
}

// NumBins returns the number of bins used in the dimensions where the integrand has no binning.
func (b *BinIntegrator) NumBins() int {
	return b.numBins
}

// Boundaries returns a copy of the bin edges of dimension d.
func (b *BinIntegrator) Boundaries(d int) []float64 {
	return append([]float64(nil), b.binb[d]...)
}

// Integral checks the limits again, then returns the midpoint rule sum over every bin.
// It returns zero and ErrInvalidLimits if the integration range is invalid, and zero and
// ErrUnsupportedDimension if the integrand has more than MaxDimension dimensions.
func (b *BinIntegrator) Integral() (float64, error) {
	if !b.CheckLimits() {
		return 0, ErrInvalidLimits
	}
	if dim := len(b.binb); dim < 1 || dim > MaxDimension {
		b.logger.Log("level", "error", "subsys", "integral", "dim", dim, "max", MaxDimension)
		return 0, fmt.Errorf("%w: %d (max %d)", ErrUnsupportedDimension, dim, MaxDimension)
	}
	return midpointSum(b.function, b.binb), nil
}

// midpointSum adds up f(center)*volume over the cartesian product of the bins of binb.
// The last dimension varies fastest and each dimension is walked in ascending order, so the
// summation order, and therefore the result, only depends on f and binb.
func midpointSum(f Integrand, binb [][]float64) float64 {
	dim := len(binb)
	idx := make([]int, dim)
	x := make([]float64, dim) // Bin centers.
	w := make([]float64, dim) // Bin widths.
	set := func(d int) {
		lo, hi := binb[d][idx[d]], binb[d][idx[d]+1]
		x[d] = (hi + lo) / 2
		w[d] = hi - lo
	}
	for d := range binb {
		if len(binb[d]) < 2 {
			return 0
		}
		set(d)
	}
	sum := 0.
	for {
		binInt := f.Eval(x)
		for _, wd := range w {
			binInt *= wd
		}
		sum += binInt
		// Odometer increment: bump the innermost dimension and carry outwards.
		d := dim - 1
		for ; d >= 0; d-- {
			idx[d]++
			if idx[d] < len(binb[d])-1 {
				set(d)
				break
			}
			idx[d] = 0
			set(d)
		}
		if d < 0 {
			return sum
		}
	}
}
