package binint

import "errors"

var (
	// ErrInvalidIntegrand is returned when an integrator is built on a nil or invalid integrand.
	ErrInvalidIntegrand = errors.New("integrand is nil or invalid")
	// ErrBadBoundaries is returned when an integrand provides a malformed binning.
	ErrBadBoundaries = errors.New("bin boundaries must hold at least two strictly increasing finite values")
	// ErrBadNumBins is returned when the configured number of bins is not a positive integer.
	ErrBadNumBins = errors.New("numBins must be a positive integer")
	// ErrInvalidLimits is returned by Integral when the integration range is invalid.
	ErrInvalidLimits = errors.New("integration range is infinite or has min >= max")
	// ErrUnsupportedDimension is returned by Integral for integrands of more than MaxDimension dimensions.
	ErrUnsupportedDimension = errors.New("unsupported integrand dimension")
	// ErrUnknownMethod is returned by a Factory asked for a method it does not know.
	ErrUnknownMethod = errors.New("unknown integration method")
	// ErrDuplicateMethod is returned when a method is stored twice in a Factory.
	ErrDuplicateMethod = errors.New("integration method already stored")
)
