package binint

import "math"

// CheckLimits returns whether the integration range is finite with min < max in every dimension.
// When the integrator uses the integrand's limits, they are read again from the integrand first.
func (b *BinIntegrator) CheckLimits() bool {
	if b.useIntegrandLimits {
		dim := b.function.Dimension()
		b.xmin = resize(b.xmin, dim)
		b.xmax = resize(b.xmax, dim)
		for i := 0; i < dim; i++ {
			b.xmin[i] = b.function.MinLimit(i)
			b.xmax[i] = b.function.MaxLimit(i)
		}
	}
	b.valid = false
	for i := range b.xmin {
		if !(b.xmin[i] < b.xmax[i]) {
			b.logger.Log("level", "error", "subsys", "limits", "dim", i, "message", "bad range with min >= max", "min", b.xmin[i], "max", b.xmax[i])
			return false
		}
		if math.IsInf(b.xmin[i], 0) || math.IsInf(b.xmax[i], 0) {
			b.logger.Log("level", "error", "subsys", "limits", "dim", i, "message", "infinite range", "min", b.xmin[i], "max", b.xmax[i])
			return false
		}
	}
	b.valid = true
	return true
}

// SetLimits changes the integration range of the first dimension only, and returns whether the new limits
// are valid. The other dimensions are never touched, hence this is only meaningful for 1-D integrands.
// It always returns false and does nothing if the integrator uses the integrand's limits.
func (b *BinIntegrator) SetLimits(min, max float64) bool {
	if b.useIntegrandLimits {
		b.logger.Log("level", "error", "subsys", "limits", "message", "cannot override integrand's limits")
		return false
	}
	if len(b.xmin) == 0 {
		return false
	}
	b.xmin[0] = min
	b.xmax[0] = max
	return b.CheckLimits()
}

// SetUseIntegrandLimits selects whether the limits are read from the integrand at each check (the default),
// or kept fixed to their current values and only changed via SetLimits.
func (b *BinIntegrator) SetUseIntegrandLimits(flag bool) {
	b.useIntegrandLimits = flag
}

// UseIntegrandLimits returns whether the limits are read from the integrand.
func (b *BinIntegrator) UseIntegrandLimits() bool {
	return b.useIntegrandLimits
}

// Limits returns a copy of the current integration range.
func (b *BinIntegrator) Limits() (min, max []float64) {
	return append([]float64(nil), b.xmin...), append([]float64(nil), b.xmax...)
}

// IsValid returns the result of the last limit check.
func (b *BinIntegrator) IsValid() bool {
	return b.valid
}

func resize(s []float64, n int) []float64 {
	if cap(s) < n {
		return make([]float64, n)
	}
	return s[:n]
}
