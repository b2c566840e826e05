// Package crosscheck provides reference integrals computed by other means than the midpoint rule.
package crosscheck

import (
	"errors"
	"fmt"
	"math"

	"github.com/ChristopherRabotin/binint"
	"github.com/ChristopherRabotin/ode"
)

// quadrature is an ode.Integrable of y' = f(x), y(min) = 0, so that y(max) is the integral of f.
type quadrature struct {
	f     binint.Integrand
	x     []float64 // evaluation buffer
	y     float64
	max   float64
	step  float64
	steps uint64
}

func (q *quadrature) GetState() []float64 {
	return []float64{q.y}
}

func (q *quadrature) SetState(t float64, s []float64) {
	q.y = s[0]
	q.steps++
}

// Stop returns true once the next step would overshoot the upper limit.
func (q *quadrature) Stop(t float64) bool {
	return t >= q.max-q.step/2
}

func (q *quadrature) Func(t float64, s []float64) []float64 {
	q.x[0] = t
	return []float64{q.f.Eval(q.x)}
}

// RK4Reference integrates the 1-D integrand f over its own limits with n RK4 steps.
// It returns the integral and the number of steps performed.
func RK4Reference(f binint.Integrand, n int) (float64, uint64, error) {
	if f == nil || !f.IsValid() {
		return 0, 0, binint.ErrInvalidIntegrand
	}
	if f.Dimension() != 1 {
		return 0, 0, fmt.Errorf("%w: RK4 reference is 1-D only, integrand is %d-D", binint.ErrUnsupportedDimension, f.Dimension())
	}
	if n < 1 {
		return 0, 0, errors.New("number of steps must be positive")
	}
	min, max := f.MinLimit(0), f.MaxLimit(0)
	if !(min < max) || math.IsInf(min, 0) || math.IsInf(max, 0) {
		return 0, 0, binint.ErrInvalidLimits
	}
	q := &quadrature{f: f, x: make([]float64, 1), max: max, step: (max - min) / float64(n)}
	if _, _, err := ode.NewRK4(min, q.step, q).Solve(); err != nil {
		return 0, q.steps, err
	}
	return q.y, q.steps, nil
}
