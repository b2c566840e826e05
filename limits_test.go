package binint

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	kitlog "github.com/go-kit/kit/log"
	"github.com/gonum/floats"
)

// interval is a 1-D integrand with a fixed binning on [0, 1] whatever its limits.
type interval struct {
	min, max float64
}

func (i interval) Dimension() int { return 1 }
func (i interval) MinLimit(d int) float64 { return i.min }
func (i interval) MaxLimit(d int) float64 { return i.max }
func (i interval) BinBoundaries(d int) []float64 { return []float64{0, 0.5, 1} }
func (i interval) Eval(x []float64) float64 { return 1 }
func (i interval) IsValid() bool { return true }

func TestCheckLimits(t *testing.T) {
	for _, tc := range []struct {
		min, max float64
		valid    bool
	}{
		{0, 1, true},
		{-3, -2, true},
		{5, 5, false},
		{2, 1, false},
		{0, math.Inf(1), false},
		{math.Inf(-1), 0, false},
		{math.NaN(), 1, false},
	} {
		b, err := NewBinIntegratorWithConfig(interval{tc.min, tc.max}, quietConfig())
		if err != nil {
			t.Fatalf("err %s", err)
		}
		if got := b.CheckLimits(); got != tc.valid {
			t.Fatalf("[%f, %f] valid=%t, expected %t", tc.min, tc.max, got, tc.valid)
		}
		if b.IsValid() != tc.valid {
			t.Fatalf("[%f, %f] IsValid does not reflect the last check", tc.min, tc.max)
		}
		val, err := b.Integral()
		if tc.valid {
			if err != nil {
				t.Fatalf("[%f, %f] unexpected err %s", tc.min, tc.max, err)
			}
			continue
		}
		if !errors.Is(err, ErrInvalidLimits) || val != 0 {
			t.Fatalf("[%f, %f] expected 0 and ErrInvalidLimits, got %f and %v", tc.min, tc.max, val, err)
		}
	}
}

func TestCheckLimitsAtConstruction(t *testing.T) {
	var buf bytes.Buffer
	cfg := NewConfig()
	cfg.SetLogger(kitlog.NewLogfmtLogger(&buf))
	b, err := NewBinIntegratorWithConfig(NewBinding(Constant(1), []float64{5}, []float64{5}).WithBins(0, 4, 6), cfg)
	if err != nil {
		t.Fatalf("err %s", err)
	}
	if b.IsValid() {
		t.Fatal("[5, 5] should be invalid right after the construction")
	}
	if !strings.Contains(buf.String(), "level=error") || !strings.Contains(buf.String(), "min >= max") {
		t.Fatalf("expected an error diagnostic, got:\n%s", buf.String())
	}
}

func TestInfiniteRangeDiagnostic(t *testing.T) {
	var buf bytes.Buffer
	cfg := NewConfig()
	cfg.SetLogger(kitlog.NewLogfmtLogger(&buf))
	b, err := NewBinIntegratorWithConfig(interval{0, math.Inf(1)}, cfg)
	if err != nil {
		t.Fatalf("err %s", err)
	}
	if b.IsValid() {
		t.Fatal("[0, +Inf) should be invalid")
	}
	out := buf.String()
	for _, exp := range []string{"level=error", "subsys=limits", "dim=0", "\"infinite range\"", "max=+Inf"} {
		if !strings.Contains(out, exp) {
			t.Fatalf("diagnostic should contain `%s`:\n%s", exp, out)
		}
	}
}

func TestLimitsFollowIntegrand(t *testing.T) {
	f := NewBinding(Constant(2), []float64{0}, []float64{1}).WithBins(0, 0, 0.5, 1)
	b, err := NewBinIntegratorWithConfig(f, quietConfig())
	if err != nil {
		t.Fatalf("err %s", err)
	}
	if !b.IsValid() {
		t.Fatal("should be valid")
	}
	f.Max[0] = -1
	if b.CheckLimits() {
		t.Fatal("limits should have been refreshed from the integrand")
	}
	if _, max := b.Limits(); max[0] != -1 {
		t.Fatalf("max not refreshed: %f", max[0])
	}
	f.Max[0] = 1
	if !b.CheckLimits() {
		t.Fatal("limits should be valid again")
	}
}

func TestSetLimitsWithIntegrandLimits(t *testing.T) {
	var buf bytes.Buffer
	cfg := NewConfig()
	cfg.SetLogger(kitlog.NewLogfmtLogger(&buf))
	b, err := NewBinIntegratorWithConfig(NewBinding(Constant(1), []float64{0}, []float64{1}).WithBins(0, 0, 1), cfg)
	if err != nil {
		t.Fatalf("err %s", err)
	}
	if !b.UseIntegrandLimits() {
		t.Fatal("integrand limits should be used by default")
	}
	if b.SetLimits(-10, 10) {
		t.Fatal("SetLimits should be refused when using the integrand limits")
	}
	min, max := b.Limits()
	if !floats.Equal(min, []float64{0}) || !floats.Equal(max, []float64{1}) {
		t.Fatalf("limits changed to [%+v, %+v]", min, max)
	}
	if !strings.Contains(buf.String(), "cannot override integrand's limits") {
		t.Fatalf("expected an error diagnostic, got:\n%s", buf.String())
	}
}

func TestSetLimitsFixed(t *testing.T) {
	f := NewBinding(Constant(1), []float64{0, 0}, []float64{1, 1}).WithBins(0, 0, 1).WithBins(1, 0, 1)
	b, err := NewBinIntegratorWithConfig(f, quietConfig())
	if err != nil {
		t.Fatalf("err %s", err)
	}
	b.SetUseIntegrandLimits(false)
	if !b.SetLimits(-2, 3) {
		t.Fatal("[-2, 3] should be valid")
	}
	min, max := b.Limits()
	// Only the first dimension is overridden.
	if !floats.Equal(min, []float64{-2, 0}) || !floats.Equal(max, []float64{3, 1}) {
		t.Fatalf("incorrect limits [%+v, %+v]", min, max)
	}
	// Fixed limits ignore the integrand.
	f.Max[1] = -5
	if !b.CheckLimits() {
		t.Fatal("fixed limits should not be refreshed")
	}
	if b.SetLimits(3, 3) {
		t.Fatal("[3, 3] should be invalid")
	}
	if b.IsValid() {
		t.Fatal("IsValid should reflect the failed SetLimits")
	}
	if b.SetLimits(0, math.Inf(1)) {
		t.Fatal("[0, +Inf) should be invalid")
	}
}
