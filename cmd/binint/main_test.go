package main

import (
	"testing"

	"github.com/ChristopherRabotin/binint/integrands"
	"github.com/spf13/viper"
)

func readScenario(t *testing.T, name string) {
	viper.Reset()
	viper.AddConfigPath(".")
	viper.SetConfigName(name)
	if err := viper.ReadInConfig(); err != nil {
		t.Fatalf("./%s.toml: %s", name, err)
	}
}

func TestReadHistogramWithoutLimits(t *testing.T) {
	readScenario(t, "histogram")
	if viper.IsSet("integrand.min") || viper.IsSet("integrand.max") {
		t.Fatal("histogram scenario should not set limits")
	}
	f, err := readIntegrand()
	if err != nil {
		t.Fatalf("err %s", err)
	}
	h, ok := f.(*integrands.Histogram)
	if !ok {
		t.Fatalf("expected a histogram, got %T", f)
	}
	if h.MinLimit(0) != 0 || h.MaxLimit(0) != 3.5 {
		t.Fatalf("limits should come from the edges, got [%f, %f]", h.MinLimit(0), h.MaxLimit(0))
	}
	if h.Sum() != 12.5 {
		t.Fatalf("sum = %f != 12.5", h.Sum())
	}
}

func TestReadScenarios(t *testing.T) {
	for name, dim := range map[string]int{"gaussian": 1, "polynomial": 2} {
		readScenario(t, name)
		f, err := readIntegrand()
		if err != nil {
			t.Fatalf("[%s] err %s", name, err)
		}
		if f.Dimension() != dim {
			t.Fatalf("[%s] %d-D instead of %d-D", name, f.Dimension(), dim)
		}
	}
}

func TestReadMissingLimits(t *testing.T) {
	readScenario(t, "polynomial")
	viper.Set("integrand.kind", "gaussian")
	if _, err := readIntegrand(); err == nil {
		t.Fatal("expected an error for a gaussian without a mean")
	}
	viper.Reset()
	viper.Set("integrand.kind", "polynomial")
	viper.Set("integrand.coefficients", []interface{}{[]interface{}{1.0}})
	if _, err := readIntegrand(); err == nil {
		t.Fatal("expected an error for a polynomial without limits")
	}
	viper.Set("integrand.kind", "spline")
	if _, err := readIntegrand(); err == nil {
		t.Fatal("expected an error for an unknown kind")
	}
}
