package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/ChristopherRabotin/binint"
	"github.com/ChristopherRabotin/binint/crosscheck"
	"github.com/ChristopherRabotin/binint/integrands"
	kitlog "github.com/go-kit/kit/log"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

// This code only reads the scenario file and integrates the integrand it describes.

const defaultScenario = "~~unset~~"

var (
	scenario string
	verbose  bool
	logger   kitlog.Logger
)

func init() {
	flag.StringVar(&scenario, "scenario", defaultScenario, "integration scenario TOML file")
	flag.BoolVar(&verbose, "verbose", false, "log the binning fallbacks")
}

func fatal(keyvals ...interface{}) {
	logger.Log(append([]interface{}{"level", "critical"}, keyvals...)...)
	os.Exit(1)
}

func main() {
	flag.Parse()
	logger = kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stderr))
	logger = kitlog.With(logger, "cmd", "binint")
	if scenario == defaultScenario {
		fatal("message", "no scenario provided")
	}
	scenario = strings.Replace(scenario, ".toml", "", 1)
	viper.AddConfigPath(".")
	viper.SetConfigName(scenario)
	if err := viper.ReadInConfig(); err != nil {
		fatal("scenario", scenario, "err", err)
	}
	// The method options live in the same file.
	cfg, err := binint.LoadConfig(".", scenario)
	if err != nil {
		fatal("scenario", scenario, "err", err)
	}
	if !verbose {
		cfg.SetLogger(kitlog.NewNopLogger())
	} else {
		cfg.SetLogger(logger)
	}

	f, err := readIntegrand()
	if err != nil {
		fatal("subsys", "integrand", "err", err)
	}

	fa, err := binint.NewFactory(binint.BinIntegratorDescriptor())
	if err != nil {
		fatal("subsys", "factory", "err", err)
	}
	method := viper.GetString("integrand.method")
	if method == "" {
		method = binint.BinIntegratorName
	}
	in, err := fa.CreateNamed(method, f, cfg)
	if err != nil {
		fatal("subsys", "factory", "method", method, "err", err)
	}
	val, err := in.Integral()
	if err != nil {
		fatal("subsys", "integral", "err", err)
	}
	fmt.Printf("∫ = %.15g\n", val)

	if exact, ok := f.(*integrands.Polynomial); ok {
		fmt.Printf("exact = %.15g (error = %.3g)\n", exact.Exact(), val-exact.Exact())
	}
	if steps := viper.GetInt("crosscheck.steps"); steps > 0 && f.Dimension() == 1 {
		ref, _, err := crosscheck.RK4Reference(f, steps)
		if err != nil {
			fatal("subsys", "crosscheck", "err", err)
		}
		fmt.Printf("RK4 = %.15g (difference = %.3g)\n", ref, val-ref)
	}
}

// readIntegrand builds the integrand of the [integrand] section.
// Histograms take their limits from their edges, the other kinds from integrand.min and integrand.max.
func readIntegrand() (binint.Integrand, error) {
	switch kind := strings.ToLower(viper.GetString("integrand.kind")); kind {
	case "gaussian":
		min, max, err := readLimits()
		if err != nil {
			return nil, err
		}
		μ, err := floatSlice("integrand.mean")
		if err != nil {
			return nil, err
		}
		g, err := integrands.NewIsotropicGaussian(μ, viper.GetFloat64("integrand.variance"), min, max)
		if err != nil {
			return nil, err
		}
		for d := range min {
			key := fmt.Sprintf("integrand.bins.%d", d)
			if viper.IsSet(key) {
				edges, err := floatSlice(key)
				if err != nil {
					return nil, err
				}
				g.SetBins(d, edges)
			}
		}
		return g, nil
	case "polynomial":
		min, max, err := readLimits()
		if err != nil {
			return nil, err
		}
		raw, ok := viper.Get("integrand.coefficients").([]interface{})
		if !ok {
			return nil, fmt.Errorf("integrand.coefficients must be an array of arrays")
		}
		coeffs := make([][]float64, len(raw))
		for d, c := range raw {
			if coeffs[d], err = toFloats(c); err != nil {
				return nil, fmt.Errorf("integrand.coefficients[%d]: %s", d, err)
			}
		}
		p, err := integrands.NewPolynomial(coeffs, min, max)
		if err != nil {
			return nil, err
		}
		return p, nil
	case "histogram":
		edges, err := floatSlice("integrand.edges")
		if err != nil {
			return nil, err
		}
		contents, err := floatSlice("integrand.contents")
		if err != nil {
			return nil, err
		}
		h, err := integrands.NewHistogram(edges, contents)
		if err != nil {
			return nil, err
		}
		return h, nil
	default:
		return nil, fmt.Errorf("unknown integrand kind `%s` (should be gaussian, polynomial or histogram)", kind)
	}
}

func readLimits() (min, max []float64, err error) {
	if min, err = floatSlice("integrand.min"); err != nil {
		return nil, nil, err
	}
	if max, err = floatSlice("integrand.max"); err != nil {
		return nil, nil, err
	}
	return min, max, nil
}

func floatSlice(key string) ([]float64, error) {
	vals, err := toFloats(viper.Get(key))
	if err != nil {
		return nil, fmt.Errorf("%s: %s", key, err)
	}
	return vals, nil
}

func toFloats(v interface{}) ([]float64, error) {
	raw, err := cast.ToSliceE(v)
	if err != nil {
		return nil, err
	}
	vals := make([]float64, len(raw))
	for i, r := range raw {
		if vals[i], err = cast.ToFloat64E(r); err != nil {
			return nil, err
		}
	}
	return vals, nil
}
