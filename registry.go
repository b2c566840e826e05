package binint

import (
	"fmt"
	"sort"
)

// Integrator defines a numerical integration method bound to an integrand.
type Integrator interface {
	Dimension() int
	CheckLimits() bool
	SetLimits(min, max float64) bool
	IsValid() bool
	Integral() (float64, error)
	Clone(f Integrand, cfg *Config) (Integrator, error)
}

// Descriptor advertises an integration method so that a Factory can offer it.
type Descriptor struct {
	Name         string
	Options      map[string]float64 // Recognized options and their default values.
	MaxDimension int
	DefaultFor   []int // Dimensions for which this method should be the default one.
	New          func(f Integrand, cfg *Config) (Integrator, error)
}

// BinIntegratorDescriptor returns the descriptor of the bin integrator, which is the default method for 1-D integrals.
func BinIntegratorDescriptor() Descriptor {
	return Descriptor{
		Name:         BinIntegratorName,
		Options:      map[string]float64{NumBinsOption: DefaultNumBins},
		MaxDimension: MaxDimension,
		DefaultFor:   []int{1},
		New: func(f Integrand, cfg *Config) (Integrator, error) {
			b, err := NewBinIntegratorWithConfig(f, cfg)
			if err != nil {
				return nil, err
			}
			return b, nil
		},
	}
}

// Factory stores integration methods and creates integrators from them.
type Factory struct {
	methods map[string]Descriptor
}

// NewFactory returns a factory storing the provided descriptors.
func NewFactory(descs ...Descriptor) (*Factory, error) {
	f := &Factory{methods: make(map[string]Descriptor)}
	for _, d := range descs {
		if err := f.Store(d); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// Store adds a method to the factory.
func (fa *Factory) Store(d Descriptor) error {
	if d.Name == "" || d.New == nil {
		return fmt.Errorf("descriptor %q has no name or no constructor", d.Name)
	}
	if _, exists := fa.methods[d.Name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateMethod, d.Name)
	}
	fa.methods[d.Name] = d
	return nil
}

// Methods returns the sorted names of the stored methods.
func (fa *Factory) Methods() []string {
	names := make([]string, 0, len(fa.methods))
	for name := range fa.methods {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Descriptor returns the descriptor of the named method.
func (fa *Factory) Descriptor(name string) (Descriptor, bool) {
	d, ok := fa.methods[name]
	return d, ok
}

// DefaultConfig returns a configuration holding the default options of every stored method, and
// the default method of each dimensionality as advertised by the descriptors.
func (fa *Factory) DefaultConfig() *Config {
	cfg := NewConfig()
	for _, name := range fa.Methods() {
		d := fa.methods[name]
		for label, value := range d.Options {
			cfg.Set(name, label, value)
		}
		for _, dim := range d.DefaultFor {
			cfg.SetMethod(dim, name)
		}
	}
	return cfg
}

// CreateNamed creates an integrator of f with the named method.
func (fa *Factory) CreateNamed(name string, f Integrand, cfg *Config) (Integrator, error) {
	d, ok := fa.methods[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, name)
	}
	if f != nil && d.MaxDimension > 0 && f.Dimension() > d.MaxDimension {
		return nil, fmt.Errorf("%w: %s supports at most %d dimensions, integrand has %d", ErrUnsupportedDimension, name, d.MaxDimension, f.Dimension())
	}
	return d.New(f, cfg)
}

// Create creates an integrator of f with the default method of cfg for the dimension of f.
func (fa *Factory) Create(f Integrand, cfg *Config) (Integrator, error) {
	if f == nil {
		return nil, ErrInvalidIntegrand
	}
	if cfg == nil {
		cfg = fa.DefaultConfig()
	}
	name := cfg.Method(f.Dimension())
	if name == "" {
		return nil, fmt.Errorf("%w: no default method for %d dimensions", ErrUnknownMethod, f.Dimension())
	}
	return fa.CreateNamed(name, f, cfg)
}
