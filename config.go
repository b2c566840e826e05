package binint

import (
	"errors"
	"fmt"
	"os"
	"strings"

	kitlog "github.com/go-kit/kit/log"
	"github.com/spf13/viper"
)

const (
	// ConfigEnv is the environment variable holding the directory of conf.toml.
	ConfigEnv = "BININT_CONFIG"

	methodsSection = "methods"
)

// Config stores the numerical integration configuration: the options of each method, in a section named
// after the method, and the default method to use per dimensionality.
// Each Config owns its own viper instance so that two integrators may be configured independently.
type Config struct {
	v      *viper.Viper
	logger kitlog.Logger
}

// NewConfig returns a configuration where every option has its default value.
func NewConfig() *Config {
	return &Config{v: viper.New()}
}

// LoadConfig reads the TOML (or any format viper supports) file `name` from directory `dir`.
func LoadConfig(dir, name string) (*Config, error) {
	v := viper.New()
	v.AddConfigPath(dir)
	v.SetConfigName(strings.TrimSuffix(name, ".toml"))
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("%s/%s: %w", dir, name, err)
	}
	return &Config{v: v}, nil
}

// ConfigFromEnv reads conf.toml from the directory in the BININT_CONFIG environment variable.
func ConfigFromEnv() (*Config, error) {
	confPath := os.Getenv(ConfigEnv)
	if confPath == "" {
		return nil, errors.New("environment variable `" + ConfigEnv + "` is missing or empty")
	}
	return LoadConfig(confPath, "conf")
}

func optionKey(method, label string) string {
	return method + "." + label
}

// Set sets the option `label` of the method `method`.
func (c *Config) Set(method, label string, value float64) {
	c.v.Set(optionKey(method, label), value)
}

// RealValue returns the value of option `label` of method `method`, and whether it was set at all.
func (c *Config) RealValue(method, label string) (float64, bool) {
	key := optionKey(method, label)
	if !c.v.IsSet(key) {
		return 0, false
	}
	return c.v.GetFloat64(key), true
}

func methodKey(dim int) string {
	switch dim {
	case 1:
		return methodsSection + ".1d"
	case 2:
		return methodsSection + ".2d"
	default:
		return methodsSection + ".nd"
	}
}

// Method returns the name of the default method for integrands of dimension dim, or "" if none is set.
// Dimensions above two share a single label.
func (c *Config) Method(dim int) string {
	return c.v.GetString(methodKey(dim))
}

// SetMethod sets the default method for integrands of dimension dim.
func (c *Config) SetMethod(dim int, name string) {
	c.v.Set(methodKey(dim), name)
}

// SetLogger sets the logger given to the integrators built from this configuration.
func (c *Config) SetLogger(logger kitlog.Logger) {
	c.logger = logger
}

// Logger returns the logger of this configuration, or nil if none was set.
func (c *Config) Logger() kitlog.Logger {
	return c.logger
}
