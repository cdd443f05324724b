// Package config loads bitgen's generator settings.
package config

import (
	"os"
	"runtime"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

// DefaultFile is the config file bitgen looks for when none is given.
const DefaultFile = "bitgen.yaml"

const maxWorkers = 256

// Config controls where and how generated files are written.
type Config struct {
	OutputSuffix string `yaml:"output_suffix" validate:"required,endswith=.go,excludes=/"`
	Header       string `yaml:"header"`
	LogLevel     string `yaml:"log_level" validate:"oneof=panic fatal error warn warning info debug trace"`
	Workers      int    `yaml:"workers" validate:"min=1,max=256"`
}

// Default returns the settings used when no config file exists.
func Default() *Config {
	return &Config{
		OutputSuffix: "_bitfield.go",
		LogLevel:     "info",
		Workers:      min(runtime.GOMAXPROCS(0), maxWorkers),
	}
}

// Load reads path on top of the defaults. A missing file at the default
// location is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && path == DefaultFile {
			return cfg, nil
		}
		return nil, errors.Wrapf(err, "read config %s", path)
	}

	if err := yaml.UnmarshalStrict(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "parse config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid config %s", path)
	}
	return cfg, nil
}

var validate = validator.New()

// Validate checks every field against its constraints.
func (c *Config) Validate() error {
	return validate.Struct(c)
}

// Level returns the configured log level.
func (c *Config) Level() logrus.Level {
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}
