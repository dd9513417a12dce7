// Package config loads settings from bioflat.toml, BIOFLAT_ environment
// variables and built in defaults, in rising order of precedence.
// Command line flags are bound on top by the CLI.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"

	"github.com/andrew-torda/bioflat/pkg/linesrc"
	"github.com/andrew-torda/bioflat/pkg/logger"
)

// FileName is looked for in the working directory and its parents.
const FileName = "bioflat.toml"

const envPrefix = "BIOFLAT"

type Config struct {
	Input InputConfig   `mapstructure:"input"`
	Log   logger.Config `mapstructure:"log"`
	Xref  XrefConfig    `mapstructure:"xref"`
}

type InputConfig struct {
	Encoding string `mapstructure:"encoding"`
	Mmap     bool   `mapstructure:"mmap"`
	BufSize  int    `mapstructure:"buf_size"`
}

type XrefConfig struct {
	Workers int `mapstructure:"workers"` // 0 means one per input file
}

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	v.SetDefault("input.encoding", "UTF-8")
	v.SetDefault("input.mmap", false)
	v.SetDefault("input.buf_size", 64*1024)

	v.SetDefault("log.json", false)
	v.SetDefault("log.level", "info")

	v.SetDefault("xref.workers", 4)
}

// New sets up a viper instance with defaults, the environment and, if
// one is found walking up from dir, the project file. An empty dir
// means the working directory.
func New(dir string) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	SetDefaults(v)

	if dir == "" {
		var err error
		if dir, err = os.Getwd(); err != nil {
			return nil, errors.Wrap(err, "finding working directory")
		}
	}
	if path := findProjectConfig(dir); path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "reading %s", path)
		}
	}
	return v, nil
}

// findProjectConfig walks up from dir. It returns "" if there is no
// config file anywhere above.
func findProjectConfig(dir string) string {
	for {
		p := filepath.Join(dir, FileName)
		if fi, err := os.Stat(p); err == nil && fi.Mode().IsRegular() {
			return p
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// Load unmarshals and checks the configuration held by v.
func Load(v *viper.Viper) (*Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// LoadFromFile reads one file, with defaults but no environment.
func LoadFromFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	SetDefaults(v)
	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "failed to read config file %s", path)
	}
	return Load(v)
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if c.Input.BufSize < 0 {
		return errors.Newf("input.buf_size must be >= 0, got %d", c.Input.BufSize)
	}
	if c.Xref.Workers < 0 {
		return errors.Newf("xref.workers must be >= 0, got %d", c.Xref.Workers)
	}
	// Check the encoding now rather than on the first file
	if _, err := linesrc.NewSource(strings.NewReader(""), c.LineOptions()); err != nil {
		return errors.Wrap(err, "input.encoding")
	}
	return nil
}

// LineOptions is the input section in the form linesrc wants.
func (c *Config) LineOptions() linesrc.Options {
	return linesrc.Options{
		Encoding: c.Input.Encoding,
		Mmap:     c.Input.Mmap,
		BufSize:  c.Input.BufSize,
	}
}
