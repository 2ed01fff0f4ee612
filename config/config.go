package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/inconshreveable/log15"
	"github.com/pkg/errors"

	"github.com/latticelabs/go-lattice/common"
	"github.com/latticelabs/go-lattice/common/types"
	"github.com/latticelabs/go-lattice/pow"
)

const DefaultConfigFile = "lattice.config.json"

type Config struct {
	// global keys
	DataDir string `json:"DataDir"`

	LogLevel string `json:"LogLevel"`
	// relative paths are inside DataDir, empty disables file logging
	LogFile string `json:"LogFile"`

	AddressPrefix string `json:"AddressPrefix"`
	// 16 hex chars
	WorkThreshold string `json:"WorkThreshold"`
}

func Default() *Config {
	return &Config{
		DataDir:       common.DefaultDataDir(),
		LogLevel:      "info",
		AddressPrefix: types.AddressPrefix,
		WorkThreshold: "ffffffc000000000",
	}
}

// Load reads a JSON config file over the defaults. Keys missing from the
// file keep their default value.
func Load(path string) (*Config, error) {
	text, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read config file")
	}
	cfg := Default()
	if err := json.Unmarshal(text, cfg); err != nil {
		return nil, errors.Wrapf(err, "parse config file %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "config file %s", path)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if _, err := log15.LvlFromString(c.LogLevel); err != nil {
		return errors.Wrap(err, "LogLevel")
	}
	if c.AddressPrefix != types.AddressPrefix && c.AddressPrefix != types.AddressPrefixNano {
		return errors.Errorf("AddressPrefix %q is not %s or %s", c.AddressPrefix, types.AddressPrefix, types.AddressPrefixNano)
	}
	if _, err := c.Threshold(); err != nil {
		return errors.Wrap(err, "WorkThreshold")
	}
	return nil
}

func (c *Config) Threshold() (uint64, error) {
	return pow.ParseThreshold(c.WorkThreshold)
}

// LogFilePath is the absolute log file, or "" when file logging is off.
func (c *Config) LogFilePath() string {
	if c.LogFile == "" || filepath.IsAbs(c.LogFile) {
		return c.LogFile
	}
	return filepath.Join(c.DataDir, c.LogFile)
}
