package utils

import (
	"os"

	"gopkg.in/urfave/cli.v1"

	"github.com/latticelabs/go-lattice/config"
)

// MakeConfig loads the config file named by --config, else
// ./lattice.config.json if present, else the defaults, and applies the
// global flags over it.
func MakeConfig(ctx *cli.Context) (*config.Config, error) {
	cfg := config.Default()
	path := ctx.GlobalString(ConfigFileFlag.Name)
	if path == "" {
		if _, err := os.Stat(config.DefaultConfigFile); err == nil {
			path = config.DefaultConfigFile
		}
	}
	if path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return nil, err
		}
	}

	if ctx.GlobalIsSet(DataDirFlag.Name) {
		cfg.DataDir = ctx.GlobalString(DataDirFlag.Name)
	}
	if ctx.GlobalIsSet(LogLevelFlag.Name) {
		cfg.LogLevel = ctx.GlobalString(LogLevelFlag.Name)
	}
	if ctx.GlobalIsSet(AddressPrefixFlag.Name) {
		cfg.AddressPrefix = ctx.GlobalString(AddressPrefixFlag.Name)
	}
	if ctx.GlobalIsSet(WorkThresholdFlag.Name) {
		cfg.WorkThreshold = ctx.GlobalString(WorkThresholdFlag.Name)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
