package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/inconshreveable/log15"
	"gopkg.in/urfave/cli.v1"

	"github.com/latticelabs/go-lattice/cmd/params"
	"github.com/latticelabs/go-lattice/cmd/utils"
	"github.com/latticelabs/go-lattice/config"
)

// glattice is the command-line client for building and checking blocks

var (
	log = log15.New("module", "glattice/main")

	app = cli.NewApp()

	// set in beforeAction
	cfg *config.Config

	stdin io.Reader = os.Stdin

	//config
	configFlags = []cli.Flag{
		utils.ConfigFileFlag,
	}
	//general
	generalFlags = []cli.Flag{
		utils.DataDirFlag,
		utils.LogLevelFlag,
		utils.AddressPrefixFlag,
		utils.WorkThresholdFlag,
	}
)

func init() {
	app.Name = filepath.Base(os.Args[0])
	app.HideVersion = false
	app.Version = params.Version
	app.Compiled = time.Now()
	app.Usage = "build, hash and verify block-lattice blocks"

	app.Commands = []cli.Command{
		blockCommand,
		keyCommand,
		versionCommand,
	}
	sort.Sort(cli.CommandsByName(app.Commands))

	app.Flags = utils.MergeFlags(configFlags, generalFlags)

	app.Before = beforeAction
}

func main() {
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func beforeAction(ctx *cli.Context) error {
	var err error
	if cfg, err = utils.MakeConfig(ctx); err != nil {
		return err
	}
	if err := utils.SetupLog(cfg); err != nil {
		return err
	}
	log.Debug("config loaded", "datadir", cfg.DataDir, "prefix", cfg.AddressPrefix, "threshold", cfg.WorkThreshold)
	return nil
}
