package utils

import (
	"io"
	"os"

	"github.com/inconshreveable/log15"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"

	"github.com/latticelabs/go-lattice/common"
	"github.com/latticelabs/go-lattice/config"
)

// LogHandler writes to out in terminal format when out is a terminal and in
// logfmt otherwise, and also to the configured log file.
func LogHandler(cfg *config.Config, out *os.File) (log15.Handler, error) {
	lvl, err := log15.LvlFromString(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	var (
		w      io.Writer = out
		format           = log15.LogfmtFormat()
	)
	if isatty.IsTerminal(out.Fd()) || isatty.IsCygwinTerminal(out.Fd()) {
		w = colorable.NewColorable(out)
		format = log15.TerminalFormat()
	}
	handler := log15.LvlFilterHandler(lvl, log15.StreamHandler(w, format))

	if path := cfg.LogFilePath(); path != "" {
		handler = log15.MultiHandler(handler, common.LogHandler(path, cfg.LogLevel))
	}
	return handler, nil
}

// SetupLog points the root logger at stderr and the log file.
func SetupLog(cfg *config.Config) error {
	handler, err := LogHandler(cfg, os.Stderr)
	if err != nil {
		return err
	}
	log15.Root().SetHandler(handler)
	return nil
}
