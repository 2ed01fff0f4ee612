package main

import (
	"fmt"
	"runtime"

	"gopkg.in/urfave/cli.v1"

	"github.com/latticelabs/go-lattice/cmd/params"
)

var versionCommand = cli.Command{
	Action:    versionAction,
	Name:      "version",
	Usage:     "Print version numbers",
	ArgsUsage: " ",
	Category:  "MISCELLANEOUS COMMANDS",
	Description: `
The output of this command is supposed to be machine-readable.
`,
}

func versionAction(ctx *cli.Context) error {
	w := ctx.App.Writer
	fmt.Fprintln(w, "Glattice")
	fmt.Fprintln(w, "Version:", params.Version)
	fmt.Fprintln(w, "Architecture:", runtime.GOARCH)
	fmt.Fprintln(w, "Go Version:", runtime.Version())
	fmt.Fprintln(w, "Operating System:", runtime.GOOS)
	return nil
}
