package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/inconshreveable/log15"
	"github.com/pkg/errors"
	"gopkg.in/urfave/cli.v1"

	"github.com/latticelabs/go-lattice/cmd/utils"
	"github.com/latticelabs/go-lattice/ledger"
)

var blockCommand = cli.Command{
	Name:     "block",
	Usage:    "Create, hash and verify blocks",
	Category: "BLOCK COMMANDS",
	Subcommands: []cli.Command{
		{
			Name:   "create",
			Usage:  "Build and sign a block",
			Action: blockCreate,
			Flags: []cli.Flag{
				utils.SecretKeyFlag,
				utils.DataFileFlag,
			},
			Description: `glattice block create --key <hex> [--data <file>]

Reads the block fields as json {type, work, previous, representative, balance,
link, dividend} and prints the signed block with its hash.`,
		},
		{
			Name:   "hash",
			Usage:  "Compute the hash of a block",
			Action: blockHash,
			Flags: []cli.Flag{
				utils.DataFileFlag,
			},
			Description: `glattice block hash [--data <file>]

Reads {type, account, previous, representative, balance, link, dividend} as
json and prints the block hash.`,
		},
		{
			Name:   "verify",
			Usage:  "Check the hash, signature and work of a block",
			Action: blockVerify,
			Flags: []cli.Flag{
				utils.DataFileFlag,
			},
			Description: `glattice block verify [--data <file>]

Reads a block as printed by "block create". The work is checked against the
configured threshold when the block carries a work value.`,
		},
	},
}

type verifyResult struct {
	Hash string `json:"hash"`
	// valid, insufficient or absent
	Work string `json:"work"`
}

func blockCreate(ctx *cli.Context) error {
	logger := log15.New("module", "blockcmd/create")

	data := new(ledger.BlockData)
	if err := readInput(ctx, data); err != nil {
		return err
	}
	builder := ledger.NewBuilder(ledger.WithAddressPrefix(cfg.AddressPrefix))
	record, err := builder.CreateBlock(ctx.String(utils.SecretKeyFlag.Name), data)
	if err != nil {
		logger.Warn("block rejected", "type", data.Type, "err", err)
		return err
	}
	logger.Info("block created", "type", record.Type, "hash", record.Hash, "account", record.Block.Account)
	return writeOutput(ctx, record)
}

func blockHash(ctx *cli.Context) error {
	params := new(ledger.HashParams)
	if err := readInput(ctx, params); err != nil {
		return err
	}
	hash, err := ledger.HashBlock(params)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(ctx.App.Writer, hash.Hex())
	return err
}

func blockVerify(ctx *cli.Context) error {
	logger := log15.New("module", "blockcmd/verify")

	record := new(ledger.BlockRecord)
	if err := readInput(ctx, record); err != nil {
		return err
	}
	if err := ledger.VerifyBlock(record); err != nil {
		logger.Warn("block failed verification", "hash", record.Hash, "err", err)
		return err
	}

	result := verifyResult{Hash: record.Hash.Hex(), Work: "absent"}
	if _, ok := record.Block.Work.Value(); ok {
		threshold, err := cfg.Threshold()
		if err != nil {
			return err
		}
		valid, err := ledger.ValidateWork(&record.Block, threshold)
		if err != nil {
			return err
		}
		result.Work = "insufficient"
		if valid {
			result.Work = "valid"
		}
	}
	logger.Info("block verified", "hash", record.Hash, "work", result.Work)
	return writeOutput(ctx, result)
}

func readInput(ctx *cli.Context, v interface{}) error {
	name := ctx.String(utils.DataFileFlag.Name)

	var r io.Reader = stdin
	if name != "" && name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return errors.Wrap(err, "open input")
		}
		defer f.Close()
		r = f
	}
	if err := json.NewDecoder(r).Decode(v); err != nil {
		return errors.Wrap(err, "decode input")
	}
	return nil
}

func writeOutput(ctx *cli.Context, v interface{}) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(ctx.App.Writer, string(out))
	return err
}
