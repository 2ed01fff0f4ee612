package main

import (
	"github.com/inconshreveable/log15"
	"github.com/pkg/errors"
	"gopkg.in/urfave/cli.v1"

	"github.com/latticelabs/go-lattice/cmd/utils"
	"github.com/latticelabs/go-lattice/common/types"
	"github.com/latticelabs/go-lattice/wallet"
	"github.com/latticelabs/go-lattice/wallet/entropystore"
)

var keyCommand = cli.Command{
	Name:     "key",
	Usage:    "Manage seeds and keys",
	Category: "KEY COMMANDS",
	Subcommands: []cli.Command{
		{
			Name:   "new",
			Usage:  "Generate a new seed",
			Action: keyNew,
			Flags: []cli.Flag{
				utils.SeedStoreFlag,
				utils.PassphraseFlag,
				utils.LightKDFFlag,
			},
			Description: `glattice key new [--store <file> --passphrase <pass>]

Prints a new seed, its mnemonic and the address of account 0. With --store the
seed is written to an encrypted file instead of being printed.`,
		},
		{
			Name:   "derive",
			Usage:  "Derive account keys from a seed",
			Action: keyDerive,
			Flags: []cli.Flag{
				utils.SeedFlag,
				utils.MnemonicFlag,
				utils.SeedStoreFlag,
				utils.PassphraseFlag,
				utils.IndexFlag,
				utils.CountFlag,
			},
			Description: `glattice key derive (--seed <hex> | --mnemonic <words> | --store <file>) [--index N] [--count N]`,
		},
		{
			Name:   "address",
			Usage:  "Print the address of a key",
			Action: keyAddress,
			Flags: []cli.Flag{
				utils.SecretKeyFlag,
				utils.PublicKeyFlag,
			},
			Description: `glattice key address (--key <secret hex> | --pubkey <public hex>)`,
		},
	},
}

const maxDeriveCount = 1000

type newSeedResult struct {
	Seed     string `json:"seed,omitempty"`
	Mnemonic string `json:"mnemonic,omitempty"`
	Store    string `json:"store,omitempty"`
	Address  string `json:"address"`
}

type keyResult struct {
	Index     *uint32 `json:"index,omitempty"`
	SecretKey string  `json:"secretKey,omitempty"`
	PublicKey string  `json:"publicKey"`
	Address   string  `json:"address"`
}

func keyNew(ctx *cli.Context) error {
	logger := log15.New("module", "keycmd/new")

	seed, err := wallet.NewSeed()
	if err != nil {
		return err
	}
	address := wallet.NewAccount(seed, 0).Address().Format(cfg.AddressPrefix)

	if path := ctx.String(utils.SeedStoreFlag.Name); path != "" {
		passphrase := ctx.String(utils.PassphraseFlag.Name)
		if passphrase == "" {
			return errors.New("a passphrase is required to store the seed")
		}
		store := entropystore.NewCryptoStore(path, ctx.Bool(utils.LightKDFFlag.Name))
		if err := store.StoreSeed(seed, passphrase); err != nil {
			return err
		}
		logger.Info("seed stored", "store", path, "address", address)
		return writeOutput(ctx, newSeedResult{Store: path, Address: address})
	}

	mnemonic, err := wallet.SeedToMnemonic(seed)
	if err != nil {
		return err
	}
	return writeOutput(ctx, newSeedResult{
		Seed:     seed.Hex(),
		Mnemonic: mnemonic,
		Address:  address,
	})
}

func keyDerive(ctx *cli.Context) error {
	seed, err := seedFromFlags(ctx)
	if err != nil {
		return err
	}

	from, count := ctx.Uint(utils.IndexFlag.Name), ctx.Uint(utils.CountFlag.Name)
	if uint64(from) > wallet.MaxIndex {
		return errors.Errorf("--index %d is above %d", from, uint32(wallet.MaxIndex))
	}
	if count > maxDeriveCount {
		return errors.Errorf("--count %d is above %d", count, maxDeriveCount)
	}
	accounts, err := wallet.Accounts(seed, uint32(from), uint32(count))
	if err != nil {
		return errors.Wrapf(err, "--index %d --count %d", from, count)
	}
	results := make([]keyResult, 0, len(accounts))
	for _, acct := range accounts {
		index := acct.Index
		results = append(results, keyResult{
			Index:     &index,
			SecretKey: acct.SecretKey().Hex(),
			PublicKey: acct.Address().PublicKeyHex(),
			Address:   acct.Address().Format(cfg.AddressPrefix),
		})
	}
	return writeOutput(ctx, results)
}

func seedFromFlags(ctx *cli.Context) (wallet.Seed, error) {
	switch {
	case ctx.IsSet(utils.SeedFlag.Name):
		return wallet.HexToSeed(ctx.String(utils.SeedFlag.Name))
	case ctx.IsSet(utils.MnemonicFlag.Name):
		return wallet.MnemonicToSeed(ctx.String(utils.MnemonicFlag.Name))
	case ctx.IsSet(utils.SeedStoreFlag.Name):
		store := entropystore.NewCryptoStore(ctx.String(utils.SeedStoreFlag.Name), false)
		return store.ExtractSeed(ctx.String(utils.PassphraseFlag.Name))
	}
	return wallet.Seed{}, errors.New("one of --seed, --mnemonic or --store is required")
}

func keyAddress(ctx *cli.Context) error {
	var address types.Address
	switch {
	case ctx.IsSet(utils.SecretKeyFlag.Name):
		key, err := types.HexToSecretKey(ctx.String(utils.SecretKeyFlag.Name))
		if err != nil {
			return errors.Wrap(err, "key")
		}
		address = key.Address()
	case ctx.IsSet(utils.PublicKeyFlag.Name):
		var err error
		if address, err = types.HexToAddress(ctx.String(utils.PublicKeyFlag.Name)); err != nil {
			return errors.Wrap(err, "pubkey")
		}
	default:
		return errors.New("one of --key or --pubkey is required")
	}
	return writeOutput(ctx, keyResult{
		PublicKey: address.PublicKeyHex(),
		Address:   address.Format(cfg.AddressPrefix),
	})
}
