package utils

import (
	"gopkg.in/urfave/cli.v1"
)

var (
	// Config settings
	ConfigFileFlag = cli.StringFlag{
		Name:  "config",
		Usage: "Json configuration file (default = ./lattice.config.json when present)",
	}

	// General settings
	DataDirFlag = DirectoryFlag{
		Name:  "datadir",
		Usage: "use for store all files",
	}
	LogLevelFlag = cli.StringFlag{
		Name:  "loglevel",
		Usage: "Log level: crit, eror, warn, info, dbug",
	}
	AddressPrefixFlag = cli.StringFlag{
		Name:  "prefix",
		Usage: "Prefix of printed addresses: xrb_ or nano_",
	}
	WorkThresholdFlag = cli.StringFlag{
		Name:  "threshold",
		Usage: "Minimum work value as 16 hex chars",
	}

	// Block settings
	SecretKeyFlag = cli.StringFlag{
		Name:  "key",
		Usage: "Secret key of the account as 64 hex chars",
	}
	DataFileFlag = cli.StringFlag{
		Name:  "data",
		Usage: "Json input file, - for stdin",
		Value: "-",
	}

	// Key settings
	SeedFlag = cli.StringFlag{
		Name:  "seed",
		Usage: "Wallet seed as 64 hex chars",
	}
	MnemonicFlag = cli.StringFlag{
		Name:  "mnemonic",
		Usage: "Wallet seed as 24 words",
	}
	SeedStoreFlag = DirectoryFlag{
		Name:  "store",
		Usage: "Encrypted seed file",
	}
	PassphraseFlag = cli.StringFlag{
		Name:   "passphrase",
		Usage:  "Passphrase of the seed file",
		EnvVar: "GLATTICE_PASSPHRASE",
	}
	LightKDFFlag = cli.BoolFlag{
		Name:  "lightkdf",
		Usage: "Reduce key-derivation RAM & CPU usage at some expense of KDF strength",
	}
	IndexFlag = cli.UintFlag{
		Name:  "index",
		Usage: "Index of the first derived account",
	}
	CountFlag = cli.UintFlag{
		Name:  "count",
		Usage: "Number of derived accounts",
		Value: 1,
	}
	PublicKeyFlag = cli.StringFlag{
		Name:  "pubkey",
		Usage: "Public key as 64 hex chars",
	}
)

func MergeFlags(flagsSet ...[]cli.Flag) []cli.Flag {
	mergeFlags := []cli.Flag{}
	for _, flags := range flagsSet {
		mergeFlags = append(mergeFlags, flags...)
	}
	return mergeFlags
}
