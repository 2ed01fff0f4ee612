package wallet

import (
	"encoding/binary"
	"encoding/hex"
	"strings"

	"github.com/pkg/errors"
	"github.com/tyler-smith/go-bip39"

	"github.com/latticelabs/go-lattice/common/types"
	"github.com/latticelabs/go-lattice/crypto"
	"github.com/latticelabs/go-lattice/wallet/walleterrors"
)

const SeedSize = 32

// Seed is the root secret every account key of a wallet is derived from.
type Seed [SeedSize]byte

// NewSeed returns a random seed.
func NewSeed() (Seed, error) {
	entropy, err := bip39.NewEntropy(SeedSize * 8)
	if err != nil {
		return Seed{}, errors.Wrap(err, "generate seed")
	}
	return BytesToSeed(entropy)
}

func BytesToSeed(b []byte) (Seed, error) {
	var s Seed
	if len(b) != SeedSize {
		return s, walleterrors.ErrInvalidSeed
	}
	copy(s[:], b)
	return s, nil
}

// HexToSeed accepts either hex case.
func HexToSeed(hexStr string) (Seed, error) {
	if len(hexStr) != 2*SeedSize {
		return Seed{}, walleterrors.ErrInvalidSeed
	}
	b, err := hex.DecodeString(hexStr)
	if err != nil {
		return Seed{}, walleterrors.ErrInvalidSeed
	}
	return BytesToSeed(b)
}

func (s Seed) Hex() string {
	return strings.ToUpper(hex.EncodeToString(s[:]))
}

func (s Seed) String() string {
	return "Seed{...}"
}

// DeriveSecretKey returns the secret key of account index:
// BLAKE2b-256(seed || big-endian uint32 index).
func DeriveSecretKey(seed Seed, index uint32) types.SecretKey {
	var idx [4]byte
	binary.BigEndian.PutUint32(idx[:], index)
	var key types.SecretKey
	copy(key[:], crypto.Hash256(seed[:], idx[:]))
	return key
}

// SeedToMnemonic encodes the seed as 24 BIP-39 words. The words carry the
// seed itself, not a BIP-39 derived seed.
func SeedToMnemonic(seed Seed) (string, error) {
	mnemonic, err := bip39.NewMnemonic(seed[:])
	if err != nil {
		return "", errors.Wrap(err, "encode mnemonic")
	}
	return mnemonic, nil
}

func MnemonicToSeed(mnemonic string) (Seed, error) {
	entropy, err := bip39.EntropyFromMnemonic(strings.Join(strings.Fields(mnemonic), " "))
	if err != nil {
		return Seed{}, walleterrors.ErrInvalidMnemonic
	}
	seed, err := BytesToSeed(entropy)
	if err != nil {
		// a valid mnemonic of another length
		return Seed{}, walleterrors.ErrInvalidMnemonic
	}
	return seed, nil
}
