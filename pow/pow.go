package pow

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/latticelabs/go-lattice/common/types"
	"github.com/latticelabs/go-lattice/crypto"
)

const WorkSize = 8

// DefaultThreshold is the minimum work value accepted for any block.
const DefaultThreshold uint64 = 0xffffffc000000000

// Work is a proof-of-work token, 8 bytes rendered as 16 hex characters.
type Work [WorkSize]byte

func HexToWork(s string) (Work, error) {
	var w Work
	if len(s) != 2*WorkSize {
		return w, fmt.Errorf("error hex work size %v", len(s))
	}
	if _, err := hex.Decode(w[:], []byte(s)); err != nil {
		return Work{}, err
	}
	return w, nil
}

func IsValidWork(s string) bool {
	_, err := HexToWork(s)
	return err == nil
}

func (w Work) Hex() string {
	return hex.EncodeToString(w[:])
}

// ParseThreshold reads a threshold written as 16 hex characters.
func ParseThreshold(s string) (uint64, error) {
	return strconv.ParseUint(strings.TrimPrefix(s, "0x"), 16, 64)
}

// Value is the work value of w over root, where root is the previous block
// hash, or the account public key for the first block of a chain.
// data = Hash8(reverse(work) + root), read little endian.
func Value(root types.Hash, w Work) uint64 {
	reversed := make([]byte, WorkSize)
	for i := range w {
		reversed[WorkSize-1-i] = w[i]
	}
	return binary.LittleEndian.Uint64(crypto.Hash(WorkSize, reversed, root.Bytes()))
}

func CheckWork(root types.Hash, w Work, threshold uint64) bool {
	return Value(root, w) >= threshold
}

// Validate checks a work string against root. Malformed work is an error,
// insufficient work is not.
func Validate(root types.Hash, work string, threshold uint64) (bool, error) {
	w, err := HexToWork(work)
	if err != nil {
		return false, err
	}
	return CheckWork(root, w, threshold), nil
}
