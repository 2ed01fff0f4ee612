package types

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/latticelabs/go-lattice/crypto"
)

const (
	HashSize = 32
)

type Hash [HashSize]byte

var ZERO_HASH = Hash{}

func BytesToHash(b []byte) (Hash, error) {
	var h Hash
	err := h.SetBytes(b)
	return h, err
}

// HexToHash accepts upper or lower case hex.
func HexToHash(hexstr string) (Hash, error) {
	if len(hexstr) != 2*HashSize {
		return Hash{}, fmt.Errorf("error hex hash size %v", len(hexstr))
	}
	b, err := hex.DecodeString(hexstr)
	if err != nil {
		return Hash{}, err
	}
	return BytesToHash(b)
}

func HexToHashPanic(hexstr string) Hash {
	h, err := HexToHash(hexstr)
	if err != nil {
		panic(err)
	}
	return h
}

// IsValidHexHash reports whether s is 64 hex characters.
func IsValidHexHash(s string) bool {
	_, err := HexToHash(s)
	return err == nil
}

func (h *Hash) SetBytes(b []byte) error {
	if len(b) != HashSize {
		return fmt.Errorf("error hash size %v", len(b))
	}
	copy(h[:], b)
	return nil
}

// Hex renders the hash in upper case, which is what nodes emit and expect.
func (h Hash) Hex() string {
	return strings.ToUpper(hex.EncodeToString(h[:]))
}

func (h Hash) Bytes() []byte {
	return h[:]
}

func (h Hash) String() string {
	return h.Hex()
}

func (h Hash) IsZero() bool {
	return h == ZERO_HASH
}

// DataListHash is the BLAKE2b-256 hash of all parts streamed in order.
func DataListHash(data ...[]byte) Hash {
	h, _ := BytesToHash(crypto.Hash256(data...))
	return h
}

func (h *Hash) UnmarshalText(input []byte) error {
	hash, err := HexToHash(string(input))
	if err != nil {
		return err
	}
	*h = hash
	return nil
}

func (h Hash) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}
