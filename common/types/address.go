package types

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/multiformats/go-base32"

	"github.com/latticelabs/go-lattice/crypto"
	"github.com/latticelabs/go-lattice/crypto/ed25519"
)

const (
	AddressPrefix     = "xrb_"
	AddressPrefixNano = "nano_"
	AddressSize       = ed25519.PublicKeySize

	addressChecksumSize = 5
	// 4 zero bits plus the 256 key bits, five bits per character.
	addressKeyChars      = 52
	addressChecksumChars = 8
	addressBodyLength    = addressKeyChars + addressChecksumChars

	addressAlphabet = "13456789abcdefghijkmnopqrstuwxyz"
)

var addressEncoding = base32.NewEncoding(addressAlphabet).WithPadding(base32.NoPadding)

// Address is an account address. Its binary form is the account's public key.
type Address [AddressSize]byte

func BytesToAddress(b []byte) (Address, error) {
	var a Address
	err := a.SetBytes(b)
	return a, err
}

// PubkeyToAddress is deriveAddress: it never fails for a 32-byte key.
func PubkeyToAddress(pubkey []byte) (Address, error) {
	return BytesToAddress(pubkey)
}

// HexToAddress parses a public key in hex and returns the matching address.
func HexToAddress(hexKey string) (Address, error) {
	h, err := HexToHash(hexKey)
	if err != nil {
		return Address{}, err
	}
	return Address(h), nil
}

// ParseAddress decodes the text form of an address, checking prefix,
// alphabet and checksum.
func ParseAddress(s string) (Address, error) {
	var body string
	switch {
	case strings.HasPrefix(s, AddressPrefix):
		body = s[len(AddressPrefix):]
	case strings.HasPrefix(s, AddressPrefixNano):
		body = s[len(AddressPrefixNano):]
	default:
		return Address{}, fmt.Errorf("address %q has no known prefix", s)
	}
	if len(body) != addressBodyLength {
		return Address{}, fmt.Errorf("address body length %v", len(body))
	}
	if body[0] != '1' && body[0] != '3' {
		return Address{}, fmt.Errorf("address %q is out of key range", s)
	}

	// Left-pad to 56 characters (35 bytes, the first three of them zero).
	key, err := addressEncoding.DecodeString("1111" + body[:addressKeyChars])
	if err != nil {
		return Address{}, err
	}
	checksum, err := addressEncoding.DecodeString(body[addressKeyChars:])
	if err != nil {
		return Address{}, err
	}

	addr, err := BytesToAddress(key[3:])
	if err != nil {
		return Address{}, err
	}
	if !bytes.Equal(addr.checksum(), checksum) {
		return Address{}, fmt.Errorf("address %q checksum mismatch", s)
	}
	return addr, nil
}

func IsValidAddress(s string) bool {
	_, err := ParseAddress(s)
	return err == nil
}

func (addr *Address) SetBytes(b []byte) error {
	if length := len(b); length != AddressSize {
		return fmt.Errorf("address bytes length error %v", length)
	}
	copy(addr[:], b)
	return nil
}

// PublicKey is derivePublicKey for an address.
func (addr Address) PublicKey() ed25519.PublicKey {
	return addr.Bytes()
}

// PublicKeyHex returns the public key as upper case hex.
func (addr Address) PublicKeyHex() string {
	return Hash(addr).Hex()
}

func (addr Address) Format(prefix string) string {
	padded := make([]byte, 3+AddressSize)
	copy(padded[3:], addr[:])
	key := addressEncoding.EncodeToString(padded)
	return prefix + key[4:] + addressEncoding.EncodeToString(addr.checksum())
}

func (addr Address) Bytes() []byte {
	b := make([]byte, AddressSize)
	copy(b, addr[:])
	return b
}

func (addr Address) String() string {
	return addr.Format(AddressPrefix)
}

func (addr *Address) UnmarshalText(input []byte) error {
	a, err := ParseAddress(string(input))
	if err != nil {
		return err
	}
	*addr = a
	return nil
}

func (addr Address) MarshalText() ([]byte, error) {
	return []byte(addr.String()), nil
}

func (addr Address) checksum() []byte {
	sum := crypto.Hash(addressChecksumSize, addr[:])
	for i, j := 0, len(sum)-1; i < j; i, j = i+1, j-1 {
		sum[i], sum[j] = sum[j], sum[i]
	}
	return sum
}
