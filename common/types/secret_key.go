package types

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/latticelabs/go-lattice/crypto/ed25519"
)

const SecretKeySize = ed25519.SeedSize

// SecretKey is the 32-byte seed of an account's ed25519 key pair.
type SecretKey [SecretKeySize]byte

func HexToSecretKey(hexStr string) (SecretKey, error) {
	var k SecretKey
	if len(hexStr) != 2*SecretKeySize {
		return k, fmt.Errorf("error hex secret key size %v", len(hexStr))
	}
	if _, err := hex.Decode(k[:], []byte(hexStr)); err != nil {
		return SecretKey{}, err
	}
	return k, nil
}

// IsValidSecretKey is the key syntax check: 64 hex characters.
func IsValidSecretKey(s string) bool {
	_, err := HexToSecretKey(s)
	return err == nil
}

func (k SecretKey) PrivateKey() ed25519.PrivateKey {
	return ed25519.NewKeyFromSeed(k[:])
}

// PublicKey is derivePublicKey for a secret key.
func (k SecretKey) PublicKey() ed25519.PublicKey {
	return k.PrivateKey().PubByte()
}

func (k SecretKey) Address() Address {
	var a Address
	copy(a[:], k.PublicKey())
	return a
}

func (k SecretKey) Hex() string {
	return strings.ToUpper(hex.EncodeToString(k[:]))
}

// String never prints key material.
func (k SecretKey) String() string {
	return "SecretKey{...}"
}

const SignatureSize = ed25519.SignatureSize

type Signature [SignatureSize]byte

func BytesToSignature(b []byte) (Signature, error) {
	var s Signature
	if len(b) != SignatureSize {
		return s, fmt.Errorf("error signature size %v", len(b))
	}
	copy(s[:], b)
	return s, nil
}

func HexToSignature(hexStr string) (Signature, error) {
	if len(hexStr) != 2*SignatureSize {
		return Signature{}, fmt.Errorf("error hex signature size %v", len(hexStr))
	}
	b, err := hex.DecodeString(hexStr)
	if err != nil {
		return Signature{}, err
	}
	return BytesToSignature(b)
}

func (s Signature) Bytes() []byte { return s[:] }

func (s Signature) Hex() string {
	return strings.ToUpper(hex.EncodeToString(s[:]))
}

func (s Signature) String() string { return s.Hex() }

func (s *Signature) UnmarshalText(input []byte) error {
	sig, err := HexToSignature(string(input))
	if err != nil {
		return err
	}
	*s = sig
	return nil
}

func (s Signature) MarshalText() ([]byte, error) {
	return []byte(s.Hex()), nil
}
