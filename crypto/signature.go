package crypto

import (
	"errors"

	"github.com/latticelabs/go-lattice/crypto/ed25519"
)

var (
	ErrPubKeySize    = errors.New("crypto: wrong public key size")
	ErrSignatureSize = errors.New("crypto: wrong signature size")
	ErrNonceSize     = errors.New("crypto: wrong nonce size")
)

func VerifySig(pubkey ed25519.PublicKey, message, signData []byte) (bool, error) {
	if len(pubkey) != ed25519.PublicKeySize {
		return false, ErrPubKeySize
	}
	if len(signData) != ed25519.SignatureSize {
		return false, ErrSignatureSize
	}
	return ed25519.Verify(pubkey, message, signData), nil
}
