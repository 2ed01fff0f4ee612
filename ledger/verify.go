package ledger

import (
	"github.com/latticelabs/go-lattice/common/types"
	"github.com/latticelabs/go-lattice/crypto"
	"github.com/latticelabs/go-lattice/pow"
)

// VerifyBlock checks a received record: its fields must hash to the claimed
// hash and the signature must be the account's signature of that hash.
func VerifyBlock(record *BlockRecord) error {
	hash, err := HashBlock(record.HashParams())
	if err != nil {
		return err
	}
	if hash != record.Hash {
		return ErrHashMismatch
	}

	signature, err := types.HexToSignature(record.Block.Signature)
	if err != nil {
		return ErrInvalidSignature
	}
	// HashBlock has already parsed the account
	account, _ := types.ParseAddress(record.Block.Account)
	ok, err := crypto.VerifySig(account.PublicKey(), hash.Bytes(), signature.Bytes())
	if err != nil || !ok {
		return ErrBadSignature
	}
	return nil
}

// WorkRoot is the hash work is computed over: the previous block hash, or
// the account public key for the first block of a chain.
func WorkRoot(block *Block) (types.Hash, error) {
	previous, err := types.HexToHash(block.Previous)
	if err != nil {
		return types.Hash{}, ErrInvalidPrevious
	}
	if !previous.IsZero() {
		return previous, nil
	}
	account, err := types.ParseAddress(block.Account)
	if err != nil {
		return types.Hash{}, ErrInvalidAccount
	}
	return types.Hash(account), nil
}

// ValidateWork reports whether the block's work meets threshold. A block
// holding only a work placeholder returns ErrNoWork.
func ValidateWork(block *Block, threshold uint64) (bool, error) {
	work, ok := block.Work.Value()
	if !ok {
		return false, ErrNoWork
	}
	root, err := WorkRoot(block)
	if err != nil {
		return false, err
	}
	return pow.Validate(root, work, threshold)
}
