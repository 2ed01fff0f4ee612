package ledger

import (
	"github.com/latticelabs/go-lattice/common/types"
	"github.com/latticelabs/go-lattice/crypto/ed25519"
)

// Signer signs a block hash with the account's secret key.
type Signer interface {
	SignBlock(hash types.Hash, secretKey types.SecretKey) (types.Signature, error)
}

type ed25519Signer struct{}

func (ed25519Signer) SignBlock(hash types.Hash, secretKey types.SecretKey) (types.Signature, error) {
	return types.BytesToSignature(ed25519.Sign(secretKey.PrivateKey(), hash.Bytes()))
}

// DefaultSigner signs with ed25519 over BLAKE2b-512, deterministically.
var DefaultSigner Signer = ed25519Signer{}

// Builder creates signed blocks. It holds no per-call state and is safe for
// concurrent use if its Signer is.
type Builder struct {
	signer Signer
	prefix string
}

type BuilderOption func(*Builder)

func WithSigner(signer Signer) BuilderOption {
	return func(b *Builder) {
		b.signer = signer
	}
}

// WithAddressPrefix sets the prefix of derived addresses.
func WithAddressPrefix(prefix string) BuilderOption {
	return func(b *Builder) {
		b.prefix = prefix
	}
}

func NewBuilder(opts ...BuilderOption) *Builder {
	b := &Builder{
		signer: DefaultSigner,
		prefix: types.AddressPrefix,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

var defaultBuilder = NewBuilder()

// CreateBlock builds and signs a block with the default Builder.
func CreateBlock(secretKey string, data *BlockData) (*BlockRecord, error) {
	return defaultBuilder.CreateBlock(secretKey, data)
}

// CreateBlock validates data, derives the account from secretKey, hashes and
// signs the block. It fails on the first invalid field, checked in the order
// type, secret key, work presence, previous, representative, balance, link
// (state only), dividend.
func (b *Builder) CreateBlock(secretKey string, data *BlockData) (*BlockRecord, error) {
	if data == nil {
		return nil, ErrNoBlockData
	}
	blockType, err := ParseBlockType(data.Type)
	if err != nil {
		return nil, ErrInvalidType
	}

	key, link, err := validateBlockData(blockType, secretKey, data)
	if err != nil {
		return nil, err
	}

	account := key.Address().Format(b.prefix)
	params := &HashParams{
		Type:           blockType,
		Account:        account,
		Previous:       data.Previous,
		Representative: data.Representative,
		Balance:        data.Balance,
		Dividend:       data.Dividend,
	}
	if link != nil {
		params.Link = data.Link
	}
	hash, err := HashBlock(params)
	if err != nil {
		return nil, err
	}

	signature, err := b.signer.SignBlock(hash, key)
	if err != nil {
		return nil, err
	}

	block := Block{
		Account:        account,
		Previous:       data.Previous,
		Representative: data.Representative,
		Balance:        data.Balance,
		Dividend:       data.Dividend,
		Work:           data.Work,
		Signature:      signature.Hex(),
	}
	if link != nil {
		block.Type = blockType
		block.Link = link.Hex()
		block.LinkAsAccount = link.AsAccount(b.prefix)
	}

	return &BlockRecord{
		Hash:  hash,
		Block: block,
		Type:  blockType,
	}, nil
}

// validateBlockData checks the caller's fields for blockType. The link is
// resolved only for types that carry one.
func validateBlockData(blockType BlockType, secretKey string, data *BlockData) (types.SecretKey, *LinkRef, error) {
	key, err := types.HexToSecretKey(secretKey)
	if err != nil {
		return types.SecretKey{}, nil, ErrInvalidSecretKey
	}
	if !data.Work.IsSet() {
		return types.SecretKey{}, nil, ErrWorkNotSet
	}
	if !types.IsValidHexHash(data.Previous) {
		return types.SecretKey{}, nil, ErrInvalidPrevious
	}
	if !types.IsValidAddress(data.Representative) {
		return types.SecretKey{}, nil, ErrInvalidRepresentative
	}
	if !types.IsValidAmount(data.Balance) {
		return types.SecretKey{}, nil, ErrInvalidBalance
	}

	var link *LinkRef
	if blockType.HasLink() {
		ref, err := ParseLink(data.Link)
		if err != nil {
			return types.SecretKey{}, nil, err
		}
		link = &ref
	}

	if !types.IsValidHexHash(data.Dividend) {
		return types.SecretKey{}, nil, ErrInvalidDividend
	}
	return key, link, nil
}
