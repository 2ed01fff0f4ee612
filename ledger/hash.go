package ledger

import (
	"encoding/hex"

	"github.com/latticelabs/go-lattice/common/types"
	"github.com/latticelabs/go-lattice/common/units"
)

// HashParams are the fields that identify a block, as strings, the way a
// caller or a peer supplies them.
type HashParams struct {
	Type           BlockType `json:"type"`
	Account        string    `json:"account"`
	Previous       string    `json:"previous"`
	Representative string    `json:"representative"`
	Balance        string    `json:"balance"`
	// Link is ignored unless the type has a link.
	Link     string `json:"link"`
	Dividend string `json:"dividend"`
}

// hashSource is the resolved byte form of HashParams.
type hashSource struct {
	preamble       [preambleSize]byte
	account        types.Address
	previous       types.Hash
	representative types.Address
	balance        []byte
	link           *LinkRef
	dividend       types.Hash
}

// HashBlock validates params and returns the block hash. Fields are checked
// in serialization order and the first invalid one is reported.
func HashBlock(params *HashParams) (types.Hash, error) {
	source, err := params.resolve()
	if err != nil {
		return types.Hash{}, err
	}
	return source.computeHash(), nil
}

func (p *HashParams) resolve() (*hashSource, error) {
	info, ok := p.Type.info()
	if !ok {
		return nil, ErrInvalidType
	}

	var (
		s   = &hashSource{preamble: p.Type.Preamble()}
		err error
	)
	if s.account, err = types.ParseAddress(p.Account); err != nil {
		return nil, ErrInvalidAccount
	}
	if s.previous, err = types.HexToHash(p.Previous); err != nil {
		return nil, ErrInvalidPrevious
	}
	if s.representative, err = types.ParseAddress(p.Representative); err != nil {
		return nil, ErrInvalidRepresentative
	}
	if !types.IsValidAmount(p.Balance) {
		return nil, ErrInvalidBalance
	}
	balanceHex, err := units.Convert(p.Balance, units.Raw, units.Hex)
	if err != nil {
		return nil, ErrInvalidBalance
	}
	if s.balance, err = hex.DecodeString(balanceHex); err != nil {
		return nil, ErrInvalidBalance
	}
	if info.hasLink {
		link, err := ParseLink(p.Link)
		if err != nil {
			return nil, err
		}
		s.link = &link
	}
	if s.dividend, err = types.HexToHash(p.Dividend); err != nil {
		return nil, ErrInvalidDividend
	}
	return s, nil
}

// computeHash streams preamble, account, previous, representative, balance,
// link (state only) and dividend into one BLAKE2b-256 digest.
func (s *hashSource) computeHash() types.Hash {
	parts := [][]byte{
		s.preamble[:],
		s.account[:],
		s.previous[:],
		s.representative[:],
		s.balance,
	}
	if s.link != nil {
		parts = append(parts, s.link.Bytes())
	}
	parts = append(parts, s.dividend[:])

	return types.DataListHash(parts...)
}
