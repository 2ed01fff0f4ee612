package ledger

import (
	"github.com/latticelabs/go-lattice/common/types"
)

type LinkKind byte

const (
	LinkAddress LinkKind = iota + 1
	LinkBlockHash
)

// LinkRef is the link field of a state block resolved to one of its two
// forms. Both forms carry 32 bytes: an address its public key, a block hash
// itself.
type LinkRef struct {
	kind  LinkKind
	bytes [32]byte
	text  string
}

// ParseLink classifies s as an address if it parses as one, else as a
// block hash, else rejects it.
func ParseLink(s string) (LinkRef, error) {
	if addr, err := types.ParseAddress(s); err == nil {
		return LinkRef{kind: LinkAddress, bytes: addr, text: s}, nil
	}
	if h, err := types.HexToHash(s); err == nil {
		return LinkRef{kind: LinkBlockHash, bytes: h, text: s}, nil
	}
	return LinkRef{}, ErrInvalidLink
}

func (l LinkRef) Kind() LinkKind {
	return l.kind
}

// Bytes is the form fed to the block hash.
func (l LinkRef) Bytes() []byte {
	return l.bytes[:]
}

// Hex is the link as shown in a block's link field: the caller's string
// for a hash, the public key for an address.
func (l LinkRef) Hex() string {
	if l.kind == LinkBlockHash {
		return l.text
	}
	return types.Hash(l.bytes).Hex()
}

// AsAccount is the link as shown in link_as_account: the caller's string
// for an address, the address derived from the bytes for a hash.
func (l LinkRef) AsAccount(prefix string) string {
	if l.kind == LinkAddress {
		return l.text
	}
	return types.Address(l.bytes).Format(prefix)
}
