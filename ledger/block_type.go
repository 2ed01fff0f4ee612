package ledger

import (
	"fmt"
)

// BlockType selects the preamble and field set of a block.
type BlockType byte

const (
	BlockTypeState BlockType = iota + 1
	BlockTypeDividend
	BlockTypeClaim
)

const preambleSize = 32

type blockTypeInfo struct {
	name string
	// last byte of the 32-byte preamble
	discriminant byte
	hasLink      bool
}

var blockTypeInfos = map[BlockType]blockTypeInfo{
	BlockTypeState:    {name: "state", discriminant: 6, hasLink: true},
	BlockTypeDividend: {name: "dividend", discriminant: 7},
	BlockTypeClaim:    {name: "claim", discriminant: 8},
}

func ParseBlockType(s string) (BlockType, error) {
	for t, info := range blockTypeInfos {
		if info.name == s {
			return t, nil
		}
	}
	return 0, ErrInvalidType
}

func (t BlockType) info() (blockTypeInfo, bool) {
	info, ok := blockTypeInfos[t]
	return info, ok
}

// HasLink reports whether the link field is part of the block.
func (t BlockType) HasLink() bool {
	info, _ := t.info()
	return info.hasLink
}

// Preamble is 31 zero bytes followed by the type discriminant.
func (t BlockType) Preamble() [preambleSize]byte {
	var p [preambleSize]byte
	info, _ := t.info()
	p[preambleSize-1] = info.discriminant
	return p
}

func (t BlockType) String() string {
	if info, ok := t.info(); ok {
		return info.name
	}
	return fmt.Sprintf("BlockType(%d)", byte(t))
}

func (t BlockType) MarshalText() ([]byte, error) {
	info, ok := t.info()
	if !ok {
		return nil, ErrInvalidType
	}
	return []byte(info.name), nil
}

func (t *BlockType) UnmarshalText(input []byte) error {
	parsed, err := ParseBlockType(string(input))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
