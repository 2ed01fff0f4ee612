package ledger

import (
	"encoding/json"

	"github.com/latticelabs/go-lattice/common/types"
)

// Work is the proof-of-work field of a block. It has three states: never
// supplied (the zero value), supplied as a placeholder (JSON null or an
// empty string) to be filled in later, and supplied with a value.
type Work struct {
	set   bool
	value string
}

func NewWork(value string) Work {
	return Work{set: true, value: value}
}

// NullWork is a work placeholder.
func NullWork() Work {
	return Work{set: true}
}

// IsSet reports whether the field was supplied at all.
func (w Work) IsSet() bool {
	return w.set
}

// Value returns the work token, if the field carries one.
func (w Work) Value() (string, bool) {
	return w.value, w.set && w.value != ""
}

func (w Work) MarshalJSON() ([]byte, error) {
	if w.value == "" {
		return []byte("null"), nil
	}
	return json.Marshal(w.value)
}

func (w *Work) UnmarshalJSON(input []byte) error {
	if string(input) == "null" {
		*w = NullWork()
		return nil
	}
	var value string
	if err := json.Unmarshal(input, &value); err != nil {
		return err
	}
	*w = NewWork(value)
	return nil
}

// BlockData holds the caller-supplied fields of a block to be created.
// All values are kept as given; syntax is checked when the block is built.
type BlockData struct {
	Type           string `json:"type"`
	Work           Work   `json:"work"`
	Previous       string `json:"previous"`
	Representative string `json:"representative"`
	Balance        string `json:"balance"`
	// Link is an address or a block hash. Only state blocks use it.
	Link     string `json:"link"`
	Dividend string `json:"dividend"`
}

// Block is the network shape of a signed account block.
type Block struct {
	// only set for state blocks
	Type           BlockType `json:"type,omitempty"`
	Account        string    `json:"account"`
	Previous       string    `json:"previous"`
	Representative string    `json:"representative"`
	Balance        string    `json:"balance"`
	Link           string    `json:"link,omitempty"`
	LinkAsAccount  string    `json:"link_as_account,omitempty"`
	Dividend       string    `json:"dividend"`
	Work           Work      `json:"work"`
	Signature      string    `json:"signature"`
}

// BlockRecord is a created block together with its hash.
type BlockRecord struct {
	Hash  types.Hash `json:"hash"`
	Block Block      `json:"block"`
	Type  BlockType  `json:"type"`
}

// HashParams returns the canonical fields of the record's block.
func (r *BlockRecord) HashParams() *HashParams {
	params := &HashParams{
		Type:           r.Type,
		Account:        r.Block.Account,
		Previous:       r.Block.Previous,
		Representative: r.Block.Representative,
		Balance:        r.Block.Balance,
		Dividend:       r.Block.Dividend,
	}
	if r.Type.HasLink() {
		params.Link = r.Block.Link
	}
	return params
}
