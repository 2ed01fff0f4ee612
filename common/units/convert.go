// Package units converts amounts between the ledger's denominations. All
// arithmetic is arbitrary precision; raw balances exceed native integer widths.
package units

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/latticelabs/go-lattice/common/types"
)

type Unit string

const (
	// Hex is a raw amount as 16 big-endian bytes in upper case hex.
	Hex   Unit = "hex"
	Raw   Unit = "raw"
	Nano  Unit = "nano"
	KNano Unit = "knano"
	// NanoC and NANO are the same 10^30 denomination.
	NanoC  Unit = "Nano"
	NANO   Unit = "NANO"
	KNanoC Unit = "KNano"
	MNano  Unit = "MNano"
)

// exponents of ten relative to raw
var zeros = map[Unit]int32{
	Raw:    0,
	Nano:   24,
	KNano:  27,
	NanoC:  30,
	NANO:   30,
	KNanoC: 33,
	MNano:  36,
}

func ParseUnit(s string) (Unit, error) {
	u := Unit(s)
	if u == Hex {
		return u, nil
	}
	if _, ok := zeros[u]; ok {
		return u, nil
	}
	return "", fmt.Errorf("unknown unit %q", s)
}

// Convert re-expresses amount, given in unit from, in unit to.
func Convert(amount string, from, to Unit) (string, error) {
	raw, err := toRaw(amount, from)
	if err != nil {
		return "", err
	}
	return fromRaw(raw, to)
}

func toRaw(amount string, from Unit) (*big.Int, error) {
	if from == Hex {
		if len(amount) != 2*types.AmountSize {
			return nil, fmt.Errorf("hex amount must be %d characters", 2*types.AmountSize)
		}
		b, err := hex.DecodeString(amount)
		if err != nil {
			return nil, err
		}
		return new(big.Int).SetBytes(b), nil
	}

	exp, ok := zeros[from]
	if !ok {
		return nil, fmt.Errorf("unknown unit %q", from)
	}
	if !isPlainDecimal(amount) {
		return nil, fmt.Errorf("amount %q is not a plain decimal number", amount)
	}
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return nil, err
	}
	d = d.Shift(exp)
	if !d.IsInteger() {
		return nil, fmt.Errorf("amount %s %s is not a whole number of raw", amount, from)
	}
	raw := d.BigInt()
	if raw.Cmp(types.MaxAmount) > 0 {
		return nil, fmt.Errorf("amount %s %s overflows the raw range", amount, from)
	}
	return raw, nil
}

func fromRaw(raw *big.Int, to Unit) (string, error) {
	if to == Hex {
		b, err := types.AmountBytes(raw)
		if err != nil {
			return "", err
		}
		return strings.ToUpper(hex.EncodeToString(b)), nil
	}
	exp, ok := zeros[to]
	if !ok {
		return "", fmt.Errorf("unknown unit %q", to)
	}
	return decimal.NewFromBigInt(raw, 0).Shift(-exp).String(), nil
}

func isPlainDecimal(s string) bool {
	if s == "" {
		return false
	}
	dot := false
	digits := 0
	for _, c := range s {
		switch {
		case c >= '0' && c <= '9':
			digits++
		case c == '.' && !dot:
			dot = true
		default:
			return false
		}
	}
	return digits > 0
}
