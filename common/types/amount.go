package types

import (
	"fmt"
	"math/big"
)

const AmountSize = 16

// MaxAmount is the largest balance a block can carry, in raw.
var MaxAmount = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 8*AmountSize), big.NewInt(1))

// ParseAmount parses a raw amount: decimal digits only, no sign, at most MaxAmount.
func ParseAmount(s string) (*big.Int, error) {
	if s == "" {
		return nil, fmt.Errorf("empty amount")
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return nil, fmt.Errorf("amount %q is not a decimal integer", s)
		}
	}
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("amount %q is not a decimal integer", s)
	}
	if v.Cmp(MaxAmount) > 0 {
		return nil, fmt.Errorf("amount %q overflows %d bytes", s, AmountSize)
	}
	return v, nil
}

// IsValidAmount is the balance syntax check.
func IsValidAmount(s string) bool {
	_, err := ParseAmount(s)
	return err == nil
}

// AmountBytes is the fixed-width big-endian encoding of a raw amount.
func AmountBytes(v *big.Int) ([]byte, error) {
	if v.Sign() < 0 || v.Cmp(MaxAmount) > 0 {
		return nil, fmt.Errorf("amount %v out of range", v)
	}
	b := make([]byte, AmountSize)
	return v.FillBytes(b), nil
}
