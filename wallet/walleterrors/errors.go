package walleterrors

import "errors"

var (
	ErrInvalidSeed     = errors.New("invalid seed")
	ErrInvalidMnemonic = errors.New("invalid mnemonic")
	ErrDecryptSeed     = errors.New("error decrypting seed")
	ErrStoreVersion    = errors.New("unknown seed store version")
	ErrIndexRange      = errors.New("account index out of range")
)
