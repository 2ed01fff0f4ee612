package ledger

import "errors"

// ValidationError names the single field that failed its syntax check.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

var (
	ErrNoBlockData           = &ValidationError{Field: "data", Reason: "Block data is not set"}
	ErrInvalidType           = &ValidationError{Field: "type", Reason: "Incorrect type for block"}
	ErrInvalidSecretKey      = &ValidationError{Field: "secretKey", Reason: "Secret key is not valid"}
	ErrWorkNotSet            = &ValidationError{Field: "work", Reason: "Work is not set"}
	ErrInvalidAccount        = &ValidationError{Field: "account", Reason: "Account is not valid"}
	ErrInvalidPrevious       = &ValidationError{Field: "previous", Reason: "Previous is not valid"}
	ErrInvalidRepresentative = &ValidationError{Field: "representative", Reason: "Representative is not valid"}
	ErrInvalidBalance        = &ValidationError{Field: "balance", Reason: "Balance is not valid"}
	ErrInvalidLink           = &ValidationError{Field: "link", Reason: "Link is not valid"}
	ErrInvalidDividend       = &ValidationError{Field: "dividend", Reason: "Dividend is not valid"}
	ErrInvalidSignature      = &ValidationError{Field: "signature", Reason: "Signature is not valid"}
)

var (
	ErrHashMismatch = errors.New("block hash does not match its contents")
	ErrBadSignature = errors.New("block signature was not made by its account")
	ErrNoWork       = errors.New("block has no work value")
)
