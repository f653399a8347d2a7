package bitvec

import "errors"

var (
	ErrInvalidSymbol         = errors.New("symbol is not in the alphabet")
	ErrInvalidBitGroupLength = errors.New("invalid bit group length")
	ErrOverflow              = errors.New("value overflows the requested bit width")
	ErrLengthMismatch        = errors.New("bit sequences have different lengths")
	ErrInvalidBit            = errors.New("bit value must be 0 or 1")
)
