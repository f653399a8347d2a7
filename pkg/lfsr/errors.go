package lfsr

import "errors"

var (
	ErrEmptySeed      = errors.New("seed must contain at least one bit")
	ErrTapOutOfRange  = errors.New("tap index out of range")
	ErrNegativeLength = errors.New("keystream length cannot be negative")
	ErrInvalidKey     = errors.New("invalid key")
)
