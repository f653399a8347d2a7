package lfsr

import (
	"errors"
	"fmt"

	"github.com/saylorsolutions/lfsrcrypt/pkg/bitvec"
	"golang.org/x/crypto/scrypt"
)

const (
	DefaultDeriveIterations = 1 << 15
	deriveBlockSize         = 8
	deriveParallelism       = 1
)

var (
	ErrEmptyPassphrase = errors.New("cannot use an empty passphrase")
)

// DeriveSeed deterministically derives a seed of length bits from a passphrase and salt with scrypt.
// The same passphrase, salt, and length always produce the same seed.
func DeriveSeed(pass, salt []byte, length int) (bitvec.Bits, error) {
	return deriveSeed(pass, salt, length, DefaultDeriveIterations)
}

func deriveSeed(pass, salt []byte, length int, iterations int) (bitvec.Bits, error) {
	if len(pass) == 0 {
		return nil, ErrEmptyPassphrase
	}
	if length <= 0 || length > MaxSeedLen {
		return nil, fmt.Errorf("%w: cannot derive a seed of %d bits", ErrInvalidKey, length)
	}
	raw, err := scrypt.Key(pass, salt, iterations, deriveBlockSize, deriveParallelism, (length+7)/8)
	if err != nil {
		return nil, err
	}
	return unpackBits(raw, length), nil
}
