package lfsr

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"

	"github.com/saylorsolutions/lfsrcrypt/pkg/bitvec"
)

// GenSeed will generate a seed with the given number of bits from the OS entropy pool.
func GenSeed(length int) (bitvec.Bits, error) {
	if length <= 0 {
		return nil, errors.New("asked to generate a seed with no bits")
	}
	buf := make([]byte, (length+7)/8)
	n, err := rand.Read(buf)
	if n < len(buf) {
		return nil, fmt.Errorf("failed to read requested bytes: %v", err)
	}
	return unpackBits(buf, length), nil
}

// GenKey will generate a random seed and a tap that doesn't produce a degenerate keystream.
// At least 2 bits are required, since a single bit register only has the degenerate tap.
func GenKey(length int) (Key, error) {
	if length < 2 {
		return Key{}, fmt.Errorf("%w: need at least 2 bits to avoid a degenerate tap, got %d", ErrInvalidKey, length)
	}
	seed, err := GenSeed(length)
	if err != nil {
		return Key{}, err
	}
	tap, err := rand.Int(rand.Reader, big.NewInt(int64(length-1)))
	if err != nil {
		return Key{}, err
	}
	return Key{Seed: seed, Tap: int(tap.Int64())}, nil
}
