package lfsr

import (
	"fmt"

	"github.com/saylorsolutions/lfsrcrypt/pkg/bitvec"
)

// Keystream returns the first length output bits of an LFSR loaded with seed and tap.
// The result is fully determined by its inputs.
func Keystream(seed bitvec.Bits, tap int, length int) (bitvec.Bits, error) {
	if length < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeLength, length)
	}
	reg, err := NewRegister(seed, tap)
	if err != nil {
		return nil, err
	}
	out := make(bitvec.Bits, length)
	reg.Fill(out)
	return out, nil
}
