package lfsrcipher

import (
	"fmt"

	"github.com/saylorsolutions/lfsrcrypt/pkg/bitvec"
	"github.com/saylorsolutions/lfsrcrypt/pkg/lfsr"
)

// symbolScreen applies the keystream one symbol at a time.
// XOR of 6 keystream bits with a symbol's 6-bit group is the same as XOR of their integer values.
type symbolScreen struct {
	reg *lfsr.Register
}

func newSymbolScreen(seed bitvec.Bits, tap int) (*symbolScreen, error) {
	reg, err := lfsr.NewRegister(seed, tap)
	if err != nil {
		return nil, err
	}
	return &symbolScreen{reg: reg}, nil
}

func (s *symbolScreen) screen(sym byte) (byte, error) {
	idx, ok := bitvec.IndexOf(rune(sym))
	if !ok {
		return 0, fmt.Errorf("%w: %q", bitvec.ErrInvalidSymbol, sym)
	}
	ks := s.reg.NextInt(bitvec.GroupWidth)
	return bitvec.Alphabet[uint64(idx)^ks], nil
}

func (s *symbolScreen) reset() {
	s.reg.Reset()
}
