package lfsr

import (
	"fmt"

	"github.com/saylorsolutions/lfsrcrypt/pkg/bitvec"
)

// Register is the mutable state of an LFSR.
// The state is stored as a ring, so shifting is a single write instead of a copy.
// A Register is not safe for concurrent use.
type Register struct {
	seed  bitvec.Bits
	state bitvec.Bits
	head  int
	tap   int
}

// NewRegister loads a copy of seed into a new Register that feeds back from the given tap index.
// The caller's seed is never modified.
func NewRegister(seed bitvec.Bits, tap int) (*Register, error) {
	if err := validate(seed, tap); err != nil {
		return nil, err
	}
	r := &Register{
		seed:  seed.Clone(),
		state: seed.Clone(),
		tap:   tap,
	}
	return r, nil
}

func validate(seed bitvec.Bits, tap int) error {
	if len(seed) == 0 {
		return ErrEmptySeed
	}
	if tap < 0 || tap >= len(seed) {
		return fmt.Errorf("%w: tap %d for seed of len %d", ErrTapOutOfRange, tap, len(seed))
	}
	if err := seed.Validate(); err != nil {
		return fmt.Errorf("invalid seed: %w", err)
	}
	return nil
}

// Len returns the number of bits in the register.
func (r *Register) Len() int {
	return len(r.state)
}

// Tap returns the feedback tap index.
func (r *Register) Tap() int {
	return r.tap
}

// Degenerate reports whether the tap is the last position, which makes every output bit 0.
func (r *Register) Degenerate() bool {
	return r.tap == len(r.state)-1
}

func (r *Register) at(i int) byte {
	return r.state[(r.head+i)%len(r.state)]
}

// Next advances the register one step and returns the feedback bit.
func (r *Register) Next() byte {
	n := len(r.state)
	var fb byte
	if r.at(n-1) != r.at(r.tap) {
		fb = 1
	}
	// The slot holding the first bit becomes the last after head moves.
	r.state[r.head] = fb
	r.head = (r.head + 1) % n
	return fb
}

// Fill advances the register once for every element of dst, storing each output bit.
func (r *Register) Fill(dst bitvec.Bits) {
	for i := range dst {
		dst[i] = r.Next()
	}
}

// NextInt advances the register width times and returns the output as a big-endian integer.
func (r *Register) NextInt(width int) uint64 {
	var n uint64
	for i := 0; i < width; i++ {
		n = n<<1 | uint64(r.Next())
	}
	return n
}

// State returns a snapshot of the register contents, first position first.
func (r *Register) State() bitvec.Bits {
	out := make(bitvec.Bits, len(r.state))
	for i := range out {
		out[i] = r.at(i)
	}
	return out
}

// Reset restores the register to its original seed.
func (r *Register) Reset() {
	copy(r.state, r.seed)
	r.head = 0
}
