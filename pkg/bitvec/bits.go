package bitvec

import (
	"fmt"
	"strings"
)

// Bits is an ordered sequence of bits, one element per bit.
type Bits []byte

// ParseBits reads a string of '0' and '1' characters.
// Spaces and underscores are ignored, so "1011_0110" and "1011 0110" are both accepted.
func ParseBits(s string) (Bits, error) {
	out := make(Bits, 0, len(s))
	for i, c := range s {
		switch c {
		case '0':
			out = append(out, 0)
		case '1':
			out = append(out, 1)
		case ' ', '_':
		default:
			return nil, fmt.Errorf("%w: unexpected character %q at position %d", ErrInvalidBit, c, i)
		}
	}
	return out, nil
}

// String renders the sequence as '0' and '1' characters.
func (b Bits) String() string {
	var sb strings.Builder
	sb.Grow(len(b))
	for _, bit := range b {
		if bit == 0 {
			sb.WriteByte('0')
		} else {
			sb.WriteByte('1')
		}
	}
	return sb.String()
}

// Validate ensures that every element is either 0 or 1.
func (b Bits) Validate() error {
	for i, bit := range b {
		if bit > 1 {
			return fmt.Errorf("%w: found %d at position %d", ErrInvalidBit, bit, i)
		}
	}
	return nil
}

// Clone returns a copy that doesn't share storage with b.
func (b Bits) Clone() Bits {
	if b == nil {
		return nil
	}
	out := make(Bits, len(b))
	copy(out, b)
	return out
}

// Xor combines two sequences of the same length bit by bit.
// Neither input is modified.
func Xor(a, b Bits) (Bits, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(a), len(b))
	}
	out := make(Bits, len(a))
	for i := range a {
		if a[i] != b[i] {
			out[i] = 1
		}
	}
	return out, nil
}
