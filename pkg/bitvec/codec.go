package bitvec

import (
	"fmt"
	"strings"
)

// SymbolToBits converts an Alphabet symbol to its 6-bit group.
func SymbolToBits(symbol rune) (Bits, error) {
	idx, ok := IndexOf(symbol)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSymbol, symbol)
	}
	return IntToBits(uint64(idx), GroupWidth)
}

// BitsToSymbol converts a 6-bit group back to its Alphabet symbol.
func BitsToSymbol(group Bits) (byte, error) {
	if len(group) != GroupWidth {
		return 0, fmt.Errorf("%w: expected %d bits, got %d", ErrInvalidBitGroupLength, GroupWidth, len(group))
	}
	n, err := BitsToInt(group)
	if err != nil {
		return 0, err
	}
	return Alphabet[n], nil
}

// IntToBits decomposes n into width bits, most significant bit first.
func IntToBits(n uint64, width int) (Bits, error) {
	if width < 0 {
		return nil, fmt.Errorf("%w: negative width %d", ErrOverflow, width)
	}
	if width < 64 && n >= 1<<uint(width) {
		return nil, fmt.Errorf("%w: %d needs more than %d bits", ErrOverflow, n, width)
	}
	out := make(Bits, width)
	for i := width - 1; i >= 0 && n > 0; i-- {
		out[i] = byte(n & 1)
		n >>= 1
	}
	return out, nil
}

// BitsToInt interprets b as an unsigned big-endian integer.
// Leading zeros are allowed in any amount, but at most 64 significant bits fit.
func BitsToInt(b Bits) (uint64, error) {
	if err := b.Validate(); err != nil {
		return 0, err
	}
	start := 0
	for start < len(b) && b[start] == 0 {
		start++
	}
	if len(b)-start > 64 {
		return 0, fmt.Errorf("%w: %d significant bits", ErrOverflow, len(b)-start)
	}
	var n uint64
	for _, bit := range b[start:] {
		n = n<<1 | uint64(bit)
	}
	return n, nil
}

// EncodeString concatenates the bit groups of every symbol in s.
// Nothing is returned if any symbol is outside the Alphabet.
func EncodeString(s string) (Bits, error) {
	out := make(Bits, 0, len(s)*GroupWidth)
	for i, r := range s {
		group, err := SymbolToBits(r)
		if err != nil {
			return nil, fmt.Errorf("position %d: %w", i, err)
		}
		out = append(out, group...)
	}
	return out, nil
}

// DecodeBits splits b into consecutive 6-bit groups and maps each to its symbol.
func DecodeBits(b Bits) (string, error) {
	if len(b)%GroupWidth != 0 {
		return "", fmt.Errorf("%w: %d is not a multiple of %d", ErrInvalidBitGroupLength, len(b), GroupWidth)
	}
	var sb strings.Builder
	sb.Grow(len(b) / GroupWidth)
	for i := 0; i < len(b); i += GroupWidth {
		sym, err := BitsToSymbol(b[i : i+GroupWidth])
		if err != nil {
			return "", err
		}
		sb.WriteByte(sym)
	}
	return sb.String(), nil
}
