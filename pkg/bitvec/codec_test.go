package bitvec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlphabet(t *testing.T) {
	assert.Len(t, Alphabet, 64)
	for i, r := range Alphabet {
		idx, ok := IndexOf(r)
		assert.True(t, ok)
		assert.Equal(t, i, idx)
	}
	assert.False(t, IsSymbol('!'))
	assert.False(t, IsSymbol('='))
	assert.False(t, IsSymbol('é'))
	assert.False(t, IsSymbol(-1))
}

func TestSymbolToBits(t *testing.T) {
	tests := map[rune]Bits{
		'A': {0, 0, 0, 0, 0, 0},
		'B': {0, 0, 0, 0, 0, 1},
		'a': {0, 1, 1, 0, 1, 0},
		'0': {1, 1, 0, 1, 0, 0},
		'/': {1, 1, 1, 1, 1, 1},
	}
	for sym, expected := range tests {
		t.Run(string(sym), func(t *testing.T) {
			group, err := SymbolToBits(sym)
			require.NoError(t, err)
			assert.Equal(t, expected, group)

			back, err := BitsToSymbol(group)
			require.NoError(t, err)
			assert.Equal(t, byte(sym), back)
		})
	}
}

func TestSymbolToBits_Neg(t *testing.T) {
	_, err := SymbolToBits('!')
	assert.ErrorIs(t, err, ErrInvalidSymbol)
}

func TestBitsToSymbol_Neg(t *testing.T) {
	_, err := BitsToSymbol(Bits{1, 0, 1})
	assert.ErrorIs(t, err, ErrInvalidBitGroupLength)
	_, err = BitsToSymbol(Bits{1, 0, 1, 0, 1, 0, 1})
	assert.ErrorIs(t, err, ErrInvalidBitGroupLength)
	_, err = BitsToSymbol(Bits{1, 0, 1, 0, 1, 3})
	assert.ErrorIs(t, err, ErrInvalidBit)
}

func TestIntToBits(t *testing.T) {
	b, err := IntToBits(5, 6)
	require.NoError(t, err)
	assert.Equal(t, Bits{0, 0, 0, 1, 0, 1}, b)

	b, err = IntToBits(0, 0)
	require.NoError(t, err)
	assert.Len(t, b, 0)

	b, err = IntToBits(1<<63, 64)
	require.NoError(t, err)
	assert.Len(t, b, 64)
	assert.Equal(t, byte(1), b[0])

	_, err = IntToBits(64, 6)
	assert.ErrorIs(t, err, ErrOverflow)
	_, err = IntToBits(1, 0)
	assert.ErrorIs(t, err, ErrOverflow)
	_, err = IntToBits(1, -1)
	assert.ErrorIs(t, err, ErrOverflow)
}

func TestBitsToInt(t *testing.T) {
	n, err := BitsToInt(Bits{1, 0, 1, 1, 0})
	require.NoError(t, err)
	assert.Equal(t, uint64(22), n)

	n, err = BitsToInt(nil)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), n)

	long := make(Bits, 100)
	long[99] = 1
	n, err = BitsToInt(long)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), n)

	long[30] = 1
	_, err = BitsToInt(long)
	assert.ErrorIs(t, err, ErrOverflow)
}

func TestEncodeDecode(t *testing.T) {
	tests := []string{
		"",
		"A",
		"HelloWorld",
		"Attack+at+dawn/0123456789",
		Alphabet,
	}
	for _, s := range tests {
		t.Run(s, func(t *testing.T) {
			b, err := EncodeString(s)
			require.NoError(t, err)
			assert.Len(t, b, len(s)*GroupWidth)

			decoded, err := DecodeBits(b)
			require.NoError(t, err)
			assert.Equal(t, s, decoded)
		})
	}
}

func TestEncodeString_Neg(t *testing.T) {
	b, err := EncodeString("A!B")
	assert.ErrorIs(t, err, ErrInvalidSymbol)
	assert.Nil(t, b)
}

func TestDecodeBits_Neg(t *testing.T) {
	_, err := DecodeBits(Bits{0, 0, 0, 0, 0, 0, 1})
	assert.ErrorIs(t, err, ErrInvalidBitGroupLength)
}
