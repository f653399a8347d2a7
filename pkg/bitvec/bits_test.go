package bitvec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBits(t *testing.T) {
	b, err := ParseBits("1011_0 1")
	require.NoError(t, err)
	assert.Equal(t, Bits{1, 0, 1, 1, 0, 1}, b)
	assert.Equal(t, "101101", b.String())

	b, err = ParseBits("")
	require.NoError(t, err)
	assert.Len(t, b, 0)
}

func TestParseBits_Neg(t *testing.T) {
	_, err := ParseBits("10201")
	assert.ErrorIs(t, err, ErrInvalidBit)
}

func TestBits_Validate(t *testing.T) {
	assert.NoError(t, Bits{0, 1, 1}.Validate())
	assert.NoError(t, Bits(nil).Validate())
	assert.ErrorIs(t, Bits{0, 2}.Validate(), ErrInvalidBit)
}

func TestBits_Clone(t *testing.T) {
	orig := Bits{1, 0, 1}
	cloned := orig.Clone()
	cloned[0] = 0
	assert.Equal(t, Bits{1, 0, 1}, orig)
	assert.Nil(t, Bits(nil).Clone())
}

func TestXor(t *testing.T) {
	a := Bits{1, 0, 1, 1, 0, 0}
	b := Bits{1, 1, 0, 1, 0, 1}
	c, err := Xor(a, b)
	require.NoError(t, err)
	assert.Equal(t, Bits{0, 1, 1, 0, 0, 1}, c)

	back, err := Xor(c, b)
	require.NoError(t, err)
	assert.Equal(t, a, back, "XOR with the same operand twice should be an involution")

	empty, err := Xor(Bits{}, Bits{})
	require.NoError(t, err)
	assert.Len(t, empty, 0)
}

func TestXor_Neg(t *testing.T) {
	_, err := Xor(Bits{1, 0}, Bits{1})
	assert.ErrorIs(t, err, ErrLengthMismatch)
}
