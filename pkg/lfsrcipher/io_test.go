package lfsrcipher

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/saylorsolutions/lfsrcrypt/pkg/bitvec"
	"github.com/saylorsolutions/lfsrcrypt/pkg/lfsr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadWrite(t *testing.T) {
	data := "AStringWithSomeText"
	seed := bitvec.Bits{1, 1, 0, 0, 1, 0, 1, 0}
	var output strings.Builder

	in, err := NewReader(strings.NewReader(data), seed, 3)
	assert.NoError(t, err)
	assert.NotNil(t, in)

	out, err := NewWriter(&output, seed, 3)
	assert.NoError(t, err)
	assert.NotNil(t, out)

	expectedLen := int64(len(data))
	n, err := io.Copy(out, in)
	assert.NoError(t, err)
	assert.Equal(t, expectedLen, n)
	assert.Equal(t, data, output.String())
}

func TestReader_MatchesEncrypt(t *testing.T) {
	seed := bitvec.Bits{1, 0, 1, 1, 0}
	r, err := NewReader(strings.NewReader("HelloWorld"), seed, 2)
	require.NoError(t, err)

	// Small reads should continue the keystream across calls.
	var out bytes.Buffer
	buf := make([]byte, 3)
	for {
		n, err := r.Read(buf)
		out.Write(buf[:n])
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
	}
	assert.Equal(t, "gNMRSLmM20", out.String())
}

func TestWriter_Reset(t *testing.T) {
	var (
		outA bytes.Buffer
		outB bytes.Buffer
		in   = []byte("HelloWorld")
		seed = bitvec.Bits{1, 0, 1, 1, 0}
	)
	w, err := NewWriter(&outA, seed, 2)
	assert.NoError(t, err)
	n, err := w.Write(in)
	assert.NoError(t, err)
	assert.Equal(t, 10, n)
	assert.Equal(t, "gNMRSLmM20", outA.String())

	w.Reset(&outB)
	n, err = w.Write(in)
	assert.NoError(t, err)
	assert.Equal(t, 10, n)
	assert.Equal(t, "gNMRSLmM20", outB.String())
}

func TestReader_Reset(t *testing.T) {
	var (
		outA = make([]byte, 10)
		outB = make([]byte, 10)
		seed = bitvec.Bits{1, 0, 1, 1, 0}
	)
	r, err := NewReader(strings.NewReader("gNMRSLmM20"), seed, 2)
	assert.NoError(t, err)
	n, err := r.Read(outA)
	assert.NoError(t, err)
	assert.Equal(t, 10, n)
	assert.Equal(t, "HelloWorld", string(outA))

	r.Reset(strings.NewReader("gNMRSLmM20"))
	n, err = r.Read(outB)
	assert.NoError(t, err)
	assert.Equal(t, 10, n)
	assert.Equal(t, "HelloWorld", string(outB))
}

func TestReader_InvalidSymbol(t *testing.T) {
	r, err := NewReader(strings.NewReader("AB!C"), bitvec.Bits{1, 0, 1, 1, 0}, 2)
	require.NoError(t, err)
	buf := make([]byte, 4)
	n, err := r.Read(buf)
	assert.ErrorIs(t, err, bitvec.ErrInvalidSymbol)
	assert.Equal(t, 2, n)

	// The error sticks until Reset.
	n, err = r.Read(buf)
	assert.ErrorIs(t, err, bitvec.ErrInvalidSymbol)
	assert.Equal(t, 0, n)

	r.Reset(strings.NewReader("gNMRSLmM20"))
	out := make([]byte, 10)
	n, err = r.Read(out)
	require.NoError(t, err)
	assert.Equal(t, 10, n)
	assert.Equal(t, "HelloWorld", string(out))
}

func TestWriter_InvalidSymbol(t *testing.T) {
	var out bytes.Buffer
	seed := bitvec.Bits{1, 0, 1, 1, 0}
	w, err := NewWriter(&out, seed, 2)
	require.NoError(t, err)
	n, err := w.Write([]byte("Hello World"))
	assert.ErrorIs(t, err, bitvec.ErrInvalidSymbol)
	assert.Equal(t, 0, n)
	assert.Equal(t, 0, out.Len())

	// The keystream shouldn't have advanced.
	_, err = w.Write([]byte("HelloWorld"))
	require.NoError(t, err)
	assert.Equal(t, "gNMRSLmM20", out.String())
}

func TestNewReaderWriter_Neg(t *testing.T) {
	_, err := NewReader(strings.NewReader(""), nil, 0)
	assert.ErrorIs(t, err, lfsr.ErrEmptySeed)
	_, err = NewWriter(&bytes.Buffer{}, bitvec.Bits{1}, 1)
	assert.ErrorIs(t, err, lfsr.ErrTapOutOfRange)
}
