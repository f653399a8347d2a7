package lfsrcipher

import (
	"bytes"
	"fmt"
	"io"

	"github.com/saylorsolutions/lfsrcrypt/pkg/bitvec"
)

// Reader extends io.Reader, but also provides a way to reuse a key with a different source.
type Reader interface {
	io.Reader
	// Reset will use the provided io.Reader and restore the keystream to the start of the seed.
	Reset(source io.Reader)
}

// Writer extends io.Writer, but also provides a way to reuse a key with a different target.
type Writer interface {
	io.Writer
	// Reset will use the provided io.Writer and restore the keystream to the start of the seed.
	Reset(target io.Writer)
}

var _ Reader = (*reader)(nil)

type reader struct {
	source io.Reader
	scr    *symbolScreen
	err    error
}

// Read screens every symbol read from the source.
// If a byte outside the Alphabet is read, then only the valid symbols before it are returned along with an error.
// The error is returned from every later Read until Reset is called, since the rest of the source can no longer line up with the keystream.
func (r *reader) Read(out []byte) (n int, err error) {
	if r.err != nil {
		return 0, r.err
	}
	n, err = r.source.Read(out)
	for i := 0; i < n; i++ {
		sym, serr := r.scr.screen(out[i])
		if serr != nil {
			r.err = serr
			return i, serr
		}
		out[i] = sym
	}
	return n, err
}

func (r *reader) Reset(source io.Reader) {
	r.source = source
	r.err = nil
	r.scr.reset()
}

// NewReader constructs a new Reader that will encrypt or decrypt all symbols read, using the provided seed and tap.
func NewReader(r io.Reader, seed bitvec.Bits, tap int) (Reader, error) {
	scr, err := newSymbolScreen(seed, tap)
	if err != nil {
		return nil, err
	}
	lReader := &reader{
		source: r,
		scr:    scr,
	}
	return lReader, nil
}

var _ Writer = (*writer)(nil)

type writer struct {
	target io.Writer
	scr    *symbolScreen
}

// NewWriter constructs a new Writer that will encrypt or decrypt all symbols written, using the provided seed and tap.
func NewWriter(target io.Writer, seed bitvec.Bits, tap int) (Writer, error) {
	scr, err := newSymbolScreen(seed, tap)
	if err != nil {
		return nil, err
	}
	lWriter := &writer{
		target: target,
		scr:    scr,
	}
	return lWriter, nil
}

// Write screens all of in before writing anything to the target.
// Nothing is written, and the keystream doesn't advance, if in contains a byte outside the Alphabet.
func (w *writer) Write(in []byte) (n int, err error) {
	for i := 0; i < len(in); i++ {
		if !bitvec.IsSymbol(rune(in[i])) {
			return 0, fmt.Errorf("%w: %q at position %d", bitvec.ErrInvalidSymbol, in[i], i)
		}
	}
	var buf bytes.Buffer
	buf.Grow(len(in))
	for i := 0; i < len(in); i++ {
		sym, err := w.scr.screen(in[i])
		if err != nil {
			return 0, err
		}
		buf.WriteByte(sym)
	}
	return w.target.Write(buf.Bytes())
}

func (w *writer) Reset(target io.Writer) {
	w.target = target
	w.scr.reset()
}
