package lfsr

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	bin "github.com/saylorsolutions/binmap"
	"github.com/saylorsolutions/lfsrcrypt/pkg/bitvec"
	"gopkg.in/yaml.v3"
)

const (
	keyFormatVersion uint8 = 1
	// MaxSeedLen limits the seed size accepted when reading a serialized Key.
	MaxSeedLen = 1 << 16
)

var (
	keyMagic = [4]byte{'L', 'F', 'S', 'R'}
)

// Key is everything needed to reproduce a keystream: the seed register contents and the tap index.
type Key struct {
	Seed bitvec.Bits
	Tap  int
}

// NewKey validates and copies the given seed and tap into a Key.
func NewKey(seed bitvec.Bits, tap int) (Key, error) {
	key := Key{Seed: seed.Clone(), Tap: tap}
	if err := key.Validate(); err != nil {
		return Key{}, err
	}
	return key, nil
}

// ParseKey creates a Key from a seed written as '0' and '1' characters.
func ParseKey(seed string, tap int) (Key, error) {
	bits, err := bitvec.ParseBits(seed)
	if err != nil {
		return Key{}, fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}
	return NewKey(bits, tap)
}

// Validate checks the seed and tap against the same rules as NewRegister.
func (k Key) Validate() error {
	return validate(k.Seed, k.Tap)
}

// Degenerate reports whether this Key produces an all zero keystream.
func (k Key) Degenerate() bool {
	return len(k.Seed) > 0 && k.Tap == len(k.Seed)-1
}

// Register creates a new Register loaded with this Key.
func (k Key) Register() (*Register, error) {
	return NewRegister(k.Seed, k.Tap)
}

// Keystream is shorthand for calling Keystream with this Key's seed and tap.
func (k Key) Keystream(length int) (bitvec.Bits, error) {
	return Keystream(k.Seed, k.Tap, length)
}

func (k Key) String() string {
	return fmt.Sprintf("[%d,%d] %s", len(k.Seed), k.Tap, k.Seed)
}

type keyHeader struct {
	version uint8
	tap     uint64
	seedLen uint64
}

func (h *keyHeader) mapper() bin.Mapper {
	return bin.MapSequence(
		bin.Byte(&h.version),
		bin.Int(&h.tap),
		bin.Int(&h.seedLen),
	)
}

// WriteKey writes the binary form of key to w.
// The format is a magic string, a header with the tap and seed length, then the seed packed 8 bits per byte.
func WriteKey(w io.Writer, key Key) error {
	if err := key.Validate(); err != nil {
		return err
	}
	if _, err := w.Write(keyMagic[:]); err != nil {
		return err
	}
	h := &keyHeader{
		version: keyFormatVersion,
		tap:     uint64(key.Tap),
		seedLen: uint64(len(key.Seed)),
	}
	if err := h.mapper().Write(w, binary.BigEndian); err != nil {
		return err
	}
	_, err := w.Write(packBits(key.Seed))
	return err
}

// ReadKey reads a Key in the format written by WriteKey.
func ReadKey(r io.Reader) (Key, error) {
	var magic [4]byte
	if _, err := io.ReadFull(r, magic[:]); err != nil {
		return Key{}, fmt.Errorf("%w: failed to read magic bytes: %v", ErrInvalidKey, err)
	}
	if magic != keyMagic {
		return Key{}, fmt.Errorf("%w: unrecognized magic bytes", ErrInvalidKey)
	}
	h := new(keyHeader)
	if err := h.mapper().Read(r, binary.BigEndian); err != nil {
		return Key{}, fmt.Errorf("%w: failed to read header: %v", ErrInvalidKey, err)
	}
	if h.version != keyFormatVersion {
		return Key{}, fmt.Errorf("%w: unsupported version %d", ErrInvalidKey, h.version)
	}
	if h.seedLen == 0 || h.seedLen > MaxSeedLen {
		return Key{}, fmt.Errorf("%w: seed length %d", ErrInvalidKey, h.seedLen)
	}
	if h.tap >= h.seedLen {
		return Key{}, fmt.Errorf("%w: tap %d for seed of len %d", ErrTapOutOfRange, h.tap, h.seedLen)
	}
	packed := make([]byte, (h.seedLen+7)/8)
	if _, err := io.ReadFull(r, packed); err != nil {
		return Key{}, fmt.Errorf("%w: failed to read seed: %v", ErrInvalidKey, err)
	}
	return NewKey(unpackBits(packed, int(h.seedLen)), int(h.tap))
}

func (k Key) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteKey(&buf, k); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (k *Key) UnmarshalBinary(data []byte) error {
	key, err := ReadKey(bytes.NewReader(data))
	if err != nil {
		return err
	}
	*k = key
	return nil
}

type keyDoc struct {
	Seed string `yaml:"seed"`
	Tap  int    `yaml:"tap"`
}

func (k Key) MarshalYAML() (any, error) {
	if err := k.Validate(); err != nil {
		return nil, err
	}
	return keyDoc{Seed: k.Seed.String(), Tap: k.Tap}, nil
}

func (k *Key) UnmarshalYAML(node *yaml.Node) error {
	var doc keyDoc
	if err := node.Decode(&doc); err != nil {
		return err
	}
	key, err := ParseKey(doc.Seed, doc.Tap)
	if err != nil {
		return err
	}
	*k = key
	return nil
}

// packBits packs bits MSB first, zero padding the final byte.
func packBits(bits bitvec.Bits) []byte {
	out := make([]byte, (len(bits)+7)/8)
	for i, bit := range bits {
		if bit != 0 {
			out[i/8] |= 0x80 >> (i % 8)
		}
	}
	return out
}

func unpackBits(data []byte, n int) bitvec.Bits {
	out := make(bitvec.Bits, n)
	for i := range out {
		out[i] = (data[i/8] >> (7 - i%8)) & 1
	}
	return out
}
