package lfsrcipher

import (
	"github.com/saylorsolutions/lfsrcrypt/pkg/bitvec"
	"github.com/saylorsolutions/lfsrcrypt/pkg/lfsr"
)

// Encrypt combines message with the keystream of an LFSR loaded with seed and tap.
// An empty message produces empty cipher text.
func Encrypt(message string, seed bitvec.Bits, tap int) (string, error) {
	return apply(message, seed, tap)
}

// Decrypt recovers the message from cipher text created by Encrypt with the same seed and tap.
func Decrypt(cipherText string, seed bitvec.Bits, tap int) (string, error) {
	return apply(cipherText, seed, tap)
}

// EncryptKey is Encrypt using the seed and tap in key.
func EncryptKey(message string, key lfsr.Key) (string, error) {
	return Encrypt(message, key.Seed, key.Tap)
}

// DecryptKey is Decrypt using the seed and tap in key.
func DecryptKey(cipherText string, key lfsr.Key) (string, error) {
	return Decrypt(cipherText, key.Seed, key.Tap)
}

func apply(text string, seed bitvec.Bits, tap int) (string, error) {
	textBits, err := bitvec.EncodeString(text)
	if err != nil {
		return "", err
	}
	keystream, err := lfsr.Keystream(seed, tap, len(textBits))
	if err != nil {
		return "", err
	}
	combined, err := bitvec.Xor(keystream, textBits)
	if err != nil {
		return "", err
	}
	return bitvec.DecodeBits(combined)
}
