package bitvec

const (
	// Alphabet is the symbol table for text moving through the cipher.
	// The order is significant: a symbol's position is its 6-bit value.
	Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"
	// GroupWidth is the number of bits needed to represent one Alphabet symbol.
	GroupWidth = 6
)

// symbolIndex maps a byte to its Alphabet position, or -1.
var symbolIndex = func() [256]int8 {
	var idx [256]int8
	for i := range idx {
		idx[i] = -1
	}
	// Walk backwards so the first occurrence wins.
	for i := len(Alphabet) - 1; i >= 0; i-- {
		idx[Alphabet[i]] = int8(i)
	}
	return idx
}()

// IndexOf returns the Alphabet position of r, and false if r isn't in the Alphabet.
func IndexOf(r rune) (int, bool) {
	if r < 0 || r > 0xff {
		return -1, false
	}
	i := symbolIndex[r]
	if i < 0 {
		return -1, false
	}
	return int(i), true
}

// IsSymbol reports whether r is in the Alphabet.
func IsSymbol(r rune) bool {
	_, ok := IndexOf(r)
	return ok
}
