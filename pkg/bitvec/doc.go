/*
Package bitvec provides the bit level substrate for the LFSR stream cipher.

Text is restricted to a fixed 64 symbol Alphabet (the standard Base64 characters), and every symbol maps to a 6-bit group, most significant bit first.
A string becomes a flat Bits stream by concatenating the groups of its symbols in order, and a stream whose length is a multiple of 6 decodes back into a string.

Bits holds one element per bit, and every element must be 0 or 1.
This is wasteful compared to packed bytes, but it keeps positional operations (like tapping a register) trivial and readable.
*/
package bitvec
