/*
Package lfsrcipher provides a symmetric stream cipher over text using an LFSR keystream.

Note that this is NOT strong encryption.
An LFSR keystream is easily recovered from a known piece of plain text, so this falls squarely under the obfuscation category.
As such, it is NOT recommended for security critical use.

# How it works:

A message made of Alphabet symbols (A-Z, a-z, 0-9, +, /) is encoded into a bit stream of 6 bits per symbol.
A keystream of the same length is generated from a seed and tap with an LFSR, and the two are combined with XOR.
The resulting bit stream is decoded back to Alphabet symbols, so cipher text is always the same length as the message and uses the same symbols.

Decrypt is the same operation as Encrypt, since applying the same keystream twice cancels it out.

# Important note:

The same seed and tap must be provided to accurately reverse the process.
There is no integrity check, so decrypting with the wrong seed or tap silently produces garbled text rather than an error.

# Streaming:

Reader and Writer apply the same transformation to symbols as they pass through, continuing the keystream across calls.
Use Reset to start again from the seed with a different source or target.
*/
package lfsrcipher
