/*
Package lfsr provides a single tap Linear Feedback Shift Register used to generate keystreams for the LFSR stream cipher.

# How it works:

A Register is loaded with a seed of N bits and a tap index k in [0, N-1].
Each step compares the last bit of the register with the bit at the tap.
The feedback bit is 0 when they match and 1 when they don't, which is the XOR of the two positions.
The feedback bit is emitted as keystream output, the first bit of the register is dropped, and the feedback bit is appended to the end.

The same seed and tap always produce the same keystream, which is what makes decryption possible.

# Important note:

When k is N-1, the register compares its last bit with itself, so the keystream is all zeros and text passes through unchanged.
This tap is still accepted for compatibility, but Degenerate reports it, and GenKey will never produce it.

# General guidelines:
  - An LFSR keystream is NOT cryptographically secure. It's trivially recovered from known plain text, so treat this as obfuscation.
  - Longer seeds produce longer periods before the keystream repeats.
  - Never reuse a Key for two different messages if you care about them staying hidden from each other.
*/
package lfsr
