// Package digit implements the fixed-width word abstraction bigfixed
// builds its arbitrary-precision body from, plus the DoubleDigit
// combinator that doubles a digit's width by composing two of them.
package digit

// Digit is the capability set a fixed-width word type must provide to
// serve as the element type of a BigFixed body. D is the concrete
// implementing type itself (Word8, Word16, Word32, Word64, or a
// DoubleDigit[D] built from one of those) — a self-referencing
// constraint, so DoubleDigit[D] can in turn satisfy Digit[DoubleDigit[D]].
type Digit[D any] interface {
	// Bits returns the width of this digit type in bits.
	Bits() int

	Zero() D
	One() D
	AllOnes() D

	IsZero() bool

	Not() D
	And(y D) D
	Or(y D) D
	Xor(y D) D

	// Shl and Shr shift left/right by n bits, n in [0, Bits()]; shifting
	// by Bits() or more yields Zero().
	Shl(n int) D
	Shr(n int) D

	// Add and Sub wrap silently on overflow/underflow, matching the
	// word's native modular arithmetic. Combined* variants expose the
	// carry/high half that wrapping arithmetic alone discards.
	Add(y D) D
	Sub(y D) D
	Mul(y D) D
	Neg() D

	// CombinedAdd returns the wrapped sum and the carry-out, which is
	// Zero() or One().
	CombinedAdd(y D) (lo D, carry D)
	// CombinedMul returns the low and high halves of the full,
	// non-truncated product.
	CombinedMul(y D) (lo D, hi D)

	// Cmp compares two digits as unsigned words: -1, 0, or 1.
	Cmp(y D) int

	LeadingZeros() int
	LeadingOnes() int
	TrailingZeros() int
	TrailingOnes() int

	// Uint64 widens this digit's unsigned value into a uint64. Only
	// meaningful for digit widths of 64 bits or narrower; DoubleDigit
	// values wider than 64 bits are truncated to their low 64 bits.
	Uint64() uint64

	// FromUint64 builds a digit from the low Bits() bits of u, silently
	// dropping any higher bits. Called on a zero value the way Zero/One/
	// AllOnes are, e.g. `var z D; z.FromUint64(5)`.
	FromUint64(u uint64) D

	// Bytes returns this digit's little-endian byte encoding. Length is
	// always Bits()/8 (digit widths are always a whole number of bytes).
	Bytes() []byte
	// FromBytesLE decodes a digit from a little-endian byte slice of
	// length Bits()/8, the inverse of Bytes.
	FromBytesLE(b []byte) D
}
