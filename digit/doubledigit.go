package digit

// DoubleDigit composes two digits of width W into one digit of width
// 2*W, least-significant half first. Because Digit is self-referencing,
// DoubleDigit[D] itself satisfies Digit[DoubleDigit[D]] — nesting it
// again doubles the width again, recursively building arbitrarily wide
// words out of narrow ones.
type DoubleDigit[D Digit[D]] struct {
	Lo D
	Hi D
}

func zeroOf[D Digit[D]]() D {
	var z D
	return z.Zero()
}

func (DoubleDigit[D]) Bits() int {
	return 2 * zeroOf[D]().Bits()
}

func (DoubleDigit[D]) Zero() DoubleDigit[D] {
	z := zeroOf[D]()
	return DoubleDigit[D]{Lo: z, Hi: z}
}

func (DoubleDigit[D]) One() DoubleDigit[D] {
	z := zeroOf[D]()
	return DoubleDigit[D]{Lo: z.One(), Hi: z}
}

func (DoubleDigit[D]) AllOnes() DoubleDigit[D] {
	z := zeroOf[D]()
	return DoubleDigit[D]{Lo: z.AllOnes(), Hi: z.AllOnes()}
}

func (d DoubleDigit[D]) IsZero() bool {
	return d.Lo.IsZero() && d.Hi.IsZero()
}

func (d DoubleDigit[D]) Not() DoubleDigit[D] {
	return DoubleDigit[D]{Lo: d.Lo.Not(), Hi: d.Hi.Not()}
}

func (d DoubleDigit[D]) And(y DoubleDigit[D]) DoubleDigit[D] {
	return DoubleDigit[D]{Lo: d.Lo.And(y.Lo), Hi: d.Hi.And(y.Hi)}
}

func (d DoubleDigit[D]) Or(y DoubleDigit[D]) DoubleDigit[D] {
	return DoubleDigit[D]{Lo: d.Lo.Or(y.Lo), Hi: d.Hi.Or(y.Hi)}
}

func (d DoubleDigit[D]) Xor(y DoubleDigit[D]) DoubleDigit[D] {
	return DoubleDigit[D]{Lo: d.Lo.Xor(y.Lo), Hi: d.Hi.Xor(y.Hi)}
}

// Shl covers the four regimes a shift can fall into relative to the
// half-width W: no-op (n==0), a shift that moves bits across the
// lo/hi boundary (0<n<W), a shift that lands entirely in the high
// half (W<=n<2W), and a shift that clears everything (n>=2W).
func (d DoubleDigit[D]) Shl(n int) DoubleDigit[D] {
	w := d.Lo.Bits()
	switch {
	case n <= 0:
		return d
	case n < w:
		return DoubleDigit[D]{
			Lo: d.Lo.Shl(n),
			Hi: d.Hi.Shl(n).Or(d.Lo.Shr(w - n)),
		}
	case n < 2*w:
		z := zeroOf[D]()
		return DoubleDigit[D]{Lo: z, Hi: d.Lo.Shl(n - w)}
	default:
		return d.Zero()
	}
}

func (d DoubleDigit[D]) Shr(n int) DoubleDigit[D] {
	w := d.Lo.Bits()
	switch {
	case n <= 0:
		return d
	case n < w:
		return DoubleDigit[D]{
			Lo: d.Lo.Shr(n).Or(d.Hi.Shl(w - n)),
			Hi: d.Hi.Shr(n),
		}
	case n < 2*w:
		z := zeroOf[D]()
		return DoubleDigit[D]{Lo: d.Hi.Shr(n - w), Hi: z}
	default:
		return d.Zero()
	}
}

func (d DoubleDigit[D]) Add(y DoubleDigit[D]) DoubleDigit[D] {
	lo, carry := d.Lo.CombinedAdd(y.Lo)
	hi := d.Hi.Add(y.Hi).Add(carry)
	return DoubleDigit[D]{Lo: lo, Hi: hi}
}

func (d DoubleDigit[D]) Sub(y DoubleDigit[D]) DoubleDigit[D] {
	return d.Add(y.Neg())
}

// Mul returns the truncated product, mod 2^Bits(): the low half of the
// ordinary W-bit cross products, assembled schoolbook-style, dropping
// anything that would land above bit 2W.
func (d DoubleDigit[D]) Mul(y DoubleDigit[D]) DoubleDigit[D] {
	llLo, llHi := d.Lo.CombinedMul(y.Lo)
	cross1 := d.Lo.Mul(y.Hi)
	cross2 := d.Hi.Mul(y.Lo)
	hi := llHi.Add(cross1).Add(cross2)
	return DoubleDigit[D]{Lo: llLo, Hi: hi}
}

func (d DoubleDigit[D]) Neg() DoubleDigit[D] {
	return d.Not().Add(d.One())
}

// CombinedAdd adds the low halves first, producing a carry, then adds
// the high halves with that carry in; the overall carry-out is
// whichever of the two high-half additions actually overflowed (they
// cannot both overflow, since the true sum of two 2W-bit values
// carries at most one bit past bit 2W).
func (d DoubleDigit[D]) CombinedAdd(y DoubleDigit[D]) (lo DoubleDigit[D], carry DoubleDigit[D]) {
	loSum, c1 := d.Lo.CombinedAdd(y.Lo)
	midSum, c2a := d.Hi.CombinedAdd(y.Hi)
	hiSum, c2b := midSum.CombinedAdd(c1)
	carryBit := c2a.Add(c2b)
	z := zeroOf[D]()
	return DoubleDigit[D]{Lo: loSum, Hi: hiSum}, DoubleDigit[D]{Lo: carryBit, Hi: z}
}

// add3 sums three digits of the same width and returns the wrapped
// total plus the (0, 1, or 2) carry-out, used to assemble CombinedMul's
// limbs without losing carries between cross terms.
func add3[D Digit[D]](a, b, c D) (sum D, carry D) {
	s1, c1 := a.CombinedAdd(b)
	s2, c2 := s1.CombinedAdd(c)
	return s2, c1.Add(c2)
}

// CombinedMul assembles the full 4W-bit product of two 2W-bit digits
// out of the four W-by-W cross products (a FOIL decomposition): ll
// contributes the low limb and feeds its high half into the next limb,
// the two cross terms (lh, hl) land in the middle two limbs, and hh
// anchors the top.
func (d DoubleDigit[D]) CombinedMul(y DoubleDigit[D]) (lo DoubleDigit[D], hi DoubleDigit[D]) {
	llLo, llHi := d.Lo.CombinedMul(y.Lo)
	lhLo, lhHi := d.Lo.CombinedMul(y.Hi)
	hlLo, hlHi := d.Hi.CombinedMul(y.Lo)
	hhLo, hhHi := d.Hi.CombinedMul(y.Hi)

	r0 := llLo
	r1, carry1 := add3(llHi, lhLo, hlLo)
	r2mid, carry2a := add3(lhHi, hlHi, hhLo)
	r2, carry2b := r2mid.CombinedAdd(carry1)
	carry2 := carry2a.Add(carry2b)
	r3 := hhHi.Add(carry2)

	return DoubleDigit[D]{Lo: r0, Hi: r1}, DoubleDigit[D]{Lo: r2, Hi: r3}
}

func (d DoubleDigit[D]) Cmp(y DoubleDigit[D]) int {
	if c := d.Hi.Cmp(y.Hi); c != 0 {
		return c
	}
	return d.Lo.Cmp(y.Lo)
}

func (d DoubleDigit[D]) LeadingZeros() int {
	if d.Hi.IsZero() {
		return d.Hi.Bits() + d.Lo.LeadingZeros()
	}
	return d.Hi.LeadingZeros()
}

func (d DoubleDigit[D]) LeadingOnes() int {
	if d.Hi.Not().IsZero() {
		return d.Hi.Bits() + d.Lo.LeadingOnes()
	}
	return d.Hi.LeadingOnes()
}

func (d DoubleDigit[D]) TrailingZeros() int {
	if d.Lo.IsZero() {
		return d.Lo.Bits() + d.Hi.TrailingZeros()
	}
	return d.Lo.TrailingZeros()
}

func (d DoubleDigit[D]) TrailingOnes() int {
	if d.Lo.Not().IsZero() {
		return d.Lo.Bits() + d.Hi.TrailingOnes()
	}
	return d.Lo.TrailingOnes()
}

// Uint64 widens the low bits into a uint64, truncating: once Lo alone
// is 64 bits wide or more, only Lo's low 64 bits are returned and Hi is
// dropped, the same truncation the interface documents for over-wide
// digits.
func (d DoubleDigit[D]) Uint64() uint64 {
	w := d.Lo.Bits()
	if w >= 64 {
		return d.Lo.Uint64()
	}
	return (d.Hi.Uint64() << uint(w)) | d.Lo.Uint64()
}

// FromUint64 builds a DoubleDigit from the low bits of u: everything
// that fits lands in Lo, any remainder above Lo's width lands in Hi
// (zero once Lo's width already reaches or exceeds 64 bits).
func (DoubleDigit[D]) FromUint64(u uint64) DoubleDigit[D] {
	z := zeroOf[D]()
	w := z.Bits()
	lo := z.FromUint64(u)
	var hi D
	if w < 64 {
		hi = z.FromUint64(u >> uint(w))
	} else {
		hi = z
	}
	return DoubleDigit[D]{Lo: lo, Hi: hi}
}

// Bytes concatenates Lo's bytes followed by Hi's, matching the
// little-endian convention: the half holding the least significant
// bits is serialized first.
func (d DoubleDigit[D]) Bytes() []byte {
	return append(d.Lo.Bytes(), d.Hi.Bytes()...)
}

// FromBytesLE is the inverse of Bytes: the first half of b decodes Lo,
// the second half decodes Hi.
func (DoubleDigit[D]) FromBytesLE(b []byte) DoubleDigit[D] {
	z := zeroOf[D]()
	n := len(b) / 2
	return DoubleDigit[D]{Lo: z.FromBytesLE(b[:n]), Hi: z.FromBytesLE(b[n:])}
}
