package bigfixed

// PowerOfTwoBound returns 2^(greatest_bit_position+1): for a
// non-negative v, the least power of two strictly greater than v. For
// a negative v the greatest bit position is its highest clear bit, so
// the result is at least |v| and equals |v| when v is a negative power
// of two. A cheap, division-free derived quantity: bit-counting rather
// than a transcendental computation.
func (v BigFixed[D]) PowerOfTwoBound() (BigFixed[D], *Error) {
	gbp := v.GreatestBitPosition()
	exponent, ierr := gbp.AddInt(1)
	if ierr != nil {
		return BigFixed[D]{}, wrapIndexError(ierr)
	}
	one := FromUint64[D](1)
	return one.Shift(exponent.Value())
}
