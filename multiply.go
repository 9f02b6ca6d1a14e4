package bigfixed

import (
	"github.com/lookbusy1344/bigfixed/cutoff"
	"github.com/lookbusy1344/bigfixed/digit"
)

// addCarryAt ripples d into body starting at word index pos, the same
// carry-propagation loop AddDigitDropOverflow uses, specialized to a
// raw slice sized with enough headroom that the chain always
// terminates inside it.
func addCarryAt[D digit.Digit[D]](body []D, pos int, d D) {
	carry := d
	for pos < len(body) {
		sum, c := body[pos].CombinedAdd(carry)
		body[pos] = sum
		carry = c
		if carry.IsZero() {
			return
		}
		pos++
	}
}

// mulMagnitude computes the exact unsigned schoolbook product of two
// little-endian magnitude word slices: for every cross term a[i]*b[j]
// it adds the low half at i+j and the high half at i+j+1, each via a
// full carry-propagation chain, so no cross-term carry is ever
// dropped. The result is exactly len(a)+len(b) words, which is always
// enough to hold the full product of two magnitudes of that length.
func mulMagnitude[D digit.Digit[D]](a, b []D) []D {
	result := make([]D, len(a)+len(b))
	for i, ai := range a {
		if ai.IsZero() {
			continue
		}
		for j, bj := range b {
			lo, hi := ai.CombinedMul(bj)
			addCarryAt(result, i+j, lo)
			if !hi.IsZero() {
				addCarryAt(result, i+j+1, hi)
			}
		}
	}
	return result
}

// Multiply computes a*b exactly via schoolbook multiplication of the
// two operands' absolute magnitudes, with the sign reattached by
// two's-complement negation afterward, rather than sign-extending a
// factor's body. If c is not cutoff.None, the exact product is
// truncated afterward via
// Cutoff; Ceiling and AwayFromZero rounding are not supported here
// and report KindRoundingUnsupported before any product is computed.
func Multiply[D digit.Digit[D]](a, b BigFixed[D], c cutoff.Cutoff) (BigFixed[D], *Error) {
	if !c.IsNone() && (c.Rounding == cutoff.Ceiling || c.Rounding == cutoff.AwayFromZero) {
		return BigFixed[D]{}, errorf(KindRoundingUnsupported, "multiply: rounding mode %v unsupported", c.Rounding)
	}

	negative := a.IsNegative() != b.IsNegative()
	aAbs, err := a.Abs()
	if err != nil {
		return BigFixed[D]{}, err
	}
	bAbs, err := b.Abs()
	if err != nil {
		return BigFixed[D]{}, err
	}

	magBody := mulMagnitude(aAbs.body, bAbs.body)
	posSum, ierr := aAbs.position.Add(bAbs.position)
	if ierr != nil {
		return BigFixed[D]{}, wrapIndexError(ierr)
	}
	var z D
	mag := BigFixed[D]{head: z.Zero(), body: magBody, position: posSum}.format()

	result := mag
	if negative {
		result, err = mag.Negate()
		if err != nil {
			return BigFixed[D]{}, err
		}
	}

	if !c.IsNone() {
		result, err = result.Cutoff(c)
		if err != nil {
			return BigFixed[D]{}, err
		}
	}
	return result, nil
}
