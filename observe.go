package bigfixed

import (
	"github.com/lookbusy1344/bigfixed/digit"
	"github.com/lookbusy1344/bigfixed/index"
)

// IsZero reports whether v is the canonical zero value.
func (v BigFixed[D]) IsZero() bool {
	return len(v.body) == 0 && v.head.IsZero()
}

// Sign returns -1, 0, or 1.
func (v BigFixed[D]) Sign() int {
	if v.IsZero() {
		return 0
	}
	if v.IsNegative() {
		return -1
	}
	return 1
}

// GreatestBitPosition returns the Bit index of the highest bit that
// differs from the sign-extension head: the highest set bit for a
// non-negative value, the highest clear bit for a negative one. For
// the values with no such bit (zero, or exactly -1) it returns the Bit
// one below the value's own position, signaling "no significant bits".
func (v BigFixed[D]) GreatestBitPosition() index.Index {
	dbits := digitBits[D]()
	for i := len(v.body) - 1; i >= 0; i-- {
		w := v.body[i]
		if digitsEqual(w, v.head) {
			continue
		}
		var bitInWord int
		if v.head.IsZero() {
			bitInWord = dbits - 1 - w.LeadingZeros()
		} else {
			bitInWord = dbits - 1 - w.LeadingOnes()
		}
		p, err := v.position.AddInt(int64(i))
		if err != nil {
			panic(err)
		}
		bitPos, ierr := p.CastToBit(dbits)
		if ierr != nil {
			panic(ierr)
		}
		result, err := bitPos.AddInt(int64(bitInWord))
		if err != nil {
			panic(err)
		}
		return result
	}
	bitPos, ierr := v.position.CastToBit(dbits)
	if ierr != nil {
		panic(ierr)
	}
	result, err := bitPos.AddInt(-1)
	if err != nil {
		panic(err)
	}
	return result
}

// Cmp returns -1, 0, or 1 comparing a and b's represented values.
// Values sharing a sign are compared word-by-word from the top of
// their combined range down, the standard two's-complement trick of
// treating equal-signed magnitudes as unsigned once the sign bits
// themselves are known equal.
func Cmp[D digit.Digit[D]](a, b BigFixed[D]) int {
	aNeg, bNeg := a.IsNegative(), b.IsNegative()
	if aNeg != bNeg {
		if aNeg {
			return -1
		}
		return 1
	}

	lo := index.Min(a.position, b.position)
	hi := index.Max(a.bodyHigh(), b.bodyHigh())
	for pv := hi.Value() - 1; pv >= lo.Value(); pv-- {
		p := index.Pos(pv)
		c := a.digitAt(p).Cmp(b.digitAt(p))
		if c != 0 {
			return c
		}
	}
	return 0
}

// Equal reports whether a and b represent the same value.
func Equal[D digit.Digit[D]](a, b BigFixed[D]) bool {
	return FullEq(a, b)
}
