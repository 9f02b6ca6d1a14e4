package bigfixed

import (
	"github.com/lookbusy1344/bigfixed/cutoff"
	"github.com/lookbusy1344/bigfixed/index"
)

// cutoffBit resolves a cutoff policy to the exact bit-granular Index
// at or above which bits survive: no limit, a hard fixed floor, a
// significand-width floating limit measured down from the value's own
// highest set bit, or the lower (looser) of both. Unlike CutoffIndex this
// never rounds down to a word boundary, so callers needing partial-word
// masking (Cutoff) get the real target bit rather than its containing
// word's first bit.
func (v BigFixed[D]) cutoffBit(c cutoff.Cutoff) (index.Index, *Error) {
	dbits := digitBits[D]()
	posBit, ierr := v.position.CastToBit(dbits)
	if ierr != nil {
		return index.Index{}, wrapIndexError(ierr)
	}
	switch {
	case c.Fixed == nil && c.Floating == nil:
		return posBit, nil
	case c.Fixed != nil && c.Floating == nil:
		fixedBit, ierr := c.Fixed.CastToBit(dbits)
		if ierr != nil {
			return index.Index{}, wrapIndexError(ierr)
		}
		return index.Max(posBit, fixedBit), nil
	case c.Fixed == nil && c.Floating != nil:
		floor, err := v.floatingFloor(*c.Floating)
		if err != nil {
			return index.Index{}, err
		}
		return index.Max(posBit, floor), nil
	default:
		fixedBit, ierr := c.Fixed.CastToBit(dbits)
		if ierr != nil {
			return index.Index{}, wrapIndexError(ierr)
		}
		byFixed := index.Max(posBit, fixedBit)
		floor, err := v.floatingFloor(*c.Floating)
		if err != nil {
			return index.Index{}, err
		}
		byFloating := index.Max(posBit, floor)
		return index.Min(byFixed, byFloating), nil
	}
}

// CutoffIndex resolves a cutoff policy to the single word-granular
// Position at or above which whole words survive untouched: the
// containing word of cutoffBit's result, floored. Cutoff itself does
// not call this: it works from cutoffBit directly and derives the
// containing word with the same floored cast.
func (v BigFixed[D]) CutoffIndex(c cutoff.Cutoff) (index.Index, *Error) {
	bit, err := v.cutoffBit(c)
	if err != nil {
		return index.Index{}, err
	}
	dbits := digitBits[D]()
	pos, ierr := bit.CastToPosition(dbits)
	if ierr != nil {
		return index.Index{}, wrapIndexError(ierr)
	}
	return index.Max(v.position, pos), nil
}

// floatingFloor computes greatest_bit_position - max(floating, Bit(0))
// as a Bit index, the bound a floating cutoff imposes on its own,
// before any rounding down to a containing word.
func (v BigFixed[D]) floatingFloor(floating index.Index) (index.Index, *Error) {
	zeroBit := index.BitAt(0)
	bound := index.Max(floating, zeroBit)
	gbp := v.GreatestBitPosition()
	asBit, ierr := gbp.Sub(bound)
	if ierr != nil {
		return index.Index{}, wrapIndexError(ierr)
	}
	return asBit, nil
}

// Cutoff applies a precision policy, dropping everything below the
// resolved cutoff bit and rounding the survivor according to
// c.Rounding. See cutoff.Rounding for the five modes; Ceiling scans
// the dropped range for any nonzero bit, Round looks only at the bit
// immediately below the cutoff, and TowardsZero/AwayFromZero dispatch
// to Floor or Ceiling based on sign.
func (v BigFixed[D]) Cutoff(c cutoff.Cutoff) (BigFixed[D], *Error) {
	fv, err := v.fixPosition()
	if err != nil {
		return BigFixed[D]{}, err
	}
	if c.IsNone() {
		return fv, nil
	}

	dbits := digitBits[D]()
	asBit, err := fv.cutoffBit(c)
	if err != nil {
		return BigFixed[D]{}, err
	}
	asPos, ierr := asBit.CastToPosition(dbits)
	if ierr != nil {
		return BigFixed[D]{}, wrapIndexError(ierr)
	}

	increment, err := fv.decideIncrement(c.Rounding, asBit, asPos)
	if err != nil {
		return BigFixed[D]{}, err
	}

	body := fv.body
	if asPos.Cmp(fv.position) > 0 {
		drop := int(asPos.Value() - fv.position.Value())
		if drop > len(body) {
			drop = len(body)
		}
		body = body[drop:]
	}
	nv := BigFixed[D]{head: fv.head, body: append([]D(nil), body...), position: index.Max(asPos, fv.position)}

	excess64, ierr := asBit.BitPositionExcess(dbits)
	if ierr != nil {
		return BigFixed[D]{}, wrapIndexError(ierr)
	}
	excess := int(excess64)
	if excess > 0 {
		nv, err = nv.ensureValidPosition(asPos)
		if err != nil {
			return BigFixed[D]{}, err
		}
		body = append([]D(nil), nv.body...)
		idx := int(asPos.Value() - nv.position.Value())
		var z D
		mask := z.AllOnes().Shl(excess)
		body[idx] = body[idx].And(mask)
		nv = BigFixed[D]{head: nv.head, body: body, position: nv.position}
	}

	if increment {
		var z D
		incremented, err := nv.AddDigit(asBit, z.One())
		if err != nil {
			return BigFixed[D]{}, err
		}
		nv = incremented
	}
	return nv.format(), nil
}

// decideIncrement reports whether rounding mode r, given the exact
// bit-granular cutoff asBit (and its containing word asPos), demands
// bumping the survivor up by one ULP at asBit.
func (v BigFixed[D]) decideIncrement(r cutoff.Rounding, asBit, asPos index.Index) (bool, *Error) {
	switch r {
	case cutoff.Floor:
		return false, nil
	case cutoff.Round:
		below, ierr := asBit.SubInt(1)
		if ierr != nil {
			return false, wrapIndexError(ierr)
		}
		bit, err := v.At(below)
		if err != nil {
			return false, err
		}
		return !bit.IsZero(), nil
	case cutoff.Ceiling:
		dbits := digitBits[D]()
		posBit, ierr := v.position.CastToBit(dbits)
		if ierr != nil {
			return false, wrapIndexError(ierr)
		}
		if posBit.Cmp(asBit) >= 0 {
			return false, nil
		}
		hasValue := false
		for pv := v.position.Value(); pv < asPos.Value(); pv++ {
			if !v.digitAt(index.Pos(pv)).IsZero() {
				hasValue = true
				break
			}
		}
		excess64, ierr := asBit.BitPositionExcess(dbits)
		if ierr != nil {
			return false, wrapIndexError(ierr)
		}
		if excess64 > 0 {
			var z D
			word := v.digitAt(asPos)
			masked := word.And(z.AllOnes().Shr(dbits - int(excess64)))
			if !masked.IsZero() {
				hasValue = true
			}
		}
		return hasValue, nil
	case cutoff.TowardsZero:
		// Dropping bits always truncates toward -infinity (floor); for
		// a negative value that increases magnitude, so pulling the
		// result back up (Ceiling) is what actually lands "towards
		// zero". A positive value's floor already is towards zero.
		if v.IsNegative() {
			return v.decideIncrement(cutoff.Ceiling, asBit, asPos)
		}
		return v.decideIncrement(cutoff.Floor, asBit, asPos)
	case cutoff.AwayFromZero:
		if v.IsNegative() {
			return v.decideIncrement(cutoff.Floor, asBit, asPos)
		}
		return v.decideIncrement(cutoff.Ceiling, asBit, asPos)
	default:
		return false, errorf(KindRoundingUnsupported, "unknown rounding mode %v", r)
	}
}

// IndexCutoffResult simulates reading the word at `at` after applying
// cutoff c, without mutating v. Because BigFixed methods are already
// value-semantic (Cutoff returns a new value rather than mutating in
// place), this is simply Cutoff followed by At: no separate simulation
// of the round-up carry chain is needed, the real Cutoff already
// computes it.
func (v BigFixed[D]) IndexCutoffResult(c cutoff.Cutoff, at index.Index) (D, *Error) {
	cut, err := v.Cutoff(c)
	if err != nil {
		var z D
		return z, err
	}
	return cut.At(at)
}
