package bigfixed

import (
	"github.com/lookbusy1344/bigfixed/digit"
	"github.com/lookbusy1344/bigfixed/index"
)

// ensureValidRange returns a value whose body physically spans at
// least [low, high), padding with explicit zero words below the
// current position and explicit head words above the current
// bodyHigh as needed. The represented value is unchanged: those words
// already read as zero/head via digitAt's virtual lookup, this just
// makes them addressable by direct index for per-word loops.
func (v BigFixed[D]) ensureValidRange(low, high index.Index) BigFixed[D] {
	newLow := index.Min(low, v.position)
	curHigh := v.bodyHigh()
	newHigh := index.Max(high, curHigh)
	if newLow.Equal(v.position) && newHigh.Equal(curHigh) {
		return v
	}

	n := int(newHigh.Value() - newLow.Value())
	newBody := make([]D, n)
	for i := 0; i < n; i++ {
		p, err := newLow.AddInt(int64(i))
		if err != nil {
			panic(err)
		}
		newBody[i] = v.digitAt(p)
	}
	return BigFixed[D]{head: v.head, body: newBody, position: newLow}
}

// ensureValidPosition is ensureValidRange specialized to guarantee a
// single word position p is directly addressable, regardless of
// whether p falls below, within, or above the current body.
func (v BigFixed[D]) ensureValidPosition(p index.Index) (BigFixed[D], *Error) {
	high, err := p.AddInt(1)
	if err != nil {
		return BigFixed[D]{}, wrapIndexError(err)
	}
	return v.ensureValidRange(p, high), nil
}

// FullEq compares two values word-for-word over their combined range,
// unlike a plain struct comparison which only agrees for two values
// already in identical canonical form. Used directly by Equal.
func FullEq[D digit.Digit[D]](a, b BigFixed[D]) bool {
	if !digitsEqual(a.head, b.head) {
		return false
	}
	lo := index.Min(a.position, b.position)
	hi := index.Max(a.bodyHigh(), b.bodyHigh())
	n := int(hi.Value() - lo.Value())
	for i := 0; i < n; i++ {
		p, err := lo.AddInt(int64(i))
		if err != nil {
			panic(err)
		}
		if !digitsEqual(a.digitAt(p), b.digitAt(p)) {
			return false
		}
	}
	return true
}

// Shift moves the value's position by a signed bit offset: positive
// shifts left (multiplies by 2^by), negative shifts right. Unlike a
// plain word-array shift, this goes through fixPosition, so a shift
// that isn't a whole number of words produces a value whose position
// captures the fractional word offset exactly, with no bits lost.
func (v BigFixed[D]) Shift(byBits int64) (BigFixed[D], *Error) {
	dbits := digitBits[D]()
	posBit, ierr := v.position.CastToBit(dbits)
	if ierr != nil {
		return BigFixed[D]{}, wrapIndexError(ierr)
	}
	newPosBit, err := posBit.AddInt(byBits)
	if err != nil {
		return BigFixed[D]{}, wrapIndexError(err)
	}
	nv := v
	nv.position = newPosBit
	return nv.fixPosition()
}
