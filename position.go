package bigfixed

import (
	"github.com/lookbusy1344/bigfixed/digit"
)

func digitBits[D digit.Digit[D]]() int {
	var z D
	return z.Bits()
}

func digitsEqual[D digit.Digit[D]](a, b D) bool {
	return a.Xor(b).IsZero()
}

// fixPosition brings a Bit-granular position to word granularity,
// re-expressing the body at the coarser word boundary without
// changing the represented value: the whole sign-extended bit string
// is shifted left by the bit position's excess within its containing
// word, which is why one extra word of headroom is always allocated
// before the canonical trim runs.
func (v BigFixed[D]) fixPosition() (BigFixed[D], *Error) {
	if v.position.IsPosition() {
		return v, nil
	}

	dbits := digitBits[D]()
	excess64, ierr := v.position.BitPositionExcess(dbits)
	if ierr != nil {
		return BigFixed[D]{}, wrapIndexError(ierr)
	}
	posIdx, ierr := v.position.CastToPosition(dbits)
	if ierr != nil {
		return BigFixed[D]{}, wrapIndexError(ierr)
	}

	excess := int(excess64)
	if excess == 0 {
		nv := v
		nv.position = posIdx
		return nv.format(), nil
	}

	newBody := make([]D, len(v.body)+1)
	var z D
	carry := z.Zero()
	for i := 0; i < len(v.body); i++ {
		w := v.body[i]
		newBody[i] = w.Shl(excess).Or(carry)
		carry = w.Shr(dbits - excess)
	}
	newBody[len(v.body)] = v.head.Shl(excess).Or(carry)

	nv := BigFixed[D]{head: v.head, body: newBody, position: posIdx}
	return nv.format(), nil
}

// format trims a value to canonical form: no body word redundant with
// the sign-extension head, no redundant trailing zero word, and the
// unique zero pinned at Position(0). Precondition: v.position is
// already Position-granular (callers that might hold a Bit position
// must go through fixPosition first).
func (v BigFixed[D]) format() BigFixed[D] {
	body := v.body

	for len(body) > 0 && digitsEqual(body[len(body)-1], v.head) {
		body = body[:len(body)-1]
	}

	pos := v.position
	for len(body) > 0 && body[0].IsZero() {
		body = body[1:]
		next, err := pos.AddInt(1)
		if err != nil {
			panic(err)
		}
		pos = next
	}

	if len(body) == 0 && v.head.IsZero() {
		pos = posZero()
	}

	return BigFixed[D]{head: v.head, body: body, position: pos}
}

// properlyPositioned reports whether v is already in canonical,
// word-granular form (no redundant trim possible, Position-kind
// index). Operations that assume canonical input use this to decide
// whether an explicit format() pass is needed first.
func (v BigFixed[D]) properlyPositioned() bool {
	if !v.position.IsPosition() {
		return false
	}
	if len(v.body) > 0 && digitsEqual(v.body[len(v.body)-1], v.head) {
		return false
	}
	if len(v.body) > 0 && v.body[0].IsZero() {
		return false
	}
	if len(v.body) == 0 && v.head.IsZero() && v.position.Value() != 0 {
		return false
	}
	return true
}
