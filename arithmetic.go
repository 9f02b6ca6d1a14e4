package bigfixed

import (
	"github.com/lookbusy1344/bigfixed/digit"
	"github.com/lookbusy1344/bigfixed/index"
)

// AddDigit adds a single digit's worth of value at a given coordinate,
// which may be word- or bit-granular. A Bit coordinate that doesn't
// land on a word boundary is decomposed into two Position-level adds
// of the digit split across the boundary, the same way the Rust
// original's add_digit handles a sub-word Bit index.
func (v BigFixed[D]) AddDigit(at index.Index, d D) (BigFixed[D], *Error) {
	dbits := digitBits[D]()
	if at.IsBit() {
		posIdx, ierr := at.CastToPosition(dbits)
		if ierr != nil {
			return BigFixed[D]{}, wrapIndexError(ierr)
		}
		excess64, ierr := at.BitPositionExcess(dbits)
		if ierr != nil {
			return BigFixed[D]{}, wrapIndexError(ierr)
		}
		excess := int(excess64)
		if excess == 0 {
			return v.addDigitAtPosition(posIdx, d)
		}
		nv, err := v.addDigitAtPosition(posIdx, d.Shl(excess))
		if err != nil {
			return BigFixed[D]{}, err
		}
		nextPos, ierr2 := posIdx.AddInt(1)
		if ierr2 != nil {
			return BigFixed[D]{}, wrapIndexError(ierr2)
		}
		return nv.addDigitAtPosition(nextPos, d.Shr(dbits-excess))
	}
	return v.addDigitAtPosition(at, d)
}

func (v BigFixed[D]) addDigitAtPosition(at index.Index, d D) (BigFixed[D], *Error) {
	nv, err := v.ensureValidPosition(at)
	if err != nil {
		return BigFixed[D]{}, err
	}
	body := append([]D(nil), nv.body...)
	idx := int(at.Value() - nv.position.Value())
	carry := d
	for idx < len(body) {
		sum, c := body[idx].CombinedAdd(carry)
		body[idx] = sum
		carry = c
		if carry.IsZero() {
			break
		}
		idx++
	}

	head := nv.head
	if !carry.IsZero() {
		if nv.head.IsZero() {
			body = append(body, carry)
		} else {
			head = nv.head.Zero()
		}
	}
	return BigFixed[D]{head: head, body: body, position: nv.position}.format(), nil
}

// AddDigitDropOverflow is AddDigit's bounded sibling: it never extends
// the body or touches head. If at falls outside the current body
// entirely, or the carry chain runs off the top of the body, the
// overflow is simply dropped.
func (v BigFixed[D]) AddDigitDropOverflow(at index.Index, d D) BigFixed[D] {
	if at.Cmp(v.position) < 0 || at.Cmp(v.bodyHigh()) >= 0 {
		return v
	}
	body := append([]D(nil), v.body...)
	idx := int(at.Value() - v.position.Value())
	carry := d
	for idx < len(body) {
		sum, c := body[idx].CombinedAdd(carry)
		body[idx] = sum
		carry = c
		if carry.IsZero() {
			break
		}
		idx++
	}
	return BigFixed[D]{head: v.head, body: body, position: v.position}.format()
}

// Increment adds one ULP at v's own lowest tracked position.
func (v BigFixed[D]) Increment() (BigFixed[D], *Error) {
	var z D
	return v.AddDigit(v.position, z.One())
}

// Negate returns -v via two's complement: invert every word (including
// head) and add one at the lowest position.
func (v BigFixed[D]) Negate() (BigFixed[D], *Error) {
	var z D
	newHead := v.head.Not()
	newBody := make([]D, len(v.body))
	for i, w := range v.body {
		newBody[i] = w.Not()
	}
	nv := BigFixed[D]{head: newHead, body: newBody, position: v.position}
	return nv.AddDigit(v.position, z.One())
}

// Abs returns |v|.
func (v BigFixed[D]) Abs() (BigFixed[D], *Error) {
	if v.IsNegative() {
		return v.Negate()
	}
	return v, nil
}

// Add computes a+b exactly, with no precision loss: both operands are
// brought to a shared word range via ensureValidRange, summed
// word-by-word with carry propagation, and the sign-extension head is
// resolved by carrying the addition two further "virtual" words beyond
// the body — enough to reach the fixed point two constant head words
// plus a carry always settle into within one extra step.
func Add[D digit.Digit[D]](a, b BigFixed[D]) (BigFixed[D], *Error) {
	lo := index.Min(a.position, b.position)
	hi := index.Max(a.bodyHigh(), b.bodyHigh())
	ae := a.ensureValidRange(lo, hi)
	be := b.ensureValidRange(lo, hi)

	n := len(ae.body)
	resultBody := make([]D, n, n+1)
	var z D
	carry := z.Zero()
	for i := 0; i < n; i++ {
		s1, c1 := ae.body[i].CombinedAdd(be.body[i])
		s2, c2 := s1.CombinedAdd(carry)
		resultBody[i] = s2
		carry = c1.Add(c2)
	}

	guard, gc1 := ae.head.CombinedAdd(be.head)
	guard, gc2 := guard.CombinedAdd(carry)
	carryOut := gc1.Add(gc2)

	head, _ := ae.head.CombinedAdd(be.head)
	head, _ = head.CombinedAdd(carryOut)

	resultBody = append(resultBody, guard)
	result := BigFixed[D]{head: head, body: resultBody, position: lo}
	return result.format(), nil
}

// Sub computes a-b exactly, via Add(a, -b).
func Sub[D digit.Digit[D]](a, b BigFixed[D]) (BigFixed[D], *Error) {
	nb, err := b.Negate()
	if err != nil {
		return BigFixed[D]{}, err
	}
	return Add(a, nb)
}
