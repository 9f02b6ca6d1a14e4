// Package bigfixed implements arbitrary-precision signed fixed-point
// arithmetic over a configurable digit width: a BigFixed[D] is a
// sign-extended, little-endian array of D-sized words anchored at a
// word position.
package bigfixed

import (
	"github.com/lookbusy1344/bigfixed/digit"
	"github.com/lookbusy1344/bigfixed/index"
)

// BigFixed is an arbitrary-precision signed fixed-point value built
// from D-sized words. head is always digit.Zero() or digit.AllOnes()
// (the sign-extension word); body holds the explicit words, least
// significant first; position is the word-granular Index of body[0].
// In canonical form position is always Position-kind, body carries no
// redundant leading sign words or trailing zero words, and the unique
// representation of zero is {head: Zero, body: nil, position: Pos(0)}.
type BigFixed[D digit.Digit[D]] struct {
	head     D
	body     []D
	position index.Index
}

func posZero() index.Index { return index.Pos(0) }

// Zero returns the canonical zero value.
func Zero[D digit.Digit[D]]() BigFixed[D] {
	var z D
	return BigFixed[D]{head: z.Zero(), position: posZero()}
}

// FromWords builds a BigFixed directly from a sign flag, a
// little-endian body and a starting word Position, then brings it to
// canonical form. The body slice is copied, not aliased.
func FromWords[D digit.Digit[D]](negative bool, body []D, position int64) BigFixed[D] {
	var z D
	head := z.Zero()
	if negative {
		head = z.AllOnes()
	}
	cp := make([]D, len(body))
	copy(cp, body)
	v := BigFixed[D]{head: head, body: cp, position: index.Pos(position)}
	return v.format()
}

// Head returns the sign-extension word (Zero for non-negative values,
// AllOnes for negative ones).
func (v BigFixed[D]) Head() D { return v.head }

// Body returns the explicit words, least significant first. The
// returned slice must not be mutated by the caller.
func (v BigFixed[D]) Body() []D { return v.body }

// Position returns the word-granular Index of Body()[0].
func (v BigFixed[D]) Position() index.Index { return v.position }

// IsNegative reports the value's sign via its head word.
func (v BigFixed[D]) IsNegative() bool {
	return !v.head.IsZero()
}

// bodyHigh returns the Position one past the last body word, i.e.
// position + len(body).
func (v BigFixed[D]) bodyHigh() index.Index {
	high, err := v.position.AddInt(int64(len(v.body)))
	if err != nil {
		panic(err)
	}
	return high
}

// digitAt returns the word at word-Position p, treating anything
// outside [position, bodyHigh) as a virtual zero or head word.
func (v BigFixed[D]) digitAt(p index.Index) D {
	if p.Cmp(v.position) < 0 {
		var z D
		return z.Zero()
	}
	high := v.bodyHigh()
	if p.Cmp(high) >= 0 {
		return v.head
	}
	return v.body[p.Value()-v.position.Value()]
}
