// Package index implements the tagged positional coordinate used
// throughout bigfixed: a signed offset that is either word-granular
// (Position) or bit-granular (Bit), with overflow-checked arithmetic
// so a runaway shift or add reports an error instead of wrapping.
package index

import "fmt"

// Kind distinguishes the granularity an Index's value is measured in.
type Kind int

const (
	// Position is a word-granular offset: a count of Digit-sized words.
	Position Kind = iota
	// Bit is a bit-granular offset.
	Bit
	// DigitTyped marks an index that was built from a Digit-phantom
	// context and was never meant to be read positionally. Any attempt
	// to cast or compare it as a Position/Bit fails with
	// ErrDigitTypeUsed.
	DigitTyped
)

func (k Kind) String() string {
	switch k {
	case Position:
		return "Position"
	case Bit:
		return "Bit"
	case DigitTyped:
		return "DigitTyped"
	default:
		return "Index"
	}
}

// Index is an overflow-checked signed coordinate, tagged with the
// granularity it was constructed at. The zero value is Position(0).
type Index struct {
	kind  Kind
	value int64
}

// Pos constructs a word-granular coordinate.
func Pos(v int64) Index { return Index{kind: Position, value: v} }

// BitAt constructs a bit-granular coordinate.
func BitAt(v int64) Index { return Index{kind: Bit, value: v} }

// Phantom constructs a digit-typed coordinate: one that exists only to
// satisfy a Digit-shaped type slot and must never be read positionally.
func Phantom(v int64) Index { return Index{kind: DigitTyped, value: v} }

// Kind reports which granularity this Index carries.
func (i Index) Kind() Kind { return i.kind }

// Value returns the raw signed coordinate, in whatever granularity
// Kind() reports. Comparing Values from different Kinds directly is a
// unit error; use CastToBit to bring both to a common scale first.
func (i Index) Value() int64 { return i.value }

func (i Index) String() string {
	return fmt.Sprintf("%s(%d)", i.kind, i.value)
}

// IsPosition reports whether this Index is word-granular.
func (i Index) IsPosition() bool { return i.kind == Position }

// IsBit reports whether this Index is bit-granular.
func (i Index) IsBit() bool { return i.kind == Bit }

func sameKind(op string, a, b Index) {
	if a.kind != b.kind {
		panic(fmt.Sprintf("index: %s requires matching kinds, got %s and %s", op, a.kind, b.kind))
	}
}

// checkedAdd detects signed 64-bit overflow explicitly rather than
// letting it wrap silently.
func checkedAdd(a, b int64) (int64, error) {
	sum := a + b
	// overflow iff operands share a sign and the result's sign differs
	if (a > 0 && b > 0 && sum < 0) || (a < 0 && b < 0 && sum > 0) {
		return 0, newOverflow("add", a, b)
	}
	return sum, nil
}

func checkedSub(a, b int64) (int64, error) {
	diff := a - b
	if (a >= 0 && b < 0 && diff < 0) || (a < 0 && b > 0 && diff > 0) {
		return 0, newOverflow("sub", a, b)
	}
	return diff, nil
}

func checkedMul(a, b int64) (int64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	product := a * b
	if product/b != a {
		return 0, newOverflow("mul", a, b)
	}
	return product, nil
}

func checkedNeg(a int64) (int64, error) {
	if a == minInt64 {
		return 0, newOverflow("neg", a, 0)
	}
	return -a, nil
}

const minInt64 = -1 << 63

// Add returns i+other, checked. Both must carry the same Kind; a
// mismatched Kind is a programmer error in the caller (it would mean
// adding a bit offset to a word offset without an explicit cast) and
// panics rather than returning an error, consistent with the
// "arithmetic operators ... panic on internal invariant violation"
// propagation policy.
func (i Index) Add(other Index) (Index, error) {
	sameKind("Add", i, other)
	v, err := checkedAdd(i.value, other.value)
	if err != nil {
		return Index{}, err
	}
	return Index{kind: i.kind, value: v}, nil
}

// Sub returns i-other, checked. See Add for the Kind-matching rule.
func (i Index) Sub(other Index) (Index, error) {
	sameKind("Sub", i, other)
	v, err := checkedSub(i.value, other.value)
	if err != nil {
		return Index{}, err
	}
	return Index{kind: i.kind, value: v}, nil
}

// Mul returns i*other, checked. See Add for the Kind-matching rule.
func (i Index) Mul(other Index) (Index, error) {
	sameKind("Mul", i, other)
	v, err := checkedMul(i.value, other.value)
	if err != nil {
		return Index{}, err
	}
	return Index{kind: i.kind, value: v}, nil
}

// Neg returns -i, checked.
func (i Index) Neg() (Index, error) {
	v, err := checkedNeg(i.value)
	if err != nil {
		return Index{}, err
	}
	return Index{kind: i.kind, value: v}, nil
}

// AddInt adds a raw signed integer to i, preserving Kind.
func (i Index) AddInt(n int64) (Index, error) {
	v, err := checkedAdd(i.value, n)
	if err != nil {
		return Index{}, err
	}
	return Index{kind: i.kind, value: v}, nil
}

// SubInt subtracts a raw signed integer from i, preserving Kind.
func (i Index) SubInt(n int64) (Index, error) {
	v, err := checkedSub(i.value, n)
	if err != nil {
		return Index{}, err
	}
	return Index{kind: i.kind, value: v}, nil
}

// MulInt multiplies i by a raw signed integer, preserving Kind.
func (i Index) MulInt(n int64) (Index, error) {
	v, err := checkedMul(i.value, n)
	if err != nil {
		return Index{}, err
	}
	return Index{kind: i.kind, value: v}, nil
}

// Cmp returns -1, 0, or 1 comparing i and other, which must share a
// Kind (see CastToBit to compare across Kinds).
func (i Index) Cmp(other Index) int {
	sameKind("Cmp", i, other)
	switch {
	case i.value < other.value:
		return -1
	case i.value > other.value:
		return 1
	default:
		return 0
	}
}

// Equal reports whether i and other carry the same Kind and value.
func (i Index) Equal(other Index) bool {
	return i.kind == other.kind && i.value == other.value
}

// Max returns whichever of a, b compares greater (same Kind required).
func Max(a, b Index) Index {
	if a.Cmp(b) >= 0 {
		return a
	}
	return b
}

// Min returns whichever of a, b compares smaller (same Kind required).
func Min(a, b Index) Index {
	if a.Cmp(b) <= 0 {
		return a
	}
	return b
}

// floorDivMod performs Euclidean (floored) division: the quotient
// always rounds toward negative infinity and the remainder is always
// in [0, |b|), unlike Go's native truncating '/' and '%'.
func floorDivMod(a, b int64) (q, r int64) {
	q = a / b
	r = a % b
	if r != 0 && ((r < 0) != (b < 0)) {
		q--
		r += b
	}
	return q, r
}

// CastToPosition converts a Bit index to the Position containing it,
// using floored division (so Bit(-1) maps to Position(-1), never
// Position(0)). A Position maps to itself. A DigitTyped index fails
// with ErrDigitTypeUsed.
func (i Index) CastToPosition(digitBits int) (Index, error) {
	switch i.kind {
	case Position:
		return i, nil
	case Bit:
		p, _ := floorDivMod(i.value, int64(digitBits))
		return Index{kind: Position, value: p}, nil
	default:
		return Index{}, ErrDigitTypeUsed
	}
}

// CastToBit converts a Position to its exact bit coordinate
// (p*digitBits). A Bit maps to itself. A DigitTyped index fails with
// ErrDigitTypeUsed.
func (i Index) CastToBit(digitBits int) (Index, error) {
	switch i.kind {
	case Bit:
		return i, nil
	case Position:
		v, err := checkedMul(i.value, int64(digitBits))
		if err != nil {
			return Index{}, err
		}
		return Index{kind: Bit, value: v}, nil
	default:
		return Index{}, ErrDigitTypeUsed
	}
}

// BitPositionExcess returns b - p*digitBits for a Bit index, i.e. the
// residual within [0, digitBits) after flooring to its Position. A
// Position index has excess 0 by definition. A DigitTyped index fails
// with ErrDigitTypeUsed.
func (i Index) BitPositionExcess(digitBits int) (int64, error) {
	switch i.kind {
	case Position:
		return 0, nil
	case Bit:
		_, r := floorDivMod(i.value, int64(digitBits))
		return r, nil
	default:
		return 0, ErrDigitTypeUsed
	}
}
