package bigfixed

import (
	"github.com/lookbusy1344/bigfixed/digit"
	"github.com/lookbusy1344/bigfixed/schemes"
)

// Bound pairs a BigFixed value with a CutoffScheme it is permanently
// bound to: every arithmetic method applies scheme.Arithmetic to the
// pure result before returning, and Equal/Cmp apply
// scheme.Comparisons first — arithmetic and comparisons are allowed
// to round at different precisions under the same scheme.
type Bound[D digit.Digit[D]] struct {
	Scheme *schemes.CutoffScheme
	Value  BigFixed[D]
}

// Claim binds v to scheme.
func Claim[D digit.Digit[D]](scheme *schemes.CutoffScheme, v BigFixed[D]) Bound[D] {
	return Bound[D]{Scheme: scheme, Value: v}
}

func (b Bound[D]) rebind(v BigFixed[D], err *Error) (Bound[D], *Error) {
	if err != nil {
		return Bound[D]{}, err
	}
	cut, err := v.Cutoff(b.Scheme.Arithmetic)
	if err != nil {
		return Bound[D]{}, err
	}
	return Bound[D]{Scheme: b.Scheme, Value: Overwrite(b.Value, cut)}, nil
}

// Add, Sub, Multiply, And, Or, Xor apply the pure operation and then
// the scheme's arithmetic cutoff, returning a value still bound to the
// same scheme.
func (b Bound[D]) Add(other Bound[D]) (Bound[D], *Error) {
	v, err := Add(b.Value, other.Value)
	return b.rebind(v, err)
}

func (b Bound[D]) Sub(other Bound[D]) (Bound[D], *Error) {
	v, err := Sub(b.Value, other.Value)
	return b.rebind(v, err)
}

func (b Bound[D]) Multiply(other Bound[D]) (Bound[D], *Error) {
	v, err := Multiply(b.Value, other.Value, b.Scheme.Arithmetic)
	return b.rebind(v, err)
}

func (b Bound[D]) And(other Bound[D]) (Bound[D], *Error) {
	return b.rebind(And(b.Value, other.Value), nil)
}

func (b Bound[D]) Or(other Bound[D]) (Bound[D], *Error) {
	return b.rebind(Or(b.Value, other.Value), nil)
}

func (b Bound[D]) Xor(other Bound[D]) (Bound[D], *Error) {
	return b.rebind(Xor(b.Value, other.Value), nil)
}

func (b Bound[D]) Negate() (Bound[D], *Error) {
	v, err := b.Value.Negate()
	return b.rebind(v, err)
}

func (b Bound[D]) Shift(byBits int64) (Bound[D], *Error) {
	v, err := b.Value.Shift(byBits)
	return b.rebind(v, err)
}

// Equal and Cmp apply the scheme's comparison cutoff to both operands
// before comparing, so two values that differ only below the
// comparison precision floor compare equal.
func (b Bound[D]) Equal(other Bound[D]) (bool, *Error) {
	c, err := b.cmpView()
	if err != nil {
		return false, err
	}
	o, err := other.cmpView()
	if err != nil {
		return false, err
	}
	return Equal(c, o), nil
}

func (b Bound[D]) Cmp(other Bound[D]) (int, *Error) {
	c, err := b.cmpView()
	if err != nil {
		return 0, err
	}
	o, err := other.cmpView()
	if err != nil {
		return 0, err
	}
	return Cmp(c, o), nil
}

func (b Bound[D]) cmpView() (BigFixed[D], *Error) {
	return b.Value.Cutoff(b.Scheme.Comparisons)
}

// WithCutoff applies b.Scheme.Arithmetic manually, e.g. after constructing a
// Bound directly from a raw value rather than through an arithmetic
// method above.
func (b Bound[D]) WithCutoff() (Bound[D], *Error) {
	return b.rebind(b.Value, nil)
}
