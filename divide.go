package bigfixed

import "github.com/lookbusy1344/bigfixed/digit"

// Divide is a named, always-erroring entry point: division beyond
// power-of-two Shift is out of scope (see spec Non-goals), but the
// symbol exists so callers get a typed KindDivideByZero error instead
// of a missing method, and so division never silently aliases to
// bitwise And the way an absent method might invite.
func Divide[D digit.Digit[D]](a, b BigFixed[D]) (BigFixed[D], *Error) {
	return BigFixed[D]{}, errorf(KindDivideByZero, "division is not implemented; use Shift for power-of-two division")
}
