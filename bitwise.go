package bigfixed

import (
	"github.com/lookbusy1344/bigfixed/digit"
	"github.com/lookbusy1344/bigfixed/index"
)

func alignedPair[D digit.Digit[D]](a, b BigFixed[D]) (BigFixed[D], BigFixed[D], index.Index) {
	lo := index.Min(a.position, b.position)
	hi := index.Max(a.bodyHigh(), b.bodyHigh())
	return a.ensureValidRange(lo, hi), b.ensureValidRange(lo, hi), lo
}

// And returns the bitwise AND of a and b's infinite two's-complement
// representations.
func And[D digit.Digit[D]](a, b BigFixed[D]) BigFixed[D] {
	ae, be, lo := alignedPair(a, b)
	body := make([]D, len(ae.body))
	for i := range body {
		body[i] = ae.body[i].And(be.body[i])
	}
	return BigFixed[D]{head: ae.head.And(be.head), body: body, position: lo}.format()
}

// Or returns the bitwise OR.
func Or[D digit.Digit[D]](a, b BigFixed[D]) BigFixed[D] {
	ae, be, lo := alignedPair(a, b)
	body := make([]D, len(ae.body))
	for i := range body {
		body[i] = ae.body[i].Or(be.body[i])
	}
	return BigFixed[D]{head: ae.head.Or(be.head), body: body, position: lo}.format()
}

// Xor returns the bitwise XOR.
func Xor[D digit.Digit[D]](a, b BigFixed[D]) BigFixed[D] {
	ae, be, lo := alignedPair(a, b)
	body := make([]D, len(ae.body))
	for i := range body {
		body[i] = ae.body[i].Xor(be.body[i])
	}
	return BigFixed[D]{head: ae.head.Xor(be.head), body: body, position: lo}.format()
}

// Not returns the bitwise complement, ^v.
func (v BigFixed[D]) Not() BigFixed[D] {
	body := make([]D, len(v.body))
	for i, w := range v.body {
		body[i] = w.Not()
	}
	return BigFixed[D]{head: v.head.Not(), body: body, position: v.position}.format()
}

// Shl returns v shifted left (multiplied by 2^n) for n>=0.
func (v BigFixed[D]) Shl(n int64) (BigFixed[D], *Error) {
	return v.Shift(n)
}

// Shr returns v shifted right (divided by 2^n exactly; bits moved
// below Position 0 are kept as a fractional part) for n>=0.
func (v BigFixed[D]) Shr(n int64) (BigFixed[D], *Error) {
	return v.Shift(-n)
}
