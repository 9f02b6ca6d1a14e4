package bigfixed

import (
	"math"

	"github.com/lookbusy1344/bigfixed/cutoff"
	"github.com/lookbusy1344/bigfixed/digit"
	"github.com/lookbusy1344/bigfixed/index"
)

// FloatFromBits turns a BigFixed holding a float's raw bit pattern
// (as an unsigned integer, e.g. from FromUint32) into the real number
// that bit pattern denotes, for a layout with the given exponent and
// significand widths and exponent bias. The implicit leading
// significand bit is reintroduced for normal numbers; an all-zero
// exponent is treated as zero regardless of the fraction field —
// subnormals are not reproduced exactly, they collapse through the
// same path as zero.
func FloatFromBits[D digit.Digit[D]](raw BigFixed[D], expLen, sigLen int, bias int64) (BigFixed[D], *Error) {
	bits := ToUint64(raw)
	sigMask := uint64(1)<<uint(sigLen) - 1
	expMask := uint64(1)<<uint(expLen) - 1
	sigBits := bits & sigMask
	expBits := (bits >> uint(sigLen)) & expMask
	signBit := (bits >> uint(sigLen+expLen)) & 1

	if expBits == 0 {
		return Zero[D](), nil
	}

	mantissa := sigBits | (uint64(1) << uint(sigLen))
	exponent := int64(expBits) - bias - int64(sigLen)

	mag := FromUint64[D](mantissa)
	shifted, err := mag.Shift(exponent)
	if err != nil {
		return BigFixed[D]{}, err
	}
	if signBit != 0 {
		return shifted.Negate()
	}
	return shifted, nil
}

// FloatToBits is FloatFromBits's reverse: it encodes v's value into a
// raw bit pattern for a layout with the given exponent/significand
// widths and bias. An exponent too large to represent saturates to the
// all-ones exponent with a zero fraction (an IEEE-like infinity
// pattern); an exponent too small to represent (including v itself
// being zero) underflows to the all-zero pattern. Significand excess
// is dropped via a Cutoff-Floor pass.
func FloatToBits[D digit.Digit[D]](v BigFixed[D], expLen, sigLen int, bias int64) (BigFixed[D], *Error) {
	sign := v.IsNegative()
	mag, err := v.Abs()
	if err != nil {
		return BigFixed[D]{}, err
	}

	signBit := uint64(0)
	if sign {
		signBit = 1
	}
	expMax := int64(1)<<uint(expLen) - 1

	if mag.IsZero() {
		return composeFloatBits[D](signBit, 0, 0, sigLen, expLen), nil
	}

	e := mag.GreatestBitPosition().Value()
	biasedExp := e + bias

	if biasedExp >= expMax {
		return composeFloatBits[D](signBit, uint64(expMax), 0, sigLen, expLen), nil
	}
	if biasedExp <= 0 {
		return Zero[D](), nil
	}

	floating := index.BitAt(int64(sigLen))
	truncated, err := mag.Cutoff(cutoff.Cutoff{Floating: &floating, Rounding: cutoff.Floor})
	if err != nil {
		return BigFixed[D]{}, err
	}
	shiftAmt := e - int64(sigLen)
	mantissaVal, err := truncated.Shift(-shiftAmt)
	if err != nil {
		return BigFixed[D]{}, err
	}
	mantissaBits := ToUint64(mantissaVal)
	sigBits := mantissaBits &^ (uint64(1) << uint(sigLen))

	return composeFloatBits[D](signBit, uint64(biasedExp), sigBits, sigLen, expLen), nil
}

func composeFloatBits[D digit.Digit[D]](sign, exp, sig uint64, sigLen, expLen int) BigFixed[D] {
	bits := sig | (exp << uint(sigLen)) | (sign << uint(sigLen+expLen))
	return FromUint64[D](bits)
}

// FromFloat32 converts a native float32 via its IEEE 754 bit pattern.
func FromFloat32[D digit.Digit[D]](f float32) (BigFixed[D], *Error) {
	raw := FromUint32[D](math.Float32bits(f))
	return FloatFromBits(raw, 8, 23, 127)
}

// ToFloat32 is FromFloat32's reverse, saturating on overflow/underflow
// per FloatToBits.
func ToFloat32[D digit.Digit[D]](v BigFixed[D]) (float32, *Error) {
	raw, err := FloatToBits(v, 8, 23, 127)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(ToUint32(raw)), nil
}

// FromFloat64 converts a native float64 via its IEEE 754 bit pattern.
func FromFloat64[D digit.Digit[D]](f float64) (BigFixed[D], *Error) {
	raw := FromUint64[D](math.Float64bits(f))
	return FloatFromBits(raw, 11, 52, 1023)
}

// ToFloat64 is FromFloat64's reverse.
func ToFloat64[D digit.Digit[D]](v BigFixed[D]) (float64, *Error) {
	raw, err := FloatToBits(v, 11, 52, 1023)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(ToUint64(raw)), nil
}
