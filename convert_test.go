package bigfixed

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lookbusy1344/bigfixed/digit"
)

func TestInt8RoundTrip(t *testing.T) {
	for _, v := range []int8{0, 1, -1, math.MinInt8, math.MaxInt8, 42, -42} {
		got := ToInt8(FromInt8[digit.Word8](v))
		assert.Equal(t, v, got)
	}
}

func TestUint8RoundTrip(t *testing.T) {
	for _, v := range []uint8{0, 1, math.MaxUint8, 200} {
		got := ToUint8(FromUint8[digit.Word8](v))
		assert.Equal(t, v, got)
	}
}

func TestInt16RoundTrip(t *testing.T) {
	for _, v := range []int16{0, 1, -1, math.MinInt16, math.MaxInt16, 12345, -12345} {
		got := ToInt16(FromInt16[digit.Word8](v))
		assert.Equal(t, v, got)
	}
}

func TestUint16RoundTrip(t *testing.T) {
	for _, v := range []uint16{0, 1, math.MaxUint16, 54321} {
		got := ToUint16(FromUint16[digit.Word8](v))
		assert.Equal(t, v, got)
	}
}

func TestInt32RoundTrip(t *testing.T) {
	for _, v := range []int32{0, 1, -1, math.MinInt32, math.MaxInt32, 123456789, -123456789} {
		got := ToInt32(FromInt32[digit.Word8](v))
		assert.Equal(t, v, got)
	}
}

func TestUint32RoundTrip(t *testing.T) {
	for _, v := range []uint32{0, 1, math.MaxUint32, 3000000000} {
		got := ToUint32(FromUint32[digit.Word8](v))
		assert.Equal(t, v, got)
	}
}

func TestInt64RoundTrip(t *testing.T) {
	for _, v := range []int64{0, 1, -1, math.MinInt64, math.MaxInt64, 1234567890123, -1234567890123} {
		got := ToInt64(FromInt64[digit.Word8](v))
		assert.Equal(t, v, got)
	}
}

func TestUint64RoundTrip(t *testing.T) {
	for _, v := range []uint64{0, 1, math.MaxUint64, 12345678901234567890} {
		got := ToUint64(FromUint64[digit.Word8](v))
		assert.Equal(t, v, got)
	}
}

func TestIntAndUintRoundTrip(t *testing.T) {
	for _, v := range []int{0, 1, -1, 42, -42} {
		assert.Equal(t, v, ToInt(FromInt[digit.Word8](v)))
	}
	for _, v := range []uint{0, 1, 42} {
		assert.Equal(t, v, ToUint(FromUint[digit.Word8](v)))
	}
}

func TestSaturatingNarrowingClampsOutOfRange(t *testing.T) {
	big := FromInt64[digit.Word8](math.MaxInt64)
	assert.Equal(t, int8(math.MaxInt8), ToInt8(big))
	assert.Equal(t, int16(math.MaxInt16), ToInt16(big))
	assert.Equal(t, int32(math.MaxInt32), ToInt32(big))

	small := FromInt64[digit.Word8](math.MinInt64)
	assert.Equal(t, int8(math.MinInt8), ToInt8(small))
	assert.Equal(t, int16(math.MinInt16), ToInt16(small))
	assert.Equal(t, int32(math.MinInt32), ToInt32(small))
}

func TestBytesRoundTripSigned(t *testing.T) {
	v := FromInt32[digit.Word8](-123456)
	data := v.Bytes()
	got := FromBytes[digit.Word8](data, false)
	assert.True(t, FullEq(v, got))
}

func TestBytesRoundTripUnsigned(t *testing.T) {
	v := FromUint32[digit.Word8](3_000_000_000)
	data := v.Bytes()
	got := FromBytes[digit.Word8](data, true)
	assert.True(t, FullEq(v, got))
}

func TestFromBytesSignExtendsNegativeTopBit(t *testing.T) {
	got := FromBytes[digit.Word8]([]byte{0x80}, false)
	assert.True(t, got.IsNegative())
	assert.Equal(t, int8(math.MinInt8), ToInt8(got))
}

func TestFromBytesUnsignedNeverSignExtends(t *testing.T) {
	got := FromBytes[digit.Word8]([]byte{0x80}, true)
	assert.False(t, got.IsNegative())
	assert.Equal(t, uint8(0x80), ToUint8(got))
}
