package bigfixed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lookbusy1344/bigfixed/digit"
)

func TestFloat32RoundTripIntegers(t *testing.T) {
	for _, f := range []float32{0, 1, -1, 2, -2, 100, -100, 65536, -65536} {
		v, err := FromFloat32[digit.Word8](f)
		require.Nil(t, err)
		back, err := ToFloat32(v)
		require.Nil(t, err)
		assert.Equal(t, f, back)
	}
}

func TestFloat64RoundTripIntegers(t *testing.T) {
	for _, f := range []float64{0, 1, -1, 2, -2, 100, -100, 1 << 40, -(1 << 40)} {
		v, err := FromFloat64[digit.Word8](f)
		require.Nil(t, err)
		back, err := ToFloat64(v)
		require.Nil(t, err)
		assert.Equal(t, f, back)
	}
}

func TestFloat32ZeroIsExactZero(t *testing.T) {
	v, err := FromFloat32[digit.Word8](0)
	require.Nil(t, err)
	assert.True(t, v.IsZero())
}

func TestFloat32NegativeSignPreserved(t *testing.T) {
	v, err := FromFloat32[digit.Word8](-4)
	require.Nil(t, err)
	assert.True(t, v.IsNegative())
	assert.Equal(t, int32(-4), ToInt32(v))
}

func TestFloat32OfIntegerBigFixedMatchesNativeConversion(t *testing.T) {
	v := FromInt32[digit.Word8](12345)
	f, err := ToFloat32(v)
	require.Nil(t, err)
	assert.Equal(t, float32(12345), f)
}

func TestFloat64OfIntegerBigFixedMatchesNativeConversion(t *testing.T) {
	v := FromInt64[digit.Word8](9876543210)
	f, err := ToFloat64(v)
	require.Nil(t, err)
	assert.Equal(t, float64(9876543210), f)
}
