package bigfixed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lookbusy1344/bigfixed/cutoff"
	"github.com/lookbusy1344/bigfixed/digit"
	"github.com/lookbusy1344/bigfixed/index"
)

func fixedAt(p int64) *index.Index {
	idx := index.Pos(p)
	return &idx
}

func TestMultiplyPositiveTimesPositive(t *testing.T) {
	a := FromInt32[digit.Word8](123)
	b := FromInt32[digit.Word8](45)
	got, err := Multiply(a, b, cutoff.None)
	require.Nil(t, err)
	assert.Equal(t, int32(123*45), ToInt32(got))
}

func TestMultiplyNegativeTimesPositive(t *testing.T) {
	a := FromInt32[digit.Word8](-123)
	b := FromInt32[digit.Word8](45)
	got, err := Multiply(a, b, cutoff.None)
	require.Nil(t, err)
	assert.Equal(t, int32(-123*45), ToInt32(got))
	assert.True(t, got.IsNegative())
}

func TestMultiplyNegativeTimesNegative(t *testing.T) {
	a := FromInt32[digit.Word8](-7)
	b := FromInt32[digit.Word8](-9)
	got, err := Multiply(a, b, cutoff.None)
	require.Nil(t, err)
	assert.Equal(t, int32(63), ToInt32(got))
	assert.False(t, got.IsNegative())
}

func TestMultiplyByZero(t *testing.T) {
	a := FromInt32[digit.Word8](999)
	zero := Zero[digit.Word8]()
	got, err := Multiply(a, zero, cutoff.None)
	require.Nil(t, err)
	assert.True(t, got.IsZero())
}

func TestMultiplyByOneIsIdentity(t *testing.T) {
	a := FromInt32[digit.Word8](-55)
	one := FromInt32[digit.Word8](1)
	got, err := Multiply(a, one, cutoff.None)
	require.Nil(t, err)
	assert.Equal(t, int32(-55), ToInt32(got))
}

func TestMultiplyOverflowsBeyondNativeWidthExactly(t *testing.T) {
	a := FromInt64[digit.Word8](1 << 40)
	b := FromInt64[digit.Word8](1 << 40)
	got, err := Multiply(a, b, cutoff.None)
	require.Nil(t, err)

	one := FromUint64[digit.Word8](1)
	want, err := one.Shift(80)
	require.Nil(t, err)
	assert.True(t, FullEq(want, got))
}

func TestMultiplyCeilingRoundingIsUnsupported(t *testing.T) {
	a := FromInt32[digit.Word8](3)
	b := FromInt32[digit.Word8](5)
	_, err := Multiply(a, b, cutoff.Cutoff{Rounding: cutoff.Ceiling, Fixed: fixedAt(0)})
	require.NotNil(t, err)
	assert.Equal(t, KindRoundingUnsupported, err.Kind)
}

func TestMultiplyAwayFromZeroRoundingIsUnsupported(t *testing.T) {
	a := FromInt32[digit.Word8](3)
	b := FromInt32[digit.Word8](5)
	_, err := Multiply(a, b, cutoff.Cutoff{Rounding: cutoff.AwayFromZero, Fixed: fixedAt(0)})
	require.NotNil(t, err)
	assert.Equal(t, KindRoundingUnsupported, err.Kind)
}
