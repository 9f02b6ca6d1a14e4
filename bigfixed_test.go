package bigfixed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lookbusy1344/bigfixed/digit"
	"github.com/lookbusy1344/bigfixed/index"
)

// These scenarios are the seeded word-width-8 cases a complete
// implementation is expected to reproduce exactly, little-endian body
// words given LSW-first.
func TestSeededZeroPlus255(t *testing.T) {
	zero := Zero[digit.Word8]()
	v, err := Add(zero, FromWords[digit.Word8](false, []digit.Word8{0xFF}, 0))
	require.Nil(t, err)
	assert.Equal(t, FromWords[digit.Word8](false, []digit.Word8{0xFF}, 0), v)
}

func TestSeededSmallPositionCarryAbsorption(t *testing.T) {
	a := FromWords[digit.Word8](false, []digit.Word8{0xFF}, 0)
	b := FromWords[digit.Word8](false, []digit.Word8{0x01}, -2)
	v, err := Add(a, b)
	require.Nil(t, err)
	want := FromWords[digit.Word8](false, []digit.Word8{0x01, 0x00, 0xFF}, -2)
	assert.True(t, FullEq(want, v))
}

func TestSeededNegative256PlusTinyFraction(t *testing.T) {
	a := FromWords[digit.Word8](true, []digit.Word8{}, 1)
	b := FromWords[digit.Word8](false, []digit.Word8{0x01}, -1)
	v, err := Add(a, b)
	require.Nil(t, err)
	want := FromWords[digit.Word8](true, []digit.Word8{0x01, 0x00}, -1)
	assert.True(t, FullEq(want, v))
}

func TestSeededAddDigitDropOverflowLeavesUnchanged(t *testing.T) {
	v := FromWords[digit.Word8](true, []digit.Word8{0x01, 0x00}, -1)
	got := v.AddDigitDropOverflow(index.Pos(1), 0x01)
	assert.True(t, FullEq(v, got))
}

func TestNegateIsInvolution(t *testing.T) {
	v := FromWords[digit.Word8](false, []digit.Word8{0x12, 0x34}, 0)
	neg, err := v.Negate()
	require.Nil(t, err)
	back, err := neg.Negate()
	require.Nil(t, err)
	assert.True(t, FullEq(v, back))
}

func TestIsZeroCanonicalForm(t *testing.T) {
	z := Zero[digit.Word8]()
	assert.True(t, z.IsZero())
	assert.Equal(t, digit.Word8(0), z.Head())
	assert.Empty(t, z.Body())
	assert.Equal(t, index.Pos(0), z.Position())
}

func TestFormatTrimsRedundantSignWords(t *testing.T) {
	// body[1] == head (0x00): trim_head should drop it.
	v := FromWords[digit.Word8](false, []digit.Word8{0x05, 0x00}, 0)
	assert.Equal(t, []digit.Word8{0x05}, v.Body())
}

func TestFormatTrimsRedundantLeadingZero(t *testing.T) {
	v := FromWords[digit.Word8](false, []digit.Word8{0x00, 0x05}, 0)
	assert.Equal(t, []digit.Word8{0x05}, v.Body())
	assert.Equal(t, index.Pos(1), v.Position())
}

func TestCmpOrdersBySignThenMagnitude(t *testing.T) {
	neg := FromWords[digit.Word8](true, []digit.Word8{0x01}, 0)
	pos := FromWords[digit.Word8](false, []digit.Word8{0x01}, 0)
	assert.Equal(t, -1, Cmp(neg, pos))
	assert.Equal(t, 1, Cmp(pos, neg))
	assert.Equal(t, 0, Cmp(pos, pos))
}

func TestBitwiseOpsMatchNativeSemantics(t *testing.T) {
	a := FromInt32[digit.Word8](0b1100)
	b := FromInt32[digit.Word8](0b1010)
	assert.Equal(t, int32(0b1100&0b1010), ToInt32(And(a, b)))
	assert.Equal(t, int32(0b1100|0b1010), ToInt32(Or(a, b)))
	assert.Equal(t, int32(0b1100^0b1010), ToInt32(Xor(a, b)))
}

func TestShiftLeftIsMultiplyByPowerOfTwo(t *testing.T) {
	v := FromInt32[digit.Word8](7)
	shifted, err := v.Shl(3)
	require.Nil(t, err)
	assert.Equal(t, int32(7*8), ToInt32(shifted))
}

func TestShiftRightPreservesSignOfNegative(t *testing.T) {
	v := FromInt32[digit.Word8](-8)
	shifted, err := v.Shr(1)
	require.Nil(t, err)
	assert.Equal(t, int32(-4), ToInt32(shifted))
	assert.True(t, shifted.IsNegative())
}

func TestGreatestBitPositionOfPowerOfTwo(t *testing.T) {
	v := FromInt32[digit.Word8](1 << 5)
	assert.Equal(t, index.BitAt(5), v.GreatestBitPosition())
}
