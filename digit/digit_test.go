package digit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWord8CombinedAdd(t *testing.T) {
	lo, carry := Word8(200).CombinedAdd(Word8(100))
	assert.Equal(t, Word8(44), lo) // 300 mod 256
	assert.Equal(t, Word8(1), carry)

	lo, carry = Word8(1).CombinedAdd(Word8(2))
	assert.Equal(t, Word8(3), lo)
	assert.Equal(t, Word8(0), carry)
}

func TestWord8CombinedMul(t *testing.T) {
	lo, hi := Word8(200).CombinedMul(Word8(200))
	want := uint16(200) * uint16(200)
	assert.Equal(t, Word8(want), lo)
	assert.Equal(t, Word8(want>>8), hi)
}

func TestWord64CombinedMul(t *testing.T) {
	x := Word64(0xFFFFFFFFFFFFFFFF)
	lo, hi := x.CombinedMul(x)
	assert.Equal(t, Word64(1), lo)
	assert.Equal(t, Word64(0xFFFFFFFFFFFFFFFE), hi)
}

func TestDoubleDigitAddCarriesAcrossHalves(t *testing.T) {
	type DD = DoubleDigit[Word8]
	a := DD{Lo: 0xFF, Hi: 0x00}
	b := DD{Lo: 0x01, Hi: 0x00}
	sum := a.Add(b)
	assert.Equal(t, DD{Lo: 0x00, Hi: 0x01}, sum)
}

func TestDoubleDigitShiftAcrossBoundary(t *testing.T) {
	type DD = DoubleDigit[Word8]
	a := DD{Lo: 0x80, Hi: 0x00}
	shifted := a.Shl(1)
	assert.Equal(t, DD{Lo: 0x00, Hi: 0x01}, shifted)

	b := DD{Lo: 0x00, Hi: 0x01}
	down := b.Shr(1)
	assert.Equal(t, DD{Lo: 0x80, Hi: 0x00}, down)
}

func TestDoubleDigitShiftSaturatesPastWidth(t *testing.T) {
	type DD = DoubleDigit[Word8]
	a := DD{Lo: 0xFF, Hi: 0xFF}
	assert.True(t, a.Shl(16).IsZero())
	assert.True(t, a.Shr(16).IsZero())
}

func TestDoubleDigitCombinedAddCarryOut(t *testing.T) {
	type DD = DoubleDigit[Word8]
	max := DD{Lo: 0xFF, Hi: 0xFF}
	one := DD{}.One()
	lo, carry := max.CombinedAdd(one)
	assert.True(t, lo.IsZero())
	assert.Equal(t, DD{}.One(), carry)
}

func TestDoubleDigitCombinedMulMatchesSchoolbook(t *testing.T) {
	type DD = DoubleDigit[Word8]
	// 300 * 300 = 90000, which needs more than 16 bits (fits in 32).
	x := DD{Lo: 0x2C, Hi: 0x01} // 300
	y := DD{Lo: 0x2C, Hi: 0x01} // 300
	lo, hi := x.CombinedMul(y)
	got := uint32(hi.Uint64())<<16 | uint32(lo.Uint64())
	assert.Equal(t, uint32(90000), got)
}

func TestDoubleDigitNegRoundTrips(t *testing.T) {
	type DD = DoubleDigit[Word8]
	a := DD{Lo: 0x34, Hi: 0x12}
	negated := a.Neg()
	back := negated.Neg()
	assert.Equal(t, a, back)
}

func TestDoubleDigitLeadingTrailingCounts(t *testing.T) {
	type DD = DoubleDigit[Word8]
	a := DD{Lo: 0x00, Hi: 0x0F}
	assert.Equal(t, 4, a.LeadingZeros())
	assert.Equal(t, 8, a.TrailingZeros())

	allOnes := DD{}.AllOnes()
	assert.Equal(t, 16, allOnes.LeadingOnes())
	assert.Equal(t, 16, allOnes.TrailingOnes())
}

func TestDoubleDigitBits(t *testing.T) {
	type DD32 = DoubleDigit[Word16]
	var d DD32
	assert.Equal(t, 32, d.Bits())

	type DD64 = DoubleDigit[DoubleDigit[Word16]]
	var d2 DD64
	assert.Equal(t, 64, d2.Bits())
}
