package bigfixed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lookbusy1344/bigfixed/digit"
	"github.com/lookbusy1344/bigfixed/index"
)

func TestAtReadsWordAndBit(t *testing.T) {
	v := FromWords[digit.Word8](false, []digit.Word8{0b00000010}, 0)
	word, err := v.At(index.Pos(0))
	require.Nil(t, err)
	assert.Equal(t, digit.Word8(0b00000010), word)

	bit, err := v.At(index.BitAt(1))
	require.Nil(t, err)
	assert.Equal(t, digit.Word8(1), bit)

	bit0, err := v.At(index.BitAt(0))
	require.Nil(t, err)
	assert.Equal(t, digit.Word8(0), bit0)
}

func TestAtOutsideBodyReadsVirtualWords(t *testing.T) {
	v := FromWords[digit.Word8](true, []digit.Word8{0x01}, 0)
	below, err := v.At(index.Pos(-1))
	require.Nil(t, err)
	assert.Equal(t, digit.Word8(0), below)

	above, err := v.At(index.Pos(5))
	require.Nil(t, err)
	assert.Equal(t, digit.Word8(0xFF), above)
}

func TestWithDigitAtReplacesWord(t *testing.T) {
	v := FromWords[digit.Word8](false, []digit.Word8{0x01}, 0)
	got, err := v.WithDigitAt(index.Pos(0), 0x42)
	require.Nil(t, err)
	word, err := got.At(index.Pos(0))
	require.Nil(t, err)
	assert.Equal(t, digit.Word8(0x42), word)
}

func TestSetBitTogglesSingleBit(t *testing.T) {
	v := Zero[digit.Word8]()
	withBit, err := v.SetBit(index.BitAt(3), 1)
	require.Nil(t, err)
	assert.Equal(t, int32(8), ToInt32(withBit))

	cleared, err := withBit.SetBit(index.BitAt(3), 0)
	require.Nil(t, err)
	assert.True(t, cleared.IsZero())
}

func TestRangeIterYieldsVirtualAndRealWords(t *testing.T) {
	v := FromWords[digit.Word8](false, []digit.Word8{0xAA}, 0)
	var got []digit.Word8
	for d := range v.RangeIter(index.Pos(-1), index.Pos(2)) {
		got = append(got, d)
	}
	assert.Equal(t, []digit.Word8{0x00, 0xAA, 0x00}, got)
}

func TestRangeIterRevYieldsDescendingOrder(t *testing.T) {
	v := FromWords[digit.Word8](false, []digit.Word8{0x01, 0x02}, 0)
	var got []digit.Word8
	for d := range v.RangeIterRev(index.Pos(0), index.Pos(2)) {
		got = append(got, d)
	}
	assert.Equal(t, []digit.Word8{0x02, 0x01}, got)
}

func TestRangeIterStopsEarlyWhenYieldReturnsFalse(t *testing.T) {
	v := FromWords[digit.Word8](false, []digit.Word8{0x01, 0x02, 0x03}, 0)
	var got []digit.Word8
	for d := range v.RangeIter(index.Pos(0), index.Pos(3)) {
		got = append(got, d)
		if len(got) == 2 {
			break
		}
	}
	assert.Equal(t, []digit.Word8{0x01, 0x02}, got)
}

func TestOverwriteReturnsSrcVerbatim(t *testing.T) {
	a := FromInt32[digit.Word8](1)
	b := FromInt32[digit.Word8](2)
	got := Overwrite(a, b)
	assert.True(t, FullEq(b, got))
}
