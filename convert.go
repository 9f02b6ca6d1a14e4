package bigfixed

import (
	"encoding/binary"
	"math"

	"github.com/lookbusy1344/bigfixed/digit"
	"github.com/lookbusy1344/bigfixed/index"
)

// FromBytes builds a BigFixed directly from a little-endian byte
// slice, the same way a native integer's in-memory representation
// would be read. If unsigned is false, data is padded (on the high
// end) with a sign-extension byte derived from data's own top bit
// before being chunked into digit-width words; if unsigned is true the
// padding byte is always zero. Position is always Pos(0).
func FromBytes[D digit.Digit[D]](data []byte, unsigned bool) BigFixed[D] {
	var z D
	dbytes := digitBits[D]() / 8

	signByte := byte(0)
	if !unsigned && len(data) > 0 && data[len(data)-1]&0x80 != 0 {
		signByte = 0xFF
	}

	padded := make([]byte, ((len(data)+dbytes-1)/dbytes)*dbytes)
	copy(padded, data)
	for i := len(data); i < len(padded); i++ {
		padded[i] = signByte
	}

	words := len(padded) / dbytes
	body := make([]D, words)
	for i := 0; i < words; i++ {
		body[i] = z.FromBytesLE(padded[i*dbytes : (i+1)*dbytes])
	}

	head := z.Zero()
	if signByte == 0xFF {
		head = z.AllOnes()
	}
	return BigFixed[D]{head: head, body: body, position: posZero()}.format()
}

// Bytes serializes v per the persisted-state layout: one zero word for
// every Position from 0 up to v's own position (when that is above 0),
// then every body word's little-endian bytes in order, followed by one
// trailing word's worth of bytes equal to head — enough that
// FromBytes(v.Bytes(), false) reconstructs any integer v (position at
// or above 0) exactly, since the sign bit of the final byte always
// matches head. Body words below Position 0 are written as if the body
// started at Position 0, so a value with a fractional part does not
// round-trip.
func (v BigFixed[D]) Bytes() []byte {
	dbytes := digitBits[D]() / 8
	out := make([]byte, 0, (len(v.body)+1)*dbytes)
	var z D
	for p := int64(0); p < v.position.Value(); p++ {
		out = append(out, z.Zero().Bytes()...)
	}
	for _, w := range v.body {
		out = append(out, w.Bytes()...)
	}
	out = append(out, v.head.Bytes()...)
	return out
}

func lowBytes[D digit.Digit[D]](v BigFixed[D], n int) []byte {
	dbytes := digitBits[D]() / 8
	out := make([]byte, 0, n+dbytes)
	for i := int64(0); len(out) < n; i++ {
		out = append(out, v.digitAt(index.Pos(i)).Bytes()...)
	}
	return out[:n]
}

// FromInt8/16/32/64 and FromUint8/16/32/64 construct a BigFixed from a
// fixed-width native integer, little-endian, via FromBytes. FromInt
// and FromUint cover Go's machine-sized int/uint by routing through
// the 64-bit form, which always has enough range.
func FromInt8[D digit.Digit[D]](v int8) BigFixed[D]   { return FromBytes[D]([]byte{byte(v)}, false) }
func FromUint8[D digit.Digit[D]](v uint8) BigFixed[D] { return FromBytes[D]([]byte{v}, true) }

func FromInt16[D digit.Digit[D]](v int16) BigFixed[D] {
	b := make([]byte, 2)
	binary.LittleEndian.PutUint16(b, uint16(v))
	return FromBytes[D](b, false)
}

func FromUint16[D digit.Digit[D]](v uint16) BigFixed[D] {
	b := make([]byte, 2)
	binary.LittleEndian.PutUint16(b, v)
	return FromBytes[D](b, true)
}

func FromInt32[D digit.Digit[D]](v int32) BigFixed[D] {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, uint32(v))
	return FromBytes[D](b, false)
}

func FromUint32[D digit.Digit[D]](v uint32) BigFixed[D] {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, v)
	return FromBytes[D](b, true)
}

func FromInt64[D digit.Digit[D]](v int64) BigFixed[D] {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, uint64(v))
	return FromBytes[D](b, false)
}

func FromUint64[D digit.Digit[D]](v uint64) BigFixed[D] {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, v)
	return FromBytes[D](b, true)
}

func FromInt[D digit.Digit[D]](v int) BigFixed[D]   { return FromInt64[D](int64(v)) }
func FromUint[D digit.Digit[D]](v uint) BigFixed[D] { return FromUint64[D](uint64(v)) }

// ToUint64 reads v's low 64 bits as an unsigned integer: a low-bits
// cast with no overflow or sign check. ToUint8/16/32 and ToUint narrow
// the same 64-bit read further, the same low-bits-cast policy applied
// again.
func ToUint64[D digit.Digit[D]](v BigFixed[D]) uint64 {
	return binary.LittleEndian.Uint64(lowBytes(v, 8))
}

func ToUint8[D digit.Digit[D]](v BigFixed[D]) uint8   { return uint8(ToUint64(v)) }
func ToUint16[D digit.Digit[D]](v BigFixed[D]) uint16 { return uint16(ToUint64(v)) }
func ToUint32[D digit.Digit[D]](v BigFixed[D]) uint32 { return uint32(ToUint64(v)) }
func ToUint[D digit.Digit[D]](v BigFixed[D]) uint     { return uint(ToUint64(v)) }

// saturatingInt64 clamps v into [lo, hi] before narrowing to int64: a
// value outside a target's range is pinned to that range's nearest
// bound rather than wrapping.
func saturatingInt64[D digit.Digit[D]](v BigFixed[D], lo, hi int64) int64 {
	if Cmp(v, FromInt64[D](hi)) > 0 {
		return hi
	}
	if Cmp(v, FromInt64[D](lo)) < 0 {
		return lo
	}
	return int64(ToUint64(v))
}

func ToInt8[D digit.Digit[D]](v BigFixed[D]) int8 {
	return int8(saturatingInt64(v, math.MinInt8, math.MaxInt8))
}

func ToInt16[D digit.Digit[D]](v BigFixed[D]) int16 {
	return int16(saturatingInt64(v, math.MinInt16, math.MaxInt16))
}

func ToInt32[D digit.Digit[D]](v BigFixed[D]) int32 {
	return int32(saturatingInt64(v, math.MinInt32, math.MaxInt32))
}

func ToInt64[D digit.Digit[D]](v BigFixed[D]) int64 {
	return saturatingInt64(v, math.MinInt64, math.MaxInt64)
}

func ToInt[D digit.Digit[D]](v BigFixed[D]) int {
	return int(saturatingInt64(v, math.MinInt, math.MaxInt))
}
