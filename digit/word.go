package digit

import (
	"encoding/binary"
	"math/bits"
)

// Word8, Word16, Word32, Word64 are the concrete fixed-width digit
// types. Each repeats the same small set of operations at its own
// width; Go has no way to attach methods to the builtin unsigned
// integer types directly; Go generics can't parameterize over bit
// width either, so the four are spelled out rather than generated.

// ---- Word8 ----

type Word8 uint8

func (Word8) Bits() int      { return 8 }
func (Word8) Zero() Word8    { return 0 }
func (Word8) One() Word8     { return 1 }
func (Word8) AllOnes() Word8 { return 0xFF }

func (x Word8) IsZero() bool { return x == 0 }

func (x Word8) Not() Word8        { return ^x }
func (x Word8) And(y Word8) Word8 { return x & y }
func (x Word8) Or(y Word8) Word8  { return x | y }
func (x Word8) Xor(y Word8) Word8 { return x ^ y }

func (x Word8) Shl(n int) Word8 {
	if n >= 8 {
		return 0
	}
	return x << uint(n)
}

func (x Word8) Shr(n int) Word8 {
	if n >= 8 {
		return 0
	}
	return x >> uint(n)
}

func (x Word8) Add(y Word8) Word8 { return x + y }
func (x Word8) Sub(y Word8) Word8 { return x - y }
func (x Word8) Mul(y Word8) Word8 { return x * y }
func (x Word8) Neg() Word8        { return -x }

func (x Word8) CombinedAdd(y Word8) (lo Word8, carry Word8) {
	sum := uint16(x) + uint16(y)
	lo = Word8(sum)
	if sum>>8 != 0 {
		carry = 1
	}
	return lo, carry
}

func (x Word8) CombinedMul(y Word8) (lo Word8, hi Word8) {
	product := uint16(x) * uint16(y)
	return Word8(product), Word8(product >> 8)
}

func (x Word8) Cmp(y Word8) int {
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	default:
		return 0
	}
}

func (x Word8) LeadingZeros() int  { return bits.LeadingZeros8(uint8(x)) }
func (x Word8) LeadingOnes() int   { return bits.LeadingZeros8(^uint8(x)) }
func (x Word8) TrailingZeros() int { return min(bits.TrailingZeros8(uint8(x)), 8) }
func (x Word8) TrailingOnes() int  { return min(bits.TrailingZeros8(^uint8(x)), 8) }
func (x Word8) Uint64() uint64     { return uint64(x) }
func (Word8) FromUint64(u uint64) Word8 { return Word8(u) }
func (x Word8) Bytes() []byte           { return []byte{uint8(x)} }
func (Word8) FromBytesLE(b []byte) Word8 { return Word8(b[0]) }

// ---- Word16 ----

type Word16 uint16

func (Word16) Bits() int      { return 16 }
func (Word16) Zero() Word16   { return 0 }
func (Word16) One() Word16    { return 1 }
func (Word16) AllOnes() Word16 { return 0xFFFF }

func (x Word16) IsZero() bool { return x == 0 }

func (x Word16) Not() Word16          { return ^x }
func (x Word16) And(y Word16) Word16  { return x & y }
func (x Word16) Or(y Word16) Word16   { return x | y }
func (x Word16) Xor(y Word16) Word16  { return x ^ y }

func (x Word16) Shl(n int) Word16 {
	if n >= 16 {
		return 0
	}
	return x << uint(n)
}

func (x Word16) Shr(n int) Word16 {
	if n >= 16 {
		return 0
	}
	return x >> uint(n)
}

func (x Word16) Add(y Word16) Word16 { return x + y }
func (x Word16) Sub(y Word16) Word16 { return x - y }
func (x Word16) Mul(y Word16) Word16 { return x * y }
func (x Word16) Neg() Word16         { return -x }

func (x Word16) CombinedAdd(y Word16) (lo Word16, carry Word16) {
	sum := uint32(x) + uint32(y)
	lo = Word16(sum)
	if sum>>16 != 0 {
		carry = 1
	}
	return lo, carry
}

func (x Word16) CombinedMul(y Word16) (lo Word16, hi Word16) {
	product := uint32(x) * uint32(y)
	return Word16(product), Word16(product >> 16)
}

func (x Word16) Cmp(y Word16) int {
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	default:
		return 0
	}
}

func (x Word16) LeadingZeros() int  { return bits.LeadingZeros16(uint16(x)) }
func (x Word16) LeadingOnes() int   { return bits.LeadingZeros16(^uint16(x)) }
func (x Word16) TrailingZeros() int { return min(bits.TrailingZeros16(uint16(x)), 16) }
func (x Word16) TrailingOnes() int  { return min(bits.TrailingZeros16(^uint16(x)), 16) }
func (x Word16) Uint64() uint64     { return uint64(x) }
func (Word16) FromUint64(u uint64) Word16 { return Word16(u) }
func (x Word16) Bytes() []byte {
	b := make([]byte, 2)
	binary.LittleEndian.PutUint16(b, uint16(x))
	return b
}
func (Word16) FromBytesLE(b []byte) Word16 { return Word16(binary.LittleEndian.Uint16(b)) }

// ---- Word32 ----

type Word32 uint32

func (Word32) Bits() int       { return 32 }
func (Word32) Zero() Word32    { return 0 }
func (Word32) One() Word32     { return 1 }
func (Word32) AllOnes() Word32 { return 0xFFFFFFFF }

func (x Word32) IsZero() bool { return x == 0 }

func (x Word32) Not() Word32         { return ^x }
func (x Word32) And(y Word32) Word32 { return x & y }
func (x Word32) Or(y Word32) Word32  { return x | y }
func (x Word32) Xor(y Word32) Word32 { return x ^ y }

func (x Word32) Shl(n int) Word32 {
	if n >= 32 {
		return 0
	}
	return x << uint(n)
}

func (x Word32) Shr(n int) Word32 {
	if n >= 32 {
		return 0
	}
	return x >> uint(n)
}

func (x Word32) Add(y Word32) Word32 { return x + y }
func (x Word32) Sub(y Word32) Word32 { return x - y }
func (x Word32) Mul(y Word32) Word32 { return x * y }
func (x Word32) Neg() Word32         { return -x }

func (x Word32) CombinedAdd(y Word32) (lo Word32, carry Word32) {
	sum := uint64(x) + uint64(y)
	lo = Word32(sum)
	if sum>>32 != 0 {
		carry = 1
	}
	return lo, carry
}

func (x Word32) CombinedMul(y Word32) (lo Word32, hi Word32) {
	product := uint64(x) * uint64(y)
	return Word32(product), Word32(product >> 32)
}

func (x Word32) Cmp(y Word32) int {
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	default:
		return 0
	}
}

func (x Word32) LeadingZeros() int  { return bits.LeadingZeros32(uint32(x)) }
func (x Word32) LeadingOnes() int   { return bits.LeadingZeros32(^uint32(x)) }
func (x Word32) TrailingZeros() int { return min(bits.TrailingZeros32(uint32(x)), 32) }
func (x Word32) TrailingOnes() int  { return min(bits.TrailingZeros32(^uint32(x)), 32) }
func (x Word32) Uint64() uint64     { return uint64(x) }
func (Word32) FromUint64(u uint64) Word32 { return Word32(u) }
func (x Word32) Bytes() []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, uint32(x))
	return b
}
func (Word32) FromBytesLE(b []byte) Word32 { return Word32(binary.LittleEndian.Uint32(b)) }

// ---- Word64 ----

type Word64 uint64

func (Word64) Bits() int       { return 64 }
func (Word64) Zero() Word64    { return 0 }
func (Word64) One() Word64     { return 1 }
func (Word64) AllOnes() Word64 { return 0xFFFFFFFFFFFFFFFF }

func (x Word64) IsZero() bool { return x == 0 }

func (x Word64) Not() Word64         { return ^x }
func (x Word64) And(y Word64) Word64 { return x & y }
func (x Word64) Or(y Word64) Word64  { return x | y }
func (x Word64) Xor(y Word64) Word64 { return x ^ y }

func (x Word64) Shl(n int) Word64 {
	if n >= 64 {
		return 0
	}
	return x << uint(n)
}

func (x Word64) Shr(n int) Word64 {
	if n >= 64 {
		return 0
	}
	return x >> uint(n)
}

func (x Word64) Add(y Word64) Word64 { return x + y }
func (x Word64) Sub(y Word64) Word64 { return x - y }
func (x Word64) Mul(y Word64) Word64 { return x * y }
func (x Word64) Neg() Word64         { return -x }

func (x Word64) CombinedAdd(y Word64) (lo Word64, carry Word64) {
	sum, c := bits.Add64(uint64(x), uint64(y), 0)
	lo = Word64(sum)
	carry = Word64(c)
	return lo, carry
}

func (x Word64) CombinedMul(y Word64) (lo Word64, hi Word64) {
	hiv, lov := bits.Mul64(uint64(x), uint64(y))
	return Word64(lov), Word64(hiv)
}

func (x Word64) Cmp(y Word64) int {
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	default:
		return 0
	}
}

func (x Word64) LeadingZeros() int  { return bits.LeadingZeros64(uint64(x)) }
func (x Word64) LeadingOnes() int   { return bits.LeadingZeros64(^uint64(x)) }
func (x Word64) TrailingZeros() int { return min(bits.TrailingZeros64(uint64(x)), 64) }
func (x Word64) TrailingOnes() int  { return min(bits.TrailingZeros64(^uint64(x)), 64) }
func (x Word64) Uint64() uint64     { return uint64(x) }
func (Word64) FromUint64(u uint64) Word64 { return Word64(u) }
func (x Word64) Bytes() []byte {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, uint64(x))
	return b
}
func (Word64) FromBytesLE(b []byte) Word64 { return Word64(binary.LittleEndian.Uint64(b)) }
