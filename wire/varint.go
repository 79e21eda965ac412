package wire

import (
	"math"
	"unsafe"

	"github.com/holiman/uint256"
	"golang.org/x/exp/constraints"
)

// MaxVarintLen is the maximum number of bytes a varint may occupy. Decoding
// stops after this many bytes even if the continuation bit is still set.
const MaxVarintLen = 10

// ReadVarint decodes the varint starting at buf[off] and returns its value
// and the offset just past it. On failure the returned offset is off.
//
// The value is accumulated in 256 bits, so the 70 payload bits that 10 groups
// can carry are never lost; narrow it with DecodeVarint or the Cursor helpers.
func ReadVarint(buf []byte, off int) (uint256.Int, int, error) {
	v, n, err := readVarint(buf, off)
	if err != nil {
		return v, off, err
	}
	return v, n, nil
}

func readVarint(buf []byte, off int) (uint256.Int, int, *DecodeError) {
	var acc uint256.Int
	var lo uint64
	for i := 0; i < MaxVarintLen; i++ {
		if off+i >= len(buf) {
			return acc, off, shortBuffer("varint", buf, off)
		}
		b := buf[off+i]
		if i == MaxVarintLen-1 {
			// Tenth group carries bits 63..69; continuation is ignored.
			var hi uint256.Int
			hi.SetUint64(uint64(b & 0x7f))
			hi.Lsh(&hi, 63)
			acc.SetUint64(lo)
			acc.Or(&acc, &hi)
			return acc, off + MaxVarintLen, nil
		}
		lo |= uint64(b&0x7f) << (7 * uint(i))
		if b&0x80 == 0 {
			acc.SetUint64(lo)
			return acc, off + i + 1, nil
		}
	}
	return acc, off, shortBuffer("varint", buf, off) // unreachable
}

// narrow converts v to T if it fits without loss.
func narrow[T constraints.Integer](v *uint256.Int) (T, bool) {
	var zero T
	bits := int(unsafe.Sizeof(zero)) * 8
	if ^zero < 0 {
		bits--
	}
	if v.BitLen() > bits {
		return zero, false
	}
	return T(v.Uint64()), true
}

// readVarintAs decodes a varint and narrows it to T. The offset does not move
// when the value does not fit.
func readVarintAs[T constraints.Integer](op string, buf []byte, off int) (T, int, *DecodeError) {
	v, n, err := readVarint(buf, off)
	if err != nil {
		err.Op = op
		return 0, off, err
	}
	t, ok := narrow[T](&v)
	if !ok {
		return 0, off, newDecodeError(op, off, ErrConversionOverflow)
	}
	return t, n, nil
}

// DecodeVarint decodes a varint at the cursor and narrows it to T, failing
// with ErrConversionOverflow if it does not fit. Negative targets are not
// sign-extended: -1 encoded as a 10-byte varint overflows int64. Use
// Cursor.Int64 for protobuf int64 semantics.
func DecodeVarint[T constraints.Integer](c *Cursor) (T, error) {
	v, n, err := readVarintAs[T]("varint", c.buf, c.pos)
	if err != nil {
		return v, c.fail(err)
	}
	c.pos = n
	return v, nil
}

// Varint decodes the varint at the cursor at full width.
func (c *Cursor) Varint() (uint256.Int, error) {
	v, n, err := readVarint(c.buf, c.pos)
	if err != nil {
		return v, c.fail(err)
	}
	c.pos = n
	return v, nil
}

// Uint64 decodes a uint64 varint.
func (c *Cursor) Uint64() (uint64, error) {
	return DecodeVarint[uint64](c)
}

// Uint32 decodes a uint32 varint.
func (c *Cursor) Uint32() (uint32, error) {
	return DecodeVarint[uint32](c)
}

// Int64 decodes a protobuf int64: the 64-bit varint reinterpreted as two's
// complement.
func (c *Cursor) Int64() (int64, error) {
	v, n, err := readVarintAs[uint64]("int64", c.buf, c.pos)
	if err != nil {
		return 0, c.fail(err)
	}
	c.pos = n
	return int64(v), nil
}

// Int32 decodes a protobuf int32. Negative values arrive sign-extended to 64
// bits; anything outside the int32 range is rejected.
func (c *Cursor) Int32() (int32, error) {
	return c.varint32("int32")
}

// Enum decodes an enum number, which shares the int32 encoding.
func (c *Cursor) Enum() (int32, error) {
	return c.varint32("enum")
}

func (c *Cursor) varint32(op string) (int32, error) {
	v, n, err := readVarintAs[uint64](op, c.buf, c.pos)
	if err != nil {
		return 0, c.fail(err)
	}
	s := int64(v)
	if s < math.MinInt32 || s > math.MaxInt32 {
		return 0, c.fail(newDecodeError(op, c.pos, ErrConversionOverflow))
	}
	c.pos = n
	return int32(s), nil
}

// Bool decodes a varint as bool; any non-zero value is true.
func (c *Cursor) Bool() (bool, error) {
	v, n, err := readVarintAs[uint64]("bool", c.buf, c.pos)
	if err != nil {
		return false, c.fail(err)
	}
	c.pos = n
	return v != 0, nil
}

// Sint64 decodes a zigzag-encoded signed varint as int64
func (c *Cursor) Sint64() (int64, error) {
	v, n, err := readVarintAs[uint64]("sint64", c.buf, c.pos)
	if err != nil {
		return 0, c.fail(err)
	}
	c.pos = n
	return DecodeZigZag64(v), nil
}

// Sint32 decodes a zigzag-encoded signed varint as int32. Only the low 32
// bits of the raw value take part, matching the protobuf runtime.
func (c *Cursor) Sint32() (int32, error) {
	v, n, err := readVarintAs[uint64]("sint32", c.buf, c.pos)
	if err != nil {
		return 0, c.fail(err)
	}
	c.pos = n
	return DecodeZigZag32(v), nil
}

// UTILITY FUNCTIONS

// DecodeZigZag32 decodes a zigzag-encoded 32-bit integer
func DecodeZigZag32(encoded uint64) int32 {
	v := uint32(encoded)
	return int32(v>>1) ^ -int32(v&1)
}

// DecodeZigZag64 decodes a zigzag-encoded 64-bit integer
func DecodeZigZag64(encoded uint64) int64 {
	return int64(encoded>>1) ^ -int64(encoded&1)
}
