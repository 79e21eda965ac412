package wire

import (
	"encoding/binary"
	"unsafe"
)

// Fixed is the set of types that a fixed32 or fixed64 value can be read as.
// The value is a reinterpretation of the little-endian bytes: IEEE-754 for
// floats, two's complement for signed integers.
type Fixed interface {
	~uint32 | ~int32 | ~float32 | ~uint64 | ~int64 | ~float64
}

// ReadFixed reads sizeof(T) little-endian bytes at buf[off] as T and returns
// the offset just past them. On failure the returned offset is off.
func ReadFixed[T Fixed](buf []byte, off int) (T, int, error) {
	v, n, err := readFixed[T](buf, off)
	if err != nil {
		return v, off, err
	}
	return v, n, nil
}

func readFixed[T Fixed](buf []byte, off int) (T, int, *DecodeError) {
	var v T
	size := int(unsafe.Sizeof(v))
	if len(buf)-off < size {
		op := "fixed32"
		if size == 8 {
			op = "fixed64"
		}
		return v, off, shortBuffer(op, buf, off)
	}
	switch size {
	case 4:
		bits := binary.LittleEndian.Uint32(buf[off:])
		v = *(*T)(unsafe.Pointer(&bits))
	case 8:
		bits := binary.LittleEndian.Uint64(buf[off:])
		v = *(*T)(unsafe.Pointer(&bits))
	}
	return v, off + size, nil
}

// DecodeFixed reads a fixed-width value of type T at the cursor.
func DecodeFixed[T Fixed](c *Cursor) (T, error) {
	v, n, err := readFixed[T](c.buf, c.pos)
	if err != nil {
		return v, c.fail(err)
	}
	c.pos = n
	return v, nil
}

// Fixed32 decodes a fixed32 value
func (c *Cursor) Fixed32() (uint32, error) { return DecodeFixed[uint32](c) }

// Fixed64 decodes a fixed64 value
func (c *Cursor) Fixed64() (uint64, error) { return DecodeFixed[uint64](c) }

// Sfixed32 decodes an sfixed32 value
func (c *Cursor) Sfixed32() (int32, error) { return DecodeFixed[int32](c) }

// Sfixed64 decodes an sfixed64 value
func (c *Cursor) Sfixed64() (int64, error) { return DecodeFixed[int64](c) }

// Float32 decodes a float from fixed32 data
func (c *Cursor) Float32() (float32, error) { return DecodeFixed[float32](c) }

// Float64 decodes a double from fixed64 data
func (c *Cursor) Float64() (float64, error) { return DecodeFixed[float64](c) }
