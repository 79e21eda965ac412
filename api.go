// Package protozero decodes primitive values from the Protocol Buffers wire
// format without a schema.
//
// The functions here are one-shot helpers over a byte slice. Each returns the
// decoded value and n, the number of bytes consumed from the front of buf.
// Use a wire.Cursor to walk a buffer field by field:
//
//	c := protozero.NewCursor(data)
//	for !c.Done() {
//		tag, err := c.Tag()
//		...
//	}
package protozero

import (
	"github.com/holiman/uint256"
	"golang.org/x/exp/constraints"

	"github.com/anirudhraja/protozero/wire"
)

// ===== CURSOR ACCESS =====

// NewCursor returns a cursor at the start of data.
func NewCursor(data []byte) *wire.Cursor { return wire.NewCursor(data) }

// NewCursorWithConfig returns a cursor at the start of data using cfg.
func NewCursorWithConfig(data []byte, cfg wire.Config) *wire.Cursor {
	return wire.NewCursorWithConfig(data, cfg)
}

// ===== ONE-SHOT DECODERS =====

// DecodeVarint128 decodes a full-width varint from the front of buf.
func DecodeVarint128(buf []byte) (uint256.Int, int, error) {
	return wire.ReadVarint(buf, 0)
}

// DecodeVarint decodes a varint from the front of buf and narrows it to T.
func DecodeVarint[T constraints.Integer](buf []byte) (T, int, error) {
	c := wire.NewCursor(buf)
	v, err := wire.DecodeVarint[T](c)
	return v, c.Offset(), err
}

// DecodeTag decodes a field tag from the front of buf.
func DecodeTag(buf []byte) (wire.Tag, int, error) {
	return wire.ReadTag(buf, 0)
}

// DecodeSint64 decodes a zigzag-encoded sint64 from the front of buf.
func DecodeSint64(buf []byte) (int64, int, error) {
	c := wire.NewCursor(buf)
	v, err := c.Sint64()
	return v, c.Offset(), err
}

// DecodeSint32 decodes a zigzag-encoded sint32 from the front of buf.
func DecodeSint32(buf []byte) (int32, int, error) {
	c := wire.NewCursor(buf)
	v, err := c.Sint32()
	return v, c.Offset(), err
}

// DecodeBytes decodes a length-delimited value from the front of buf. When
// the payload is truncated, n still counts the length prefix.
func DecodeBytes(buf []byte) ([]byte, int, error) {
	return wire.ReadBytes(buf, 0)
}

// DecodeFixed decodes a fixed32 or fixed64 value of type T from the front of
// buf.
func DecodeFixed[T wire.Fixed](buf []byte) (T, int, error) {
	return wire.ReadFixed[T](buf, 0)
}
