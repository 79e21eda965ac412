package wire

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Decode errors. Every failure returned by this package matches exactly one
// of ErrShortBuffer, ErrInvalidWireType or ErrConversionOverflow via
// errors.Is; ErrEmptyBuffer and ErrDeprecatedWireType are narrower sub-cases.
var (
	ErrEmptyBuffer        = errors.New("can not read beyond end of buffer")
	ErrShortBuffer        = errors.New("buffer too short")
	ErrInvalidWireType    = errors.New("failed to parse wire type")
	ErrDeprecatedWireType = errors.New("deprecated group wire type")
	ErrConversionOverflow = errors.New("varint does not fit target integer")
)

// DecodeError describes a failed decode at a cursor offset.
type DecodeError struct {
	Op     string // e.g. "varint", "tag", "fixed64"
	Offset int    // offset at which the failed read started
	Err    error  // one of the package sentinels
	Reason error  // optional narrower sentinel, e.g. ErrDeprecatedWireType
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	if e.Reason != nil {
		return fmt.Sprintf("decode %s at offset %d: %v: %v", e.Op, e.Offset, e.Err, e.Reason)
	}
	return fmt.Sprintf("decode %s at offset %d: %v", e.Op, e.Offset, e.Err)
}

// Unwrap returns the underlying sentinel.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is. An empty buffer is also a short buffer.
func (e *DecodeError) Is(target error) bool {
	switch {
	case target == e.Err:
		return true
	case e.Reason != nil && target == e.Reason:
		return true
	case target == ErrShortBuffer && e.Err == ErrEmptyBuffer:
		return true
	}
	return false
}

func newDecodeError(op string, off int, err error) *DecodeError {
	return &DecodeError{Op: op, Offset: off, Err: err}
}

// shortBuffer reports ErrEmptyBuffer when nothing is left at off, and
// ErrShortBuffer otherwise.
func shortBuffer(op string, buf []byte, off int) *DecodeError {
	if off >= len(buf) {
		return newDecodeError(op, off, ErrEmptyBuffer)
	}
	return newDecodeError(op, off, ErrShortBuffer)
}
