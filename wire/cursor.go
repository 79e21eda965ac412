package wire

// Cursor is a read position over a borrowed byte buffer. Every successful
// decode advances it past the bytes it consumed; a failed decode leaves it
// where it was, except for the length prefix documented on Bytes.
//
// A Cursor must not be used by more than one goroutine at a time. Cursors
// over the same buffer are independent.
type Cursor struct {
	buf []byte
	pos int
	cfg Config
}

// NewCursor creates a cursor at the start of data
func NewCursor(data []byte) *Cursor {
	return &Cursor{buf: data}
}

// NewCursorWithConfig creates a cursor that honours cfg
func NewCursorWithConfig(data []byte, cfg Config) *Cursor {
	return &Cursor{buf: data, cfg: cfg}
}

// Reset rewinds the cursor onto data, keeping its config.
func (c *Cursor) Reset(data []byte) {
	c.buf = data
	c.pos = 0
}

// Offset returns the number of bytes consumed so far.
func (c *Cursor) Offset() int { return c.pos }

// Len returns the number of unread bytes.
func (c *Cursor) Len() int { return len(c.buf) - c.pos }

// Done reports whether every byte has been consumed.
func (c *Cursor) Done() bool { return c.pos >= len(c.buf) }

// Remaining returns the unread bytes. The slice aliases the buffer.
func (c *Cursor) Remaining() []byte { return c.buf[c.pos:] }

// ReadTag decodes the tag starting at buf[off]. It is atomic: on any failure
// the returned offset is off.
func ReadTag(buf []byte, off int) (Tag, int, error) {
	t, n, err := readTag(buf, off)
	if err != nil {
		return t, off, err
	}
	return t, n, nil
}

func readTag(buf []byte, off int) (Tag, int, *DecodeError) {
	v, n, err := readVarintAs[uint64]("tag", buf, off)
	if err != nil {
		return Tag{}, off, err
	}
	num, code := splitTag(v)
	wt, perr := ParseWireType(code)
	if perr != nil {
		de := perr.(*DecodeError)
		de.Op, de.Offset = "tag", off
		return Tag{}, off, de
	}
	if num > uint64(^FieldNumber(0)) {
		return Tag{}, off, newDecodeError("tag", off, ErrConversionOverflow)
	}
	return Tag{Number: FieldNumber(num), Type: wt}, n, nil
}

// Tag decodes the next field tag. An empty cursor reports ErrEmptyBuffer,
// not an invalid wire type.
func (c *Cursor) Tag() (Tag, error) {
	t, n, err := readTag(c.buf, c.pos)
	if err != nil {
		return t, c.fail(err)
	}
	c.pos = n
	return t, nil
}

// Skip consumes one value of the given wire type without decoding it.
func (c *Cursor) Skip(wt WireType) error {
	switch wt {
	case WireVarint:
		_, err := c.Varint()
		return err
	case WireFixed64:
		_, err := c.Fixed64()
		return err
	case WireBytes:
		_, err := c.Bytes()
		return err
	case WireFixed32:
		_, err := c.Fixed32()
		return err
	default:
		_, err := ParseWireType(uint8(wt))
		de := err.(*DecodeError)
		de.Op, de.Offset = "skip", c.pos
		return c.fail(de)
	}
}

// fail traces err when a logger is configured and returns it.
func (c *Cursor) fail(err *DecodeError) error {
	if l := c.cfg.Logger; l != nil {
		l.Debug().
			Str("op", err.Op).
			Int("offset", err.Offset).
			Int("remaining", len(c.buf)-err.Offset).
			AnErr("reason", err.Reason).
			Err(err.Err).
			Msg("wire decode failed")
	}
	return err
}
