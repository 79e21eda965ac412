package wire

// ReadBytes decodes a length-delimited value at buf[off] and returns the
// payload and the offset just past it.
//
// If the length prefix decodes but fewer than length bytes follow, it fails
// with ErrShortBuffer and the returned offset is just past the prefix: the
// prefix is spent. Any other failure returns off.
func ReadBytes(buf []byte, off int) ([]byte, int, error) {
	b, n, err := readBytes(buf, off)
	if err != nil {
		return nil, n, err
	}
	return b, n, nil
}

func readBytes(buf []byte, off int) ([]byte, int, *DecodeError) {
	length, n, err := readVarintAs[int]("length", buf, off)
	if err != nil {
		return nil, off, err
	}
	if len(buf)-n < length {
		return nil, n, newDecodeError("bytes", n, ErrShortBuffer)
	}
	end := n + length
	return buf[n:end:end], end, nil
}

// Bytes decodes a length-delimited byte array without copying. The slice
// aliases the cursor's buffer and its capacity ends at the payload.
//
// A length prefix followed by too few bytes is consumed even though the call
// fails with ErrShortBuffer.
func (c *Cursor) Bytes() ([]byte, error) {
	b, n, err := readBytes(c.buf, c.pos)
	c.pos = n
	if err != nil {
		return nil, c.fail(err)
	}
	return b, nil
}

// StringValue decodes a length-delimited string. The bytes are copied.
func (c *Cursor) StringValue() (string, error) {
	b, err := c.Bytes()
	if err != nil {
		return "", err
	}
	return string(b), nil
}
