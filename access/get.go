package access

// Unpack16 reads 2 big-endian bytes.
func (c *Cursor) Unpack16() uint16 {
	requireRoom("Unpack16", c, Width16)
	v, pos := ReadUint16(c.buf, c.pos)
	c.pos = pos
	return v
}

// Unpack32 reads 4 big-endian bytes.
func (c *Cursor) Unpack32() uint32 {
	requireRoom("Unpack32", c, Width32)
	v, pos := ReadUint32(c.buf, c.pos)
	c.pos = pos
	return v
}

// UnpackStr reads a counted string into newly owned storage and returns it
// with its decoded size. The prefix comes from the wire, so a prefix that
// overruns the buffer is reported as a *DecodeError and the cursor does
// not move.
func (c *Cursor) UnpackStr() ([]byte, uint32, error) {
	view, err := c.nextStr("UnpackStr")
	if err != nil {
		return nil, 0, err
	}
	out := c.alloc(len(view))
	copy(out, view)
	return out, uint32(len(view)), nil
}

// UnpackString is UnpackStr for callers that want a string.
func (c *Cursor) UnpackString() (string, error) {
	view, err := c.nextStr("UnpackString")
	if err != nil {
		return "", err
	}
	return string(view), nil
}

// nextStr validates the prefix against the window and advances past the
// string. The returned view aliases the cursor's buffer.
func (c *Cursor) nextStr(op string) ([]byte, error) {
	requireRoom(op, c, StrPrefixSize)

	size, payload := ReadUint32(c.buf, c.pos)
	rem := len(c.buf) - payload
	if c.maxStr != 0 && size > c.maxStr {
		return nil, &DecodeError{Op: op, Offset: c.pos, Claimed: size, Remaining: rem, Err: ErrTooLarge}
	}
	if uint64(size) > uint64(rem) {
		return nil, &DecodeError{Op: op, Offset: c.pos, Claimed: size, Remaining: rem, Err: ErrTruncated}
	}

	end := payload + int(size)
	view := c.buf[payload:end:end]
	c.pos = end
	return view, nil
}
