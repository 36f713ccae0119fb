package access

// Guards run before a primitive touches the buffer, so a failed check
// leaves both the bytes and the cursor as they were.

func violate(op, reason string) {
	panic(&ContractError{Op: op, Reason: reason})
}

func requireCursor(op string, c *Cursor) {
	if c == nil {
		violate(op, "nil cursor")
	}
	if c.buf == nil {
		violate(op, "nil buffer")
	}
}

func requireRoom(op string, c *Cursor, need int) {
	requireCursor(op, c)
	if rem := c.Remaining(); need < 0 || rem < need {
		panic(&ContractError{Op: op, Need: need, Remaining: rem})
	}
}

func requireSource(op string, b []byte, size uint32) {
	if size == 0 {
		return
	}
	if b == nil {
		violate(op, "nil source with non-zero size")
	}
	if uint64(size) > uint64(len(b)) {
		violate(op, "size exceeds source length")
	}
}
