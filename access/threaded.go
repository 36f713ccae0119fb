package access

// Pointer-threaded forms: the caller keeps the buffer and the remaining
// count in its own variables and each call moves both forward. *bufp is
// re-sliced past the consumed bytes and *lenp is decremented by the same
// amount.

func threaded(op string, bufp *[]byte, lenp *int) *Cursor {
	if bufp == nil || *bufp == nil {
		violate(op, "nil buffer pointer")
	}
	if lenp == nil {
		violate(op, "nil length pointer")
	}
	if *lenp < 0 || *lenp > len(*bufp) {
		panic(&ContractError{Op: op, Need: *lenp, Remaining: len(*bufp)})
	}
	return &Cursor{buf: (*bufp)[:*lenp]}
}

func commit(c *Cursor, bufp *[]byte, lenp *int) {
	*bufp = (*bufp)[c.pos:]
	*lenp -= c.pos
}

func Pack16(v uint16, bufp *[]byte, lenp *int) {
	c := threaded("Pack16", bufp, lenp)
	c.Pack16(v)
	commit(c, bufp, lenp)
}

func Pack32(v uint32, bufp *[]byte, lenp *int) {
	c := threaded("Pack32", bufp, lenp)
	c.Pack32(v)
	commit(c, bufp, lenp)
}

func Unpack16(valp *uint16, bufp *[]byte, lenp *int) {
	if valp == nil {
		violate("Unpack16", "nil output pointer")
	}
	c := threaded("Unpack16", bufp, lenp)
	*valp = c.Unpack16()
	commit(c, bufp, lenp)
}

func Unpack32(valp *uint32, bufp *[]byte, lenp *int) {
	if valp == nil {
		violate("Unpack32", "nil output pointer")
	}
	c := threaded("Unpack32", bufp, lenp)
	*valp = c.Unpack32()
	commit(c, bufp, lenp)
}

func PackStr(b []byte, size uint32, bufp *[]byte, lenp *int) {
	c := threaded("PackStr", bufp, lenp)
	c.PackStr(b, size)
	commit(c, bufp, lenp)
}

// UnpackStr stores owned bytes in *valp and their count in *sizep. On a
// decode error neither the outputs nor the buffer and count change.
func UnpackStr(valp *[]byte, sizep *uint32, bufp *[]byte, lenp *int) error {
	if valp == nil || sizep == nil {
		violate("UnpackStr", "nil output pointer")
	}
	c := threaded("UnpackStr", bufp, lenp)
	b, size, err := c.UnpackStr()
	if err != nil {
		return err
	}
	*valp, *sizep = b, size
	commit(c, bufp, lenp)
	return nil
}
