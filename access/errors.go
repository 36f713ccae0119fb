package access

import (
	"errors"
	"fmt"
)

// ErrTruncated reports a length prefix that claims more bytes than the
// buffer still holds.
var ErrTruncated = errors.New("length prefix exceeds remaining buffer")

// ErrTooLarge reports a length prefix above the cursor's configured limit.
var ErrTooLarge = errors.New("length prefix exceeds limit")

// DecodeError is returned when untrusted input cannot be decoded.
type DecodeError struct {
	Op        string
	Offset    int    // cursor offset of the length prefix
	Claimed   uint32 // decoded length prefix
	Remaining int    // bytes left after the prefix
	Err       error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: at offset %d: claimed %d bytes, %d remaining: %v",
		e.Op, e.Offset, e.Claimed, e.Remaining, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// ContractError is the panic value raised when a caller breaks a
// precondition. It is a programming error and is never returned.
type ContractError struct {
	Op        string
	Need      int
	Remaining int
	Reason    string
}

func (e *ContractError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s: contract violation: %s", e.Op, e.Reason)
	}
	return fmt.Sprintf("%s: contract violation: need %d bytes, %d remaining",
		e.Op, e.Need, e.Remaining)
}
