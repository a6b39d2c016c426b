package format

import "errors"

var (
	// ErrTruncated indicates the buffer lacked the bytes required for a structure.
	ErrTruncated = errors.New("format: truncated buffer")
	// ErrRange indicates an offset or length that cannot be represented on the wire.
	ErrRange = errors.New("format: value out of range")
)
