package fsutil

import "errors"

var (
	// ErrDecode is joined onto failures unmarshaling a file's contents.
	ErrDecode = errors.New("fsutil: failed to decode file")

	// ErrEncode is joined onto failures marshaling a value for writing.
	ErrEncode = errors.New("fsutil: failed to encode value")
)
