package chunk

import "errors"

var (
	// ErrInvalidTagBytes is returned when a chunk type byte is not an ASCII letter.
	ErrInvalidTagBytes = errors.New("chunk type byte is not an ASCII letter")
	// ErrInvalidTagString is returned when a textual chunk type is not exactly 4 bytes.
	ErrInvalidTagString = errors.New("chunk type string is not 4 bytes")
	// ErrChecksumMismatch is returned when a decoded chunk's stored CRC disagrees
	// with the CRC recomputed over its type and payload.
	ErrChecksumMismatch = errors.New("chunk CRC mismatch")
	// ErrNonUTF8Payload is returned when a chunk payload requested as text is not valid UTF-8.
	ErrNonUTF8Payload = errors.New("chunk data is not valid UTF-8")
	// ErrTruncated is returned when a buffer is too short for a declared field.
	ErrTruncated = errors.New("truncated chunk")
)
