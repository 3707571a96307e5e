package chunk

import "fmt"

// ChunkType is the 4-byte ASCII-letter identifier naming a chunk's role.
// Bit 5 of each byte (its ASCII case) carries a property defined by the PNG
// spec: ancillary/critical, public/private, reserved, safe-to-copy.
type ChunkType struct {
	b [4]byte
}

// ChunkTypeFromBytes validates that every byte is an ASCII letter and stores
// them verbatim. Case is preserved: it is where the flag bits live.
func ChunkTypeFromBytes(b [4]byte) (ChunkType, error) {
	for _, c := range b {
		if !isASCIILetter(c) {
			return ChunkType{}, fmt.Errorf("%w: 0x%02x", ErrInvalidTagBytes, c)
		}
	}
	return ChunkType{b: b}, nil
}

// ChunkTypeFromString accepts exactly 4 bytes of text, then applies the same
// letter validation as ChunkTypeFromBytes.
func ChunkTypeFromString(s string) (ChunkType, error) {
	if len(s) != 4 {
		return ChunkType{}, fmt.Errorf("%w: got %d bytes", ErrInvalidTagString, len(s))
	}
	var b [4]byte
	copy(b[:], s)
	return ChunkTypeFromBytes(b)
}

func (ct ChunkType) Bytes() [4]byte {
	return ct.b
}

// IsCritical reports whether a decoder must understand this chunk to render
// the image (first byte uppercase).
func (ct ChunkType) IsCritical() bool {
	return isASCIIUpper(ct.b[0])
}

// IsPublic reports whether the chunk type belongs to the public registry
// (second byte uppercase).
func (ct ChunkType) IsPublic() bool {
	return isASCIIUpper(ct.b[1])
}

// IsReservedBitValid reports whether the reserved third byte is uppercase,
// as required of conforming chunk types.
func (ct ChunkType) IsReservedBitValid() bool {
	return isASCIIUpper(ct.b[2])
}

// IsSafeToCopy reports whether an editor may copy this chunk into a modified
// file without understanding it (fourth byte lowercase).
func (ct ChunkType) IsSafeToCopy() bool {
	return isASCIILower(ct.b[3])
}

// IsValid checks the reserved bit only; letter-ness is already enforced at
// construction.
func (ct ChunkType) IsValid() bool {
	return ct.IsReservedBitValid()
}

func (ct ChunkType) String() string {
	return string(ct.b[:])
}

func isASCIIUpper(c byte) bool {
	return c >= 'A' && c <= 'Z'
}

func isASCIILower(c byte) bool {
	return c >= 'a' && c <= 'z'
}

func isASCIILetter(c byte) bool {
	return isASCIIUpper(c) || isASCIILower(c)
}
