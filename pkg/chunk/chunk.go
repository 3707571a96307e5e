package chunk

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/chunkforge/pngchunk/internal"
)

var logger = internal.GetLogger("pngchunk")

// On-disk layout, all integers big-endian:
// [length:4][type:4][data:length][crc:4]
const (
	lengthFieldSize = 4
	typeFieldSize   = 4
	crcFieldSize    = 4
	headerSize      = lengthFieldSize + typeFieldSize

	// Overhead is the number of bytes a serialized chunk occupies beyond its payload.
	Overhead = headerSize + crcFieldSize
)

// Chunk is one length-prefixed, type-tagged, CRC-protected record of a PNG
// stream. The CRC covers the type bytes followed by the payload, not the
// length field.
type Chunk struct {
	dataLength uint32
	chunkType  ChunkType
	data       []byte
	crc        uint32
}

// New builds a chunk from a validated type and an arbitrary payload (which
// may be empty). The payload is copied, so later mutation of the caller's
// slice cannot invalidate the CRC computed here.
func New(chunkType ChunkType, data []byte) *Chunk {
	owned := append([]byte(nil), data...)
	tb := chunkType.Bytes()
	return &Chunk{
		dataLength: uint32(len(owned)),
		chunkType:  chunkType,
		data:       owned,
		crc:        internal.CalculateCRC32Multi(tb[:], owned),
	}
}

// Parse decodes one chunk from the front of buf and reports how many bytes it
// consumed. Trailing bytes belong to the next chunk and are left untouched.
// Every field read is length-guarded, and the stored CRC must match the CRC
// recomputed over type++payload or no chunk is produced.
func Parse(buf []byte) (*Chunk, int, error) {
	if len(buf) < headerSize {
		return nil, 0, fmt.Errorf("%w: %d bytes, chunk header needs %d", ErrTruncated, len(buf), headerSize)
	}

	var lb [4]byte
	copy(lb[:], buf[:lengthFieldSize])
	dataLength := internal.BytesToUInt32BigEndian(lb)

	var tb [4]byte
	copy(tb[:], buf[lengthFieldSize:headerSize])
	chunkType, err := ChunkTypeFromBytes(tb)
	if err != nil {
		return nil, 0, fmt.Errorf("chunk type %q: %w", tb[:], err)
	}

	// 64-bit arithmetic: on a 32-bit platform a declared length >= 2^31
	// would overflow int and sneak past the guard.
	total64 := int64(Overhead) + int64(dataLength)
	if int64(len(buf)) < total64 {
		return nil, 0, fmt.Errorf("%w: %s chunk declares %d payload bytes (%d total), buffer holds %d",
			ErrTruncated, chunkType, dataLength, total64, len(buf))
	}
	total := int(total64)

	data := append([]byte(nil), buf[headerSize:headerSize+int(dataLength)]...)

	var cb [4]byte
	copy(cb[:], buf[total-crcFieldSize:total])
	storedCRC := internal.BytesToUInt32BigEndian(cb)

	calculatedCRC := internal.CalculateCRC32Multi(tb[:], data)
	if storedCRC != calculatedCRC {
		return nil, 0, fmt.Errorf("%w: %s chunk stored 0x%08x, calculated 0x%08x",
			ErrChecksumMismatch, chunkType, storedCRC, calculatedCRC)
	}

	logger.Tracef("parsed %s chunk: %d payload bytes, crc 0x%08x", chunkType, dataLength, storedCRC)
	return &Chunk{
		dataLength: dataLength,
		chunkType:  chunkType,
		data:       data,
		crc:        storedCRC,
	}, total, nil
}

func (c *Chunk) Length() uint32 {
	return c.dataLength
}

func (c *Chunk) Type() ChunkType {
	return c.chunkType
}

func (c *Chunk) Data() []byte {
	return c.data
}

// Checksum recomputes the CRC over type++payload instead of returning the
// stored field, so drift between the two could never go unobserved.
func (c *Chunk) Checksum() uint32 {
	tb := c.chunkType.Bytes()
	return internal.CalculateCRC32Multi(tb[:], c.data)
}

// DataAsString interprets the payload as UTF-8 text.
func (c *Chunk) DataAsString() (string, error) {
	if !utf8.Valid(c.data) {
		return "", ErrNonUTF8Payload
	}
	return string(c.data), nil
}

// Bytes serializes the chunk to its exact on-disk layout:
// 4-byte big-endian length, 4 type bytes, payload, 4-byte big-endian CRC.
func (c *Chunk) Bytes() []byte {
	var buf bytes.Buffer
	buf.Grow(Overhead + len(c.data))

	lb := internal.UInt32ToBytesBigEndian(c.dataLength)
	buf.Write(lb[:])
	tb := c.chunkType.Bytes()
	buf.Write(tb[:])
	buf.Write(c.data)
	cb := internal.UInt32ToBytesBigEndian(c.crc)
	buf.Write(cb[:])

	return buf.Bytes()
}

func (c *Chunk) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Chunk {\n")
	fmt.Fprintf(&sb, "  length: %d\n", c.Length())
	fmt.Fprintf(&sb, "  type: %s\n", c.Type())
	fmt.Fprintf(&sb, "  data: %d bytes\n", len(c.Data()))
	fmt.Fprintf(&sb, "  crc: %d\n", c.Checksum())
	fmt.Fprintf(&sb, "}")
	return sb.String()
}
