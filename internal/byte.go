package internal

import "encoding/binary"

// PNG integer fields are big-endian (network byte order).

func BytesToUInt32BigEndian(b [4]byte) uint32 {
	return binary.BigEndian.Uint32(b[:])
}

func UInt32ToBytesBigEndian(i uint32) [4]byte {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], i)
	return b
}
