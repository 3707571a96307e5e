package internal

import "hash/crc32"

// CalculateCRC32 computes the CRC-32 checksum of the data using the IEEE polynomial,
// which is the most common CRC32 standard and the one PNG chunks carry.
func CalculateCRC32(data []byte) uint32 {
	return crc32.ChecksumIEEE(data)
}

func VerifyCRC32(data []byte, crc uint32) bool {
	return crc32.ChecksumIEEE(data) == crc
}

// CalculateCRC32Multi checksums several byte slices as one logical stream,
// so callers don't have to concatenate them first.
func CalculateCRC32Multi(parts ...[]byte) uint32 {
	h := crc32.NewIEEE()
	for _, p := range parts {
		h.Write(p)
	}
	return h.Sum32()
}
