package protocol

const crcPoly = 0x91

// Checksum calculates the CRC-7 (reflected, stored in a byte) over b.
// The same function is used for command trailers and response validation.
func Checksum(b []byte) byte {
	var crc byte
	for _, v := range b {
		crc ^= v
		for i := 0; i < 8; i++ {
			if crc&1 != 0 {
				crc ^= crcPoly
			}
			crc >>= 1
		}
	}
	return crc
}
