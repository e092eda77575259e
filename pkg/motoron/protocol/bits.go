package protocol

// Max14 is the largest value a 14-bit field can carry.
const Max14 = 0x3FFF

// put14 writes v as two 7-bit bytes, low group first.
func put14(b []byte, v uint16) {
	b[0] = byte(v & 0x7F)
	b[1] = byte((v >> 7) & 0x7F)
}

// get14 reassembles a value written by put14.
func get14(b []byte) uint16 {
	return uint16(b[0]&0x7F) | uint16(b[1]&0x7F)<<7
}

// twos returns the two's-complement bit pattern of v. Only the low 14 bits
// reach the wire, which is enough for values within ±0x1FFF.
func twos(v int16) uint16 {
	return uint16(int32(v) & 0xFFFF)
}
