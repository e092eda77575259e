package protocol

// Encode builds the frame of cmd: opcode, body and, if crc is set, the CRC
// byte over both.
func Encode(cmd Command, crc bool) ([]byte, error) {
	size := 1 + cmd.NumBytes()
	if crc {
		size++
	}
	b := make([]byte, size)
	b[0] = cmd.Code()
	if err := cmd.EncodeBody(b[1 : 1+cmd.NumBytes()]); err != nil {
		return nil, err
	}
	if crc {
		b[size-1] = Checksum(b[:size-1])
	}
	return b, nil
}

// ReadLength returns the size of the response frame expected for cmd.
func ReadLength(cmd Command, crc bool) int {
	n := cmd.ResponseBytes()
	if crc {
		n++
	}
	return n
}

// Decode validates the CRC byte of frame if crc is set and decodes the
// payload into resp.
func Decode(frame []byte, crc bool, resp Response) error {
	if crc {
		if len(frame) == 0 {
			return &ResponseLengthError{Expected: 1, Actual: 0}
		}
		payload, actual := frame[:len(frame)-1], frame[len(frame)-1]
		if expected := Checksum(payload); expected != actual {
			return &ResponseCRCError{Expected: expected, Actual: actual}
		}
		frame = payload
	}
	return resp.Decode(frame)
}
