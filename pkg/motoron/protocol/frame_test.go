package protocol

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadLength(t *testing.T) {
	require.Equal(t, 4, ReadLength(GetFirmwareVersion{}, false))
	require.Equal(t, 5, ReadLength(GetFirmwareVersion{}, true))
	require.Equal(t, 0, ReadLength(&SetSpeed{}, false))
	require.Equal(t, 1, ReadLength(&SetSpeed{}, true))
	require.Equal(t, 33, ReadLength(&ReadEeprom{Length: 32}, true))
}

func TestDecodeFirmwareVersion(t *testing.T) {
	payload := []byte{0x10, 0x27, 0x02, 0x01}
	frame := append(append([]byte{}, payload...), Checksum(payload))

	var v FirmwareVersion
	require.NoError(t, Decode(frame, true, &v))
	require.Equal(t, uint16(0x2710), v.ProductID)
	require.Equal(t, uint8(2), v.Minor)
	require.Equal(t, uint8(1), v.Major)
	require.Equal(t, "product 0x2710 firmware 1.02", v.String())

	var w FirmwareVersion
	require.NoError(t, Decode(payload, false, &w))
	require.Equal(t, v, w)
}

func TestDecodeCRCMismatch(t *testing.T) {
	payload := []byte{0x10, 0x27}
	frame := []byte{0x10, 0x27, 0x6B ^ 0x01}
	var r RawBytes
	err := Decode(frame, true, &r)
	require.Error(t, err)
	ce, ok := err.(*ResponseCRCError)
	require.True(t, ok, "unexpected error %v", err)
	require.Equal(t, Checksum(payload), ce.Expected)
	require.Equal(t, byte(0x6A), ce.Actual)
	require.Empty(t, r)

	frame[2] = 0x6B
	require.NoError(t, Decode(frame, true, &r))
	require.Equal(t, RawBytes{0x10, 0x27}, r)
	require.Equal(t, uint16(0x2710), r.Uint16At(0))
}

func TestDecodeEmptyWithCRC(t *testing.T) {
	err := Decode(nil, true, Ack{})
	le, ok := err.(*ResponseLengthError)
	require.True(t, ok, "unexpected error %v", err)
	require.Equal(t, 0, le.Actual)
}

func TestDecodeAck(t *testing.T) {
	require.NoError(t, Decode(nil, false, Ack{}))
	require.NoError(t, Decode([]byte{0}, true, Ack{}))
	require.Error(t, Decode([]byte{1}, false, Ack{}))
}
