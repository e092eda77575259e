package protocol

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	testCases := []struct {
		name   string
		cmd    Command
		expect []byte
	}{
		{"firmware version", GetFirmwareVersion{}, []byte{0x87}},
		{"protocol options all", &SetProtocolOptions{CRCForCommands: true, CRCForResponses: true, I2CGeneralCall: true}, []byte{0x8B, 0x07, 0x78}},
		{"protocol options none", &SetProtocolOptions{}, []byte{0x8B, 0x00, 0x7F}},
		{"protocol options responses", &SetProtocolOptions{CRCForResponses: true}, []byte{0x8B, 0x02, 0x7D}},
		{"read eeprom", &ReadEeprom{Offset: 1, Length: 32}, []byte{0x93, 0x01, 0x20}},
		{"write eeprom", &WriteEeprom{Offset: 0x12, Value: 0xAB}, []byte{0x95, 0x12, 0x00, 0x2B, 0x01, 0x6D, 0x7F, 0x54, 0x7E}},
		{"reinitialise", Reinitialise{}, []byte{0x96}},
		{"reset", Reset{}, []byte{0x99}},
		{"get variables", &GetVariables{Motor: 0, Offset: 1, Length: 2}, []byte{0x9A, 0x00, 0x01, 0x02}},
		{"set variable", &SetVariable{Motor: 1, Offset: 0x0A, Value: 0x1234}, []byte{0x9C, 0x01, 0x0A, 0x34, 0x24}},
		{"set variable max", &SetVariable{Offset: 5, Value: 0x3FFF}, []byte{0x9C, 0x00, 0x05, 0x7F, 0x7F}},
		{"coast now", CoastNow{}, []byte{0xA5}},
		{"clear motor fault", &ClearMotorFault{}, []byte{0xA6, 0x00}},
		{"clear motor fault unconditional", &ClearMotorFault{Unconditional: true}, []byte{0xA6, 0x01}},
		{"clear latched flags", &ClearLatchedStatusFlags{Flags: 0x200}, []byte{0xA9, 0x00, 0x04}},
		{"set latched flags", &SetLatchedStatusFlags{Flags: 0x3FF}, []byte{0xAC, 0x7F, 0x07}},
		{"braking", &SetBraking{Motor: 2, Amount: 800}, []byte{0xB1, 0x02, 0x20, 0x06}},
		{"braking now", &SetBraking{Mode: ApplyNow, Motor: 3, Amount: 0}, []byte{0xB2, 0x03, 0x00, 0x00}},
		{"speed", &SetSpeed{Motor: 1, Speed: 800}, []byte{0xD1, 0x01, 0x20, 0x06}},
		{"speed reverse", &SetSpeed{Motor: 1, Speed: -800}, []byte{0xD1, 0x01, 0x60, 0x79}},
		{"speed now", &SetSpeed{Mode: SpeedNow, Motor: 2, Speed: 1}, []byte{0xD2, 0x02, 0x01, 0x00}},
		{"speed buffered", &SetSpeed{Mode: SpeedBuffered, Motor: 3, Speed: -1}, []byte{0xD4, 0x03, 0x7F, 0x7F}},
		{"all speeds", &SetAllSpeeds{Speeds: []int16{400, -400}}, []byte{0xE1, 0x10, 0x03, 0x70, 0x7C}},
		{"all speeds now", &SetAllSpeeds{Mode: SpeedNow, Speeds: []int16{0}}, []byte{0xE2, 0x00, 0x00}},
		{"all speeds buffered", &SetAllSpeeds{Mode: SpeedBuffered, Speeds: []int16{1, 2, 3}}, []byte{0xE4, 1, 0, 2, 0, 3, 0}},
		{"apply buffers", &SetAllSpeedsUsingBuffers{}, []byte{0xF0}},
		{"apply buffers now", &SetAllSpeedsUsingBuffers{Mode: ApplyNow}, []byte{0xF3}},
		{"reset command timeout", ResetCommandTimeout{}, []byte{0xF5}},
		{"error check", &MultiDeviceErrorCheck{StartingDevice: 1, DeviceCount: 0x7F}, []byte{0xDB, 0x01, 0x7F}},
		{"multi-device write", &MultiDeviceWrite{StartingDevice: 3, DeviceCount: 2, Command: &SetSpeed{Motor: 2, Speed: 100}},
			[]byte{0xF9, 0x03, 0x02, 0x03, 0x51, 0x02, 0x64, 0x00}},
		{"multi-device write no body", &MultiDeviceWrite{DeviceCount: 5, Command: CoastNow{}}, []byte{0xF9, 0x00, 0x05, 0x00, 0x25}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b, err := Encode(tc.cmd, false)
			require.NoError(t, err)
			require.Equal(t, tc.expect, b)
			require.Len(t, b, 1+tc.cmd.NumBytes())
			for _, v := range b[1:] {
				require.Zero(t, v&0x80)
			}

			b, err = Encode(tc.cmd, true)
			require.NoError(t, err)
			require.Equal(t, tc.expect, b[:len(b)-1])
			require.Equal(t, Checksum(tc.expect), b[len(b)-1])
		})
	}
}

func TestEncodeFirmwareVersionWithCRC(t *testing.T) {
	b, err := Encode(GetFirmwareVersion{}, true)
	require.NoError(t, err)
	require.Equal(t, []byte{0x87, Checksum([]byte{0x87})}, b)
	require.Equal(t, []byte{0x87, 0x3C}, b)
}

func TestEncodeInvalid(t *testing.T) {
	testCases := []struct {
		name  string
		cmd   Command
		field string
		value int
	}{
		{"eeprom offset", &ReadEeprom{Offset: 0x80, Length: 1}, "eeprom offset", 0x80},
		{"eeprom length zero", &ReadEeprom{Length: 0}, "eeprom length", 0},
		{"eeprom length", &ReadEeprom{Length: 33}, "eeprom length", 33},
		{"eeprom value", &WriteEeprom{Value: 0x100}, "eeprom value", 0x100},
		{"variables motor", &GetVariables{Motor: 4, Length: 1}, "motor", 4},
		{"variables length", &GetVariables{Length: 0}, "variable length", 0},
		{"variable value", &SetVariable{Value: 0x4000}, "variable value", 0x4000},
		{"variable negative", &SetVariable{Value: -1}, "variable value", -1},
		{"clear flags", &ClearLatchedStatusFlags{Flags: 0x400}, "flags", 0x400},
		{"set flags", &SetLatchedStatusFlags{Flags: -1}, "flags", -1},
		{"speed motor zero", &SetSpeed{Motor: 0}, "motor", 0},
		{"speed motor", &SetSpeed{Motor: 4}, "motor", 4},
		{"speed high", &SetSpeed{Motor: 1, Speed: 801}, "speed", 801},
		{"speed low", &SetSpeed{Motor: 1, Speed: -801}, "speed", -801},
		{"speed mode", &SetSpeed{Mode: SpeedMode(7), Motor: 1}, "speed mode", 7},
		{"all speeds empty", &SetAllSpeeds{}, "speed count", 0},
		{"all speeds too many", &SetAllSpeeds{Speeds: []int16{0, 0, 0, 0}}, "speed count", 4},
		{"all speeds value", &SetAllSpeeds{Speeds: []int16{0, 900}}, "speed", 900},
		{"apply mode", &SetAllSpeedsUsingBuffers{Mode: ApplyMode(2)}, "apply mode", 2},
		{"braking amount", &SetBraking{Motor: 1, Amount: 801}, "braking amount", 801},
		{"braking motor", &SetBraking{Motor: 0}, "motor", 0},
		{"inner command", &MultiDeviceWrite{DeviceCount: 1, Command: &SetSpeed{Motor: 9}}, "motor", 9},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b, err := Encode(tc.cmd, true)
			require.Nil(t, b)
			require.Error(t, err)
			ive, ok := err.(*InvalidValueError)
			require.True(t, ok, "unexpected error %v", err)
			require.Equal(t, tc.field, ive.Field)
			require.Equal(t, tc.value, ive.Value)
		})
	}
}

func TestEncodeBodyLeavesBufferOnError(t *testing.T) {
	b := []byte{0xAA, 0xAA, 0xAA, 0xAA}
	err := (&SetVariable{Motor: 1, Offset: 2, Value: 0x4000}).EncodeBody(b)
	require.Error(t, err)
	require.Equal(t, []byte{0xAA, 0xAA, 0xAA, 0xAA}, b)

	b = make([]byte, 7)
	err = (&MultiDeviceWrite{DeviceCount: 1, Command: &SetSpeed{Motor: 1, Speed: 1000}}).EncodeBody(b)
	require.Error(t, err)
	require.Equal(t, make([]byte, 7), b)
}

func TestEncodeBodyShortBuffer(t *testing.T) {
	require.Equal(t, ErrShortBuffer, (&SetSpeed{Motor: 1}).EncodeBody(make([]byte, 2)))
	require.Equal(t, ErrShortBuffer, (&SetAllSpeeds{Speeds: []int16{1, 2}}).EncodeBody(make([]byte, 3)))
	require.Equal(t, ErrShortBuffer, (&WriteEeprom{}).EncodeBody(make([]byte, 7)))
}

func TestMultiDeviceRange(t *testing.T) {
	testCases := []struct {
		name  string
		cmd   Command
		field string
		value int
	}{
		{"write start", &MultiDeviceWrite{StartingDevice: 0x80, Command: CoastNow{}}, "starting device", 0x80},
		{"write count", &MultiDeviceWrite{DeviceCount: 0x80, Command: CoastNow{}}, "device count", 0x80},
		{"write negative", &MultiDeviceWrite{StartingDevice: -1, Command: CoastNow{}}, "starting device", -1},
		{"check start", &MultiDeviceErrorCheck{StartingDevice: 0x100}, "starting device", 0x100},
		{"check count", &MultiDeviceErrorCheck{DeviceCount: 0x80}, "device count", 0x80},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b, err := Encode(tc.cmd, false)
			require.Nil(t, b)
			mre, ok := err.(*MultiDeviceRangeError)
			require.True(t, ok, "unexpected error %v", err)
			require.Equal(t, tc.field, mre.Field)
			require.Equal(t, tc.value, mre.Value)
		})
	}
}

func TestMultiDeviceWriteNilCommand(t *testing.T) {
	_, err := Encode(&MultiDeviceWrite{DeviceCount: 1}, false)
	require.Equal(t, ErrNilCommand, err)
}

func TestResponseBytes(t *testing.T) {
	require.Equal(t, 4, GetFirmwareVersion{}.ResponseBytes())
	require.Equal(t, 7, (&ReadEeprom{Length: 7}).ResponseBytes())
	require.Equal(t, 2, (&GetVariables{Length: 2}).ResponseBytes())
	require.Equal(t, 1, (&MultiDeviceErrorCheck{}).ResponseBytes())
	require.Equal(t, 0, (&SetSpeed{}).ResponseBytes())
	require.Equal(t, 0, (&MultiDeviceWrite{}).ResponseBytes())
	require.Equal(t, 0, Reinitialise{}.ResponseBytes())
}
