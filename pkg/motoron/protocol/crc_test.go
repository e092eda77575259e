package protocol

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestChecksum(t *testing.T) {
	testCases := []struct {
		name   string
		in     []byte
		expect byte
	}{
		{"empty", nil, 0},
		{"zero", []byte{0}, 0},
		{"firmware version", []byte{CmdGetFirmwareVersion}, 0x3C},
		{"reinitialise", []byte{CmdReinitialise}, 0x74},
		{"reset", []byte{CmdReset}, 0x4C},
		{"protocol options", []byte{CmdSetProtocolOptions, 0x07, 0x78}, 0x2F},
		{"set speed", []byte{CmdSetSpeed, 0x01, 0x20, 0x06}, 0x4E},
		{"payload", []byte{1, 2, 3, 4}, 0x47},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expect, Checksum(tc.in))
		})
	}
}

func TestChecksumStable(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		m := make([]byte, rnd.Intn(40))
		rnd.Read(m)
		sum := Checksum(m)
		require.Equal(t, sum, Checksum(m))
		require.Zero(t, sum&0x80)
		// appending the checksum leaves a zero residue
		require.Zero(t, Checksum(append(m, sum)))
	}
}

func TestBits14(t *testing.T) {
	b := make([]byte, 2)
	for v := 0; v <= Max14; v++ {
		put14(b, uint16(v))
		require.Zero(t, b[0]&0x80)
		require.Zero(t, b[1]&0x80)
		require.Equal(t, uint16(v), uint16(b[0])|uint16(b[1])<<7)
		require.Equal(t, uint16(v), get14(b))
	}
}

func TestTwos(t *testing.T) {
	require.Equal(t, uint16(0), twos(0))
	require.Equal(t, uint16(800), twos(800))
	require.Equal(t, uint16(0xFCE0), twos(-800))
	require.Equal(t, uint16(0xFFFF), twos(-1))
}
