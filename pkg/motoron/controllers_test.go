package motoron

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestMotorChannels(t *testing.T) {
	testCases := []struct {
		ct       ControllerType
		channels int
	}{
		{M1T550, 1}, {M1U550, 1}, {M1T256, 1}, {M1U256, 1},
		{M2T550, 2}, {M2U550, 2}, {M2T256, 2}, {M2U256, 2},
		{M2S24v14, 2}, {M2H24v14, 2}, {M2S24v16, 2}, {M2H24v16, 2},
		{M2S18v18, 2}, {M2H18v18, 2}, {M2S18v20, 2}, {M2H18v20, 2},
		{M3S550, 3}, {M3H550, 3}, {M3S256, 3}, {M3H256, 3},
	}
	require.Len(t, testCases, len(ControllerTypes()))
	for _, tc := range testCases {
		t.Run(tc.ct.String(), func(t *testing.T) {
			require.Equal(t, tc.channels, tc.ct.MotorChannels())
			ct, err := ParseControllerType(tc.ct.String())
			require.NoError(t, err)
			require.Equal(t, tc.ct, ct)
		})
	}
}

func TestParseControllerType(t *testing.T) {
	ct, err := ParseControllerType("m2s24V14")
	require.NoError(t, err)
	require.Equal(t, M2S24v14, ct)

	_, err = ParseControllerType("M4T256")
	require.Equal(t, ErrUnknownController, errors.Cause(err))
}

func TestUnknownControllerType(t *testing.T) {
	ct := ControllerType(42)
	require.False(t, ct.IsValid())
	require.Equal(t, 0, ct.MotorChannels())
	require.Equal(t, "unknown", ct.String())
}
