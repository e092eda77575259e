package msgs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	pb "github.com/robotalks/motoron.go/pkg/proto/motoron/v1"
)

func TestTypedEnvelope(t *testing.T) {
	msg := &SetMultiSpeed{SetMultiSpeed: pb.SetMultiSpeed{
		Speeds: []*pb.MotorSpeed{{Motor: 0, Speed: 0.5}, {Motor: 2, Speed: -1}},
		Now:    true,
	}}
	typed, err := TypedFrom(msg)
	require.NoError(t, err)
	typed.Sequence = 42
	require.True(t, typed.IsCommand())
	require.False(t, typed.IsReply())

	data, err := typed.Encode()
	require.NoError(t, err)
	decoded, err := DecodeTyped(data)
	require.NoError(t, err)
	require.Equal(t, uint32(42), decoded.Sequence)
	require.Equal(t, SetMultiSpeedTypeID, decoded.TypeId)

	out, err := decoded.Decode()
	require.NoError(t, err)
	multi, ok := out.(*SetMultiSpeed)
	require.True(t, ok)
	require.True(t, multi.Now)
	require.Len(t, multi.Speeds, 2)
	require.Equal(t, int32(2), multi.Speeds[1].Motor)
	require.Equal(t, -1.0, multi.Speeds[1].Speed)
	require.Equal(t, "SetMultiSpeed", TypeName(out))
}

func TestTypedKinds(t *testing.T) {
	testCases := []struct {
		msg   SerializableMessage
		event bool
		reply bool
	}{
		{&CommandOK{}, false, true},
		{NewCommandErr(errors.New("x")), false, true},
		{&FirmwareVersion{}, false, true},
		{&Status{}, false, true},
		{&StatusQuery{}, false, false},
		{&SetCRC{}, false, false},
		{&StatusEvent{}, true, false},
	}
	for _, tc := range testCases {
		t.Run(TypeName(tc.msg), func(t *testing.T) {
			typed, err := TypedFrom(tc.msg)
			require.NoError(t, err)
			require.Equal(t, tc.event, typed.IsEvent())
			require.Equal(t, !tc.event, typed.IsCommand())
			require.Equal(t, tc.reply, typed.IsReply())
		})
	}
}

func TestTypedUnknown(t *testing.T) {
	typed := &Typed{Typed: pb.Typed{TypeId: GroupCustom | 1}}
	_, err := typed.Decode()
	require.Equal(t, &UnknownTypeError{TypeID: GroupCustom | 1}, err)

	_, err = TypedFrom(nil)
	require.Equal(t, ErrNotSerializable, err)
}

func TestCommandErr(t *testing.T) {
	e := NewCommandErr(errors.New("motor 3 out of range"))
	typed, err := TypedFrom(e)
	require.NoError(t, err)
	out, err := typed.Decode()
	require.NoError(t, err)
	require.EqualError(t, out.(*CommandErr), "motor 3 out of range")
}
