package comm

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/robotalks/motoron.go/pkg/bridge/msgs"
	pb "github.com/robotalks/motoron.go/pkg/proto/motoron/v1"
)

type chanPacketReadWriter struct {
	readCh  chan []byte
	writeCh chan []byte
}

func newChanPacketReadWriter() *chanPacketReadWriter {
	return &chanPacketReadWriter{readCh: make(chan []byte, 4), writeCh: make(chan []byte, 4)}
}

func (c *chanPacketReadWriter) ReadPacket() ([]byte, error) {
	pkt, ok := <-c.readCh
	if !ok {
		return nil, io.EOF
	}
	return pkt, nil
}

func (c *chanPacketReadWriter) WritePacket(pkt []byte) error {
	c.writeCh <- pkt
	return nil
}

func (c *chanPacketReadWriter) send(t *testing.T, typeID, seq uint32, data []byte) {
	typed := &msgs.Typed{Typed: pb.Typed{TypeId: typeID, Sequence: seq, Message: data}}
	pkt, err := typed.Encode()
	require.NoError(t, err)
	c.readCh <- pkt
}

func (c *chanPacketReadWriter) receive(t *testing.T) (*msgs.Typed, interface{}) {
	select {
	case pkt := <-c.writeCh:
		typed, err := msgs.DecodeTyped(pkt)
		require.NoError(t, err)
		msg, err := typed.Decode()
		require.NoError(t, err)
		return typed, msg
	case <-time.After(time.Second):
		t.Fatal("no packet written")
	}
	return nil, nil
}

func waitFor(t *testing.T, cond func() bool) {
	deadline := time.Now().Add(time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatal("condition not met")
		}
		time.Sleep(time.Millisecond)
	}
}

func TestPipeRepliesWithSequence(t *testing.T) {
	rw := newChanPacketReadWriter()
	pipe := NewPipe(rw, HandleCommandFunc(func(ctx context.Context, cmd *Command) {
		if _, ok := cmd.Msg.(*msgs.CoastNow); ok {
			cmd.Done(msgs.NewCommandOK())
			return
		}
		cmd.Done(msgs.NewCommandErr(msgs.ErrUnsupportedCommand))
	}))
	done := make(chan error, 1)
	go func() { done <- pipe.Run(context.Background()) }()

	rw.send(t, msgs.CoastNowTypeID, 7, nil)
	typed, msg := rw.receive(t)
	require.Equal(t, uint32(7), typed.Sequence)
	require.IsType(t, &msgs.CommandOK{}, msg)

	rw.send(t, msgs.StatusQueryTypeID, 8, nil)
	typed, msg = rw.receive(t)
	require.Equal(t, uint32(8), typed.Sequence)
	require.EqualError(t, msg.(*msgs.CommandErr), msgs.ErrUnsupportedCommand.Error())

	// unknown types are answered without reaching the handler
	rw.send(t, msgs.GroupCustom|0x42, 9, nil)
	typed, msg = rw.receive(t)
	require.Equal(t, uint32(9), typed.Sequence)
	require.IsType(t, &msgs.CommandErr{}, msg)

	// events and replies from peers are ignored
	rw.send(t, msgs.StatusEventTypeID, 10, nil)
	rw.send(t, msgs.CommandOKTypeID, 11, nil)
	rw.readCh <- []byte{0xff, 0xff}
	rw.send(t, msgs.CoastNowTypeID, 12, nil)
	typed, _ = rw.receive(t)
	require.Equal(t, uint32(12), typed.Sequence)

	close(rw.readCh)
	require.Equal(t, io.EOF, <-done)
}

func TestHubBroadcastsEvents(t *testing.T) {
	hub := NewHub(nil)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	rw1, rw2 := newChanPacketReadWriter(), newChanPacketReadWriter()
	go hub.Serve(ctx, rw1)
	go hub.Serve(ctx, rw2)
	waitFor(t, func() bool { return hub.Len() == 2 })

	event := &msgs.StatusEvent{StatusEvent: pb.StatusEvent{Flags: 0x200, FlagNames: []string{"reset"}}}
	require.NoError(t, hub.SendEvent(event))
	for _, rw := range []*chanPacketReadWriter{rw1, rw2} {
		typed, msg := rw.receive(t)
		require.True(t, typed.IsEvent())
		require.Equal(t, uint32(0x200), msg.(*msgs.StatusEvent).Flags)
	}

	// commands without a handler are unsupported
	rw1.send(t, msgs.CoastNowTypeID, 1, nil)
	_, msg := rw1.receive(t)
	require.IsType(t, &msgs.CommandErr{}, msg)

	close(rw2.readCh)
	waitFor(t, func() bool { return hub.Len() == 1 })
}
