package bridge

import (
	"context"
	"errors"
	"io/ioutil"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/robotalks/motoron.go/pkg/bridge/comm"
	"github.com/robotalks/motoron.go/pkg/bridge/msgs"
	fx "github.com/robotalks/motoron.go/pkg/framework"
	"github.com/robotalks/motoron.go/pkg/motoron"
	"github.com/robotalks/motoron.go/pkg/motoron/protocol"
	pb "github.com/robotalks/motoron.go/pkg/proto/motoron/v1"
)

type fakeBus struct {
	lock   sync.Mutex
	writes [][]byte
	reads  [][]byte
}

func (f *fakeBus) Write(b []byte) error {
	f.lock.Lock()
	defer f.lock.Unlock()
	f.writes = append(f.writes, append([]byte{}, b...))
	return nil
}

func (f *fakeBus) Read(b []byte) error {
	f.lock.Lock()
	defer f.lock.Unlock()
	if len(f.reads) == 0 || len(f.reads[0]) != len(b) {
		return errors.New("unexpected read")
	}
	copy(b, f.reads[0])
	f.reads = f.reads[1:]
	return nil
}

func (f *fakeBus) Close() error {
	return nil
}

func (f *fakeBus) respond(payload ...byte) {
	f.lock.Lock()
	defer f.lock.Unlock()
	f.reads = append(f.reads, append(payload, protocol.Checksum(payload)))
}

func (f *fakeBus) written() [][]byte {
	f.lock.Lock()
	defer f.lock.Unlock()
	return append([][]byte{}, f.writes...)
}

func newTestDevice(t *testing.T) (*motoron.Device, *fakeBus) {
	fb := &fakeBus{}
	dev, err := motoron.New(fb, motoron.M2T256)
	require.NoError(t, err)
	fb.writes = nil
	return dev, fb
}

func withCRC(b ...byte) []byte {
	return append(b, protocol.Checksum(b))
}

func TestExecuteCommands(t *testing.T) {
	setSpeed := &msgs.SetSpeed{}
	setSpeed.Motor, setSpeed.Speed = 1, 0.5
	setAll := &msgs.SetAllSpeeds{}
	setAll.Speeds, setAll.Now = []float64{0.5, 0.8}, true
	multi := &msgs.SetMultiSpeed{}
	multi.Speeds = []*pb.MotorSpeed{{Motor: 1, Speed: -1}}
	clearFlags := &msgs.ClearLatchedStatusFlags{}
	clearFlags.Flags = uint32(motoron.LatchedFlags)

	testCases := []struct {
		name   string
		msg    fx.Message
		expect [][]byte
	}{
		{"set speed", setSpeed, [][]byte{withCRC(0xD1, 0x02, 0x10, 0x03)}},
		{"set all speeds now", setAll, [][]byte{withCRC(0xE2, 0x10, 0x03, 0x00, 0x05)}},
		{"set multi speed", multi, [][]byte{withCRC(0xD4, 0x02, 0x60, 0x79), withCRC(0xF0)}},
		{"coast", &msgs.CoastNow{}, [][]byte{withCRC(0xA5)}},
		{"reinitialise", &msgs.Reinitialise{}, [][]byte{withCRC(0x96), withCRC(0x8B, 0x07, 0x78)}},
		{"clear flags", clearFlags, [][]byte{withCRC(0xA9, 0x7F, 0x07)}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			dev, fb := newTestDevice(t)
			reply := Execute(dev, tc.msg)
			require.IsType(t, &msgs.CommandOK{}, reply)
			require.Equal(t, tc.expect, fb.written())
		})
	}
}

func TestExecuteInvalid(t *testing.T) {
	dev, fb := newTestDevice(t)
	setSpeed := &msgs.SetSpeed{}
	setSpeed.Motor, setSpeed.Speed = 3, 0.5
	reply, ok := Execute(dev, setSpeed).(*msgs.CommandErr)
	require.True(t, ok)
	require.Contains(t, reply.Message, "motor")
	require.Empty(t, fb.written())

	reply, ok = Execute(dev, &msgs.CommandOK{}).(*msgs.CommandErr)
	require.True(t, ok)
	require.Equal(t, msgs.ErrUnsupportedCommand.Error(), reply.Message)
}

func TestExecuteRejectsUnlatchedFlags(t *testing.T) {
	for _, flags := range []uint32{0x400, 0xFFFF, 0x10000} {
		dev, fb := newTestDevice(t)
		clearFlags := &msgs.ClearLatchedStatusFlags{}
		clearFlags.Flags = flags
		reply, ok := Execute(dev, clearFlags).(*msgs.CommandErr)
		require.True(t, ok, "flags 0x%x accepted", flags)
		require.Contains(t, reply.Message, "flags")
		require.Empty(t, fb.written())
	}
}

func TestExecuteQueries(t *testing.T) {
	dev, fb := newTestDevice(t)
	fb.respond(0x10, 0x27, 0x02, 0x01)
	v, ok := Execute(dev, &msgs.FirmwareVersionQuery{}).(*msgs.FirmwareVersion)
	require.True(t, ok)
	require.Equal(t, uint32(0x2710), v.ProductId)
	require.Equal(t, uint32(1), v.Major)
	require.Equal(t, uint32(2), v.Minor)

	fb.respond(0x00, 0x22)
	fb.respond(0x40, 0x06)
	s, ok := Execute(dev, &msgs.StatusQuery{}).(*msgs.Status)
	require.True(t, ok)
	require.Equal(t, uint32(motoron.FlagReset|motoron.FlagMotorOutputEnabled), s.Flags)
	require.Equal(t, uint32(0x0640), s.VinRaw)
	require.Equal(t, []string{"reset", "output-enabled"}, s.FlagNames)
}

func TestExecuteSetCRC(t *testing.T) {
	dev, fb := newTestDevice(t)
	crc := &msgs.SetCRC{}
	require.IsType(t, &msgs.CommandOK{}, Execute(dev, crc))
	require.Equal(t, [][]byte{withCRC(0x8B, 0x04, 0x7B)}, fb.written())
	require.False(t, dev.Options().CRCForCommands)
	require.False(t, dev.Options().CRCForResponses)
}

type eventRecorder struct {
	lock   sync.Mutex
	events []fx.Message
}

func (r *eventRecorder) SendEvent(msg fx.Message) error {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.events = append(r.events, msg)
	return nil
}

func (r *eventRecorder) count() int {
	r.lock.Lock()
	defer r.lock.Unlock()
	return len(r.events)
}

func TestWorkerPollsStatus(t *testing.T) {
	dev, fb := newTestDevice(t)
	events := &eventRecorder{}
	w := NewWorker(dev, events)
	fb.respond(0x00, 0x02)
	fb.respond(0x40, 0x06)
	w.pollStatus()
	fb.respond(0x00, 0x02)
	fb.respond(0x41, 0x06)
	w.pollStatus()
	require.Equal(t, 1, events.count())
	ev := events.events[0].(*msgs.StatusEvent)
	require.Equal(t, uint32(motoron.FlagReset), ev.Flags)
	require.Equal(t, []string{"reset"}, ev.FlagNames)

	fb.respond(0x00, 0x00)
	fb.respond(0x41, 0x06)
	w.pollStatus()
	require.Equal(t, 2, events.count())
}

type replyRecorder struct {
	ch chan []byte
}

func (r *replyRecorder) ReadPacket() ([]byte, error) {
	select {}
}

func (r *replyRecorder) WritePacket(pkt []byte) error {
	r.ch <- pkt
	return nil
}

func TestWorkerRun(t *testing.T) {
	dev, fb := newTestDevice(t)
	w := NewWorker(dev, nil)
	w.CommandTimeout = 100 * time.Millisecond
	w.ClearReset = true
	w.Keepalive = time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	rec := &replyRecorder{ch: make(chan []byte, 1)}
	pipe := comm.NewPipe(rec, w)
	w.HandleCommand(ctx, comm.NewCommand(9, &msgs.CoastNow{}, pipe))
	select {
	case pkt := <-rec.ch:
		typed, err := msgs.DecodeTyped(pkt)
		require.NoError(t, err)
		require.Equal(t, uint32(9), typed.Sequence)
		require.Equal(t, msgs.CommandOKTypeID, typed.TypeId)
	case <-time.After(time.Second):
		t.Fatal("no reply")
	}

	deadline := time.Now().Add(time.Second)
	for len(fb.written()) < 4 {
		require.True(t, time.Now().Before(deadline), "no keepalive")
		time.Sleep(time.Millisecond)
	}
	cancel()
	require.Equal(t, context.Canceled, <-done)

	writes := fb.written()
	// command timeout is 25 units of 4ms
	require.Equal(t, withCRC(0x9C, 0x00, 0x05, 0x19, 0x00), writes[0])
	require.Equal(t, withCRC(0xA9, 0x00, 0x04), writes[1])
	require.Contains(t, writes, withCRC(0xA5))
	require.Contains(t, writes, withCRC(0xF5))
}

func TestWorkerFailsQueuedCommandsOnStop(t *testing.T) {
	dev, fb := newTestDevice(t)
	w := NewWorker(dev, nil)
	rec := &replyRecorder{ch: make(chan []byte, commandQueueSize)}
	pipe := comm.NewPipe(rec, w)
	for seq := uint32(1); seq <= 3; seq++ {
		w.HandleCommand(context.Background(), comm.NewCommand(seq, &msgs.CoastNow{}, pipe))
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	w.drain(ctx)
	require.Empty(t, fb.written())
	for seq := uint32(1); seq <= 3; seq++ {
		typed, err := msgs.DecodeTyped(<-rec.ch)
		require.NoError(t, err)
		require.Equal(t, seq, typed.Sequence)
		msg, err := typed.Decode()
		require.NoError(t, err)
		reply, ok := msg.(*msgs.CommandErr)
		require.True(t, ok)
		require.Equal(t, context.Canceled.Error(), reply.Message)
	}
}

func TestWorkerRepliesAllOnCancel(t *testing.T) {
	dev, _ := newTestDevice(t)
	w := NewWorker(dev, nil)
	rec := &replyRecorder{ch: make(chan []byte, commandQueueSize)}
	pipe := comm.NewPipe(rec, w)
	for seq := uint32(1); seq <= 5; seq++ {
		w.HandleCommand(context.Background(), comm.NewCommand(seq, &msgs.CoastNow{}, pipe))
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.Equal(t, context.Canceled, w.Run(ctx))
	require.Len(t, rec.ch, 5)
}

func TestConfigLoadFile(t *testing.T) {
	dir, err := ioutil.TempDir("", "motorond")
	require.NoError(t, err)
	defer os.RemoveAll(dir)
	path := filepath.Join(dir, "motorond.toml")
	require.NoError(t, ioutil.WriteFile(path, []byte(`
bus = "serial:///dev/ttyUSB0?baud=9600"
controller = "M3S256"
id = "front"
listen_tcp = ":7070"
keepalive = "250ms"
crc = false

[labels]
side = "front"
`), 0644))

	conf := NewConfig()
	require.NoError(t, conf.LoadFile(path))
	require.Equal(t, "serial:///dev/ttyUSB0?baud=9600", conf.Bus)
	require.Equal(t, "M3S256", conf.Controller)
	require.Equal(t, "front", conf.ID)
	require.Equal(t, ":7070", conf.ListenTCP)
	require.Equal(t, 250*time.Millisecond, conf.Keepalive.Duration)
	require.Equal(t, defaultConfig.StatusInterval, conf.StatusInterval)
	require.False(t, conf.CRC)
	require.Equal(t, map[string]string{"side": "front"}, conf.Labels)
	require.NoError(t, conf.Validate())

	require.Error(t, NewConfig().LoadFile(filepath.Join(dir, "missing.toml")))
}

func TestConfigValidate(t *testing.T) {
	conf := NewConfig()
	conf.ID = "x"
	conf.Controller = "nope"
	require.Error(t, conf.Validate())
	conf.Controller = "M2T256"
	conf.MQTT = ""
	require.Error(t, conf.Validate())
	conf.ListenWS = ":8080"
	require.NoError(t, conf.Validate())
	conf.ID = ""
	require.Error(t, conf.Validate())
}

func TestDurationText(t *testing.T) {
	var d Duration
	require.NoError(t, d.UnmarshalText([]byte("1.5s")))
	require.Equal(t, 1500*time.Millisecond, d.Duration)
	text, err := d.MarshalText()
	require.NoError(t, err)
	require.Equal(t, "1.5s", string(text))
	require.Error(t, d.UnmarshalText([]byte("soon")))
}
