package bridge

import (
	"context"
	"time"

	"github.com/golang/glog"

	"github.com/robotalks/motoron.go/pkg/bridge/comm"
	"github.com/robotalks/motoron.go/pkg/bridge/msgs"
	fx "github.com/robotalks/motoron.go/pkg/framework"
	"github.com/robotalks/motoron.go/pkg/motoron"
)

// EventSender broadcasts events, e.g. comm.Hub.
type EventSender interface {
	SendEvent(fx.Message) error
}

// Worker owns a Device and executes commands on it from a single
// goroutine. It implements comm.CommandHandler and framework.Runnable.
type Worker struct {
	Device *motoron.Device
	Events EventSender

	// Keepalive is the interval of ResetCommandTimeout, 0 disables it.
	Keepalive time.Duration
	// StatusInterval is the interval of status polling, 0 disables it.
	// A StatusEvent is sent when the flags change.
	StatusInterval time.Duration
	// CommandTimeout is written to the controller when Run starts if set.
	CommandTimeout time.Duration
	// ClearReset clears the reset flag when Run starts so motors can drive.
	ClearReset bool

	cmdCh      chan *comm.Command
	lastStatus *msgs.StatusEvent
}

const commandQueueSize = 16

// NewWorker creates a Worker.
func NewWorker(dev *motoron.Device, events EventSender) *Worker {
	return &Worker{
		Device: dev,
		Events: events,
		cmdCh:  make(chan *comm.Command, commandQueueSize),
	}
}

// Name implements framework.Named.
func (w *Worker) Name() string {
	return "worker"
}

// HandleCommand implements comm.CommandHandler. The command is queued and
// replied by Run.
func (w *Worker) HandleCommand(ctx context.Context, cmd *comm.Command) {
	select {
	case w.cmdCh <- cmd:
	case <-ctx.Done():
		cmd.Done(msgs.NewCommandErr(ctx.Err()))
	}
}

// Run implements framework.Runnable.
func (w *Worker) Run(ctx context.Context) error {
	if w.CommandTimeout > 0 {
		if err := w.Device.SetCommandTimeout(w.CommandTimeout); err != nil {
			return err
		}
	}
	if w.ClearReset {
		if err := w.Device.ClearResetFlag(); err != nil {
			return err
		}
	}
	defer w.drain(ctx)
	keepaliveCh, stopKeepalive := tick(w.Keepalive)
	defer stopKeepalive()
	statusCh, stopStatus := tick(w.StatusInterval)
	defer stopStatus()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case cmd := <-w.cmdCh:
			reply := Execute(w.Device, cmd.Msg)
			if err := cmd.Done(reply); err != nil {
				glog.Warningf("reply %s: %v", msgs.TypeName(cmd.Msg), err)
			}
		case <-keepaliveCh:
			if err := w.Device.ResetCommandTimeout(); err != nil {
				glog.Warningf("keepalive: %v", err)
			}
		case <-statusCh:
			w.pollStatus()
		}
	}
}

// drain fails the commands left in the queue when Run stops.
func (w *Worker) drain(ctx context.Context) {
	for {
		select {
		case cmd := <-w.cmdCh:
			if err := cmd.Done(msgs.NewCommandErr(ctx.Err())); err != nil {
				glog.Warningf("reply %s: %v", msgs.TypeName(cmd.Msg), err)
			}
		default:
			return
		}
	}
}

func (w *Worker) pollStatus() {
	flags, vin, err := readStatus(w.Device)
	if err != nil {
		glog.Warningf("poll status: %v", err)
		return
	}
	if last := w.lastStatus; last != nil && last.Flags == uint32(flags) {
		return
	}
	event := &msgs.StatusEvent{}
	event.Flags = uint32(flags)
	event.VinRaw = uint32(vin)
	event.FlagNames = flags.Names()
	w.lastStatus = event
	glog.V(1).Infof("status %s vin %d", flags, vin)
	if w.Events == nil {
		return
	}
	if err := w.Events.SendEvent(event); err != nil {
		glog.Warningf("send status: %v", err)
	}
}

func tick(interval time.Duration) (<-chan time.Time, func()) {
	if interval <= 0 {
		return nil, func() {}
	}
	ticker := time.NewTicker(interval)
	return ticker.C, ticker.Stop
}
