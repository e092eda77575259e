package mqtt

import (
	"context"
	"encoding/json"

	"github.com/golang/glog"

	"github.com/robotalks/motoron.go/pkg/bridge/comm"
)

// Registrar publishes a device on the broker and serves its commands
// through a comm.Hub.
type Registrar struct {
	Queue *Queue
	Info  comm.DeviceInfo
	Hub   *comm.Hub

	metaJSON []byte
}

// NewRegistrar creates a Registrar. The retained <type>/<id>/meta topic
// carries the device meta while connected and is cleared by the will.
func NewRegistrar(brokerURL string, info comm.DeviceInfo, hub *comm.Hub) (*Registrar, error) {
	meta, err := json.Marshal(&info.Meta)
	if err != nil {
		return nil, err
	}
	opts, topicPrefix, err := ClientOptionsFromURL(brokerURL)
	if err != nil {
		return nil, err
	}
	opts.SetBinaryWill(topicPrefix+metaTopic(info.Ref), nil, 1, true)
	if opts.ClientID == "" {
		opts.SetClientID("motoron:" + info.Ref.Name())
	}
	r := &Registrar{
		Queue:    NewQueue(opts, topicPrefix),
		Info:     info,
		Hub:      hub,
		metaJSON: meta,
	}
	r.Queue.OnConnect = func(*Queue) { r.publishMeta(r.metaJSON) }
	return r, nil
}

// Name implements framework.Named.
func (r *Registrar) Name() string {
	return "mqtt"
}

// Run implements framework.Runnable.
func (r *Registrar) Run(ctx context.Context) error {
	rw := NewPacketReadWriter(r.Queue).ForDevice(r.Info.Ref).Open()
	r.Queue.Connect()
	defer r.Queue.Close()
	err := r.Hub.Serve(ctx, rw)
	r.publishMeta(nil)
	if ctx.Err() != nil {
		return ctx.Err()
	}
	return err
}

func (r *Registrar) publishMeta(meta []byte) {
	token := r.Queue.PubWith(metaTopic(r.Info.Ref), meta, 1, true)
	if meta == nil {
		token.Wait()
	}
	if err := token.Error(); err != nil {
		glog.Warningf("publish meta: %v", err)
	}
}

func metaTopic(ref comm.DeviceRef) string {
	return ref.Name() + "/meta"
}

// Monitor subscribes to every message under the prefix and passes them to
// Handler until ctx is done.
type Monitor struct {
	Queue   *Queue
	Topic   string
	Handler Handler
}

// NewMonitor creates a Monitor watching all devices.
func NewMonitor(brokerURL string, handler Handler) (*Monitor, error) {
	q, err := NewQueueFromURL(brokerURL)
	if err != nil {
		return nil, err
	}
	return &Monitor{Queue: q, Topic: "#", Handler: handler}, nil
}

// Run implements framework.Runnable.
func (m *Monitor) Run(ctx context.Context) error {
	sub := m.Queue.Sub(m.Topic, m.Handler)
	token := m.Queue.Connect()
	token.Wait()
	if err := token.Error(); err != nil {
		sub.Close()
		return err
	}
	<-ctx.Done()
	m.Queue.Close()
	return ctx.Err()
}
