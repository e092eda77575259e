package mqtt

import (
	"io"
	"sync"

	"github.com/robotalks/motoron.go/pkg/bridge/comm"
)

// ReadWriter implements comm.PacketReadWriter over a pair of topics.
type ReadWriter struct {
	Queue    *Queue
	SubTopic string
	PubTopic string

	packetCh  chan []byte
	closeCh   chan struct{}
	closeOnce sync.Once
	sub       *Subscription
}

// NewPacketReadWriter creates the ReadWriter.
func NewPacketReadWriter(q *Queue) *ReadWriter {
	return &ReadWriter{
		Queue:    q,
		packetCh: make(chan []byte, 16),
		closeCh:  make(chan struct{}),
	}
}

// WithTopics specifies the topics.
func (p *ReadWriter) WithTopics(sub, pub string) *ReadWriter {
	p.SubTopic, p.PubTopic = sub, pub
	return p
}

// ForClient sets topics for talking to a bridged device:
// SubTopic = <type>/<id>/msg
// PubTopic = <type>/<id>/cmd
func (p *ReadWriter) ForClient(ref comm.DeviceRef) *ReadWriter {
	prefix := ref.Name()
	return p.WithTopics(prefix+"/msg", prefix+"/cmd")
}

// ForDevice sets topics for the bridge serving a device:
// SubTopic = <type>/<id>/cmd
// PubTopic = <type>/<id>/msg
func (p *ReadWriter) ForDevice(ref comm.DeviceRef) *ReadWriter {
	prefix := ref.Name()
	return p.WithTopics(prefix+"/cmd", prefix+"/msg")
}

// Open subscribes SubTopic. Packets are buffered until read.
func (p *ReadWriter) Open() *ReadWriter {
	p.sub = p.Queue.Sub(p.SubTopic, p.handleMsg)
	return p
}

// ReadPacket implements comm.PacketReader.
func (p *ReadWriter) ReadPacket() ([]byte, error) {
	select {
	case pkt := <-p.packetCh:
		return pkt, nil
	case <-p.closeCh:
		return nil, io.EOF
	}
}

// WritePacket implements comm.PacketWriter.
func (p *ReadWriter) WritePacket(pkt []byte) error {
	token := p.Queue.Pub(p.PubTopic, pkt)
	token.Wait()
	return token.Error()
}

// Close unsubscribes and unblocks readers. It is safe to call more than once.
func (p *ReadWriter) Close() (err error) {
	p.closeOnce.Do(func() {
		close(p.closeCh)
		if p.sub != nil {
			err = p.sub.Close()
		}
	})
	return
}

func (p *ReadWriter) handleMsg(_ string, payload []byte) {
	pkt := append([]byte(nil), payload...)
	select {
	case p.packetCh <- pkt:
	case <-p.closeCh:
	}
}
