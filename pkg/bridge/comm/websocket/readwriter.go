// Package websocket carries bridge packets as binary websocket messages.
package websocket

import (
	"context"
	"net"
	"net/http"

	"github.com/golang/glog"
	"golang.org/x/net/websocket"

	"github.com/robotalks/motoron.go/pkg/bridge/comm"
)

// ReadWriter implements comm.PacketReadWriter.
type ReadWriter websocket.Conn

// New wraps websocket.Conn.
func New(conn *websocket.Conn) *ReadWriter {
	return (*ReadWriter)(conn)
}

// Dial connects to a websocket bridge at url.
func Dial(url string) (*ReadWriter, error) {
	conn, err := websocket.Dial(url, "", "http://localhost/")
	if err != nil {
		return nil, err
	}
	return New(conn), nil
}

// ReadPacket implements comm.PacketReader.
func (p *ReadWriter) ReadPacket() (pkt []byte, err error) {
	err = websocket.Message.Receive((*websocket.Conn)(p), &pkt)
	return
}

// WritePacket implements comm.PacketWriter.
func (p *ReadWriter) WritePacket(pkt []byte) error {
	return websocket.Message.Send((*websocket.Conn)(p), pkt)
}

// Close implements io.Closer.
func (p *ReadWriter) Close() error {
	return (*websocket.Conn)(p).Close()
}

// Listener serves every websocket connection through Hub.
type Listener struct {
	Addr string
	Path string
	Hub  *comm.Hub

	ready chan net.Addr
}

// DefaultPath is where websocket connections are accepted.
const DefaultPath = "/motoron"

// Name implements framework.Named.
func (l *Listener) Name() string {
	return "websocket"
}

// Run implements framework.Runnable.
func (l *Listener) Run(ctx context.Context) error {
	path := l.Path
	if path == "" {
		path = DefaultPath
	}
	mux := http.NewServeMux()
	mux.Handle(path, websocket.Handler(func(conn *websocket.Conn) {
		conn.PayloadType = websocket.BinaryFrame
		glog.Infof("websocket client %s connected", conn.Request().RemoteAddr)
		err := l.Hub.Serve(ctx, New(conn))
		glog.Infof("websocket client %s disconnected: %v", conn.Request().RemoteAddr, err)
	}))
	ln, err := net.Listen("tcp", l.Addr)
	if err != nil {
		return err
	}
	glog.Infof("websocket listening on %s%s", ln.Addr(), path)
	if l.ready != nil {
		l.ready <- ln.Addr()
	}
	server := &http.Server{Handler: mux}
	go func() {
		<-ctx.Done()
		server.Close()
	}()
	if err := server.Serve(ln); err != http.ErrServerClosed {
		return err
	}
	return ctx.Err()
}
