package stream

import (
	"context"
	"net"

	"github.com/golang/glog"

	"github.com/robotalks/motoron.go/pkg/bridge/comm"
)

// Listener accepts TCP connections and serves each through Hub.
type Listener struct {
	Addr string
	Hub  *comm.Hub

	ready chan net.Addr
}

// Name implements framework.Named.
func (l *Listener) Name() string {
	return "tcp"
}

// Run implements framework.Runnable.
func (l *Listener) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", l.Addr)
	if err != nil {
		return err
	}
	glog.Infof("tcp listening on %s", ln.Addr())
	if l.ready != nil {
		l.ready <- ln.Addr()
	}
	go func() {
		<-ctx.Done()
		ln.Close()
	}()
	for {
		conn, err := ln.Accept()
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return err
		}
		go l.serve(ctx, conn)
	}
}

func (l *Listener) serve(ctx context.Context, conn net.Conn) {
	glog.Infof("tcp client %s connected", conn.RemoteAddr())
	err := l.Hub.Serve(ctx, New(conn))
	glog.Infof("tcp client %s disconnected: %v", conn.RemoteAddr(), err)
}

// Dial connects to a TCP bridge.
func Dial(addr string) (*ReadWriter, error) {
	conn, err := net.Dial("tcp", addr)
	if err != nil {
		return nil, err
	}
	return New(conn), nil
}
