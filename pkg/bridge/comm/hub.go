package comm

import (
	"context"
	"sync"

	fx "github.com/robotalks/motoron.go/pkg/framework"
)

// Hub connects any number of pipes to one CommandHandler and fans events
// out to all of them.
type Hub struct {
	Handler CommandHandler

	lock  sync.Mutex
	pipes map[*Pipe]struct{}
}

// NewHub creates a Hub.
func NewHub(handler CommandHandler) *Hub {
	return &Hub{Handler: handler, pipes: make(map[*Pipe]struct{})}
}

// Serve runs a Pipe over rw until reading fails or ctx is done.
func (h *Hub) Serve(ctx context.Context, rw PacketReadWriter) error {
	pipe := NewPipe(rw, h.Handler)
	h.lock.Lock()
	if h.pipes == nil {
		h.pipes = make(map[*Pipe]struct{})
	}
	h.pipes[pipe] = struct{}{}
	h.lock.Unlock()
	defer func() {
		h.lock.Lock()
		delete(h.pipes, pipe)
		h.lock.Unlock()
	}()
	return fx.RunWithContextCloser(ctx, pipe, func() error {
		return pipe.Run(ctx)
	})
}

// Len returns the number of connected pipes.
func (h *Hub) Len() int {
	h.lock.Lock()
	defer h.lock.Unlock()
	return len(h.pipes)
}

// SendEvent sends an event to all connected pipes.
func (h *Hub) SendEvent(msg fx.Message) error {
	h.lock.Lock()
	pipes := make([]*Pipe, 0, len(h.pipes))
	for pipe := range h.pipes {
		pipes = append(pipes, pipe)
	}
	h.lock.Unlock()
	var errs fx.AggregatedError
	for _, pipe := range pipes {
		errs.Add(pipe.SendEvent(msg))
	}
	return errs.Aggregate()
}
