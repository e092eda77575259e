package comm

import (
	"context"
	"io"
	"sync"

	"github.com/golang/glog"

	"github.com/robotalks/motoron.go/pkg/bridge/msgs"
	fx "github.com/robotalks/motoron.go/pkg/framework"
)

// Command is a received command waiting for its reply.
type Command struct {
	Seq uint32
	Msg fx.Message

	pipe *Pipe
}

// NewCommand creates a Command replied through pipe.
func NewCommand(seq uint32, msg fx.Message, pipe *Pipe) *Command {
	return &Command{Seq: seq, Msg: msg, pipe: pipe}
}

// Done sends reply for the command.
func (c *Command) Done(reply fx.Message) error {
	return c.pipe.SendReply(reply, c.Seq)
}

// CommandHandler processes received commands.
type CommandHandler interface {
	HandleCommand(context.Context, *Command)
}

// HandleCommandFunc is the func form of CommandHandler.
type HandleCommandFunc func(context.Context, *Command)

// HandleCommand implements CommandHandler.
func (f HandleCommandFunc) HandleCommand(ctx context.Context, cmd *Command) {
	f(ctx, cmd)
}

// Pipe is a bi-directional pipe for messages over a PacketReadWriter.
type Pipe struct {
	ReadWriter PacketReadWriter
	Handler    CommandHandler

	sendLock sync.Mutex
}

// NewPipe creates a Pipe with given PacketReadWriter.
func NewPipe(rw PacketReadWriter, handler CommandHandler) *Pipe {
	return &Pipe{ReadWriter: rw, Handler: handler}
}

// SendReply sends msg, which must be a command-kind message, as the reply
// of seq.
func (p *Pipe) SendReply(msg fx.Message, seq uint32) error {
	typed, err := msgs.TypedFrom(msg)
	if err != nil {
		return err
	}
	if !typed.IsCommand() {
		panic("message is not a command")
	}
	typed.Sequence = seq
	return p.SendTyped(typed)
}

// SendEvent sends msg, which must be an event.
func (p *Pipe) SendEvent(msg fx.Message) error {
	typed, err := msgs.TypedFrom(msg)
	if err != nil {
		return err
	}
	if !typed.IsEvent() {
		panic("message is not an event")
	}
	return p.SendTyped(typed)
}

// SendTyped sends an envelope.
func (p *Pipe) SendTyped(typed *msgs.Typed) error {
	pkt, err := typed.Encode()
	if err != nil {
		return err
	}
	p.sendLock.Lock()
	defer p.sendLock.Unlock()
	return p.ReadWriter.WritePacket(pkt)
}

// Run implements Runnable. It returns when reading fails.
func (p *Pipe) Run(ctx context.Context) error {
	defer p.Close()
	for {
		pkt, err := p.ReadWriter.ReadPacket()
		if err != nil {
			return err
		}
		typed, err := msgs.DecodeTyped(pkt)
		if err != nil {
			glog.Warningf("drop malformed packet: %v", err)
			continue
		}
		if !typed.IsCommand() || typed.IsReply() {
			continue
		}
		msg, err := typed.Decode()
		if err != nil {
			if err = p.SendReply(msgs.NewCommandErr(err), typed.Sequence); err != nil {
				return err
			}
			continue
		}
		cmd := NewCommand(typed.Sequence, msg, p)
		if p.Handler == nil {
			cmd.Done(msgs.NewCommandErr(msgs.ErrUnsupportedCommand))
			continue
		}
		p.Handler.HandleCommand(ctx, cmd)
	}
}

// Close closes the ReadWriter if it is an io.Closer.
func (p *Pipe) Close() error {
	if closer, ok := p.ReadWriter.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
