package bus

import (
	"github.com/pkg/errors"
	"go.bug.st/serial"
)

// OpenSerial opens a UART port in 8N1 mode.
func OpenSerial(port string, baud int) (*Stream, error) {
	mode := &serial.Mode{
		BaudRate: baud,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}
	p, err := serial.Open(port, mode)
	if err != nil {
		return nil, errors.Wrapf(err, "open serial port %s", port)
	}
	if err := p.ResetInputBuffer(); err != nil {
		p.Close()
		return nil, errors.Wrapf(err, "reset input of %s", port)
	}
	return NewStream(p), nil
}
