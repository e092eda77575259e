package bus

import (
	"sync"

	"github.com/pkg/errors"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"
)

var (
	hostInitOnce sync.Once
	hostInitErr  error
)

// I2C is a Transport to one device address on an I2C bus.
type I2C struct {
	bus i2c.BusCloser
	dev *i2c.Dev
}

// OpenI2C opens busName (e.g. /dev/i2c-1 or "1") and addresses addr on it.
func OpenI2C(busName string, addr uint16) (*I2C, error) {
	hostInitOnce.Do(func() {
		_, hostInitErr = host.Init()
	})
	if hostInitErr != nil {
		return nil, errors.Wrap(hostInitErr, "periph host init")
	}
	b, err := i2creg.Open(busName)
	if err != nil {
		return nil, errors.Wrapf(err, "open I2C bus %s", busName)
	}
	return &I2C{bus: b, dev: &i2c.Dev{Bus: b, Addr: addr}}, nil
}

// Addr returns the device address.
func (t *I2C) Addr() uint16 {
	return t.dev.Addr
}

// Write implements Transport.
func (t *I2C) Write(b []byte) error {
	if err := t.dev.Tx(b, nil); err != nil {
		return errors.Wrapf(err, "I2C write to 0x%02x", t.dev.Addr)
	}
	return nil
}

// Read implements Transport.
func (t *I2C) Read(b []byte) error {
	if err := t.dev.Tx(nil, b); err != nil {
		return errors.Wrapf(err, "I2C read from 0x%02x", t.dev.Addr)
	}
	return nil
}

// Close implements Transport.
func (t *I2C) Close() error {
	return t.bus.Close()
}
