// Package bus provides the byte transports a Motoron controller is reached
// through.
package bus

import (
	"net/url"
	"strconv"

	"github.com/pkg/errors"
)

// Transport moves raw frames to and from one device.
type Transport interface {
	// Write sends all of b or fails.
	Write(b []byte) error
	// Read fills all of b or fails.
	Read(b []byte) error
	Close() error
}

// Default connection parameters.
const (
	DefaultI2CAddr  uint16 = 0x10
	DefaultBaudRate        = 115200
)

var (
	// ErrUnsupportedScheme indicates the bus URL scheme is unknown.
	ErrUnsupportedScheme = errors.New("unsupported bus scheme")
	// ErrMissingPath indicates the bus URL has no device path.
	ErrMissingPath = errors.New("missing device path")
)

// Open creates a Transport from a bus URL, e.g.
//
//	i2c:///dev/i2c-1?addr=0x10
//	serial:///dev/ttyUSB0?baud=115200
func Open(busURL string) (Transport, error) {
	u, err := url.Parse(busURL)
	if err != nil {
		return nil, errors.Wrapf(err, "parse bus URL %q", busURL)
	}
	path := u.Path
	if u.Host != "" {
		path = u.Host + path
	}
	if path == "" {
		return nil, errors.Wrapf(ErrMissingPath, "bus URL %q", busURL)
	}
	query := u.Query()
	switch u.Scheme {
	case "i2c":
		addr := DefaultI2CAddr
		if val := query.Get("addr"); val != "" {
			n, err := strconv.ParseUint(val, 0, 16)
			if err != nil || n > 0x7F {
				return nil, errors.Errorf("invalid I2C address %q", val)
			}
			addr = uint16(n)
		}
		t, err := OpenI2C(path, addr)
		if err != nil {
			return nil, err
		}
		return t, nil
	case "serial":
		baud := DefaultBaudRate
		if val := query.Get("baud"); val != "" {
			n, err := strconv.Atoi(val)
			if err != nil || n <= 0 {
				return nil, errors.Errorf("invalid baud rate %q", val)
			}
			baud = n
		}
		t, err := OpenSerial(path, baud)
		if err != nil {
			return nil, err
		}
		return t, nil
	default:
		return nil, errors.Wrapf(ErrUnsupportedScheme, "%q", u.Scheme)
	}
}
