package bridge

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/denisbrodbeck/machineid"
	"github.com/golang/glog"
	"github.com/pkg/errors"

	"github.com/robotalks/motoron.go/pkg/bridge/comm"
	"github.com/robotalks/motoron.go/pkg/bridge/comm/mqtt"
	"github.com/robotalks/motoron.go/pkg/bus"
	"github.com/robotalks/motoron.go/pkg/motoron"
)

// DeviceType is the type part of the bridged DeviceRef.
const DeviceType = "motoron"

// Duration is a time.Duration read from strings like "100ms" in TOML.
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Config is the configuration of the bridge daemon.
type Config struct {
	// Bus is the URL of the bus, see bus.Open.
	Bus        string `toml:"bus"`
	Controller string `toml:"controller"`
	// ID identifies the device on the broker, the machine ID by default.
	ID          string `toml:"id"`
	Description string `toml:"description"`
	// MQTT is the broker URL, e.g. mqtt://host:port/topic-prefix.
	MQTT      string `toml:"mqtt"`
	ListenWS  string `toml:"listen_ws"`
	ListenTCP string `toml:"listen_tcp"`

	Keepalive      Duration `toml:"keepalive"`
	StatusInterval Duration `toml:"status_interval"`
	CommandTimeout Duration `toml:"command_timeout"`
	CRC            bool     `toml:"crc"`
	// ClearReset clears the reset flag at start, otherwise clients must.
	ClearReset     bool     `toml:"clear_reset"`

	Labels map[string]string `toml:"labels"`
}

var defaultConfig = Config{
	Bus:            fmt.Sprintf("i2c:///dev/i2c-1?addr=0x%02x", bus.DefaultI2CAddr),
	Controller:     motoron.M2T256.String(),
	MQTT:           mqtt.DefaultBrokerURL,
	Keepalive:      Duration{500 * time.Millisecond},
	StatusInterval: Duration{time.Second},
	CommandTimeout: Duration{1500 * time.Millisecond},
	CRC:            true,
	ClearReset:     true,
}

func init() {
	if val := os.Getenv("MOTORON_BUS"); val != "" {
		defaultConfig.Bus = val
	}
	if val := os.Getenv("MOTORON_CONTROLLER"); val != "" {
		defaultConfig.Controller = val
	}
	if val := os.Getenv("MOTORON_MQTT_URL"); val != "" {
		defaultConfig.MQTT = val
	}
	if id, err := machineid.ID(); err == nil {
		defaultConfig.ID = id
	}
}

// flagSetters copy the value of a flag from src to dst.
var flagSetters = map[string]func(dst, src *Config){
	"bus":             func(dst, src *Config) { dst.Bus = src.Bus },
	"controller":      func(dst, src *Config) { dst.Controller = src.Controller },
	"id":              func(dst, src *Config) { dst.ID = src.ID },
	"mqtt":            func(dst, src *Config) { dst.MQTT = src.MQTT },
	"listen-ws":       func(dst, src *Config) { dst.ListenWS = src.ListenWS },
	"listen-tcp":      func(dst, src *Config) { dst.ListenTCP = src.ListenTCP },
	"keepalive":       func(dst, src *Config) { dst.Keepalive = src.Keepalive },
	"status-interval": func(dst, src *Config) { dst.StatusInterval = src.StatusInterval },
	"command-timeout": func(dst, src *Config) { dst.CommandTimeout = src.CommandTimeout },
	"crc":             func(dst, src *Config) { dst.CRC = src.CRC },
	"clear-reset":     func(dst, src *Config) { dst.ClearReset = src.ClearReset },
}

// SetupFlags sets command line flags.
func SetupFlags() {
	flag.StringVar(&defaultConfig.Bus, "bus", defaultConfig.Bus, "Bus URL, i2c:///dev/i2c-N?addr=A or serial:///dev/tty?baud=B")
	flag.StringVar(&defaultConfig.Controller, "controller", defaultConfig.Controller, "Controller model")
	flag.StringVar(&defaultConfig.ID, "id", defaultConfig.ID, "Device ID")
	flag.StringVar(&defaultConfig.MQTT, "mqtt", defaultConfig.MQTT, "MQTT broker URL, empty to disable")
	flag.StringVar(&defaultConfig.ListenWS, "listen-ws", defaultConfig.ListenWS, "Websocket listen address")
	flag.StringVar(&defaultConfig.ListenTCP, "listen-tcp", defaultConfig.ListenTCP, "TCP listen address")
	flag.DurationVar(&defaultConfig.Keepalive.Duration, "keepalive", defaultConfig.Keepalive.Duration, "Command timeout reset interval, 0 to disable")
	flag.DurationVar(&defaultConfig.StatusInterval.Duration, "status-interval", defaultConfig.StatusInterval.Duration, "Status polling interval, 0 to disable")
	flag.DurationVar(&defaultConfig.CommandTimeout.Duration, "command-timeout", defaultConfig.CommandTimeout.Duration, "Command timeout written at start, 0 to keep")
	flag.BoolVar(&defaultConfig.CRC, "crc", defaultConfig.CRC, "Use CRC for commands and responses")
	flag.BoolVar(&defaultConfig.ClearReset, "clear-reset", defaultConfig.ClearReset, "Clear the reset flag at start")
}

// NewConfig creates a Config with default configurations.
func NewConfig() *Config {
	conf := defaultConfig
	return &conf
}

// LoadFile reads a TOML file into c. Flags set explicitly on the command
// line keep their values.
func (c *Config) LoadFile(path string) error {
	if _, err := toml.DecodeFile(path, c); err != nil {
		return errors.Wrapf(err, "load %s", path)
	}
	flag.Visit(func(f *flag.Flag) {
		if set, ok := flagSetters[f.Name]; ok {
			set(c, &defaultConfig)
		}
	})
	return nil
}

// Validate checks required fields.
func (c *Config) Validate() error {
	if c.ID == "" {
		return errors.New("device id must be specified")
	}
	if _, err := motoron.ParseControllerType(c.Controller); err != nil {
		return err
	}
	if c.MQTT == "" && c.ListenWS == "" && c.ListenTCP == "" {
		return errors.New("at least one of mqtt, listen-ws and listen-tcp is required")
	}
	return nil
}

// OpenDevice opens the configured device.
func (c *Config) OpenDevice() (*motoron.Device, error) {
	ct, err := motoron.ParseControllerType(c.Controller)
	if err != nil {
		return nil, err
	}
	t, err := bus.Open(c.Bus)
	if err != nil {
		return nil, err
	}
	opts := motoron.DefaultProtocolOptions()
	opts.CRCForCommands, opts.CRCForResponses = c.CRC, c.CRC
	dev, err := motoron.NewWithOptions(t, ct, opts)
	if err != nil {
		t.Close()
		return nil, err
	}
	glog.Infof("opened %s on %s", ct, c.Bus)
	return dev, nil
}

// DeviceInfo builds the info published for dev.
func (c *Config) DeviceInfo(dev *motoron.Device, firmware string) comm.DeviceInfo {
	ct := dev.ControllerType()
	return comm.DeviceInfo{
		Ref: comm.DeviceRef{Type: DeviceType, ID: c.ID},
		Meta: comm.DeviceMeta{
			Description: c.Description,
			Controller:  ct.String(),
			Channels:    ct.MotorChannels(),
			Firmware:    firmware,
			Labels:      c.Labels,
		},
	}
}
