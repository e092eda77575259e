// Package bridge exposes a motoron.Device to remote clients through typed
// messages carried over MQTT, websocket or TCP.
package bridge

import (
	"github.com/robotalks/motoron.go/pkg/bridge/msgs"
	fx "github.com/robotalks/motoron.go/pkg/framework"
	"github.com/robotalks/motoron.go/pkg/motoron"
	"github.com/robotalks/motoron.go/pkg/motoron/protocol"
)

// Execute runs a bridge command on dev and returns the reply message.
// Device errors are returned as CommandErr replies.
func Execute(dev *motoron.Device, msg fx.Message) fx.Message {
	reply, err := execute(dev, msg)
	if err != nil {
		return msgs.NewCommandErr(err)
	}
	if reply == nil {
		return msgs.NewCommandOK()
	}
	return reply
}

func execute(dev *motoron.Device, msg fx.Message) (fx.Message, error) {
	switch m := msg.(type) {
	case *msgs.SetSpeed:
		if m.Now {
			return nil, dev.SetSpeedNow(int(m.Motor), m.Speed)
		}
		return nil, dev.SetSpeed(int(m.Motor), m.Speed)
	case *msgs.SetAllSpeeds:
		if m.Now {
			return nil, dev.SetAllSpeedsNow(m.Speeds...)
		}
		return nil, dev.SetAllSpeeds(m.Speeds...)
	case *msgs.SetMultiSpeed:
		speeds := make([]motoron.MotorSpeed, 0, len(m.Speeds))
		for _, s := range m.Speeds {
			speeds = append(speeds, motoron.MotorSpeed{Motor: int(s.GetMotor()), Speed: s.GetSpeed()})
		}
		if m.Now {
			return nil, dev.SetMultiSpeedNow(speeds)
		}
		return nil, dev.SetMultiSpeed(speeds)
	case *msgs.SetBraking:
		if m.Now {
			return nil, dev.SetBrakingNow(int(m.Motor), m.Amount)
		}
		return nil, dev.SetBraking(int(m.Motor), m.Amount)
	case *msgs.CoastNow:
		return nil, dev.CoastNow()
	case *msgs.FirmwareVersionQuery:
		v, err := dev.FirmwareVersion()
		if err != nil {
			return nil, err
		}
		reply := &msgs.FirmwareVersion{}
		reply.ProductId = uint32(v.ProductID)
		reply.Major = uint32(v.Major)
		reply.Minor = uint32(v.Minor)
		return reply, nil
	case *msgs.StatusQuery:
		flags, vin, err := readStatus(dev)
		if err != nil {
			return nil, err
		}
		reply := &msgs.Status{}
		reply.Flags = uint32(flags)
		reply.VinRaw = uint32(vin)
		reply.FlagNames = flags.Names()
		return reply, nil
	case *msgs.Reinitialise:
		return nil, dev.Reinitialise()
	case *msgs.ClearLatchedStatusFlags:
		if m.Flags > uint32(motoron.LatchedFlags) {
			return nil, &protocol.InvalidValueError{
				Field: "flags",
				Min:   0,
				Max:   int(motoron.LatchedFlags),
				Value: int(m.Flags),
			}
		}
		return nil, dev.ClearLatchedStatusFlags(motoron.StatusFlags(m.Flags))
	case *msgs.SetCRC:
		if m.Enabled {
			return nil, dev.EnableCRC()
		}
		return nil, dev.DisableCRC()
	}
	return nil, msgs.ErrUnsupportedCommand
}

func readStatus(dev *motoron.Device) (motoron.StatusFlags, uint16, error) {
	flags, err := dev.StatusFlags()
	if err != nil {
		return 0, 0, err
	}
	vin, err := dev.VinVoltageRaw()
	if err != nil {
		return 0, 0, err
	}
	return flags, vin, nil
}
