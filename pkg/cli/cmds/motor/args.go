package motor

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/robotalks/motoron.go/pkg/cli/sh"
	"github.com/robotalks/motoron.go/pkg/motoron"
	"github.com/robotalks/motoron.go/pkg/motoron/protocol"
)

const nowArg = "now"

// splitNow removes a leading or trailing "now" from args.
func splitNow(args []string) ([]string, bool) {
	if len(args) > 0 && args[0] == nowArg {
		return args[1:], true
	}
	if n := len(args); n > 0 && args[n-1] == nowArg {
		return args[:n-1], true
	}
	return args, false
}

func parseSpeeds(args []string) ([]float64, error) {
	speeds := make([]float64, len(args))
	for n, arg := range args {
		v, err := sh.ParseFloat(arg)
		if err != nil {
			return nil, err
		}
		speeds[n] = v
	}
	return speeds, nil
}

// parseMotorSpeeds parses MOTOR=SPEED pairs.
func parseMotorSpeeds(args []string) ([]motoron.MotorSpeed, error) {
	speeds := make([]motoron.MotorSpeed, 0, len(args))
	for _, arg := range args {
		parts := strings.SplitN(arg, "=", 2)
		if len(parts) != 2 {
			return nil, errors.Errorf("expect MOTOR=SPEED, got %q", arg)
		}
		motor, err := sh.ParseInt(parts[0])
		if err != nil {
			return nil, err
		}
		speed, err := sh.ParseFloat(parts[1])
		if err != nil {
			return nil, err
		}
		speeds = append(speeds, motoron.MotorSpeed{Motor: motor, Speed: speed})
	}
	return speeds, nil
}

// parseFlags parses status flag names or numbers into a flag set.
func parseFlags(args []string) (motoron.StatusFlags, error) {
	var flags motoron.StatusFlags
	for _, arg := range args {
		if f, ok := motoron.ParseStatusFlag(arg); ok {
			flags |= f
			continue
		}
		v, err := sh.ParseInt(arg)
		if err != nil {
			return 0, errors.Errorf("unknown flag %q", arg)
		}
		if v < 0 || v > int(motoron.LatchedFlags) {
			return 0, &protocol.InvalidValueError{
				Field: "flags",
				Min:   0,
				Max:   int(motoron.LatchedFlags),
				Value: v,
			}
		}
		flags |= motoron.StatusFlags(v)
	}
	return flags, nil
}

func parseSwitch(arg string) (bool, error) {
	switch strings.ToLower(arg) {
	case "on", "true", "1", "enable":
		return true, nil
	case "off", "false", "0", "disable":
		return false, nil
	}
	return false, errors.Errorf("expect on or off, got %q", arg)
}
