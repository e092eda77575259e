// Package motor adds the controller commands to the shell.
package motor

import (
	"github.com/abiosoft/ishell"

	"github.com/robotalks/motoron.go/pkg/cli/sh"
	"github.com/robotalks/motoron.go/pkg/motoron"
	"github.com/robotalks/motoron.go/pkg/motoron/protocol"
)

type versionOutput struct {
	ProductID uint16 `json:"product_id"`
	Major     uint8  `json:"major"`
	Minor     uint8  `json:"minor"`
}

type statusOutput struct {
	Flags  uint16   `json:"flags"`
	Names  []string `json:"flag_names"`
	VinRaw uint16   `json:"vin_raw"`
}

type bytesOutput struct {
	Offset int    `json:"offset"`
	Data   []byte `json:"data"`
}

var (
	// VersionCmd reads the firmware version.
	VersionCmd = ishell.Cmd{
		Name:    "version",
		Aliases: []string{"ver"},
		Help:    "",
		Func: sh.MustBeOpen(func(c *ishell.Context, dev *motoron.Device) {
			v, err := dev.FirmwareVersion()
			if err != nil {
				c.Err(err)
				return
			}
			sh.Print(c, &versionOutput{ProductID: v.ProductID, Major: v.Major, Minor: v.Minor}, "%s", v)
		}),
	}

	// SpeedCmd sets the speed of one motor.
	SpeedCmd = ishell.Cmd{
		Name:    "speed",
		Aliases: []string{"s"},
		Help:    "MOTOR SPEED [now]",
		Func: sh.MustBeOpen(func(c *ishell.Context, dev *motoron.Device) {
			args, now := splitNow(c.Args)
			if len(args) < 2 {
				c.Err(&sh.ArgCountError{Usage: "speed MOTOR SPEED [now]"})
				return
			}
			motor, err := sh.ParseInt(args[0])
			if err != nil {
				c.Err(err)
				return
			}
			speed, err := sh.ParseFloat(args[1])
			if err != nil {
				c.Err(err)
				return
			}
			if now {
				sh.Done(c, dev.SetSpeedNow(motor, speed))
				return
			}
			sh.Done(c, dev.SetSpeed(motor, speed))
		}),
	}

	// SpeedsCmd sets the speeds of all motors.
	SpeedsCmd = ishell.Cmd{
		Name: "speeds",
		Help: "[now] SPEED...",
		Func: sh.MustBeOpen(func(c *ishell.Context, dev *motoron.Device) {
			args, now := splitNow(c.Args)
			speeds, err := parseSpeeds(args)
			if err != nil {
				c.Err(err)
				return
			}
			if now {
				sh.Done(c, dev.SetAllSpeedsNow(speeds...))
				return
			}
			sh.Done(c, dev.SetAllSpeeds(speeds...))
		}),
	}

	// MultiCmd sets the speeds of listed motors and applies them together.
	MultiCmd = ishell.Cmd{
		Name: "multi",
		Help: "[now] MOTOR=SPEED...",
		Func: sh.MustBeOpen(func(c *ishell.Context, dev *motoron.Device) {
			args, now := splitNow(c.Args)
			speeds, err := parseMotorSpeeds(args)
			if err != nil {
				c.Err(err)
				return
			}
			if now {
				sh.Done(c, dev.SetMultiSpeedNow(speeds))
				return
			}
			sh.Done(c, dev.SetMultiSpeed(speeds))
		}),
	}

	// BrakeCmd sets the braking amount of a motor.
	BrakeCmd = ishell.Cmd{
		Name:    "brake",
		Aliases: []string{"b"},
		Help:    "MOTOR AMOUNT [now]",
		Func: sh.MustBeOpen(func(c *ishell.Context, dev *motoron.Device) {
			args, now := splitNow(c.Args)
			if len(args) < 2 {
				c.Err(&sh.ArgCountError{Usage: "brake MOTOR AMOUNT [now]"})
				return
			}
			motor, err := sh.ParseInt(args[0])
			if err != nil {
				c.Err(err)
				return
			}
			amount, err := sh.ParseFloat(args[1])
			if err != nil {
				c.Err(err)
				return
			}
			if now {
				sh.Done(c, dev.SetBrakingNow(motor, amount))
				return
			}
			sh.Done(c, dev.SetBraking(motor, amount))
		}),
	}

	// CoastCmd stops all motors.
	CoastCmd = ishell.Cmd{
		Name: "coast",
		Help: "",
		Func: sh.MustBeOpen(func(c *ishell.Context, dev *motoron.Device) {
			sh.Done(c, dev.CoastNow())
		}),
	}

	// StatusCmd reads the status flags and VIN.
	StatusCmd = ishell.Cmd{
		Name:    "status",
		Aliases: []string{"st"},
		Help:    "",
		Func: sh.MustBeOpen(func(c *ishell.Context, dev *motoron.Device) {
			flags, err := dev.StatusFlags()
			if err != nil {
				c.Err(err)
				return
			}
			vin, err := dev.VinVoltageRaw()
			if err != nil {
				c.Err(err)
				return
			}
			sh.Print(c, &statusOutput{Flags: uint16(flags), Names: flags.Names(), VinRaw: vin},
				"flags 0x%04x %s\nvin %d", uint16(flags), flags, vin)
		}),
	}

	// ClearCmd clears latched status flags, all of them by default.
	ClearCmd = ishell.Cmd{
		Name: "clear",
		Help: "[FLAG...]",
		Func: sh.MustBeOpen(func(c *ishell.Context, dev *motoron.Device) {
			flags := motoron.LatchedFlags
			if len(c.Args) > 0 {
				var err error
				if flags, err = parseFlags(c.Args); err != nil {
					c.Err(err)
					return
				}
			}
			sh.Done(c, dev.ClearLatchedStatusFlags(flags))
		}),
	}

	// FaultCmd clears a latched motor fault.
	FaultCmd = ishell.Cmd{
		Name: "fault",
		Help: "[force]",
		Func: sh.MustBeOpen(func(c *ishell.Context, dev *motoron.Device) {
			sh.Done(c, dev.ClearMotorFault(len(c.Args) > 0 && c.Args[0] == "force"))
		}),
	}

	// CRCCmd enables or disables CRC.
	CRCCmd = ishell.Cmd{
		Name: "crc",
		Help: "on|off",
		Func: sh.MustBeOpen(func(c *ishell.Context, dev *motoron.Device) {
			if !sh.CheckArgs(c, 1, "crc on|off") {
				return
			}
			on, err := parseSwitch(c.Args[0])
			if err != nil {
				c.Err(err)
				return
			}
			if on {
				sh.Done(c, dev.EnableCRC())
				return
			}
			sh.Done(c, dev.DisableCRC())
		}),
	}

	// GeneralCallCmd enables or disables the I2C general call address.
	GeneralCallCmd = ishell.Cmd{
		Name: "gcall",
		Help: "on|off",
		Func: sh.MustBeOpen(func(c *ishell.Context, dev *motoron.Device) {
			if !sh.CheckArgs(c, 1, "gcall on|off") {
				return
			}
			on, err := parseSwitch(c.Args[0])
			if err != nil {
				c.Err(err)
				return
			}
			if on {
				sh.Done(c, dev.EnableI2CGeneralCall())
				return
			}
			sh.Done(c, dev.DisableI2CGeneralCall())
		}),
	}

	// ReinitCmd reinitialises the controller.
	ReinitCmd = ishell.Cmd{
		Name: "reinit",
		Help: "",
		Func: sh.MustBeOpen(func(c *ishell.Context, dev *motoron.Device) {
			sh.Done(c, dev.Reinitialise())
		}),
	}

	// ResetCmd resets the controller.
	ResetCmd = ishell.Cmd{
		Name: "reset",
		Help: "",
		Func: sh.MustBeOpen(func(c *ishell.Context, dev *motoron.Device) {
			sh.Done(c, dev.Reset())
		}),
	}

	// RestartCmd restarts the controller firmware.
	RestartCmd = ishell.Cmd{
		Name: "restart",
		Help: "",
		Func: sh.MustBeOpen(func(c *ishell.Context, dev *motoron.Device) {
			sh.Done(c, dev.Restart())
		}),
	}

	// TimeoutCmd sets the command timeout, or restarts it with "reset".
	TimeoutCmd = ishell.Cmd{
		Name: "timeout",
		Help: "DURATION|reset",
		Func: sh.MustBeOpen(func(c *ishell.Context, dev *motoron.Device) {
			if !sh.CheckArgs(c, 1, "timeout DURATION|reset") {
				return
			}
			if c.Args[0] == "reset" {
				sh.Done(c, dev.ResetCommandTimeout())
				return
			}
			timeout, err := sh.ParseDuration(c.Args[0])
			if err != nil {
				c.Err(err)
				return
			}
			sh.Done(c, dev.SetCommandTimeout(timeout))
		}),
	}

	// EepromCmd reads or writes EEPROM settings.
	EepromCmd = ishell.Cmd{
		Name: "eeprom",
		Help: "read OFFSET LENGTH | write OFFSET VALUE",
		Func: sh.MustBeOpen(func(c *ishell.Context, dev *motoron.Device) {
			const usage = "eeprom read OFFSET LENGTH | write OFFSET VALUE"
			if !sh.CheckArgs(c, 3, usage) {
				return
			}
			vals, err := sh.ParseInts(c.Args[1:3]...)
			if err != nil {
				c.Err(err)
				return
			}
			switch c.Args[0] {
			case "read":
				data, err := dev.ReadEeprom(vals[0], vals[1])
				if err != nil {
					c.Err(err)
					return
				}
				sh.Print(c, &bytesOutput{Offset: vals[0], Data: data}, "% x", data)
			case "write":
				sh.Done(c, dev.WriteEeprom(vals[0], vals[1]))
			default:
				c.Err(&sh.ArgCountError{Usage: usage})
			}
		}),
	}

	// VarCmd reads or writes variables.
	VarCmd = ishell.Cmd{
		Name: "var",
		Help: "get MOTOR OFFSET LENGTH | set MOTOR OFFSET VALUE",
		Func: sh.MustBeOpen(func(c *ishell.Context, dev *motoron.Device) {
			const usage = "var get MOTOR OFFSET LENGTH | set MOTOR OFFSET VALUE"
			if !sh.CheckArgs(c, 4, usage) {
				return
			}
			vals, err := sh.ParseInts(c.Args[1:4]...)
			if err != nil {
				c.Err(err)
				return
			}
			switch c.Args[0] {
			case "get":
				data, err := dev.GetVariables(vals[0], vals[1], vals[2])
				if err != nil {
					c.Err(err)
					return
				}
				sh.Print(c, &bytesOutput{Offset: vals[1], Data: data}, "% x", data)
			case "set":
				sh.Done(c, dev.SetVariable(vals[0], vals[1], vals[2]))
			default:
				c.Err(&sh.ArgCountError{Usage: usage})
			}
		}),
	}

	// ErrCheckCmd runs the multi-device error check over a device range.
	ErrCheckCmd = ishell.Cmd{
		Name: "errcheck",
		Help: "START COUNT",
		Func: sh.MustBeOpen(func(c *ishell.Context, dev *motoron.Device) {
			if !sh.CheckArgs(c, 2, "errcheck START COUNT") {
				return
			}
			vals, err := sh.ParseInts(c.Args[:2]...)
			if err != nil {
				c.Err(err)
				return
			}
			res, err := dev.MultiDeviceErrorCheck(vals[0], vals[1])
			if err != nil {
				c.Err(err)
				return
			}
			sh.Print(c, map[string]interface{}{
				"ok":     res.Status == protocol.ErrorCheckOK,
				"status": res.String(),
			}, "%s", res)
		}),
	}
)

func init() {
	sh.AddCmds(
		&VersionCmd,
		&SpeedCmd,
		&SpeedsCmd,
		&MultiCmd,
		&BrakeCmd,
		&CoastCmd,
		&StatusCmd,
		&ClearCmd,
		&FaultCmd,
		&CRCCmd,
		&GeneralCallCmd,
		&ReinitCmd,
		&ResetCmd,
		&RestartCmd,
		&TimeoutCmd,
		&EepromCmd,
		&VarCmd,
		&ErrCheckCmd,
	)
}
