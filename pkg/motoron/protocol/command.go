package protocol

// Command opcodes.
const (
	CmdGetFirmwareVersion          byte = 0x87
	CmdSetProtocolOptions          byte = 0x8B
	CmdReadEeprom                  byte = 0x93
	CmdWriteEeprom                 byte = 0x95
	CmdReinitialise                byte = 0x96
	CmdReset                       byte = 0x99
	CmdGetVariables                byte = 0x9A
	CmdSetVariable                 byte = 0x9C
	CmdCoastNow                    byte = 0xA5
	CmdClearMotorFault             byte = 0xA6
	CmdClearLatchedStatusFlags     byte = 0xA9
	CmdSetLatchedStatusFlags       byte = 0xAC
	CmdSetBraking                  byte = 0xB1
	CmdSetBrakingNow               byte = 0xB2
	CmdSetSpeed                    byte = 0xD1
	CmdSetSpeedNow                 byte = 0xD2
	CmdSetBufferedSpeed            byte = 0xD4
	CmdMultiDeviceErrorCheck       byte = 0xDB
	CmdSetAllSpeeds                byte = 0xE1
	CmdSetAllSpeedsNow             byte = 0xE2
	CmdSetAllBufferedSpeeds        byte = 0xE4
	CmdSetAllSpeedsUsingBuffers    byte = 0xF0
	CmdSetAllSpeedsNowUsingBuffers byte = 0xF3
	CmdResetCommandTimeout         byte = 0xF5
	CmdMultiDeviceWrite            byte = 0xF9
)

// Protocol option bits carried by SetProtocolOptions.
const (
	OptionCRCForCommands  byte = 1 << 0
	OptionCRCForResponses byte = 1 << 1
	OptionI2CGeneralCall  byte = 1 << 2
)

// Limits of command arguments.
const (
	MaxMotor          = 3
	MaxSpeed          = 800
	MaxBraking        = 800
	MaxReadLength     = 32
	MaxOffset         = 0x7F
	MaxLatchedFlags   = 0x3FF
	ClearFaultUncond  = 1 << 0
	ErrorCheckOKByte  = 0x3C
	ErrorCheckErrByte = 0x00
)

// Command is a request sent to the controller.
type Command interface {
	// Code returns the opcode of the command.
	Code() byte
	// NumBytes returns the size of the body, excluding opcode and CRC.
	NumBytes() int
	// EncodeBody validates the arguments and writes exactly NumBytes bytes
	// into b. Nothing is written if an error is returned.
	EncodeBody(b []byte) error
	// ResponseBytes returns the expected response payload size, excluding CRC.
	ResponseBytes() int
}

// noBody is embedded by commands without arguments and without response.
type noBody struct{}

func (noBody) NumBytes() int { return 0 }
func (noBody) EncodeBody(b []byte) error { return nil }
func (noBody) ResponseBytes() int { return 0 }

// noResponse is embedded by commands without response.
type noResponse struct{}

func (noResponse) ResponseBytes() int { return 0 }

// GetFirmwareVersion queries product ID and firmware version.
// Response is FirmwareVersion.
type GetFirmwareVersion struct {
	noBody
}

// Code implements Command.
func (GetFirmwareVersion) Code() byte { return CmdGetFirmwareVersion }

// ResponseBytes implements Command.
func (GetFirmwareVersion) ResponseBytes() int { return 4 }

// SetProtocolOptions configures CRC and I2C general call handling.
type SetProtocolOptions struct {
	noResponse
	CRCForCommands  bool
	CRCForResponses bool
	I2CGeneralCall  bool
}

// Code implements Command.
func (c *SetProtocolOptions) Code() byte { return CmdSetProtocolOptions }

// NumBytes implements Command.
func (c *SetProtocolOptions) NumBytes() int { return 2 }

// Options returns the option bits.
func (c *SetProtocolOptions) Options() byte {
	var opts byte
	if c.CRCForCommands {
		opts |= OptionCRCForCommands
	}
	if c.CRCForResponses {
		opts |= OptionCRCForResponses
	}
	if c.I2CGeneralCall {
		opts |= OptionI2CGeneralCall
	}
	return opts
}

// EncodeBody implements Command.
func (c *SetProtocolOptions) EncodeBody(b []byte) error {
	if len(b) < 2 {
		return ErrShortBuffer
	}
	opts := c.Options()
	b[0], b[1] = opts, opts^0x7F
	return nil
}

// ReadEeprom reads Length bytes of EEPROM starting at Offset.
// Response is RawBytes.
type ReadEeprom struct {
	Offset int
	Length int
}

// Code implements Command.
func (c *ReadEeprom) Code() byte { return CmdReadEeprom }

// NumBytes implements Command.
func (c *ReadEeprom) NumBytes() int { return 2 }

// ResponseBytes implements Command.
func (c *ReadEeprom) ResponseBytes() int { return c.Length }

// EncodeBody implements Command.
func (c *ReadEeprom) EncodeBody(b []byte) error {
	if err := checkRange("eeprom offset", c.Offset, 0, MaxOffset); err != nil {
		return err
	}
	if err := checkRange("eeprom length", c.Length, 1, MaxReadLength); err != nil {
		return err
	}
	if len(b) < 2 {
		return ErrShortBuffer
	}
	b[0], b[1] = byte(c.Offset), byte(c.Length)
	return nil
}

// WriteEeprom writes one byte of EEPROM. Offset and Value are followed by
// their bitwise inverse for the firmware to verify.
type WriteEeprom struct {
	noResponse
	Offset int
	Value  int
}

// Code implements Command.
func (c *WriteEeprom) Code() byte { return CmdWriteEeprom }

// NumBytes implements Command.
func (c *WriteEeprom) NumBytes() int { return 8 }

// EncodeBody implements Command.
func (c *WriteEeprom) EncodeBody(b []byte) error {
	if err := checkRange("eeprom offset", c.Offset, 0, MaxOffset); err != nil {
		return err
	}
	if err := checkRange("eeprom value", c.Value, 0, 0xFF); err != nil {
		return err
	}
	if len(b) < 8 {
		return ErrShortBuffer
	}
	put14(b[0:], uint16(c.Offset))
	b[2] = byte(c.Value & 0x7F)
	b[3] = byte(c.Value>>7) & 1
	for i := 0; i < 4; i++ {
		b[4+i] = b[i] ^ 0x7F
	}
	return nil
}

// Reinitialise resets all variables to their defaults, the same as a reset
// but without restarting the firmware.
type Reinitialise struct {
	noBody
}

// Code implements Command.
func (Reinitialise) Code() byte { return CmdReinitialise }

// Reset performs a full firmware reset.
type Reset struct {
	noBody
}

// Code implements Command.
func (Reset) Code() byte { return CmdReset }

// GetVariables reads Length bytes of variables at Offset. Motor 0 selects
// the general variables, 1-3 the per-motor variables.
// Response is RawBytes.
type GetVariables struct {
	Motor  int
	Offset int
	Length int
}

// Code implements Command.
func (c *GetVariables) Code() byte { return CmdGetVariables }

// NumBytes implements Command.
func (c *GetVariables) NumBytes() int { return 3 }

// ResponseBytes implements Command.
func (c *GetVariables) ResponseBytes() int { return c.Length }

// EncodeBody implements Command.
func (c *GetVariables) EncodeBody(b []byte) error {
	if err := checkRange("motor", c.Motor, 0, MaxMotor); err != nil {
		return err
	}
	if err := checkRange("variable offset", c.Offset, 0, MaxOffset); err != nil {
		return err
	}
	if err := checkRange("variable length", c.Length, 1, MaxReadLength); err != nil {
		return err
	}
	if len(b) < 3 {
		return ErrShortBuffer
	}
	b[0], b[1], b[2] = byte(c.Motor), byte(c.Offset), byte(c.Length)
	return nil
}

// SetVariable writes a 14-bit variable.
type SetVariable struct {
	noResponse
	Motor  int
	Offset int
	Value  int
}

// Code implements Command.
func (c *SetVariable) Code() byte { return CmdSetVariable }

// NumBytes implements Command.
func (c *SetVariable) NumBytes() int { return 4 }

// EncodeBody implements Command.
func (c *SetVariable) EncodeBody(b []byte) error {
	if err := checkRange("motor", c.Motor, 0, MaxMotor); err != nil {
		return err
	}
	if err := checkRange("variable offset", c.Offset, 0, MaxOffset); err != nil {
		return err
	}
	if err := checkRange("variable value", c.Value, 0, Max14); err != nil {
		return err
	}
	if len(b) < 4 {
		return ErrShortBuffer
	}
	b[0], b[1] = byte(c.Motor), byte(c.Offset)
	put14(b[2:], uint16(c.Value))
	return nil
}

// CoastNow turns off all motors immediately, ignoring deceleration limits.
type CoastNow struct {
	noBody
}

// Code implements Command.
func (CoastNow) Code() byte { return CmdCoastNow }

// ClearMotorFault clears latched motor faults. When Unconditional is false
// the firmware refuses to clear while the fault is still present.
type ClearMotorFault struct {
	noResponse
	Unconditional bool
}

// Code implements Command.
func (c *ClearMotorFault) Code() byte { return CmdClearMotorFault }

// NumBytes implements Command.
func (c *ClearMotorFault) NumBytes() int { return 1 }

// EncodeBody implements Command.
func (c *ClearMotorFault) EncodeBody(b []byte) error {
	if len(b) < 1 {
		return ErrShortBuffer
	}
	b[0] = 0
	if c.Unconditional {
		b[0] = ClearFaultUncond
	}
	return nil
}

// ClearLatchedStatusFlags clears the latched status flags set in Flags.
type ClearLatchedStatusFlags struct {
	noResponse
	Flags int
}

// Code implements Command.
func (c *ClearLatchedStatusFlags) Code() byte { return CmdClearLatchedStatusFlags }

// NumBytes implements Command.
func (c *ClearLatchedStatusFlags) NumBytes() int { return 2 }

// EncodeBody implements Command.
func (c *ClearLatchedStatusFlags) EncodeBody(b []byte) error {
	return encodeFlags(b, c.Flags)
}

// SetLatchedStatusFlags sets the latched status flags set in Flags.
type SetLatchedStatusFlags struct {
	noResponse
	Flags int
}

// Code implements Command.
func (c *SetLatchedStatusFlags) Code() byte { return CmdSetLatchedStatusFlags }

// NumBytes implements Command.
func (c *SetLatchedStatusFlags) NumBytes() int { return 2 }

// EncodeBody implements Command.
func (c *SetLatchedStatusFlags) EncodeBody(b []byte) error {
	return encodeFlags(b, c.Flags)
}

func encodeFlags(b []byte, flags int) error {
	if err := checkRange("flags", flags, 0, MaxLatchedFlags); err != nil {
		return err
	}
	if len(b) < 2 {
		return ErrShortBuffer
	}
	put14(b, uint16(flags))
	return nil
}

// ResetCommandTimeout restarts the command timeout timer without changing
// any motor.
type ResetCommandTimeout struct {
	noBody
}

// Code implements Command.
func (ResetCommandTimeout) Code() byte { return CmdResetCommandTimeout }
