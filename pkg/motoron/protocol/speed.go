package protocol

// SpeedMode selects how a speed command takes effect.
type SpeedMode int

// Speed modes.
const (
	// SpeedNormal respects the acceleration and deceleration limits.
	SpeedNormal SpeedMode = iota
	// SpeedNow applies the speed immediately.
	SpeedNow
	// SpeedBuffered stores the speed until SetAllSpeedsUsingBuffers.
	SpeedBuffered
)

// ApplyMode is the subset of speed modes without buffering.
type ApplyMode int

// Apply modes.
const (
	ApplyNormal ApplyMode = iota
	ApplyNow
)

// SetSpeed sets the target speed of one motor. Motor is 1-based on the wire.
type SetSpeed struct {
	noResponse
	Mode  SpeedMode
	Motor int
	Speed int16
}

// Code implements Command.
func (c *SetSpeed) Code() byte {
	switch c.Mode {
	case SpeedNow:
		return CmdSetSpeedNow
	case SpeedBuffered:
		return CmdSetBufferedSpeed
	default:
		return CmdSetSpeed
	}
}

// NumBytes implements Command.
func (c *SetSpeed) NumBytes() int { return 3 }

// EncodeBody implements Command.
func (c *SetSpeed) EncodeBody(b []byte) error {
	if err := checkSpeedMode(c.Mode); err != nil {
		return err
	}
	if err := checkRange("motor", c.Motor, 1, MaxMotor); err != nil {
		return err
	}
	if err := checkRange("speed", int(c.Speed), -MaxSpeed, MaxSpeed); err != nil {
		return err
	}
	if len(b) < 3 {
		return ErrShortBuffer
	}
	b[0] = byte(c.Motor)
	put14(b[1:], twos(c.Speed))
	return nil
}

// SetAllSpeeds sets the target speeds of all motors in one frame, starting
// from motor 1.
type SetAllSpeeds struct {
	noResponse
	Mode   SpeedMode
	Speeds []int16
}

// Code implements Command.
func (c *SetAllSpeeds) Code() byte {
	switch c.Mode {
	case SpeedNow:
		return CmdSetAllSpeedsNow
	case SpeedBuffered:
		return CmdSetAllBufferedSpeeds
	default:
		return CmdSetAllSpeeds
	}
}

// NumBytes implements Command.
func (c *SetAllSpeeds) NumBytes() int { return len(c.Speeds) * 2 }

// EncodeBody implements Command.
func (c *SetAllSpeeds) EncodeBody(b []byte) error {
	if err := checkSpeedMode(c.Mode); err != nil {
		return err
	}
	if err := checkRange("speed count", len(c.Speeds), 1, MaxMotor); err != nil {
		return err
	}
	for _, speed := range c.Speeds {
		if err := checkRange("speed", int(speed), -MaxSpeed, MaxSpeed); err != nil {
			return err
		}
	}
	if len(b) < c.NumBytes() {
		return ErrShortBuffer
	}
	for n, speed := range c.Speeds {
		put14(b[n*2:], twos(speed))
	}
	return nil
}

// SetAllSpeedsUsingBuffers applies the speeds previously buffered with
// SpeedBuffered to all motors at once.
type SetAllSpeedsUsingBuffers struct {
	noBody
	Mode ApplyMode
}

// Code implements Command.
func (c *SetAllSpeedsUsingBuffers) Code() byte {
	if c.Mode == ApplyNow {
		return CmdSetAllSpeedsNowUsingBuffers
	}
	return CmdSetAllSpeedsUsingBuffers
}

// EncodeBody implements Command.
func (c *SetAllSpeedsUsingBuffers) EncodeBody(b []byte) error {
	return checkApplyMode(c.Mode)
}

// SetBraking sets the braking amount of a motor, which applies while its
// speed is zero.
type SetBraking struct {
	noResponse
	Mode   ApplyMode
	Motor  int
	Amount int
}

// Code implements Command.
func (c *SetBraking) Code() byte {
	if c.Mode == ApplyNow {
		return CmdSetBrakingNow
	}
	return CmdSetBraking
}

// NumBytes implements Command.
func (c *SetBraking) NumBytes() int { return 3 }

// EncodeBody implements Command.
func (c *SetBraking) EncodeBody(b []byte) error {
	if err := checkApplyMode(c.Mode); err != nil {
		return err
	}
	if err := checkRange("motor", c.Motor, 1, MaxMotor); err != nil {
		return err
	}
	if err := checkRange("braking amount", c.Amount, 0, MaxBraking); err != nil {
		return err
	}
	if len(b) < 3 {
		return ErrShortBuffer
	}
	b[0] = byte(c.Motor)
	put14(b[1:], uint16(c.Amount))
	return nil
}

func checkSpeedMode(mode SpeedMode) error {
	return checkRange("speed mode", int(mode), int(SpeedNormal), int(SpeedBuffered))
}

func checkApplyMode(mode ApplyMode) error {
	return checkRange("apply mode", int(mode), int(ApplyNormal), int(ApplyNow))
}
