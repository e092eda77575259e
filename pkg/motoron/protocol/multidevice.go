package protocol

const maxDeviceNumber = 0x7F

// MultiDeviceErrorCheck asks a chain of devices whether any of them has an
// active error. Response is ErrorCheckResult.
type MultiDeviceErrorCheck struct {
	StartingDevice int
	DeviceCount    int
}

// Code implements Command.
func (c *MultiDeviceErrorCheck) Code() byte { return CmdMultiDeviceErrorCheck }

// NumBytes implements Command.
func (c *MultiDeviceErrorCheck) NumBytes() int { return 2 }

// ResponseBytes implements Command.
func (c *MultiDeviceErrorCheck) ResponseBytes() int { return 1 }

// EncodeBody implements Command.
func (c *MultiDeviceErrorCheck) EncodeBody(b []byte) error {
	if err := checkDeviceRange(c.StartingDevice, c.DeviceCount); err != nil {
		return err
	}
	if len(b) < 2 {
		return ErrShortBuffer
	}
	b[0], b[1] = byte(c.StartingDevice), byte(c.DeviceCount)
	return nil
}

// MultiDeviceWrite sends one inner command to DeviceCount chained devices
// starting at StartingDevice.
type MultiDeviceWrite struct {
	noResponse
	StartingDevice int
	DeviceCount    int
	Command        Command
}

// Code implements Command.
func (c *MultiDeviceWrite) Code() byte { return CmdMultiDeviceWrite }

// NumBytes implements Command.
func (c *MultiDeviceWrite) NumBytes() int {
	if c.Command == nil {
		return 4
	}
	return 4 + c.Command.NumBytes()
}

// EncodeBody implements Command.
func (c *MultiDeviceWrite) EncodeBody(b []byte) error {
	if err := checkDeviceRange(c.StartingDevice, c.DeviceCount); err != nil {
		return err
	}
	if c.Command == nil {
		return ErrNilCommand
	}
	size := c.Command.NumBytes()
	if err := checkRange("inner body length", size, 0, 0x7F); err != nil {
		return err
	}
	if len(b) < 4+size {
		return ErrShortBuffer
	}
	// encode the inner body first so a failure leaves b untouched.
	body := make([]byte, size)
	if err := c.Command.EncodeBody(body); err != nil {
		return err
	}
	b[0], b[1] = byte(c.StartingDevice), byte(c.DeviceCount)
	b[2], b[3] = byte(size), c.Command.Code()&0x7F
	copy(b[4:], body)
	return nil
}

func checkDeviceRange(start, count int) error {
	if start < 0 || start > maxDeviceNumber {
		return &MultiDeviceRangeError{Field: "starting device", Value: start}
	}
	if count < 0 || count > maxDeviceNumber {
		return &MultiDeviceRangeError{Field: "device count", Value: count}
	}
	return nil
}
