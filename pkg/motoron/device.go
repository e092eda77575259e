package motoron

import (
	"math"
	"time"

	"github.com/golang/glog"

	"github.com/robotalks/motoron.go/pkg/bus"
	"github.com/robotalks/motoron.go/pkg/motoron/protocol"
)

// ResetSettleDelay is how long the controller needs after a reset before it
// accepts commands again.
const ResetSettleDelay = 10 * time.Millisecond

// CommandTimeoutUnit is the resolution of the command timeout variable.
const CommandTimeoutUnit = 4 * time.Millisecond

// Offsets of the general variables (motor 0).
const (
	VarProtocolOptions = 0
	VarStatusFlags     = 1
	VarVinVoltage      = 3
	VarCommandTimeout  = 5
)

// MotorSpeed pairs a zero-based motor index with a speed in [-1, 1].
type MotorSpeed struct {
	Motor int
	Speed float64
}

// Device is a session with one Motoron controller.
type Device struct {
	// SettleDelay is waited after Reset, ResetSettleDelay by default.
	SettleDelay time.Duration

	t    bus.Transport
	ct   ControllerType
	opts ProtocolOptions
}

// Open opens the bus at busURL and creates a Device on it.
func Open(ct ControllerType, busURL string) (*Device, error) {
	t, err := bus.Open(busURL)
	if err != nil {
		return nil, err
	}
	d, err := New(t, ct)
	if err != nil {
		t.Close()
		return nil, err
	}
	return d, nil
}

// New creates a Device with DefaultProtocolOptions on transport t and
// sends the options to the controller.
func New(t bus.Transport, ct ControllerType) (*Device, error) {
	return NewWithOptions(t, ct, DefaultProtocolOptions())
}

// NewWithOptions is New with explicit protocol options.
func NewWithOptions(t bus.Transport, ct ControllerType, opts ProtocolOptions) (*Device, error) {
	d := &Device{
		SettleDelay: ResetSettleDelay,
		t:           t,
		ct:          ct,
		opts:        opts,
	}
	if err := d.writeOptions(); err != nil {
		return nil, err
	}
	return d, nil
}

// ControllerType returns the model the Device was created for.
func (d *Device) ControllerType() ControllerType {
	return d.ct
}

// Options returns the current protocol options.
func (d *Device) Options() ProtocolOptions {
	return d.opts
}

// Close closes the transport.
func (d *Device) Close() error {
	return d.t.Close()
}

// SetSpeed sets the speed of motor (zero-based) to speed in [-1, 1],
// respecting the acceleration limits.
func (d *Device) SetSpeed(motor int, speed float64) error {
	return d.setSpeed(motor, speed, protocol.SpeedNormal)
}

// SetSpeedNow is SetSpeed ignoring acceleration limits.
func (d *Device) SetSpeedNow(motor int, speed float64) error {
	return d.setSpeed(motor, speed, protocol.SpeedNow)
}

func (d *Device) setSpeed(motor int, speed float64, mode protocol.SpeedMode) error {
	cmd, err := d.speedCommand(motor, speed, mode)
	if err != nil {
		return err
	}
	return d.write(cmd)
}

// SetAllSpeeds sets the speeds of all motors in one frame. The number of
// speeds must equal the number of channels.
func (d *Device) SetAllSpeeds(speeds ...float64) error {
	return d.setAllSpeeds(speeds, protocol.SpeedNormal)
}

// SetAllSpeedsNow is SetAllSpeeds ignoring acceleration limits.
func (d *Device) SetAllSpeedsNow(speeds ...float64) error {
	return d.setAllSpeeds(speeds, protocol.SpeedNow)
}

func (d *Device) setAllSpeeds(speeds []float64, mode protocol.SpeedMode) error {
	if channels := d.ct.MotorChannels(); len(speeds) != channels {
		return &IncorrectSpeedCountError{Provided: len(speeds), Expected: channels}
	}
	cmd := &protocol.SetAllSpeeds{Mode: mode, Speeds: make([]int16, len(speeds))}
	for n, speed := range speeds {
		v, err := scaleSpeed(speed)
		if err != nil {
			return err
		}
		cmd.Speeds[n] = v
	}
	return d.write(cmd)
}

// SetMultiSpeed buffers the speed of each listed motor and then applies all
// buffers at once. Nothing is sent if any pair is invalid.
func (d *Device) SetMultiSpeed(speeds []MotorSpeed) error {
	return d.setMultiSpeed(speeds, protocol.ApplyNormal)
}

// SetMultiSpeedNow is SetMultiSpeed ignoring acceleration limits.
func (d *Device) SetMultiSpeedNow(speeds []MotorSpeed) error {
	return d.setMultiSpeed(speeds, protocol.ApplyNow)
}

func (d *Device) setMultiSpeed(speeds []MotorSpeed, mode protocol.ApplyMode) error {
	cmds := make([]protocol.Command, 0, len(speeds))
	for _, s := range speeds {
		cmd, err := d.speedCommand(s.Motor, s.Speed, protocol.SpeedBuffered)
		if err != nil {
			return err
		}
		cmds = append(cmds, cmd)
	}
	for _, cmd := range cmds {
		if err := d.write(cmd); err != nil {
			return err
		}
	}
	return d.write(&protocol.SetAllSpeedsUsingBuffers{Mode: mode})
}

func (d *Device) speedCommand(motor int, speed float64, mode protocol.SpeedMode) (*protocol.SetSpeed, error) {
	v, err := scaleSpeed(speed)
	if err != nil {
		return nil, err
	}
	if err := d.checkMotor(motor); err != nil {
		return nil, err
	}
	return &protocol.SetSpeed{Mode: mode, Motor: motor + 1, Speed: v}, nil
}

func (d *Device) checkMotor(motor int) error {
	if channels := d.ct.MotorChannels(); motor < 0 || motor >= channels {
		return &InvalidMotorError{Provided: motor, Channels: channels}
	}
	return nil
}

func scaleSpeed(speed float64) (int16, error) {
	if math.IsNaN(speed) || speed < -1 || speed > 1 {
		return 0, &InvalidSpeedError{Speed: speed}
	}
	return int16(speed * protocol.MaxSpeed), nil
}

// SetBraking sets the braking amount in [0, 1] of motor (zero-based), used
// while its speed is zero.
func (d *Device) SetBraking(motor int, amount float64) error {
	return d.setBraking(motor, amount, protocol.ApplyNormal)
}

// SetBrakingNow is SetBraking ignoring deceleration limits.
func (d *Device) SetBrakingNow(motor int, amount float64) error {
	return d.setBraking(motor, amount, protocol.ApplyNow)
}

func (d *Device) setBraking(motor int, amount float64, mode protocol.ApplyMode) error {
	if math.IsNaN(amount) || amount < 0 || amount > 1 {
		return &InvalidBrakingError{Amount: amount}
	}
	if err := d.checkMotor(motor); err != nil {
		return err
	}
	return d.write(&protocol.SetBraking{
		Mode:   mode,
		Motor:  motor + 1,
		Amount: int(amount * protocol.MaxBraking),
	})
}

// CoastNow turns off all motors immediately.
func (d *Device) CoastNow() error {
	return d.write(protocol.CoastNow{})
}

// ClearMotorFault clears a latched motor fault. Without unconditional the
// controller keeps the fault while its cause persists.
func (d *Device) ClearMotorFault(unconditional bool) error {
	return d.write(&protocol.ClearMotorFault{Unconditional: unconditional})
}

// ResetCommandTimeout restarts the command timeout timer.
func (d *Device) ResetCommandTimeout() error {
	return d.write(protocol.ResetCommandTimeout{})
}

// SetCommandTimeout sets the time without commands after which the
// controller stops the motors, rounded up to CommandTimeoutUnit.
func (d *Device) SetCommandTimeout(timeout time.Duration) error {
	if timeout < 0 {
		return &protocol.InvalidValueError{
			Field: "command timeout",
			Min:   0,
			Max:   protocol.Max14,
			Value: int(timeout / CommandTimeoutUnit),
		}
	}
	units := (timeout + CommandTimeoutUnit - 1) / CommandTimeoutUnit
	return d.SetVariable(0, VarCommandTimeout, int(units))
}

// ClearLatchedStatusFlags clears the latched flags in flags.
func (d *Device) ClearLatchedStatusFlags(flags StatusFlags) error {
	return d.write(&protocol.ClearLatchedStatusFlags{Flags: int(flags)})
}

// SetLatchedStatusFlags sets the latched flags in flags.
func (d *Device) SetLatchedStatusFlags(flags StatusFlags) error {
	return d.write(&protocol.SetLatchedStatusFlags{Flags: int(flags)})
}

// ClearResetFlag clears the reset flag, which otherwise keeps the motors
// disabled after power up or reset.
func (d *Device) ClearResetFlag() error {
	return d.ClearLatchedStatusFlags(FlagReset)
}

// StatusFlags reads the status flags variable.
func (d *Device) StatusFlags() (StatusFlags, error) {
	v, err := d.readVariable16(VarStatusFlags)
	return StatusFlags(v), err
}

// VinVoltageRaw reads the raw VIN voltage measurement.
func (d *Device) VinVoltageRaw() (uint16, error) {
	return d.readVariable16(VarVinVoltage)
}

func (d *Device) readVariable16(offset int) (uint16, error) {
	data, err := d.GetVariables(0, offset, 2)
	if err != nil {
		return 0, err
	}
	return protocol.RawBytes(data).Uint16At(0), nil
}

// GetVariables reads length bytes of variables. Motor 0 addresses the
// general variables, 1 to 3 the variables of that motor.
func (d *Device) GetVariables(motor, offset, length int) ([]byte, error) {
	var data protocol.RawBytes
	if err := d.query(&protocol.GetVariables{Motor: motor, Offset: offset, Length: length}, &data); err != nil {
		return nil, err
	}
	return data, nil
}

// SetVariable writes a 14-bit variable, addressed as in GetVariables.
func (d *Device) SetVariable(motor, offset, value int) error {
	return d.write(&protocol.SetVariable{Motor: motor, Offset: offset, Value: value})
}

// ReadEeprom reads length bytes of EEPROM settings.
func (d *Device) ReadEeprom(offset, length int) ([]byte, error) {
	var data protocol.RawBytes
	if err := d.query(&protocol.ReadEeprom{Offset: offset, Length: length}, &data); err != nil {
		return nil, err
	}
	return data, nil
}

// WriteEeprom writes one byte of EEPROM settings. Settings take effect
// after the next reset.
func (d *Device) WriteEeprom(offset, value int) error {
	return d.write(&protocol.WriteEeprom{Offset: offset, Value: value})
}

// FirmwareVersion queries the product ID and firmware version.
func (d *Device) FirmwareVersion() (protocol.FirmwareVersion, error) {
	var v protocol.FirmwareVersion
	err := d.query(protocol.GetFirmwareVersion{}, &v)
	return v, err
}

// MultiDeviceErrorCheck asks count chained controllers starting at start
// whether any of them has an active error.
func (d *Device) MultiDeviceErrorCheck(start, count int) (protocol.ErrorCheckResult, error) {
	var r protocol.ErrorCheckResult
	err := d.query(&protocol.MultiDeviceErrorCheck{StartingDevice: start, DeviceCount: count}, &r)
	return r, err
}

// MultiDeviceWrite sends cmd to count chained controllers starting at
// start.
func (d *Device) MultiDeviceWrite(start, count int, cmd protocol.Command) error {
	return d.write(&protocol.MultiDeviceWrite{StartingDevice: start, DeviceCount: count, Command: cmd})
}

// Reinitialise restores the default state of all variables, then sends
// the protocol options again.
func (d *Device) Reinitialise() error {
	if err := d.writeFrame(protocol.Reinitialise{}, true); err != nil {
		return err
	}
	return d.writeOptions()
}

// Reset reinitialises the controller, waits SettleDelay and sends the
// protocol options again.
func (d *Device) Reset() error {
	return d.settle(protocol.Reinitialise{})
}

// Restart sends the full firmware reset command (0x99), waits SettleDelay
// and sends the protocol options again.
func (d *Device) Restart() error {
	return d.settle(protocol.Reset{})
}

func (d *Device) settle(cmd protocol.Command) error {
	if err := d.writeFrame(cmd, true); err != nil {
		return err
	}
	if d.SettleDelay > 0 {
		time.Sleep(d.SettleDelay)
	}
	return d.writeOptions()
}

// EnableCRC turns on CRC for commands and responses.
func (d *Device) EnableCRC() error {
	d.opts.CRCForCommands, d.opts.CRCForResponses = true, true
	return d.writeOptions()
}

// DisableCRC turns off CRC for commands and responses.
func (d *Device) DisableCRC() error {
	d.opts.CRCForCommands, d.opts.CRCForResponses = false, false
	return d.writeOptions()
}

// EnableI2CGeneralCall makes the controller accept commands sent to the
// I2C general call address.
func (d *Device) EnableI2CGeneralCall() error {
	d.opts.I2CGeneralCall = true
	return d.writeOptions()
}

// DisableI2CGeneralCall makes the controller ignore the I2C general call
// address.
func (d *Device) DisableI2CGeneralCall() error {
	d.opts.I2CGeneralCall = false
	return d.writeOptions()
}

// SetProtocolOptions replaces all protocol options at once.
func (d *Device) SetProtocolOptions(opts ProtocolOptions) error {
	d.opts = opts
	return d.writeOptions()
}

// the option frame always carries a CRC so it is accepted whatever the
// controller currently expects.
func (d *Device) writeOptions() error {
	return d.writeFrame(d.opts.command(), true)
}

func (d *Device) write(cmd protocol.Command) error {
	return d.writeFrame(cmd, d.opts.CRCForCommands)
}

func (d *Device) writeFrame(cmd protocol.Command, crc bool) error {
	frame, err := protocol.Encode(cmd, crc)
	if err != nil {
		return err
	}
	if glog.V(3) {
		glog.Infof("TX % x", frame)
	}
	if err := d.t.Write(frame); err != nil {
		return &TransportError{Op: "write", Err: err}
	}
	return nil
}

func (d *Device) query(cmd protocol.Command, resp protocol.Response) error {
	if err := d.write(cmd); err != nil {
		return err
	}
	frame := make([]byte, protocol.ReadLength(cmd, d.opts.CRCForResponses))
	if err := d.t.Read(frame); err != nil {
		return &TransportError{Op: "read", Err: err}
	}
	if glog.V(3) {
		glog.Infof("RX % x", frame)
	}
	return protocol.Decode(frame, d.opts.CRCForResponses, resp)
}
