package protocol

import "fmt"

// Response decodes the payload of a response frame.
type Response interface {
	Decode(data []byte) error
}

// Ack is the response of commands without payload.
type Ack struct{}

// Decode implements Response.
func (Ack) Decode(data []byte) error {
	if len(data) != 0 {
		return &ResponseLengthError{Expected: 0, Actual: len(data)}
	}
	return nil
}

// RawBytes is a response of caller-specified length, e.g. EEPROM or
// variable reads.
type RawBytes []byte

// Decode implements Response.
func (r *RawBytes) Decode(data []byte) error {
	*r = append((*r)[:0], data...)
	return nil
}

// Uint16At reads a little-endian 16-bit value at offset.
func (r RawBytes) Uint16At(offset int) uint16 {
	return uint16(r[offset]) | uint16(r[offset+1])<<8
}

// FirmwareVersion is the response of GetFirmwareVersion.
type FirmwareVersion struct {
	ProductID uint16
	Minor     uint8
	Major     uint8
}

// Decode implements Response.
func (v *FirmwareVersion) Decode(data []byte) error {
	if len(data) != 4 {
		return &ResponseLengthError{Expected: 4, Actual: len(data)}
	}
	v.ProductID = uint16(data[0]) | uint16(data[1])<<8
	v.Minor, v.Major = data[2], data[3]
	return nil
}

// String implements fmt.Stringer.
func (v FirmwareVersion) String() string {
	return fmt.Sprintf("product 0x%04x firmware %x.%02x", v.ProductID, v.Major, v.Minor)
}

// ErrorCheckStatus is the outcome of MultiDeviceErrorCheck.
type ErrorCheckStatus int

// Error check outcomes.
const (
	ErrorCheckUnrecognized ErrorCheckStatus = iota
	ErrorCheckErrorActive
	ErrorCheckOK
)

// String implements fmt.Stringer.
func (s ErrorCheckStatus) String() string {
	switch s {
	case ErrorCheckErrorActive:
		return "error-active"
	case ErrorCheckOK:
		return "ok"
	default:
		return "unrecognized"
	}
}

// ErrorCheckResult is the response of MultiDeviceErrorCheck. Unknown bytes
// are kept in Raw with status ErrorCheckUnrecognized rather than failing.
type ErrorCheckResult struct {
	Status ErrorCheckStatus
	Raw    byte
}

// Decode implements Response.
func (r *ErrorCheckResult) Decode(data []byte) error {
	if len(data) != 1 {
		return &ResponseLengthError{Expected: 1, Actual: len(data)}
	}
	r.Raw = data[0]
	switch data[0] {
	case ErrorCheckErrByte:
		r.Status = ErrorCheckErrorActive
	case ErrorCheckOKByte:
		r.Status = ErrorCheckOK
	default:
		r.Status = ErrorCheckUnrecognized
	}
	return nil
}

// String implements fmt.Stringer.
func (r ErrorCheckResult) String() string {
	if r.Status == ErrorCheckUnrecognized {
		return fmt.Sprintf("unrecognized(0x%02x)", r.Raw)
	}
	return r.Status.String()
}
