package protocol

import (
	"errors"
	"fmt"
)

var (
	// ErrShortBuffer indicates the body buffer is smaller than NumBytes.
	ErrShortBuffer = errors.New("body buffer too small")
	// ErrNilCommand indicates a wrapper command has no inner command.
	ErrNilCommand = errors.New("inner command is nil")
)

// InvalidValueError is returned when a command argument is out of range.
// Nothing has been written when it is returned.
type InvalidValueError struct {
	Field string
	Min   int
	Max   int
	Value int
}

// Error implements error.
func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("invalid %s %d, expect [%d, %d]", e.Field, e.Value, e.Min, e.Max)
}

// ResponseLengthError indicates a response payload of unexpected size.
type ResponseLengthError struct {
	Expected int
	Actual   int
}

// Error implements error.
func (e *ResponseLengthError) Error() string {
	return fmt.Sprintf("invalid response length %d, expect %d", e.Actual, e.Expected)
}

// ResponseCRCError indicates the CRC byte of a response does not match.
type ResponseCRCError struct {
	Expected byte
	Actual   byte
}

// Error implements error.
func (e *ResponseCRCError) Error() string {
	return fmt.Sprintf("response crc mismatch: got 0x%02x, expect 0x%02x", e.Actual, e.Expected)
}

// MultiDeviceRangeError indicates the device addressing range of a
// multi-device command is out of [0, 0x7F].
type MultiDeviceRangeError struct {
	Field string
	Value int
}

// Error implements error.
func (e *MultiDeviceRangeError) Error() string {
	return fmt.Sprintf("multi-device %s %d out of range [0, %d]", e.Field, e.Value, maxDeviceNumber)
}

func checkRange(field string, v, min, max int) error {
	if v < min || v > max {
		return &InvalidValueError{Field: field, Min: min, Max: max, Value: v}
	}
	return nil
}
