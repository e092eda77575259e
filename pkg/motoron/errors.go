package motoron

import "fmt"

// InvalidSpeedError is returned when a speed is outside [-1, 1] or NaN.
type InvalidSpeedError struct {
	Speed float64
}

// Error implements error.
func (e *InvalidSpeedError) Error() string {
	return fmt.Sprintf("speed %v outside of [-1, 1]", e.Speed)
}

// InvalidBrakingError is returned when a braking amount is outside [0, 1]
// or NaN.
type InvalidBrakingError struct {
	Amount float64
}

// Error implements error.
func (e *InvalidBrakingError) Error() string {
	return fmt.Sprintf("braking amount %v outside of [0, 1]", e.Amount)
}

// InvalidMotorError is returned when a zero-based motor index is not below
// the number of channels of the controller.
type InvalidMotorError struct {
	Provided int
	Channels int
}

// Error implements error.
func (e *InvalidMotorError) Error() string {
	return fmt.Sprintf("motor %d out of range, controller has %d motors", e.Provided, e.Channels)
}

// IncorrectSpeedCountError is returned when the number of speeds given to
// SetAllSpeeds differs from the number of channels.
type IncorrectSpeedCountError struct {
	Provided int
	Expected int
}

// Error implements error.
func (e *IncorrectSpeedCountError) Error() string {
	return fmt.Sprintf("%d speeds provided, controller has %d motors", e.Provided, e.Expected)
}

// TransportError wraps a failure of the underlying bus.
type TransportError struct {
	Op  string
	Err error
}

// Error implements error.
func (e *TransportError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

// Unwrap returns the bus error.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// Cause returns the bus error, for github.com/pkg/errors.Cause.
func (e *TransportError) Cause() error {
	return e.Err
}
