package motoron

import "strings"

// StatusFlags is the status flags variable of the controller.
type StatusFlags uint16

// Status flag bits.
const (
	FlagProtocolError StatusFlags = 1 << iota
	FlagCRCError
	FlagCommandTimeoutLatched
	FlagMotorFaultLatched
	FlagNoPowerLatched
	FlagUARTError
	_
	_
	_
	FlagReset
	FlagMotorFaulting
	FlagNoPower
	FlagErrorActive
	FlagMotorOutputEnabled
	FlagMotorDriving
)

// LatchedFlags is the set of flags that stay set until cleared.
const LatchedFlags StatusFlags = 0x3FF

var flagNames = []struct {
	flag StatusFlags
	name string
}{
	{FlagProtocolError, "protocol-error"},
	{FlagCRCError, "crc-error"},
	{FlagCommandTimeoutLatched, "command-timeout"},
	{FlagMotorFaultLatched, "motor-fault"},
	{FlagNoPowerLatched, "no-power-latched"},
	{FlagUARTError, "uart-error"},
	{FlagReset, "reset"},
	{FlagMotorFaulting, "motor-faulting"},
	{FlagNoPower, "no-power"},
	{FlagErrorActive, "error-active"},
	{FlagMotorOutputEnabled, "output-enabled"},
	{FlagMotorDriving, "driving"},
}

// Has reports whether all bits of f are set.
func (s StatusFlags) Has(f StatusFlags) bool {
	return s&f == f
}

// Names returns the names of the set flags in bit order.
func (s StatusFlags) Names() []string {
	var names []string
	for _, n := range flagNames {
		if s&n.flag != 0 {
			names = append(names, n.name)
		}
	}
	return names
}

// String lists the names of the set flags.
func (s StatusFlags) String() string {
	names := s.Names()
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, "|")
}

// ParseStatusFlag finds a flag by the name String uses.
func ParseStatusFlag(name string) (StatusFlags, bool) {
	for _, n := range flagNames {
		if n.name == name {
			return n.flag, true
		}
	}
	return 0, false
}
