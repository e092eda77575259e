package motoron

import (
	"strings"

	"github.com/pkg/errors"
)

// ControllerType identifies a Motoron model.
type ControllerType int

// Motoron models.
const (
	M1T550 ControllerType = iota
	M1U550
	M2T550
	M2U550
	M1T256
	M1U256
	M2T256
	M2U256
	M3S550
	M3H550
	M3S256
	M3H256
	M2S24v14
	M2H24v14
	M2S24v16
	M2H24v16
	M2S18v18
	M2H18v18
	M2S18v20
	M2H18v20
)

// ErrUnknownController indicates a controller name is not recognized.
var ErrUnknownController = errors.New("unknown controller type")

var controllers = []struct {
	name     string
	channels int
}{
	M1T550:   {"M1T550", 1},
	M1U550:   {"M1U550", 1},
	M2T550:   {"M2T550", 2},
	M2U550:   {"M2U550", 2},
	M1T256:   {"M1T256", 1},
	M1U256:   {"M1U256", 1},
	M2T256:   {"M2T256", 2},
	M2U256:   {"M2U256", 2},
	M3S550:   {"M3S550", 3},
	M3H550:   {"M3H550", 3},
	M3S256:   {"M3S256", 3},
	M3H256:   {"M3H256", 3},
	M2S24v14: {"M2S24v14", 2},
	M2H24v14: {"M2H24v14", 2},
	M2S24v16: {"M2S24v16", 2},
	M2H24v16: {"M2H24v16", 2},
	M2S18v18: {"M2S18v18", 2},
	M2H18v18: {"M2H18v18", 2},
	M2S18v20: {"M2S18v20", 2},
	M2H18v20: {"M2H18v20", 2},
}

// MotorChannels returns the number of motors the model drives, 1 to 3.
// It returns 0 for an unknown value.
func (t ControllerType) MotorChannels() int {
	if !t.IsValid() {
		return 0
	}
	return controllers[t].channels
}

// IsValid reports whether t is a known model.
func (t ControllerType) IsValid() bool {
	return t >= 0 && int(t) < len(controllers)
}

// String implements fmt.Stringer.
func (t ControllerType) String() string {
	if !t.IsValid() {
		return "unknown"
	}
	return controllers[t].name
}

// ParseControllerType finds the model by name, case-insensitive.
func ParseControllerType(name string) (ControllerType, error) {
	for n, c := range controllers {
		if strings.EqualFold(c.name, name) {
			return ControllerType(n), nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownController, "%q", name)
}

// ControllerTypes lists all known models.
func ControllerTypes() []ControllerType {
	types := make([]ControllerType, len(controllers))
	for n := range controllers {
		types[n] = ControllerType(n)
	}
	return types
}
