package motoron

import "github.com/robotalks/motoron.go/pkg/motoron/protocol"

// ProtocolOptions are the communication options kept in sync with the
// controller.
type ProtocolOptions struct {
	CRCForCommands  bool
	CRCForResponses bool
	I2CGeneralCall  bool
}

// DefaultProtocolOptions enables everything, matching the controller's
// own defaults.
func DefaultProtocolOptions() ProtocolOptions {
	return ProtocolOptions{
		CRCForCommands:  true,
		CRCForResponses: true,
		I2CGeneralCall:  true,
	}
}

func (o ProtocolOptions) command() *protocol.SetProtocolOptions {
	return &protocol.SetProtocolOptions{
		CRCForCommands:  o.CRCForCommands,
		CRCForResponses: o.CRCForResponses,
		I2CGeneralCall:  o.I2CGeneralCall,
	}
}
