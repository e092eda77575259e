package msgs

import (
	"github.com/golang/protobuf/proto"

	fx "github.com/robotalks/motoron.go/pkg/framework"
	pb "github.com/robotalks/motoron.go/pkg/proto/motoron/v1"
)

// CommandOK is the generic reply indicating success.
type CommandOK struct {
	pb.CommandOK
}

// NewMessage implements Message.
func (m *CommandOK) NewMessage() fx.Message { return &CommandOK{} }

// TypeID implements SerializableMessage.
func (m *CommandOK) TypeID() uint32 { return CommandOKTypeID }

// Serializable implements SerializableMessage.
func (m *CommandOK) Serializable() proto.Message { return &m.CommandOK }

// NewCommandOK creates a CommandOK.
func NewCommandOK() *CommandOK {
	return &CommandOK{}
}

// CommandErr is the generic reply carrying a failure.
type CommandErr struct {
	pb.CommandErr
}

// NewMessage implements Message.
func (m *CommandErr) NewMessage() fx.Message { return &CommandErr{} }

// TypeID implements SerializableMessage.
func (m *CommandErr) TypeID() uint32 { return CommandErrTypeID }

// Serializable implements SerializableMessage.
func (m *CommandErr) Serializable() proto.Message { return &m.CommandErr }

// NewCommandErr creates a CommandErr from an error.
func NewCommandErr(err error) *CommandErr {
	return &CommandErr{CommandErr: pb.CommandErr{Message: err.Error()}}
}

// Error implements error.
func (m *CommandErr) Error() string { return m.Message }

// SetSpeed sets the speed of one motor.
type SetSpeed struct {
	pb.SetSpeed
}

// NewMessage implements Message.
func (m *SetSpeed) NewMessage() fx.Message { return &SetSpeed{} }

// TypeID implements SerializableMessage.
func (m *SetSpeed) TypeID() uint32 { return SetSpeedTypeID }

// Serializable implements SerializableMessage.
func (m *SetSpeed) Serializable() proto.Message { return &m.SetSpeed }

// SetAllSpeeds sets the speeds of all motors.
type SetAllSpeeds struct {
	pb.SetAllSpeeds
}

// NewMessage implements Message.
func (m *SetAllSpeeds) NewMessage() fx.Message { return &SetAllSpeeds{} }

// TypeID implements SerializableMessage.
func (m *SetAllSpeeds) TypeID() uint32 { return SetAllSpeedsTypeID }

// Serializable implements SerializableMessage.
func (m *SetAllSpeeds) Serializable() proto.Message { return &m.SetAllSpeeds }

// SetMultiSpeed sets the speeds of several motors at once.
type SetMultiSpeed struct {
	pb.SetMultiSpeed
}

// NewMessage implements Message.
func (m *SetMultiSpeed) NewMessage() fx.Message { return &SetMultiSpeed{} }

// TypeID implements SerializableMessage.
func (m *SetMultiSpeed) TypeID() uint32 { return SetMultiSpeedTypeID }

// Serializable implements SerializableMessage.
func (m *SetMultiSpeed) Serializable() proto.Message { return &m.SetMultiSpeed }

// SetBraking sets the braking amount of one motor.
type SetBraking struct {
	pb.SetBraking
}

// NewMessage implements Message.
func (m *SetBraking) NewMessage() fx.Message { return &SetBraking{} }

// TypeID implements SerializableMessage.
func (m *SetBraking) TypeID() uint32 { return SetBrakingTypeID }

// Serializable implements SerializableMessage.
func (m *SetBraking) Serializable() proto.Message { return &m.SetBraking }

// CoastNow command.
type CoastNow struct {
	pb.CoastNow
}

// NewMessage implements Message.
func (m *CoastNow) NewMessage() fx.Message { return &CoastNow{} }

// TypeID implements SerializableMessage.
func (m *CoastNow) TypeID() uint32 { return CoastNowTypeID }

// Serializable implements SerializableMessage.
func (m *CoastNow) Serializable() proto.Message { return &m.CoastNow }

// FirmwareVersionQuery command.
type FirmwareVersionQuery struct {
	pb.FirmwareVersionQuery
}

// NewMessage implements Message.
func (m *FirmwareVersionQuery) NewMessage() fx.Message { return &FirmwareVersionQuery{} }

// TypeID implements SerializableMessage.
func (m *FirmwareVersionQuery) TypeID() uint32 { return FirmwareVersionQueryTypeID }

// Serializable implements SerializableMessage.
func (m *FirmwareVersionQuery) Serializable() proto.Message { return &m.FirmwareVersionQuery }

// FirmwareVersion reply.
type FirmwareVersion struct {
	pb.FirmwareVersion
}

// NewMessage implements Message.
func (m *FirmwareVersion) NewMessage() fx.Message { return &FirmwareVersion{} }

// TypeID implements SerializableMessage.
func (m *FirmwareVersion) TypeID() uint32 { return FirmwareVersionTypeID }

// Serializable implements SerializableMessage.
func (m *FirmwareVersion) Serializable() proto.Message { return &m.FirmwareVersion }

// StatusQuery command.
type StatusQuery struct {
	pb.StatusQuery
}

// NewMessage implements Message.
func (m *StatusQuery) NewMessage() fx.Message { return &StatusQuery{} }

// TypeID implements SerializableMessage.
func (m *StatusQuery) TypeID() uint32 { return StatusQueryTypeID }

// Serializable implements SerializableMessage.
func (m *StatusQuery) Serializable() proto.Message { return &m.StatusQuery }

// Status reply.
type Status struct {
	pb.Status
}

// NewMessage implements Message.
func (m *Status) NewMessage() fx.Message { return &Status{} }

// TypeID implements SerializableMessage.
func (m *Status) TypeID() uint32 { return StatusTypeID }

// Serializable implements SerializableMessage.
func (m *Status) Serializable() proto.Message { return &m.Status }

// Reinitialise command.
type Reinitialise struct {
	pb.Reinitialise
}

// NewMessage implements Message.
func (m *Reinitialise) NewMessage() fx.Message { return &Reinitialise{} }

// TypeID implements SerializableMessage.
func (m *Reinitialise) TypeID() uint32 { return ReinitialiseTypeID }

// Serializable implements SerializableMessage.
func (m *Reinitialise) Serializable() proto.Message { return &m.Reinitialise }

// ClearLatchedStatusFlags command.
type ClearLatchedStatusFlags struct {
	pb.ClearLatchedStatusFlags
}

// NewMessage implements Message.
func (m *ClearLatchedStatusFlags) NewMessage() fx.Message { return &ClearLatchedStatusFlags{} }

// TypeID implements SerializableMessage.
func (m *ClearLatchedStatusFlags) TypeID() uint32 { return ClearLatchedStatusFlagsTypeID }

// Serializable implements SerializableMessage.
func (m *ClearLatchedStatusFlags) Serializable() proto.Message { return &m.ClearLatchedStatusFlags }

// SetCRC turns CRC on commands and responses on or off.
type SetCRC struct {
	pb.SetCRC
}

// NewMessage implements Message.
func (m *SetCRC) NewMessage() fx.Message { return &SetCRC{} }

// TypeID implements SerializableMessage.
func (m *SetCRC) TypeID() uint32 { return SetCRCTypeID }

// Serializable implements SerializableMessage.
func (m *SetCRC) Serializable() proto.Message { return &m.SetCRC }

// StatusEvent is emitted when the status flags change.
type StatusEvent struct {
	pb.StatusEvent
}

// NewMessage implements Message.
func (m *StatusEvent) NewMessage() fx.Message { return &StatusEvent{} }

// TypeID implements SerializableMessage.
func (m *StatusEvent) TypeID() uint32 { return StatusEventTypeID }

// Serializable implements SerializableMessage.
func (m *StatusEvent) Serializable() proto.Message { return &m.StatusEvent }
// TypeID groups
const (
	GroupCommand uint32 = 0x00000000
	GroupMotoron uint32 = 0x00010000
	GroupCustom  uint32 = 0x7f000000 // base group id for custom messages.
)

// TypeIDs
const (
	CommandOKTypeID               uint32 = GroupCommand | TypeIDMaskReply | 0x0000
	CommandErrTypeID              uint32 = GroupCommand | TypeIDMaskReply | 0x0001
	SetSpeedTypeID                uint32 = GroupMotoron | 0x0001
	SetAllSpeedsTypeID            uint32 = GroupMotoron | 0x0002
	SetMultiSpeedTypeID           uint32 = GroupMotoron | 0x0003
	SetBrakingTypeID              uint32 = GroupMotoron | 0x0004
	CoastNowTypeID                uint32 = GroupMotoron | 0x0005
	FirmwareVersionQueryTypeID    uint32 = GroupMotoron | 0x0010
	FirmwareVersionTypeID         uint32 = FirmwareVersionQueryTypeID | TypeIDMaskReply
	StatusQueryTypeID             uint32 = GroupMotoron | 0x0011
	StatusTypeID                  uint32 = StatusQueryTypeID | TypeIDMaskReply
	ReinitialiseTypeID            uint32 = GroupMotoron | 0x0020
	ClearLatchedStatusFlagsTypeID uint32 = GroupMotoron | 0x0021
	SetCRCTypeID                  uint32 = GroupMotoron | 0x0022
	StatusEventTypeID             uint32 = TypeIDKindEvent | GroupMotoron | 0x0001
)

// MessageTypes maps type IDs to registered messages.
var MessageTypes = map[uint32]SerializableMessage{}

var typeNames = map[uint32]string{}

// Register adds messages to MessageTypes. name is used by TypeName.
func Register(name string, msg SerializableMessage) {
	MessageTypes[msg.TypeID()] = msg
	typeNames[msg.TypeID()] = name
}

func init() {
	Register("CommandOK", (*CommandOK)(nil))
	Register("CommandErr", (*CommandErr)(nil))
	Register("SetSpeed", (*SetSpeed)(nil))
	Register("SetAllSpeeds", (*SetAllSpeeds)(nil))
	Register("SetMultiSpeed", (*SetMultiSpeed)(nil))
	Register("SetBraking", (*SetBraking)(nil))
	Register("CoastNow", (*CoastNow)(nil))
	Register("FirmwareVersionQuery", (*FirmwareVersionQuery)(nil))
	Register("FirmwareVersion", (*FirmwareVersion)(nil))
	Register("StatusQuery", (*StatusQuery)(nil))
	Register("Status", (*Status)(nil))
	Register("Reinitialise", (*Reinitialise)(nil))
	Register("ClearLatchedStatusFlags", (*ClearLatchedStatusFlags)(nil))
	Register("SetCRC", (*SetCRC)(nil))
	Register("StatusEvent", (*StatusEvent)(nil))
}
