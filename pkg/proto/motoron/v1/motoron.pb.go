// Package v1 holds the message schemas of the motoron bridge, kept in sync
// with motoron.proto.
package v1

import "github.com/golang/protobuf/proto"

// Typed is the envelope of every bridge packet.
type Typed struct {
	TypeId   uint32 `protobuf:"varint,1,opt,name=type_id,json=typeId,proto3" json:"type_id,omitempty"`
	Sequence uint32 `protobuf:"varint,2,opt,name=sequence,proto3" json:"sequence,omitempty"`
	Message  []byte `protobuf:"bytes,3,opt,name=message,proto3" json:"message,omitempty"`
}

func (m *Typed) Reset()         { *m = Typed{} }
func (m *Typed) String() string { return proto.CompactTextString(m) }
func (*Typed) ProtoMessage()    {}

func (m *Typed) GetTypeId() uint32 {
	if m != nil {
		return m.TypeId
	}
	return 0
}

func (m *Typed) GetSequence() uint32 {
	if m != nil {
		return m.Sequence
	}
	return 0
}

func (m *Typed) GetMessage() []byte {
	if m != nil {
		return m.Message
	}
	return nil
}

// CommandOK mirrors motoron.v1.CommandOK.
type CommandOK struct{}

func (m *CommandOK) Reset()         { *m = CommandOK{} }
func (m *CommandOK) String() string { return proto.CompactTextString(m) }
func (*CommandOK) ProtoMessage()    {}

// CommandErr mirrors motoron.v1.CommandErr.
type CommandErr struct {
	Message string `protobuf:"bytes,1,opt,name=message,proto3" json:"message,omitempty"`
}

func (m *CommandErr) Reset()         { *m = CommandErr{} }
func (m *CommandErr) String() string { return proto.CompactTextString(m) }
func (*CommandErr) ProtoMessage()    {}

func (m *CommandErr) GetMessage() string {
	if m != nil {
		return m.Message
	}
	return ""
}

// SetSpeed mirrors motoron.v1.SetSpeed.
type SetSpeed struct {
	Motor int32   `protobuf:"varint,1,opt,name=motor,proto3" json:"motor,omitempty"`
	Speed float64 `protobuf:"fixed64,2,opt,name=speed,proto3" json:"speed,omitempty"`
	Now   bool    `protobuf:"varint,3,opt,name=now,proto3" json:"now,omitempty"`
}

func (m *SetSpeed) Reset()         { *m = SetSpeed{} }
func (m *SetSpeed) String() string { return proto.CompactTextString(m) }
func (*SetSpeed) ProtoMessage()    {}

func (m *SetSpeed) GetMotor() int32 {
	if m != nil {
		return m.Motor
	}
	return 0
}

func (m *SetSpeed) GetSpeed() float64 {
	if m != nil {
		return m.Speed
	}
	return 0
}

func (m *SetSpeed) GetNow() bool {
	if m != nil {
		return m.Now
	}
	return false
}

// SetAllSpeeds mirrors motoron.v1.SetAllSpeeds.
type SetAllSpeeds struct {
	Speeds []float64 `protobuf:"fixed64,1,rep,packed,name=speeds,proto3" json:"speeds,omitempty"`
	Now    bool      `protobuf:"varint,2,opt,name=now,proto3" json:"now,omitempty"`
}

func (m *SetAllSpeeds) Reset()         { *m = SetAllSpeeds{} }
func (m *SetAllSpeeds) String() string { return proto.CompactTextString(m) }
func (*SetAllSpeeds) ProtoMessage()    {}

func (m *SetAllSpeeds) GetSpeeds() []float64 {
	if m != nil {
		return m.Speeds
	}
	return nil
}

func (m *SetAllSpeeds) GetNow() bool {
	if m != nil {
		return m.Now
	}
	return false
}

// MotorSpeed mirrors motoron.v1.MotorSpeed.
type MotorSpeed struct {
	Motor int32   `protobuf:"varint,1,opt,name=motor,proto3" json:"motor,omitempty"`
	Speed float64 `protobuf:"fixed64,2,opt,name=speed,proto3" json:"speed,omitempty"`
}

func (m *MotorSpeed) Reset()         { *m = MotorSpeed{} }
func (m *MotorSpeed) String() string { return proto.CompactTextString(m) }
func (*MotorSpeed) ProtoMessage()    {}

func (m *MotorSpeed) GetMotor() int32 {
	if m != nil {
		return m.Motor
	}
	return 0
}

func (m *MotorSpeed) GetSpeed() float64 {
	if m != nil {
		return m.Speed
	}
	return 0
}

// SetMultiSpeed mirrors motoron.v1.SetMultiSpeed.
type SetMultiSpeed struct {
	Speeds []*MotorSpeed `protobuf:"bytes,1,rep,name=speeds,proto3" json:"speeds,omitempty"`
	Now    bool          `protobuf:"varint,2,opt,name=now,proto3" json:"now,omitempty"`
}

func (m *SetMultiSpeed) Reset()         { *m = SetMultiSpeed{} }
func (m *SetMultiSpeed) String() string { return proto.CompactTextString(m) }
func (*SetMultiSpeed) ProtoMessage()    {}

func (m *SetMultiSpeed) GetSpeeds() []*MotorSpeed {
	if m != nil {
		return m.Speeds
	}
	return nil
}

func (m *SetMultiSpeed) GetNow() bool {
	if m != nil {
		return m.Now
	}
	return false
}

// SetBraking mirrors motoron.v1.SetBraking.
type SetBraking struct {
	Motor  int32   `protobuf:"varint,1,opt,name=motor,proto3" json:"motor,omitempty"`
	Amount float64 `protobuf:"fixed64,2,opt,name=amount,proto3" json:"amount,omitempty"`
	Now    bool    `protobuf:"varint,3,opt,name=now,proto3" json:"now,omitempty"`
}

func (m *SetBraking) Reset()         { *m = SetBraking{} }
func (m *SetBraking) String() string { return proto.CompactTextString(m) }
func (*SetBraking) ProtoMessage()    {}

func (m *SetBraking) GetMotor() int32 {
	if m != nil {
		return m.Motor
	}
	return 0
}

func (m *SetBraking) GetAmount() float64 {
	if m != nil {
		return m.Amount
	}
	return 0
}

func (m *SetBraking) GetNow() bool {
	if m != nil {
		return m.Now
	}
	return false
}

// CoastNow mirrors motoron.v1.CoastNow.
type CoastNow struct{}

func (m *CoastNow) Reset()         { *m = CoastNow{} }
func (m *CoastNow) String() string { return proto.CompactTextString(m) }
func (*CoastNow) ProtoMessage()    {}

// FirmwareVersionQuery mirrors motoron.v1.FirmwareVersionQuery.
type FirmwareVersionQuery struct{}

func (m *FirmwareVersionQuery) Reset()         { *m = FirmwareVersionQuery{} }
func (m *FirmwareVersionQuery) String() string { return proto.CompactTextString(m) }
func (*FirmwareVersionQuery) ProtoMessage()    {}

// FirmwareVersion mirrors motoron.v1.FirmwareVersion.
type FirmwareVersion struct {
	ProductId uint32 `protobuf:"varint,1,opt,name=product_id,json=productId,proto3" json:"product_id,omitempty"`
	Major     uint32 `protobuf:"varint,2,opt,name=major,proto3" json:"major,omitempty"`
	Minor     uint32 `protobuf:"varint,3,opt,name=minor,proto3" json:"minor,omitempty"`
}

func (m *FirmwareVersion) Reset()         { *m = FirmwareVersion{} }
func (m *FirmwareVersion) String() string { return proto.CompactTextString(m) }
func (*FirmwareVersion) ProtoMessage()    {}

func (m *FirmwareVersion) GetProductId() uint32 {
	if m != nil {
		return m.ProductId
	}
	return 0
}

func (m *FirmwareVersion) GetMajor() uint32 {
	if m != nil {
		return m.Major
	}
	return 0
}

func (m *FirmwareVersion) GetMinor() uint32 {
	if m != nil {
		return m.Minor
	}
	return 0
}

// StatusQuery mirrors motoron.v1.StatusQuery.
type StatusQuery struct{}

func (m *StatusQuery) Reset()         { *m = StatusQuery{} }
func (m *StatusQuery) String() string { return proto.CompactTextString(m) }
func (*StatusQuery) ProtoMessage()    {}

// Status mirrors motoron.v1.Status.
type Status struct {
	Flags     uint32   `protobuf:"varint,1,opt,name=flags,proto3" json:"flags,omitempty"`
	VinRaw    uint32   `protobuf:"varint,2,opt,name=vin_raw,json=vinRaw,proto3" json:"vin_raw,omitempty"`
	FlagNames []string `protobuf:"bytes,3,rep,name=flag_names,json=flagNames,proto3" json:"flag_names,omitempty"`
}

func (m *Status) Reset()         { *m = Status{} }
func (m *Status) String() string { return proto.CompactTextString(m) }
func (*Status) ProtoMessage()    {}

func (m *Status) GetFlags() uint32 {
	if m != nil {
		return m.Flags
	}
	return 0
}

func (m *Status) GetVinRaw() uint32 {
	if m != nil {
		return m.VinRaw
	}
	return 0
}

func (m *Status) GetFlagNames() []string {
	if m != nil {
		return m.FlagNames
	}
	return nil
}

// Reinitialise mirrors motoron.v1.Reinitialise.
type Reinitialise struct{}

func (m *Reinitialise) Reset()         { *m = Reinitialise{} }
func (m *Reinitialise) String() string { return proto.CompactTextString(m) }
func (*Reinitialise) ProtoMessage()    {}

// ClearLatchedStatusFlags mirrors motoron.v1.ClearLatchedStatusFlags.
type ClearLatchedStatusFlags struct {
	Flags uint32 `protobuf:"varint,1,opt,name=flags,proto3" json:"flags,omitempty"`
}

func (m *ClearLatchedStatusFlags) Reset()         { *m = ClearLatchedStatusFlags{} }
func (m *ClearLatchedStatusFlags) String() string { return proto.CompactTextString(m) }
func (*ClearLatchedStatusFlags) ProtoMessage()    {}

func (m *ClearLatchedStatusFlags) GetFlags() uint32 {
	if m != nil {
		return m.Flags
	}
	return 0
}

// SetCRC mirrors motoron.v1.SetCRC.
type SetCRC struct {
	Enabled bool `protobuf:"varint,1,opt,name=enabled,proto3" json:"enabled,omitempty"`
}

func (m *SetCRC) Reset()         { *m = SetCRC{} }
func (m *SetCRC) String() string { return proto.CompactTextString(m) }
func (*SetCRC) ProtoMessage()    {}

func (m *SetCRC) GetEnabled() bool {
	if m != nil {
		return m.Enabled
	}
	return false
}

// StatusEvent mirrors motoron.v1.StatusEvent.
type StatusEvent struct {
	Flags     uint32   `protobuf:"varint,1,opt,name=flags,proto3" json:"flags,omitempty"`
	VinRaw    uint32   `protobuf:"varint,2,opt,name=vin_raw,json=vinRaw,proto3" json:"vin_raw,omitempty"`
	FlagNames []string `protobuf:"bytes,3,rep,name=flag_names,json=flagNames,proto3" json:"flag_names,omitempty"`
}

func (m *StatusEvent) Reset()         { *m = StatusEvent{} }
func (m *StatusEvent) String() string { return proto.CompactTextString(m) }
func (*StatusEvent) ProtoMessage()    {}

func (m *StatusEvent) GetFlags() uint32 {
	if m != nil {
		return m.Flags
	}
	return 0
}

func (m *StatusEvent) GetVinRaw() uint32 {
	if m != nil {
		return m.VinRaw
	}
	return 0
}

func (m *StatusEvent) GetFlagNames() []string {
	if m != nil {
		return m.FlagNames
	}
	return nil
}

func init() {
	proto.RegisterType((*Typed)(nil), "motoron.v1.Typed")
	proto.RegisterType((*CommandOK)(nil), "motoron.v1.CommandOK")
	proto.RegisterType((*CommandErr)(nil), "motoron.v1.CommandErr")
	proto.RegisterType((*SetSpeed)(nil), "motoron.v1.SetSpeed")
	proto.RegisterType((*SetAllSpeeds)(nil), "motoron.v1.SetAllSpeeds")
	proto.RegisterType((*MotorSpeed)(nil), "motoron.v1.MotorSpeed")
	proto.RegisterType((*SetMultiSpeed)(nil), "motoron.v1.SetMultiSpeed")
	proto.RegisterType((*SetBraking)(nil), "motoron.v1.SetBraking")
	proto.RegisterType((*CoastNow)(nil), "motoron.v1.CoastNow")
	proto.RegisterType((*FirmwareVersionQuery)(nil), "motoron.v1.FirmwareVersionQuery")
	proto.RegisterType((*FirmwareVersion)(nil), "motoron.v1.FirmwareVersion")
	proto.RegisterType((*StatusQuery)(nil), "motoron.v1.StatusQuery")
	proto.RegisterType((*Status)(nil), "motoron.v1.Status")
	proto.RegisterType((*Reinitialise)(nil), "motoron.v1.Reinitialise")
	proto.RegisterType((*ClearLatchedStatusFlags)(nil), "motoron.v1.ClearLatchedStatusFlags")
	proto.RegisterType((*SetCRC)(nil), "motoron.v1.SetCRC")
	proto.RegisterType((*StatusEvent)(nil), "motoron.v1.StatusEvent")
}
