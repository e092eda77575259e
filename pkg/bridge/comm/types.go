// Package comm carries bridge packets over MQTT, websocket and TCP streams.
package comm

// PacketReader reads packets in bytes.
type PacketReader interface {
	ReadPacket() ([]byte, error)
}

// PacketWriter writes packets in bytes.
type PacketWriter interface {
	WritePacket([]byte) error
}

// PacketReadWriter reads/writes packets in bytes.
type PacketReadWriter interface {
	PacketReader
	PacketWriter
}

// DeviceRef is a reference to a bridged controller.
type DeviceRef struct {
	// Type is the device type, "motoron" for motorond.
	Type string
	// ID is unique ID of the device.
	ID string
}

// Name retrieves the name from ref.
func (r DeviceRef) Name() string {
	return r.Type + "/" + r.ID
}

// IsValid indicates DeviceRef is valid.
func (r DeviceRef) IsValid() bool {
	return r.Type != "" && r.ID != ""
}

// DeviceMeta is published along with a bridged controller.
type DeviceMeta struct {
	Description string            `json:"description,omitempty"`
	Controller  string            `json:"controller,omitempty"`
	Channels    int               `json:"channels,omitempty"`
	Firmware    string            `json:"firmware,omitempty"`
	Labels      map[string]string `json:"labels,omitempty"`
}

// DeviceInfo provides information of a bridged controller.
type DeviceInfo struct {
	Ref  DeviceRef
	Meta DeviceMeta
}
