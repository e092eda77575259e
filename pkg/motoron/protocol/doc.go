// Package protocol provides the Motoron command protocol codec.
package protocol

// A frame sent to the controller is one opcode byte, the command body and an
// optional CRC byte. The opcode is the only byte with the top bit set; every
// body byte carries at most 7 bits of data, so wider values are split into
// 7-bit groups, least significant group first.
//
// A response frame is the response payload followed by an optional CRC byte.
// The CRC (see Checksum) covers everything before it.
//
// Commands validate their arguments before writing anything, so a failed
// Encode never yields a partial frame.
