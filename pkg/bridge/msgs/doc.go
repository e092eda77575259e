// Package msgs defines the messages exchanged with a motorond bridge and
// their wire envelope.
package msgs

// Each packet is a protobuf Typed envelope. The type ID tells the kind
// (command or event), the group and whether a command message is a reply.
// Replies carry the sequence of the command they answer.
//
// Producer of commands: remote clients (motoroncli, browsers, services)
// Consumer of commands: motorond, which replies and emits status events
