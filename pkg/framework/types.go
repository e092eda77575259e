// Package framework provides the plumbing shared by the daemons: runnables,
// a runner collecting their errors, and periodic tasks.
package framework

import "context"

// Named is an abstraction for things with a name.
type Named interface {
	Name() string
}

// Runnable is a background task which runs until ctx is done or it fails.
type Runnable interface {
	Run(ctx context.Context) error
}

// RunFunc is the func form of Runnable.
type RunFunc func(context.Context) error

// Run implements Runnable.
func (f RunFunc) Run(ctx context.Context) error {
	return f(ctx)
}

// Message is a value exchanged between components, e.g. bridge commands.
type Message interface {
	// NewMessage creates an empty message of the same type.
	NewMessage() Message
}
