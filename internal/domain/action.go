package domain

import "context"

// Action represents a single executable operation with rollback capability.
//
// Action is defined in the domain layer so that domain services can reference
// it without depending on the application layer.
type Action interface {
	// Execute performs the action. The context carries cancellation and
	// deadline signals that the implementation should respect.
	Execute(ctx context.Context) error

	// Rollback reverses the local effect of an Execute call that failed
	// remotely. The context may differ from the one passed to Execute.
	Rollback(ctx context.Context) error

	// Description returns a human-readable description of the action for
	// logging purposes (e.g., "move task 12 to DONE").
	Description() string
}
