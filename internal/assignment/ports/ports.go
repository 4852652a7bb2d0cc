// Package ports defines the collaborator interfaces for AMC assignment.
package ports

//go:generate mockgen -source=ports.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"tessera/pkg/events"
)

// RandomnessSource returns one hex-encoded random value per request. The
// value's verifiability (e.g. a VRF proof) is the caller's trust model;
// the selector only consumes the value.
type RandomnessSource interface {
	RequestRandomHex(ctx context.Context) (string, error)
}

// EventPublisher emits assignment lifecycle events.
type EventPublisher interface {
	Emit(ctx context.Context, event events.Event) error
}
