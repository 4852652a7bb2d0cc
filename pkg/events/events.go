// Package events defines the lifecycle event model and the Publisher port.
//
// Domain services emit events through a Publisher; delivery mechanics (Kafka,
// in-memory fan-out) live behind the interface so services stay transport
// agnostic. Consumers of these events are outside this system's scope.
package events

import (
	"context"
	"errors"
	"time"
)

// Name identifies a lifecycle event type.
type Name string

const (
	// Verification lifecycle.
	EventVerificationCompleted      Name = "verification.completed"
	EventVerificationRequiresReview Name = "verification.requires_review"

	// Risk lifecycle.
	EventRiskAssessed Name = "risk.assessed"

	// Assignment lifecycle.
	EventAMCAssigned Name = "amc.assigned"
)

// Event is emitted from domain logic to capture key lifecycle transitions.
// Keep it transport-agnostic so publishers can fan out.
type Event struct {
	Name      Name
	AssetID   string
	Timestamp time.Time
	// RequestID correlates the event with the HTTP request that caused it.
	RequestID string
	// Payload carries event-specific fields. Values must be JSON-encodable.
	Payload map[string]any
}

// Publisher emits lifecycle events. Implementations must be safe for
// concurrent use.
type Publisher interface {
	Emit(ctx context.Context, event Event) error
	Close() error
}

// ErrPublisherClosed is returned by Emit after Close.
var ErrPublisherClosed = errors.New("event publisher closed")
