// Package memory provides an in-memory event publisher for tests and
// single-process deployments without a broker.
package memory

import (
	"context"
	"sync"

	"tessera/pkg/events"
)

// Publisher records emitted events in memory.
type Publisher struct {
	mu     sync.RWMutex
	events []events.Event
	closed bool
}

// New creates an in-memory publisher.
func New() *Publisher {
	return &Publisher{}
}

// Emit appends the event to the in-memory log.
func (p *Publisher) Emit(_ context.Context, event events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return events.ErrPublisherClosed
	}
	p.events = append(p.events, event)
	return nil
}

// Events returns a copy of all emitted events, oldest first.
func (p *Publisher) Events() []events.Event {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := make([]events.Event, len(p.events))
	copy(out, p.events)
	return out
}

// ByName returns emitted events matching the given name, oldest first.
func (p *Publisher) ByName(name events.Name) []events.Event {
	p.mu.RLock()
	defer p.mu.RUnlock()
	var out []events.Event
	for _, e := range p.events {
		if e.Name == name {
			out = append(out, e)
		}
	}
	return out
}

// Close marks the publisher closed; further Emit calls fail.
func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = true
	return nil
}
