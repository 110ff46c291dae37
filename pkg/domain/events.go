package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventGenerate      EventType = "generate"
	EventGenerateError EventType = "generate_error"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	SessionID string    `json:"session_id,omitempty"`
}

// GenerateEvent describes one generator invocation.
type GenerateEvent struct {
	EventBase
	Algorithm AlgorithmID   `json:"algorithm"`
	Steps     int           `json:"steps"`
	Duration  time.Duration `json:"duration"`
	// Failed is set when the sequence only reports a no-op failure.
	Failed bool  `json:"failed,omitempty"`
	Err    error `json:"-"`
}

// LifecycleHooks defines callbacks for engine observability.
type LifecycleHooks struct {
	OnGenerate func(context.Context, *GenerateEvent)
	OnError    func(context.Context, *GenerateEvent)
}
