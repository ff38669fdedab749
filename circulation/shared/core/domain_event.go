package core

// DomainEvents is a slice of DomainEvent instances.
type DomainEvents = []DomainEvent

// DomainEvent represents something that happened at the circulation desk.
type DomainEvent interface {
	// EventType returns the string identifier for this event type.
	EventType() string

	// HasOccurredOn returns the simulated day this event occurred on.
	HasOccurredOn() Day

	// IsErrorEvent returns true if this event records a rejected request.
	IsErrorEvent() bool
}
