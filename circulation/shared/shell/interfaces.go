package shell

import (
	"context"

	"github.com/AntonStoeckl/circulation-desk-go/eventstore"
)

// QueriesEvents is the part of the event store needed by query handlers.
type QueriesEvents interface {
	Query(ctx context.Context, filter eventstore.Filter) (
		eventstore.StorableEvents,
		eventstore.MaxSequenceNumberUint,
		error,
	)
}

// AppendsEvents is the part of the event store needed to record new events.
type AppendsEvents interface {
	Append(
		ctx context.Context,
		filter eventstore.Filter,
		expectedMaxSequenceNumber eventstore.MaxSequenceNumberUint,
		storableEvents ...eventstore.StorableEvent,
	) error
}

// EventStore is what command handlers need: query a "dynamic event stream" and append to it.
type EventStore interface {
	QueriesEvents
	AppendsEvents
}

// Command represents the contract for all command types.
// CommandType must not depend on the field values, it is called on the zero value for instrumentation.
type Command interface {
	CommandType() string
}

// CommandHandler processes commands: query, unmarshal, decide, append.
// Business rule violations are returned as errors together with a result that carries the failure event.
type CommandHandler[C Command] interface {
	Handle(ctx context.Context, command C) (HandlerResult, error)
}

// Query represents the contract for all query types.
// QueryType must not depend on the field values, it is called on the zero value for instrumentation.
type Query interface {
	QueryType() string
}

// QueryHandler processes queries: query, unmarshal, project.
type QueryHandler[Q Query, R any] interface {
	Handle(ctx context.Context, query Q) (R, error)
}
