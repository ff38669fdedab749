package eventstore

import (
	"errors"
)

var (
	// ErrConcurrencyConflict is returned by Append when the dynamic event stream changed since it was queried.
	ErrConcurrencyConflict = errors.New("concurrency error, the event stream was modified concurrently")

	// ErrNoEventsToAppend is returned by Append when it is called without any event.
	ErrNoEventsToAppend = errors.New("no events to append")

	// ErrEmptyEventType is returned when a StorableEvent is built without an event type.
	ErrEmptyEventType = errors.New("event type must not be empty")
)

// MaxSequenceNumberUint is a type alias for uint, representing the maximum sequence number for a "dynamic event stream".
type MaxSequenceNumberUint = uint
