// Package memengine provides an in-memory implementation of the event store.
//
// Events live in an append-only slice guarded by a read/write mutex. A Filter is evaluated per event:
// the event type is compared directly and predicates are resolved against the top-level fields
// of the JSON payload.
//
// Append enforces optimistic concurrency for the "dynamic event stream" selected by the Filter.
// If any event matching the Filter was appended after the caller queried the stream,
// Append fails with eventstore.ErrConcurrencyConflict and stores nothing.
//
// The engine keeps all state in the EventStore value it returns, so each session owns an isolated log.
package memengine
