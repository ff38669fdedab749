// Package eventstore provides the core abstractions for event sourcing with dynamic event streams,
// used by the circulation desk to keep all of its state as one ordered log of events.
//
// A "dynamic event stream" is not a fixed stream per aggregate. It is whatever subset of the log
// a Filter selects, e.g. all events for one book code OR one patron id. Appending is guarded by
// optimistic concurrency on exactly that subset: an Append only succeeds if no event matching the
// same filter was appended since the caller's Query.
//
// Key types:
//   - Filter: criteria for querying events (event types and payload predicates)
//   - StorableEvent: an event as it is stored and retrieved (scalars and JSON only)
//   - MaxSequenceNumberUint: the highest sequence number of a dynamic event stream
//
// Common usage pattern:
//
//	filter := eventstore.BuildEventFilter().
//		Matching().
//		AnyEventTypeOf(
//			core.BookCheckedOutEventType,
//			core.BookReturnedEventType).
//		AndAnyPredicateOf(eventstore.P("BookCode", bookCode)).
//		Finalize()
//
//	events, maxSeq, err := store.Query(ctx, filter)
//	if err != nil {
//		// handle error
//	}
//
//	newEvent, err := eventstore.BuildStorableEvent(eventType, payloadJSON, metadataJSON)
//	err = store.Append(ctx, filter, maxSeq, newEvent)
package eventstore
