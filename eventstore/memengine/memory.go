package memengine

import (
	"bytes"
	"context"
	"sync"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/AntonStoeckl/circulation-desk-go/eventstore"
)

const (
	logMsgQueryCompleted      = "query completed"
	logMsgEventsAppended      = "events appended"
	logMsgConcurrencyConflict = "concurrency conflict detected"
	logMsgQueryCanceled       = "query canceled"
	logMsgAppendCanceled      = "append canceled"
	logAttrError              = "error"
	logAttrFilter             = "filter"
	logAttrEventType          = "event_type"
	logAttrEventCount         = "event_count"
	logAttrDurationMS         = "duration_ms"
	logAttrExpectedSequence   = "expected_sequence"
	logAttrActualSequence     = "actual_sequence"
	logAttrMaxSequence        = "max_sequence"

	metricQueryDuration        = "eventstore_query_duration_seconds"
	metricAppendDuration       = "eventstore_append_duration_seconds"
	metricEventsQueried        = "eventstore_events_queried_total"
	metricEventsAppended       = "eventstore_events_appended_total"
	metricConcurrencyConflicts = "eventstore_concurrency_conflicts_total"
	metricCanceledOperations   = "eventstore_canceled_operations_total"

	spanNameQuery  = "eventstore.query"
	spanNameAppend = "eventstore.append"

	labelOperation    = "operation"
	labelStatus       = "status"
	labelConflictType = "conflict_type"
	operationQuery    = "query"
	operationAppend   = "append"
	statusSuccess     = "success"
	statusError       = "error"
)

// EventStore is an in-memory event store for "dynamic event streams".
// The zero value is not usable, create it with NewEventStore.
type EventStore struct {
	mu               *sync.RWMutex
	events           eventstore.StorableEvents
	logger           eventstore.Logger
	contextualLogger eventstore.ContextualLogger
	metricsCollector eventstore.MetricsCollector
	tracingCollector eventstore.TracingCollector
}

// NewEventStore creates an empty EventStore with optional configuration.
func NewEventStore(options ...Option) (*EventStore, error) {
	es := &EventStore{
		mu:     &sync.RWMutex{},
		events: make(eventstore.StorableEvents, 0, 64),
	}

	for _, option := range options {
		if err := option(es); err != nil {
			return nil, err
		}
	}

	return es, nil
}

// Query returns all events matching the filter in the order they were appended,
// and the MaxSequenceNumberUint of this "dynamic event stream" at the time of the query.
// The max sequence number is 0 if no event matches.
func (es *EventStore) Query(ctx context.Context, filter eventstore.Filter) (
	eventstore.StorableEvents,
	eventstore.MaxSequenceNumberUint,
	error,
) {

	ctx, span := es.startSpan(ctx, spanNameQuery, map[string]string{labelOperation: operationQuery})
	start := time.Now()

	if err := ctx.Err(); err != nil {
		es.logCanceled(ctx, logMsgQueryCanceled, operationQuery, err)
		es.finishSpan(span, eventstore.SpanStatusError, map[string]string{logAttrError: err.Error()})

		return nil, 0, err
	}

	es.mu.RLock()
	stream, maxSequenceNumber := es.matching(filter)
	es.mu.RUnlock()

	duration := time.Since(start)

	es.logDebug(
		ctx,
		logMsgQueryCompleted,
		logAttrFilter, filter.String(),
		logAttrEventCount, len(stream),
		logAttrMaxSequence, maxSequenceNumber,
		logAttrDurationMS, toMilliseconds(duration),
	)
	es.recordDuration(ctx, metricQueryDuration, duration, operationQuery, statusSuccess)
	es.recordValue(ctx, metricEventsQueried, float64(len(stream)), operationQuery, statusSuccess)
	es.finishSpan(span, eventstore.SpanStatusOK, map[string]string{logAttrEventCount: itoa(len(stream))})

	return stream, maxSequenceNumber, nil
}

// Append atomically stores the given events if the "dynamic event stream" selected by the filter
// still has the expectedMaxSequenceNumber. Otherwise, it returns eventstore.ErrConcurrencyConflict
// and stores nothing.
func (es *EventStore) Append(
	ctx context.Context,
	filter eventstore.Filter,
	expectedMaxSequenceNumber eventstore.MaxSequenceNumberUint,
	storableEvents ...eventstore.StorableEvent,
) error {

	if len(storableEvents) == 0 {
		return eventstore.ErrNoEventsToAppend
	}

	ctx, span := es.startSpan(
		ctx,
		spanNameAppend,
		map[string]string{
			labelOperation:          operationAppend,
			logAttrEventType:        storableEvents[0].EventType,
			logAttrEventCount:       itoa(len(storableEvents)),
			logAttrExpectedSequence: itoa(int(expectedMaxSequenceNumber)),
		},
	)
	start := time.Now()

	if err := ctx.Err(); err != nil {
		es.logCanceled(ctx, logMsgAppendCanceled, operationAppend, err)
		es.finishSpan(span, eventstore.SpanStatusError, map[string]string{logAttrError: err.Error()})

		return err
	}

	for _, event := range storableEvents {
		if event.EventType == "" {
			es.finishSpan(span, eventstore.SpanStatusError, map[string]string{logAttrError: eventstore.ErrEmptyEventType.Error()})
			return eventstore.ErrEmptyEventType
		}
	}

	es.mu.Lock()

	_, actualMaxSequenceNumber := es.matching(filter)
	if actualMaxSequenceNumber != expectedMaxSequenceNumber {
		es.mu.Unlock()

		es.logInfo(
			ctx,
			logMsgConcurrencyConflict,
			logAttrFilter, filter.String(),
			logAttrExpectedSequence, expectedMaxSequenceNumber,
			logAttrActualSequence, actualMaxSequenceNumber,
		)
		es.incrementCounter(
			ctx,
			metricConcurrencyConflicts,
			map[string]string{labelOperation: operationAppend, labelConflictType: "concurrency"},
		)
		es.recordDuration(ctx, metricAppendDuration, time.Since(start), operationAppend, statusError)
		es.finishSpan(span, eventstore.SpanStatusError, map[string]string{logAttrError: eventstore.ErrConcurrencyConflict.Error()})

		return eventstore.ErrConcurrencyConflict
	}

	for _, event := range storableEvents {
		es.store(event)
	}

	es.mu.Unlock()

	duration := time.Since(start)

	es.logDebug(
		ctx,
		logMsgEventsAppended,
		logAttrEventType, storableEvents[0].EventType,
		logAttrEventCount, len(storableEvents),
		logAttrDurationMS, toMilliseconds(duration),
	)
	es.recordDuration(ctx, metricAppendDuration, duration, operationAppend, statusSuccess)
	es.recordValue(ctx, metricEventsAppended, float64(len(storableEvents)), operationAppend, statusSuccess)
	es.finishSpan(span, eventstore.SpanStatusOK, nil)

	return nil
}

// store must be called with the write lock held (or before the EventStore is shared).
func (es *EventStore) store(event eventstore.StorableEvent) {
	es.events = append(es.events, eventstore.StorableEvent{
		EventType:      event.EventType,
		PayloadJSON:    bytes.Clone(event.PayloadJSON),
		MetadataJSON:   bytes.Clone(event.MetadataJSON),
		SequenceNumber: eventstore.MaxSequenceNumberUint(len(es.events) + 1),
	})
}

// matching must be called with at least the read lock held.
func (es *EventStore) matching(filter eventstore.Filter) (eventstore.StorableEvents, eventstore.MaxSequenceNumberUint) {
	stream := make(eventstore.StorableEvents, 0)
	var maxSequenceNumber eventstore.MaxSequenceNumberUint

	for _, event := range es.events {
		if !filter.Matches(event.EventType, payloadLookup(event.PayloadJSON)) {
			continue
		}

		stream = append(stream, event)
		maxSequenceNumber = event.SequenceNumber
	}

	return stream, maxSequenceNumber
}

// payloadLookup resolves top-level payload fields lazily, only string values can match a predicate.
func payloadLookup(payloadJSON []byte) eventstore.PayloadLookup {
	return func(key eventstore.FilterKeyString) (eventstore.FilterValString, bool) {
		field := jsoniter.ConfigFastest.Get(payloadJSON, key)
		if field.ValueType() != jsoniter.StringValue {
			return "", false
		}

		return field.ToString(), true
	}
}
