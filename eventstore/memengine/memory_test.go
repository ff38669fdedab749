package memengine_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/circulation-desk-go/eventstore"
	"github.com/AntonStoeckl/circulation-desk-go/eventstore/memengine"
	"github.com/AntonStoeckl/circulation-desk-go/testutil/observability/testdoubles"
)

func Test_EventStore_Query_ReturnsMatchingEventsInAppendOrder(t *testing.T) {
	// arrange
	ctx := context.Background()
	es := givenEventStore(t,
		givenEvent(t, "BookCataloged", `{"BookCode":"B1"}`),
		givenEvent(t, "BookCataloged", `{"BookCode":"B2"}`),
		givenEvent(t, "BookCheckedOut", `{"BookCode":"B1","PatronID":"P1"}`),
	)
	filter := eventstore.BuildEventFilter().
		Matching().
		AnyPredicateOf(eventstore.P("BookCode", "B1")).
		Finalize()

	// act
	stream, maxSequenceNumber, err := es.Query(ctx, filter)

	// assert
	require.NoError(t, err)
	require.Len(t, stream, 2)
	assert.Equal(t, "BookCataloged", stream[0].EventType)
	assert.Equal(t, "BookCheckedOut", stream[1].EventType)
	assert.Equal(t, eventstore.MaxSequenceNumberUint(1), stream[0].SequenceNumber)
	assert.Equal(t, eventstore.MaxSequenceNumberUint(3), maxSequenceNumber)
}

func Test_EventStore_Query_ReturnsZeroMaxSequenceNumber_ForEmptyStream(t *testing.T) {
	// arrange
	ctx := context.Background()
	es := givenEventStore(t, givenEvent(t, "BookCataloged", `{"BookCode":"B1"}`))
	filter := eventstore.BuildEventFilter().Matching().AnyEventTypeOf("PatronRegistered").Finalize()

	// act
	stream, maxSequenceNumber, err := es.Query(ctx, filter)

	// assert
	require.NoError(t, err)
	assert.Empty(t, stream)
	assert.Zero(t, maxSequenceNumber)
}

func Test_EventStore_Query_IgnoresNonStringPayloadFields(t *testing.T) {
	// arrange
	ctx := context.Background()
	es := givenEventStore(t, givenEvent(t, "BookCataloged", `{"BookCode":"B1","Year":1937}`))
	filter := eventstore.BuildEventFilter().Matching().AnyPredicateOf(eventstore.P("Year", "1937")).Finalize()

	// act
	stream, _, err := es.Query(ctx, filter)

	// assert
	require.NoError(t, err)
	assert.Empty(t, stream)
}

func Test_EventStore_Query_FailsForCanceledContext(t *testing.T) {
	// arrange
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	es := givenEventStore(t)

	// act
	_, _, err := es.Query(ctx, eventstore.BuildEventFilter().MatchingAnyEvent())

	// assert
	assert.ErrorIs(t, err, context.Canceled)
}

func Test_EventStore_Append_StoresEvents_WhenStreamIsUnchanged(t *testing.T) {
	// arrange
	ctx := context.Background()
	es := givenEventStore(t, givenEvent(t, "BookCataloged", `{"BookCode":"B1"}`))
	filter := bookFilter("B1")
	_, maxSequenceNumber, err := es.Query(ctx, filter)
	require.NoError(t, err)

	// act
	err = es.Append(ctx, filter, maxSequenceNumber, givenEvent(t, "BookCheckedOut", `{"BookCode":"B1"}`))

	// assert
	require.NoError(t, err)
	stream, newMaxSequenceNumber, err := es.Query(ctx, filter)
	require.NoError(t, err)
	assert.Len(t, stream, 2)
	assert.Equal(t, eventstore.MaxSequenceNumberUint(2), newMaxSequenceNumber)
}

func Test_EventStore_Append_FailsWithConcurrencyConflict_WhenStreamChanged(t *testing.T) {
	// arrange
	ctx := context.Background()
	es := givenEventStore(t, givenEvent(t, "BookCataloged", `{"BookCode":"B1"}`))
	filter := bookFilter("B1")
	_, maxSequenceNumber, err := es.Query(ctx, filter)
	require.NoError(t, err)
	require.NoError(t, es.Append(ctx, filter, maxSequenceNumber, givenEvent(t, "BookCheckedOut", `{"BookCode":"B1"}`)))

	// act
	err = es.Append(ctx, filter, maxSequenceNumber, givenEvent(t, "BookCheckedOut", `{"BookCode":"B1"}`))

	// assert
	assert.ErrorIs(t, err, eventstore.ErrConcurrencyConflict)
	stream, _, queryErr := es.Query(ctx, filter)
	require.NoError(t, queryErr)
	assert.Len(t, stream, 2, "nothing must be stored on conflict")
}

func Test_EventStore_Append_IgnoresChangesOutsideOfTheStream(t *testing.T) {
	// arrange
	ctx := context.Background()
	es := givenEventStore(t, givenEvent(t, "BookCataloged", `{"BookCode":"B1"}`))
	filter := bookFilter("B1")
	_, maxSequenceNumber, err := es.Query(ctx, filter)
	require.NoError(t, err)
	require.NoError(t, es.Append(ctx, bookFilter("B2"), 0, givenEvent(t, "BookCataloged", `{"BookCode":"B2"}`)))

	// act
	err = es.Append(ctx, filter, maxSequenceNumber, givenEvent(t, "BookCheckedOut", `{"BookCode":"B1"}`))

	// assert
	assert.NoError(t, err)
}

func Test_EventStore_Append_FailsWithoutEvents(t *testing.T) {
	es := givenEventStore(t)

	err := es.Append(context.Background(), bookFilter("B1"), 0)

	assert.ErrorIs(t, err, eventstore.ErrNoEventsToAppend)
}

func Test_EventStore_Append_AllowsOnlyOneWriter_ForConcurrentAppendsOnTheSameStream(t *testing.T) {
	// arrange
	ctx := context.Background()
	es := givenEventStore(t, givenEvent(t, "BookCataloged", `{"BookCode":"B1"}`))
	filter := bookFilter("B1")
	_, maxSequenceNumber, err := es.Query(ctx, filter)
	require.NoError(t, err)

	const writers = 20
	errs := make(chan error, writers)
	wg := sync.WaitGroup{}

	// act
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs <- es.Append(ctx, filter, maxSequenceNumber, givenEvent(t, "BookCheckedOut", fmt.Sprintf(`{"BookCode":"B1","PatronID":"P%d"}`, i)))
		}(i)
	}
	wg.Wait()
	close(errs)

	// assert
	succeeded := 0
	for err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.ErrorIs(t, err, eventstore.ErrConcurrencyConflict)
	}
	assert.Equal(t, 1, succeeded)
}

func Test_EventStore_ReportsToObservabilityCollectors(t *testing.T) {
	// arrange
	ctx := context.Background()
	logger := testdoubles.NewContextualLoggerSpy()
	metrics := testdoubles.NewMetricsCollectorSpy()
	tracing := testdoubles.NewTracingCollectorSpy()
	es, err := memengine.NewEventStore(
		memengine.WithContextualLogger(logger),
		memengine.WithMetrics(metrics),
		memengine.WithTracing(tracing),
	)
	require.NoError(t, err)
	filter := bookFilter("B1")

	// act
	require.NoError(t, es.Append(ctx, filter, 0, givenEvent(t, "BookCataloged", `{"BookCode":"B1"}`)))
	_, _, err = es.Query(ctx, filter)
	require.NoError(t, err)
	conflictErr := es.Append(ctx, filter, 0, givenEvent(t, "BookCataloged", `{"BookCode":"B1"}`))

	// assert
	assert.ErrorIs(t, conflictErr, eventstore.ErrConcurrencyConflict)
	assert.True(t, logger.HasLog("debug", "events appended"))
	assert.True(t, logger.HasLog("debug", "query completed"))
	assert.True(t, logger.HasLog("info", "concurrency conflict detected"))
	assert.True(t, metrics.HasDurationRecord("eventstore_query_duration_seconds", map[string]string{"status": "success"}))
	assert.True(t, metrics.HasDurationRecord("eventstore_append_duration_seconds", map[string]string{"status": "error"}))
	assert.True(t, metrics.HasCounterRecord("eventstore_concurrency_conflicts_total", map[string]string{"operation": "append"}))
	assert.Equal(t, float64(1), metrics.SumOfValues("eventstore_events_appended_total"))
	assert.True(t, tracing.HasFinishedSpan("eventstore.append", eventstore.SpanStatusOK))
	assert.True(t, tracing.HasFinishedSpan("eventstore.append", eventstore.SpanStatusError))
	assert.True(t, tracing.HasFinishedSpan("eventstore.query", eventstore.SpanStatusOK))
}

func Test_NewEventStore_WithEvents_AssignsSequenceNumbers(t *testing.T) {
	es := givenEventStore(t,
		givenEvent(t, "BookCataloged", `{"BookCode":"B1"}`),
		givenEvent(t, "BookCataloged", `{"BookCode":"B2"}`),
	)

	stream, maxSequenceNumber, err := es.Query(context.Background(), eventstore.BuildEventFilter().MatchingAnyEvent())

	require.NoError(t, err)
	require.Len(t, stream, 2)
	assert.Equal(t, eventstore.MaxSequenceNumberUint(2), stream[1].SequenceNumber)
	assert.Equal(t, eventstore.MaxSequenceNumberUint(2), maxSequenceNumber)
}

func givenEventStore(t *testing.T, events ...eventstore.StorableEvent) *memengine.EventStore {
	t.Helper()

	es, err := memengine.NewEventStore(memengine.WithEvents(events...))
	require.NoError(t, err)

	return es
}

func givenEvent(t *testing.T, eventType string, payload string) eventstore.StorableEvent {
	t.Helper()

	event, err := eventstore.BuildStorableEventWithEmptyMetadata(eventType, []byte(payload))
	require.NoError(t, err)

	return event
}

func bookFilter(bookCode string) eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyPredicateOf(eventstore.P("BookCode", bookCode)).
		Finalize()
}
