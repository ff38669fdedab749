// Package helper provides the test givens shared by the feature and desk tests.
package helper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/circulation-desk-go/circulation/shared/core"
	"github.com/AntonStoeckl/circulation-desk-go/circulation/shared/shell"
	"github.com/AntonStoeckl/circulation-desk-go/eventstore"
	"github.com/AntonStoeckl/circulation-desk-go/eventstore/memengine"
)

// GivenUniqueID returns prefix followed by a time-ordered uuid, e.g. "B-0190...".
func GivenUniqueID(t testing.TB, prefix string) string {
	id, err := uuid.NewV7()
	require.NoError(t, err, "error in arranging test data")

	return prefix + "-" + id.String()
}

// FastRetry makes retries cheap in tests.
func FastRetry() []shell.RetryOption {
	return []shell.RetryOption{shell.WithBaseDelay(time.Microsecond), shell.WithJitterFactor(0)}
}

func FixtureBookCataloged(bookCode string, totalCopies int, day core.Day) core.DomainEvent {
	return core.BuildBookCataloged(bookCode, "The Hobbit", "J.R.R. Tolkien", 1937, "Fantasy", totalCopies, day)
}

func FixturePatronRegistered(patronID string, category core.Category, day core.Day) core.DomainEvent {
	return core.BuildPatronRegistered(patronID, "Bilbo Baggins", category, day)
}

func FixtureBookCheckedOut(loanID, bookCode, patronID string, dueDay core.Day, day core.Day) core.DomainEvent {
	return core.BuildBookCheckedOut(loanID, bookCode, patronID, dueDay, day)
}

func FixtureBookReturned(loanID, bookCode, patronID string, dueDay core.Day, day core.Day) core.DomainEvent {
	lateDays, fine := core.DefaultFinePolicy().Assess(day, dueDay)

	return core.BuildBookReturned(loanID, bookCode, patronID, dueDay, lateDays, fine, day)
}

func ToStorable(t testing.TB, domainEvent core.DomainEvent) eventstore.StorableEvent {
	storableEvent, err := shell.StorableEventFrom(domainEvent, shell.BuildEventMetadataForNewMessage())
	require.NoError(t, err, "error in arranging test data")

	return storableEvent
}

// GivenEventStoreWith creates an in-memory event store containing the given history.
func GivenEventStoreWith(t testing.TB, history ...core.DomainEvent) *memengine.EventStore {
	storableEvents := make([]eventstore.StorableEvent, 0, len(history))
	for _, event := range history {
		storableEvents = append(storableEvents, ToStorable(t, event))
	}

	es, err := memengine.NewEventStore(memengine.WithEvents(storableEvents...))
	require.NoError(t, err, "error in arranging test data")

	return es
}

// GivenSomeOtherEventsWereAppended appends numEvents unrelated catalog and directory events.
func GivenSomeOtherEventsWereAppended(t testing.TB, ctx context.Context, es shell.EventStore, numEvents int, day core.Day) {
	for i := 0; i < numEvents; i++ {
		var event core.DomainEvent
		if i%2 == 0 {
			event = FixtureBookCataloged(GivenUniqueID(t, "B"), 1, day)
		} else {
			event = FixturePatronRegistered(GivenUniqueID(t, "P"), core.CategoryTeacher, day)
		}

		_, maxSequenceNumber, err := es.Query(ctx, eventstore.BuildEventFilter().MatchingAnyEvent())
		require.NoError(t, err, "error in arranging test data")
		require.NoError(
			t,
			es.Append(ctx, eventstore.BuildEventFilter().MatchingAnyEvent(), maxSequenceNumber, ToStorable(t, event)),
			"error in arranging test data",
		)
	}
}

// QueryAllDomainEvents returns the complete history in append order.
func QueryAllDomainEvents(t testing.TB, ctx context.Context, es shell.QueriesEvents) core.DomainEvents {
	storableEvents, _, err := es.Query(ctx, eventstore.BuildEventFilter().MatchingAnyEvent())
	require.NoError(t, err)

	history, err := shell.DomainEventsFrom(storableEvents)
	require.NoError(t, err)

	return history
}

// LastEvent returns the most recently appended event.
func LastEvent(t testing.TB, ctx context.Context, es shell.QueriesEvents) core.DomainEvent {
	history := QueryAllDomainEvents(t, ctx, es)
	require.NotEmpty(t, history)

	return history[len(history)-1]
}
