package catalogbook

import (
	"fmt"

	"github.com/AntonStoeckl/circulation-desk-go/circulation/shared/core"
	"github.com/AntonStoeckl/circulation-desk-go/eventstore"
)

// Decide implements the business logic to determine whether a book can be cataloged.
//
// Business Rules:
//
//	GIVEN: A book with BookCode
//	WHEN: CatalogBook command is received
//	THEN: BookCataloged event is generated, all copies are available
//	ERROR: "duplicate key" if a book with this code was cataloged before
func Decide(history core.DomainEvents, command Command) core.DecisionResult {
	for _, event := range history {
		if e, ok := event.(core.BookCataloged); ok && e.BookCode == command.BookCode {
			failure := core.BuildCatalogingBookFailed(command.BookCode, core.ErrDuplicateKey.Error(), command.OccurredOn)
			return core.ErrorDecision(failure, fmt.Errorf("%s: %w: book code %q", failure.EventType(), core.ErrDuplicateKey, command.BookCode))
		}
	}

	return core.SuccessDecision(
		core.BuildBookCataloged(
			command.BookCode,
			command.Title,
			command.Author,
			command.Year,
			command.Genre,
			command.TotalCopies,
			command.OccurredOn,
		),
	)
}

// BuildEventFilter creates the filter for querying all events relevant for cataloging the book.
func BuildEventFilter(bookCode core.BookCodeString) eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(core.BookCatalogedEventType).
		AndAnyPredicateOf(eventstore.P(core.BookCodeKey, bookCode)).
		Finalize()
}
