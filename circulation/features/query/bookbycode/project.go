package bookbycode

import (
	"fmt"

	"github.com/AntonStoeckl/circulation-desk-go/circulation/shared/core"
	"github.com/AntonStoeckl/circulation-desk-go/eventstore"
)

// ProjectBook returns the book with its current availability, or core.ErrBookNotFound.
func ProjectBook(history core.DomainEvents, query Query) (core.Book, error) {
	book, found := core.ProjectCirculationState(history).Book(query.BookCode)
	if !found {
		return core.Book{}, fmt.Errorf("%w: %q", core.ErrBookNotFound, query.BookCode)
	}

	return book, nil
}

// BuildEventFilter creates the filter for querying the events of one book.
func BuildEventFilter(bookCode core.BookCodeString) eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(
			core.BookCatalogedEventType,
			core.BookCheckedOutEventType,
			core.BookReturnedEventType,
		).
		AndAnyPredicateOf(eventstore.P(core.BookCodeKey, bookCode)).
		Finalize()
}
