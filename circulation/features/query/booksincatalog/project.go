package booksincatalog

import (
	"github.com/AntonStoeckl/circulation-desk-go/circulation/shared/core"
	"github.com/AntonStoeckl/circulation-desk-go/eventstore"
)

// ProjectBooksInCatalog is a pure function that projects the catalog from the history.
//
// Query Logic:
//
//	GIVEN: Any history
//	WHEN: BooksInCatalog query is executed
//	THEN: All cataloged books are returned in catalog order
//	INCLUDES: AvailableCopies = TotalCopies - active loans of the book
func ProjectBooksInCatalog(history core.DomainEvents, maxSequenceNumber eventstore.MaxSequenceNumberUint) BooksInCatalog {
	books := core.ProjectCirculationState(history).Books()

	return BooksInCatalog{
		Books:          books,
		Count:          len(books),
		SequenceNumber: maxSequenceNumber,
	}
}

// BuildEventFilter creates the filter for querying all events that change the catalog or availability.
func BuildEventFilter() eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(
			core.BookCatalogedEventType,
			core.BookCheckedOutEventType,
			core.BookReturnedEventType,
		).
		Finalize()
}
