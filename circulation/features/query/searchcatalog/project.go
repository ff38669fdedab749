package searchcatalog

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/AntonStoeckl/circulation-desk-go/circulation/shared/core"
	"github.com/AntonStoeckl/circulation-desk-go/eventstore"
)

// ProjectSearchResult is a pure function that filters the projected catalog by the criterion.
//
// Query Logic:
//
//	GIVEN: A criterion
//	WHEN: SearchCatalog query is executed
//	THEN: Books are returned in catalog order
//	INCLUDES: code equals the criterion, title or author contains the criterion (case-insensitive)
func ProjectSearchResult(history core.DomainEvents, query Query) SearchResult {
	fold := cases.Fold()
	criterion := fold.String(query.Criterion)

	books := make([]core.Book, 0)
	for _, book := range core.ProjectCirculationState(history).Books() {
		if fold.String(book.Code) == criterion ||
			strings.Contains(fold.String(book.Title), criterion) ||
			strings.Contains(fold.String(book.Author), criterion) {

			books = append(books, book)
		}
	}

	return SearchResult{
		Criterion: query.Criterion,
		Books:     books,
		Count:     len(books),
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
