package checkoutbook

import (
	"fmt"

	"github.com/AntonStoeckl/circulation-desk-go/circulation/shared/core"
	"github.com/AntonStoeckl/circulation-desk-go/eventstore"
)

// Decide implements the business logic to determine whether a patron can check out a book.
//
// Business Rules (checked in this order):
//
//	GIVEN: A patron with PatronID and a book with BookCode
//	WHEN: CheckOutBook command is received
//	THEN: BookCheckedOut event is generated with DueDay = today + loan term of the patron's category
//	ERROR: "patron not found" if the patron is not registered
//	ERROR: "book not found" if the book is not cataloged
//	ERROR: "no copies available" if all copies are lent
//	ERROR: "duplicate active loan" if the patron already holds an active loan of this book
func Decide(history core.DomainEvents, command Command) core.DecisionResult {
	s := core.ProjectCirculationState(history)

	patron, found := s.Patron(command.PatronID)
	if !found {
		return reject(command, core.ErrPatronNotFound)
	}

	book, found := s.Book(command.BookCode)
	if !found {
		return reject(command, core.ErrBookNotFound)
	}

	if !book.Available() {
		return reject(command, core.ErrNoCopiesAvailable)
	}

	if _, active := s.ActiveLoan(command.PatronID, command.BookCode); active {
		return reject(command, core.ErrDuplicateActiveLoan)
	}

	return core.SuccessDecision(
		core.BuildBookCheckedOut(
			command.LoanID,
			command.BookCode,
			command.PatronID,
			command.OccurredOn+patron.Category.LoanTermDays(),
			command.OccurredOn,
		),
	)
}

func reject(command Command, reason error) core.DecisionResult {
	failure := core.BuildCheckingOutBookFailed(command.BookCode, command.PatronID, reason.Error(), command.OccurredOn)

	return core.ErrorDecision(
		failure,
		fmt.Errorf("%s: %w: patron %q, book %q", failure.EventType(), reason, command.PatronID, command.BookCode),
	)
}

// BuildEventFilter creates the filter for querying all events related to the book or the patron
// which are relevant for this use case.
func BuildEventFilter(bookCode core.BookCodeString, patronID core.PatronIDString) eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(
			core.BookCatalogedEventType,
			core.PatronRegisteredEventType,
			core.BookCheckedOutEventType,
			core.BookReturnedEventType,
		).
		AndAnyPredicateOf(
			eventstore.P(core.BookCodeKey, bookCode),
			eventstore.P(core.PatronIDKey, patronID),
		).
		Finalize()
}
