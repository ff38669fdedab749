package returnbook

import (
	"fmt"

	"github.com/AntonStoeckl/circulation-desk-go/circulation/shared/core"
	"github.com/AntonStoeckl/circulation-desk-go/eventstore"
)

// Decide implements the business logic to determine whether a patron can return a book.
//
// Business Rules:
//
//	GIVEN: A patron with PatronID and a book with BookCode
//	WHEN: ReturnBook command is received
//	THEN: BookReturned event is generated with LateDays = max(0, today - DueDay) and Fine = LateDays * fine per day
//	ERROR: "loan not found" if the patron holds no active loan of this book
func Decide(history core.DomainEvents, command Command, finePolicy core.FinePolicy) core.DecisionResult {
	s := core.ProjectCirculationState(history)

	loan, active := s.ActiveLoan(command.PatronID, command.BookCode)
	if !active {
		failure := core.BuildReturningBookFailed(command.BookCode, command.PatronID, core.ErrLoanNotFound.Error(), command.OccurredOn)

		return core.ErrorDecision(
			failure,
			fmt.Errorf("%s: %w: patron %q, book %q", failure.EventType(), core.ErrLoanNotFound, command.PatronID, command.BookCode),
		)
	}

	lateDays, fine := finePolicy.Assess(command.OccurredOn, loan.DueDay)

	return core.SuccessDecision(
		core.BuildBookReturned(
			loan.LoanID,
			command.BookCode,
			command.PatronID,
			loan.DueDay,
			lateDays,
			fine,
			command.OccurredOn,
		),
	)
}

// BuildEventFilter creates the filter for querying the loans of exactly this (patron, book) pair.
func BuildEventFilter(bookCode core.BookCodeString, patronID core.PatronIDString) eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(
			core.BookCheckedOutEventType,
			core.BookReturnedEventType,
		).
		AndAllPredicatesOf(
			eventstore.P(core.BookCodeKey, bookCode),
			eventstore.P(core.PatronIDKey, patronID),
		).
		Finalize()
}
