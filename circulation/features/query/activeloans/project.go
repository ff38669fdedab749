package activeloans

import (
	"github.com/AntonStoeckl/circulation-desk-go/circulation/shared/core"
	"github.com/AntonStoeckl/circulation-desk-go/eventstore"
)

// ProjectActiveLoans is a pure function that projects the active loans from the history.
//
// Query Logic:
//
//	GIVEN: Today
//	WHEN: ActiveLoans query is executed
//	THEN: All active loans are returned in checkout order
//	INCLUDES: book title, patron name, DaysRemaining = DueDay - Today
//	EXCLUDES: returned loans
func ProjectActiveLoans(history core.DomainEvents, query Query) (ActiveLoans, error) {
	state := core.ProjectCirculationState(history)
	loans := make([]LoanInfo, 0)

	for _, loan := range state.LoansWithStatus(core.LoanStatusActive) {
		book, patron, err := state.ResolveLoan(loan)
		if err != nil {
			return ActiveLoans{}, err
		}

		loans = append(loans, LoanInfo{
			LoanID:        loan.LoanID,
			BookCode:      loan.BookCode,
			Title:         book.Title,
			PatronID:      loan.PatronID,
			PatronName:    patron.Name,
			StartDay:      loan.StartDay,
			DueDay:        loan.DueDay,
			DaysRemaining: loan.DueDay - query.Today,
		})
	}

	return ActiveLoans{
		Today: query.Today,
		Loans: loans,
		Count: len(loans),
	}, nil
}

// BuildEventFilter creates the filter for querying the loans and everything they refer to.
func BuildEventFilter() eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(
			core.BookCatalogedEventType,
			core.PatronRegisteredEventType,
			core.BookCheckedOutEventType,
			core.BookReturnedEventType,
		).
		Finalize()
}
