package patronloans

import (
	"fmt"

	"github.com/AntonStoeckl/circulation-desk-go/circulation/shared/core"
	"github.com/AntonStoeckl/circulation-desk-go/eventstore"
)

// ProjectPatronLoans is a pure function that projects the active loans of one patron.
//
// Query Logic:
//
//	GIVEN: A patron with PatronID
//	WHEN: PatronLoans query is executed
//	THEN: The patron's active loans are returned in checkout order
//	INCLUDES: book title, DaysRemaining = DueDay - Today
//	EXCLUDES: returned loans
//	ERRORS: core.ErrPatronNotFound, core.ErrDataIntegrity for loans of unknown books
func ProjectPatronLoans(history core.DomainEvents, query Query) (PatronLoans, error) {
	state := core.ProjectCirculationState(history)

	patron, found := state.Patron(query.PatronID)
	if !found {
		return PatronLoans{}, fmt.Errorf("%w: %q", core.ErrPatronNotFound, query.PatronID)
	}

	loans := make([]LoanInfo, 0)

	for _, loan := range state.LoansWithStatus(core.LoanStatusActive) {
		if loan.PatronID != query.PatronID {
			continue
		}

		book, _, err := state.ResolveLoan(loan)
		if err != nil {
			return PatronLoans{}, err
		}

		loans = append(loans, LoanInfo{
			LoanID:        loan.LoanID,
			BookCode:      loan.BookCode,
			Title:         book.Title,
			StartDay:      loan.StartDay,
			DueDay:        loan.DueDay,
			DaysRemaining: loan.DueDay - query.Today,
		})
	}

	return PatronLoans{
		Patron: patron,
		Loans:  loans,
		Count:  len(loans),
	}, nil
}

// BuildEventFilter creates the filter for querying the patron's registration and loans,
// plus the catalog to resolve the book titles.
func BuildEventFilter(patronID core.PatronIDString) eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(
			core.PatronRegisteredEventType,
			core.BookCheckedOutEventType,
			core.BookReturnedEventType,
		).
		AndAnyPredicateOf(eventstore.P(core.PatronIDKey, patronID)).
		OrMatching().
		AnyEventTypeOf(core.BookCatalogedEventType).
		Finalize()
}
