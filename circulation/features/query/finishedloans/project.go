package finishedloans

import (
	"cmp"
	"slices"

	"github.com/AntonStoeckl/circulation-desk-go/circulation/shared/core"
	"github.com/AntonStoeckl/circulation-desk-go/eventstore"
)

// ProjectFinishedLoans is a pure function that projects the finished loans from the history.
//
// Query Logic:
//
//	GIVEN: Any history
//	WHEN: FinishedLoans query is executed
//	THEN: Returned loans are listed by return day, oldest first
//	INCLUDES: start, due and return day, late days and the assessed fine
//	EXCLUDES: active loans
func ProjectFinishedLoans(history core.DomainEvents, query Query) (FinishedLoans, error) {
	state := core.ProjectCirculationState(history)
	result := FinishedLoans{Loans: make([]LoanInfo, 0)}

	for _, loan := range state.LoansWithStatus(core.LoanStatusReturned) {
		book, patron, err := state.ResolveLoan(loan)
		if err != nil {
			return FinishedLoans{}, err
		}

		result.Loans = append(result.Loans, LoanInfo{
			LoanID:     loan.LoanID,
			BookCode:   loan.BookCode,
			Title:      book.Title,
			PatronID:   loan.PatronID,
			PatronName: patron.Name,
			StartDay:   loan.StartDay,
			DueDay:     loan.DueDay,
			ReturnDay:  loan.ReturnDay,
			LateDays:   loan.LateDays,
			Fine:       loan.Fine,
		})
		result.TotalFines += loan.Fine
	}

	slices.SortStableFunc(result.Loans, func(a, b LoanInfo) int {
		return cmp.Compare(a.ReturnDay, b.ReturnDay)
	})

	result.TotalCount = len(result.Loans)

	if query.MaxResults > 0 && len(result.Loans) > query.MaxResults {
		result.Loans = result.Loans[:query.MaxResults]
	}

	result.Count = len(result.Loans)

	return result, nil
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
