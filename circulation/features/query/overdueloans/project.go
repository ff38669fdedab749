package overdueloans

import (
	"github.com/AntonStoeckl/circulation-desk-go/circulation/shared/core"
	"github.com/AntonStoeckl/circulation-desk-go/eventstore"
)

// ProjectOverdueLoans is a pure function that projects the overdue loans from the history.
//
// Query Logic:
//
//	GIVEN: Today and a fine policy
//	WHEN: OverdueLoans query is executed
//	THEN: Active loans with DueDay < Today are returned in checkout order
//	INCLUDES: LateDays = Today - DueDay, EstimatedFine = LateDays * fine per day
//	EXCLUDES: returned loans, loans due today or later
func ProjectOverdueLoans(history core.DomainEvents, query Query, finePolicy core.FinePolicy) (OverdueLoans, error) {
	state := core.ProjectCirculationState(history)
	result := OverdueLoans{
		Today: query.Today,
		Loans: make([]LoanInfo, 0),
	}

	for _, loan := range state.LoansWithStatus(core.LoanStatusActive) {
		if loan.DueDay >= query.Today {
			continue
		}

		book, patron, err := state.ResolveLoan(loan)
		if err != nil {
			return OverdueLoans{}, err
		}

		lateDays, fine := finePolicy.Assess(query.Today, loan.DueDay)

		result.Loans = append(result.Loans, LoanInfo{
			LoanID:        loan.LoanID,
			BookCode:      loan.BookCode,
			Title:         book.Title,
			PatronID:      loan.PatronID,
			PatronName:    patron.Name,
			DueDay:        loan.DueDay,
			LateDays:      lateDays,
			EstimatedFine: fine,
		})
		result.TotalEstimatedFine += fine
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
