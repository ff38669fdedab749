package desk

import (
	"context"
	"fmt"

	"github.com/AntonStoeckl/circulation-desk-go/circulation/features/command/checkoutbook"
	"github.com/AntonStoeckl/circulation-desk-go/circulation/features/command/returnbook"
	"github.com/AntonStoeckl/circulation-desk-go/circulation/shared/core"
	"github.com/AntonStoeckl/circulation-desk-go/circulation/shared/shell"
)

// ReturnReceipt is the outcome of a return. A late return is never an error, it is reflected in LateDays and Fine.
type ReturnReceipt struct {
	LoanID    core.LoanIDString
	PatronID  core.PatronIDString
	BookCode  core.BookCodeString
	DueDay    core.Day
	ReturnDay core.Day
	LateDays  int
	Fine      int
}

// CheckOut lends one copy of the book to the patron, due after the loan term of the patron's category.
//
// Errors: core.ErrPatronNotFound, core.ErrBookNotFound, core.ErrNoCopiesAvailable, core.ErrDuplicateActiveLoan.
func (d *Desk) CheckOut(ctx context.Context, patronID string, bookCode string) (core.Loan, error) {
	loanID, err := shell.NewLoanID()
	if err != nil {
		return core.Loan{}, err
	}

	result, err := d.checkOutBook.Handle(ctx, checkoutbook.BuildCommand(loanID, patronID, bookCode, d.clock.Today()))
	if err != nil {
		return core.Loan{}, err
	}

	e, ok := result.AppendedEvent.(core.BookCheckedOut)
	if !ok {
		return core.Loan{}, fmt.Errorf("checkout appended unexpected event %T", result.AppendedEvent)
	}

	return core.Loan{
		LoanID:   e.LoanID,
		PatronID: e.PatronID,
		BookCode: e.BookCode,
		StartDay: e.OccurredOn,
		DueDay:   e.DueDay,
		Status:   core.LoanStatusActive,
	}, nil
}

// Return ends the patron's active loan of the book and assesses the fine with the session's fine policy.
//
// Errors: core.ErrLoanNotFound if the patron has no active loan of the book.
func (d *Desk) Return(ctx context.Context, patronID string, bookCode string) (ReturnReceipt, error) {
	result, err := d.returnBook.Handle(ctx, returnbook.BuildCommand(patronID, bookCode, d.clock.Today()))
	if err != nil {
		return ReturnReceipt{}, err
	}

	e, ok := result.AppendedEvent.(core.BookReturned)
	if !ok {
		return ReturnReceipt{}, fmt.Errorf("return appended unexpected event %T", result.AppendedEvent)
	}

	return ReturnReceipt{
		LoanID:    e.LoanID,
		PatronID:  e.PatronID,
		BookCode:  e.BookCode,
		DueDay:    e.DueDay,
		ReturnDay: e.OccurredOn,
		LateDays:  e.LateDays,
		Fine:      e.Fine,
	}, nil
}
