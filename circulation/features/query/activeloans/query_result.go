package activeloans

import (
	"github.com/AntonStoeckl/circulation-desk-go/circulation/shared/core"
)

// LoanInfo is one row of the report.
type LoanInfo struct {
	LoanID        core.LoanIDString
	BookCode      core.BookCodeString
	Title         string
	PatronID      core.PatronIDString
	PatronName    string
	StartDay      core.Day
	DueDay        core.Day
	DaysRemaining int
}

// ActiveLoans represents the query result.
type ActiveLoans struct {
	Today core.Day
	Loans []LoanInfo
	Count int
}
