package patronloans

import (
	"github.com/AntonStoeckl/circulation-desk-go/circulation/shared/core"
)

// LoanInfo is one book the patron currently has.
type LoanInfo struct {
	LoanID        core.LoanIDString
	BookCode      core.BookCodeString
	Title         string
	StartDay      core.Day
	DueDay        core.Day
	DaysRemaining int
}

// PatronLoans represents the query result.
type PatronLoans struct {
	Patron core.Patron
	Loans  []LoanInfo
	Count  int
}
