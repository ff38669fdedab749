package overdueloans

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
	DueDay        core.Day
	LateDays      int
	EstimatedFine int
}

// OverdueLoans represents the query result.
type OverdueLoans struct {
	Today              core.Day
	Loans              []LoanInfo
	Count              int
	TotalEstimatedFine int
}
