package finishedloans

import (
	"github.com/AntonStoeckl/circulation-desk-go/circulation/shared/core"
)

// LoanInfo is one row of the report.
type LoanInfo struct {
	LoanID     core.LoanIDString
	BookCode   core.BookCodeString
	Title      string
	PatronID   core.PatronIDString
	PatronName string
	StartDay   core.Day
	DueDay     core.Day
	ReturnDay  core.Day
	LateDays   int
	Fine       int
}

// FinishedLoans represents the query result.
type FinishedLoans struct {
	Loans      []LoanInfo
	Count      int // Number of rows in Loans (after MaxResults was applied)
	TotalCount int // Number of finished loans (before MaxResults was applied)
	TotalFines int // Sum of all assessed fines (before MaxResults was applied)
}
