package core

// Day is a day of the simulated clock, starting at 1.
type Day = int

// BookCodeString is the unique key of a cataloged book.
type BookCodeString = string

// PatronIDString is the unique key of a registered patron.
type PatronIDString = string

// LoanIDString identifies a single loan.
type LoanIDString = string

// Payload keys used in event filters.
const (
	BookCodeKey = "BookCode"
	PatronIDKey = "PatronID"
)
