package core

// Book is the catalog view of a book.
type Book struct {
	Code            BookCodeString
	Title           string
	Author          string
	Year            int
	Genre           string
	TotalCopies     int
	AvailableCopies int
}

// Available reports whether at least one copy can be checked out.
func (b Book) Available() bool {
	return b.AvailableCopies > 0
}

// Patron is the directory view of a patron.
type Patron struct {
	ID       PatronIDString
	Name     string
	Category Category
}

// LoanStatus is either LoanStatusActive or LoanStatusReturned.
type LoanStatus string

const (
	LoanStatusActive   LoanStatus = "active"
	LoanStatusReturned LoanStatus = "returned"
)

// Loan is one checkout of a book by a patron. ReturnDay, LateDays and Fine are zero while the loan is active.
type Loan struct {
	LoanID    LoanIDString
	PatronID  PatronIDString
	BookCode  BookCodeString
	StartDay  Day
	DueDay    Day
	Status    LoanStatus
	ReturnDay Day
	LateDays  int
	Fine      int
}

// IsActive reports whether the book is still checked out.
func (l Loan) IsActive() bool {
	return l.Status == LoanStatusActive
}
