package core

import "fmt"

// CirculationState is the current state of books, patrons and loans, projected from an event history.
// Failure events are ignored. All sequences keep the order in which their first event occurred.
type CirculationState struct {
	books      []Book
	bookIndex  map[BookCodeString]int
	patrons    []Patron
	patronIdx  map[PatronIDString]int
	loans      []Loan
	activeLoan map[loanKey]int
}

type loanKey struct {
	patronID PatronIDString
	bookCode BookCodeString
}

// ProjectCirculationState folds the history into a CirculationState.
// The history may be any "dynamic event stream", the state then only contains what the stream contains.
func ProjectCirculationState(history DomainEvents) CirculationState {
	s := CirculationState{
		bookIndex:  make(map[BookCodeString]int),
		patronIdx:  make(map[PatronIDString]int),
		activeLoan: make(map[loanKey]int),
	}

	for _, event := range history {
		s.apply(event)
	}

	return s
}

func (s *CirculationState) apply(event DomainEvent) {
	switch e := event.(type) {
	case BookCataloged:
		if _, exists := s.bookIndex[e.BookCode]; exists {
			return
		}

		s.bookIndex[e.BookCode] = len(s.books)
		s.books = append(s.books, Book{
			Code:            e.BookCode,
			Title:           e.Title,
			Author:          e.Author,
			Year:            e.Year,
			Genre:           e.Genre,
			TotalCopies:     e.TotalCopies,
			AvailableCopies: e.TotalCopies,
		})

	case PatronRegistered:
		if _, exists := s.patronIdx[e.PatronID]; exists {
			return
		}

		s.patronIdx[e.PatronID] = len(s.patrons)
		s.patrons = append(s.patrons, Patron{ID: e.PatronID, Name: e.Name, Category: e.Category})

	case BookCheckedOut:
		s.activeLoan[loanKey{e.PatronID, e.BookCode}] = len(s.loans)
		s.loans = append(s.loans, Loan{
			LoanID:   e.LoanID,
			PatronID: e.PatronID,
			BookCode: e.BookCode,
			StartDay: e.OccurredOn,
			DueDay:   e.DueDay,
			Status:   LoanStatusActive,
		})

		if i, ok := s.bookIndex[e.BookCode]; ok {
			s.books[i].AvailableCopies--
		}

	case BookReturned:
		key := loanKey{e.PatronID, e.BookCode}

		i, ok := s.activeLoan[key]
		if !ok {
			return
		}

		delete(s.activeLoan, key)
		s.loans[i].Status = LoanStatusReturned
		s.loans[i].ReturnDay = e.OccurredOn
		s.loans[i].LateDays = e.LateDays
		s.loans[i].Fine = e.Fine

		if j, ok := s.bookIndex[e.BookCode]; ok {
			s.books[j].AvailableCopies++
		}
	}
}

// Book returns the book with the given code.
func (s CirculationState) Book(code BookCodeString) (Book, bool) {
	i, ok := s.bookIndex[code]
	if !ok {
		return Book{}, false
	}

	return s.books[i], true
}

// Patron returns the patron with the given id.
func (s CirculationState) Patron(id PatronIDString) (Patron, bool) {
	i, ok := s.patronIdx[id]
	if !ok {
		return Patron{}, false
	}

	return s.patrons[i], true
}

// ActiveLoan returns the active loan of the (patron, book) pair.
func (s CirculationState) ActiveLoan(patronID PatronIDString, bookCode BookCodeString) (Loan, bool) {
	i, ok := s.activeLoan[loanKey{patronID, bookCode}]
	if !ok {
		return Loan{}, false
	}

	return s.loans[i], true
}

// Books returns all books in catalog order.
func (s CirculationState) Books() []Book {
	return append([]Book(nil), s.books...)
}

// Patrons returns all patrons in registration order.
func (s CirculationState) Patrons() []Patron {
	return append([]Patron(nil), s.patrons...)
}

// Loans returns all loans in checkout order.
func (s CirculationState) Loans() []Loan {
	return append([]Loan(nil), s.loans...)
}

// LoansWithStatus returns the loans with the given status in checkout order.
func (s CirculationState) LoansWithStatus(status LoanStatus) []Loan {
	loans := make([]Loan, 0)

	for _, loan := range s.loans {
		if loan.Status == status {
			loans = append(loans, loan)
		}
	}

	return loans
}

// ResolveLoan returns the book and the patron a loan refers to.
// A loan referring to an unknown book or patron is a core.ErrDataIntegrity violation.
func (s CirculationState) ResolveLoan(loan Loan) (Book, Patron, error) {
	book, found := s.Book(loan.BookCode)
	if !found {
		return Book{}, Patron{}, fmt.Errorf("%w: loan %q refers to unknown book %q", ErrDataIntegrity, loan.LoanID, loan.BookCode)
	}

	patron, found := s.Patron(loan.PatronID)
	if !found {
		return Book{}, Patron{}, fmt.Errorf("%w: loan %q refers to unknown patron %q", ErrDataIntegrity, loan.LoanID, loan.PatronID)
	}

	return book, patron, nil
}
