package core

import "errors"

// Business errors of the circulation desk, compare with errors.Is.
var (
	ErrDuplicateKey        = errors.New("duplicate key")
	ErrInvalidInput        = errors.New("invalid input")
	ErrInvalidCategory     = errors.New("invalid category")
	ErrBookNotFound        = errors.New("book not found")
	ErrPatronNotFound      = errors.New("patron not found")
	ErrLoanNotFound        = errors.New("loan not found")
	ErrNoCopiesAvailable   = errors.New("no copies available")
	ErrDuplicateActiveLoan = errors.New("duplicate active loan")
	ErrDataIntegrity       = errors.New("data integrity violation")
)
