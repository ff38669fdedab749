package core

import (
	"fmt"
	"strings"
)

// Category of a patron, it determines the loan term.
type Category string

const (
	CategoryStudent Category = "student"
	CategoryTeacher Category = "teacher"
)

const (
	studentLoanTermDays = 7
	teacherLoanTermDays = 10
)

// ParseCategory accepts exactly "student" or "teacher", surrounding whitespace is ignored.
func ParseCategory(raw string) (Category, error) {
	switch category := Category(strings.TrimSpace(raw)); category {
	case CategoryStudent, CategoryTeacher:
		return category, nil
	default:
		return "", fmt.Errorf("%w: %q must be %q or %q", ErrInvalidCategory, raw, CategoryStudent, CategoryTeacher)
	}
}

// LoanTermDays returns the number of days a patron of this category may keep a book.
func (c Category) LoanTermDays() int {
	if c == CategoryTeacher {
		return teacherLoanTermDays
	}

	return studentLoanTermDays
}

func (c Category) String() string {
	return string(c)
}
