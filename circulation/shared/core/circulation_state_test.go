package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/circulation-desk-go/circulation/shared/core"
)

func Test_ProjectCirculationState_DerivesAvailableCopiesFromActiveLoans(t *testing.T) {
	// arrange
	history := core.DomainEvents{
		core.BuildBookCataloged("B1", "The Hobbit", "J.R.R. Tolkien", 1937, "Fantasy", 2, 1),
		core.BuildPatronRegistered("P1", "Ana", core.CategoryStudent, 1),
		core.BuildPatronRegistered("P2", "Ben", core.CategoryTeacher, 1),
		core.BuildBookCheckedOut("loan-1", "B1", "P1", 8, 1),
		core.BuildBookCheckedOut("loan-2", "B1", "P2", 11, 1),
		core.BuildCheckingOutBookFailed("B1", "P1", "no copies available", 2),
		core.BuildBookReturned("loan-1", "B1", "P1", 8, 2, 2, 10),
	}

	// act
	state := core.ProjectCirculationState(history)

	// assert
	book, found := state.Book("B1")
	require.True(t, found)
	assert.Equal(t, 2, book.TotalCopies)
	assert.Equal(t, 1, book.AvailableCopies)

	_, found = state.ActiveLoan("P1", "B1")
	assert.False(t, found)

	activeLoan, found := state.ActiveLoan("P2", "B1")
	require.True(t, found)
	assert.Equal(t, "loan-2", activeLoan.LoanID)

	loans := state.Loans()
	require.Len(t, loans, 2)
	assert.Equal(t, core.LoanStatusReturned, loans[0].Status)
	assert.Equal(t, core.Day(10), loans[0].ReturnDay)
	assert.Equal(t, 2, loans[0].Fine)
	assert.True(t, loans[1].IsActive())

	assert.Len(t, state.LoansWithStatus(core.LoanStatusActive), 1)
	assert.Len(t, state.LoansWithStatus(core.LoanStatusReturned), 1)
}

func Test_ProjectCirculationState_KeepsInsertionOrder(t *testing.T) {
	state := core.ProjectCirculationState(core.DomainEvents{
		core.BuildPatronRegistered("P2", "Ben", core.CategoryTeacher, 1),
		core.BuildBookCataloged("B2", "Dune", "Frank Herbert", 1965, "SciFi", 1, 1),
		core.BuildPatronRegistered("P1", "Ana", core.CategoryStudent, 1),
		core.BuildBookCataloged("B1", "Emma", "Jane Austen", 1815, "Novel", 1, 2),
	})

	books := state.Books()
	require.Len(t, books, 2)
	assert.Equal(t, "B2", books[0].Code)
	assert.Equal(t, "B1", books[1].Code)

	patrons := state.Patrons()
	require.Len(t, patrons, 2)
	assert.Equal(t, "P2", patrons[0].ID)
	assert.Equal(t, "P1", patrons[1].ID)
}

func Test_ProjectCirculationState_AllowsCheckoutAgainAfterReturn(t *testing.T) {
	state := core.ProjectCirculationState(core.DomainEvents{
		core.BuildBookCataloged("B1", "Emma", "Jane Austen", 1815, "Novel", 1, 1),
		core.BuildBookCheckedOut("loan-1", "B1", "P1", 8, 1),
		core.BuildBookReturned("loan-1", "B1", "P1", 8, 0, 0, 3),
		core.BuildBookCheckedOut("loan-2", "B1", "P1", 10, 3),
	})

	loan, found := state.ActiveLoan("P1", "B1")
	require.True(t, found)
	assert.Equal(t, "loan-2", loan.LoanID)

	book, _ := state.Book("B1")
	assert.Zero(t, book.AvailableCopies)
	assert.False(t, book.Available())
}

func Test_CirculationState_ResolveLoan(t *testing.T) {
	history := core.DomainEvents{
		core.BuildBookCataloged("B1", "The Hobbit", "J.R.R. Tolkien", 1937, "Fantasy", 2, 1),
		core.BuildPatronRegistered("P1", "Ana", core.CategoryStudent, 1),
		core.BuildBookCheckedOut("loan-1", "B1", "P1", 8, 1),
		core.BuildBookCheckedOut("loan-2", "B9", "P1", 8, 1),
		core.BuildBookCheckedOut("loan-3", "B1", "P9", 8, 1),
	}
	state := core.ProjectCirculationState(history)
	loans := state.Loans()
	require.Len(t, loans, 3)

	book, patron, err := state.ResolveLoan(loans[0])
	require.NoError(t, err)
	assert.Equal(t, "The Hobbit", book.Title)
	assert.Equal(t, "Ana", patron.Name)

	_, _, err = state.ResolveLoan(loans[1])
	assert.ErrorIs(t, err, core.ErrDataIntegrity)

	_, _, err = state.ResolveLoan(loans[2])
	assert.ErrorIs(t, err, core.ErrDataIntegrity)
}
