package desk

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/AntonStoeckl/circulation-desk-go/circulation/features/command/catalogbook"
	"github.com/AntonStoeckl/circulation-desk-go/circulation/features/query/bookbycode"
	"github.com/AntonStoeckl/circulation-desk-go/circulation/features/query/booksincatalog"
	"github.com/AntonStoeckl/circulation-desk-go/circulation/features/query/searchcatalog"
	"github.com/AntonStoeckl/circulation-desk-go/circulation/shared/core"
)

// CatalogBook adds a book with totalCopies copies, all of them available.
// It fails with core.ErrDuplicateKey if the code is already cataloged, even when other fields are invalid,
// and with core.ErrInvalidInput for an empty code or fewer than one copy.
func (d *Desk) CatalogBook(
	ctx context.Context,
	bookCode string,
	title string,
	author string,
	year int,
	genre string,
	totalCopies int,
) (core.Book, error) {

	command := catalogbook.BuildCommand(bookCode, title, author, year, genre, totalCopies, d.clock.Today())

	return d.handleCatalogBook(ctx, command)
}

// CatalogBookFromInput is CatalogBook for raw text input of year and total copies.
// An already cataloged code is reported before unparsable numbers.
func (d *Desk) CatalogBookFromInput(
	ctx context.Context,
	bookCode string,
	title string,
	author string,
	rawYear string,
	genre string,
	rawTotalCopies string,
) (core.Book, error) {

	command, err := catalogbook.BuildCommandFromInput(bookCode, title, author, rawYear, genre, rawTotalCopies, d.clock.Today())
	if err != nil {
		return core.Book{}, d.preferDuplicateCode(ctx, strings.TrimSpace(bookCode), err)
	}

	return d.handleCatalogBook(ctx, command)
}

func (d *Desk) handleCatalogBook(ctx context.Context, command catalogbook.Command) (core.Book, error) {
	if _, err := d.catalogBook.Handle(ctx, command); err != nil {
		if errors.Is(err, core.ErrInvalidInput) {
			return core.Book{}, d.preferDuplicateCode(ctx, command.BookCode, err)
		}

		return core.Book{}, err
	}

	return d.FindBook(ctx, command.BookCode)
}

// preferDuplicateCode replaces an input error with core.ErrDuplicateKey if the code is already cataloged.
func (d *Desk) preferDuplicateCode(ctx context.Context, bookCode core.BookCodeString, inputErr error) error {
	if bookCode == "" {
		return inputErr
	}

	if _, err := d.FindBook(ctx, bookCode); err == nil {
		return fmt.Errorf("%w: book code %q", core.ErrDuplicateKey, bookCode)
	}

	return inputErr
}

// FindBook returns the book with the given code or core.ErrBookNotFound.
func (d *Desk) FindBook(ctx context.Context, bookCode string) (core.Book, error) {
	return d.bookByCode.Handle(ctx, bookbycode.BuildQuery(bookCode))
}

// SearchCatalog returns the books whose code equals the criterion or whose title or author contains it,
// ignoring case, in catalog order.
func (d *Desk) SearchCatalog(ctx context.Context, criterion string) ([]core.Book, error) {
	result, err := d.searchCatalog.Handle(ctx, searchcatalog.BuildQuery(criterion))
	if err != nil {
		return nil, err
	}

	return result.Books, nil
}

// ListBooks returns all books in catalog order.
func (d *Desk) ListBooks(ctx context.Context) ([]core.Book, error) {
	result, err := d.booksInCatalog.Handle(ctx, booksincatalog.BuildQuery())
	if err != nil {
		return nil, err
	}

	return result.Books, nil
}
