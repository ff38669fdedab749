package booksincatalog

import (
	"github.com/AntonStoeckl/circulation-desk-go/circulation/shared/core"
	"github.com/AntonStoeckl/circulation-desk-go/eventstore"
)

// BooksInCatalog represents the catalog with availability derived from the active loans.
type BooksInCatalog struct {
	Books          []core.Book
	Count          int
	SequenceNumber eventstore.MaxSequenceNumberUint
}
