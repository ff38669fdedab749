package searchcatalog

import (
	"github.com/AntonStoeckl/circulation-desk-go/circulation/shared/core"
)

// SearchResult holds the matching books in catalog order.
type SearchResult struct {
	Criterion string
	Books     []core.Book
	Count     int
}
