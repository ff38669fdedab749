package bookbycode

import (
	"strings"

	"github.com/AntonStoeckl/circulation-desk-go/circulation/shared/core"
)

const (
	queryType = "BookByCode"
)

// Query represents the intent to find the book with BookCode.
type Query struct {
	BookCode core.BookCodeString
}

// BuildQuery creates a new Query with the provided book code.
func BuildQuery(bookCode string) Query {
	return Query{BookCode: strings.TrimSpace(bookCode)}
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}
