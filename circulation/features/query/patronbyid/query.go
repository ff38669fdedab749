package patronbyid

import (
	"strings"

	"github.com/AntonStoeckl/circulation-desk-go/circulation/shared/core"
)

const (
	queryType = "PatronByID"
)

// Query represents the intent to find the patron with PatronID.
type Query struct {
	PatronID core.PatronIDString
}

// BuildQuery creates a new Query with the provided patron id.
func BuildQuery(patronID string) Query {
	return Query{PatronID: strings.TrimSpace(patronID)}
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}
