package patronloans

import (
	"strings"

	"github.com/AntonStoeckl/circulation-desk-go/circulation/shared/core"
)

const (
	queryType = "PatronLoans"
)

// Query represents the intent to list the active loans of the patron with PatronID as of Today.
type Query struct {
	PatronID core.PatronIDString
	Today    core.Day
}

// BuildQuery creates a new Query.
func BuildQuery(patronID string, today core.Day) Query {
	return Query{
		PatronID: strings.TrimSpace(patronID),
		Today:    today,
	}
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}
