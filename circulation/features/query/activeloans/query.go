package activeloans

import (
	"github.com/AntonStoeckl/circulation-desk-go/circulation/shared/core"
)

const (
	queryType = "ActiveLoans"
)

// Query represents the intent to report the active loans as of Today.
type Query struct {
	Today core.Day
}

// BuildQuery creates a new Query for the given day.
func BuildQuery(today core.Day) Query {
	return Query{Today: today}
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}
