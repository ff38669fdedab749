package finishedloans

import (
	"github.com/AntonStoeckl/circulation-desk-go/circulation/shared/shell"
)

const (
	queryType = "FinishedLoans"
)

// Query represents the intent to report finished loans.
// MaxResults limits the number of returned rows, 0 means no limit.
type Query struct {
	MaxResults int `validate:"gte=0"`
}

// BuildQuery creates a new Query.
func BuildQuery(maxResults int) Query {
	return Query{MaxResults: maxResults}
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}

// Validate reports a negative MaxResults as core.ErrInvalidInput.
func (q Query) Validate() error {
	return shell.Validate(q)
}
