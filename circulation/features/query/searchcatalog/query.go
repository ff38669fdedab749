package searchcatalog

import (
	"strings"
)

const (
	queryType = "SearchCatalog"
)

// Query represents the intent to search the catalog. An empty Criterion matches every book.
type Query struct {
	Criterion string
}

// BuildQuery creates a new Query with the provided search criterion.
func BuildQuery(criterion string) Query {
	return Query{Criterion: strings.TrimSpace(criterion)}
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}
