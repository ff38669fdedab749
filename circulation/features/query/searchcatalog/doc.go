// Package searchcatalog implements the Search Catalog query use case.
//
// A book matches when the criterion equals its code, or is contained in its title or author.
// All comparisons are case-insensitive using Unicode case folding.
package searchcatalog
