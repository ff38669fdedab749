// Package returnbook implements the Return Book use case.
//
// Returning closes the patron's active loan of the book and assesses late days and fine
// with the configured core.FinePolicy. A late return is never an error.
package returnbook
