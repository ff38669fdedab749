// Package patronbyid implements the Patron By ID query use case.
package patronbyid
