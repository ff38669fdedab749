// Package patronloans implements the Patron Loans query use case: the books a patron currently has.
package patronloans
