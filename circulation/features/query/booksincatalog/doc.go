// Package booksincatalog implements the Books In Catalog query use case.
//
// It lists every cataloged book in catalog order with its total and available copies.
// It follows the Query-Project pattern and never generates events.
package booksincatalog
