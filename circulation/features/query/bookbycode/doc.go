// Package bookbycode implements the Book By Code query use case: it finds one book of the catalog.
package bookbycode
