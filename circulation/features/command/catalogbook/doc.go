// Package catalogbook implements the Catalog Book use case.
//
// It adds a book with a number of copies to the catalog. The book code is the unique key,
// cataloging an existing code is rejected and recorded as CatalogingBookFailed.
// It follows the Command-Query-Decide-Append pattern: CommandHandler does the infrastructure work,
// Decide is the pure business logic.
package catalogbook
