// Package checkoutbook implements the Check Out Book use case.
//
// A registered patron checks out an available copy of a cataloged book. The loan is due after
// the loan term of the patron's category (student 7 days, teacher 10 days).
// A patron can hold at most one active loan per book.
//
// The dynamic event stream of a checkout contains the book's and the patron's events, so concurrent
// checkouts of the same book or by the same patron conflict and are retried.
package checkoutbook
