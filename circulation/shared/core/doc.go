// Package core contains the domain of the circulation desk: the domain events, the read models
// projected from them, the loan and fine policies, and the business errors.
//
// Events describe what happened at the desk (BookCataloged, PatronRegistered, BookCheckedOut, BookReturned)
// or which request was rejected (e.g. CheckingOutBookFailed). State such as available copies
// or active loans is never stored, it is always projected from the event history.
//
// Everything in this package is pure: no I/O, no clock, no randomness.
package core
