// Package activeloans implements the Active Loans report.
//
// It lists every active loan in checkout order with the book title, the patron name
// and the days remaining until the due day. Negative days remaining mean the loan is overdue.
// A loan referring to an unknown book or patron fails the whole report with core.ErrDataIntegrity.
package activeloans
