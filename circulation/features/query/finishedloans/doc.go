// Package finishedloans implements the Finished Loans report.
//
// A loan is finished once its book was returned. The report lists finished loans ordered by
// return day (oldest first, ties in checkout order) with the late days and the fine that was
// assessed at return time. Failure events never finish a loan.
package finishedloans
