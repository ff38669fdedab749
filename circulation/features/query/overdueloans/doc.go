// Package overdueloans implements the Overdue Loans report.
//
// It lists the active loans whose due day lies before today, in checkout order,
// with the late days so far and the fine a return today would cost.
package overdueloans
