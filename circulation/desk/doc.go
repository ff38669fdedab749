// Package desk is the session facade of the circulation desk.
//
// A Desk owns one event store, one simulated clock and the command and query handlers of all
// features. It has no process-wide state: two Desks never share books, patrons, loans or days.
// Every operation runs on the clock's current day.
//
// Example usage:
//
//	d, err := desk.New(desk.WithFinePolicy(core.FinePolicy{PerDay: 2}))
//	if err != nil { ... }
//
//	_, err = d.CatalogBook(ctx, "B1", "The Hobbit", "J.R.R. Tolkien", 1937, "Fantasy", 1)
//	_, err = d.RegisterPatron(ctx, "P1", "Bilbo Baggins", "student")
//	loan, err := d.CheckOut(ctx, "P1", "B1")
//	d.AdvanceDays(9)
//	receipt, err := d.Return(ctx, "P1", "B1") // receipt.LateDays == 2, receipt.Fine == 4
package desk
