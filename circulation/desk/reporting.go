package desk

import (
	"context"

	"github.com/AntonStoeckl/circulation-desk-go/circulation/features/query/activeloans"
	"github.com/AntonStoeckl/circulation-desk-go/circulation/features/query/finishedloans"
	"github.com/AntonStoeckl/circulation-desk-go/circulation/features/query/overdueloans"
	"github.com/AntonStoeckl/circulation-desk-go/circulation/features/query/patronloans"
)

// ActiveLoans reports all active loans as of today.
func (d *Desk) ActiveLoans(ctx context.Context) (activeloans.ActiveLoans, error) {
	return d.activeLoans.Handle(ctx, activeloans.BuildQuery(d.clock.Today()))
}

// OverdueLoans reports the active loans due before today with their estimated fines.
func (d *Desk) OverdueLoans(ctx context.Context) (overdueloans.OverdueLoans, error) {
	return d.overdueLoans.Handle(ctx, overdueloans.BuildQuery(d.clock.Today()))
}

// FinishedLoans reports the returned loans, at most maxResults of them (0 = all).
func (d *Desk) FinishedLoans(ctx context.Context, maxResults int) (finishedloans.FinishedLoans, error) {
	return d.finishedLoans.Handle(ctx, finishedloans.BuildQuery(maxResults))
}

// PatronLoans reports the active loans of one patron as of today.
func (d *Desk) PatronLoans(ctx context.Context, patronID string) (patronloans.PatronLoans, error) {
	return d.patronLoans.Handle(ctx, patronloans.BuildQuery(patronID, d.clock.Today()))
}
