package desk

import (
	"context"

	"github.com/AntonStoeckl/circulation-desk-go/circulation/features/command/registerpatron"
	"github.com/AntonStoeckl/circulation-desk-go/circulation/features/query/patronbyid"
	"github.com/AntonStoeckl/circulation-desk-go/circulation/features/query/registeredpatrons"
	"github.com/AntonStoeckl/circulation-desk-go/circulation/shared/core"
)

// RegisterPatron adds a patron to the directory. The category must be "student" or "teacher".
// It fails with core.ErrDuplicateKey for a known id and with core.ErrInvalidCategory otherwise.
func (d *Desk) RegisterPatron(ctx context.Context, patronID string, name string, category string) (core.Patron, error) {
	command := registerpatron.BuildCommand(patronID, name, category, d.clock.Today())

	if _, err := d.registerPatron.Handle(ctx, command); err != nil {
		return core.Patron{}, err
	}

	return d.FindPatron(ctx, command.PatronID)
}

// FindPatron returns the patron with the given id or core.ErrPatronNotFound.
func (d *Desk) FindPatron(ctx context.Context, patronID string) (core.Patron, error) {
	return d.patronByID.Handle(ctx, patronbyid.BuildQuery(patronID))
}

// ListPatrons returns all patrons in registration order.
func (d *Desk) ListPatrons(ctx context.Context) ([]core.Patron, error) {
	result, err := d.registeredPatrons.Handle(ctx, registeredpatrons.BuildQuery())
	if err != nil {
		return nil, err
	}

	return result.Patrons, nil
}
