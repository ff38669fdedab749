package desk

import (
	"github.com/AntonStoeckl/circulation-desk-go/circulation/clock"
	"github.com/AntonStoeckl/circulation-desk-go/circulation/shared/core"
)

// Today returns the current simulated day.
func (d *Desk) Today() core.Day {
	return d.clock.Today()
}

// AdvanceDays moves the simulated day forward. Days must be positive, otherwise core.ErrInvalidInput.
func (d *Desk) AdvanceDays(days int) (core.Day, error) {
	return d.clock.Advance(days)
}

// AdvanceDaysFromInput is AdvanceDays for raw text input.
func (d *Desk) AdvanceDaysFromInput(raw string) (core.Day, error) {
	days, err := clock.ParseDays(raw)
	if err != nil {
		return d.clock.Today(), err
	}

	return d.clock.Advance(days)
}

// AdvanceOneDay moves the simulated day forward by one and returns the new day.
func (d *Desk) AdvanceOneDay() core.Day {
	return d.clock.AdvanceOneDay()
}

// AdvanceOneWeek moves the simulated day forward by seven and returns the new day.
func (d *Desk) AdvanceOneWeek() core.Day {
	return d.clock.AdvanceOneWeek()
}
