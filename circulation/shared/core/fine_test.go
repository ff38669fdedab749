package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AntonStoeckl/circulation-desk-go/circulation/shared/core"
)

func Test_FinePolicy_Assess(t *testing.T) {
	tests := []struct {
		name             string
		today            core.Day
		dueDay           core.Day
		expectedLateDays int
		expectedFine     int
	}{
		{name: "returned early", today: 5, dueDay: 8, expectedLateDays: 0, expectedFine: 0},
		{name: "returned on the due day", today: 8, dueDay: 8, expectedLateDays: 0, expectedFine: 0},
		{name: "returned one day late", today: 9, dueDay: 8, expectedLateDays: 1, expectedFine: 1},
		{name: "returned two days late", today: 10, dueDay: 8, expectedLateDays: 2, expectedFine: 2},
	}

	policy := core.DefaultFinePolicy()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lateDays, fine := policy.Assess(tt.today, tt.dueDay)

			assert.Equal(t, tt.expectedLateDays, lateDays)
			assert.Equal(t, tt.expectedFine, fine)
		})
	}
}

func Test_FinePolicy_Assess_MultipliesLateDaysWithFinePerDay(t *testing.T) {
	lateDays, fine := core.FinePolicy{PerDay: 3}.Assess(12, 8)

	assert.Equal(t, 4, lateDays)
	assert.Equal(t, 12, fine)
}

func Test_FinePolicy_Assess_IsMonotoneInToday(t *testing.T) {
	policy := core.DefaultFinePolicy()
	dueDay := core.Day(8)
	previousFine := 0

	for today := core.Day(1); today <= 40; today++ {
		_, fine := policy.Assess(today, dueDay)

		assert.GreaterOrEqual(t, fine, previousFine, "fine must not decrease on day %d", today)
		if today <= dueDay {
			assert.Zero(t, fine, "no fine before the due day, day %d", today)
		}

		previousFine = fine
	}
}
