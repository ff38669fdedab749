// Package clock provides the simulated day counter of the circulation desk.
package clock

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync"

	"github.com/AntonStoeckl/circulation-desk-go/circulation/shared/core"
)

const (
	// FirstDay is the day every Clock starts on.
	FirstDay core.Day = 1

	daysPerWeek = 7
)

// Clock is a manually advanced day counter. It never goes backwards.
// The zero value is not usable, create it with New.
type Clock struct {
	mu    *sync.RWMutex
	today core.Day
}

// New creates a Clock on FirstDay.
func New() *Clock {
	return &Clock{mu: &sync.RWMutex{}, today: FirstDay}
}

// Today returns the current day.
func (c *Clock) Today() core.Day {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.today
}

// Advance moves the clock forward by days, which must be positive, and returns the new day.
// A count that would overflow the day counter is rejected with core.ErrInvalidInput.
func (c *Clock) Advance(days int) (core.Day, error) {
	if days <= 0 {
		return c.Today(), fmt.Errorf("%w: days to advance must be positive, got %d", core.ErrInvalidInput, days)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if days > math.MaxInt-c.today {
		return c.today, fmt.Errorf("%w: advancing %d days from day %d is out of range", core.ErrInvalidInput, days, c.today)
	}

	c.today += days

	return c.today, nil
}

// AdvanceOneDay moves the clock forward by one day.
func (c *Clock) AdvanceOneDay() core.Day {
	today, _ := c.Advance(1) //nolint:errcheck // 1 is always valid

	return today
}

// AdvanceOneWeek moves the clock forward by seven days.
func (c *Clock) AdvanceOneWeek() core.Day {
	today, _ := c.Advance(daysPerWeek) //nolint:errcheck // 7 is always valid

	return today
}

// ParseDays converts raw user input into a positive number of days.
func ParseDays(raw string) (int, error) {
	days, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a whole number of days", core.ErrInvalidInput, raw)
	}

	if days <= 0 {
		return 0, fmt.Errorf("%w: days to advance must be positive, got %d", core.ErrInvalidInput, days)
	}

	return days, nil
}
