package core

// DefaultFinePerDay is the fine for each day a book is returned late.
const DefaultFinePerDay = 1

// FinePolicy computes late days and fines. The zero value charges nothing.
type FinePolicy struct {
	PerDay int
}

// DefaultFinePolicy charges DefaultFinePerDay for each late day.
func DefaultFinePolicy() FinePolicy {
	return FinePolicy{PerDay: DefaultFinePerDay}
}

// LateDays is max(0, today - dueDay).
func LateDays(today Day, dueDay Day) int {
	return max(0, today-dueDay)
}

// Assess returns the late days and the fine for a loan due on dueDay, evaluated on today.
func (p FinePolicy) Assess(today Day, dueDay Day) (lateDays int, fine int) {
	lateDays = LateDays(today, dueDay)

	return lateDays, lateDays * p.PerDay
}
