package registeredpatrons

import (
	"github.com/AntonStoeckl/circulation-desk-go/circulation/shared/core"
)

// RegisteredPatrons represents the patron directory in registration order.
type RegisteredPatrons struct {
	Patrons []core.Patron
	Count   int
}
