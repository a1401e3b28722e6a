package vo

import "github.com/joshuarp/flight-admin/internal/domain"

// FlightSaved is the outcome of a create or update.
type FlightSaved struct {
	Flight  domain.Flight `json:"flight"`
	Created bool          `json:"created"`
	Message string        `json:"message"`
}

// CodeAvailability is the answer of the code availability check.
type CodeAvailability struct {
	Code      string `json:"code"`
	Available bool   `json:"available"`
}

// FlightDeleted carries the listing reloaded after a delete, when the session
// had listed flights before.
type FlightDeleted struct {
	ID      string             `json:"id"`
	Message string             `json:"message"`
	Flights *domain.FlightPage `json:"flights,omitempty"`
}
