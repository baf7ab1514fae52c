package queries

import (
	"errors"

	"github.com/Pandalivraison/ALOUETTE/internal/core/domain/model/kernel"
	"github.com/Pandalivraison/ALOUETTE/internal/core/domain/model/reservation"
	"github.com/Pandalivraison/ALOUETTE/internal/pkg/guard"
)

var ErrGetReservationsQueryIsNotConstructed = errors.New(
	"GetReservationsQuery must be created via NewGetReservationsQuery constructor",
)

// GetReservationsQuery retrieves every booking for the staff
// dashboard, soonest date first.
type GetReservationsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetReservationsQuery creates a query to retrieve the booking list.
func NewGetReservationsQuery() GetReservationsQuery {
	return GetReservationsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetReservationsQuery) Validate() error {
	return q.guard.Validate(ErrGetReservationsQueryIsNotConstructed)
}

// GetReservationsQueryResponse represents one booking in the read model.
type GetReservationsQueryResponse struct {
	ID           kernel.UUID
	CustomerName string
	Phone        string
	WhatsApp     bool
	Address      string
	Date         string
	StartTime    string
	EndTime      string
	Guests       int
	Status       reservation.Status
	Kind         reservation.Kind
}
