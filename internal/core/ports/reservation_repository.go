package ports

import (
	"context"

	"github.com/Pandalivraison/ALOUETTE/internal/core/domain/model/kernel"
	"github.com/Pandalivraison/ALOUETTE/internal/core/domain/model/reservation"
)

// ReservationRepository defines the persistence contract for reservation aggregates.
type ReservationRepository interface {
	// Add persists a new reservation aggregate to storage.
	Add(ctx context.Context, aggregate *reservation.Reservation) error

	// Update persists changes to an existing reservation aggregate.
	Update(ctx context.Context, aggregate *reservation.Reservation) error

	// Get retrieves a reservation aggregate by its unique identifier.
	// Returns errs.ObjectNotFoundError when no such reservation exists.
	Get(ctx context.Context, id kernel.UUID) (*reservation.Reservation, error)
}
