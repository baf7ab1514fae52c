package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Pandalivraison/ALOUETTE/internal/core/domain/model/kernel"
	"github.com/Pandalivraison/ALOUETTE/internal/core/domain/model/reservation"
)

// GetReservationsQueryHandler retrieves the booking list from the database.
type GetReservationsQueryHandler struct {
	db *gorm.DB
}

// NewGetReservationsQueryHandler creates a handler for booking list queries.
func NewGetReservationsQueryHandler(db *gorm.DB) GetReservationsQueryHandler {
	return GetReservationsQueryHandler{db: db}
}

// Handle executes the query. Bookings come back ordered by date and
// start time, the soonest first.
func (h GetReservationsQueryHandler) Handle(
	ctx context.Context,
	query GetReservationsQuery,
) ([]GetReservationsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	reservations := make([]GetReservationsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_name,
			phone,
			whats_app,
			address,
			date,
			start_time,
			end_time,
			guests,
			status,
			kind
		FROM reservations
		ORDER BY date, start_time
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var response GetReservationsQueryResponse
		var id uuid.UUID
		var status, kind string

		err = rows.Scan(
			&id,
			&response.CustomerName,
			&response.Phone,
			&response.WhatsApp,
			&response.Address,
			&response.Date,
			&response.StartTime,
			&response.EndTime,
			&response.Guests,
			&status,
			&kind,
		)
		if err != nil {
			return nil, err
		}

		reservationID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		response.ID = reservationID

		reservationStatus, statusErr := reservation.StatusFromString(status)
		if statusErr != nil {
			return nil, statusErr
		}
		response.Status = reservationStatus

		reservationKind, kindErr := reservation.KindFromString(kind)
		if kindErr != nil {
			return nil, kindErr
		}
		response.Kind = reservationKind

		reservations = append(reservations, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return reservations, nil
}
