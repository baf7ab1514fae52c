package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetAvailableDriversQueryHandler retrieves dispatchable drivers from
// the database. Reuses the fleet read model.
type GetAvailableDriversQueryHandler struct {
	db *gorm.DB
}

// NewGetAvailableDriversQueryHandler creates a handler for dispatch picker queries.
func NewGetAvailableDriversQueryHandler(db *gorm.DB) GetAvailableDriversQueryHandler {
	return GetAvailableDriversQueryHandler{db: db}
}

// Handle executes the query. Only drivers in Available status come back.
func (h GetAvailableDriversQueryHandler) Handle(
	ctx context.Context,
	query GetAvailableDriversQuery,
) ([]GetAllDriversQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return fetchDrivers(ctx, h.db, `
		SELECT
			id,
			name,
			phone,
			vehicle,
			status,
			days_off,
			total_deliveries,
			rating
		FROM drivers
		WHERE status = 'available'
		ORDER BY name
	`)
}
