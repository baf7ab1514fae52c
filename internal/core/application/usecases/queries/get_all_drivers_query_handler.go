package queries

import (
	"context"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/Pandalivraison/ALOUETTE/internal/core/domain/model/driver"
	"github.com/Pandalivraison/ALOUETTE/internal/core/domain/model/kernel"
)

// GetAllDriversQueryHandler retrieves the fleet from the database.
type GetAllDriversQueryHandler struct {
	db *gorm.DB
}

// NewGetAllDriversQueryHandler creates a handler for fleet queries.
func NewGetAllDriversQueryHandler(db *gorm.DB) GetAllDriversQueryHandler {
	return GetAllDriversQueryHandler{db: db}
}

// Handle executes the query. Drivers come back sorted by name.
func (h GetAllDriversQueryHandler) Handle(
	ctx context.Context,
	query GetAllDriversQuery,
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
		ORDER BY name
	`)
}

func fetchDrivers(ctx context.Context, db *gorm.DB, sql string) ([]GetAllDriversQueryResponse, error) {
	drivers := make([]GetAllDriversQueryResponse, 0)

	rows, err := db.WithContext(ctx).Raw(sql).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var response GetAllDriversQueryResponse
		var id uuid.UUID
		var status string
		var daysOff pq.StringArray

		err = rows.Scan(
			&id,
			&response.Name,
			&response.Phone,
			&response.Vehicle,
			&status,
			&daysOff,
			&response.TotalDeliveries,
			&response.Rating,
		)
		if err != nil {
			return nil, err
		}

		driverID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		response.ID = driverID

		driverStatus, statusErr := driver.StatusFromString(status)
		if statusErr != nil {
			return nil, statusErr
		}
		response.Status = driverStatus
		response.DaysOff = daysOff

		drivers = append(drivers, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return drivers, nil
}
