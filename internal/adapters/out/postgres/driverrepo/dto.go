// Package driverrepo provides data transfer objects and mapping functions for driver persistence.
package driverrepo

import (
	"github.com/Pandalivraison/ALOUETTE/internal/core/domain/model/driver"
	"github.com/Pandalivraison/ALOUETTE/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// DriverDTO represents the database structure for persisting driver aggregates.
// DaysOff is a native text array holding French weekday names.
type DriverDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name            string
	Phone           string
	Vehicle         string
	Status          string         `gorm:"index"`
	DaysOff         pq.StringArray `gorm:"type:text[]"`
	TotalDeliveries int
	Rating          float64
}

// TableName specifies the database table name for driver entities.
func (DriverDTO) TableName() string {
	return "drivers"
}

func fromDomain(aggregate *driver.Driver) DriverDTO {
	return DriverDTO{
		ID:              aggregate.ID().Bytes(),
		Name:            aggregate.Name(),
		Phone:           aggregate.Phone().String(),
		Vehicle:         aggregate.Vehicle(),
		Status:          aggregate.Status().String(),
		DaysOff:         pq.StringArray(aggregate.DaysOff()),
		TotalDeliveries: aggregate.TotalDeliveries(),
		Rating:          aggregate.Rating(),
	}
}

func toDomain(dto DriverDTO) (*driver.Driver, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	phone, err := kernel.NewPhone(dto.Phone)
	if err != nil {
		return nil, err
	}

	status, err := driver.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return driver.RestoreDriver(
		id,
		dto.Name,
		phone,
		dto.Vehicle,
		status,
		[]string(dto.DaysOff),
		dto.TotalDeliveries,
		dto.Rating,
	)
}
