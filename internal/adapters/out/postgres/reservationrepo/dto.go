// Package reservationrepo provides data transfer objects and mapping functions
// for reservation persistence.
package reservationrepo

import (
	"github.com/Pandalivraison/ALOUETTE/internal/core/domain/model/kernel"
	"github.com/Pandalivraison/ALOUETTE/internal/core/domain/model/reservation"

	"github.com/google/uuid"
)

// ReservationDTO represents the database structure for persisting reservation aggregates.
// Date and times keep the aggregate's canonical string forms so ordering by
// date and start_time works lexicographically.
type ReservationDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerName string
	Phone        string `gorm:"index"`
	WhatsApp     bool
	Address      string
	Date         string `gorm:"index"`
	StartTime    string
	EndTime      string
	Guests       int
	Status       string `gorm:"index"`
	Kind         string
}

// TableName specifies the database table name for reservation entities.
func (ReservationDTO) TableName() string {
	return "reservations"
}

func fromDomain(aggregate *reservation.Reservation) ReservationDTO {
	return ReservationDTO{
		ID:           aggregate.ID().Bytes(),
		CustomerName: aggregate.CustomerName(),
		Phone:        aggregate.Phone().String(),
		WhatsApp:     aggregate.WhatsApp(),
		Address:      aggregate.Address(),
		Date:         aggregate.Date(),
		StartTime:    aggregate.StartTime(),
		EndTime:      aggregate.EndTime(),
		Guests:       aggregate.Guests(),
		Status:       aggregate.Status().String(),
		Kind:         aggregate.Kind().String(),
	}
}

func toDomain(dto ReservationDTO) (*reservation.Reservation, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	phone, err := kernel.NewPhone(dto.Phone)
	if err != nil {
		return nil, err
	}

	status, err := reservation.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	kind, err := reservation.KindFromString(dto.Kind)
	if err != nil {
		return nil, err
	}

	return reservation.RestoreReservation(
		id,
		dto.CustomerName,
		phone,
		dto.WhatsApp,
		dto.Address,
		dto.Date,
		dto.StartTime,
		dto.EndTime,
		dto.Guests,
		status,
		kind,
	)
}
