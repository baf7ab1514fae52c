// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// An order spans two tables: the orders row carries the lifecycle state and the
// order_lines rows carry the priced snapshot taken at checkout.
package orderrepo

import (
	"time"

	"github.com/Pandalivraison/ALOUETTE/internal/core/domain/model/kernel"
	"github.com/Pandalivraison/ALOUETTE/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Status is stored as its string form so rows stay readable and stable
// across releases.
type OrderDTO struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CustomerPhone string     `gorm:"index"`
	Status        string     `gorm:"index"`
	DriverID      *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt     time.Time
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderLineDTO represents one priced line of an order. Position preserves
// the line order the customer built the cart in.
type OrderLineDTO struct {
	OrderID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position   int       `gorm:"primaryKey"`
	MenuItemID uuid.UUID `gorm:"type:uuid"`
	Quantity   int
	UnitPrice  int
}

// TableName specifies the database table name for order lines.
func (OrderLineDTO) TableName() string {
	return "order_lines"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) (OrderDTO, []OrderLineDTO) {
	var driverID *uuid.UUID
	if id := aggregate.Driver(); id != nil {
		raw := id.Bytes()
		driverID = &raw
	}

	dto := OrderDTO{
		ID:            aggregate.ID().Bytes(),
		CustomerPhone: aggregate.CustomerPhone().String(),
		Status:        aggregate.Status().String(),
		DriverID:      driverID,
		CreatedAt:     aggregate.CreatedAt(),
	}

	lines := make([]OrderLineDTO, 0, len(aggregate.Lines()))
	for i, line := range aggregate.Lines() {
		lines = append(lines, OrderLineDTO{
			OrderID:    dto.ID,
			Position:   i,
			MenuItemID: line.MenuItemID().Bytes(),
			Quantity:   line.Quantity(),
			UnitPrice:  line.UnitPrice(),
		})
	}

	return dto, lines
}

// toDomain converts database DTOs to an order domain aggregate.
// Reconstructs the complete aggregate including status and driver assignment using RestoreOrder.
func toDomain(dto OrderDTO, lineDTOs []OrderLineDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	phone, err := kernel.NewPhone(dto.CustomerPhone)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var driverID *kernel.UUID
	if dto.DriverID != nil {
		dID, driverErr := kernel.UUIDFromBytes((*dto.DriverID)[:])
		if driverErr != nil {
			return nil, driverErr
		}

		driverID = &dID
	}

	lines := make([]order.Line, 0, len(lineDTOs))
	for _, lineDTO := range lineDTOs {
		itemID, lineErr := kernel.UUIDFromBytes(lineDTO.MenuItemID[:])
		if lineErr != nil {
			return nil, lineErr
		}

		line, lineErr := order.NewLine(itemID, lineDTO.Quantity, lineDTO.UnitPrice)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	return order.RestoreOrder(id, phone, lines, status, driverID, dto.CreatedAt)
}
