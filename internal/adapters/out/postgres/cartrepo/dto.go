// Package cartrepo provides data transfer objects and mapping functions for cart persistence.
// A cart is stored purely as its lines, so an emptied cart leaves no
// rows behind and reads back as absent.
package cartrepo

import (
	"github.com/Pandalivraison/ALOUETTE/internal/core/domain/model/cart"
	"github.com/Pandalivraison/ALOUETTE/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CartLineDTO represents one line of a customer's cart. Position preserves
// insertion order for display.
type CartLineDTO struct {
	Phone      string    `gorm:"primaryKey"`
	Position   int       `gorm:"primaryKey"`
	MenuItemID uuid.UUID `gorm:"type:uuid"`
	Quantity   int
}

// TableName specifies the database table name for cart lines.
func (CartLineDTO) TableName() string {
	return "cart_lines"
}

func fromDomain(aggregate *cart.Cart) []CartLineDTO {
	lines := aggregate.Lines()
	dtos := make([]CartLineDTO, 0, len(lines))
	for i, line := range lines {
		dtos = append(dtos, CartLineDTO{
			Phone:      aggregate.Phone().String(),
			Position:   i,
			MenuItemID: line.MenuItemID().Bytes(),
			Quantity:   line.Quantity(),
		})
	}
	return dtos
}

func toDomain(phone kernel.Phone, dtos []CartLineDTO) (*cart.Cart, error) {
	lines := make([]cart.Line, 0, len(dtos))
	for _, dto := range dtos {
		itemID, err := kernel.UUIDFromBytes(dto.MenuItemID[:])
		if err != nil {
			return nil, err
		}
		lines = append(lines, cart.RestoreLine(itemID, dto.Quantity))
	}

	return cart.RestoreCart(phone, lines)
}
