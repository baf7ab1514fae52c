// Package menurepo provides data transfer objects and mapping functions for menu item persistence.
package menurepo

import (
	"github.com/Pandalivraison/ALOUETTE/internal/core/domain/model/kernel"
	"github.com/Pandalivraison/ALOUETTE/internal/core/domain/model/menu"

	"github.com/google/uuid"
)

// MenuItemDTO represents the database structure for persisting menu items.
// Price is stored in whole dinars.
type MenuItemDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string
	Description string
	Price       int
	Category    string `gorm:"index"`
	ImageURL    string
}

// TableName specifies the database table name for menu items.
func (MenuItemDTO) TableName() string {
	return "menu_items"
}

func fromDomain(aggregate *menu.Item) MenuItemDTO {
	return MenuItemDTO{
		ID:          aggregate.ID().Bytes(),
		Name:        aggregate.Name(),
		Description: aggregate.Description(),
		Price:       aggregate.Price(),
		Category:    aggregate.Category().String(),
		ImageURL:    aggregate.ImageURL(),
	}
}

func toDomain(dto MenuItemDTO) (*menu.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	category, err := menu.CategoryFromString(dto.Category)
	if err != nil {
		return nil, err
	}

	return menu.RestoreItem(id, dto.Name, dto.Description, dto.Price, category, dto.ImageURL)
}
