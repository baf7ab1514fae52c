package cmd

import (
	"github.com/Pandalivraison/ALOUETTE/internal/adapters/out/postgres/cartrepo"
	"github.com/Pandalivraison/ALOUETTE/internal/adapters/out/postgres/customerrepo"
	"github.com/Pandalivraison/ALOUETTE/internal/adapters/out/postgres/driverrepo"
	"github.com/Pandalivraison/ALOUETTE/internal/adapters/out/postgres/menurepo"
	"github.com/Pandalivraison/ALOUETTE/internal/adapters/out/postgres/orderrepo"
	"github.com/Pandalivraison/ALOUETTE/internal/adapters/out/postgres/reservationrepo"
	"github.com/Pandalivraison/ALOUETTE/internal/adapters/out/postgres/templaterepo"

	"gorm.io/gorm"
)

// MigrateDB creates or updates the schema for every persistence DTO.
func MigrateDB(db *gorm.DB) error {
	return db.AutoMigrate(
		&menurepo.MenuItemDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderLineDTO{},
		&reservationrepo.ReservationDTO{},
		&driverrepo.DriverDTO{},
		&customerrepo.CustomerDTO{},
		&cartrepo.CartLineDTO{},
		&templaterepo.TemplateDTO{},
	)
}
