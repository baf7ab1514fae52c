// Package customerrepo provides data transfer objects and mapping functions for customer persistence.
// Customers are keyed by phone number rather than a generated identifier.
package customerrepo

import (
	"github.com/Pandalivraison/ALOUETTE/internal/core/domain/model/customer"
	"github.com/Pandalivraison/ALOUETTE/internal/core/domain/model/kernel"
)

// CustomerDTO represents the database structure for persisting customer aggregates.
type CustomerDTO struct {
	Phone    string `gorm:"primaryKey"`
	Name     string
	Address  string
	WhatsApp bool
	IsAdmin  bool
}

// TableName specifies the database table name for customer entities.
func (CustomerDTO) TableName() string {
	return "customers"
}

func fromDomain(aggregate *customer.Customer) CustomerDTO {
	return CustomerDTO{
		Phone:    aggregate.Phone().String(),
		Name:     aggregate.Name(),
		Address:  aggregate.Address(),
		WhatsApp: aggregate.WhatsApp(),
		IsAdmin:  aggregate.IsAdmin(),
	}
}

func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	phone, err := kernel.NewPhone(dto.Phone)
	if err != nil {
		return nil, err
	}

	return customer.RestoreCustomer(phone, dto.Name, dto.Address, dto.WhatsApp, dto.IsAdmin)
}
