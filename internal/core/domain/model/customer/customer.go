package customer

import (
	"errors"

	"github.com/Pandalivraison/ALOUETTE/internal/core/domain/model/kernel"
	"github.com/Pandalivraison/ALOUETTE/internal/pkg/errs"
)

var (
	// ErrCustomerIsNotConstructed is returned when a Customer was not
	// created through NewCustomer or RestoreCustomer.
	ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

	// ErrCustomerNameIsRequired is returned when the profile name is empty.
	ErrCustomerNameIsRequired = errs.NewValueIsRequiredError("name")
)

// Customer is the profile of a known caller, keyed by phone number.
// Admin accounts use the same record with the isAdmin flag set.
type Customer struct {
	phone    kernel.Phone
	name     string
	address  string
	whatsApp bool
	isAdmin  bool

	isConstructed bool
}

// NewCustomer creates a regular customer profile.
func NewCustomer(phone kernel.Phone, name string, address string, whatsApp bool) (*Customer, error) {
	return RestoreCustomer(phone, name, address, whatsApp, false)
}

// RestoreCustomer reconstructs a profile from persistence.
func RestoreCustomer(phone kernel.Phone, name string, address string, whatsApp bool, isAdmin bool) (*Customer, error) {
	if err := phone.Validate(); err != nil {
		return nil, err
	}

	if name == "" {
		return nil, ErrCustomerNameIsRequired
	}

	return &Customer{
		phone:         phone,
		name:          name,
		address:       address,
		whatsApp:      whatsApp,
		isAdmin:       isAdmin,
		isConstructed: true,
	}, nil
}

// Validate ensures the Customer was built through a factory function.
func (c *Customer) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCustomerIsNotConstructed
	}
	return nil
}

// IsEqual compares two customers by phone number.
func (c *Customer) IsEqual(other *Customer) bool {
	return other != nil && c.phone.IsEqual(other.phone)
}

// Phone returns the customer's identifying phone number.
func (c *Customer) Phone() kernel.Phone {
	return c.phone
}

// Name returns the customer's display name.
func (c *Customer) Name() string {
	return c.name
}

// Address returns the delivery address, possibly empty.
func (c *Customer) Address() string {
	return c.address
}

// WhatsApp reports whether the customer prefers WhatsApp over SMS.
func (c *Customer) WhatsApp() bool {
	return c.whatsApp
}

// IsAdmin reports whether the account has staff privileges.
func (c *Customer) IsAdmin() bool {
	return c.isAdmin
}

// UpdateProfile replaces the customer's editable fields.
func (c *Customer) UpdateProfile(name string, address string, whatsApp bool) error {
	if name == "" {
		return ErrCustomerNameIsRequired
	}

	c.name = name
	c.address = address
	c.whatsApp = whatsApp
	return nil
}
