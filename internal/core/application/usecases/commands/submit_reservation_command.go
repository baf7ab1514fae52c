package commands

import (
	"errors"

	"github.com/Pandalivraison/ALOUETTE/internal/core/domain/model/kernel"
	"github.com/Pandalivraison/ALOUETTE/internal/core/domain/model/reservation"
	"github.com/Pandalivraison/ALOUETTE/internal/pkg/guard"
)

var ErrSubmitReservationCommandIsNotConstructed = errors.New(
	"SubmitReservationCommand must be created via NewSubmitReservationCommand constructor",
)

// SubmitReservationCommand represents a customer's booking request.
// The customer details are snapshotted onto the reservation; the full
// booking rules live on the aggregate.
type SubmitReservationCommand struct { //nolint:recvcheck //using for validation
	reservationID kernel.UUID
	customerName  string
	phone         kernel.Phone
	whatsApp      bool
	address       string
	date          string
	startTime     string
	endTime       string
	guests        int
	kind          reservation.Kind

	guard guard.ConstructorGuard
}

// NewSubmitReservationCommand creates a command to submit a booking request.
func NewSubmitReservationCommand(
	reservationID kernel.UUID,
	customerName string,
	phone kernel.Phone,
	whatsApp bool,
	address string,
	date string,
	startTime string,
	endTime string,
	guests int,
	kind reservation.Kind,
) (SubmitReservationCommand, error) {
	cmd := SubmitReservationCommand{
		customerName: customerName,
		whatsApp:     whatsApp,
		address:      address,
		date:         date,
		startTime:    startTime,
		endTime:      endTime,
		guests:       guests,
		kind:         kind,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setReservationID(reservationID),
		cmd.setPhone(phone),
	); err != nil {
		return SubmitReservationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitReservationCommand) Validate() error {
	return c.guard.Validate(ErrSubmitReservationCommandIsNotConstructed)
}

// ReservationID returns the identifier for the reservation being created.
func (c SubmitReservationCommand) ReservationID() kernel.UUID {
	return c.reservationID
}

// CustomerName returns the booking customer's name.
func (c SubmitReservationCommand) CustomerName() string {
	return c.customerName
}

// Phone returns the booking customer's phone number.
func (c SubmitReservationCommand) Phone() kernel.Phone {
	return c.phone
}

// WhatsApp reports the customer's contact preference.
func (c SubmitReservationCommand) WhatsApp() bool {
	return c.whatsApp
}

// Address returns the customer's address.
func (c SubmitReservationCommand) Address() string {
	return c.address
}

// Date returns the requested calendar day.
func (c SubmitReservationCommand) Date() string {
	return c.date
}

// StartTime returns the requested arrival slot.
func (c SubmitReservationCommand) StartTime() string {
	return c.startTime
}

// EndTime returns the requested end slot, possibly empty.
func (c SubmitReservationCommand) EndTime() string {
	return c.endTime
}

// Guests returns the party size.
func (c SubmitReservationCommand) Guests() int {
	return c.guests
}

// Kind returns the reservation type.
func (c SubmitReservationCommand) Kind() reservation.Kind {
	return c.kind
}

func (c *SubmitReservationCommand) setReservationID(reservationID kernel.UUID) error {
	if err := reservationID.Validate(); err != nil {
		return err
	}

	c.reservationID = reservationID
	return nil
}

func (c *SubmitReservationCommand) setPhone(phone kernel.Phone) error {
	if err := phone.Validate(); err != nil {
		return err
	}

	c.phone = phone
	return nil
}
