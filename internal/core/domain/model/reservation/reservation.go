package reservation

import (
	"errors"
	"fmt"
	"time"

	"github.com/Pandalivraison/ALOUETTE/internal/core/domain/model/kernel"
	"github.com/Pandalivraison/ALOUETTE/internal/pkg/errs"
)

// Wire formats for calendar fields. Times are the "HH:MM" slot labels
// customers pick from; dates are plain calendar days.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

var (
	// ErrReservationIsNotConstructed is returned when a Reservation was not
	// created through NewReservation or RestoreReservation.
	ErrReservationIsNotConstructed = errors.New("Reservation must be created via NewReservation constructor")

	// ErrCustomerNameIsRequired is returned when submitting without a customer name.
	ErrCustomerNameIsRequired = errs.NewValueIsRequiredError("customerName")

	// ErrEndTimeIsRequired is returned when privatizing the space without an end time.
	ErrEndTimeIsRequired = errs.NewValueIsRequiredError("endTime")
)

// Reservation is the aggregate root for a booking request.
//
// The customer fields (name, phone, WhatsApp preference, address) are a
// snapshot taken at submission time, not a reference to the customer
// record: later profile edits must not rewrite booking history.
//
// Invariants:
//   - guests ≥ 1
//   - valid date and start time
//   - espace bookings have guests ≥ EspaceMinGuests and an end time
//     strictly after the start time
//   - when an end time is present it is strictly after the start time
//   - status follows Pending → {Confirmed, Cancelled}, both terminal
type Reservation struct {
	id           kernel.UUID
	customerName string
	phone        kernel.Phone
	whatsApp     bool
	address      string
	date         string
	startTime    string
	endTime      string
	guests       int
	status       Status
	kind         Kind

	isConstructed bool
}

// NewReservation creates a pending reservation request.
// endTime may be empty for table bookings.
func NewReservation(
	id kernel.UUID,
	customerName string,
	phone kernel.Phone,
	whatsApp bool,
	address string,
	date string,
	startTime string,
	endTime string,
	guests int,
	kind Kind,
) (*Reservation, error) {
	r := &Reservation{
		whatsApp:      whatsApp,
		address:       address,
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		r.setID(id),
		r.setCustomerName(customerName),
		r.setPhone(phone),
		r.setSchedule(date, startTime, endTime),
		r.setParty(guests, kind),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreReservation reconstructs a reservation from persistence,
// including its terminal status.
func RestoreReservation(
	id kernel.UUID,
	customerName string,
	phone kernel.Phone,
	whatsApp bool,
	address string,
	date string,
	startTime string,
	endTime string,
	guests int,
	status Status,
	kind Kind,
) (*Reservation, error) {
	r, err := NewReservation(id, customerName, phone, whatsApp, address, date, startTime, endTime, guests, kind)
	if err != nil {
		return nil, err
	}

	if err := status.Validate(); err != nil {
		return nil, err
	}

	r.status = status
	return r, nil
}

// Validate ensures the Reservation was built through a factory function.
func (r *Reservation) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrReservationIsNotConstructed
	}
	return nil
}

// IsEqual compares two reservations by identifier.
func (r *Reservation) IsEqual(other *Reservation) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// ID returns the reservation's unique identifier.
func (r *Reservation) ID() kernel.UUID {
	return r.id
}

// CustomerName returns the snapshotted customer name.
func (r *Reservation) CustomerName() string {
	return r.customerName
}

// Phone returns the snapshotted contact number.
func (r *Reservation) Phone() kernel.Phone {
	return r.phone
}

// WhatsApp reports the snapshotted contact preference.
func (r *Reservation) WhatsApp() bool {
	return r.whatsApp
}

// Address returns the snapshotted customer address.
func (r *Reservation) Address() string {
	return r.address
}

// Date returns the calendar day in DateLayout form.
func (r *Reservation) Date() string {
	return r.date
}

// StartTime returns the arrival slot in TimeLayout form.
func (r *Reservation) StartTime() string {
	return r.startTime
}

// EndTime returns the end slot, or "" when none was requested.
func (r *Reservation) EndTime() string {
	return r.endTime
}

// Guests returns the party size.
func (r *Reservation) Guests() int {
	return r.guests
}

// Status returns the current lifecycle status.
func (r *Reservation) Status() Status {
	return r.status
}

// Kind returns the reservation type.
func (r *Reservation) Kind() Kind {
	return r.kind
}

// Confirm moves a pending reservation to Confirmed. Terminal
// reservations reject the call and remain untouched.
func (r *Reservation) Confirm() error {
	newStatus, err := r.status.Confirm()
	if err != nil {
		return err
	}

	r.status = newStatus
	return nil
}

// Cancel moves a pending reservation to Cancelled. Terminal
// reservations reject the call and remain untouched.
func (r *Reservation) Cancel() error {
	newStatus, err := r.status.Cancel()
	if err != nil {
		return err
	}

	r.status = newStatus
	return nil
}

func (r *Reservation) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Reservation) setCustomerName(name string) error {
	if name == "" {
		return ErrCustomerNameIsRequired
	}
	r.customerName = name
	return nil
}

func (r *Reservation) setPhone(phone kernel.Phone) error {
	if err := phone.Validate(); err != nil {
		return err
	}
	r.phone = phone
	return nil
}

func (r *Reservation) setSchedule(date, startTime, endTime string) error {
	if _, err := time.Parse(DateLayout, date); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("date", err)
	}

	start, err := time.Parse(TimeLayout, startTime)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("startTime", err)
	}

	if endTime != "" {
		end, endErr := time.Parse(TimeLayout, endTime)
		if endErr != nil {
			return errs.NewValueIsInvalidErrorWithCause("endTime", endErr)
		}
		if !end.After(start) {
			return errs.NewValueIsInvalidErrorWithCause(
				"endTime",
				fmt.Errorf("%s is not after %s", endTime, startTime),
			)
		}
	}

	r.date = date
	r.startTime = startTime
	r.endTime = endTime
	return nil
}

func (r *Reservation) setParty(guests int, kind Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}

	if guests <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("guests", fmt.Errorf("%d is not greater than 0", guests))
	}

	if kind == Espace {
		if guests < EspaceMinGuests {
			return errs.NewValueIsOutOfRangeError("guests", guests, EspaceMinGuests, maxGuests)
		}
		if r.endTime == "" {
			return ErrEndTimeIsRequired
		}
	}

	r.guests = guests
	r.kind = kind
	return nil
}

// maxGuests bounds the out-of-range error message; the room cannot
// seat more anyway.
const maxGuests = 100
