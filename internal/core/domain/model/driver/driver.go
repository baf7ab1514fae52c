package driver

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Pandalivraison/ALOUETTE/internal/core/domain/model/kernel"
	"github.com/Pandalivraison/ALOUETTE/internal/pkg/errs"
)

const newDriverRating = 5

var (
	// ErrNameIsRequired is returned when attempting to create a driver without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")

	// ErrDriverIsNotConstructed is returned when using an improperly initialized Driver.
	ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver constructor")

	// ErrDriverIsNotAvailable is returned when assigning a delivery to a driver
	// who is busy or off.
	ErrDriverIsNotAvailable = errors.New("driver is not available")

	// ErrDriverIsNotBusy is returned when finishing a delivery for a driver
	// who has none in progress.
	ErrDriverIsNotBusy = errors.New("driver has no delivery in progress")
)

// Driver is the aggregate root for a delivery agent (livreur).
// It owns the availability state machine, the rest-day calendar and the
// cumulative delivery stats. Orders hold drivers by identifier only;
// all mutation of a driver's state goes through this aggregate.
//
// Business rules:
//   - a delivery can only be taken while Available, and taking it
//     makes the driver Busy until the order completes
//   - completing a delivery frees the driver and increments
//     totalDeliveries by exactly one
//   - rest days only toggle between Available and Off; a busy driver
//     finishes the run first
//   - new drivers start Available with a rating of 5
type Driver struct {
	id              kernel.UUID
	name            string
	phone           kernel.Phone
	vehicle         string
	status          Status
	daysOff         []string
	totalDeliveries int
	rating          float64

	isConstructed bool
}

// NewDriver creates an available driver with fresh stats. daysOff holds
// free-form weekday names ("Lundi", "Mardi"); empty entries are dropped.
func NewDriver(id kernel.UUID, name string, phone kernel.Phone, vehicle string, daysOff []string) (*Driver, error) {
	d := &Driver{
		vehicle:       vehicle,
		status:        Available,
		rating:        newDriverRating,
		isConstructed: true,
	}
	d.setDaysOff(daysOff)

	if err := errors.Join(
		d.setID(id),
		d.setName(name),
		d.setPhone(phone),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDriver reconstructs a driver from persistence with its full
// operational state.
func RestoreDriver(
	id kernel.UUID,
	name string,
	phone kernel.Phone,
	vehicle string,
	status Status,
	daysOff []string,
	totalDeliveries int,
	rating float64,
) (*Driver, error) {
	d := &Driver{
		vehicle:       vehicle,
		rating:        rating,
		isConstructed: true,
	}
	d.setDaysOff(daysOff)

	if err := errors.Join(
		d.setID(id),
		d.setName(name),
		d.setPhone(phone),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	if totalDeliveries < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"totalDeliveries",
			fmt.Errorf("%d is negative", totalDeliveries),
		)
	}

	d.status = status
	d.totalDeliveries = totalDeliveries
	return d, nil
}

// Validate ensures the Driver was built through a factory function.
func (d *Driver) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDriverIsNotConstructed
	}
	return nil
}

// IsEqual compares two drivers by identifier.
func (d *Driver) IsEqual(other *Driver) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the driver's unique identifier.
func (d *Driver) ID() kernel.UUID {
	return d.id
}

// Name returns the driver's display name.
func (d *Driver) Name() string {
	return d.name
}

// Phone returns the driver's contact number.
func (d *Driver) Phone() kernel.Phone {
	return d.phone
}

// Vehicle returns the free-form vehicle descriptor.
func (d *Driver) Vehicle() string {
	return d.vehicle
}

// Status returns the driver's current availability.
func (d *Driver) Status() Status {
	return d.status
}

// DaysOff returns the driver's rest-day names.
func (d *Driver) DaysOff() []string {
	return d.daysOff
}

// TotalDeliveries returns how many orders the driver has completed.
func (d *Driver) TotalDeliveries() int {
	return d.totalDeliveries
}

// Rating returns the driver's rating.
func (d *Driver) Rating() float64 {
	return d.rating
}

// IsAvailable reports whether the driver can take an order right now.
func (d *Driver) IsAvailable() bool {
	return d.status == Available
}

// RestsOn reports whether the given weekday name is one of the
// driver's rest days. The comparison is case-insensitive because the
// calendar is typed in by hand.
func (d *Driver) RestsOn(day string) bool {
	for _, off := range d.daysOff {
		if strings.EqualFold(off, day) {
			return true
		}
	}
	return false
}

// TakeDelivery marks the driver busy for a dispatched order.
// Rejected unless the driver is Available at call time; this is the
// compare-and-set half of the "one order per driver" rule, the other
// half being the transaction the caller runs it in.
func (d *Driver) TakeDelivery() error {
	if d.status != Available {
		return ErrDriverIsNotAvailable
	}

	d.status = Busy
	return nil
}

// CompleteDelivery frees the driver and records the finished run in
// the stats. Called exactly once per order, when it completes.
func (d *Driver) CompleteDelivery() error {
	if d.status != Busy {
		return ErrDriverIsNotBusy
	}

	d.status = Available
	d.totalDeliveries++
	return nil
}

// StartRestDay puts an available driver off duty. Busy drivers are
// left alone; the rest day starts once the delivery is done.
func (d *Driver) StartRestDay() error {
	if d.status != Available {
		return ErrDriverIsNotAvailable
	}

	d.status = Off
	return nil
}

// EndRestDay brings a driver back from a rest day.
// No-op if the driver was not off.
func (d *Driver) EndRestDay() {
	if d.status == Off {
		d.status = Available
	}
}

// UpdateProfile replaces name, phone, vehicle and rest days in one
// administrative edit. Availability and stats are untouched.
func (d *Driver) UpdateProfile(name string, phone kernel.Phone, vehicle string, daysOff []string) error {
	if err := errors.Join(
		d.setName(name),
		d.setPhone(phone),
	); err != nil {
		return err
	}

	d.vehicle = vehicle
	d.setDaysOff(daysOff)
	return nil
}

func (d *Driver) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Driver) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	d.name = name
	return nil
}

func (d *Driver) setPhone(phone kernel.Phone) error {
	if err := phone.Validate(); err != nil {
		return err
	}
	d.phone = phone
	return nil
}

func (d *Driver) setDaysOff(daysOff []string) {
	cleaned := make([]string, 0, len(daysOff))
	for _, day := range daysOff {
		if trimmed := strings.TrimSpace(day); trimmed != "" {
			cleaned = append(cleaned, trimmed)
		}
	}
	d.daysOff = cleaned
}
