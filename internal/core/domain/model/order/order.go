package order

import (
	"errors"
	"time"

	"github.com/Pandalivraison/ALOUETTE/internal/core/domain/model/kernel"
	"github.com/Pandalivraison/ALOUETTE/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory functions.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderHasNoLines is returned when attempting to create an order with no lines.
	ErrOrderHasNoLines = errs.NewValueIsRequiredError("lines")

	// ErrDriverIsRequired is returned when dispatching an order without a driver.
	ErrDriverIsRequired = errs.NewValueIsRequiredError("driverId")
)

// Order is the aggregate root for a customer's purchase. It owns the
// status state machine and the driver reference, and is an append-only
// record: orders are created at checkout and advanced, never deleted.
//
// Invariants:
//   - valid unique identifier and customer phone
//   - at least one line, each with positive quantity
//   - status follows Pending → Preparing → Delivering → Completed
//   - a driver is referenced exactly from Delivering onwards, and the
//     reference is retained through Completed
//
// The driver is held by identifier only. The driver aggregate is owned
// elsewhere; deleting a driver mid-flight leaves a tolerated orphaned
// reference here.
type Order struct {
	id            kernel.UUID
	customerPhone kernel.Phone
	lines         []Line
	status        Status
	driverID      *kernel.UUID
	createdAt     time.Time

	isConstructed bool
}

// NewOrder creates a pending order from priced lines. The creation
// time is passed in rather than read from the clock so that checkout
// stays deterministic under test.
func NewOrder(id kernel.UUID, customerPhone kernel.Phone, lines []Line, createdAt time.Time) (*Order, error) {
	order := &Order{
		status:        Pending,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerPhone(customerPhone),
		order.setLines(lines),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an order from persistence, including its
// status and driver reference. The status/driver consistency rule is
// re-checked so corrupt rows cannot resurrect an impossible state.
func RestoreOrder(
	id kernel.UUID,
	customerPhone kernel.Phone,
	lines []Line,
	status Status,
	driverID *kernel.UUID,
	createdAt time.Time,
) (*Order, error) {
	order := &Order{
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerPhone(customerPhone),
		order.setLines(lines),
		status.Validate(),
		status.ValidateCanHaveDriver(driverID != nil),
	); err != nil {
		return nil, err
	}

	if driverID != nil {
		if err := driverID.Validate(); err != nil {
			return nil, err
		}
	}

	order.status = status
	order.driverID = driverID
	return order, nil
}

// Validate ensures the Order was built through a factory function.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerPhone returns the phone number notifications are addressed to.
func (o *Order) CustomerPhone() kernel.Phone {
	return o.customerPhone
}

// Lines returns the order's positions with their price snapshots.
func (o *Order) Lines() []Line {
	return o.lines
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Driver returns the assigned driver's ID, or nil before dispatch.
func (o *Order) Driver() *kernel.UUID {
	return o.driverID
}

// CreatedAt returns the checkout timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Total returns the sum of quantity × snapshotted unit price over all
// lines. Stable for the lifetime of the order.
func (o *Order) Total() int {
	total := 0
	for _, line := range o.lines {
		total += line.Subtotal()
	}
	return total
}

// Prepare moves the order from Pending to Preparing.
// Any other source status is rejected and the order is left unchanged.
func (o *Order) Prepare() error {
	newStatus, err := o.status.Prepare()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Dispatch moves the order from Preparing to Delivering and records
// the driver taking it. The driver's availability is the caller's
// concern (checked against the driver aggregate in the same
// transaction); this method only enforces the order-side rules.
func (o *Order) Dispatch(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return ErrDriverIsRequired
	}

	newStatus, err := o.status.Dispatch()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.driverID = &driverID
	return nil
}

// Complete moves the order from Delivering to Completed. The driver
// reference is retained for the record.
func (o *Order) Complete() error {
	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerPhone(phone kernel.Phone) error {
	if err := phone.Validate(); err != nil {
		return err
	}
	o.customerPhone = phone
	return nil
}

func (o *Order) setLines(lines []Line) error {
	if len(lines) == 0 {
		return ErrOrderHasNoLines
	}
	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return err
		}
	}
	o.lines = lines
	return nil
}
