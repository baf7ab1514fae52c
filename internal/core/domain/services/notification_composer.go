package services

import (
	"strconv"

	"github.com/Pandalivraison/ALOUETTE/internal/core/domain/model/order"
	"github.com/Pandalivraison/ALOUETTE/internal/core/domain/model/reservation"
	"github.com/Pandalivraison/ALOUETTE/internal/core/domain/model/template"
)

// Fallbacks used when the customer or driver behind a notification is
// unknown, so the message still reads naturally.
const (
	UnknownCustomerName = "Cher client"
	UnknownDriverName   = "un de nos livreurs"
)

// NotificationComposer is a domain service that turns lifecycle events
// into customer-facing message texts.
//
// It binds a template's placeholders to the event's data:
//
//	{{nom}}      customer name, or UnknownCustomerName
//	{{id}}       order identifier
//	{{total}}    order total in dinars
//	{{livreur}}  driver name, or UnknownDriverName
//	{{date}}     reservation date
//	{{heure}}    reservation start time
//	{{fin_info}} " jusqu'à <end>" for a private space booking with an
//	             end time, empty otherwise
//
// Composing is pure: the composer never sends anything and never
// touches storage. Callers pick the template and collaborators hand
// the text to the messaging gateway.
type NotificationComposer struct{}

// NewNotificationComposer creates a new NotificationComposer instance.
func NewNotificationComposer() NotificationComposer {
	return NotificationComposer{}
}

// ComposeForOrder renders an order lifecycle message. customerName and
// driverName may be empty when the related record is unknown.
func (c NotificationComposer) ComposeForOrder(
	tpl template.Template,
	ord *order.Order,
	customerName string,
	driverName string,
) (string, error) {
	if err := tpl.Validate(); err != nil {
		return "", err
	}

	if err := ord.Validate(); err != nil {
		return "", err
	}

	if customerName == "" {
		customerName = UnknownCustomerName
	}

	if driverName == "" {
		driverName = UnknownDriverName
	}

	return tpl.Render(map[string]string{
		"nom":     customerName,
		"id":      ord.ID().String(),
		"total":   strconv.Itoa(ord.Total()),
		"livreur": driverName,
	}), nil
}

// ComposeForReservation renders a reservation lifecycle message using
// the customer snapshot carried by the reservation itself.
func (c NotificationComposer) ComposeForReservation(
	tpl template.Template,
	res *reservation.Reservation,
) (string, error) {
	if err := tpl.Validate(); err != nil {
		return "", err
	}

	if err := res.Validate(); err != nil {
		return "", err
	}

	name := res.CustomerName()
	if name == "" {
		name = UnknownCustomerName
	}

	finInfo := ""
	if res.Kind() == reservation.Espace && res.EndTime() != "" {
		finInfo = " jusqu'à " + res.EndTime()
	}

	return tpl.Render(map[string]string{
		"nom":      name,
		"date":     res.Date(),
		"heure":    res.StartTime(),
		"fin_info": finInfo,
	}), nil
}
