package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pandalivraison/ALOUETTE/internal/core/domain/model/kernel"
	"github.com/Pandalivraison/ALOUETTE/internal/core/domain/model/order"
	"github.com/Pandalivraison/ALOUETTE/internal/core/domain/model/reservation"
	"github.com/Pandalivraison/ALOUETTE/internal/core/domain/model/template"
)

func orderPrototype(t *testing.T) *order.Order {
	t.Helper()

	phone, err := kernel.NewPhone("0550123456")
	require.NoError(t, err)

	line, err := order.NewLine(kernel.NewUUID(), 2, 600)
	require.NoError(t, err)

	ord, err := order.NewOrder(kernel.NewUUID(), phone, []order.Line{line}, time.Now())
	require.NoError(t, err)

	return ord
}

func reservationPrototype(t *testing.T, kind reservation.Kind, endTime string, guests int) *reservation.Reservation {
	t.Helper()

	phone, err := kernel.NewPhone("0661998877")
	require.NoError(t, err)

	res, err := reservation.NewReservation(
		kernel.NewUUID(), "Sarah K", phone, true, "Bab Ezzouar",
		"2026-09-20", "18:00", endTime, guests, kind,
	)
	require.NoError(t, err)

	return res
}

func Test_ComposeForOrder(t *testing.T) {
	// Arrange
	composer := NewNotificationComposer()
	ord := orderPrototype(t)
	tpl, err := template.NewTemplate(
		template.OrderDelivering,
		"{{nom}}, commande #{{id}} ({{total}} DA) livrée par {{livreur}}",
	)
	require.NoError(t, err)

	// Act
	got, err := composer.ComposeForOrder(tpl, ord, "Amine", "Karim")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "Amine, commande #"+ord.ID().String()+" (1200 DA) livrée par Karim", got)
}

func Test_ComposeForOrder_Fallbacks(t *testing.T) {
	// Arrange
	composer := NewNotificationComposer()
	ord := orderPrototype(t)
	tpl, err := template.NewTemplate(template.OrderDelivering, "{{nom}}: {{livreur}}")
	require.NoError(t, err)

	// Act
	got, err := composer.ComposeForOrder(tpl, ord, "", "")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "Cher client: un de nos livreurs", got)
}

func Test_ComposeForOrder_InvalidTemplate(t *testing.T) {
	// Arrange
	composer := NewNotificationComposer()

	// Act
	_, err := composer.ComposeForOrder(template.Template{}, orderPrototype(t), "Amine", "Karim")

	// Assert
	assert.ErrorIs(t, err, template.ErrTemplateIsNotConstructed)
}

func Test_ComposeForReservation_Espace(t *testing.T) {
	// Arrange
	composer := NewNotificationComposer()
	res := reservationPrototype(t, reservation.Espace, "23:00", 12)
	tpl, err := template.NewTemplate(
		template.ReservationConfirmation,
		"{{nom}}: le {{date}} à {{heure}}{{fin_info}}",
	)
	require.NoError(t, err)

	// Act
	got, err := composer.ComposeForReservation(tpl, res)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "Sarah K: le 2026-09-20 à 18:00 jusqu'à 23:00", got)
}

func Test_ComposeForReservation_TableHasNoEndInfo(t *testing.T) {
	// Arrange
	composer := NewNotificationComposer()
	res := reservationPrototype(t, reservation.Table, "", 4)
	tpl, err := template.NewTemplate(
		template.ReservationCancellation,
		"{{nom}}: le {{date}} à {{heure}}{{fin_info}}",
	)
	require.NoError(t, err)

	// Act
	got, err := composer.ComposeForReservation(tpl, res)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "Sarah K: le 2026-09-20 à 18:00", got)
}

func Test_ComposeForReservation_InvalidReservation(t *testing.T) {
	// Arrange
	composer := NewNotificationComposer()
	tpl, err := template.NewTemplate(template.ReservationConfirmation, "{{nom}}")
	require.NoError(t, err)

	// Act
	_, err = composer.ComposeForReservation(tpl, nil)

	// Assert
	assert.ErrorIs(t, err, reservation.ErrReservationIsNotConstructed)
}
