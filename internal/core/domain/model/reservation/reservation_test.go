package reservation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pandalivraison/ALOUETTE/internal/core/domain/model/kernel"
)

func tablePrototype(t *testing.T) *Reservation {
	t.Helper()

	phone, err := kernel.NewPhone("0550 12 34 56")
	require.NoError(t, err)

	res, err := NewReservation(
		kernel.NewUUID(),
		"Amine B",
		phone,
		true,
		"12 rue Didouche Mourad",
		"2026-09-14",
		"19:30",
		"",
		4,
		Table,
	)
	require.NoError(t, err)

	return res
}

func espacePrototype(t *testing.T) *Reservation {
	t.Helper()

	phone, err := kernel.NewPhone("0661998877")
	require.NoError(t, err)

	res, err := NewReservation(
		kernel.NewUUID(),
		"Sarah K",
		phone,
		false,
		"Cité 200 logements, Bab Ezzouar",
		"2026-09-20",
		"18:00",
		"23:00",
		12,
		Espace,
	)
	require.NoError(t, err)

	return res
}

func Test_NewReservation_Table(t *testing.T) {
	// Act
	res := tablePrototype(t)

	// Assert
	assert.NoError(t, res.Validate())
	assert.Equal(t, Pending, res.Status())
	assert.Equal(t, Table, res.Kind())
	assert.Equal(t, "Amine B", res.CustomerName())
	assert.Equal(t, "19:30", res.StartTime())
	assert.Empty(t, res.EndTime())
	assert.Equal(t, 4, res.Guests())
	assert.True(t, res.WhatsApp())
}

func Test_NewReservation_Espace(t *testing.T) {
	// Act
	res := espacePrototype(t)

	// Assert
	assert.NoError(t, res.Validate())
	assert.Equal(t, Espace, res.Kind())
	assert.Equal(t, "23:00", res.EndTime())
	assert.Equal(t, 12, res.Guests())
}

func Test_NewReservation_EmptyName(t *testing.T) {
	// Arrange
	phone, err := kernel.NewPhone("0550123456")
	require.NoError(t, err)

	// Act
	_, err = NewReservation(kernel.NewUUID(), "", phone, false, "", "2026-09-14", "19:30", "", 2, Table)

	// Assert
	assert.ErrorIs(t, err, ErrCustomerNameIsRequired)
}

func Test_NewReservation_InvalidDate(t *testing.T) {
	// Arrange
	phone, err := kernel.NewPhone("0550123456")
	require.NoError(t, err)

	// Act
	_, err = NewReservation(kernel.NewUUID(), "Amine B", phone, false, "", "14/09/2026", "19:30", "", 2, Table)

	// Assert
	assert.Error(t, err)
}

func Test_NewReservation_InvalidStartTime(t *testing.T) {
	// Arrange
	phone, err := kernel.NewPhone("0550123456")
	require.NoError(t, err)

	// Act
	_, err = NewReservation(kernel.NewUUID(), "Amine B", phone, false, "", "2026-09-14", "7pm", "", 2, Table)

	// Assert
	assert.Error(t, err)
}

func Test_NewReservation_EndBeforeStart(t *testing.T) {
	// Arrange
	phone, err := kernel.NewPhone("0661998877")
	require.NoError(t, err)

	// Act
	_, err = NewReservation(kernel.NewUUID(), "Sarah K", phone, false, "", "2026-09-20", "18:00", "17:00", 12, Espace)

	// Assert
	assert.Error(t, err)
}

func Test_NewReservation_ZeroGuests(t *testing.T) {
	// Arrange
	phone, err := kernel.NewPhone("0550123456")
	require.NoError(t, err)

	// Act
	_, err = NewReservation(kernel.NewUUID(), "Amine B", phone, false, "", "2026-09-14", "19:30", "", 0, Table)

	// Assert
	assert.Error(t, err)
}

func Test_NewReservation_EspaceTooFewGuests(t *testing.T) {
	// Arrange
	phone, err := kernel.NewPhone("0661998877")
	require.NoError(t, err)

	// Act
	_, err = NewReservation(kernel.NewUUID(), "Sarah K", phone, false, "", "2026-09-20", "18:00", "23:00", 5, Espace)

	// Assert
	assert.Error(t, err)
}

func Test_NewReservation_EspaceWithoutEndTime(t *testing.T) {
	// Arrange
	phone, err := kernel.NewPhone("0661998877")
	require.NoError(t, err)

	// Act
	_, err = NewReservation(kernel.NewUUID(), "Sarah K", phone, false, "", "2026-09-20", "18:00", "", 12, Espace)

	// Assert
	assert.ErrorIs(t, err, ErrEndTimeIsRequired)
}

func Test_Reservation_Confirm(t *testing.T) {
	// Arrange
	res := tablePrototype(t)

	// Act
	err := res.Confirm()

	// Assert
	require.NoError(t, err)
	assert.Equal(t, Confirmed, res.Status())
}

func Test_Reservation_Cancel(t *testing.T) {
	// Arrange
	res := tablePrototype(t)

	// Act
	err := res.Cancel()

	// Assert
	require.NoError(t, err)
	assert.Equal(t, Cancelled, res.Status())
}

func Test_Reservation_ConfirmTwice(t *testing.T) {
	// Arrange
	res := tablePrototype(t)
	require.NoError(t, res.Confirm())

	// Act
	err := res.Confirm()

	// Assert
	assert.Error(t, err)
	assert.Equal(t, Confirmed, res.Status())
}

func Test_Reservation_CancelAfterConfirm(t *testing.T) {
	// Arrange
	res := espacePrototype(t)
	require.NoError(t, res.Confirm())

	// Act
	err := res.Cancel()

	// Assert
	assert.Error(t, err)
	assert.Equal(t, Confirmed, res.Status())
}

func Test_RestoreReservation(t *testing.T) {
	// Arrange
	phone, err := kernel.NewPhone("0661998877")
	require.NoError(t, err)
	id := kernel.NewUUID()

	// Act
	res, err := RestoreReservation(
		id, "Sarah K", phone, false, "Bab Ezzouar",
		"2026-09-20", "18:00", "23:00", 12, Cancelled, Espace,
	)

	// Assert
	require.NoError(t, err)
	assert.True(t, id.IsEqual(res.ID()))
	assert.Equal(t, Cancelled, res.Status())
}

func Test_Reservation_Validate(t *testing.T) {
	// Arrange
	var nilRes *Reservation

	// Assert
	assert.ErrorIs(t, nilRes.Validate(), ErrReservationIsNotConstructed)
	assert.ErrorIs(t, (&Reservation{}).Validate(), ErrReservationIsNotConstructed)
	assert.NoError(t, tablePrototype(t).Validate())
}

func Test_Status_Transitions(t *testing.T) {
	tests := []struct {
		name    string
		move    func(Status) (Status, error)
		from    Status
		want    Status
		wantErr bool
	}{
		{"confirm pending", Status.Confirm, Pending, Confirmed, false},
		{"cancel pending", Status.Cancel, Pending, Cancelled, false},
		{"confirm confirmed", Status.Confirm, Confirmed, Confirmed, true},
		{"confirm cancelled", Status.Confirm, Cancelled, Cancelled, true},
		{"cancel confirmed", Status.Cancel, Confirmed, Confirmed, true},
		{"cancel cancelled", Status.Cancel, Cancelled, Cancelled, true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := test.move(test.from)
			if test.wantErr {
				assert.ErrorIs(t, err, ErrInvalidStatusTransition)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, test.want, got)
			}
		})
	}
}

func Test_KindFromString(t *testing.T) {
	tests := []struct {
		value   string
		want    Kind
		wantErr bool
	}{
		{"table", Table, false},
		{"espace", Espace, false},
		{"", Kind(0), true},
		{"salle", Kind(0), true},
	}

	for _, test := range tests {
		t.Run(test.value, func(t *testing.T) {
			got, err := KindFromString(test.value)
			if test.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, test.want, got)
		})
	}
}

func Test_StatusFromString(t *testing.T) {
	tests := []struct {
		value   string
		want    Status
		wantErr bool
	}{
		{"pending", Pending, false},
		{"confirmed", Confirmed, false},
		{"cancelled", Cancelled, false},
		{"done", Status(0), true},
	}

	for _, test := range tests {
		t.Run(test.value, func(t *testing.T) {
			got, err := StatusFromString(test.value)
			if test.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, test.want, got)
		})
	}
}
