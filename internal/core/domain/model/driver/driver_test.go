package driver_test

import (
	"testing"

	"github.com/Pandalivraison/ALOUETTE/internal/core/domain/model/driver"
	"github.com/Pandalivraison/ALOUETTE/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDriver(t *testing.T, daysOff ...string) *driver.Driver {
	t.Helper()
	phone, err := kernel.NewPhone("0555555555")
	require.NoError(t, err)
	d, err := driver.NewDriver(kernel.NewUUID(), "Ahmed Benali", phone, "Scooter", daysOff)
	require.NoError(t, err)
	return d
}

func TestNewDriver(t *testing.T) {
	t.Run("starts_available_with_fresh_stats", func(t *testing.T) {
		d := newDriver(t, "Lundi", "Mardi")

		require.NoError(t, d.Validate())
		assert.Equal(t, driver.Available, d.Status())
		assert.True(t, d.IsAvailable())
		assert.Equal(t, 0, d.TotalDeliveries())
		assert.Equal(t, 5.0, d.Rating())
		assert.Equal(t, []string{"Lundi", "Mardi"}, d.DaysOff())
	})

	t.Run("drops_blank_rest_days", func(t *testing.T) {
		d := newDriver(t, " Lundi ", "", "  ")

		assert.Equal(t, []string{"Lundi"}, d.DaysOff())
	})

	t.Run("rejects_empty_name", func(t *testing.T) {
		phone, err := kernel.NewPhone("0555555555")
		require.NoError(t, err)

		_, err = driver.NewDriver(kernel.NewUUID(), "", phone, "Scooter", nil)
		require.ErrorIs(t, err, driver.ErrNameIsRequired)
	})

	t.Run("rejects_zero_value_phone", func(t *testing.T) {
		var phone kernel.Phone
		_, err := driver.NewDriver(kernel.NewUUID(), "Ahmed Benali", phone, "Scooter", nil)
		require.Error(t, err)
	})

	t.Run("zero_value_driver_is_not_constructed", func(t *testing.T) {
		var d driver.Driver
		require.ErrorIs(t, d.Validate(), driver.ErrDriverIsNotConstructed)
	})
}

func TestDriver_Deliveries(t *testing.T) {
	t.Run("take_then_complete_round_trip", func(t *testing.T) {
		d := newDriver(t)

		require.NoError(t, d.TakeDelivery())
		assert.Equal(t, driver.Busy, d.Status())
		assert.False(t, d.IsAvailable())

		require.NoError(t, d.CompleteDelivery())
		assert.Equal(t, driver.Available, d.Status())
		assert.Equal(t, 1, d.TotalDeliveries())
	})

	t.Run("busy_driver_cannot_take_a_second_delivery", func(t *testing.T) {
		d := newDriver(t)
		require.NoError(t, d.TakeDelivery())

		err := d.TakeDelivery()

		require.ErrorIs(t, err, driver.ErrDriverIsNotAvailable)
		assert.Equal(t, driver.Busy, d.Status())
	})

	t.Run("off_driver_cannot_take_a_delivery", func(t *testing.T) {
		d := newDriver(t)
		require.NoError(t, d.StartRestDay())

		require.ErrorIs(t, d.TakeDelivery(), driver.ErrDriverIsNotAvailable)
	})

	t.Run("complete_without_delivery_in_progress_is_rejected", func(t *testing.T) {
		d := newDriver(t)

		err := d.CompleteDelivery()

		require.ErrorIs(t, err, driver.ErrDriverIsNotBusy)
		assert.Equal(t, 0, d.TotalDeliveries())
	})

	t.Run("each_completed_delivery_counts_once", func(t *testing.T) {
		d := newDriver(t)

		for i := 0; i < 3; i++ {
			require.NoError(t, d.TakeDelivery())
			require.NoError(t, d.CompleteDelivery())
		}

		assert.Equal(t, 3, d.TotalDeliveries())
	})
}

func TestDriver_RestDays(t *testing.T) {
	t.Run("rest_day_toggles_available_and_off", func(t *testing.T) {
		d := newDriver(t)

		require.NoError(t, d.StartRestDay())
		assert.Equal(t, driver.Off, d.Status())

		d.EndRestDay()
		assert.Equal(t, driver.Available, d.Status())
	})

	t.Run("busy_driver_is_not_sent_off", func(t *testing.T) {
		d := newDriver(t)
		require.NoError(t, d.TakeDelivery())

		require.Error(t, d.StartRestDay())
		assert.Equal(t, driver.Busy, d.Status())
	})

	t.Run("end_rest_day_is_a_noop_when_not_off", func(t *testing.T) {
		d := newDriver(t)
		require.NoError(t, d.TakeDelivery())

		d.EndRestDay()

		assert.Equal(t, driver.Busy, d.Status())
	})

	t.Run("rests_on_is_case_insensitive", func(t *testing.T) {
		d := newDriver(t, "Lundi", "Vendredi")

		assert.True(t, d.RestsOn("lundi"))
		assert.True(t, d.RestsOn("VENDREDI"))
		assert.False(t, d.RestsOn("Mardi"))
	})
}

func TestDriver_Profile(t *testing.T) {
	t.Run("update_profile_keeps_status_and_stats", func(t *testing.T) {
		d := newDriver(t)
		require.NoError(t, d.TakeDelivery())
		require.NoError(t, d.CompleteDelivery())

		newPhone, err := kernel.NewPhone("0666666666")
		require.NoError(t, err)
		require.NoError(t, d.UpdateProfile("Karim Saidi", newPhone, "Moto", []string{"Dimanche"}))

		assert.Equal(t, "Karim Saidi", d.Name())
		assert.Equal(t, "0666666666", d.Phone().String())
		assert.Equal(t, "Moto", d.Vehicle())
		assert.Equal(t, []string{"Dimanche"}, d.DaysOff())
		assert.Equal(t, driver.Available, d.Status())
		assert.Equal(t, 1, d.TotalDeliveries())
	})
}

func TestRestoreDriver(t *testing.T) {
	t.Run("restores_operational_state", func(t *testing.T) {
		phone, err := kernel.NewPhone("0555555555")
		require.NoError(t, err)
		id := kernel.NewUUID()

		d, err := driver.RestoreDriver(id, "Ahmed Benali", phone, "Scooter", driver.Busy, []string{"Lundi"}, 12, 4.8)

		require.NoError(t, err)
		assert.Equal(t, driver.Busy, d.Status())
		assert.Equal(t, 12, d.TotalDeliveries())
		assert.Equal(t, 4.8, d.Rating())
	})

	t.Run("rejects_invalid_status", func(t *testing.T) {
		phone, _ := kernel.NewPhone("0555555555")

		_, err := driver.RestoreDriver(kernel.NewUUID(), "Ahmed Benali", phone, "", driver.UnknownStatus, nil, 0, 5)

		require.Error(t, err)
	})

	t.Run("rejects_negative_delivery_count", func(t *testing.T) {
		phone, _ := kernel.NewPhone("0555555555")

		_, err := driver.RestoreDriver(kernel.NewUUID(), "Ahmed Benali", phone, "", driver.Available, nil, -1, 5)

		require.Error(t, err)
	})
}

func TestStatus(t *testing.T) {
	t.Run("string_round_trip", func(t *testing.T) {
		for _, status := range []driver.Status{driver.Available, driver.Busy, driver.Off} {
			parsed, err := driver.StatusFromString(status.String())
			require.NoError(t, err)
			assert.Equal(t, status, parsed)
		}
	})

	t.Run("unknown_is_invalid", func(t *testing.T) {
		require.Error(t, driver.UnknownStatus.Validate())
		_, err := driver.StatusFromString("resting")
		require.Error(t, err)
		assert.Equal(t, "unknown", driver.Status(99).String())
	})
}
