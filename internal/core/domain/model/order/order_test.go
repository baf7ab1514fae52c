package order_test

import (
	"testing"
	"time"

	"github.com/Pandalivraison/ALOUETTE/internal/core/domain/model/kernel"
	"github.com/Pandalivraison/ALOUETTE/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPhone(t *testing.T) kernel.Phone {
	t.Helper()
	phone, err := kernel.NewPhone("0556948090")
	require.NoError(t, err)
	return phone
}

func testLines(t *testing.T) []order.Line {
	t.Helper()
	line, err := order.NewLine(kernel.NewUUID(), 2, 300)
	require.NoError(t, err)
	return []order.Line{line}
}

func newPendingOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), testPhone(t), testLines(t), time.Now())
	require.NoError(t, err)
	return o
}

func TestNewLine(t *testing.T) {
	t.Run("creates_valid_line", func(t *testing.T) {
		itemID := kernel.NewUUID()
		line, err := order.NewLine(itemID, 2, 300)

		require.NoError(t, err)
		assert.True(t, line.MenuItemID().IsEqual(itemID))
		assert.Equal(t, 2, line.Quantity())
		assert.Equal(t, 300, line.UnitPrice())
		assert.Equal(t, 600, line.Subtotal())
	})

	t.Run("allows_zero_unit_price_for_vanished_items", func(t *testing.T) {
		line, err := order.NewLine(kernel.NewUUID(), 3, 0)

		require.NoError(t, err)
		assert.Equal(t, 0, line.Subtotal())
	})

	t.Run("rejects_non_positive_quantity", func(t *testing.T) {
		for _, qty := range []int{0, -1} {
			_, err := order.NewLine(kernel.NewUUID(), qty, 300)
			require.Error(t, err)
		}
	})

	t.Run("rejects_negative_unit_price", func(t *testing.T) {
		_, err := order.NewLine(kernel.NewUUID(), 1, -300)
		require.Error(t, err)
	})

	t.Run("zero_value_line_is_not_constructed", func(t *testing.T) {
		var line order.Line
		require.ErrorIs(t, line.Validate(), order.ErrLineIsNotConstructed)
	})
}

func TestNewOrder(t *testing.T) {
	t.Run("creates_pending_order", func(t *testing.T) {
		id := kernel.NewUUID()
		createdAt := time.Date(2024, 6, 1, 12, 30, 0, 0, time.UTC)

		o, err := order.NewOrder(id, testPhone(t), testLines(t), createdAt)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(id))
		assert.Equal(t, order.Pending, o.Status())
		assert.Nil(t, o.Driver())
		assert.Equal(t, createdAt, o.CreatedAt())
		assert.Equal(t, 600, o.Total())
	})

	t.Run("rejects_empty_lines", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), testPhone(t), nil, time.Now())
		require.ErrorIs(t, err, order.ErrOrderHasNoLines)
	})

	t.Run("rejects_zero_value_phone", func(t *testing.T) {
		var phone kernel.Phone
		_, err := order.NewOrder(kernel.NewUUID(), phone, testLines(t), time.Now())
		require.Error(t, err)
	})

	t.Run("zero_value_order_is_not_constructed", func(t *testing.T) {
		var o order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_Lifecycle(t *testing.T) {
	t.Run("full_forward_path", func(t *testing.T) {
		o := newPendingOrder(t)
		driverID := kernel.NewUUID()

		require.NoError(t, o.Prepare())
		assert.Equal(t, order.Preparing, o.Status())

		require.NoError(t, o.Dispatch(driverID))
		assert.Equal(t, order.Delivering, o.Status())
		require.NotNil(t, o.Driver())
		assert.True(t, o.Driver().IsEqual(driverID))

		require.NoError(t, o.Complete())
		assert.Equal(t, order.Completed, o.Status())
		// The driver reference survives completion.
		require.NotNil(t, o.Driver())
		assert.True(t, o.Driver().IsEqual(driverID))
	})

	t.Run("invalid_transitions_leave_order_unchanged", func(t *testing.T) {
		o := newPendingOrder(t)

		require.Error(t, o.Dispatch(kernel.NewUUID()))
		assert.Equal(t, order.Pending, o.Status())
		assert.Nil(t, o.Driver())

		require.Error(t, o.Complete())
		assert.Equal(t, order.Pending, o.Status())

		require.NoError(t, o.Prepare())
		require.Error(t, o.Prepare())
		assert.Equal(t, order.Preparing, o.Status())
	})

	t.Run("dispatch_requires_a_driver", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.Prepare())

		var noDriver kernel.UUID
		err := o.Dispatch(noDriver)

		require.ErrorIs(t, err, order.ErrDriverIsRequired)
		assert.Equal(t, order.Preparing, o.Status())
		assert.Nil(t, o.Driver())
	})

	t.Run("completed_is_terminal", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.Prepare())
		require.NoError(t, o.Dispatch(kernel.NewUUID()))
		require.NoError(t, o.Complete())

		require.Error(t, o.Prepare())
		require.Error(t, o.Dispatch(kernel.NewUUID()))
		require.Error(t, o.Complete())
		assert.Equal(t, order.Completed, o.Status())
	})
}

func TestOrder_Total(t *testing.T) {
	t.Run("sums_quantity_times_snapshot_price", func(t *testing.T) {
		l1, err := order.NewLine(kernel.NewUUID(), 2, 300)
		require.NoError(t, err)
		l2, err := order.NewLine(kernel.NewUUID(), 1, 650)
		require.NoError(t, err)
		vanished, err := order.NewLine(kernel.NewUUID(), 4, 0)
		require.NoError(t, err)

		o, err := order.NewOrder(kernel.NewUUID(), testPhone(t), []order.Line{l1, l2, vanished}, time.Now())

		require.NoError(t, err)
		assert.Equal(t, 1250, o.Total())
		assert.Len(t, o.Lines(), 3)
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("restores_delivering_order_with_driver", func(t *testing.T) {
		driverID := kernel.NewUUID()

		o, err := order.RestoreOrder(
			kernel.NewUUID(), testPhone(t), testLines(t),
			order.Delivering, &driverID, time.Now(),
		)

		require.NoError(t, err)
		assert.Equal(t, order.Delivering, o.Status())
		assert.True(t, o.Driver().IsEqual(driverID))
	})

	t.Run("rejects_driver_on_pending_order", func(t *testing.T) {
		driverID := kernel.NewUUID()

		_, err := order.RestoreOrder(
			kernel.NewUUID(), testPhone(t), testLines(t),
			order.Pending, &driverID, time.Now(),
		)

		require.Error(t, err)
	})

	t.Run("rejects_delivering_order_without_driver", func(t *testing.T) {
		_, err := order.RestoreOrder(
			kernel.NewUUID(), testPhone(t), testLines(t),
			order.Delivering, nil, time.Now(),
		)

		require.Error(t, err)
	})
}
