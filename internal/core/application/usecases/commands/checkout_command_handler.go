package commands

import (
	"context"
	"errors"
	"time"

	"github.com/Pandalivraison/ALOUETTE/internal/core/domain/model/cart"
	"github.com/Pandalivraison/ALOUETTE/internal/core/domain/model/order"
	"github.com/Pandalivraison/ALOUETTE/internal/pkg/errs"
)

// CheckoutCommandHandler turns a cart into a pending order.
//
// Prices are read from the menu inside the transaction and copied onto
// the order lines, so later menu edits or deletions never change what
// an order is worth. The cart is cleared in the same transaction.
type CheckoutCommandHandler struct {
	uowFactory CheckoutUoWFactory
}

// NewCheckoutCommandHandler creates a handler for checkout operations.
func NewCheckoutCommandHandler(uowFactory CheckoutUoWFactory) CheckoutCommandHandler {
	return CheckoutCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the checkout command. Fails when the phone does not
// belong to a registered customer or the cart is empty. A line whose
// menu item has been removed keeps its quantity but prices at zero.
func (h *CheckoutCommandHandler) Handle(ctx context.Context, cmd CheckoutCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.CustomerRepository().Get(ctx, cmd.Phone()); err != nil {
		return err
	}

	cartRepo := uow.CartRepository()

	customerCart, err := cartRepo.Get(ctx, cmd.Phone())
	if err != nil {
		return err
	}

	if customerCart.IsEmpty() {
		return cart.ErrCartIsEmpty
	}

	menuRepo := uow.MenuItemRepository()

	lines := make([]order.Line, 0, len(customerCart.Lines()))
	for _, cartLine := range customerCart.Lines() {
		unitPrice := 0

		item, err := menuRepo.Get(ctx, cartLine.MenuItemID())
		switch {
		case err == nil:
			unitPrice = item.Price()
		case errors.Is(err, errs.ErrObjectNotFound):
			// Item was removed from the menu while sitting in the cart.
			// The line is kept at price zero instead of losing the whole cart.
		default:
			return err
		}

		line, err := order.NewLine(cartLine.MenuItemID(), cartLine.Quantity(), unitPrice)
		if err != nil {
			return err
		}

		lines = append(lines, line)
	}

	newOrder, err := order.NewOrder(cmd.OrderID(), cmd.Phone(), lines, time.Now())
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	customerCart.Clear()
	if err = cartRepo.Update(ctx, customerCart); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
