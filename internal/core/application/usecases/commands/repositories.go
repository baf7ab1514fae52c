// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"github.com/Pandalivraison/ALOUETTE/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each command depends only on the repositories it actually touches.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// ReservationRepoFactory provides access to the reservation repository within a transaction.
	ReservationRepoFactory interface {
		ReservationRepository() ports.ReservationRepository
	}

	// DriverRepoFactory provides access to the driver repository within a transaction.
	DriverRepoFactory interface {
		DriverRepository() ports.DriverRepository
	}

	// MenuItemRepoFactory provides access to the menu item repository within a transaction.
	MenuItemRepoFactory interface {
		MenuItemRepository() ports.MenuItemRepository
	}

	// CustomerRepoFactory provides access to the customer repository within a transaction.
	CustomerRepoFactory interface {
		CustomerRepository() ports.CustomerRepository
	}

	// CartRepoFactory provides access to the cart repository within a transaction.
	CartRepoFactory interface {
		CartRepository() ports.CartRepository
	}

	// TemplateRepoFactory provides access to the template repository within a transaction.
	TemplateRepoFactory interface {
		TemplateRepository() ports.TemplateRepository
	}

	// CartUoW manages transactions for cart-only operations.
	CartUoW interface {
		TxManager
		CartRepoFactory
	}

	// CartUoWFactory creates new cart unit of work instances.
	CartUoWFactory interface {
		Create() CartUoW
	}

	// CheckoutUoW manages the transaction that turns a cart into an
	// order: the customer is verified, the cart is read and cleared,
	// menu prices are snapshotted and the order is created, all
	// atomically.
	CheckoutUoW interface {
		TxManager
		CustomerRepoFactory
		CartRepoFactory
		MenuItemRepoFactory
		OrderRepoFactory
	}

	// CheckoutUoWFactory creates new checkout unit of work instances.
	CheckoutUoWFactory interface {
		Create() CheckoutUoW
	}

	// OrderLifecycleUoW manages transactions for order status moves.
	// Covers the driver hand-off and the lookups needed to compose the
	// customer notification.
	OrderLifecycleUoW interface {
		TxManager
		OrderRepoFactory
		DriverRepoFactory
		CustomerRepoFactory
		TemplateRepoFactory
	}

	// OrderLifecycleUoWFactory creates new order lifecycle unit of work instances.
	OrderLifecycleUoWFactory interface {
		Create() OrderLifecycleUoW
	}

	// ReservationUoW manages transactions for reservation submission.
	ReservationUoW interface {
		TxManager
		ReservationRepoFactory
	}

	// ReservationUoWFactory creates new reservation unit of work instances.
	ReservationUoWFactory interface {
		Create() ReservationUoW
	}

	// ReservationLifecycleUoW manages transactions for confirming or
	// cancelling a reservation, including the template lookup for the
	// customer notification.
	ReservationLifecycleUoW interface {
		TxManager
		ReservationRepoFactory
		TemplateRepoFactory
	}

	// ReservationLifecycleUoWFactory creates new reservation lifecycle unit of work instances.
	ReservationLifecycleUoWFactory interface {
		Create() ReservationLifecycleUoW
	}

	// MenuUoW manages transactions for menu catalogue operations.
	MenuUoW interface {
		TxManager
		MenuItemRepoFactory
	}

	// MenuUoWFactory creates new menu unit of work instances.
	MenuUoWFactory interface {
		Create() MenuUoW
	}

	// DriverUoW manages transactions for fleet operations.
	DriverUoW interface {
		TxManager
		DriverRepoFactory
	}

	// DriverUoWFactory creates new driver unit of work instances.
	DriverUoWFactory interface {
		Create() DriverUoW
	}

	// CustomerUoW manages transactions for profile operations.
	CustomerUoW interface {
		TxManager
		CustomerRepoFactory
	}

	// CustomerUoWFactory creates new customer unit of work instances.
	CustomerUoWFactory interface {
		Create() CustomerUoW
	}

	// TemplateUoW manages transactions for template edits.
	TemplateUoW interface {
		TxManager
		TemplateRepoFactory
	}

	// TemplateUoWFactory creates new template unit of work instances.
	TemplateUoWFactory interface {
		Create() TemplateUoW
	}
)
