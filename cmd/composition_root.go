package cmd

import (
	httpadapter "github.com/Pandalivraison/ALOUETTE/internal/adapters/in/http"
	"github.com/Pandalivraison/ALOUETTE/internal/adapters/out/postgres"
	"github.com/Pandalivraison/ALOUETTE/internal/core/application/usecases/commands"
	"github.com/Pandalivraison/ALOUETTE/internal/core/application/usecases/queries"
	"github.com/Pandalivraison/ALOUETTE/internal/core/domain/services"
	"github.com/Pandalivraison/ALOUETTE/internal/core/ports"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters into use case handlers. Command
// handlers receive narrow unit of work factories so each one sees only
// the repositories it needs; all of them are backed by the same GORM
// unit of work.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	composer   services.NotificationComposer
	notifier   ports.Notifier
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, notifier ports.Notifier) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		composer:   services.NewNotificationComposer(),
		notifier:   notifier,
	}
}

// NewHTTPServer builds the HTTP server with every handler wired.
func (c *CompositionRoot) NewHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(httpadapter.Handlers{
		CreateMenuItem: c.CreateCreateMenuItemCommandHandler(),
		UpdateMenuItem: c.CreateUpdateMenuItemCommandHandler(),
		DeleteMenuItem: c.CreateDeleteMenuItemCommandHandler(),

		AddToCart:          c.CreateAddToCartCommandHandler(),
		ChangeCartQuantity: c.CreateChangeCartQuantityCommandHandler(),
		Checkout:           c.CreateCheckoutCommandHandler(),

		PrepareOrder:  c.CreatePrepareOrderCommandHandler(),
		DispatchOrder: c.CreateDispatchOrderCommandHandler(),
		CompleteOrder: c.CreateCompleteOrderCommandHandler(),

		SubmitReservation:  c.CreateSubmitReservationCommandHandler(),
		ConfirmReservation: c.CreateConfirmReservationCommandHandler(),
		CancelReservation:  c.CreateCancelReservationCommandHandler(),

		CreateDriver: c.CreateCreateDriverCommandHandler(),
		UpdateDriver: c.CreateUpdateDriverCommandHandler(),
		DeleteDriver: c.CreateDeleteDriverCommandHandler(),

		UpsertCustomer: c.CreateUpsertCustomerCommandHandler(),
		UpdateTemplate: c.CreateUpdateTemplateCommandHandler(),

		GetMenu:             c.CreateGetMenuQueryHandler(),
		GetCart:             c.CreateGetCartQueryHandler(),
		GetOrders:           c.CreateGetOrdersQueryHandler(),
		GetReservations:     c.CreateGetReservationsQueryHandler(),
		GetAllDrivers:       c.CreateGetAllDriversQueryHandler(),
		GetAvailableDrivers: c.CreateGetAvailableDriversQueryHandler(),
		GetTemplates:        c.CreateGetTemplatesQueryHandler(),
	})
}

func (c *CompositionRoot) CreateAddToCartCommandHandler() commands.AddToCartCommandHandler {
	var f commands.CartUoWFactory = FuncCartUoWFactory(func() commands.CartUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddToCartCommandHandler(f)
}

func (c *CompositionRoot) CreateChangeCartQuantityCommandHandler() commands.ChangeCartQuantityCommandHandler {
	var f commands.CartUoWFactory = FuncCartUoWFactory(func() commands.CartUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeCartQuantityCommandHandler(f)
}

func (c *CompositionRoot) CreateCheckoutCommandHandler() commands.CheckoutCommandHandler {
	var f commands.CheckoutUoWFactory = FuncCheckoutUoWFactory(func() commands.CheckoutUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCheckoutCommandHandler(f)
}

func (c *CompositionRoot) CreatePrepareOrderCommandHandler() commands.PrepareOrderCommandHandler {
	return commands.NewPrepareOrderCommandHandler(c.orderLifecycleUoWFactory(), c.composer, c.notifier)
}

func (c *CompositionRoot) CreateDispatchOrderCommandHandler() commands.DispatchOrderCommandHandler {
	return commands.NewDispatchOrderCommandHandler(c.orderLifecycleUoWFactory(), c.composer, c.notifier)
}

func (c *CompositionRoot) CreateCompleteOrderCommandHandler() commands.CompleteOrderCommandHandler {
	return commands.NewCompleteOrderCommandHandler(c.orderLifecycleUoWFactory(), c.composer, c.notifier)
}

func (c *CompositionRoot) CreateSubmitReservationCommandHandler() commands.SubmitReservationCommandHandler {
	var f commands.ReservationUoWFactory = FuncReservationUoWFactory(func() commands.ReservationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSubmitReservationCommandHandler(f)
}

func (c *CompositionRoot) CreateConfirmReservationCommandHandler() commands.ConfirmReservationCommandHandler {
	return commands.NewConfirmReservationCommandHandler(c.reservationLifecycleUoWFactory(), c.composer, c.notifier)
}

func (c *CompositionRoot) CreateCancelReservationCommandHandler() commands.CancelReservationCommandHandler {
	return commands.NewCancelReservationCommandHandler(c.reservationLifecycleUoWFactory(), c.composer, c.notifier)
}

func (c *CompositionRoot) CreateCreateMenuItemCommandHandler() commands.CreateMenuItemCommandHandler {
	return commands.NewCreateMenuItemCommandHandler(c.menuUoWFactory())
}

func (c *CompositionRoot) CreateUpdateMenuItemCommandHandler() commands.UpdateMenuItemCommandHandler {
	return commands.NewUpdateMenuItemCommandHandler(c.menuUoWFactory())
}

func (c *CompositionRoot) CreateDeleteMenuItemCommandHandler() commands.DeleteMenuItemCommandHandler {
	return commands.NewDeleteMenuItemCommandHandler(c.menuUoWFactory())
}

func (c *CompositionRoot) CreateCreateDriverCommandHandler() commands.CreateDriverCommandHandler {
	return commands.NewCreateDriverCommandHandler(c.driverUoWFactory())
}

func (c *CompositionRoot) CreateUpdateDriverCommandHandler() commands.UpdateDriverCommandHandler {
	return commands.NewUpdateDriverCommandHandler(c.driverUoWFactory())
}

func (c *CompositionRoot) CreateDeleteDriverCommandHandler() commands.DeleteDriverCommandHandler {
	return commands.NewDeleteDriverCommandHandler(c.driverUoWFactory())
}

func (c *CompositionRoot) CreateSyncDriverRestDaysCommandHandler() commands.SyncDriverRestDaysCommandHandler {
	return commands.NewSyncDriverRestDaysCommandHandler(c.driverUoWFactory())
}

func (c *CompositionRoot) CreateUpsertCustomerCommandHandler() commands.UpsertCustomerCommandHandler {
	var f commands.CustomerUoWFactory = FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpsertCustomerCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateTemplateCommandHandler() commands.UpdateTemplateCommandHandler {
	var f commands.TemplateUoWFactory = FuncTemplateUoWFactory(func() commands.TemplateUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateTemplateCommandHandler(f)
}

func (c *CompositionRoot) CreateGetMenuQueryHandler() queries.GetMenuQueryHandler {
	return queries.NewGetMenuQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCartQueryHandler() queries.GetCartQueryHandler {
	return queries.NewGetCartQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetReservationsQueryHandler() queries.GetReservationsQueryHandler {
	return queries.NewGetReservationsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllDriversQueryHandler() queries.GetAllDriversQueryHandler {
	return queries.NewGetAllDriversQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAvailableDriversQueryHandler() queries.GetAvailableDriversQueryHandler {
	return queries.NewGetAvailableDriversQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetTemplatesQueryHandler() queries.GetTemplatesQueryHandler {
	return queries.NewGetTemplatesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) orderLifecycleUoWFactory() commands.OrderLifecycleUoWFactory {
	return FuncOrderLifecycleUoWFactory(func() commands.OrderLifecycleUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) reservationLifecycleUoWFactory() commands.ReservationLifecycleUoWFactory {
	return FuncReservationLifecycleUoWFactory(func() commands.ReservationLifecycleUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) menuUoWFactory() commands.MenuUoWFactory {
	return FuncMenuUoWFactory(func() commands.MenuUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) driverUoWFactory() commands.DriverUoWFactory {
	return FuncDriverUoWFactory(func() commands.DriverUoW {
		return c.uowFactory.Create()
	})
}

type FuncCartUoWFactory func() commands.CartUoW

func (f FuncCartUoWFactory) Create() commands.CartUoW {
	return f()
}

type FuncCheckoutUoWFactory func() commands.CheckoutUoW

func (f FuncCheckoutUoWFactory) Create() commands.CheckoutUoW {
	return f()
}

type FuncOrderLifecycleUoWFactory func() commands.OrderLifecycleUoW

func (f FuncOrderLifecycleUoWFactory) Create() commands.OrderLifecycleUoW {
	return f()
}

type FuncReservationUoWFactory func() commands.ReservationUoW

func (f FuncReservationUoWFactory) Create() commands.ReservationUoW {
	return f()
}

type FuncReservationLifecycleUoWFactory func() commands.ReservationLifecycleUoW

func (f FuncReservationLifecycleUoWFactory) Create() commands.ReservationLifecycleUoW {
	return f()
}

type FuncMenuUoWFactory func() commands.MenuUoW

func (f FuncMenuUoWFactory) Create() commands.MenuUoW {
	return f()
}

type FuncDriverUoWFactory func() commands.DriverUoW

func (f FuncDriverUoWFactory) Create() commands.DriverUoW {
	return f()
}

type FuncCustomerUoWFactory func() commands.CustomerUoW

func (f FuncCustomerUoWFactory) Create() commands.CustomerUoW {
	return f()
}

type FuncTemplateUoWFactory func() commands.TemplateUoW

func (f FuncTemplateUoWFactory) Create() commands.TemplateUoW {
	return f()
}
