// Package http exposes the restaurant's use cases over a JSON API.
// Handlers translate requests into commands and queries; all business
// rules stay in the domain layer.
package http

import (
	"errors"
	"net/http"

	"github.com/Pandalivraison/ALOUETTE/internal/core/application/usecases/commands"
	"github.com/Pandalivraison/ALOUETTE/internal/core/application/usecases/queries"
	"github.com/Pandalivraison/ALOUETTE/internal/core/domain/model/kernel"
	"github.com/Pandalivraison/ALOUETTE/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createMenuItemHandler commands.CreateMenuItemCommandHandler
	updateMenuItemHandler commands.UpdateMenuItemCommandHandler
	deleteMenuItemHandler commands.DeleteMenuItemCommandHandler

	addToCartHandler          commands.AddToCartCommandHandler
	changeCartQuantityHandler commands.ChangeCartQuantityCommandHandler
	checkoutHandler           commands.CheckoutCommandHandler

	prepareOrderHandler  commands.PrepareOrderCommandHandler
	dispatchOrderHandler commands.DispatchOrderCommandHandler
	completeOrderHandler commands.CompleteOrderCommandHandler

	submitReservationHandler  commands.SubmitReservationCommandHandler
	confirmReservationHandler commands.ConfirmReservationCommandHandler
	cancelReservationHandler  commands.CancelReservationCommandHandler

	createDriverHandler commands.CreateDriverCommandHandler
	updateDriverHandler commands.UpdateDriverCommandHandler
	deleteDriverHandler commands.DeleteDriverCommandHandler

	upsertCustomerHandler commands.UpsertCustomerCommandHandler
	updateTemplateHandler commands.UpdateTemplateCommandHandler

	getMenuHandler             queries.GetMenuQueryHandler
	getCartHandler             queries.GetCartQueryHandler
	getOrdersHandler           queries.GetOrdersQueryHandler
	getReservationsHandler     queries.GetReservationsQueryHandler
	getAllDriversHandler       queries.GetAllDriversQueryHandler
	getAvailableDriversHandler queries.GetAvailableDriversQueryHandler
	getTemplatesHandler        queries.GetTemplatesQueryHandler
}

// Handlers bundles every command and query handler the server needs.
type Handlers struct {
	CreateMenuItem commands.CreateMenuItemCommandHandler
	UpdateMenuItem commands.UpdateMenuItemCommandHandler
	DeleteMenuItem commands.DeleteMenuItemCommandHandler

	AddToCart          commands.AddToCartCommandHandler
	ChangeCartQuantity commands.ChangeCartQuantityCommandHandler
	Checkout           commands.CheckoutCommandHandler

	PrepareOrder  commands.PrepareOrderCommandHandler
	DispatchOrder commands.DispatchOrderCommandHandler
	CompleteOrder commands.CompleteOrderCommandHandler

	SubmitReservation  commands.SubmitReservationCommandHandler
	ConfirmReservation commands.ConfirmReservationCommandHandler
	CancelReservation  commands.CancelReservationCommandHandler

	CreateDriver commands.CreateDriverCommandHandler
	UpdateDriver commands.UpdateDriverCommandHandler
	DeleteDriver commands.DeleteDriverCommandHandler

	UpsertCustomer commands.UpsertCustomerCommandHandler
	UpdateTemplate commands.UpdateTemplateCommandHandler

	GetMenu             queries.GetMenuQueryHandler
	GetCart             queries.GetCartQueryHandler
	GetOrders           queries.GetOrdersQueryHandler
	GetReservations     queries.GetReservationsQueryHandler
	GetAllDrivers       queries.GetAllDriversQueryHandler
	GetAvailableDrivers queries.GetAvailableDriversQueryHandler
	GetTemplates        queries.GetTemplatesQueryHandler
}

// NewServer creates a new HTTP server with the required handlers.
func NewServer(handlers Handlers) *Server {
	return &Server{
		createMenuItemHandler:      handlers.CreateMenuItem,
		updateMenuItemHandler:      handlers.UpdateMenuItem,
		deleteMenuItemHandler:      handlers.DeleteMenuItem,
		addToCartHandler:           handlers.AddToCart,
		changeCartQuantityHandler:  handlers.ChangeCartQuantity,
		checkoutHandler:            handlers.Checkout,
		prepareOrderHandler:        handlers.PrepareOrder,
		dispatchOrderHandler:       handlers.DispatchOrder,
		completeOrderHandler:       handlers.CompleteOrder,
		submitReservationHandler:   handlers.SubmitReservation,
		confirmReservationHandler:  handlers.ConfirmReservation,
		cancelReservationHandler:   handlers.CancelReservation,
		createDriverHandler:        handlers.CreateDriver,
		updateDriverHandler:        handlers.UpdateDriver,
		deleteDriverHandler:        handlers.DeleteDriver,
		upsertCustomerHandler:      handlers.UpsertCustomer,
		updateTemplateHandler:      handlers.UpdateTemplate,
		getMenuHandler:             handlers.GetMenu,
		getCartHandler:             handlers.GetCart,
		getOrdersHandler:           handlers.GetOrders,
		getReservationsHandler:     handlers.GetReservations,
		getAllDriversHandler:       handlers.GetAllDrivers,
		getAvailableDriversHandler: handlers.GetAvailableDrivers,
		getTemplatesHandler:        handlers.GetTemplates,
	}
}

// RegisterRoutes attaches every endpoint to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.GET("/menu", s.GetMenu)
	api.POST("/menu", s.CreateMenuItem)
	api.PUT("/menu/:id", s.UpdateMenuItem)
	api.DELETE("/menu/:id", s.DeleteMenuItem)

	api.GET("/carts/:phone", s.GetCart)
	api.POST("/carts/:phone/items", s.AddToCart)
	api.PATCH("/carts/:phone/items/:itemId", s.ChangeCartQuantity)
	api.POST("/carts/:phone/checkout", s.Checkout)

	api.GET("/orders", s.GetOrders)
	api.POST("/orders/:id/prepare", s.PrepareOrder)
	api.POST("/orders/:id/dispatch", s.DispatchOrder)
	api.POST("/orders/:id/complete", s.CompleteOrder)

	api.GET("/reservations", s.GetReservations)
	api.POST("/reservations", s.SubmitReservation)
	api.POST("/reservations/:id/confirm", s.ConfirmReservation)
	api.POST("/reservations/:id/cancel", s.CancelReservation)

	api.GET("/drivers", s.GetDrivers)
	api.GET("/drivers/available", s.GetAvailableDrivers)
	api.POST("/drivers", s.CreateDriver)
	api.PUT("/drivers/:id", s.UpdateDriver)
	api.DELETE("/drivers/:id", s.DeleteDriver)

	api.PUT("/customers/:phone", s.UpsertCustomer)

	api.GET("/templates", s.GetTemplates)
	api.PUT("/templates/:key", s.UpdateTemplate)
}

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func badRequest(ctx echo.Context, err error) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: err.Error(),
	})
}

// commandError maps use case failures onto HTTP statuses: unknown ids
// become 404, domain rule violations become 409, invalid input 400.
func commandError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return badRequest(ctx, err)
	default:
		return ctx.JSON(http.StatusConflict, ErrorResponse{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	}
}

func queryError(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
		Code:    http.StatusInternalServerError,
		Message: message,
	})
}

func pathUUID(ctx echo.Context, name string) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param(name))
}

func pathPhone(ctx echo.Context) (kernel.Phone, error) {
	return kernel.NewPhone(ctx.Param("phone"))
}
