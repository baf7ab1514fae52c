package commands_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Pandalivraison/ALOUETTE/internal/core/application/usecases/commands"
	"github.com/Pandalivraison/ALOUETTE/internal/core/domain/model/cart"
	"github.com/Pandalivraison/ALOUETTE/internal/core/domain/model/customer"
	"github.com/Pandalivraison/ALOUETTE/internal/core/domain/model/kernel"
	"github.com/Pandalivraison/ALOUETTE/internal/core/domain/model/menu"
	"github.com/Pandalivraison/ALOUETTE/internal/core/domain/model/order"
	"github.com/Pandalivraison/ALOUETTE/internal/core/ports"
	"github.com/Pandalivraison/ALOUETTE/internal/pkg/errs"
)

type MockCheckoutCustomerRepository struct{ mock.Mock }

func (m *MockCheckoutCustomerRepository) Add(ctx context.Context, c *customer.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCheckoutCustomerRepository) Update(ctx context.Context, c *customer.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCheckoutCustomerRepository) Get(ctx context.Context, phone kernel.Phone) (*customer.Customer, error) {
	args := m.Called(ctx, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customer.Customer), args.Error(1)
}

type MockCheckoutCartRepository struct{ mock.Mock }

func (m *MockCheckoutCartRepository) Add(ctx context.Context, c *cart.Cart) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCheckoutCartRepository) Update(ctx context.Context, c *cart.Cart) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCheckoutCartRepository) Get(ctx context.Context, phone kernel.Phone) (*cart.Cart, error) {
	args := m.Called(ctx, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cart.Cart), args.Error(1)
}

type MockCheckoutMenuRepository struct{ mock.Mock }

func (m *MockCheckoutMenuRepository) Add(ctx context.Context, i *menu.Item) error {
	args := m.Called(ctx, i)
	return args.Error(0)
}

func (m *MockCheckoutMenuRepository) Update(ctx context.Context, i *menu.Item) error {
	args := m.Called(ctx, i)
	return args.Error(0)
}

func (m *MockCheckoutMenuRepository) Get(ctx context.Context, id kernel.UUID) (*menu.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*menu.Item), args.Error(1)
}

func (m *MockCheckoutMenuRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockCheckoutOrderRepository struct{ mock.Mock }

func (m *MockCheckoutOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockCheckoutOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockCheckoutOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockCheckoutUoW struct{ mock.Mock }

func (m *MockCheckoutUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCheckoutUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCheckoutUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCheckoutUoW) CustomerRepository() ports.CustomerRepository {
	args := m.Called()
	return args.Get(0).(ports.CustomerRepository)
}

func (m *MockCheckoutUoW) CartRepository() ports.CartRepository {
	args := m.Called()
	return args.Get(0).(ports.CartRepository)
}

func (m *MockCheckoutUoW) MenuItemRepository() ports.MenuItemRepository {
	args := m.Called()
	return args.Get(0).(ports.MenuItemRepository)
}

func (m *MockCheckoutUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockCheckoutUoWFactory struct{ mock.Mock }

func (m *MockCheckoutUoWFactory) Create() commands.CheckoutUoW {
	args := m.Called()
	return args.Get(0).(commands.CheckoutUoW)
}

func TestCheckoutCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	phone, err := kernel.NewPhone("0550123456")
	require.NoError(t, err)

	item, err := menu.NewItem(kernel.NewUUID(), "La Complète", "jambon, oeuf, fromage", 650, menu.Salty, "")
	require.NoError(t, err)

	customerCart, err := cart.NewCart(phone)
	require.NoError(t, err)
	require.NoError(t, customerCart.Add(item.ID()))
	require.NoError(t, customerCart.Add(item.ID()))

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCheckoutCommand(orderID, phone)
	require.NoError(t, err)

	profile, err := customer.NewCustomer(phone, "Amine", "", true)
	require.NoError(t, err)

	customerRepo := new(MockCheckoutCustomerRepository)
	cartRepo := new(MockCheckoutCartRepository)
	menuRepo := new(MockCheckoutMenuRepository)
	orderRepo := new(MockCheckoutOrderRepository)
	uow := new(MockCheckoutUoW)

	var placed *order.Order
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(customerRepo).Once(),
		customerRepo.On("Get", ctx, phone).Return(profile, nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		cartRepo.On("Get", ctx, phone).Return(customerCart, nil).Once(),
		uow.On("MenuItemRepository").Return(menuRepo).Once(),
		menuRepo.On("Get", ctx, item.ID()).Return(item, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Run(func(args mock.Arguments) {
			placed = args.Get(1).(*order.Order)
		}).Return(nil).Once(),
		cartRepo.On("Update", ctx, customerCart).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCheckoutCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, placed)
	require.True(t, orderID.IsEqual(placed.ID()))
	require.Equal(t, order.Pending, placed.Status())
	require.Equal(t, 1300, placed.Total())
	require.True(t, customerCart.IsEmpty())
	cartRepo.AssertExpectations(t)
	menuRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCheckoutCommandHandler_Handle_UnknownCustomer(t *testing.T) {
	ctx := t.Context()
	phone, err := kernel.NewPhone("0550123456")
	require.NoError(t, err)

	cmd, err := commands.NewCheckoutCommand(kernel.NewUUID(), phone)
	require.NoError(t, err)

	customerRepo := new(MockCheckoutCustomerRepository)
	cartRepo := new(MockCheckoutCartRepository)
	orderRepo := new(MockCheckoutOrderRepository)
	uow := new(MockCheckoutUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(customerRepo).Once(),
		customerRepo.On("Get", ctx, phone).
			Return(nil, errs.NewObjectNotFoundError("phone", phone)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCheckoutCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	cartRepo.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	orderRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestCheckoutCommandHandler_Handle_EmptyCart(t *testing.T) {
	ctx := t.Context()
	phone, err := kernel.NewPhone("0550123456")
	require.NoError(t, err)

	customerCart, err := cart.NewCart(phone)
	require.NoError(t, err)

	cmd, err := commands.NewCheckoutCommand(kernel.NewUUID(), phone)
	require.NoError(t, err)

	profile, err := customer.NewCustomer(phone, "Amine", "", true)
	require.NoError(t, err)

	customerRepo := new(MockCheckoutCustomerRepository)
	cartRepo := new(MockCheckoutCartRepository)
	uow := new(MockCheckoutUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(customerRepo).Once(),
		customerRepo.On("Get", ctx, phone).Return(profile, nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		cartRepo.On("Get", ctx, phone).Return(customerCart, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCheckoutCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, cart.ErrCartIsEmpty)
}

func TestCheckoutCommandHandler_Handle_MissingMenuItemPricesAtZero(t *testing.T) {
	ctx := t.Context()
	phone, err := kernel.NewPhone("0550123456")
	require.NoError(t, err)

	vanishedID := kernel.NewUUID()
	customerCart, err := cart.NewCart(phone)
	require.NoError(t, err)
	require.NoError(t, customerCart.Add(vanishedID))
	require.NoError(t, customerCart.Add(vanishedID))

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCheckoutCommand(orderID, phone)
	require.NoError(t, err)

	profile, err := customer.NewCustomer(phone, "Amine", "", true)
	require.NoError(t, err)

	customerRepo := new(MockCheckoutCustomerRepository)
	cartRepo := new(MockCheckoutCartRepository)
	menuRepo := new(MockCheckoutMenuRepository)
	orderRepo := new(MockCheckoutOrderRepository)
	uow := new(MockCheckoutUoW)

	var placed *order.Order
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(customerRepo).Once(),
		customerRepo.On("Get", ctx, phone).Return(profile, nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		cartRepo.On("Get", ctx, phone).Return(customerCart, nil).Once(),
		uow.On("MenuItemRepository").Return(menuRepo).Once(),
		menuRepo.On("Get", ctx, vanishedID).
			Return(nil, errs.NewObjectNotFoundError("menuItemId", vanishedID)).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Run(func(args mock.Arguments) {
			placed = args.Get(1).(*order.Order)
		}).Return(nil).Once(),
		cartRepo.On("Update", ctx, customerCart).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCheckoutCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, placed)
	require.Len(t, placed.Lines(), 1)
	require.Equal(t, 2, placed.Lines()[0].Quantity())
	require.Equal(t, 0, placed.Total())
	require.True(t, customerCart.IsEmpty())
}

func TestCheckoutCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	factory := new(MockCheckoutUoWFactory)

	h := commands.NewCheckoutCommandHandler(factory)
	err := h.Handle(ctx, commands.CheckoutCommand{})

	require.ErrorIs(t, err, commands.ErrCheckoutCommandIsNotConstructed)
}
