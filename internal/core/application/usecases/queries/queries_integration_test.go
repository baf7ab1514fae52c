package queries_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "github.com/Pandalivraison/ALOUETTE/internal/adapters/out/postgres"
	"github.com/Pandalivraison/ALOUETTE/internal/adapters/out/postgres/cartrepo"
	"github.com/Pandalivraison/ALOUETTE/internal/adapters/out/postgres/customerrepo"
	"github.com/Pandalivraison/ALOUETTE/internal/adapters/out/postgres/driverrepo"
	"github.com/Pandalivraison/ALOUETTE/internal/adapters/out/postgres/menurepo"
	"github.com/Pandalivraison/ALOUETTE/internal/adapters/out/postgres/orderrepo"
	"github.com/Pandalivraison/ALOUETTE/internal/adapters/out/postgres/reservationrepo"
	"github.com/Pandalivraison/ALOUETTE/internal/adapters/out/postgres/templaterepo"
	"github.com/Pandalivraison/ALOUETTE/internal/core/application/usecases/queries"
	"github.com/Pandalivraison/ALOUETTE/internal/core/domain/model/cart"
	"github.com/Pandalivraison/ALOUETTE/internal/core/domain/model/driver"
	"github.com/Pandalivraison/ALOUETTE/internal/core/domain/model/kernel"
	"github.com/Pandalivraison/ALOUETTE/internal/core/domain/model/menu"
	"github.com/Pandalivraison/ALOUETTE/internal/core/domain/model/order"
	"github.com/Pandalivraison/ALOUETTE/internal/core/domain/model/reservation"
	"github.com/Pandalivraison/ALOUETTE/internal/core/domain/model/template"
	"github.com/Pandalivraison/ALOUETTE/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// QueriesIntegrationTestSuite exercises the read-side handlers against
// a real PostgreSQL database seeded through the repositories.
type QueriesIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

func (suite *QueriesIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderLineDTO{},
		&reservationrepo.ReservationDTO{},
		&driverrepo.DriverDTO{},
		&menurepo.MenuItemDTO{},
		&customerrepo.CustomerDTO{},
		&cartrepo.CartLineDTO{},
		&templaterepo.TemplateDTO{},
	)
	suite.Require().NoError(err)

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

func (suite *QueriesIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec(
		"TRUNCATE TABLE orders, order_lines, reservations, drivers, menu_items, customers, cart_lines, templates",
	).Error
	suite.Require().NoError(err)
}

func (suite *QueriesIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

// commit runs the given seeding function inside one committed unit of work.
func (suite *QueriesIntegrationTestSuite) commit(seed func(uow ports.UnitOfWork)) {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	seed(uow)
	suite.Require().NoError(uow.Commit(ctx))
}

func (suite *QueriesIntegrationTestSuite) menuItem(name string, price int, category menu.Category) *menu.Item {
	item, err := menu.NewItem(kernel.NewUUID(), name, "", price, category, "")
	suite.Require().NoError(err)
	return item
}

func (suite *QueriesIntegrationTestSuite) TestGetMenu_OrderedByCategoryAndName() {
	ctx := context.Background()

	complete := suite.menuItem("La Complète", 650, menu.Salty)
	citron := suite.menuItem("Crêpe citron", 300, menu.Sweet)
	chocolat := suite.menuItem("Crêpe chocolat", 350, menu.Sweet)

	suite.commit(func(uow ports.UnitOfWork) {
		repo := uow.MenuItemRepository()
		suite.Require().NoError(repo.Add(ctx, complete))
		suite.Require().NoError(repo.Add(ctx, chocolat))
		suite.Require().NoError(repo.Add(ctx, citron))
	})

	handler := queries.NewGetMenuQueryHandler(suite.db)
	items, err := handler.Handle(ctx, queries.NewGetMenuQuery())
	suite.Require().NoError(err)

	suite.Require().Len(items, 3)
	suite.Equal("La Complète", items[0].Name)
	suite.Equal("Crêpe chocolat", items[1].Name)
	suite.Equal("Crêpe citron", items[2].Name)
	suite.Equal(menu.Salty, items[0].Category)
	suite.Equal(650, items[0].Price)
}

func (suite *QueriesIntegrationTestSuite) TestGetOrders_NewestFirstWithSnapshotTotals() {
	ctx := context.Background()

	phone, err := kernel.NewPhone("0551234567")
	suite.Require().NoError(err)

	itemID := kernel.NewUUID()
	lineA, err := order.NewLine(itemID, 2, 650)
	suite.Require().NoError(err)
	lineB, err := order.NewLine(kernel.NewUUID(), 1, 1200)
	suite.Require().NoError(err)

	older, err := order.NewOrder(kernel.NewUUID(), phone, []order.Line{lineA}, time.Now().Add(-time.Hour))
	suite.Require().NoError(err)
	newer, err := order.NewOrder(kernel.NewUUID(), phone, []order.Line{lineA, lineB}, time.Now())
	suite.Require().NoError(err)

	suite.commit(func(uow ports.UnitOfWork) {
		repo := uow.OrderRepository()
		suite.Require().NoError(repo.Add(ctx, older))
		suite.Require().NoError(repo.Add(ctx, newer))
	})

	handler := queries.NewGetOrdersQueryHandler(suite.db)
	orders, err := handler.Handle(ctx, queries.NewGetOrdersQuery())
	suite.Require().NoError(err)

	suite.Require().Len(orders, 2)
	suite.True(orders[0].ID.IsEqual(newer.ID()), "Newest order should come first")
	suite.Equal(2500, orders[0].Total)
	suite.Equal(1300, orders[1].Total)
	suite.Require().Len(orders[0].Lines, 2)
	suite.True(orders[0].Lines[0].MenuItemID.IsEqual(itemID))
	suite.Equal(order.Pending, orders[0].Status)
	suite.Nil(orders[0].DriverID)
}

func (suite *QueriesIntegrationTestSuite) TestGetAvailableDrivers_FiltersResting() {
	ctx := context.Background()

	phone, err := kernel.NewPhone("0770001122")
	suite.Require().NoError(err)

	available, err := driver.NewDriver(kernel.NewUUID(), "Karim", phone, "Moto", nil)
	suite.Require().NoError(err)

	resting, err := driver.NewDriver(kernel.NewUUID(), "Amine", phone, "Voiture", []string{"Lundi"})
	suite.Require().NoError(err)
	suite.Require().NoError(resting.StartRestDay())

	suite.commit(func(uow ports.UnitOfWork) {
		repo := uow.DriverRepository()
		suite.Require().NoError(repo.Add(ctx, available))
		suite.Require().NoError(repo.Add(ctx, resting))
	})

	allHandler := queries.NewGetAllDriversQueryHandler(suite.db)
	all, err := allHandler.Handle(ctx, queries.NewGetAllDriversQuery())
	suite.Require().NoError(err)
	suite.Len(all, 2)

	availableHandler := queries.NewGetAvailableDriversQueryHandler(suite.db)
	free, err := availableHandler.Handle(ctx, queries.NewGetAvailableDriversQuery())
	suite.Require().NoError(err)
	suite.Require().Len(free, 1)
	suite.Equal("Karim", free[0].Name)
	suite.Equal(driver.Available, free[0].Status)
}

func (suite *QueriesIntegrationTestSuite) TestGetCart_JoinsMenuForDisplay() {
	ctx := context.Background()

	phone, err := kernel.NewPhone("0550123456")
	suite.Require().NoError(err)

	complete := suite.menuItem("La Complète", 650, menu.Salty)

	c, err := cart.NewCart(phone)
	suite.Require().NoError(err)
	suite.Require().NoError(c.Add(complete.ID()))
	suite.Require().NoError(c.Add(complete.ID()))

	suite.commit(func(uow ports.UnitOfWork) {
		suite.Require().NoError(uow.MenuItemRepository().Add(ctx, complete))
		suite.Require().NoError(uow.CartRepository().Add(ctx, c))
	})

	query, err := queries.NewGetCartQuery(phone)
	suite.Require().NoError(err)

	handler := queries.NewGetCartQueryHandler(suite.db)
	lines, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Require().Len(lines, 1)
	suite.Equal("La Complète", lines[0].Name)
	suite.Equal(650, lines[0].Price)
	suite.Equal(2, lines[0].Quantity)
}

func (suite *QueriesIntegrationTestSuite) TestGetReservations_OrderedBySchedule() {
	ctx := context.Background()

	phone, err := kernel.NewPhone("0661112233")
	suite.Require().NoError(err)

	later, err := reservation.NewReservation(
		kernel.NewUUID(), "Sarah K", phone, true, "", "2026-09-21", "19:00", "", 4, reservation.Table)
	suite.Require().NoError(err)

	earlier, err := reservation.NewReservation(
		kernel.NewUUID(), "Yacine B", phone, false, "", "2026-09-20", "12:30", "", 2, reservation.Table)
	suite.Require().NoError(err)

	suite.commit(func(uow ports.UnitOfWork) {
		repo := uow.ReservationRepository()
		suite.Require().NoError(repo.Add(ctx, later))
		suite.Require().NoError(repo.Add(ctx, earlier))
	})

	handler := queries.NewGetReservationsQueryHandler(suite.db)
	reservations, err := handler.Handle(ctx, queries.NewGetReservationsQuery())
	suite.Require().NoError(err)

	suite.Require().Len(reservations, 2)
	suite.Equal("Yacine B", reservations[0].CustomerName)
	suite.Equal("Sarah K", reservations[1].CustomerName)
	suite.Equal(reservation.Pending, reservations[0].Status)
}

func (suite *QueriesIntegrationTestSuite) TestGetTemplates_MergesSavedOverDefaults() {
	ctx := context.Background()

	edited, err := template.NewTemplate(template.OrderPreparing, "Commande {{id}} au four")
	suite.Require().NoError(err)

	suite.commit(func(uow ports.UnitOfWork) {
		suite.Require().NoError(uow.TemplateRepository().Save(ctx, edited))
	})

	handler := queries.NewGetTemplatesQueryHandler(suite.db)
	templates, err := handler.Handle(ctx, queries.NewGetTemplatesQuery())
	suite.Require().NoError(err)

	suite.Require().Len(templates, len(template.Keys()))
	byKey := make(map[template.Key]string, len(templates))
	for _, tpl := range templates {
		byKey[tpl.Key] = tpl.Text
	}
	suite.Equal("Commande {{id}} au four", byKey[template.OrderPreparing])
	suite.Contains(byKey[template.ReservationConfirmation], "{{nom}}")
}

func TestQueriesIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration tests in short mode")
	}

	suite.Run(t, new(QueriesIntegrationTestSuite))
}
