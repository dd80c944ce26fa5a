package cascade

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"backoffice/internal/domain/customer"
	"backoffice/internal/domain/material"
	"backoffice/internal/domain/sale"
	"backoffice/internal/domain/ticket"
	"backoffice/internal/domain/user"
	vo "backoffice/internal/domain/user/valueobjects"
	"backoffice/internal/infrastructure/persistence/models"
	"backoffice/internal/infrastructure/repository"
	db "backoffice/internal/shared/db"
	"backoffice/internal/shared/logger"
)

// fixture is a small object graph: two users, each owning a customer,
// with sales, tickets and material links hanging off the first one.
type fixture struct {
	gdb     *gorm.DB
	deleter *Deleter

	users     *repository.UserRepository
	customers *repository.CustomerRepository
	materials *repository.MaterialRepository
	sales     *repository.SaleRepository
	tickets   *repository.TicketRepository

	alice, bob         *user.User
	aliceCust, bobCust *customer.Customer
	sale1, sale2       *sale.Sale
	bobSale            *sale.Sale
	ticket1, ticket2   *ticket.Ticket
	bobTicket          *ticket.Ticket
	mat                *material.Material
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(
		&models.UserModel{},
		&models.CustomerModel{},
		&models.MaterialModel{},
		&models.SaleModel{},
		&models.TicketModel{},
		&models.SaleMaterialModel{},
		&models.SaleTicketModel{},
	))

	f := &fixture{
		gdb:       gdb,
		users:     repository.NewUserRepository(gdb),
		customers: repository.NewCustomerRepository(gdb),
		materials: repository.NewMaterialRepository(gdb),
		sales:     repository.NewSaleRepository(gdb),
		tickets:   repository.NewTicketRepository(gdb),
	}
	f.deleter = NewDeleter(
		f.users,
		f.customers,
		f.sales,
		f.tickets,
		db.NewTransactionManager(gdb),
		logger.NewLogger(),
	)

	ctx := context.Background()

	f.alice = f.mkUser(t, ctx, "alice@example.com")
	f.bob = f.mkUser(t, ctx, "bob@example.com")

	f.aliceCust = f.mkCustomer(t, ctx, f.alice.ID())
	f.bobCust = f.mkCustomer(t, ctx, f.bob.ID())

	f.sale1 = f.mkSale(t, ctx, f.aliceCust.ID())
	f.sale2 = f.mkSale(t, ctx, f.aliceCust.ID())
	f.bobSale = f.mkSale(t, ctx, f.bobCust.ID())

	f.ticket1 = f.mkTicket(t, ctx, f.sale1.ID())
	f.ticket2 = f.mkTicket(t, ctx, f.sale2.ID())
	f.bobTicket = f.mkTicket(t, ctx, f.bobSale.ID())

	m, err := material.NewMaterial("laptop")
	require.NoError(t, err)
	require.NoError(t, f.materials.Create(ctx, m))
	f.mat = m
	require.NoError(t, f.sales.AttachMaterials(ctx, f.sale1.ID(), []uint{m.ID()}))

	return f
}

func (f *fixture) mkUser(t *testing.T, ctx context.Context, address string) *user.User {
	t.Helper()
	email, err := vo.NewEmail(address)
	require.NoError(t, err)
	u, err := user.NewUser("User", email, "hash")
	require.NoError(t, err)
	require.NoError(t, f.users.Create(ctx, u))
	return u
}

func (f *fixture) mkCustomer(t *testing.T, ctx context.Context, userID uint) *customer.Customer {
	t.Helper()
	c, err := customer.NewCustomer("customer", userID)
	require.NoError(t, err)
	require.NoError(t, f.customers.Create(ctx, c))
	return c
}

func (f *fixture) mkSale(t *testing.T, ctx context.Context, customerID uint) *sale.Sale {
	t.Helper()
	s, err := sale.NewSale("sale", "description", customerID, nil)
	require.NoError(t, err)
	require.NoError(t, f.sales.Create(ctx, s))
	return s
}

func (f *fixture) mkTicket(t *testing.T, ctx context.Context, saleID uint) *ticket.Ticket {
	t.Helper()
	tk, err := ticket.NewTicket("ticket", "description", saleID)
	require.NoError(t, err)
	require.NoError(t, f.tickets.Create(ctx, tk))
	require.NoError(t, f.tickets.SyncSales(ctx, tk.ID(), tk.SaleIDs()))
	return tk
}

func (f *fixture) count(t *testing.T, model interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, f.gdb.Model(model).Count(&n).Error)
	return n
}

func TestDeleter_DeleteSale(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.deleter.DeleteSale(ctx, f.sale1.ID()))

	gone, err := f.sales.FindByID(ctx, f.sale1.ID())
	require.NoError(t, err)
	assert.Nil(t, gone)

	goneTicket, err := f.tickets.FindByID(ctx, f.ticket1.ID())
	require.NoError(t, err)
	assert.Nil(t, goneTicket, "sale's tickets go with it")

	// sibling sale and its ticket survive
	kept, err := f.sales.FindByID(ctx, f.sale2.ID())
	require.NoError(t, err)
	assert.NotNil(t, kept)
	keptTicket, err := f.tickets.FindByID(ctx, f.ticket2.ID())
	require.NoError(t, err)
	assert.NotNil(t, keptTicket)

	// the material itself is untouched, only the link row is gone
	mat, err := f.materials.FindByID(ctx, f.mat.ID())
	require.NoError(t, err)
	assert.NotNil(t, mat)
	assert.Zero(t, f.count(t, &models.SaleMaterialModel{}))
}

func TestDeleter_DeleteCustomer(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.deleter.DeleteCustomer(ctx, f.aliceCust.ID()))

	gone, err := f.customers.FindByID(ctx, f.aliceCust.ID())
	require.NoError(t, err)
	assert.Nil(t, gone)

	sales, err := f.sales.FindByCustomerID(ctx, f.aliceCust.ID())
	require.NoError(t, err)
	assert.Empty(t, sales, "customer's sales go with it")

	for _, id := range []uint{f.ticket1.ID(), f.ticket2.ID()} {
		tk, err := f.tickets.FindByID(ctx, id)
		require.NoError(t, err)
		assert.Nil(t, tk)
	}

	// the owning user survives, as does everything under bob
	owner, err := f.users.FindByID(ctx, f.alice.ID())
	require.NoError(t, err)
	assert.NotNil(t, owner)

	bobSale, err := f.sales.FindByID(ctx, f.bobSale.ID())
	require.NoError(t, err)
	assert.NotNil(t, bobSale)
}

func TestDeleter_DeleteUser(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.deleter.DeleteUser(ctx, f.alice.ID()))

	gone, err := f.users.FindByID(ctx, f.alice.ID())
	require.NoError(t, err)
	assert.Nil(t, gone)

	// everything under alice is gone
	assert.Equal(t, int64(1), f.count(t, &models.CustomerModel{}))
	assert.Equal(t, int64(1), f.count(t, &models.SaleModel{}))
	assert.Equal(t, int64(1), f.count(t, &models.TicketModel{}))
	assert.Equal(t, int64(1), f.count(t, &models.SaleTicketModel{}))
	assert.Zero(t, f.count(t, &models.SaleMaterialModel{}))

	// bob's graph is exactly what remains
	bobCust, err := f.customers.FindByID(ctx, f.bobCust.ID())
	require.NoError(t, err)
	assert.NotNil(t, bobCust)
	bobTicket, err := f.tickets.FindByID(ctx, f.bobTicket.ID())
	require.NoError(t, err)
	assert.NotNil(t, bobTicket)

	// materials are never cascade deleted
	assert.Equal(t, int64(1), f.count(t, &models.MaterialModel{}))
}
