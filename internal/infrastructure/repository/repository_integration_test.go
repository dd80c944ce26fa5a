package repository

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
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.UserModel{},
		&models.CustomerModel{},
		&models.MaterialModel{},
		&models.SaleModel{},
		&models.TicketModel{},
		&models.SaleMaterialModel{},
		&models.SaleTicketModel{},
	)
	require.NoError(t, err)

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, address string) *user.User {
	t.Helper()
	email, err := vo.NewEmail(address)
	require.NoError(t, err)
	u, err := user.NewUser("Test User", email, "hash")
	require.NoError(t, err)
	require.NoError(t, NewUserRepository(db).Create(context.Background(), u))
	return u
}

func createTestCustomer(t *testing.T, db *gorm.DB, userID uint) *customer.Customer {
	t.Helper()
	c, err := customer.NewCustomer("test-customer", userID)
	require.NoError(t, err)
	require.NoError(t, NewCustomerRepository(db).Create(context.Background(), c))
	return c
}

func createTestMaterial(t *testing.T, db *gorm.DB, designation string) *material.Material {
	t.Helper()
	m, err := material.NewMaterial(designation)
	require.NoError(t, err)
	require.NoError(t, NewMaterialRepository(db).Create(context.Background(), m))
	return m
}

func createTestSale(t *testing.T, db *gorm.DB, customerID uint) *sale.Sale {
	t.Helper()
	s, err := sale.NewSale("test sale", "description", customerID, nil)
	require.NoError(t, err)
	require.NoError(t, NewSaleRepository(db).Create(context.Background(), s))
	return s
}

func TestUserRepository_CRUD(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	u := createTestUser(t, db, "alice@example.com")
	assert.NotZero(t, u.ID())

	found, err := repo.FindByID(ctx, u.ID())
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "alice@example.com", found.Email().String())

	byEmail, err := repo.FindByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	require.NotNil(t, byEmail)
	assert.Equal(t, u.ID(), byEmail.ID())

	missing, err := repo.FindByID(ctx, 9999)
	require.NoError(t, err)
	assert.Nil(t, missing, "unknown ID returns nil without error")

	require.NoError(t, found.UpdateName("Alice Renamed"))
	require.NoError(t, repo.Update(ctx, found))

	again, err := repo.FindByID(ctx, u.ID())
	require.NoError(t, err)
	assert.Equal(t, "Alice Renamed", again.Name())
}

func TestUserRepository_ExistsByEmail_ExcludesSelf(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice@example.com")
	createTestUser(t, db, "bob@example.com")

	taken, err := repo.ExistsByEmail(ctx, "alice@example.com", 0)
	require.NoError(t, err)
	assert.True(t, taken)

	taken, err = repo.ExistsByEmail(ctx, "alice@example.com", alice.ID())
	require.NoError(t, err)
	assert.False(t, taken, "own email is not a collision")

	taken, err = repo.ExistsByEmail(ctx, "bob@example.com", alice.ID())
	require.NoError(t, err)
	assert.True(t, taken)
}

func TestSaleRepository_AttachAndSyncMaterials(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSaleRepository(db)
	ctx := context.Background()

	u := createTestUser(t, db, "owner@example.com")
	c := createTestCustomer(t, db, u.ID())
	s := createTestSale(t, db, c.ID())

	m1 := createTestMaterial(t, db, "m1")
	m2 := createTestMaterial(t, db, "m2")
	m3 := createTestMaterial(t, db, "m3")

	require.NoError(t, repo.AttachMaterials(ctx, s.ID(), []uint{m1.ID(), m2.ID()}))

	found, err := repo.FindByID(ctx, s.ID())
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint{m1.ID(), m2.ID()}, found.MaterialIDs())

	// attaching an already linked material is a no-op
	require.NoError(t, repo.AttachMaterials(ctx, s.ID(), []uint{m1.ID()}))
	found, err = repo.FindByID(ctx, s.ID())
	require.NoError(t, err)
	assert.Len(t, found.MaterialIDs(), 2)

	// sync replaces the set: m2 dropped, m3 added
	require.NoError(t, repo.SyncMaterials(ctx, s.ID(), []uint{m1.ID(), m3.ID()}))
	found, err = repo.FindByID(ctx, s.ID())
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint{m1.ID(), m3.ID()}, found.MaterialIDs())
}

func TestSaleRepository_DetachMaterial(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSaleRepository(db)
	ctx := context.Background()

	u := createTestUser(t, db, "owner@example.com")
	c := createTestCustomer(t, db, u.ID())
	s1 := createTestSale(t, db, c.ID())
	s2 := createTestSale(t, db, c.ID())
	m := createTestMaterial(t, db, "shared")

	require.NoError(t, repo.AttachMaterials(ctx, s1.ID(), []uint{m.ID()}))
	require.NoError(t, repo.AttachMaterials(ctx, s2.ID(), []uint{m.ID()}))

	require.NoError(t, repo.DetachMaterial(ctx, m.ID()))

	for _, id := range []uint{s1.ID(), s2.ID()} {
		found, err := repo.FindByID(ctx, id)
		require.NoError(t, err)
		assert.Empty(t, found.MaterialIDs())
	}
}

func TestTicketRepository_SyncSales(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTicketRepository(db)
	ctx := context.Background()

	u := createTestUser(t, db, "owner@example.com")
	c := createTestCustomer(t, db, u.ID())
	s1 := createTestSale(t, db, c.ID())
	s2 := createTestSale(t, db, c.ID())

	tk, err := ticket.NewTicket("broken screen", "description", s1.ID())
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, tk))
	require.NoError(t, repo.SyncSales(ctx, tk.ID(), tk.SaleIDs()))

	found, err := repo.FindByID(ctx, tk.ID())
	require.NoError(t, err)
	assert.Equal(t, s1.ID(), found.SaleID())

	require.NoError(t, repo.SyncSales(ctx, tk.ID(), []uint{s2.ID()}))
	found, err = repo.FindByID(ctx, tk.ID())
	require.NoError(t, err)
	assert.Equal(t, []uint{s2.ID()}, found.SaleIDs())

	bySale, err := repo.FindBySaleID(ctx, s1.ID())
	require.NoError(t, err)
	assert.Empty(t, bySale)

	bySale, err = repo.FindBySaleID(ctx, s2.ID())
	require.NoError(t, err)
	require.Len(t, bySale, 1)
	assert.Equal(t, tk.ID(), bySale[0].ID())
}

func TestCustomerRepository_FindByUserID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCustomerRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice@example.com")
	bob := createTestUser(t, db, "bob@example.com")

	createTestCustomer(t, db, alice.ID())
	createTestCustomer(t, db, alice.ID())
	createTestCustomer(t, db, bob.ID())

	forAlice, err := repo.FindByUserID(ctx, alice.ID())
	require.NoError(t, err)
	assert.Len(t, forAlice, 2)

	forBob, err := repo.FindByUserID(ctx, bob.ID())
	require.NoError(t, err)
	assert.Len(t, forBob, 1)
}
