package usecases

import (
	"context"

	"backoffice/internal/domain/customer"
	"backoffice/internal/domain/material"
	"backoffice/internal/domain/sale"
	"backoffice/internal/shared/logger"
)

type mockSaleRepository struct {
	CreateFunc           func(ctx context.Context, s *sale.Sale) error
	UpdateFunc           func(ctx context.Context, s *sale.Sale) error
	DeleteFunc           func(ctx context.Context, id uint) error
	FindByIDFunc         func(ctx context.Context, id uint) (*sale.Sale, error)
	FindByCustomerIDFunc func(ctx context.Context, customerID uint) ([]*sale.Sale, error)
	ListFunc             func(ctx context.Context) ([]*sale.Sale, error)
	ExistsByIDFunc       func(ctx context.Context, id uint) (bool, error)
	AttachMaterialsFunc  func(ctx context.Context, saleID uint, materialIDs []uint) error
	SyncMaterialsFunc    func(ctx context.Context, saleID uint, materialIDs []uint) error
	ClearMaterialsFunc   func(ctx context.Context, saleID uint) error
	DetachMaterialFunc   func(ctx context.Context, materialID uint) error
}

func (m *mockSaleRepository) Create(ctx context.Context, s *sale.Sale) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, s)
	}
	return nil
}

func (m *mockSaleRepository) Update(ctx context.Context, s *sale.Sale) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, s)
	}
	return nil
}

func (m *mockSaleRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockSaleRepository) FindByID(ctx context.Context, id uint) (*sale.Sale, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockSaleRepository) FindByCustomerID(ctx context.Context, customerID uint) ([]*sale.Sale, error) {
	if m.FindByCustomerIDFunc != nil {
		return m.FindByCustomerIDFunc(ctx, customerID)
	}
	return nil, nil
}

func (m *mockSaleRepository) List(ctx context.Context) ([]*sale.Sale, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockSaleRepository) ExistsByID(ctx context.Context, id uint) (bool, error) {
	if m.ExistsByIDFunc != nil {
		return m.ExistsByIDFunc(ctx, id)
	}
	return false, nil
}

func (m *mockSaleRepository) AttachMaterials(ctx context.Context, saleID uint, materialIDs []uint) error {
	if m.AttachMaterialsFunc != nil {
		return m.AttachMaterialsFunc(ctx, saleID, materialIDs)
	}
	return nil
}

func (m *mockSaleRepository) SyncMaterials(ctx context.Context, saleID uint, materialIDs []uint) error {
	if m.SyncMaterialsFunc != nil {
		return m.SyncMaterialsFunc(ctx, saleID, materialIDs)
	}
	return nil
}

func (m *mockSaleRepository) ClearMaterials(ctx context.Context, saleID uint) error {
	if m.ClearMaterialsFunc != nil {
		return m.ClearMaterialsFunc(ctx, saleID)
	}
	return nil
}

func (m *mockSaleRepository) DetachMaterial(ctx context.Context, materialID uint) error {
	if m.DetachMaterialFunc != nil {
		return m.DetachMaterialFunc(ctx, materialID)
	}
	return nil
}

type mockCustomerRepository struct {
	ExistsByIDFunc func(ctx context.Context, id uint) (bool, error)
}

func (m *mockCustomerRepository) Create(ctx context.Context, c *customer.Customer) error { return nil }
func (m *mockCustomerRepository) Update(ctx context.Context, c *customer.Customer) error { return nil }
func (m *mockCustomerRepository) Delete(ctx context.Context, id uint) error              { return nil }
func (m *mockCustomerRepository) FindByID(ctx context.Context, id uint) (*customer.Customer, error) {
	return nil, nil
}
func (m *mockCustomerRepository) FindByUserID(ctx context.Context, userID uint) ([]*customer.Customer, error) {
	return nil, nil
}
func (m *mockCustomerRepository) List(ctx context.Context) ([]*customer.Customer, error) {
	return nil, nil
}
func (m *mockCustomerRepository) ExistsByID(ctx context.Context, id uint) (bool, error) {
	if m.ExistsByIDFunc != nil {
		return m.ExistsByIDFunc(ctx, id)
	}
	return true, nil
}

type mockMaterialRepository struct {
	ExistsByIDsFunc func(ctx context.Context, ids []uint) (bool, error)
}

func (m *mockMaterialRepository) Create(ctx context.Context, mat *material.Material) error {
	return nil
}
func (m *mockMaterialRepository) Update(ctx context.Context, mat *material.Material) error {
	return nil
}
func (m *mockMaterialRepository) Delete(ctx context.Context, id uint) error { return nil }
func (m *mockMaterialRepository) FindByID(ctx context.Context, id uint) (*material.Material, error) {
	return nil, nil
}
func (m *mockMaterialRepository) List(ctx context.Context) ([]*material.Material, error) {
	return nil, nil
}
func (m *mockMaterialRepository) ExistsByIDs(ctx context.Context, ids []uint) (bool, error) {
	if m.ExistsByIDsFunc != nil {
		return m.ExistsByIDsFunc(ctx, ids)
	}
	return true, nil
}

type mockTxManager struct{}

func (m *mockTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
