package usecases

import (
	"context"

	"backoffice/internal/domain/material"
	"backoffice/internal/domain/sale"
	"backoffice/internal/shared/logger"
)

type mockMaterialRepository struct {
	CreateFunc      func(ctx context.Context, m *material.Material) error
	UpdateFunc      func(ctx context.Context, m *material.Material) error
	DeleteFunc      func(ctx context.Context, id uint) error
	FindByIDFunc    func(ctx context.Context, id uint) (*material.Material, error)
	ListFunc        func(ctx context.Context) ([]*material.Material, error)
	ExistsByIDsFunc func(ctx context.Context, ids []uint) (bool, error)
}

func (m *mockMaterialRepository) Create(ctx context.Context, mat *material.Material) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, mat)
	}
	return nil
}

func (m *mockMaterialRepository) Update(ctx context.Context, mat *material.Material) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, mat)
	}
	return nil
}

func (m *mockMaterialRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockMaterialRepository) FindByID(ctx context.Context, id uint) (*material.Material, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockMaterialRepository) List(ctx context.Context) ([]*material.Material, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockMaterialRepository) ExistsByIDs(ctx context.Context, ids []uint) (bool, error) {
	if m.ExistsByIDsFunc != nil {
		return m.ExistsByIDsFunc(ctx, ids)
	}
	return true, nil
}

type mockSaleRepository struct {
	DetachMaterialFunc func(ctx context.Context, materialID uint) error
}

func (m *mockSaleRepository) Create(ctx context.Context, s *sale.Sale) error { return nil }
func (m *mockSaleRepository) Update(ctx context.Context, s *sale.Sale) error { return nil }
func (m *mockSaleRepository) Delete(ctx context.Context, id uint) error      { return nil }
func (m *mockSaleRepository) FindByID(ctx context.Context, id uint) (*sale.Sale, error) {
	return nil, nil
}
func (m *mockSaleRepository) FindByCustomerID(ctx context.Context, customerID uint) ([]*sale.Sale, error) {
	return nil, nil
}
func (m *mockSaleRepository) List(ctx context.Context) ([]*sale.Sale, error) { return nil, nil }
func (m *mockSaleRepository) ExistsByID(ctx context.Context, id uint) (bool, error) {
	return false, nil
}
func (m *mockSaleRepository) AttachMaterials(ctx context.Context, saleID uint, materialIDs []uint) error {
	return nil
}
func (m *mockSaleRepository) SyncMaterials(ctx context.Context, saleID uint, materialIDs []uint) error {
	return nil
}
func (m *mockSaleRepository) ClearMaterials(ctx context.Context, saleID uint) error { return nil }
func (m *mockSaleRepository) DetachMaterial(ctx context.Context, materialID uint) error {
	if m.DetachMaterialFunc != nil {
		return m.DetachMaterialFunc(ctx, materialID)
	}
	return nil
}

// mockTxManager runs the function directly, without a real transaction.
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
