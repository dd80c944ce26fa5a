package usecases

import (
	"context"

	"backoffice/internal/domain/customer"
	"backoffice/internal/domain/user"
	"backoffice/internal/shared/logger"
)

type mockCustomerRepository struct {
	CreateFunc       func(ctx context.Context, c *customer.Customer) error
	UpdateFunc       func(ctx context.Context, c *customer.Customer) error
	DeleteFunc       func(ctx context.Context, id uint) error
	FindByIDFunc     func(ctx context.Context, id uint) (*customer.Customer, error)
	FindByUserIDFunc func(ctx context.Context, userID uint) ([]*customer.Customer, error)
	ListFunc         func(ctx context.Context) ([]*customer.Customer, error)
	ExistsByIDFunc   func(ctx context.Context, id uint) (bool, error)
}

func (m *mockCustomerRepository) Create(ctx context.Context, c *customer.Customer) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, c)
	}
	return nil
}

func (m *mockCustomerRepository) Update(ctx context.Context, c *customer.Customer) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, c)
	}
	return nil
}

func (m *mockCustomerRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockCustomerRepository) FindByID(ctx context.Context, id uint) (*customer.Customer, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockCustomerRepository) FindByUserID(ctx context.Context, userID uint) ([]*customer.Customer, error) {
	if m.FindByUserIDFunc != nil {
		return m.FindByUserIDFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockCustomerRepository) List(ctx context.Context) ([]*customer.Customer, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockCustomerRepository) ExistsByID(ctx context.Context, id uint) (bool, error) {
	if m.ExistsByIDFunc != nil {
		return m.ExistsByIDFunc(ctx, id)
	}
	return false, nil
}

type mockUserRepository struct {
	ExistsByIDFunc func(ctx context.Context, id uint) (bool, error)
}

func (m *mockUserRepository) Create(ctx context.Context, u *user.User) error { return nil }
func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error { return nil }
func (m *mockUserRepository) Delete(ctx context.Context, id uint) error      { return nil }
func (m *mockUserRepository) FindByID(ctx context.Context, id uint) (*user.User, error) {
	return nil, nil
}
func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	return nil, nil
}
func (m *mockUserRepository) List(ctx context.Context) ([]*user.User, error) { return nil, nil }
func (m *mockUserRepository) ExistsByEmail(ctx context.Context, email string, excludeID uint) (bool, error) {
	return false, nil
}
func (m *mockUserRepository) ExistsByID(ctx context.Context, id uint) (bool, error) {
	if m.ExistsByIDFunc != nil {
		return m.ExistsByIDFunc(ctx, id)
	}
	return false, nil
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
