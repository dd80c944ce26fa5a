package usecases

import (
	"context"

	"backoffice/internal/domain/user"
	"backoffice/internal/shared/logger"
)

type mockUserRepository struct {
	CreateFunc        func(ctx context.Context, u *user.User) error
	UpdateFunc        func(ctx context.Context, u *user.User) error
	DeleteFunc        func(ctx context.Context, id uint) error
	FindByIDFunc      func(ctx context.Context, id uint) (*user.User, error)
	FindByEmailFunc   func(ctx context.Context, email string) (*user.User, error)
	ListFunc          func(ctx context.Context) ([]*user.User, error)
	ExistsByEmailFunc func(ctx context.Context, email string, excludeID uint) (bool, error)
	ExistsByIDFunc    func(ctx context.Context, id uint) (bool, error)
}

func (m *mockUserRepository) Create(ctx context.Context, u *user.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockUserRepository) FindByID(ctx context.Context, id uint) (*user.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepository) List(ctx context.Context) ([]*user.User, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockUserRepository) ExistsByEmail(ctx context.Context, email string, excludeID uint) (bool, error) {
	if m.ExistsByEmailFunc != nil {
		return m.ExistsByEmailFunc(ctx, email, excludeID)
	}
	return false, nil
}

func (m *mockUserRepository) ExistsByID(ctx context.Context, id uint) (bool, error) {
	if m.ExistsByIDFunc != nil {
		return m.ExistsByIDFunc(ctx, id)
	}
	return false, nil
}

type mockTokenIssuer struct {
	IssueFunc func(userID uint) (string, error)
}

func (m *mockTokenIssuer) Issue(userID uint) (string, error) {
	if m.IssueFunc != nil {
		return m.IssueFunc(userID)
	}
	return "token", nil
}

type mockHasher struct {
	VerifyFunc func(password, hash string) error
}

func (m *mockHasher) Verify(password, hash string) error {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(password, hash)
	}
	return nil
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
