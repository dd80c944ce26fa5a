package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"backoffice/internal/domain/user"
	"backoffice/internal/infrastructure/persistence/mappers"
	"backoffice/internal/infrastructure/persistence/models"
	db "backoffice/internal/shared/db"
)

type UserRepository struct {
	db     *gorm.DB
	mapper mappers.UserMapper
}

func NewUserRepository(gdb *gorm.DB) *UserRepository {
	return &UserRepository{
		db:     gdb,
		mapper: mappers.NewUserMapper(),
	}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	model := r.mapper.ToModel(u)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	u.SetID(model.ID)
	return nil
}

func (r *UserRepository) Update(ctx context.Context, u *user.User) error {
	model := r.mapper.ToModel(u)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.UserModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"name":          model.Name,
			"email":         model.Email,
			"password_hash": model.PasswordHash,
			"updated_at":    model.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update user: %w", result.Error)
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Delete(&models.UserModel{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

// FindByID returns (nil, nil) when no user exists with the given ID.
func (r *UserRepository) FindByID(ctx context.Context, id uint) (*user.User, error) {
	var model models.UserModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

// FindByEmail returns (nil, nil) when no user exists with the given email.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	var model models.UserModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("email = ?", email).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

func (r *UserRepository) List(ctx context.Context) ([]*user.User, error) {
	var rows []models.UserModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	users := make([]*user.User, 0, len(rows))
	for i := range rows {
		u, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, nil
}

// ExistsByEmail reports whether another user than excludeID already uses email.
// Pass excludeID 0 to check against all users.
func (r *UserRepository) ExistsByEmail(ctx context.Context, email string, excludeID uint) (bool, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	query := tx.Model(&models.UserModel{}).Where("email = ?", email)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to count users by email: %w", err)
	}
	return count > 0, nil
}

func (r *UserRepository) ExistsByID(ctx context.Context, id uint) (bool, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Model(&models.UserModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to count users: %w", err)
	}
	return count > 0, nil
}
