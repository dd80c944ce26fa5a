package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"backoffice/internal/domain/customer"
	"backoffice/internal/infrastructure/persistence/mappers"
	"backoffice/internal/infrastructure/persistence/models"
	db "backoffice/internal/shared/db"
)

type CustomerRepository struct {
	db     *gorm.DB
	mapper mappers.CustomerMapper
}

func NewCustomerRepository(gdb *gorm.DB) *CustomerRepository {
	return &CustomerRepository{
		db:     gdb,
		mapper: mappers.NewCustomerMapper(),
	}
}

func (r *CustomerRepository) Create(ctx context.Context, c *customer.Customer) error {
	model := r.mapper.ToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create customer: %w", err)
	}

	c.SetID(model.ID)
	return nil
}

func (r *CustomerRepository) Update(ctx context.Context, c *customer.Customer) error {
	model := r.mapper.ToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.CustomerModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"nickname":   model.Nickname,
			"user_id":    model.UserID,
			"updated_at": model.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update customer: %w", result.Error)
	}
	return nil
}

func (r *CustomerRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Delete(&models.CustomerModel{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete customer: %w", err)
	}
	return nil
}

// FindByID returns (nil, nil) when no customer exists with the given ID.
func (r *CustomerRepository) FindByID(ctx context.Context, id uint) (*customer.Customer, error) {
	var model models.CustomerModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find customer: %w", err)
	}
	return r.mapper.ToDomain(&model), nil
}

func (r *CustomerRepository) FindByUserID(ctx context.Context, userID uint) ([]*customer.Customer, error) {
	var rows []models.CustomerModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("user_id = ?", userID).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list customers by user: %w", err)
	}

	customers := make([]*customer.Customer, 0, len(rows))
	for i := range rows {
		customers = append(customers, r.mapper.ToDomain(&rows[i]))
	}
	return customers, nil
}

func (r *CustomerRepository) List(ctx context.Context) ([]*customer.Customer, error) {
	var rows []models.CustomerModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}

	customers := make([]*customer.Customer, 0, len(rows))
	for i := range rows {
		customers = append(customers, r.mapper.ToDomain(&rows[i]))
	}
	return customers, nil
}

func (r *CustomerRepository) ExistsByID(ctx context.Context, id uint) (bool, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Model(&models.CustomerModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to count customers: %w", err)
	}
	return count > 0, nil
}
