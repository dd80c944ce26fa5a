package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"backoffice/internal/domain/material"
	"backoffice/internal/infrastructure/persistence/mappers"
	"backoffice/internal/infrastructure/persistence/models"
	db "backoffice/internal/shared/db"
)

type MaterialRepository struct {
	db     *gorm.DB
	mapper mappers.MaterialMapper
}

func NewMaterialRepository(gdb *gorm.DB) *MaterialRepository {
	return &MaterialRepository{
		db:     gdb,
		mapper: mappers.NewMaterialMapper(),
	}
}

func (r *MaterialRepository) Create(ctx context.Context, m *material.Material) error {
	model := r.mapper.ToModel(m)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create material: %w", err)
	}

	m.SetID(model.ID)
	return nil
}

func (r *MaterialRepository) Update(ctx context.Context, m *material.Material) error {
	model := r.mapper.ToModel(m)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.MaterialModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"designation": model.Designation,
			"updated_at":  model.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update material: %w", result.Error)
	}
	return nil
}

func (r *MaterialRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Delete(&models.MaterialModel{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete material: %w", err)
	}
	return nil
}

// FindByID returns (nil, nil) when no material exists with the given ID.
func (r *MaterialRepository) FindByID(ctx context.Context, id uint) (*material.Material, error) {
	var model models.MaterialModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find material: %w", err)
	}
	return r.mapper.ToDomain(&model), nil
}

func (r *MaterialRepository) List(ctx context.Context) ([]*material.Material, error) {
	var rows []models.MaterialModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list materials: %w", err)
	}

	materials := make([]*material.Material, 0, len(rows))
	for i := range rows {
		materials = append(materials, r.mapper.ToDomain(&rows[i]))
	}
	return materials, nil
}

// ExistsByIDs reports whether every ID in ids refers to an existing material.
func (r *MaterialRepository) ExistsByIDs(ctx context.Context, ids []uint) (bool, error) {
	if len(ids) == 0 {
		return true, nil
	}

	unique := make(map[uint]struct{}, len(ids))
	for _, id := range ids {
		unique[id] = struct{}{}
	}
	distinct := make([]uint, 0, len(unique))
	for id := range unique {
		distinct = append(distinct, id)
	}

	var count int64
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Model(&models.MaterialModel{}).Where("id IN ?", distinct).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to count materials: %w", err)
	}
	return count == int64(len(distinct)), nil
}
