package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"backoffice/internal/domain/sale"
	"backoffice/internal/infrastructure/persistence/mappers"
	"backoffice/internal/infrastructure/persistence/models"
	db "backoffice/internal/shared/db"
)

type SaleRepository struct {
	db     *gorm.DB
	mapper mappers.SaleMapper
}

func NewSaleRepository(gdb *gorm.DB) *SaleRepository {
	return &SaleRepository{
		db:     gdb,
		mapper: mappers.NewSaleMapper(),
	}
}

func (r *SaleRepository) Create(ctx context.Context, s *sale.Sale) error {
	model := r.mapper.ToModel(s)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create sale: %w", err)
	}

	s.SetID(model.ID)
	return nil
}

func (r *SaleRepository) Update(ctx context.Context, s *sale.Sale) error {
	model := r.mapper.ToModel(s)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.SaleModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"title":       model.Title,
			"description": model.Description,
			"customer_id": model.CustomerID,
			"updated_at":  model.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update sale: %w", result.Error)
	}
	return nil
}

func (r *SaleRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Delete(&models.SaleModel{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete sale: %w", err)
	}
	return nil
}

// FindByID returns (nil, nil) when no sale exists with the given ID.
func (r *SaleRepository) FindByID(ctx context.Context, id uint) (*sale.Sale, error) {
	var model models.SaleModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find sale: %w", err)
	}

	materialIDs, err := r.materialIDs(tx, model.ID)
	if err != nil {
		return nil, err
	}
	return r.mapper.ToDomain(&model, materialIDs), nil
}

func (r *SaleRepository) FindByCustomerID(ctx context.Context, customerID uint) ([]*sale.Sale, error) {
	var rows []models.SaleModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("customer_id = ?", customerID).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list sales by customer: %w", err)
	}
	return r.toDomainList(tx, rows)
}

func (r *SaleRepository) List(ctx context.Context) ([]*sale.Sale, error) {
	var rows []models.SaleModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list sales: %w", err)
	}
	return r.toDomainList(tx, rows)
}

func (r *SaleRepository) ExistsByID(ctx context.Context, id uint) (bool, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Model(&models.SaleModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to count sales: %w", err)
	}
	return count > 0, nil
}

// AttachMaterials adds links without touching existing ones. Already linked
// materials are skipped so attaching is idempotent.
func (r *SaleRepository) AttachMaterials(ctx context.Context, saleID uint, materialIDs []uint) error {
	if len(materialIDs) == 0 {
		return nil
	}
	tx := db.GetTxFromContext(ctx, r.db)

	existing, err := r.materialIDs(tx, saleID)
	if err != nil {
		return err
	}
	linked := make(map[uint]struct{}, len(existing))
	for _, id := range existing {
		linked[id] = struct{}{}
	}

	var toInsert []models.SaleMaterialModel
	for _, id := range materialIDs {
		if _, ok := linked[id]; ok {
			continue
		}
		linked[id] = struct{}{}
		toInsert = append(toInsert, models.SaleMaterialModel{SaleID: saleID, MaterialID: id})
	}
	if len(toInsert) == 0 {
		return nil
	}

	if err := tx.Create(&toInsert).Error; err != nil {
		return fmt.Errorf("failed to attach materials: %w", err)
	}
	return nil
}

// SyncMaterials replaces the linked set with exactly materialIDs.
func (r *SaleRepository) SyncMaterials(ctx context.Context, saleID uint, materialIDs []uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("sale_id = ?", saleID).Delete(&models.SaleMaterialModel{}).Error; err != nil {
		return fmt.Errorf("failed to clear material links: %w", err)
	}

	seen := make(map[uint]struct{}, len(materialIDs))
	var toInsert []models.SaleMaterialModel
	for _, id := range materialIDs {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		toInsert = append(toInsert, models.SaleMaterialModel{SaleID: saleID, MaterialID: id})
	}
	if len(toInsert) == 0 {
		return nil
	}

	if err := tx.Create(&toInsert).Error; err != nil {
		return fmt.Errorf("failed to sync materials: %w", err)
	}
	return nil
}

func (r *SaleRepository) ClearMaterials(ctx context.Context, saleID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("sale_id = ?", saleID).Delete(&models.SaleMaterialModel{}).Error; err != nil {
		return fmt.Errorf("failed to clear material links: %w", err)
	}
	return nil
}

// DetachMaterial removes one material from every sale it is linked to.
func (r *SaleRepository) DetachMaterial(ctx context.Context, materialID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("material_id = ?", materialID).Delete(&models.SaleMaterialModel{}).Error; err != nil {
		return fmt.Errorf("failed to detach material: %w", err)
	}
	return nil
}

func (r *SaleRepository) materialIDs(tx *gorm.DB, saleID uint) ([]uint, error) {
	var ids []uint
	if err := tx.
		Model(&models.SaleMaterialModel{}).
		Where("sale_id = ?", saleID).
		Order("material_id").
		Pluck("material_id", &ids).Error; err != nil {
		return nil, fmt.Errorf("failed to load material links: %w", err)
	}
	return ids, nil
}

func (r *SaleRepository) toDomainList(tx *gorm.DB, rows []models.SaleModel) ([]*sale.Sale, error) {
	sales := make([]*sale.Sale, 0, len(rows))
	for i := range rows {
		materialIDs, err := r.materialIDs(tx, rows[i].ID)
		if err != nil {
			return nil, err
		}
		sales = append(sales, r.mapper.ToDomain(&rows[i], materialIDs))
	}
	return sales, nil
}
