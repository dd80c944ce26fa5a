package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"backoffice/internal/domain/ticket"
	"backoffice/internal/infrastructure/persistence/mappers"
	"backoffice/internal/infrastructure/persistence/models"
	db "backoffice/internal/shared/db"
)

type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketRepository(gdb *gorm.DB) *TicketRepository {
	return &TicketRepository{
		db:     gdb,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TicketRepository) Create(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create ticket: %w", err)
	}

	t.SetID(model.ID)
	return nil
}

func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.TicketModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"title":       model.Title,
			"description": model.Description,
			"updated_at":  model.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update ticket: %w", result.Error)
	}
	return nil
}

func (r *TicketRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Delete(&models.TicketModel{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete ticket: %w", err)
	}
	return nil
}

// FindByID returns (nil, nil) when no ticket exists with the given ID.
func (r *TicketRepository) FindByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	var model models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}

	saleIDs, err := r.saleIDs(tx, model.ID)
	if err != nil {
		return nil, err
	}
	return r.mapper.ToDomain(&model, saleIDs), nil
}

func (r *TicketRepository) FindBySaleID(ctx context.Context, saleID uint) ([]*ticket.Ticket, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var ticketIDs []uint
	if err := tx.
		Model(&models.SaleTicketModel{}).
		Where("sale_id = ?", saleID).
		Order("ticket_id").
		Pluck("ticket_id", &ticketIDs).Error; err != nil {
		return nil, fmt.Errorf("failed to load ticket links: %w", err)
	}
	if len(ticketIDs) == 0 {
		return nil, nil
	}

	var rows []models.TicketModel
	if err := tx.Where("id IN ?", ticketIDs).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list tickets by sale: %w", err)
	}
	return r.toDomainList(tx, rows)
}

func (r *TicketRepository) List(ctx context.Context) ([]*ticket.Ticket, error) {
	var rows []models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}
	return r.toDomainList(tx, rows)
}

// SyncSales replaces the linked sale set with exactly saleIDs.
func (r *TicketRepository) SyncSales(ctx context.Context, ticketID uint, saleIDs []uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("ticket_id = ?", ticketID).Delete(&models.SaleTicketModel{}).Error; err != nil {
		return fmt.Errorf("failed to clear sale links: %w", err)
	}

	seen := make(map[uint]struct{}, len(saleIDs))
	var toInsert []models.SaleTicketModel
	for _, id := range saleIDs {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		toInsert = append(toInsert, models.SaleTicketModel{SaleID: id, TicketID: ticketID})
	}
	if len(toInsert) == 0 {
		return nil
	}

	if err := tx.Create(&toInsert).Error; err != nil {
		return fmt.Errorf("failed to sync sales: %w", err)
	}
	return nil
}

func (r *TicketRepository) ClearSales(ctx context.Context, ticketID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("ticket_id = ?", ticketID).Delete(&models.SaleTicketModel{}).Error; err != nil {
		return fmt.Errorf("failed to clear sale links: %w", err)
	}
	return nil
}

func (r *TicketRepository) saleIDs(tx *gorm.DB, ticketID uint) ([]uint, error) {
	var ids []uint
	if err := tx.
		Model(&models.SaleTicketModel{}).
		Where("ticket_id = ?", ticketID).
		Order("sale_id").
		Pluck("sale_id", &ids).Error; err != nil {
		return nil, fmt.Errorf("failed to load sale links: %w", err)
	}
	return ids, nil
}

func (r *TicketRepository) toDomainList(tx *gorm.DB, rows []models.TicketModel) ([]*ticket.Ticket, error) {
	tickets := make([]*ticket.Ticket, 0, len(rows))
	for i := range rows {
		saleIDs, err := r.saleIDs(tx, rows[i].ID)
		if err != nil {
			return nil, err
		}
		tickets = append(tickets, r.mapper.ToDomain(&rows[i], saleIDs))
	}
	return tickets, nil
}
