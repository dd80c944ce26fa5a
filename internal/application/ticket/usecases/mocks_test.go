package usecases

import (
	"context"

	"backoffice/internal/domain/sale"
	"backoffice/internal/domain/ticket"
	"backoffice/internal/shared/logger"
)

type mockTicketRepository struct {
	CreateFunc       func(ctx context.Context, t *ticket.Ticket) error
	UpdateFunc       func(ctx context.Context, t *ticket.Ticket) error
	DeleteFunc       func(ctx context.Context, id uint) error
	FindByIDFunc     func(ctx context.Context, id uint) (*ticket.Ticket, error)
	FindBySaleIDFunc func(ctx context.Context, saleID uint) ([]*ticket.Ticket, error)
	ListFunc         func(ctx context.Context) ([]*ticket.Ticket, error)
	SyncSalesFunc    func(ctx context.Context, ticketID uint, saleIDs []uint) error
	ClearSalesFunc   func(ctx context.Context, ticketID uint) error
}

func (m *mockTicketRepository) Create(ctx context.Context, t *ticket.Ticket) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockTicketRepository) FindByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockTicketRepository) FindBySaleID(ctx context.Context, saleID uint) ([]*ticket.Ticket, error) {
	if m.FindBySaleIDFunc != nil {
		return m.FindBySaleIDFunc(ctx, saleID)
	}
	return nil, nil
}

func (m *mockTicketRepository) List(ctx context.Context) ([]*ticket.Ticket, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockTicketRepository) SyncSales(ctx context.Context, ticketID uint, saleIDs []uint) error {
	if m.SyncSalesFunc != nil {
		return m.SyncSalesFunc(ctx, ticketID, saleIDs)
	}
	return nil
}

func (m *mockTicketRepository) ClearSales(ctx context.Context, ticketID uint) error {
	if m.ClearSalesFunc != nil {
		return m.ClearSalesFunc(ctx, ticketID)
	}
	return nil
}

type mockSaleRepository struct {
	ExistsByIDFunc func(ctx context.Context, id uint) (bool, error)
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
	if m.ExistsByIDFunc != nil {
		return m.ExistsByIDFunc(ctx, id)
	}
	return true, nil
}
func (m *mockSaleRepository) AttachMaterials(ctx context.Context, saleID uint, materialIDs []uint) error {
	return nil
}
func (m *mockSaleRepository) SyncMaterials(ctx context.Context, saleID uint, materialIDs []uint) error {
	return nil
}
func (m *mockSaleRepository) ClearMaterials(ctx context.Context, saleID uint) error { return nil }
func (m *mockSaleRepository) DetachMaterial(ctx context.Context, materialID uint) error {
	return nil
}

type mockNotifier struct {
	NotifyTicketCreatedFunc func(ticketID uint, title, descriptionHTML string) error
}

func (m *mockNotifier) NotifyTicketCreated(ticketID uint, title, descriptionHTML string) error {
	if m.NotifyTicketCreatedFunc != nil {
		return m.NotifyTicketCreatedFunc(ticketID, title, descriptionHTML)
	}
	return nil
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
