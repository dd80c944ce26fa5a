package ticket

import "context"

type Repository interface {
	Create(ctx context.Context, ticket *Ticket) error
	Update(ctx context.Context, ticket *Ticket) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*Ticket, error)
	FindBySaleID(ctx context.Context, saleID uint) ([]*Ticket, error)
	List(ctx context.Context) ([]*Ticket, error)

	// SyncSales replaces the linked sale set with exactly saleIDs.
	SyncSales(ctx context.Context, ticketID uint, saleIDs []uint) error
	ClearSales(ctx context.Context, ticketID uint) error
}
