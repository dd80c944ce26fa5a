package cascade

import (
	"context"

	"backoffice/internal/domain/customer"
	"backoffice/internal/domain/sale"
	"backoffice/internal/domain/ticket"
	"backoffice/internal/domain/user"
	"backoffice/internal/shared/logger"
)

// TxManager runs a function inside a database transaction. The transaction
// travels in the context so repositories pick it up transparently.
type TxManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// Deleter removes an entity together with everything hanging off it:
// a user owns customers, a customer owns sales, a sale owns tickets and
// association rows. Each public method runs as a single transaction.
type Deleter struct {
	userRepo     user.Repository
	customerRepo customer.Repository
	saleRepo     sale.Repository
	ticketRepo   ticket.Repository
	tx           TxManager
	logger       logger.Interface
}

func NewDeleter(
	userRepo user.Repository,
	customerRepo customer.Repository,
	saleRepo sale.Repository,
	ticketRepo ticket.Repository,
	tx TxManager,
	logger logger.Interface,
) *Deleter {
	return &Deleter{
		userRepo:     userRepo,
		customerRepo: customerRepo,
		saleRepo:     saleRepo,
		ticketRepo:   ticketRepo,
		tx:           tx,
		logger:       logger,
	}
}

func (d *Deleter) DeleteUser(ctx context.Context, userID uint) error {
	return d.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		return d.deleteUserScope(ctx, userID)
	})
}

func (d *Deleter) DeleteCustomer(ctx context.Context, customerID uint) error {
	return d.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		return d.deleteCustomerScope(ctx, customerID)
	})
}

func (d *Deleter) DeleteSale(ctx context.Context, saleID uint) error {
	return d.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		return d.deleteSaleScope(ctx, saleID)
	})
}

func (d *Deleter) deleteUserScope(ctx context.Context, userID uint) error {
	customers, err := d.customerRepo.FindByUserID(ctx, userID)
	if err != nil {
		return err
	}
	for _, c := range customers {
		if err := d.deleteCustomerScope(ctx, c.ID()); err != nil {
			return err
		}
	}

	if err := d.userRepo.Delete(ctx, userID); err != nil {
		return err
	}

	d.logger.Infow("user deleted with cascade", "user_id", userID, "customers", len(customers))
	return nil
}

func (d *Deleter) deleteCustomerScope(ctx context.Context, customerID uint) error {
	sales, err := d.saleRepo.FindByCustomerID(ctx, customerID)
	if err != nil {
		return err
	}
	for _, s := range sales {
		if err := d.deleteSaleScope(ctx, s.ID()); err != nil {
			return err
		}
	}

	if err := d.customerRepo.Delete(ctx, customerID); err != nil {
		return err
	}

	d.logger.Infow("customer deleted with cascade", "customer_id", customerID, "sales", len(sales))
	return nil
}

func (d *Deleter) deleteSaleScope(ctx context.Context, saleID uint) error {
	tickets, err := d.ticketRepo.FindBySaleID(ctx, saleID)
	if err != nil {
		return err
	}
	for _, t := range tickets {
		if err := d.ticketRepo.ClearSales(ctx, t.ID()); err != nil {
			return err
		}
		if err := d.ticketRepo.Delete(ctx, t.ID()); err != nil {
			return err
		}
	}

	if err := d.saleRepo.ClearMaterials(ctx, saleID); err != nil {
		return err
	}
	if err := d.saleRepo.Delete(ctx, saleID); err != nil {
		return err
	}

	d.logger.Infow("sale deleted with cascade", "sale_id", saleID, "tickets", len(tickets))
	return nil
}
