package customer

import "context"

type Repository interface {
	Create(ctx context.Context, customer *Customer) error
	Update(ctx context.Context, customer *Customer) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*Customer, error)
	FindByUserID(ctx context.Context, userID uint) ([]*Customer, error)
	List(ctx context.Context) ([]*Customer, error)
	ExistsByID(ctx context.Context, id uint) (bool, error)
}
