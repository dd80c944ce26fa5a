package material

import "context"

type Repository interface {
	Create(ctx context.Context, material *Material) error
	Update(ctx context.Context, material *Material) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*Material, error)
	List(ctx context.Context) ([]*Material, error)
	ExistsByIDs(ctx context.Context, ids []uint) (bool, error)
}
