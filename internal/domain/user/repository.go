package user

import "context"

type Repository interface {
	Create(ctx context.Context, user *User) error
	Update(ctx context.Context, user *User) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context) ([]*User, error)
	ExistsByEmail(ctx context.Context, email string, excludeID uint) (bool, error)
	ExistsByID(ctx context.Context, id uint) (bool, error)
}
