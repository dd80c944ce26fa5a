package sale

import "context"

type Repository interface {
	Create(ctx context.Context, sale *Sale) error
	Update(ctx context.Context, sale *Sale) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*Sale, error)
	FindByCustomerID(ctx context.Context, customerID uint) ([]*Sale, error)
	List(ctx context.Context) ([]*Sale, error)
	ExistsByID(ctx context.Context, id uint) (bool, error)

	// AttachMaterials adds links without touching existing ones.
	AttachMaterials(ctx context.Context, saleID uint, materialIDs []uint) error
	// SyncMaterials replaces the linked set with exactly materialIDs.
	SyncMaterials(ctx context.Context, saleID uint, materialIDs []uint) error
	ClearMaterials(ctx context.Context, saleID uint) error
	// DetachMaterial removes one material from every sale it is linked to.
	DetachMaterial(ctx context.Context, materialID uint) error
}
