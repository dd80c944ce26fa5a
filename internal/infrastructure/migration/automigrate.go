package migration

import (
	"backoffice/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.UserModel{},
		&models.CustomerModel{},
		&models.MaterialModel{},
		&models.SaleModel{},
		&models.TicketModel{},
		&models.SaleMaterialModel{},
		&models.SaleTicketModel{},
	}
}
