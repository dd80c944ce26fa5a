package models

type SaleModel struct {
	ID          uint   `gorm:"primaryKey"`
	Title       string `gorm:"size:255;not null"`
	Description string `gorm:"type:text;not null"`
	CustomerID  uint   `gorm:"not null;index"`
	CreatedAt   int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt   int64  `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (SaleModel) TableName() string {
	return "sales"
}

// SaleMaterialModel is the sale/material association row.
type SaleMaterialModel struct {
	SaleID     uint `gorm:"primaryKey;autoIncrement:false"`
	MaterialID uint `gorm:"primaryKey;autoIncrement:false"`
}

func (SaleMaterialModel) TableName() string {
	return "sale_materials"
}
