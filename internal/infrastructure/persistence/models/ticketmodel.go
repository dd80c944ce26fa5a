package models

type TicketModel struct {
	ID          uint   `gorm:"primaryKey"`
	Title       string `gorm:"size:255;not null"`
	Description string `gorm:"type:text;not null"`
	CreatedAt   int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt   int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (TicketModel) TableName() string {
	return "tickets"
}

// SaleTicketModel is the sale/ticket association row.
type SaleTicketModel struct {
	SaleID   uint `gorm:"primaryKey;autoIncrement:false"`
	TicketID uint `gorm:"primaryKey;autoIncrement:false"`
}

func (SaleTicketModel) TableName() string {
	return "sale_tickets"
}
