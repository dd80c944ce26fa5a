package models

type MaterialModel struct {
	ID          uint   `gorm:"primaryKey"`
	Designation string `gorm:"size:255;not null"`
	CreatedAt   int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt   int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (MaterialModel) TableName() string {
	return "materials"
}
