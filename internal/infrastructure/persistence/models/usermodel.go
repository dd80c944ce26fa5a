package models

type UserModel struct {
	ID           uint   `gorm:"primaryKey"`
	Name         string `gorm:"size:255;not null"`
	Email        string `gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string `gorm:"size:255;not null"`
	CreatedAt    int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt    int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (UserModel) TableName() string {
	return "users"
}
