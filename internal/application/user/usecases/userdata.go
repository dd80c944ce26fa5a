package usecases

import (
	"time"

	"backoffice/internal/domain/user"
)

// UserData is the use case level view of a user account. The password
// hash never leaves the application layer.
type UserData struct {
	ID          uint
	Name        string
	DisplayName string
	Email       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func toUserData(u *user.User) UserData {
	return UserData{
		ID:          u.ID(),
		Name:        u.Name(),
		DisplayName: u.DisplayName(),
		Email:       u.Email().String(),
		CreatedAt:   u.CreatedAt(),
		UpdatedAt:   u.UpdatedAt(),
	}
}

// PasswordHasher abstracts password hashing for account creation and update.
type PasswordHasher interface {
	Hash(password string) (string, error)
}
