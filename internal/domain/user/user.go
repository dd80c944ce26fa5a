package user

import (
	"fmt"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	vo "backoffice/internal/domain/user/valueobjects"
)

// User is an account that can authenticate against the API and own customers.
type User struct {
	id           uint
	name         string
	email        vo.Email
	passwordHash string
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(name string, email vo.Email, passwordHash string) (*User, error) {
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	if len(name) > 255 {
		return nil, fmt.Errorf("name exceeds maximum length of 255 characters")
	}
	if len(passwordHash) == 0 {
		return nil, fmt.Errorf("password hash is required")
	}

	now := time.Now()
	return &User{
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructUser(
	id uint,
	name string,
	email vo.Email,
	passwordHash string,
	createdAt time.Time,
	updatedAt time.Time,
) *User {
	return &User{
		id:           id,
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (u *User) ID() uint              { return u.id }
func (u *User) Name() string          { return u.name }
func (u *User) Email() vo.Email       { return u.email }
func (u *User) PasswordHash() string  { return u.passwordHash }
func (u *User) CreatedAt() time.Time  { return u.createdAt }
func (u *User) UpdatedAt() time.Time  { return u.updatedAt }

func (u *User) SetID(id uint) {
	u.id = id
}

// DisplayName returns the name in title case for outbound notifications.
func (u *User) DisplayName() string {
	return cases.Title(language.Und).String(u.name)
}

func (u *User) UpdateName(name string) error {
	if len(name) == 0 {
		return fmt.Errorf("name is required")
	}
	if len(name) > 255 {
		return fmt.Errorf("name exceeds maximum length of 255 characters")
	}
	u.name = name
	u.updatedAt = time.Now()
	return nil
}

func (u *User) UpdateEmail(email vo.Email) {
	u.email = email
	u.updatedAt = time.Now()
}

func (u *User) UpdatePasswordHash(hash string) error {
	if len(hash) == 0 {
		return fmt.Errorf("password hash is required")
	}
	u.passwordHash = hash
	u.updatedAt = time.Now()
	return nil
}
