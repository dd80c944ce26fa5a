package customer

import (
	"fmt"
	"time"
)

// Customer is a client record owned by a user account.
type Customer struct {
	id        uint
	nickname  string
	userID    uint
	createdAt time.Time
	updatedAt time.Time
}

func NewCustomer(nickname string, userID uint) (*Customer, error) {
	if len(nickname) == 0 {
		return nil, fmt.Errorf("nickname is required")
	}
	if len(nickname) > 255 {
		return nil, fmt.Errorf("nickname exceeds maximum length of 255 characters")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}

	now := time.Now()
	return &Customer{
		nickname:  nickname,
		userID:    userID,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructCustomer(id uint, nickname string, userID uint, createdAt, updatedAt time.Time) *Customer {
	return &Customer{
		id:        id,
		nickname:  nickname,
		userID:    userID,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (c *Customer) ID() uint             { return c.id }
func (c *Customer) Nickname() string     { return c.nickname }
func (c *Customer) UserID() uint         { return c.userID }
func (c *Customer) CreatedAt() time.Time { return c.createdAt }
func (c *Customer) UpdatedAt() time.Time { return c.updatedAt }

func (c *Customer) SetID(id uint) {
	c.id = id
}

func (c *Customer) Update(nickname string, userID uint) error {
	if len(nickname) == 0 {
		return fmt.Errorf("nickname is required")
	}
	if len(nickname) > 255 {
		return fmt.Errorf("nickname exceeds maximum length of 255 characters")
	}
	if userID == 0 {
		return fmt.Errorf("user ID is required")
	}
	c.nickname = nickname
	c.userID = userID
	c.updatedAt = time.Now()
	return nil
}
