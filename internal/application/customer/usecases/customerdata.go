package usecases

import (
	"time"

	"backoffice/internal/domain/customer"
)

type CustomerData struct {
	ID        uint
	Nickname  string
	UserID    uint
	CreatedAt time.Time
	UpdatedAt time.Time
}

func toCustomerData(c *customer.Customer) CustomerData {
	return CustomerData{
		ID:        c.ID(),
		Nickname:  c.Nickname(),
		UserID:    c.UserID(),
		CreatedAt: c.CreatedAt(),
		UpdatedAt: c.UpdatedAt(),
	}
}
