package ticket

import (
	"fmt"
	"time"
)

// Ticket is a support item raised against a sale. The link lives in an
// association table; the API exposes a single sale per ticket.
type Ticket struct {
	id          uint
	title       string
	description string
	saleIDs     []uint
	createdAt   time.Time
	updatedAt   time.Time
}

func NewTicket(title, description string, saleID uint) (*Ticket, error) {
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > 255 {
		return nil, fmt.Errorf("title exceeds maximum length of 255 characters")
	}
	if len(description) == 0 {
		return nil, fmt.Errorf("description is required")
	}
	if saleID == 0 {
		return nil, fmt.Errorf("sale ID is required")
	}

	now := time.Now()
	return &Ticket{
		title:       title,
		description: description,
		saleIDs:     []uint{saleID},
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructTicket(
	id uint,
	title string,
	description string,
	saleIDs []uint,
	createdAt time.Time,
	updatedAt time.Time,
) *Ticket {
	return &Ticket{
		id:          id,
		title:       title,
		description: description,
		saleIDs:     saleIDs,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (t *Ticket) ID() uint             { return t.id }
func (t *Ticket) Title() string        { return t.title }
func (t *Ticket) Description() string  { return t.description }
func (t *Ticket) SaleIDs() []uint      { return t.saleIDs }
func (t *Ticket) CreatedAt() time.Time { return t.createdAt }
func (t *Ticket) UpdatedAt() time.Time { return t.updatedAt }

// SaleID returns the primary linked sale, or 0 when none is linked.
func (t *Ticket) SaleID() uint {
	if len(t.saleIDs) == 0 {
		return 0
	}
	return t.saleIDs[0]
}

func (t *Ticket) SetID(id uint) {
	t.id = id
}

func (t *Ticket) Update(title, description string, saleID uint) error {
	if len(title) == 0 {
		return fmt.Errorf("title is required")
	}
	if len(title) > 255 {
		return fmt.Errorf("title exceeds maximum length of 255 characters")
	}
	if len(description) == 0 {
		return fmt.Errorf("description is required")
	}
	if saleID == 0 {
		return fmt.Errorf("sale ID is required")
	}
	t.title = title
	t.description = description
	t.saleIDs = []uint{saleID}
	t.updatedAt = time.Now()
	return nil
}
