package sale

import (
	"fmt"
	"time"
)

// Sale is a deal attached to a customer. Materials are linked through an
// association table and carried here as plain IDs.
type Sale struct {
	id          uint
	title       string
	description string
	customerID  uint
	materialIDs []uint
	createdAt   time.Time
	updatedAt   time.Time
}

func NewSale(title, description string, customerID uint, materialIDs []uint) (*Sale, error) {
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > 255 {
		return nil, fmt.Errorf("title exceeds maximum length of 255 characters")
	}
	if len(description) == 0 {
		return nil, fmt.Errorf("description is required")
	}
	if customerID == 0 {
		return nil, fmt.Errorf("customer ID is required")
	}

	now := time.Now()
	return &Sale{
		title:       title,
		description: description,
		customerID:  customerID,
		materialIDs: dedupe(materialIDs),
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructSale(
	id uint,
	title string,
	description string,
	customerID uint,
	materialIDs []uint,
	createdAt time.Time,
	updatedAt time.Time,
) *Sale {
	return &Sale{
		id:          id,
		title:       title,
		description: description,
		customerID:  customerID,
		materialIDs: materialIDs,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (s *Sale) ID() uint             { return s.id }
func (s *Sale) Title() string        { return s.title }
func (s *Sale) Description() string  { return s.description }
func (s *Sale) CustomerID() uint     { return s.customerID }
func (s *Sale) MaterialIDs() []uint  { return s.materialIDs }
func (s *Sale) CreatedAt() time.Time { return s.createdAt }
func (s *Sale) UpdatedAt() time.Time { return s.updatedAt }

func (s *Sale) SetID(id uint) {
	s.id = id
}

func (s *Sale) Update(title, description string, customerID uint) error {
	if len(title) == 0 {
		return fmt.Errorf("title is required")
	}
	if len(title) > 255 {
		return fmt.Errorf("title exceeds maximum length of 255 characters")
	}
	if len(description) == 0 {
		return fmt.Errorf("description is required")
	}
	if customerID == 0 {
		return fmt.Errorf("customer ID is required")
	}
	s.title = title
	s.description = description
	s.customerID = customerID
	s.updatedAt = time.Now()
	return nil
}

// SetMaterialIDs replaces the linked material set, dropping duplicates.
func (s *Sale) SetMaterialIDs(ids []uint) {
	s.materialIDs = dedupe(ids)
	s.updatedAt = time.Now()
}

func dedupe(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
