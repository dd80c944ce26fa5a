package material

import (
	"fmt"
	"time"
)

// Material is a catalog item that can be linked to sales.
type Material struct {
	id          uint
	designation string
	createdAt   time.Time
	updatedAt   time.Time
}

func NewMaterial(designation string) (*Material, error) {
	if len(designation) == 0 {
		return nil, fmt.Errorf("designation is required")
	}
	if len(designation) > 255 {
		return nil, fmt.Errorf("designation exceeds maximum length of 255 characters")
	}

	now := time.Now()
	return &Material{
		designation: designation,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructMaterial(id uint, designation string, createdAt, updatedAt time.Time) *Material {
	return &Material{
		id:          id,
		designation: designation,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (m *Material) ID() uint             { return m.id }
func (m *Material) Designation() string  { return m.designation }
func (m *Material) CreatedAt() time.Time { return m.createdAt }
func (m *Material) UpdatedAt() time.Time { return m.updatedAt }

func (m *Material) SetID(id uint) {
	m.id = id
}

func (m *Material) UpdateDesignation(designation string) error {
	if len(designation) == 0 {
		return fmt.Errorf("designation is required")
	}
	if len(designation) > 255 {
		return fmt.Errorf("designation exceeds maximum length of 255 characters")
	}
	m.designation = designation
	m.updatedAt = time.Now()
	return nil
}
