package usecases

import (
	"time"

	"backoffice/internal/domain/material"
)

type MaterialData struct {
	ID          uint
	Designation string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func toMaterialData(m *material.Material) MaterialData {
	return MaterialData{
		ID:          m.ID(),
		Designation: m.Designation(),
		CreatedAt:   m.CreatedAt(),
		UpdatedAt:   m.UpdatedAt(),
	}
}
