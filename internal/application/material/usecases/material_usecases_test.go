package usecases

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"backoffice/internal/domain/material"
	apperrors "backoffice/internal/shared/errors"
)

func TestCreateMaterialUseCase_Execute(t *testing.T) {
	tests := []struct {
		name        string
		designation string
		wantErr     bool
	}{
		{name: "valid", designation: "laptop"},
		{name: "empty designation", designation: "", wantErr: true},
		{name: "too long", designation: strings.Repeat("x", 256), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := &mockMaterialRepository{
				CreateFunc: func(ctx context.Context, m *material.Material) error {
					m.SetID(1)
					return nil
				},
			}

			uc := NewCreateMaterialUseCase(mockRepo, &mockLogger{})
			result, err := uc.Execute(context.Background(), CreateMaterialCommand{Designation: tt.designation})

			if tt.wantErr {
				require.Error(t, err)
				appErr := apperrors.GetAppError(err)
				require.NotNil(t, appErr)
				assert.Equal(t, 422, appErr.Code)
				assert.Equal(t, "designation", appErr.Details)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, uint(1), result.ID)
			assert.Equal(t, tt.designation, result.Designation)
		})
	}
}

func TestUpdateMaterialUseCase_Execute_Partial(t *testing.T) {
	existing := material.ReconstructMaterial(2, "laptop", time.Now(), time.Now())
	mockRepo := &mockMaterialRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*material.Material, error) {
			return existing, nil
		},
	}

	uc := NewUpdateMaterialUseCase(mockRepo, &mockLogger{})

	// no designation provided: row untouched, still a 200
	result, err := uc.Execute(context.Background(), UpdateMaterialCommand{ID: 2})
	require.NoError(t, err)
	assert.Equal(t, "laptop", result.Designation)

	designation := "desktop"
	result, err = uc.Execute(context.Background(), UpdateMaterialCommand{ID: 2, Designation: &designation})
	require.NoError(t, err)
	assert.Equal(t, "desktop", result.Designation)
}

func TestDeleteMaterialUseCase_Execute_DetachesBeforeDelete(t *testing.T) {
	existing := material.ReconstructMaterial(3, "laptop", time.Now(), time.Now())

	var order []string
	mockMaterials := &mockMaterialRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*material.Material, error) {
			return existing, nil
		},
		DeleteFunc: func(ctx context.Context, id uint) error {
			order = append(order, "delete")
			return nil
		},
	}
	mockSales := &mockSaleRepository{
		DetachMaterialFunc: func(ctx context.Context, materialID uint) error {
			assert.Equal(t, uint(3), materialID)
			order = append(order, "detach")
			return nil
		},
	}

	uc := NewDeleteMaterialUseCase(mockMaterials, mockSales, &mockTxManager{}, &mockLogger{})
	require.NoError(t, uc.Execute(context.Background(), 3))
	assert.Equal(t, []string{"detach", "delete"}, order)
}

func TestDeleteMaterialUseCase_Execute_NotFound(t *testing.T) {
	uc := NewDeleteMaterialUseCase(&mockMaterialRepository{}, &mockSaleRepository{}, &mockTxManager{}, &mockLogger{})

	err := uc.Execute(context.Background(), 42)
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFoundError(err))
}
