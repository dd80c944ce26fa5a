package usecases

import (
	"context"

	"backoffice/internal/application/cascade"
	"backoffice/internal/domain/customer"
	"backoffice/internal/domain/material"
	"backoffice/internal/domain/sale"
	"backoffice/internal/shared/errors"
	"backoffice/internal/shared/logger"
	"backoffice/internal/shared/services/markdown"
)

type CreateSaleCommand struct {
	Title       string
	Description string
	CustomerID  uint
	MaterialIDs []uint
}

type CreateSaleUseCase struct {
	saleRepo     sale.Repository
	customerRepo customer.Repository
	materialRepo material.Repository
	tx           cascade.TxManager
	md           markdown.Service
	logger       logger.Interface
}

func NewCreateSaleUseCase(
	saleRepo sale.Repository,
	customerRepo customer.Repository,
	materialRepo material.Repository,
	tx cascade.TxManager,
	md markdown.Service,
	logger logger.Interface,
) *CreateSaleUseCase {
	return &CreateSaleUseCase{
		saleRepo:     saleRepo,
		customerRepo: customerRepo,
		materialRepo: materialRepo,
		tx:           tx,
		md:           md,
		logger:       logger,
	}
}

// Execute creates the sale and attaches the requested materials in one
// transaction.
func (uc *CreateSaleUseCase) Execute(ctx context.Context, cmd CreateSaleCommand) (*SaleData, error) {
	uc.logger.Infow("executing create sale use case", "title", cmd.Title, "customer_id", cmd.CustomerID)

	if err := validateSaleFields(cmd.Title, cmd.Description, cmd.CustomerID); err != nil {
		return nil, err
	}
	if err := uc.checkReferences(ctx, cmd.CustomerID, cmd.MaterialIDs); err != nil {
		return nil, err
	}

	newSale, err := sale.NewSale(cmd.Title, cmd.Description, cmd.CustomerID, cmd.MaterialIDs)
	if err != nil {
		return nil, errors.NewValidationError(err.Error(), "title")
	}

	err = uc.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := uc.saleRepo.Create(ctx, newSale); err != nil {
			return err
		}
		return uc.saleRepo.AttachMaterials(ctx, newSale.ID(), newSale.MaterialIDs())
	})
	if err != nil {
		uc.logger.Errorw("failed to create sale", "error", err)
		return nil, err
	}

	uc.logger.Infow("sale created", "sale_id", newSale.ID(), "materials", len(newSale.MaterialIDs()))
	data := toSaleData(newSale, uc.md)
	return &data, nil
}

func (uc *CreateSaleUseCase) checkReferences(ctx context.Context, customerID uint, materialIDs []uint) error {
	return checkSaleReferences(ctx, uc.customerRepo, uc.materialRepo, customerID, materialIDs)
}

func validateSaleFields(title, description string, customerID uint) error {
	if len(title) == 0 {
		return errors.NewValidationError("title is required", "title")
	}
	if len(title) > 255 {
		return errors.NewValidationError("title exceeds maximum length of 255 characters", "title")
	}
	if len(description) == 0 {
		return errors.NewValidationError("description is required", "description")
	}
	if customerID == 0 {
		return errors.NewValidationError("customer_id is required", "customer_id")
	}
	return nil
}

func checkSaleReferences(
	ctx context.Context,
	customerRepo customer.Repository,
	materialRepo material.Repository,
	customerID uint,
	materialIDs []uint,
) error {
	exists, err := customerRepo.ExistsByID(ctx, customerID)
	if err != nil {
		return err
	}
	if !exists {
		return errors.NewValidationError("customer_id refers to a missing customer", "customer_id")
	}

	if len(materialIDs) > 0 {
		allExist, err := materialRepo.ExistsByIDs(ctx, materialIDs)
		if err != nil {
			return err
		}
		if !allExist {
			return errors.NewValidationError("material_ids refer to missing materials", "material_ids")
		}
	}
	return nil
}
