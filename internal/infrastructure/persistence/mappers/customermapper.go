package mappers

import (
	"time"

	"backoffice/internal/domain/customer"
	"backoffice/internal/infrastructure/persistence/models"
)

// CustomerMapper handles the conversion between Customer domain entities and persistence models.
type CustomerMapper interface {
	ToModel(c *customer.Customer) *models.CustomerModel
	ToDomain(model *models.CustomerModel) *customer.Customer
}

type CustomerMapperImpl struct{}

func NewCustomerMapper() CustomerMapper {
	return &CustomerMapperImpl{}
}

func (m *CustomerMapperImpl) ToModel(c *customer.Customer) *models.CustomerModel {
	return &models.CustomerModel{
		ID:        c.ID(),
		Nickname:  c.Nickname(),
		UserID:    c.UserID(),
		CreatedAt: c.CreatedAt().UnixMilli(),
		UpdatedAt: c.UpdatedAt().UnixMilli(),
	}
}

func (m *CustomerMapperImpl) ToDomain(model *models.CustomerModel) *customer.Customer {
	return customer.ReconstructCustomer(
		model.ID,
		model.Nickname,
		model.UserID,
		time.UnixMilli(model.CreatedAt),
		time.UnixMilli(model.UpdatedAt),
	)
}
