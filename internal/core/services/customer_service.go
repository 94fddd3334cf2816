package services

import (
	"context"
	"errors"
	"fmt"

	"carrental/internal/adapters/persistence/models"
	"carrental/internal/adapters/persistence/repositories"
	"carrental/internal/core/domain"
	"carrental/internal/pkg/pagination"
	"carrental/internal/pkg/password"

	"gorm.io/gorm"
)

// CustomerService handles customer accounts
type CustomerService struct {
	customerRepo repositories.CustomerRepository
}

// NewCustomerService creates a new customer service
func NewCustomerService(customerRepo repositories.CustomerRepository) *CustomerService {
	return &CustomerService{customerRepo: customerRepo}
}

// RegisterCustomerInput represents customer registration input
type RegisterCustomerInput struct {
	Name     string `json:"name" validate:"required,min=2,max=255"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=6,max=1024"`
	Phone    string `json:"phone" validate:"required,min=7,max=255"`
	IsGold   *bool  `json:"isGold" validate:"required"`
}

// Register creates a customer account
func (s *CustomerService) Register(ctx context.Context, input *RegisterCustomerInput) (*models.Customer, error) {
	exists, err := s.customerRepo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrUserRegistered
	}

	hashed, err := password.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	customer := &models.Customer{
		Name:     input.Name,
		Email:    input.Email,
		Password: hashed,
		Phone:    input.Phone,
		IsGold:   input.IsGold != nil && *input.IsGold,
	}

	if err := s.customerRepo.Create(ctx, customer); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrUserRegistered
		}
		return nil, err
	}

	return customer, nil
}

// GetByID gets a customer by ID
func (s *CustomerService) GetByID(ctx context.Context, id string) (*models.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCustomerNotFound
		}
		return nil, err
	}
	return customer, nil
}

// List lists customers, name descending
func (s *CustomerService) List(ctx context.Context, page *pagination.Params) (*pagination.Page[*models.CustomerResponse], error) {
	customers, total, err := s.customerRepo.List(ctx, page)
	if err != nil {
		return nil, err
	}

	items := make([]*models.CustomerResponse, len(customers))
	for i, c := range customers {
		items[i] = c.ToResponse()
	}
	return pagination.NewPage(items, page, total), nil
}
