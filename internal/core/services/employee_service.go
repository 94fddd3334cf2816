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

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// EmployeeService handles staff accounts
type EmployeeService struct {
	employeeRepo repositories.EmployeeRepository
	log          *zap.Logger
}

// NewEmployeeService creates a new employee service
func NewEmployeeService(employeeRepo repositories.EmployeeRepository, log *zap.Logger) *EmployeeService {
	return &EmployeeService{employeeRepo: employeeRepo, log: log}
}

// CreateEmployeeInput represents employee creation input
type CreateEmployeeInput struct {
	Name     string `json:"name" validate:"required,min=2,max=255"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=6,max=1024"`
	IsAdmin  *bool  `json:"isAdmin" validate:"required"`
}

// Create creates an employee account
func (s *EmployeeService) Create(ctx context.Context, input *CreateEmployeeInput) (*models.Employee, error) {
	exists, err := s.employeeRepo.ExistsByEmail(ctx, input.Email)
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

	employee := &models.Employee{
		Name:     input.Name,
		Email:    input.Email,
		Password: hashed,
		IsAdmin:  input.IsAdmin != nil && *input.IsAdmin,
	}

	if err := s.employeeRepo.Create(ctx, employee); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrUserRegistered
		}
		return nil, err
	}

	s.log.Info("employee created",
		zap.String("employee_id", employee.ID),
		zap.Bool("is_admin", employee.IsAdmin),
	)
	return employee, nil
}

// GetByID gets an employee by ID
func (s *EmployeeService) GetByID(ctx context.Context, id string) (*models.Employee, error) {
	employee, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrEmployeeNotFound
		}
		return nil, err
	}
	return employee, nil
}

// List lists employees by name
func (s *EmployeeService) List(ctx context.Context, page *pagination.Params) (*pagination.Page[*models.EmployeeResponse], error) {
	employees, total, err := s.employeeRepo.List(ctx, page)
	if err != nil {
		return nil, err
	}

	items := make([]*models.EmployeeResponse, len(employees))
	for i, e := range employees {
		items[i] = e.ToResponse()
	}
	return pagination.NewPage(items, page, total), nil
}
