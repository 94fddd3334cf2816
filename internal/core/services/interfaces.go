package services

import (
	"context"

	"carrental/internal/adapters/persistence/models"
	"carrental/internal/core/domain"
	"carrental/internal/pkg/pagination"
)

// Handlers depend on these interfaces; the structs in this package implement them.

// Authenticator issues and verifies tokens
type Authenticator interface {
	LoginCustomer(ctx context.Context, input *LoginInput) (*TokenResponse, error)
	LoginEmployee(ctx context.Context, input *LoginInput) (*TokenResponse, error)
	CustomerToken(c *models.Customer) (string, error)
	EmployeeToken(e *models.Employee) (string, error)
	VerifyToken(token string) (*domain.Principal, error)
}

// Customers manages customer accounts
type Customers interface {
	Register(ctx context.Context, input *RegisterCustomerInput) (*models.Customer, error)
	GetByID(ctx context.Context, id string) (*models.Customer, error)
	List(ctx context.Context, page *pagination.Params) (*pagination.Page[*models.CustomerResponse], error)
}

// Employees manages staff accounts
type Employees interface {
	Create(ctx context.Context, input *CreateEmployeeInput) (*models.Employee, error)
	GetByID(ctx context.Context, id string) (*models.Employee, error)
	List(ctx context.Context, page *pagination.Params) (*pagination.Page[*models.EmployeeResponse], error)
}

// Catalog manages brands, styles and cars
type Catalog interface {
	ListBrands(ctx context.Context) ([]*models.Brand, error)
	GetBrand(ctx context.Context, id string) (*models.Brand, error)
	CreateBrand(ctx context.Context, input *BrandInput) (*models.Brand, error)
	UpdateBrand(ctx context.Context, id string, input *BrandInput) (*models.Brand, error)
	DeleteBrand(ctx context.Context, id string) (*models.Brand, error)

	ListStyles(ctx context.Context) ([]*models.Style, error)
	GetStyle(ctx context.Context, id string) (*models.Style, error)
	CreateStyle(ctx context.Context, input *StyleInput) (*models.Style, error)
	UpdateStyle(ctx context.Context, id string, input *StyleInput) (*models.Style, error)
	DeleteStyle(ctx context.Context, id string) (*models.Style, error)

	ListCars(ctx context.Context) ([]*models.Car, error)
	GetCar(ctx context.Context, id string) (*models.Car, error)
	CreateCar(ctx context.Context, input *CreateCarInput) (*models.Car, error)
	UpdateCar(ctx context.Context, id string, input *UpdateCarInput) (*models.Car, error)
	DeleteCar(ctx context.Context, id string) (*models.Car, error)
}

// Rentals is the rental ledger
type Rentals interface {
	Open(ctx context.Context, input *RentalInput) (*models.Rental, error)
	Return(ctx context.Context, input *RentalInput) (*models.Rental, error)
	List(ctx context.Context, page *pagination.Params) (*pagination.Page[*models.Rental], error)
	ListByCustomer(ctx context.Context, customerID string) ([]*models.Rental, error)
	GetByID(ctx context.Context, id string) (*models.Rental, error)
	Update(ctx context.Context, id string, input *UpdateRentalInput) (*models.Rental, error)
	Delete(ctx context.Context, id string) (*models.Rental, error)
}

var (
	_ Authenticator = (*AuthService)(nil)
	_ Customers     = (*CustomerService)(nil)
	_ Employees     = (*EmployeeService)(nil)
	_ Catalog       = (*CatalogService)(nil)
	_ Rentals       = (*RentalService)(nil)
)
