package repositories

import (
	"context"
	"errors"
	"time"

	"carrental/internal/adapters/persistence/models"
	"carrental/internal/pkg/pagination"
)

// Conditional write failures reported by RentalRepository
var (
	ErrStockDepleted = errors.New("car has no stock left")
	ErrRentalClosed  = errors.New("rental already closed")
	ErrRentalChanged = errors.New("rental changed since it was read")
)

// CustomerRepository defines customer repository interface
type CustomerRepository interface {
	Create(ctx context.Context, customer *models.Customer) error
	GetByID(ctx context.Context, id string) (*models.Customer, error)
	GetByEmail(ctx context.Context, email string) (*models.Customer, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	List(ctx context.Context, page *pagination.Params) ([]*models.Customer, int64, error)
}

// EmployeeRepository defines employee repository interface
type EmployeeRepository interface {
	Create(ctx context.Context, employee *models.Employee) error
	GetByID(ctx context.Context, id string) (*models.Employee, error)
	GetByEmail(ctx context.Context, email string) (*models.Employee, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsManager(ctx context.Context) (bool, error)
	List(ctx context.Context, page *pagination.Params) ([]*models.Employee, int64, error)
}

// RentalRepository defines rental repository interface.
// Open and Close touch the rental and the car stock in one transaction.
type RentalRepository interface {
	Open(ctx context.Context, rental *models.Rental) error
	Close(ctx context.Context, rental *models.Rental, returnedAt time.Time, fee float64) error
	GetByID(ctx context.Context, id string) (*models.Rental, error)
	FindOpen(ctx context.Context, customerID, carID string) (*models.Rental, error)
	ExistsForPair(ctx context.Context, customerID, carID string) (bool, error)
	List(ctx context.Context, page *pagination.Params) ([]*models.Rental, int64, error)
	ListByCustomer(ctx context.Context, customerID string) ([]*models.Rental, error)
	Update(ctx context.Context, rental *models.Rental, wasOpen bool, columns ...string) error
	Delete(ctx context.Context, id string) error
}
