package services

import (
	"context"
	"errors"
	"time"

	"carrental/internal/adapters/persistence/models"
	"carrental/internal/adapters/persistence/repositories"
	"carrental/internal/core/domain"
	"carrental/internal/pkg/pagination"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// RentalService coordinates rental records with car stock
type RentalService struct {
	rentalRepo   repositories.RentalRepository
	customerRepo repositories.CustomerRepository
	carRepo      *repositories.CarRepository
	log          *zap.Logger
	now          func() time.Time
}

// NewRentalService creates a new rental service
func NewRentalService(
	rentalRepo repositories.RentalRepository,
	customerRepo repositories.CustomerRepository,
	carRepo *repositories.CarRepository,
	log *zap.Logger,
) *RentalService {
	return &RentalService{
		rentalRepo:   rentalRepo,
		customerRepo: customerRepo,
		carRepo:      carRepo,
		log:          log,
		now:          time.Now,
	}
}

// RentalInput identifies a customer and a car. Used to open and to return a rental.
type RentalInput struct {
	CustomerID string `json:"customerId" validate:"required,uuid"`
	CarID      string `json:"carId" validate:"required,uuid"`
}

// UpdateRentalInput represents a partial rental update; nil fields are left untouched
type UpdateRentalInput struct {
	CustomerID   *string    `json:"customerId" validate:"omitempty,uuid"`
	CarID        *string    `json:"carId" validate:"omitempty,uuid"`
	DateOut      *time.Time `json:"dateOut"`
	DateReturned *time.Time `json:"dateReturned"`
	RentalFee    *float64   `json:"rentalFee" validate:"omitempty,min=0"`
}

// Open creates an open rental and takes one car out of stock
func (s *RentalService) Open(ctx context.Context, input *RentalInput) (*models.Rental, error) {
	customer, err := s.resolveCustomer(ctx, input.CustomerID)
	if err != nil {
		return nil, err
	}
	car, err := s.resolveCar(ctx, input.CarID)
	if err != nil {
		return nil, err
	}

	if car.NumberInStock < 1 {
		return nil, domain.ErrCarNotInStock
	}

	rental := &models.Rental{
		Customer: models.SnapshotCustomer(customer),
		Car:      models.SnapshotCar(car),
		DateOut:  s.now(),
	}

	if err := s.rentalRepo.Open(ctx, rental); err != nil {
		if errors.Is(err, repositories.ErrStockDepleted) {
			return nil, domain.ErrCarNotInStock
		}
		return nil, err
	}

	s.log.Info("rental opened",
		zap.String("rental_id", rental.ID),
		zap.String("customer_id", customer.ID),
		zap.String("car_id", car.ID),
	)
	return rental, nil
}

// Return closes the oldest open rental for the customer and car,
// charges whole days at the snapshot rate and puts the car back in stock.
func (s *RentalService) Return(ctx context.Context, input *RentalInput) (*models.Rental, error) {
	rental, err := s.rentalRepo.FindOpen(ctx, input.CustomerID, input.CarID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}

		exists, existsErr := s.rentalRepo.ExistsForPair(ctx, input.CustomerID, input.CarID)
		if existsErr != nil {
			return nil, existsErr
		}
		if exists {
			return nil, domain.ErrReturnAlreadyDone
		}
		return nil, domain.ErrNoRentalForPair
	}

	returnedAt := s.now()
	fee := domain.RentalFee(rental.DateOut, returnedAt, rental.Car.DailyRentalRate)

	if err := s.rentalRepo.Close(ctx, rental, returnedAt, fee); err != nil {
		if errors.Is(err, repositories.ErrRentalClosed) {
			return nil, domain.ErrReturnAlreadyDone
		}
		return nil, err
	}

	s.log.Info("rental returned",
		zap.String("rental_id", rental.ID),
		zap.Float64("rental_fee", fee),
	)
	return rental, nil
}

// List lists all rentals, newest first
func (s *RentalService) List(ctx context.Context, page *pagination.Params) (*pagination.Page[*models.Rental], error) {
	rentals, total, err := s.rentalRepo.List(ctx, page)
	if err != nil {
		return nil, err
	}
	return pagination.NewPage(rentals, page, total), nil
}

// ListByCustomer lists the rentals of one customer, newest first
func (s *RentalService) ListByCustomer(ctx context.Context, customerID string) ([]*models.Rental, error) {
	rentals, err := s.rentalRepo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if rentals == nil {
		rentals = []*models.Rental{}
	}
	return rentals, nil
}

// GetByID gets a rental by ID
func (s *RentalService) GetByID(ctx context.Context, id string) (*models.Rental, error) {
	rental, err := s.rentalRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRentalNotFound
		}
		return nil, err
	}
	return rental, nil
}

// Update overwrites the supplied fields. Stock is not touched.
// The write only lands if the rental is still open, or still closed, as read;
// a return or delete committed in between wins.
func (s *RentalService) Update(ctx context.Context, id string, input *UpdateRentalInput) (*models.Rental, error) {
	rental, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	wasOpen := rental.IsOpen()

	var columns []string
	if input.CustomerID != nil {
		customer, err := s.resolveCustomer(ctx, *input.CustomerID)
		if err != nil {
			return nil, err
		}
		rental.Customer = models.SnapshotCustomer(customer)
		columns = append(columns, "customer_id", "customer_name", "customer_phone", "customer_is_gold")
	}
	if input.CarID != nil {
		car, err := s.resolveCar(ctx, *input.CarID)
		if err != nil {
			return nil, err
		}
		rental.Car = models.SnapshotCar(car)
		columns = append(columns, "car_id", "car_name", "car_daily_rental_rate")
	}
	if input.DateOut != nil {
		rental.DateOut = *input.DateOut
		columns = append(columns, "date_out")
	}
	if input.DateReturned != nil {
		rental.DateReturned = input.DateReturned
		columns = append(columns, "date_returned")
	}
	if input.RentalFee != nil {
		rental.RentalFee = input.RentalFee
		columns = append(columns, "rental_fee")
	}

	if err := s.rentalRepo.Update(ctx, rental, wasOpen, columns...); err != nil {
		if !errors.Is(err, repositories.ErrRentalChanged) {
			return nil, err
		}
		if _, err := s.GetByID(ctx, id); err != nil {
			return nil, err
		}
		if wasOpen {
			return nil, domain.ErrReturnAlreadyDone
		}
		return nil, domain.ErrRentalChanged
	}
	return s.GetByID(ctx, id)
}

// Delete removes a rental and returns it. Stock is not touched.
func (s *RentalService) Delete(ctx context.Context, id string) (*models.Rental, error) {
	rental, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.rentalRepo.Delete(ctx, id); err != nil {
		return nil, err
	}

	s.log.Info("rental deleted", zap.String("rental_id", id))
	return rental, nil
}

func (s *RentalService) resolveCustomer(ctx context.Context, id string) (*models.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInvalidCustomer
		}
		return nil, err
	}
	return customer, nil
}

func (s *RentalService) resolveCar(ctx context.Context, id string) (*models.Car, error) {
	car, err := s.carRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInvalidCar
		}
		return nil, err
	}
	return car, nil
}
