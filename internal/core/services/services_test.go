package services

import (
	"context"
	"testing"
	"time"

	"carrental/internal/adapters/persistence/models"
	"carrental/internal/adapters/persistence/repositories"
	"carrental/internal/adapters/persistence/testdb"
	"carrental/internal/config"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type fixture struct {
	auth      *AuthService
	customers *CustomerService
	employees *EmployeeService
	catalog   *CatalogService
	rentals   *RentalService
	carRepo   *repositories.CarRepository
	db        *gorm.DB
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db := testdb.New(t)
	log := zap.NewNop()

	customerRepo := repositories.NewCustomerRepository(db)
	employeeRepo := repositories.NewEmployeeRepository(db)
	brandRepo := repositories.NewBrandRepository(db)
	styleRepo := repositories.NewStyleRepository(db)
	carRepo := repositories.NewCarRepository(db)
	rentalRepo := repositories.NewRentalRepository(db)

	return &fixture{
		auth:      NewAuthService(customerRepo, employeeRepo, config.JWTConfig{Secret: "test-secret"}),
		customers: NewCustomerService(customerRepo),
		employees: NewEmployeeService(employeeRepo, log),
		catalog:   NewCatalogService(brandRepo, styleRepo, carRepo),
		rentals:   NewRentalService(rentalRepo, customerRepo, carRepo, log),
		carRepo:   carRepo,
		db:        db,
	}
}

func boolPtr(b bool) *bool { return &b }

func intPtr(i int) *int { return &i }

func floatPtr(f float64) *float64 { return &f }

func strPtr(s string) *string { return &s }

func (f *fixture) customer(t *testing.T, email string, gold bool) *models.Customer {
	t.Helper()
	c, err := f.customers.Register(context.Background(), &RegisterCustomerInput{
		Name:     "Customer " + email,
		Email:    email,
		Password: "secret123",
		Phone:    "5551234567",
		IsGold:   boolPtr(gold),
	})
	require.NoError(t, err)
	return c
}

func (f *fixture) car(t *testing.T, stock int, rate float64) *models.Car {
	t.Helper()
	ctx := context.Background()

	brand, err := f.catalog.CreateBrand(ctx, &BrandInput{Name: "Toyota", Description: "Japanese cars"})
	require.NoError(t, err)
	style, err := f.catalog.CreateStyle(ctx, &StyleInput{Name: "Sedan", Description: "Four doors"})
	require.NoError(t, err)

	car, err := f.catalog.CreateCar(ctx, &CreateCarInput{
		Name:            "Corolla",
		Description:     "Compact sedan",
		BrandID:         brand.ID,
		StyleID:         style.ID,
		NumberInStock:   intPtr(stock),
		DailyRentalRate: floatPtr(rate),
	})
	require.NoError(t, err)
	return car
}

func (f *fixture) stock(t *testing.T, carID string) int {
	t.Helper()
	car, err := f.carRepo.GetByID(context.Background(), carID)
	require.NoError(t, err)
	return car.NumberInStock
}

func fixedClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}

// afterNextRead runs fn once, right after the next query on table returns.
// It lets a test slip a ledger operation between a read and the write that follows it.
func (f *fixture) afterNextRead(t *testing.T, table string, fn func()) {
	t.Helper()
	armed := true
	err := f.db.Callback().Query().After("gorm:query").Register("test:after_next_read", func(tx *gorm.DB) {
		if !armed || tx.Statement.Table != table {
			return
		}
		armed = false
		fn()
	})
	require.NoError(t, err)
}
