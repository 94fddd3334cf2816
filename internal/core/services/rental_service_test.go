package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"carrental/internal/core/domain"
	"carrental/internal/pkg/pagination"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenRentalTakesOneFromStock(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	customer := f.customer(t, "ann@example.com", true)
	car := f.car(t, 2, 40)

	rental, err := f.rentals.Open(ctx, &RentalInput{CustomerID: customer.ID, CarID: car.ID})
	require.NoError(t, err)

	assert.True(t, rental.IsOpen())
	assert.Nil(t, rental.RentalFee)
	assert.Equal(t, customer.ID, rental.Customer.ID)
	assert.Equal(t, customer.Name, rental.Customer.Name)
	assert.Equal(t, customer.Phone, rental.Customer.Phone)
	assert.True(t, rental.Customer.IsGold)
	assert.Equal(t, car.ID, rental.Car.ID)
	assert.Equal(t, car.Name, rental.Car.Name)
	assert.Equal(t, car.DailyRentalRate, rental.Car.DailyRentalRate)
	assert.Equal(t, 1, f.stock(t, car.ID))
}

func TestOpenRentalRejects(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	customer := f.customer(t, "ann@example.com", false)
	empty := f.car(t, 0, 40)

	tests := []struct {
		name  string
		input RentalInput
		want  error
	}{
		{name: "out of stock", input: RentalInput{CustomerID: customer.ID, CarID: empty.ID}, want: domain.ErrOutOfStock},
		{name: "unknown customer", input: RentalInput{CustomerID: uuid.NewString(), CarID: empty.ID}, want: domain.ErrInvalidReference},
		{name: "unknown car", input: RentalInput{CustomerID: customer.ID, CarID: uuid.NewString()}, want: domain.ErrInvalidReference},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.rentals.Open(ctx, &tt.input)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	page, err := f.rentals.List(ctx, pagination.New(1, 10))
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Equal(t, 0, f.stock(t, empty.ID))
}

func TestConcurrentOpensOnLastCar(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	car := f.car(t, 1, 40)

	const workers = 8
	customers := make([]string, workers)
	for i := range customers {
		customers[i] = f.customer(t, uuid.NewString()+"@example.com", false).ID
	}

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		failures  []error
	)
	for _, id := range customers {
		wg.Add(1)
		go func(customerID string) {
			defer wg.Done()
			_, err := f.rentals.Open(ctx, &RentalInput{CustomerID: customerID, CarID: car.ID})
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				successes++
				return
			}
			failures = append(failures, err)
		}(id)
	}
	wg.Wait()

	assert.Equal(t, 1, successes)
	for _, err := range failures {
		assert.ErrorIs(t, err, domain.ErrOutOfStock)
	}
	assert.Equal(t, 0, f.stock(t, car.ID))
}

func TestReturnRentalChargesWholeDays(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	customer := f.customer(t, "ann@example.com", false)
	car := f.car(t, 1, 90)

	start := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	f.rentals.now = fixedClock(start)
	_, err := f.rentals.Open(ctx, &RentalInput{CustomerID: customer.ID, CarID: car.ID})
	require.NoError(t, err)
	assert.Equal(t, 0, f.stock(t, car.ID))

	f.rentals.now = fixedClock(start.Add(3*24*time.Hour + 5*time.Hour))
	rental, err := f.rentals.Return(ctx, &RentalInput{CustomerID: customer.ID, CarID: car.ID})
	require.NoError(t, err)

	require.NotNil(t, rental.DateReturned)
	require.NotNil(t, rental.RentalFee)
	assert.Equal(t, 270.0, *rental.RentalFee)
	assert.Equal(t, 1, f.stock(t, car.ID))

	_, err = f.rentals.Return(ctx, &RentalInput{CustomerID: customer.ID, CarID: car.ID})
	assert.ErrorIs(t, err, domain.ErrAlreadyProcessed)
	assert.Equal(t, 1, f.stock(t, car.ID))

	stored, err := f.rentals.GetByID(ctx, rental.ID)
	require.NoError(t, err)
	assert.False(t, stored.IsOpen())
	assert.Equal(t, 270.0, *stored.RentalFee)
}

func TestReturnSameDayIsFree(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	customer := f.customer(t, "ann@example.com", false)
	car := f.car(t, 1, 90)

	_, err := f.rentals.Open(ctx, &RentalInput{CustomerID: customer.ID, CarID: car.ID})
	require.NoError(t, err)

	rental, err := f.rentals.Return(ctx, &RentalInput{CustomerID: customer.ID, CarID: car.ID})
	require.NoError(t, err)
	assert.Equal(t, 0.0, *rental.RentalFee)
}

func TestReturnWithoutRental(t *testing.T) {
	f := newFixture(t)
	customer := f.customer(t, "ann@example.com", false)
	car := f.car(t, 1, 90)

	_, err := f.rentals.Return(context.Background(), &RentalInput{CustomerID: customer.ID, CarID: car.ID})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, 1, f.stock(t, car.ID))
}

func TestReturnUsesSnapshotRate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	customer := f.customer(t, "ann@example.com", false)
	car := f.car(t, 1, 10)

	start := time.Now().Add(-2 * 24 * time.Hour)
	f.rentals.now = fixedClock(start)
	_, err := f.rentals.Open(ctx, &RentalInput{CustomerID: customer.ID, CarID: car.ID})
	require.NoError(t, err)

	_, err = f.catalog.UpdateCar(ctx, car.ID, &UpdateCarInput{DailyRentalRate: floatPtr(1000)})
	require.NoError(t, err)

	f.rentals.now = fixedClock(start.Add(2 * 24 * time.Hour))
	rental, err := f.rentals.Return(ctx, &RentalInput{CustomerID: customer.ID, CarID: car.ID})
	require.NoError(t, err)
	assert.Equal(t, 20.0, *rental.RentalFee)
}

func TestUpdateAndDeleteRentalLeaveStock(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	ann := f.customer(t, "ann@example.com", false)
	bob := f.customer(t, "bob@example.com", true)
	car := f.car(t, 3, 10)

	rental, err := f.rentals.Open(ctx, &RentalInput{CustomerID: ann.ID, CarID: car.ID})
	require.NoError(t, err)
	assert.Equal(t, 2, f.stock(t, car.ID))

	updated, err := f.rentals.Update(ctx, rental.ID, &UpdateRentalInput{
		CustomerID: strPtr(bob.ID),
		RentalFee:  floatPtr(5),
	})
	require.NoError(t, err)
	assert.Equal(t, bob.ID, updated.Customer.ID)
	assert.True(t, updated.Customer.IsGold)
	assert.Equal(t, 5.0, *updated.RentalFee)
	assert.Equal(t, 2, f.stock(t, car.ID))

	_, err = f.rentals.Update(ctx, rental.ID, &UpdateRentalInput{CarID: strPtr(uuid.NewString())})
	assert.ErrorIs(t, err, domain.ErrInvalidReference)

	mine, err := f.rentals.ListByCustomer(ctx, bob.ID)
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	deleted, err := f.rentals.Delete(ctx, rental.ID)
	require.NoError(t, err)
	assert.Equal(t, rental.ID, deleted.ID)
	assert.Equal(t, 2, f.stock(t, car.ID))

	_, err = f.rentals.GetByID(ctx, rental.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = f.rentals.Delete(ctx, rental.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	none, err := f.rentals.ListByCustomer(ctx, ann.ID)
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestUpdateRentalLosesToReturn(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	customer := f.customer(t, "ann@example.com", false)
	car := f.car(t, 1, 10)
	pair := &RentalInput{CustomerID: customer.ID, CarID: car.ID}

	rental, err := f.rentals.Open(ctx, pair)
	require.NoError(t, err)

	var returnErr error
	f.afterNextRead(t, "rentals", func() {
		_, returnErr = f.rentals.Return(ctx, pair)
	})

	_, err = f.rentals.Update(ctx, rental.ID, &UpdateRentalInput{RentalFee: floatPtr(5)})
	require.NoError(t, returnErr)
	assert.ErrorIs(t, err, domain.ErrAlreadyProcessed)

	stored, err := f.rentals.GetByID(ctx, rental.ID)
	require.NoError(t, err)
	assert.False(t, stored.IsOpen())
	assert.Equal(t, 0.0, *stored.RentalFee)

	_, err = f.rentals.Return(ctx, pair)
	assert.ErrorIs(t, err, domain.ErrAlreadyProcessed)
	assert.Equal(t, 1, f.stock(t, car.ID))
}

func TestUpdateDeletedRental(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	customer := f.customer(t, "ann@example.com", false)
	car := f.car(t, 2, 10)

	rental, err := f.rentals.Open(ctx, &RentalInput{CustomerID: customer.ID, CarID: car.ID})
	require.NoError(t, err)

	f.afterNextRead(t, "rentals", func() {
		_, _ = f.rentals.Delete(ctx, rental.ID)
	})

	_, err = f.rentals.Update(ctx, rental.ID, &UpdateRentalInput{RentalFee: floatPtr(5)})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = f.rentals.GetByID(ctx, rental.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
