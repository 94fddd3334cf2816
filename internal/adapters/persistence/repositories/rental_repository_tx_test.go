package repositories

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"carrental/internal/adapters/persistence/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func mockRental() *models.Rental {
	return &models.Rental{
		Customer: models.RentalCustomer{ID: "c-1", Name: "Alice", Phone: "5551234"},
		Car:      models.RentalCar{ID: "car-1", Name: "Corolla", DailyRentalRate: 40},
		DateOut:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

var (
	takeStock   = regexp.QuoteMeta("UPDATE `cars` SET `number_in_stock`=number_in_stock - ?")
	giveStock   = regexp.QuoteMeta("UPDATE `cars` SET `number_in_stock`=number_in_stock + ?")
	closeRental = regexp.QuoteMeta("UPDATE `rentals` SET")
	insertRent  = regexp.QuoteMeta("INSERT INTO `rentals`")
)

func TestRentalRepositoryOpenTransaction(t *testing.T) {
	ctx := context.Background()

	t.Run("Commit", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewRentalRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec(takeStock).WithArgs(1, "car-1").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(insertRent).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		rental := mockRental()
		require.NoError(t, repo.Open(ctx, rental))
		assert.NotEmpty(t, rental.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("NoStockRollsBack", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewRentalRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec(takeStock).WithArgs(1, "car-1").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		err := repo.Open(ctx, mockRental())
		assert.ErrorIs(t, err, ErrStockDepleted)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("InsertFailureRollsBack", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewRentalRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec(takeStock).WithArgs(1, "car-1").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(insertRent).WillReturnError(errors.New("disk full"))
		mock.ExpectRollback()

		err := repo.Open(ctx, mockRental())
		assert.EqualError(t, err, "disk full")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRentalRepositoryCloseTransaction(t *testing.T) {
	ctx := context.Background()
	returnedAt := time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC)

	t.Run("Commit", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewRentalRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec(closeRental).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(giveStock).WithArgs(1, "car-1").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		rental := mockRental()
		rental.ID = "r-1"
		require.NoError(t, repo.Close(ctx, rental, returnedAt, 120))
		require.NotNil(t, rental.RentalFee)
		assert.Equal(t, 120.0, *rental.RentalFee)
		assert.Equal(t, returnedAt, *rental.DateReturned)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("AlreadyClosed", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewRentalRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec(closeRental).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		rental := mockRental()
		rental.ID = "r-1"
		err := repo.Close(ctx, rental, returnedAt, 120)
		assert.ErrorIs(t, err, ErrRentalClosed)
		assert.Nil(t, rental.DateReturned)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("StockFailureRollsBack", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewRentalRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec(closeRental).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(giveStock).WillReturnError(errors.New("lock wait timeout"))
		mock.ExpectRollback()

		rental := mockRental()
		rental.ID = "r-1"
		err := repo.Close(ctx, rental, returnedAt, 120)
		assert.EqualError(t, err, "lock wait timeout")
		assert.Nil(t, rental.RentalFee)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
