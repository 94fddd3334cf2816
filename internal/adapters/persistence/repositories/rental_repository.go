package repositories

import (
	"context"
	"time"

	"carrental/internal/adapters/persistence/models"
	"carrental/internal/pkg/pagination"

	"gorm.io/gorm"
)

// rentalRepository implements RentalRepository interface
type rentalRepository struct {
	db *gorm.DB
}

// NewRentalRepository creates a new rental repository
func NewRentalRepository(db *gorm.DB) RentalRepository {
	return &rentalRepository{db: db}
}

// Open takes one unit of stock from the car and inserts the rental.
// Returns ErrStockDepleted when the car has no stock left; nothing is written then.
func (r *rentalRepository) Open(ctx context.Context, rental *models.Rental) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Car{}).
			Where("id = ? AND number_in_stock > 0", rental.Car.ID).
			UpdateColumn("number_in_stock", gorm.Expr("number_in_stock - ?", 1))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrStockDepleted
		}

		return tx.Create(rental).Error
	})
}

// Close stamps the return on an open rental and gives the unit back to the car.
// Returns ErrRentalClosed when the rental was closed in the meantime.
func (r *rentalRepository) Close(ctx context.Context, rental *models.Rental, returnedAt time.Time, fee float64) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Rental{}).
			Where("id = ? AND date_returned IS NULL", rental.ID).
			Updates(map[string]interface{}{
				"date_returned": returnedAt,
				"rental_fee":    fee,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrRentalClosed
		}

		// the car may have been deleted since; nothing to give back then
		return tx.Model(&models.Car{}).
			Where("id = ?", rental.Car.ID).
			UpdateColumn("number_in_stock", gorm.Expr("number_in_stock + ?", 1)).Error
	})
	if err != nil {
		return err
	}

	rental.DateReturned = &returnedAt
	rental.RentalFee = &fee
	return nil
}

// GetByID gets a rental by ID
func (r *rentalRepository) GetByID(ctx context.Context, id string) (*models.Rental, error) {
	var rental models.Rental
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&rental).Error
	if err != nil {
		return nil, err
	}
	return &rental, nil
}

// FindOpen gets the oldest open rental for a customer and car
func (r *rentalRepository) FindOpen(ctx context.Context, customerID, carID string) (*models.Rental, error) {
	var rental models.Rental
	err := r.db.WithContext(ctx).
		Where("customer_id = ? AND car_id = ? AND date_returned IS NULL", customerID, carID).
		Order("date_out ASC").
		First(&rental).Error
	if err != nil {
		return nil, err
	}
	return &rental, nil
}

// ExistsForPair checks if any rental, open or closed, exists for a customer and car
func (r *rentalRepository) ExistsForPair(ctx context.Context, customerID, carID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Rental{}).
		Where("customer_id = ? AND car_id = ?", customerID, carID).
		Count(&count).Error
	return count > 0, err
}

// List lists rentals, newest first
func (r *rentalRepository) List(ctx context.Context, page *pagination.Params) ([]*models.Rental, int64, error) {
	var rentals []*models.Rental
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.Rental{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Scopes(page.Scope()).
		Order("date_out DESC").
		Find(&rentals).Error
	if err != nil {
		return nil, 0, err
	}

	return rentals, total, nil
}

// ListByCustomer lists a customer's rentals, newest first
func (r *rentalRepository) ListByCustomer(ctx context.Context, customerID string) ([]*models.Rental, error) {
	var rentals []*models.Rental
	err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("date_out DESC").
		Find(&rentals).Error
	return rentals, err
}

// Update writes only the listed columns, and only while the rental is still
// open (wasOpen) or still closed. Returns ErrRentalChanged when it was
// returned or deleted since it was read.
func (r *rentalRepository) Update(ctx context.Context, rental *models.Rental, wasOpen bool, columns ...string) error {
	if len(columns) == 0 {
		return nil
	}

	state := "date_returned IS NOT NULL"
	if wasOpen {
		state = "date_returned IS NULL"
	}

	res := r.db.WithContext(ctx).Model(rental).Where(state).Select(columns).Updates(rental)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRentalChanged
	}
	return nil
}

// Delete deletes a rental
func (r *rentalRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Rental{}).Error
}
