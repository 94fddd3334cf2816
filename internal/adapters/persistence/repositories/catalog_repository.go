package repositories

import (
	"context"

	"carrental/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// BrandRepository handles brand data access
type BrandRepository struct {
	db *gorm.DB
}

// NewBrandRepository creates a new brand repository
func NewBrandRepository(db *gorm.DB) *BrandRepository {
	return &BrandRepository{db: db}
}

// Create creates a new brand
func (r *BrandRepository) Create(ctx context.Context, brand *models.Brand) error {
	return r.db.WithContext(ctx).Create(brand).Error
}

// GetByID gets a brand by ID
func (r *BrandRepository) GetByID(ctx context.Context, id string) (*models.Brand, error) {
	var brand models.Brand
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&brand).Error
	if err != nil {
		return nil, err
	}
	return &brand, nil
}

// List lists all brands sorted by name
func (r *BrandRepository) List(ctx context.Context) ([]*models.Brand, error) {
	var brands []*models.Brand
	err := r.db.WithContext(ctx).Order("name ASC").Find(&brands).Error
	return brands, err
}

// Update updates a brand
func (r *BrandRepository) Update(ctx context.Context, brand *models.Brand) error {
	return r.db.WithContext(ctx).Save(brand).Error
}

// Delete deletes a brand
func (r *BrandRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Brand{}).Error
}

// StyleRepository handles style data access
type StyleRepository struct {
	db *gorm.DB
}

// NewStyleRepository creates a new style repository
func NewStyleRepository(db *gorm.DB) *StyleRepository {
	return &StyleRepository{db: db}
}

// Create creates a new style
func (r *StyleRepository) Create(ctx context.Context, style *models.Style) error {
	return r.db.WithContext(ctx).Create(style).Error
}

// GetByID gets a style by ID
func (r *StyleRepository) GetByID(ctx context.Context, id string) (*models.Style, error) {
	var style models.Style
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&style).Error
	if err != nil {
		return nil, err
	}
	return &style, nil
}

// List lists all styles sorted by name
func (r *StyleRepository) List(ctx context.Context) ([]*models.Style, error) {
	var styles []*models.Style
	err := r.db.WithContext(ctx).Order("name ASC").Find(&styles).Error
	return styles, err
}

// Update updates a style
func (r *StyleRepository) Update(ctx context.Context, style *models.Style) error {
	return r.db.WithContext(ctx).Save(style).Error
}

// Delete deletes a style
func (r *StyleRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Style{}).Error
}

// CarRepository handles car data access
type CarRepository struct {
	db *gorm.DB
}

// NewCarRepository creates a new car repository
func NewCarRepository(db *gorm.DB) *CarRepository {
	return &CarRepository{db: db}
}

// Create creates a new car
func (r *CarRepository) Create(ctx context.Context, car *models.Car) error {
	return r.db.WithContext(ctx).Create(car).Error
}

// GetByID gets a car by ID
func (r *CarRepository) GetByID(ctx context.Context, id string) (*models.Car, error) {
	var car models.Car
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&car).Error
	if err != nil {
		return nil, err
	}
	return &car, nil
}

// List lists all cars sorted by name
func (r *CarRepository) List(ctx context.Context) ([]*models.Car, error) {
	var cars []*models.Car
	err := r.db.WithContext(ctx).Order("name ASC").Find(&cars).Error
	return cars, err
}

// Update writes only the listed columns of a car. Stock moved by the rental
// ledger since the car was read is kept unless number_in_stock is listed.
// Returns gorm.ErrRecordNotFound when the car is gone.
func (r *CarRepository) Update(ctx context.Context, car *models.Car, columns ...string) error {
	if len(columns) == 0 {
		return nil
	}

	res := r.db.WithContext(ctx).Model(car).Select(columns).Updates(car)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete deletes a car
func (r *CarRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Car{}).Error
}
