package services

import (
	"context"
	"errors"

	"carrental/internal/adapters/persistence/models"
	"carrental/internal/adapters/persistence/repositories"
	"carrental/internal/core/domain"

	"gorm.io/gorm"
)

// CatalogService manages brands, styles and cars
type CatalogService struct {
	brandRepo *repositories.BrandRepository
	styleRepo *repositories.StyleRepository
	carRepo   *repositories.CarRepository
}

// NewCatalogService creates a new catalog service
func NewCatalogService(
	brandRepo *repositories.BrandRepository,
	styleRepo *repositories.StyleRepository,
	carRepo *repositories.CarRepository,
) *CatalogService {
	return &CatalogService{
		brandRepo: brandRepo,
		styleRepo: styleRepo,
		carRepo:   carRepo,
	}
}

// BrandInput represents brand create/update input
type BrandInput struct {
	Name        string `json:"name" validate:"required,min=3,max=255"`
	Description string `json:"description" validate:"required,min=3,max=1024"`
}

// StyleInput represents style create/update input
type StyleInput struct {
	Name        string `json:"name" validate:"required,min=3,max=255"`
	Description string `json:"description" validate:"required,min=3,max=1024"`
}

// CreateCarInput represents car creation input
type CreateCarInput struct {
	Name            string   `json:"name" validate:"required,min=1,max=255"`
	Description     string   `json:"description" validate:"required,max=1024"`
	BrandID         string   `json:"brandId" validate:"required,uuid"`
	StyleID         string   `json:"styleId" validate:"required,uuid"`
	NumberInStock   *int     `json:"numberInStock" validate:"omitempty,min=0,max=1000000"`
	DailyRentalRate *float64 `json:"dailyRentalRate" validate:"omitempty,min=0,max=1000000"`
}

// UpdateCarInput represents a partial car update; nil fields are left untouched
type UpdateCarInput struct {
	Name            *string  `json:"name" validate:"omitempty,min=1,max=255"`
	Description     *string  `json:"description" validate:"omitempty,max=1024"`
	BrandID         *string  `json:"brandId" validate:"omitempty,uuid"`
	StyleID         *string  `json:"styleId" validate:"omitempty,uuid"`
	NumberInStock   *int     `json:"numberInStock" validate:"omitempty,min=0,max=1000000"`
	DailyRentalRate *float64 `json:"dailyRentalRate" validate:"omitempty,min=0,max=1000000"`
}

// ============================================================
// Brands
// ============================================================

// ListBrands lists brands sorted by name
func (s *CatalogService) ListBrands(ctx context.Context) ([]*models.Brand, error) {
	brands, err := s.brandRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if brands == nil {
		brands = []*models.Brand{}
	}
	return brands, nil
}

// GetBrand gets a brand by ID
func (s *CatalogService) GetBrand(ctx context.Context, id string) (*models.Brand, error) {
	brand, err := s.brandRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrBrandNotFound
		}
		return nil, err
	}
	return brand, nil
}

// CreateBrand creates a brand
func (s *CatalogService) CreateBrand(ctx context.Context, input *BrandInput) (*models.Brand, error) {
	brand := &models.Brand{Name: input.Name, Description: input.Description}
	if err := s.brandRepo.Create(ctx, brand); err != nil {
		return nil, err
	}
	return brand, nil
}

// UpdateBrand replaces a brand's name and description.
// Cars keep the brand snapshot they were saved with.
func (s *CatalogService) UpdateBrand(ctx context.Context, id string, input *BrandInput) (*models.Brand, error) {
	brand, err := s.GetBrand(ctx, id)
	if err != nil {
		return nil, err
	}

	brand.Name = input.Name
	brand.Description = input.Description
	if err := s.brandRepo.Update(ctx, brand); err != nil {
		return nil, err
	}
	return brand, nil
}

// DeleteBrand deletes a brand and returns it
func (s *CatalogService) DeleteBrand(ctx context.Context, id string) (*models.Brand, error) {
	brand, err := s.GetBrand(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.brandRepo.Delete(ctx, id); err != nil {
		return nil, err
	}
	return brand, nil
}

// ============================================================
// Styles
// ============================================================

// ListStyles lists styles sorted by name
func (s *CatalogService) ListStyles(ctx context.Context) ([]*models.Style, error) {
	styles, err := s.styleRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if styles == nil {
		styles = []*models.Style{}
	}
	return styles, nil
}

// GetStyle gets a style by ID
func (s *CatalogService) GetStyle(ctx context.Context, id string) (*models.Style, error) {
	style, err := s.styleRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrStyleNotFound
		}
		return nil, err
	}
	return style, nil
}

// CreateStyle creates a style
func (s *CatalogService) CreateStyle(ctx context.Context, input *StyleInput) (*models.Style, error) {
	style := &models.Style{Name: input.Name, Description: input.Description}
	if err := s.styleRepo.Create(ctx, style); err != nil {
		return nil, err
	}
	return style, nil
}

// UpdateStyle replaces a style's name and description
func (s *CatalogService) UpdateStyle(ctx context.Context, id string, input *StyleInput) (*models.Style, error) {
	style, err := s.GetStyle(ctx, id)
	if err != nil {
		return nil, err
	}

	style.Name = input.Name
	style.Description = input.Description
	if err := s.styleRepo.Update(ctx, style); err != nil {
		return nil, err
	}
	return style, nil
}

// DeleteStyle deletes a style and returns it
func (s *CatalogService) DeleteStyle(ctx context.Context, id string) (*models.Style, error) {
	style, err := s.GetStyle(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.styleRepo.Delete(ctx, id); err != nil {
		return nil, err
	}
	return style, nil
}

// ============================================================
// Cars
// ============================================================

// ListCars lists cars sorted by name
func (s *CatalogService) ListCars(ctx context.Context) ([]*models.Car, error) {
	cars, err := s.carRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if cars == nil {
		cars = []*models.Car{}
	}
	return cars, nil
}

// GetCar gets a car by ID
func (s *CatalogService) GetCar(ctx context.Context, id string) (*models.Car, error) {
	car, err := s.carRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCarNotFound
		}
		return nil, err
	}
	return car, nil
}

// CreateCar creates a car with brand and style snapshots
func (s *CatalogService) CreateCar(ctx context.Context, input *CreateCarInput) (*models.Car, error) {
	brand, err := s.brandSnapshot(ctx, input.BrandID)
	if err != nil {
		return nil, err
	}
	style, err := s.styleSnapshot(ctx, input.StyleID)
	if err != nil {
		return nil, err
	}

	car := &models.Car{
		Name:        input.Name,
		Description: input.Description,
		Brand:       brand,
		Style:       style,
	}
	if input.NumberInStock != nil {
		car.NumberInStock = *input.NumberInStock
	}
	if input.DailyRentalRate != nil {
		car.DailyRentalRate = *input.DailyRentalRate
	}

	if err := s.carRepo.Create(ctx, car); err != nil {
		return nil, err
	}
	return car, nil
}

// UpdateCar applies the supplied fields. A supplied brandId or styleId refreshes that snapshot.
func (s *CatalogService) UpdateCar(ctx context.Context, id string, input *UpdateCarInput) (*models.Car, error) {
	car, err := s.GetCar(ctx, id)
	if err != nil {
		return nil, err
	}

	// only supplied columns are written; stock stays with the rental ledger
	var columns []string
	if input.BrandID != nil {
		if car.Brand, err = s.brandSnapshot(ctx, *input.BrandID); err != nil {
			return nil, err
		}
		columns = append(columns, "brand_id", "brand_name")
	}
	if input.StyleID != nil {
		if car.Style, err = s.styleSnapshot(ctx, *input.StyleID); err != nil {
			return nil, err
		}
		columns = append(columns, "style_id", "style_name")
	}
	if input.Name != nil {
		car.Name = *input.Name
		columns = append(columns, "name")
	}
	if input.Description != nil {
		car.Description = *input.Description
		columns = append(columns, "description")
	}
	if input.NumberInStock != nil {
		car.NumberInStock = *input.NumberInStock
		columns = append(columns, "number_in_stock")
	}
	if input.DailyRentalRate != nil {
		car.DailyRentalRate = *input.DailyRentalRate
		columns = append(columns, "daily_rental_rate")
	}

	if err := s.carRepo.Update(ctx, car, columns...); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCarNotFound
		}
		return nil, err
	}

	// re-read so the reply shows stock as stored, not as first read
	return s.GetCar(ctx, id)
}

// DeleteCar deletes a car and returns it. Rentals keep their car snapshot.
func (s *CatalogService) DeleteCar(ctx context.Context, id string) (*models.Car, error) {
	car, err := s.GetCar(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.carRepo.Delete(ctx, id); err != nil {
		return nil, err
	}
	return car, nil
}

func (s *CatalogService) brandSnapshot(ctx context.Context, id string) (models.CarBrand, error) {
	brand, err := s.brandRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.CarBrand{}, domain.ErrInvalidBrand
		}
		return models.CarBrand{}, err
	}
	return models.CarBrand{ID: brand.ID, Name: brand.Name}, nil
}

func (s *CatalogService) styleSnapshot(ctx context.Context, id string) (models.CarStyle, error) {
	style, err := s.styleRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.CarStyle{}, domain.ErrInvalidStyle
		}
		return models.CarStyle{}, err
	}
	return models.CarStyle{ID: style.ID, Name: style.Name}, nil
}
