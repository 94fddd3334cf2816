package handlers

import (
	"carrental/internal/core/services"
	"carrental/internal/pkg/response"
	"carrental/internal/pkg/validator"

	"github.com/gofiber/fiber/v2"
)

// CatalogHandler handles brand, style and car endpoints
type CatalogHandler struct {
	catalog  services.Catalog
	validate *validator.Validator
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalog services.Catalog, validate *validator.Validator) *CatalogHandler {
	return &CatalogHandler{
		catalog:  catalog,
		validate: validate,
	}
}

// ============================================================
// Brands
// ============================================================

// ListBrands lists all brands
// @Summary List brands
// @Tags Brands
// @Produce json
// @Success 200 {object} response.Response{data=[]models.Brand}
// @Router /brands [get]
func (h *CatalogHandler) ListBrands(c *fiber.Ctx) error {
	brands, err := h.catalog.ListBrands(c.UserContext())
	if err != nil {
		return err
	}
	return response.Success(c, "Brands retrieved successfully", brands)
}

// GetBrand gets a brand by ID
// @Summary Get brand
// @Tags Brands
// @Produce json
// @Param id path string true "Brand ID"
// @Success 200 {object} response.Response{data=models.Brand}
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /brands/{id} [get]
func (h *CatalogHandler) GetBrand(c *fiber.Ctx) error {
	brand, err := h.catalog.GetBrand(c.UserContext(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return response.Success(c, "Brand retrieved successfully", brand)
}

// CreateBrand creates a brand
// @Summary Create brand
// @Description Create a brand (employees only)
// @Tags Brands
// @Accept json
// @Produce json
// @Security TokenAuth
// @Param body body services.BrandInput true "Brand data"
// @Success 200 {object} response.Response{data=models.Brand}
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /brands [post]
func (h *CatalogHandler) CreateBrand(c *fiber.Ctx) error {
	var input services.BrandInput
	if err := bind(c, h.validate, &input); err != nil {
		return fail(c, err)
	}

	brand, err := h.catalog.CreateBrand(c.UserContext(), &input)
	if err != nil {
		return fail(c, err)
	}
	return response.Success(c, "Brand created successfully", brand)
}

// UpdateBrand updates a brand
// @Summary Update brand
// @Description Replace a brand's name and description (employees only)
// @Tags Brands
// @Accept json
// @Produce json
// @Security TokenAuth
// @Param id path string true "Brand ID"
// @Param body body services.BrandInput true "Brand data"
// @Success 200 {object} response.Response{data=models.Brand}
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /brands/{id} [put]
func (h *CatalogHandler) UpdateBrand(c *fiber.Ctx) error {
	var input services.BrandInput
	if err := bind(c, h.validate, &input); err != nil {
		return fail(c, err)
	}

	brand, err := h.catalog.UpdateBrand(c.UserContext(), c.Params("id"), &input)
	if err != nil {
		return fail(c, err)
	}
	return response.Success(c, "Brand updated successfully", brand)
}

// DeleteBrand deletes a brand
// @Summary Delete brand
// @Description Delete a brand and return it (employees only)
// @Tags Brands
// @Produce json
// @Security TokenAuth
// @Param id path string true "Brand ID"
// @Success 200 {object} response.Response{data=models.Brand}
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /brands/{id} [delete]
func (h *CatalogHandler) DeleteBrand(c *fiber.Ctx) error {
	brand, err := h.catalog.DeleteBrand(c.UserContext(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return response.Success(c, "Brand deleted successfully", brand)
}

// ============================================================
// Styles
// ============================================================

// ListStyles lists all styles
// @Summary List styles
// @Tags Styles
// @Produce json
// @Success 200 {object} response.Response{data=[]models.Style}
// @Router /styles [get]
func (h *CatalogHandler) ListStyles(c *fiber.Ctx) error {
	styles, err := h.catalog.ListStyles(c.UserContext())
	if err != nil {
		return err
	}
	return response.Success(c, "Styles retrieved successfully", styles)
}

// GetStyle gets a style by ID
// @Summary Get style
// @Tags Styles
// @Produce json
// @Param id path string true "Style ID"
// @Success 200 {object} response.Response{data=models.Style}
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /styles/{id} [get]
func (h *CatalogHandler) GetStyle(c *fiber.Ctx) error {
	style, err := h.catalog.GetStyle(c.UserContext(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return response.Success(c, "Style retrieved successfully", style)
}

// CreateStyle creates a style
// @Summary Create style
// @Description Create a style (employees only)
// @Tags Styles
// @Accept json
// @Produce json
// @Security TokenAuth
// @Param body body services.StyleInput true "Style data"
// @Success 200 {object} response.Response{data=models.Style}
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /styles [post]
func (h *CatalogHandler) CreateStyle(c *fiber.Ctx) error {
	var input services.StyleInput
	if err := bind(c, h.validate, &input); err != nil {
		return fail(c, err)
	}

	style, err := h.catalog.CreateStyle(c.UserContext(), &input)
	if err != nil {
		return fail(c, err)
	}
	return response.Success(c, "Style created successfully", style)
}

// UpdateStyle updates a style
// @Summary Update style
// @Description Replace a style's name and description (employees only)
// @Tags Styles
// @Accept json
// @Produce json
// @Security TokenAuth
// @Param id path string true "Style ID"
// @Param body body services.StyleInput true "Style data"
// @Success 200 {object} response.Response{data=models.Style}
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /styles/{id} [put]
func (h *CatalogHandler) UpdateStyle(c *fiber.Ctx) error {
	var input services.StyleInput
	if err := bind(c, h.validate, &input); err != nil {
		return fail(c, err)
	}

	style, err := h.catalog.UpdateStyle(c.UserContext(), c.Params("id"), &input)
	if err != nil {
		return fail(c, err)
	}
	return response.Success(c, "Style updated successfully", style)
}

// DeleteStyle deletes a style
// @Summary Delete style
// @Description Delete a style and return it (employees only)
// @Tags Styles
// @Produce json
// @Security TokenAuth
// @Param id path string true "Style ID"
// @Success 200 {object} response.Response{data=models.Style}
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /styles/{id} [delete]
func (h *CatalogHandler) DeleteStyle(c *fiber.Ctx) error {
	style, err := h.catalog.DeleteStyle(c.UserContext(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return response.Success(c, "Style deleted successfully", style)
}

// ============================================================
// Cars
// ============================================================

// ListCars lists all cars
// @Summary List cars
// @Tags Cars
// @Produce json
// @Success 200 {object} response.Response{data=[]models.Car}
// @Router /cars [get]
func (h *CatalogHandler) ListCars(c *fiber.Ctx) error {
	cars, err := h.catalog.ListCars(c.UserContext())
	if err != nil {
		return err
	}
	return response.Success(c, "Cars retrieved successfully", cars)
}

// GetCar gets a car by ID
// @Summary Get car
// @Tags Cars
// @Produce json
// @Param id path string true "Car ID"
// @Success 200 {object} response.Response{data=models.Car}
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /cars/{id} [get]
func (h *CatalogHandler) GetCar(c *fiber.Ctx) error {
	car, err := h.catalog.GetCar(c.UserContext(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return response.Success(c, "Car retrieved successfully", car)
}

// CreateCar creates a car
// @Summary Create car
// @Description Create a car; brandId and styleId must exist (employees only)
// @Tags Cars
// @Accept json
// @Produce json
// @Security TokenAuth
// @Param body body services.CreateCarInput true "Car data"
// @Success 200 {object} response.Response{data=models.Car}
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /cars [post]
func (h *CatalogHandler) CreateCar(c *fiber.Ctx) error {
	var input services.CreateCarInput
	if err := bind(c, h.validate, &input); err != nil {
		return fail(c, err)
	}

	car, err := h.catalog.CreateCar(c.UserContext(), &input)
	if err != nil {
		return fail(c, err)
	}
	return response.Success(c, "Car created successfully", car)
}

// UpdateCar updates a car
// @Summary Update car
// @Description Update the supplied car fields (employees only)
// @Tags Cars
// @Accept json
// @Produce json
// @Security TokenAuth
// @Param id path string true "Car ID"
// @Param body body services.UpdateCarInput true "Fields to change"
// @Success 200 {object} response.Response{data=models.Car}
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /cars/{id} [put]
func (h *CatalogHandler) UpdateCar(c *fiber.Ctx) error {
	var input services.UpdateCarInput
	if err := bind(c, h.validate, &input); err != nil {
		return fail(c, err)
	}

	car, err := h.catalog.UpdateCar(c.UserContext(), c.Params("id"), &input)
	if err != nil {
		return fail(c, err)
	}
	return response.Success(c, "Car updated successfully", car)
}

// DeleteCar deletes a car
// @Summary Delete car
// @Description Delete a car and return it (employees only)
// @Tags Cars
// @Produce json
// @Security TokenAuth
// @Param id path string true "Car ID"
// @Success 200 {object} response.Response{data=models.Car}
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /cars/{id} [delete]
func (h *CatalogHandler) DeleteCar(c *fiber.Ctx) error {
	car, err := h.catalog.DeleteCar(c.UserContext(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return response.Success(c, "Car deleted successfully", car)
}
