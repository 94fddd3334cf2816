package handlers

import (
	"carrental/internal/adapters/http/middleware"
	"carrental/internal/core/services"
	"carrental/internal/pkg/pagination"
	"carrental/internal/pkg/response"
	"carrental/internal/pkg/validator"

	"github.com/gofiber/fiber/v2"
)

// RentalHandler handles rental and return endpoints
type RentalHandler struct {
	rentals  services.Rentals
	validate *validator.Validator
}

// NewRentalHandler creates a new rental handler
func NewRentalHandler(rentals services.Rentals, validate *validator.Validator) *RentalHandler {
	return &RentalHandler{
		rentals:  rentals,
		validate: validate,
	}
}

// ListRentals lists all rentals
// @Summary List rentals
// @Description List rentals, newest dateOut first
// @Tags Rentals
// @Produce json
// @Security TokenAuth
// @Param page query int false "Page"
// @Param limit query int false "Items per page"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /rentals [get]
func (h *RentalHandler) ListRentals(c *fiber.Ctx) error {
	page, err := h.rentals.List(c.UserContext(), pagination.FromQuery(c))
	if err != nil {
		return err
	}
	return response.Success(c, "Rentals retrieved successfully", page)
}

// ListMyRentals lists the caller's rentals
// @Summary List my rentals
// @Tags Rentals
// @Produce json
// @Security TokenAuth
// @Success 200 {object} response.Response{data=[]models.Rental}
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /rentals/me [get]
func (h *RentalHandler) ListMyRentals(c *fiber.Ctx) error {
	rentals, err := h.rentals.ListByCustomer(c.UserContext(), middleware.Principal(c).ID)
	if err != nil {
		return err
	}
	return response.Success(c, "Rentals retrieved successfully", rentals)
}

// GetRental gets a rental by ID
// @Summary Get rental
// @Description Get a rental by ID (employees only)
// @Tags Rentals
// @Produce json
// @Security TokenAuth
// @Param id path string true "Rental ID"
// @Success 200 {object} response.Response{data=models.Rental}
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /rentals/{id} [get]
func (h *RentalHandler) GetRental(c *fiber.Ctx) error {
	rental, err := h.rentals.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return response.Success(c, "Rental retrieved successfully", rental)
}

// CreateRental opens a rental
// @Summary Open rental
// @Description Open a rental and take one car out of stock
// @Tags Rentals
// @Accept json
// @Produce json
// @Security TokenAuth
// @Param body body services.RentalInput true "Customer and car"
// @Success 200 {object} response.Response{data=models.Rental}
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /rentals [post]
func (h *RentalHandler) CreateRental(c *fiber.Ctx) error {
	var input services.RentalInput
	if err := bind(c, h.validate, &input); err != nil {
		return fail(c, err)
	}

	rental, err := h.rentals.Open(c.UserContext(), &input)
	if err != nil {
		return fail(c, err)
	}
	return response.Success(c, "Rental created successfully", rental)
}

// UpdateRental updates a rental
// @Summary Update rental
// @Description Overwrite the supplied rental fields; stock is untouched (employees only)
// @Tags Rentals
// @Accept json
// @Produce json
// @Security TokenAuth
// @Param id path string true "Rental ID"
// @Param body body services.UpdateRentalInput true "Fields to change"
// @Success 200 {object} response.Response{data=models.Rental}
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /rentals/{id} [put]
func (h *RentalHandler) UpdateRental(c *fiber.Ctx) error {
	var input services.UpdateRentalInput
	if err := bind(c, h.validate, &input); err != nil {
		return fail(c, err)
	}

	rental, err := h.rentals.Update(c.UserContext(), c.Params("id"), &input)
	if err != nil {
		return fail(c, err)
	}
	return response.Success(c, "Rental updated successfully", rental)
}

// DeleteRental deletes a rental
// @Summary Delete rental
// @Description Delete a rental and return it; stock is untouched (managers only)
// @Tags Rentals
// @Produce json
// @Security TokenAuth
// @Param id path string true "Rental ID"
// @Success 200 {object} response.Response{data=models.Rental}
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /rentals/{id} [delete]
func (h *RentalHandler) DeleteRental(c *fiber.Ctx) error {
	rental, err := h.rentals.Delete(c.UserContext(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return response.Success(c, "Rental deleted successfully", rental)
}

// ReturnRental closes the open rental for a customer and car
// @Summary Return car
// @Description Close the oldest open rental for the pair, compute the fee and restock the car (employees only)
// @Tags Returns
// @Accept json
// @Produce json
// @Security TokenAuth
// @Param body body services.RentalInput true "Customer and car"
// @Success 200 {object} response.Response{data=models.Rental}
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /returns [post]
func (h *RentalHandler) ReturnRental(c *fiber.Ctx) error {
	var input services.RentalInput
	if err := bind(c, h.validate, &input); err != nil {
		return fail(c, err)
	}

	rental, err := h.rentals.Return(c.UserContext(), &input)
	if err != nil {
		return fail(c, err)
	}
	return response.Success(c, "Return processed successfully", rental)
}
