package handlers

import (
	"errors"

	"carrental/internal/core/domain"
	"carrental/internal/pkg/response"
	"carrental/internal/pkg/validator"

	"github.com/gofiber/fiber/v2"
)

// fail writes client errors as 400/401/404. Anything else goes to the
// app error handler, which logs it and answers 500.
func fail(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrUnauthenticated):
		return response.Fail(c, fiber.StatusUnauthorized, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		return response.Fail(c, fiber.StatusNotFound, err.Error())
	case domain.IsClientError(err):
		return response.Fail(c, fiber.StatusBadRequest, err.Error())
	default:
		return err
	}
}

// bind parses the JSON body into dst and validates it
func bind(c *fiber.Ctx, v *validator.Validator, dst interface{}) error {
	if err := c.BodyParser(dst); err != nil {
		return domain.NewError(domain.ErrValidationFailed, "Invalid request body.")
	}
	if err := v.Struct(dst); err != nil {
		return domain.NewError(domain.ErrValidationFailed, err.Error())
	}
	return nil
}
