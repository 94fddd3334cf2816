package handlers

import (
	"carrental/internal/core/services"
	"carrental/internal/pkg/response"
	"carrental/internal/pkg/validator"

	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	auth     services.Authenticator
	validate *validator.Validator
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(auth services.Authenticator, validate *validator.Validator) *AuthHandler {
	return &AuthHandler{
		auth:     auth,
		validate: validate,
	}
}

// LoginCustomer handles customer login
// @Summary Customer login
// @Description Authenticate a customer and return a token
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body services.LoginInput true "Credentials"
// @Success 200 {object} response.Response{data=services.TokenResponse}
// @Failure 400 {object} response.Response
// @Router /auth [post]
func (h *AuthHandler) LoginCustomer(c *fiber.Ctx) error {
	var input services.LoginInput
	if err := bind(c, h.validate, &input); err != nil {
		return fail(c, err)
	}

	token, err := h.auth.LoginCustomer(c.UserContext(), &input)
	if err != nil {
		return fail(c, err)
	}

	return response.Success(c, "Login successful", token)
}

// LoginEmployee handles employee login
// @Summary Employee login
// @Description Authenticate an employee and return a token
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body services.LoginInput true "Credentials"
// @Success 200 {object} response.Response{data=services.TokenResponse}
// @Failure 400 {object} response.Response
// @Router /auth/employee [post]
func (h *AuthHandler) LoginEmployee(c *fiber.Ctx) error {
	var input services.LoginInput
	if err := bind(c, h.validate, &input); err != nil {
		return fail(c, err)
	}

	token, err := h.auth.LoginEmployee(c.UserContext(), &input)
	if err != nil {
		return fail(c, err)
	}

	return response.Success(c, "Login successful", token)
}
