package middleware

import (
	"errors"

	"carrental/internal/core/domain"
	"carrental/internal/core/services"
	"carrental/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const principalKey = "principal"

// RequireAuth decodes the x-auth-token header into a principal.
// Missing token is 401, an unusable one is 400.
func RequireAuth(auth services.Authenticator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, err := auth.VerifyToken(c.Get(response.TokenHeader))
		if err != nil {
			if errors.Is(err, domain.ErrUnauthenticated) {
				return response.Fail(c, fiber.StatusUnauthorized, domain.ErrNoTokenProvided.Error())
			}
			return response.Fail(c, fiber.StatusBadRequest, domain.ErrTokenRejected.Error())
		}

		c.Locals(principalKey, principal)
		return c.Next()
	}
}

// EmployeeOnly must run after RequireAuth
func EmployeeOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal := Principal(c)
		if principal == nil {
			return response.Fail(c, fiber.StatusUnauthorized, domain.ErrNoTokenProvided.Error())
		}
		if !principal.IsEmployee() {
			return response.Fail(c, fiber.StatusBadRequest, domain.ErrEmployeeRequired.Error())
		}
		return c.Next()
	}
}

// ManagerOnly must run after RequireAuth
func ManagerOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal := Principal(c)
		if principal == nil {
			return response.Fail(c, fiber.StatusUnauthorized, domain.ErrNoTokenProvided.Error())
		}
		if !principal.IsEmployee() {
			return response.Fail(c, fiber.StatusBadRequest, domain.ErrEmployeeRequired.Error())
		}
		if !principal.IsManager() {
			return response.Fail(c, fiber.StatusBadRequest, domain.ErrManagerRequired.Error())
		}
		return c.Next()
	}
}

// Principal returns the principal stored by RequireAuth, or nil
func Principal(c *fiber.Ctx) *domain.Principal {
	principal, _ := c.Locals(principalKey).(*domain.Principal)
	return principal
}

// ValidateID rejects a malformed :id path parameter with 400
func ValidateID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, err := uuid.Parse(c.Params("id")); err != nil {
			return response.Fail(c, fiber.StatusBadRequest, "Invalid ID.")
		}
		return c.Next()
	}
}
