package response

import "github.com/gofiber/fiber/v2"

// TokenHeader carries the signed token on registration replies and on
// every authenticated request.
const TokenHeader = "x-auth-token"

// Response is the JSON envelope of every reply.
// Exactly one of Data and Error is set.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// Success sends a 200 response
func Success(c *fiber.Ctx, message string, data interface{}) error {
	return c.JSON(Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// WithToken sends a 200 response and exposes the token in the x-auth-token header
func WithToken(c *fiber.Ctx, token, message string, data interface{}) error {
	c.Set(TokenHeader, token)
	c.Set(fiber.HeaderAccessControlExposeHeaders, TokenHeader)
	return Success(c, message, data)
}

// Fail sends an error envelope with the given status.
// message is shown to the client as is.
func Fail(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(Response{Error: message})
}
