package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

const allowHeaders = "Content-Type, Authorization"

// CORS applies a fixed cross-origin policy. Headers are set on every
// response, including errors, so browsers can read failure envelopes.
func CORS(origin string, methods ...string) fiber.Handler {
	allowMethods := strings.Join(methods, ", ")
	return func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderAccessControlAllowOrigin, origin)
		c.Set(fiber.HeaderAccessControlAllowMethods, allowMethods)
		c.Set(fiber.HeaderAccessControlAllowHeaders, allowHeaders)
		return c.Next()
	}
}

// GetOnly answers preflight requests with an empty 200 and rejects every
// method other than GET with 405.
func GetOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		switch c.Method() {
		case fiber.MethodOptions:
			// Status alone: SendStatus would write "OK" into the body
			c.Status(fiber.StatusOK)
			return nil
		case fiber.MethodGet:
			return c.Next()
		default:
			return c.Status(fiber.StatusMethodNotAllowed).JSON(fiber.Map{"error": "Method not allowed"})
		}
	}
}
