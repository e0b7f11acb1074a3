package middleware

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"
)

// ApiKeyHeader is the header carrying the API key.
const ApiKeyHeader = "X-Api-Key"

// Auth returns a middleware that rejects requests lacking the configured API
// key. An empty key disables the check, which is only sensible for local
// development.
func Auth(apiKey string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if apiKey == "" {
			return c.Next()
		}

		provided := c.Get(ApiKeyHeader)
		if subtle.ConstantTimeCompare([]byte(provided), []byte(apiKey)) != 1 {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "invalid api key",
			})
		}

		return c.Next()
	}
}
