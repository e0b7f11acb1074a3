package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// RayIDHeader is the response header carrying the ray id.
const RayIDHeader = "X-Ray-Id"

// RayIDKey is the Fiber locals key the ray id is stored under.
const RayIDKey = "ray_id"

// RayID returns a middleware that assigns every request a unique ray id and
// exposes it both in the request context and the response headers.
func RayID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := uuid.NewString()
		c.Locals(RayIDKey, id)
		c.Set(RayIDHeader, id)
		return c.Next()
	}
}
