package helper

import (
	"github.com/gofiber/fiber/v2"

	"tokoku_backend/internals/middlewares"
)

// ShopDomain membaca tenant hasil resolve middleware ShopContext.
func ShopDomain(c *fiber.Ctx) string {
	if v, ok := c.Locals(middlewares.ShopDomainKey).(string); ok {
		return v
	}
	return ""
}
