package middlewares

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

const ShopDomainKey = "shop_domain"

// ShopContext me-resolve tenant (shop domain) sekali per request.
// Urutan: query ?shop= → header X-Shop-Domain → fallback (demo).
// Di aplikasi Shopify sungguhan ini diganti verifikasi sesi embed.
func ShopContext(fallbackDomain string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		shop := strings.TrimSpace(c.Query("shop"))
		if shop == "" {
			shop = strings.TrimSpace(c.Get("X-Shop-Domain"))
		}
		if shop == "" {
			shop = fallbackDomain
		}
		c.Locals(ShopDomainKey, strings.ToLower(shop))
		return c.Next()
	}
}
