// middlewares/cors.go

package middlewares

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"tokoku_backend/internals/configs"
)

// CorsMiddleware membuat middleware CORS.
// Widget storefront di-embed di domain toko, jadi origin-nya tidak bisa
// ditebak di depan: default wildcard, bisa dipersempit lewat CORS_ALLOW_ORIGINS.
func CorsMiddleware() fiber.Handler {
	origins := strings.TrimSpace(configs.CorsAllowOrigins)
	if origins == "" {
		origins = "*"
	}
	allowCredentials := origins != "*" // Fiber menolak kombinasi wildcard + credentials

	return cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, X-Shop-Domain",
		AllowCredentials: allowCredentials,
	})
}
