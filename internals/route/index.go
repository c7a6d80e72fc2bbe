// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tokoku_backend/internals/configs"
	annRoute "tokoku_backend/internals/features/announcements/route"
	"tokoku_backend/internals/middlewares"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	BaseRoutes(app, db)

	// Semua endpoint /api di-scope per toko lewat ShopContext
	log.Println("[INFO] Setting up /api group...")
	api := app.Group("/api",
		middlewares.ShopContext(configs.ShopFallbackDomain),
	)

	log.Println("[INFO] Mounting Announcement routes...")
	annRoute.AnnouncementPublicRoutes(api, db)
	annRoute.AnnouncementAdminRoutes(api, db)
}
