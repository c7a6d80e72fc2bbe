// file: internals/features/announcements/route/announcement_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	annController "tokoku_backend/internals/features/announcements/controller"
	annService "tokoku_backend/internals/features/announcements/service"
	"tokoku_backend/internals/middlewares"
)

// AnnouncementAdminRoutes: CRUD panel admin + reset demo.
func AnnouncementAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := annController.NewAnnouncementAdminController(annService.NewAnnouncementService(db))

	api.Get("/announcements", ctrl.List)
	api.Post("/announcements", ctrl.Create)
	api.Put("/announcements/:id", ctrl.Update)
	api.Delete("/announcements/:id", ctrl.Delete)

	api.Get("/reset", middlewares.ResetRateLimiter(), ctrl.Reset)
}

// AnnouncementPublicRoutes: endpoint read-only untuk widget storefront.
// Didaftarkan SEBELUM route :id supaya "/active" tidak tertelan wildcard.
func AnnouncementPublicRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := annController.NewAnnouncementPublicController(annService.NewAnnouncementService(db))

	api.Get("/announcements/active", ctrl.GetActive)
}
