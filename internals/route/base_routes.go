package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var startTime = time.Now()

func BaseRoutes(app *fiber.App, db *gorm.DB) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/admin/", fiber.StatusFound)
	})

	healthHandler := func(c *fiber.Ctx) error {
		dbStatus := "Connected"
		httpStatus := fiber.StatusOK
		success := true

		sqlDB, err := db.DB()
		if err != nil || sqlDB.Ping() != nil {
			dbStatus = "Database connection error"
			httpStatus = fiber.StatusServiceUnavailable
			success = false
		}

		return c.Status(httpStatus).JSON(fiber.Map{
			"success":        success,
			"message":        "Announcement Scheduler API is running!",
			"database":       dbStatus,
			"server_time":    time.Now().Format(time.RFC3339),
			"uptime_seconds": int(time.Since(startTime).Seconds()),
		})
	}

	app.Get("/health", healthHandler)
	app.Get("/api/health", healthHandler)
}
