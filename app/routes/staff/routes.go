package staff

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"
)

// SetupStaffRoutes registers the staff endpoints.
func SetupStaffRoutes(app *fiber.App, db *sql.DB) {
	api := app.Group("/api")
	api.Post("/trabajadores", CreateStaffHandler(db))
	api.Get("/trabajadores", GetStaffHandler(db))
}
