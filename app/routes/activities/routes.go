package activities

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"
)

// SetupActivitiesRoutes registers the activity endpoints.
func SetupActivitiesRoutes(app *fiber.App, db *sql.DB) {
	api := app.Group("/api")
	api.Post("/actividades", CreateActivityHandler(db))
	api.Get("/actividades", GetActivitiesHandler(db))
	api.Delete("/actividades", DeleteActivityHandler(db))
}
