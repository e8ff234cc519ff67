package attendance

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"
)

// SetupAttendanceRoutes registers the attendance endpoints. The pool is
// injected here and closed over by the handlers.
func SetupAttendanceRoutes(app *fiber.App, db *sql.DB) {
	api := app.Group("/api")
	api.Post("/obtener_asistencia", GetDailyAttendanceHandler(db))
	api.Post("/marcar_asistencia", MarkAttendanceHandler(db))
}
