package members

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"
)

// SetupMembersRoutes registers the member endpoints.
func SetupMembersRoutes(app *fiber.App, db *sql.DB) {
	api := app.Group("/api")
	api.Get("/obtener_usuario", GetMembersHandler(db))
	api.Post("/crear_usuario", CreateMemberHandler(db))
	api.Delete("/usuarios/eliminar", DeleteMemberHandler(db))
}
