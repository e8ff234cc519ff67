package main

import (
	"log"

	"github.com/albertGil21/ProcesosBackend/app/config"
	"github.com/albertGil21/ProcesosBackend/app/database"
	"github.com/albertGil21/ProcesosBackend/app/routes/activities"
	"github.com/albertGil21/ProcesosBackend/app/routes/attendance"
	"github.com/albertGil21/ProcesosBackend/app/routes/members"
	"github.com/albertGil21/ProcesosBackend/app/routes/staff"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
)

// apiErrorHandler renders any error Fiber surfaces as a JSON body.
func apiErrorHandler(c *fiber.Ctx, err error) error {
	// Status code defaults to 500
	code := fiber.StatusInternalServerError

	// Retrieve the custom status code if it's a *fiber.Error
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   err.Error(),
		"code":    code,
	})
}

func main() {
	// Load .env if present; real deployments set the environment directly
	_ = godotenv.Load()

	// Initialize database
	config.InitDB()
	db := config.GetDB()
	defer db.Close()

	// Run database migrations
	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: apiErrorHandler,
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New())

	// Routes
	attendance.SetupAttendanceRoutes(app, db)
	members.SetupMembersRoutes(app, db)
	activities.SetupActivitiesRoutes(app, db)
	staff.SetupStaffRoutes(app, db)

	// Catch-all route for 404 errors (must be last)
	app.Use("*", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Ruta no encontrada")
	})

	// Start server
	addr := ":" + config.Port()
	log.Println("Server starting on", addr)
	log.Fatal(app.Listen(addr))
}
