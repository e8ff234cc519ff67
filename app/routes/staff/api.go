package staff

import (
	"database/sql"
	"log"

	"github.com/albertGil21/ProcesosBackend/app/database"
	"github.com/albertGil21/ProcesosBackend/app/models"
	"github.com/gofiber/fiber/v2"
)

// CreateStaffHandler registers a staff member. Gym affiliation and salary are
// optional; everything else is required.
func CreateStaffHandler(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		type CreateStaffRequest struct {
			GymID      *int     `json:"id_gimnasio"`
			FirstNames string   `json:"nombres"`
			LastNames  string   `json:"apellidos"`
			Email      string   `json:"email"`
			Role       string   `json:"cargo"`
			PayType    string   `json:"tipo_sueldo"`
			Salary     *float64 `json:"sueldo"`
		}

		var req CreateStaffRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Cuerpo de la solicitud inválido"})
		}

		if req.FirstNames == "" || req.LastNames == "" || req.Email == "" || req.Role == "" || req.PayType == "" {
			return c.Status(400).JSON(fiber.Map{"error": "Todos los campos requeridos deben estar completos."})
		}

		worker := &models.Staff{
			GymID:      req.GymID,
			FirstNames: req.FirstNames,
			LastNames:  req.LastNames,
			Email:      req.Email,
			Role:       req.Role,
			PayType:    req.PayType,
			Salary:     req.Salary,
		}

		if err := database.CreateStaff(db, worker); err != nil {
			log.Printf("Staff create error: %v", err)
			return c.Status(500).JSON(fiber.Map{"error": "Ocurrió un error al agregar el trabajador."})
		}

		return c.Status(201).JSON(fiber.Map{
			"message":    "Trabajador creado exitosamente.",
			"trabajador": worker,
		})
	}
}

// GetStaffHandler lists every staff member with the roster fields.
func GetStaffHandler(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		workers, err := database.GetAllStaff(db)
		if err != nil {
			log.Printf("Staff fetch error: %v", err)
			return c.Status(500).JSON(fiber.Map{"error": "Hubo un error al obtener los trabajadores"})
		}

		if workers == nil {
			workers = []*database.StaffSummary{}
		}
		return c.JSON(workers)
	}
}
