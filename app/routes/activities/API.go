package activities

import (
	"database/sql"
	"log"
	"strconv"
	"time"

	"github.com/albertGil21/ProcesosBackend/app/database"
	"github.com/albertGil21/ProcesosBackend/app/models"
	"github.com/gofiber/fiber/v2"
)

// parseActivityID accepts id_actividad as either a JSON number or a numeric string.
func parseActivityID(value interface{}) (int, bool) {
	switch v := value.(type) {
	case float64:
		id := int(v)
		if float64(id) != v || id <= 0 {
			return 0, false
		}
		return id, true
	case string:
		id, err := strconv.Atoi(v)
		if err != nil || id <= 0 {
			return 0, false
		}
		return id, true
	default:
		return 0, false
	}
}

// CreateActivityHandler creates an activity with at least one schedule. The
// activity and its schedules are inserted in one transaction.
func CreateActivityHandler(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		type ScheduleRequest struct {
			Date      string `json:"fecha"`
			StartTime string `json:"hora_inicio"`
			EndTime   string `json:"hora_fin"`
			StaffID   *int   `json:"id_trabajador"`
		}
		type CreateActivityRequest struct {
			GymID       int               `json:"id_gimnasio"`
			Name        string            `json:"nombre_actividad"`
			Description string            `json:"descripcion"`
			Schedules   []ScheduleRequest `json:"horarios"`
		}

		var req CreateActivityRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Cuerpo de la solicitud inválido"})
		}

		if req.Name == "" {
			return c.Status(400).JSON(fiber.Map{"error": "El campo nombre_actividad es obligatorio."})
		}
		if len(req.Schedules) == 0 {
			return c.Status(400).JSON(fiber.Map{"error": "Debes proporcionar al menos un horario."})
		}

		gymID := req.GymID
		if gymID == 0 {
			gymID = database.DefaultGymID
		}

		schedules := make([]*models.Schedule, 0, len(req.Schedules))
		for _, s := range req.Schedules {
			date, err := time.Parse("2006-01-02", s.Date)
			if err != nil {
				return c.Status(400).JSON(fiber.Map{"error": "Formato de fecha inválido en horarios. Usa YYYY-MM-DD"})
			}
			start, err := database.CombineDateTime(date, s.StartTime)
			if err != nil {
				return c.Status(400).JSON(fiber.Map{"error": "Formato de hora inválido en horarios. Usa HH:MM"})
			}
			end, err := database.CombineDateTime(date, s.EndTime)
			if err != nil {
				return c.Status(400).JSON(fiber.Map{"error": "Formato de hora inválido en horarios. Usa HH:MM"})
			}
			schedules = append(schedules, &models.Schedule{
				Date:      date,
				StartTime: start,
				EndTime:   end,
				StaffID:   s.StaffID,
			})
		}

		activity := &models.Activity{
			GymID:       gymID,
			Name:        req.Name,
			Description: req.Description,
		}

		if err := database.CreateActivityWithSchedules(db, activity, schedules); err != nil {
			log.Printf("Activity create error: %v", err)
			return c.Status(500).JSON(fiber.Map{"error": "Ocurrió un error al crear la actividad y sus horarios."})
		}

		return c.Status(201).JSON(fiber.Map{
			"message":   "Actividad y horarios creados exitosamente.",
			"actividad": activity,
		})
	}
}

// GetActivitiesHandler lists every schedule slot with its activity name and
// assigned instructor.
func GetActivitiesHandler(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sessions, err := database.GetActivitySessions(db)
		if err != nil {
			log.Printf("Activities fetch error: %v", err)
			return c.Status(500).JSON(fiber.Map{"message": "Error al obtener las actividades"})
		}

		if sessions == nil {
			sessions = []*database.ActivitySession{}
		}
		return c.JSON(fiber.Map{"actividades": sessions})
	}
}

// DeleteActivityHandler removes an activity and its schedules.
func DeleteActivityHandler(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		type DeleteActivityRequest struct {
			ActivityID interface{} `json:"id_actividad"`
		}

		var req DeleteActivityRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Cuerpo de la solicitud inválido"})
		}

		activityID, ok := parseActivityID(req.ActivityID)
		if !ok {
			return c.Status(400).JSON(fiber.Map{"error": "El campo id_actividad es obligatorio."})
		}

		err := database.DeleteActivity(db, activityID)
		if err == database.ErrNotFound {
			return c.Status(404).JSON(fiber.Map{"error": "Actividad no encontrada."})
		}
		if err != nil {
			log.Printf("Activity delete error: %v", err)
			return c.Status(500).JSON(fiber.Map{"error": "Ocurrió un error al eliminar la actividad."})
		}

		return c.JSON(fiber.Map{"message": "Actividad y horarios eliminados exitosamente."})
	}
}
