package attendance

import (
	"database/sql"
	"log"
	"strconv"
	"time"

	"github.com/albertGil21/ProcesosBackend/app/database"
	"github.com/gofiber/fiber/v2"
)

// parseEnrollmentID accepts the id_matricula field as either a JSON number or
// a numeric string, mirroring what clients actually send.
func parseEnrollmentID(value interface{}) (int, bool) {
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

func formatClock(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.UTC().Format("15:04:05")
	return &formatted
}

// GetDailyAttendanceHandler lists every member with their check-in/out times
// for one calendar date.
func GetDailyAttendanceHandler(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		type DailyAttendanceRequest struct {
			Date string `json:"date"`
		}

		var req DailyAttendanceRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(400).JSON(fiber.Map{"message": "Cuerpo de la solicitud inválido"})
		}

		date, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"message": "Formato de fecha inválido. Usa YYYY-MM-DD"})
		}

		entries, err := database.GetDailyAttendance(db, date)
		if err != nil {
			log.Printf("Daily attendance fetch error: %v", err)
			return c.Status(500).JSON(fiber.Map{"message": "Error interno del servidor"})
		}

		if entries == nil {
			entries = []*database.DailyAttendanceEntry{}
		}
		return c.JSON(entries)
	}
}

// MarkAttendanceHandler applies one check-in/check-out transition for an
// enrollment on a date. The record travels through three states per
// (enrollment, date): no row, checked in, complete. Complete is terminal.
func MarkAttendanceHandler(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		type MarkAttendanceRequest struct {
			EnrollmentID interface{} `json:"id_matricula"`
			Date         string      `json:"date"`
			Time         string      `json:"time"`
		}

		var req MarkAttendanceRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(400).JSON(fiber.Map{"message": "Cuerpo de la solicitud inválido"})
		}

		enrollmentID, ok := parseEnrollmentID(req.EnrollmentID)
		if !ok {
			return c.Status(400).JSON(fiber.Map{"message": "El id_matricula debe ser un número válido"})
		}

		date, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"message": "Formato de fecha inválido. Usa YYYY-MM-DD"})
		}

		moment, err := database.CombineDateTime(date, req.Time)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"message": "Formato de hora inválido. Usa HH:MM"})
		}

		record, checkedIn, err := database.MarkAttendance(db, enrollmentID, date, moment)
		if err == database.ErrAttendanceComplete {
			return c.Status(400).JSON(fiber.Map{"message": "La asistencia para esta fecha ya está completa"})
		}
		if err != nil {
			log.Printf("Mark attendance error: %v", err)
			return c.Status(500).JSON(fiber.Map{"message": "Error interno del servidor"})
		}

		message := "Asistencia registrada con hora de salida"
		if checkedIn {
			message = "Asistencia registrada con hora de entrada"
		}

		return c.JSON(fiber.Map{
			"message": message,
			"asistencia": fiber.Map{
				"id_asistencia":     record.ID,
				"id_matricula":      record.EnrollmentID,
				"fecha":             record.Date.Format("2006-01-02"),
				"hora_entrada":      formatClock(record.CheckIn),
				"hora_salida":       formatClock(record.CheckOut),
				"estado_asistencia": record.Status,
			},
		})
	}
}
