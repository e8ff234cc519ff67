package members

import (
	"database/sql"
	"log"
	"strconv"
	"time"

	"github.com/albertGil21/ProcesosBackend/app/database"
	"github.com/albertGil21/ProcesosBackend/app/models"
	"github.com/gofiber/fiber/v2"
)

// parseMemberID accepts id_usuario as either a JSON number or a numeric string.
func parseMemberID(value interface{}) (int, bool) {
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

// GetMembersHandler lists every member with their membership summary.
func GetMembersHandler(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		members, err := database.GetMembersWithMembership(db)
		if err != nil {
			log.Printf("Members fetch error: %v", err)
			return c.Status(500).JSON(fiber.Map{"message": "Error interno del servidor"})
		}

		if members == nil {
			members = []*database.MemberSummary{}
		}
		return c.JSON(members)
	}
}

// CreateMemberHandler registers a member together with their membership plan
// and enrollment. The three inserts run in one transaction.
func CreateMemberHandler(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		type CreateMemberRequest struct {
			DNI             string `json:"dni"`
			LastName        string `json:"apellido"`
			FirstName       string `json:"nombre"`
			Email           string `json:"email"`
			Phone           string `json:"telefono"`
			Address         string `json:"direccion"`
			RegisteredAt    string `json:"fecha_registro"`
			MembershipStart string `json:"inicio_membresia"`
			MembershipEnd   string `json:"fin_membresia"`
			MembershipType  string `json:"tipo_membresia"`
		}

		var req CreateMemberRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(400).JSON(fiber.Map{"message": "Cuerpo de la solicitud inválido"})
		}

		if req.DNI == "" || req.FirstName == "" || req.LastName == "" {
			return c.Status(400).JSON(fiber.Map{"message": "Los campos dni, nombre y apellido son obligatorios"})
		}

		planType, ok := models.MembershipTypeFromLabel(req.MembershipType)
		if !ok {
			return c.Status(400).JSON(fiber.Map{"message": "Tipo de membresía no válido"})
		}

		registeredAt, err := time.Parse("2006-01-02", req.RegisteredAt)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"message": "Formato de fecha inválido. Usa YYYY-MM-DD"})
		}
		start, err := time.Parse("2006-01-02", req.MembershipStart)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"message": "Formato de fecha inválido. Usa YYYY-MM-DD"})
		}
		end, err := time.Parse("2006-01-02", req.MembershipEnd)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"message": "Formato de fecha inválido. Usa YYYY-MM-DD"})
		}

		member := &models.Member{
			DNI:          req.DNI,
			LastName:     req.LastName,
			FirstName:    req.FirstName,
			Email:        req.Email,
			Phone:        req.Phone,
			Address:      req.Address,
			RegisteredAt: registeredAt,
		}

		if err := database.CreateMemberWithPlan(db, member, planType, start, end); err != nil {
			log.Printf("Member create error: %v", err)
			return c.Status(500).JSON(fiber.Map{"message": "Error interno del servidor"})
		}

		return c.Status(201).JSON(fiber.Map{
			"message":    "Usuario creado exitosamente",
			"id_usuario": member.ID,
		})
	}
}

// DeleteMemberHandler removes a member and every dependent row, reporting how
// many rows each dependent table lost.
func DeleteMemberHandler(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		type DeleteMemberRequest struct {
			MemberID interface{} `json:"id_usuario"`
		}

		var req DeleteMemberRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Cuerpo de la solicitud inválido"})
		}

		memberID, ok := parseMemberID(req.MemberID)
		if !ok {
			return c.Status(400).JSON(fiber.Map{"error": "El campo id_usuario es obligatorio."})
		}

		member, counts, err := database.DeleteMemberCascade(db, memberID)
		if err == database.ErrNotFound {
			return c.Status(404).JSON(fiber.Map{"error": "Usuario no encontrado."})
		}
		if err != nil {
			log.Printf("Member delete error: %v", err)
			return c.Status(500).JSON(fiber.Map{"message": "Error interno del servidor"})
		}

		return c.JSON(fiber.Map{
			"message":    "Usuario eliminado exitosamente.",
			"usuario":    member,
			"eliminados": counts,
		})
	}
}
