package database

import (
	"database/sql"

	"github.com/albertGil21/ProcesosBackend/app/models"
)

// StaffSummary is the reduced staff row returned by GET /api/trabajadores.
type StaffSummary struct {
	FirstNames string `json:"nombres"`
	LastNames  string `json:"apellidos"`
	PayType    string `json:"tipo_sueldo"`
	Role       string `json:"cargo"`
}

// CreateStaff inserts a staff member and writes the generated id back onto s.
func CreateStaff(db *sql.DB, s *models.Staff) error {
	query := `INSERT INTO trabajadores (id_gimnasio, nombres, apellidos, email, cargo, tipo_sueldo, sueldo)
			  VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id_trabajador`
	return db.QueryRow(query, s.GymID, s.FirstNames, s.LastNames, s.Email, s.Role, s.PayType, s.Salary).
		Scan(&s.ID)
}

// GetAllStaff lists every staff member with the fields the roster exposes.
func GetAllStaff(db *sql.DB) ([]*StaffSummary, error) {
	query := `SELECT nombres, apellidos, tipo_sueldo, cargo FROM trabajadores ORDER BY id_trabajador`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var staff []*StaffSummary
	for rows.Next() {
		summary := &StaffSummary{}
		if err := rows.Scan(&summary.FirstNames, &summary.LastNames, &summary.PayType, &summary.Role); err != nil {
			return nil, err
		}
		staff = append(staff, summary)
	}
	return staff, rows.Err()
}
