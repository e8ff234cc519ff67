package database

import (
	"database/sql"
	"time"

	"github.com/albertGil21/ProcesosBackend/app/models"
)

// MemberSummary is the membership overview row returned by /api/obtener_usuario.
type MemberSummary struct {
	DNI              string  `json:"dni"`
	FirstNames       string  `json:"nombres"`
	LastNames        string  `json:"apellidos"`
	EnrollmentStatus *string `json:"estado_membresia"`
	MembershipStart  *string `json:"inicio_membresia"`
	MembershipEnd    *string `json:"fin_membresia"`
	MembershipType   *string `json:"tipo_membresia"`
}

// DailyAttendanceEntry is one member's check-in/out state for a single date.
type DailyAttendanceEntry struct {
	MemberID     int     `json:"id_usuario"`
	FirstName    string  `json:"nombre"`
	LastName     string  `json:"apellido"`
	Email        string  `json:"email"`
	EnrollmentID *int    `json:"id_matricula"`
	CheckIn      *string `json:"hora_entrada"`
	CheckOut     *string `json:"hora_salida"`
}

// CascadeCounts reports how many dependent rows a member delete removed.
type CascadeCounts struct {
	Attendance         int64 `json:"asistencias"`
	FinancialMovements int64 `json:"movimientos_financieros"`
	Enrollments        int64 `json:"matriculas"`
	Memberships        int64 `json:"membresias"`
}

// CreateMemberWithPlan inserts the member, their membership and the linking
// enrollment in one transaction. A failure on any step rolls everything back;
// no orphaned member rows are possible. The generated member id is written
// back onto m.
func CreateMemberWithPlan(db *sql.DB, m *models.Member, planType models.MembershipType, start, end time.Time) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `INSERT INTO usuarios (dni, apellido, nombre, email, telefono, direccion, fecha_registro)
			  VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id_usuario`
	err = tx.QueryRow(query, m.DNI, m.LastName, m.FirstName, m.Email, m.Phone, m.Address, m.RegisteredAt).
		Scan(&m.ID)
	if err != nil {
		return err
	}

	var membershipID int
	query = `INSERT INTO membresias (id_usuario, id_tipo_membresia, id_gimnasio, fecha_inicio, fecha_vencimiento)
			 VALUES ($1, $2, $3, $4, $5) RETURNING id_membresia`
	err = tx.QueryRow(query, m.ID, planType, DefaultGymID, start, end).Scan(&membershipID)
	if err != nil {
		return err
	}

	query = `INSERT INTO matriculas (id_usuario, id_membresia, id_gimnasio, fecha_matricula, estado_matricula)
			 VALUES ($1, $2, $3, $4, $5)`
	_, err = tx.Exec(query, m.ID, membershipID, DefaultGymID, start, models.EnrollmentActive)
	if err != nil {
		return err
	}

	return tx.Commit()
}

// GetMembersWithMembership returns every member with the status and plan of
// their first enrollment, dates formatted YYYY-MM-DD. Members without an
// enrollment come back with null membership fields.
func GetMembersWithMembership(db *sql.DB) ([]*MemberSummary, error) {
	query := `
		SELECT DISTINCT ON (u.id_usuario)
			u.dni, u.nombre, u.apellido,
			m.estado_matricula,
			mb.fecha_inicio, mb.fecha_vencimiento, mb.id_tipo_membresia
		FROM usuarios u
		LEFT JOIN matriculas m ON m.id_usuario = u.id_usuario
		LEFT JOIN membresias mb ON mb.id_membresia = m.id_membresia
		ORDER BY u.id_usuario, m.id_matricula
	`
	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []*MemberSummary
	for rows.Next() {
		summary := &MemberSummary{}
		var status *string
		var startDate, endDate *time.Time
		var planCode *int

		if err := rows.Scan(&summary.DNI, &summary.FirstNames, &summary.LastNames,
			&status, &startDate, &endDate, &planCode); err != nil {
			return nil, err
		}

		summary.EnrollmentStatus = status
		if startDate != nil {
			formatted := startDate.Format("2006-01-02")
			summary.MembershipStart = &formatted
		}
		if endDate != nil {
			formatted := endDate.Format("2006-01-02")
			summary.MembershipEnd = &formatted
		}
		if planCode != nil {
			if label := models.MembershipType(*planCode).Label(); label != "" {
				summary.MembershipType = &label
			}
		}
		members = append(members, summary)
	}
	return members, rows.Err()
}

// GetDailyAttendance returns every member with their enrollment id and the
// check-in/out times recorded for the given date, formatted HH:MM:SS. Members
// without an attendance row that day come back with null times.
func GetDailyAttendance(db *sql.DB, date time.Time) ([]*DailyAttendanceEntry, error) {
	query := `
		SELECT DISTINCT ON (u.id_usuario)
			u.id_usuario, u.nombre, u.apellido, u.email,
			m.id_matricula, a.hora_entrada, a.hora_salida
		FROM usuarios u
		LEFT JOIN matriculas m ON m.id_usuario = u.id_usuario
		LEFT JOIN asistencias a ON a.id_matricula = m.id_matricula AND a.fecha = $1
		ORDER BY u.id_usuario, m.id_matricula
	`
	rows, err := db.Query(query, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*DailyAttendanceEntry
	for rows.Next() {
		entry := &DailyAttendanceEntry{}
		var checkIn, checkOut *time.Time

		if err := rows.Scan(&entry.MemberID, &entry.FirstName, &entry.LastName, &entry.Email,
			&entry.EnrollmentID, &checkIn, &checkOut); err != nil {
			return nil, err
		}

		if checkIn != nil {
			formatted := checkIn.UTC().Format("15:04:05")
			entry.CheckIn = &formatted
		}
		if checkOut != nil {
			formatted := checkOut.UTC().Format("15:04:05")
			entry.CheckOut = &formatted
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// DeleteMemberCascade removes a member and every dependent row in one
// transaction: asistencias, movimientos_financieros, matriculas, membresias,
// then the usuario itself. Returns ErrNotFound (and writes nothing) when the
// member does not exist.
func DeleteMemberCascade(db *sql.DB, memberID int) (*models.Member, *CascadeCounts, error) {
	tx, err := db.Begin()
	if err != nil {
		return nil, nil, err
	}
	defer tx.Rollback()

	member := &models.Member{}
	query := `SELECT id_usuario, dni, apellido, nombre, email, telefono, direccion, fecha_registro
			  FROM usuarios WHERE id_usuario = $1`
	err = tx.QueryRow(query, memberID).Scan(
		&member.ID, &member.DNI, &member.LastName, &member.FirstName,
		&member.Email, &member.Phone, &member.Address, &member.RegisteredAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil, ErrNotFound
	}
	if err != nil {
		return nil, nil, err
	}

	counts := &CascadeCounts{}

	res, err := tx.Exec(`DELETE FROM asistencias WHERE id_matricula IN
		(SELECT id_matricula FROM matriculas WHERE id_usuario = $1)`, memberID)
	if err != nil {
		return nil, nil, err
	}
	counts.Attendance, _ = res.RowsAffected()

	res, err = tx.Exec(`DELETE FROM movimientos_financieros WHERE id_usuario = $1`, memberID)
	if err != nil {
		return nil, nil, err
	}
	counts.FinancialMovements, _ = res.RowsAffected()

	res, err = tx.Exec(`DELETE FROM matriculas WHERE id_usuario = $1`, memberID)
	if err != nil {
		return nil, nil, err
	}
	counts.Enrollments, _ = res.RowsAffected()

	res, err = tx.Exec(`DELETE FROM membresias WHERE id_usuario = $1`, memberID)
	if err != nil {
		return nil, nil, err
	}
	counts.Memberships, _ = res.RowsAffected()

	if _, err = tx.Exec(`DELETE FROM usuarios WHERE id_usuario = $1`, memberID); err != nil {
		return nil, nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, nil, err
	}
	return member, counts, nil
}
