package database

import (
	"database/sql"
	"time"

	"github.com/albertGil21/ProcesosBackend/app/models"
)

// ActivitySession is one flattened schedule row for /api/actividades: the
// activity name plus a single dated slot and, when assigned, the instructor.
type ActivitySession struct {
	ActivityID int     `json:"id_actividad"`
	Date       string  `json:"fecha"`
	StartTime  string  `json:"hora_inicio"`
	EndTime    string  `json:"hora_fin"`
	Activity   string  `json:"actividad"`
	Instructor *string `json:"profesor"`
}

// CreateActivityWithSchedules inserts the activity and all of its schedules
// in one transaction. Generated ids are written back onto the models.
func CreateActivityWithSchedules(db *sql.DB, activity *models.Activity, schedules []*models.Schedule) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `INSERT INTO actividades (id_gimnasio, nombre_actividad, descripcion)
			  VALUES ($1, $2, $3) RETURNING id_actividad`
	if err := tx.QueryRow(query, activity.GymID, activity.Name, activity.Description).Scan(&activity.ID); err != nil {
		return err
	}

	query = `INSERT INTO horarios (id_actividad, id_gimnasio, fecha, hora_inicio, hora_fin, id_trabajador)
			 VALUES ($1, $2, $3, $4, $5, $6) RETURNING id_horario`
	for _, schedule := range schedules {
		schedule.ActivityID = activity.ID
		schedule.GymID = activity.GymID
		err := tx.QueryRow(query, schedule.ActivityID, schedule.GymID,
			schedule.Date, schedule.StartTime, schedule.EndTime, schedule.StaffID).Scan(&schedule.ID)
		if err != nil {
			return err
		}
	}
	activity.Schedules = schedules

	return tx.Commit()
}

// GetActivitySessions returns every schedule joined with its activity and the
// assigned instructor, one row per slot, dates YYYY-MM-DD and times HH:MM.
func GetActivitySessions(db *sql.DB) ([]*ActivitySession, error) {
	query := `
		SELECT a.id_actividad, h.fecha, h.hora_inicio, h.hora_fin,
			a.nombre_actividad, t.nombres, t.apellidos
		FROM actividades a
		JOIN horarios h ON h.id_actividad = a.id_actividad
		LEFT JOIN trabajadores t ON t.id_trabajador = h.id_trabajador
		ORDER BY h.fecha, h.hora_inicio
	`
	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []*ActivitySession
	for rows.Next() {
		session := &ActivitySession{}
		var date, start, end time.Time
		var firstNames, lastNames *string

		if err := rows.Scan(&session.ActivityID, &date, &start, &end,
			&session.Activity, &firstNames, &lastNames); err != nil {
			return nil, err
		}

		session.Date = date.Format("2006-01-02")
		session.StartTime = start.UTC().Format("15:04")
		session.EndTime = end.UTC().Format("15:04")
		if firstNames != nil && lastNames != nil {
			instructor := *firstNames + " " + *lastNames
			session.Instructor = &instructor
		}
		sessions = append(sessions, session)
	}
	return sessions, rows.Err()
}

// DeleteActivity removes an activity and its schedules in one transaction.
// Returns ErrNotFound (and writes nothing) when the activity does not exist.
func DeleteActivity(db *sql.DB, activityID int) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var id int
	err = tx.QueryRow(`SELECT id_actividad FROM actividades WHERE id_actividad = $1`, activityID).Scan(&id)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	if _, err := tx.Exec(`DELETE FROM horarios WHERE id_actividad = $1`, activityID); err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM actividades WHERE id_actividad = $1`, activityID); err != nil {
		return err
	}

	return tx.Commit()
}
