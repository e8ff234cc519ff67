package database

import (
	"database/sql"
	"time"

	"github.com/albertGil21/ProcesosBackend/app/models"
)

// CombineDateTime applies a 24-hour "HH:MM" wall-clock time onto the UTC
// midnight of date. There is no timezone conversion; the timestamp is stored
// exactly as composed.
func CombineDateTime(date time.Time, hhmm string) (time.Time, error) {
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), 0, 0, time.UTC), nil
}

// GetAttendanceByEnrollmentAndDate returns the attendance row for one
// enrollment on one calendar date. sql.ErrNoRows propagates when none exists.
func GetAttendanceByEnrollmentAndDate(db *sql.DB, enrollmentID int, date time.Time) (*models.Attendance, error) {
	record := &models.Attendance{}
	query := `SELECT id_asistencia, id_matricula, fecha, hora_entrada, hora_salida, estado_asistencia
			  FROM asistencias WHERE id_matricula = $1 AND fecha = $2`

	err := db.QueryRow(query, enrollmentID, date).Scan(
		&record.ID, &record.EnrollmentID, &record.Date,
		&record.CheckIn, &record.CheckOut, &record.Status,
	)
	if err != nil {
		return nil, err
	}
	return record, nil
}

// MarkAttendance performs the single allowed transition for the
// (enrollmentID, date) key:
//
//	no row              -> insert with hora_entrada = moment
//	row without salida  -> update hora_salida = moment
//	row with salida     -> ErrAttendanceComplete, nothing written
//
// The returned bool is true when this call created the row (check-in) and
// false when it closed it (check-out). One read and at most one write hit the
// store; the UNIQUE (id_matricula, fecha) constraint is the only guard against
// concurrent duplicate check-ins.
func MarkAttendance(db *sql.DB, enrollmentID int, date time.Time, moment time.Time) (*models.Attendance, bool, error) {
	existing, err := GetAttendanceByEnrollmentAndDate(db, enrollmentID, date)
	if err == sql.ErrNoRows {
		record := &models.Attendance{
			EnrollmentID: enrollmentID,
			Date:         date,
			CheckIn:      &moment,
			Status:       models.AttendancePresent,
		}
		query := `INSERT INTO asistencias (id_matricula, fecha, hora_entrada, estado_asistencia)
				  VALUES ($1, $2, $3, $4) RETURNING id_asistencia`
		if err := db.QueryRow(query, enrollmentID, date, moment, record.Status).Scan(&record.ID); err != nil {
			return nil, false, err
		}
		return record, true, nil
	}
	if err != nil {
		return nil, false, err
	}

	if existing.CheckOut != nil {
		return nil, false, ErrAttendanceComplete
	}

	query := `UPDATE asistencias SET hora_salida = $1, estado_asistencia = $2 WHERE id_asistencia = $3`
	if _, err := db.Exec(query, moment, models.AttendancePresent, existing.ID); err != nil {
		return nil, false, err
	}
	existing.CheckOut = &moment
	existing.Status = models.AttendancePresent
	return existing, false, nil
}
