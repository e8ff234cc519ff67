package models

import "time"

// Attendance is one day's check-in/check-out record for an enrollment
// (asistencia). At most one row exists per (enrollment, date); a row starts
// with only the check-in set, and transitions exactly once to having both.
type Attendance struct {
	ID           int              `json:"id_asistencia"`
	EnrollmentID int              `json:"id_matricula"`
	Date         time.Time        `json:"fecha"`
	CheckIn      *time.Time       `json:"hora_entrada"`
	CheckOut     *time.Time       `json:"hora_salida"`
	Status       AttendanceStatus `json:"estado_asistencia"`
}

// Complete reports whether both check-in and check-out are set. A complete
// record admits no further mutation.
func (a *Attendance) Complete() bool {
	return a.CheckIn != nil && a.CheckOut != nil
}
