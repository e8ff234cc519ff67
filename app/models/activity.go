package models

import "time"

// Activity represents a named class or program offered by a gym (actividad).
type Activity struct {
	ID          int         `json:"id_actividad"`
	GymID       int         `json:"id_gimnasio"`
	Name        string      `json:"nombre_actividad"`
	Description string      `json:"descripcion"`
	Schedules   []*Schedule `json:"horarios,omitempty"`
}

// Schedule is a dated time slot for an activity, optionally assigned to a
// staff member (horario).
type Schedule struct {
	ID         int       `json:"id_horario"`
	ActivityID int       `json:"id_actividad"`
	GymID      int       `json:"id_gimnasio"`
	Date       time.Time `json:"fecha"`
	StartTime  time.Time `json:"hora_inicio"`
	EndTime    time.Time `json:"hora_fin"`
	StaffID    *int      `json:"id_trabajador"`
}
