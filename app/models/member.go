package models

import "time"

// Member represents a person registered with the gym (usuario).
type Member struct {
	ID           int       `json:"id_usuario"`
	DNI          string    `json:"dni"`
	LastName     string    `json:"apellido"`
	FirstName    string    `json:"nombre"`
	Email        string    `json:"email"`
	Phone        string    `json:"telefono"`
	Address      string    `json:"direccion"`
	RegisteredAt time.Time `json:"fecha_registro"`
}

// Membership is a subscription plan instance for a member (membresia).
type Membership struct {
	ID        int            `json:"id_membresia"`
	MemberID  int            `json:"id_usuario"`
	Type      MembershipType `json:"id_tipo_membresia"`
	GymID     int            `json:"id_gimnasio"`
	StartDate time.Time      `json:"fecha_inicio"`
	ExpiresAt time.Time      `json:"fecha_vencimiento"`
}

// Enrollment links a member to a membership and a gym (matricula).
type Enrollment struct {
	ID           int              `json:"id_matricula"`
	MemberID     int              `json:"id_usuario"`
	MembershipID int              `json:"id_membresia"`
	GymID        int              `json:"id_gimnasio"`
	EnrolledAt   time.Time        `json:"fecha_matricula"`
	Status       EnrollmentStatus `json:"estado_matricula"`
}
