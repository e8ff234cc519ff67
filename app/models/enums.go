package models

// MembershipType is the integer plan code stored in membresias.id_tipo_membresia.
type MembershipType int

const (
	Monthly    MembershipType = 1 // mensual
	Quarterly  MembershipType = 2 // trimestral
	Semiannual MembershipType = 3 // semestral
	Annual     MembershipType = 4 // anual
)

var membershipTypeLabels = map[MembershipType]string{
	Monthly:    "mensual",
	Quarterly:  "trimestral",
	Semiannual: "semestral",
	Annual:     "anual",
}

var membershipTypeCodes = map[string]MembershipType{
	"mensual":    Monthly,
	"trimestral": Quarterly,
	"semestral":  Semiannual,
	"anual":      Annual,
}

// Label returns the wire label for a plan code, or "" for an unknown code.
func (t MembershipType) Label() string {
	return membershipTypeLabels[t]
}

// Valid reports whether t is one of the four known plan codes.
func (t MembershipType) Valid() bool {
	_, ok := membershipTypeLabels[t]
	return ok
}

// MembershipTypeFromLabel maps a wire label to its plan code. Unknown labels
// are rejected before any write happens.
func MembershipTypeFromLabel(label string) (MembershipType, bool) {
	t, ok := membershipTypeCodes[label]
	return t, ok
}

// EnrollmentStatus defines the possible status values for an enrollment.
type EnrollmentStatus string

const (
	EnrollmentActive   EnrollmentStatus = "activa"
	EnrollmentInactive EnrollmentStatus = "inactiva"
)

// AttendanceStatus defines the possible status values for an attendance record.
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "presente"
)
