package models

// Staff represents a gym employee (trabajador). GymID and Salary are optional
// in the source schema, so they stay nullable here.
type Staff struct {
	ID         int      `json:"id_trabajador"`
	GymID      *int     `json:"id_gimnasio"`
	FirstNames string   `json:"nombres"`
	LastNames  string   `json:"apellidos"`
	Email      string   `json:"email"`
	Role       string   `json:"cargo"`
	PayType    string   `json:"tipo_sueldo"`
	Salary     *float64 `json:"sueldo"`
}
