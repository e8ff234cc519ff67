package database

import (
	"database/sql"
	"log"
)

// DefaultGymID is the single gym every membership and enrollment belongs to.
// Multi-gym partitioning is out of scope; the row is seeded by RunMigrations.
const DefaultGymID = 1

// RunMigrations creates the schema if it does not exist and seeds the default
// gym. Every statement is idempotent so start-up can run this unconditionally.
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	statements := []string{
		`CREATE TABLE IF NOT EXISTS gimnasios (
			id_gimnasio SERIAL PRIMARY KEY,
			nombre VARCHAR(100) NOT NULL,
			direccion VARCHAR(255)
		)`,
		`CREATE TABLE IF NOT EXISTS usuarios (
			id_usuario SERIAL PRIMARY KEY,
			dni VARCHAR(20) NOT NULL,
			apellido VARCHAR(100) NOT NULL,
			nombre VARCHAR(100) NOT NULL,
			email VARCHAR(255),
			telefono VARCHAR(30),
			direccion VARCHAR(255),
			fecha_registro DATE NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS membresias (
			id_membresia SERIAL PRIMARY KEY,
			id_usuario INTEGER NOT NULL REFERENCES usuarios(id_usuario),
			id_tipo_membresia INTEGER NOT NULL CHECK (id_tipo_membresia BETWEEN 1 AND 4),
			id_gimnasio INTEGER NOT NULL REFERENCES gimnasios(id_gimnasio),
			fecha_inicio DATE NOT NULL,
			fecha_vencimiento DATE NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS matriculas (
			id_matricula SERIAL PRIMARY KEY,
			id_usuario INTEGER NOT NULL REFERENCES usuarios(id_usuario),
			id_membresia INTEGER NOT NULL REFERENCES membresias(id_membresia),
			id_gimnasio INTEGER NOT NULL REFERENCES gimnasios(id_gimnasio),
			fecha_matricula DATE NOT NULL,
			estado_matricula VARCHAR(20) NOT NULL DEFAULT 'activa'
		)`,
		`CREATE TABLE IF NOT EXISTS asistencias (
			id_asistencia SERIAL PRIMARY KEY,
			id_matricula INTEGER NOT NULL REFERENCES matriculas(id_matricula),
			fecha DATE NOT NULL,
			hora_entrada TIMESTAMPTZ,
			hora_salida TIMESTAMPTZ,
			estado_asistencia VARCHAR(20) NOT NULL DEFAULT 'presente',
			UNIQUE (id_matricula, fecha)
		)`,
		`CREATE TABLE IF NOT EXISTS trabajadores (
			id_trabajador SERIAL PRIMARY KEY,
			id_gimnasio INTEGER REFERENCES gimnasios(id_gimnasio),
			nombres VARCHAR(100) NOT NULL,
			apellidos VARCHAR(100) NOT NULL,
			email VARCHAR(255) NOT NULL,
			cargo VARCHAR(100) NOT NULL,
			tipo_sueldo VARCHAR(50) NOT NULL,
			sueldo NUMERIC(10,2)
		)`,
		`CREATE TABLE IF NOT EXISTS actividades (
			id_actividad SERIAL PRIMARY KEY,
			id_gimnasio INTEGER NOT NULL REFERENCES gimnasios(id_gimnasio),
			nombre_actividad VARCHAR(100) NOT NULL,
			descripcion TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS horarios (
			id_horario SERIAL PRIMARY KEY,
			id_actividad INTEGER NOT NULL REFERENCES actividades(id_actividad),
			id_gimnasio INTEGER NOT NULL REFERENCES gimnasios(id_gimnasio),
			fecha DATE NOT NULL,
			hora_inicio TIMESTAMPTZ NOT NULL,
			hora_fin TIMESTAMPTZ NOT NULL,
			id_trabajador INTEGER REFERENCES trabajadores(id_trabajador)
		)`,
		`CREATE TABLE IF NOT EXISTS movimientos_financieros (
			id_movimiento SERIAL PRIMARY KEY,
			id_usuario INTEGER NOT NULL REFERENCES usuarios(id_usuario),
			concepto VARCHAR(255) NOT NULL,
			monto NUMERIC(10,2) NOT NULL,
			fecha DATE NOT NULL
		)`,
		`INSERT INTO gimnasios (id_gimnasio, nombre, direccion)
			VALUES (1, 'Gimnasio Central', NULL)
			ON CONFLICT (id_gimnasio) DO NOTHING`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			log.Printf("Migration failed: %v", err)
			return err
		}
	}

	log.Println("Database migrations completed successfully")
	return nil
}
