package staff

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(db *sql.DB) *fiber.App {
	app := fiber.New()
	SetupStaffRoutes(app, db)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body interface{}) (int, map[string]interface{}) {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded map[string]interface{}
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp.StatusCode, decoded
}

func TestCreateStaffRequiresAllFields(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	app := newTestApp(db)

	status, resp := postJSON(t, app, "/api/trabajadores", fiber.Map{
		"nombres":   "Carla",
		"apellidos": "Mendoza",
		"email":     "carla.mendoza@example.com",
		// cargo and tipo_sueldo missing
	})
	assert.Equal(t, 400, status)
	assert.Equal(t, "Todos los campos requeridos deben estar completos.", resp["error"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateStaffHappyPath(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	app := newTestApp(db)

	mock.ExpectQuery("INSERT INTO trabajadores").
		WithArgs(1, "Carla", "Mendoza", "carla.mendoza@example.com", "instructora", "mensual", 1800.0).
		WillReturnRows(sqlmock.NewRows([]string{"id_trabajador"}).AddRow(2))

	status, resp := postJSON(t, app, "/api/trabajadores", fiber.Map{
		"id_gimnasio": 1,
		"nombres":     "Carla",
		"apellidos":   "Mendoza",
		"email":       "carla.mendoza@example.com",
		"cargo":       "instructora",
		"tipo_sueldo": "mensual",
		"sueldo":      1800.0,
	})
	require.Equal(t, 201, status)
	assert.Equal(t, "Trabajador creado exitosamente.", resp["message"])

	worker := resp["trabajador"].(map[string]interface{})
	assert.Equal(t, float64(2), worker["id_trabajador"])
	assert.Equal(t, "instructora", worker["cargo"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateStaffAllowsNullGymAndSalary(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	app := newTestApp(db)

	mock.ExpectQuery("INSERT INTO trabajadores").
		WithArgs(nil, "Luis", "Paredes", "luis.paredes@example.com", "recepcionista", "por_hora", nil).
		WillReturnRows(sqlmock.NewRows([]string{"id_trabajador"}).AddRow(3))

	status, resp := postJSON(t, app, "/api/trabajadores", fiber.Map{
		"nombres":     "Luis",
		"apellidos":   "Paredes",
		"email":       "luis.paredes@example.com",
		"cargo":       "recepcionista",
		"tipo_sueldo": "por_hora",
	})
	require.Equal(t, 201, status)

	worker := resp["trabajador"].(map[string]interface{})
	assert.Nil(t, worker["id_gimnasio"])
	assert.Nil(t, worker["sueldo"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetStaffListsRoster(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	app := newTestApp(db)

	mock.ExpectQuery("SELECT nombres, apellidos, tipo_sueldo, cargo FROM trabajadores").
		WillReturnRows(sqlmock.NewRows([]string{"nombres", "apellidos", "tipo_sueldo", "cargo"}).
			AddRow("Carla", "Mendoza", "mensual", "instructora").
			AddRow("Luis", "Paredes", "por_hora", "recepcionista"))

	req := httptest.NewRequest(http.MethodGet, "/api/trabajadores", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, 200, resp.StatusCode)

	var roster []map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&roster))
	require.Len(t, roster, 2)
	assert.Equal(t, "Carla", roster[0]["nombres"])
	assert.Equal(t, "recepcionista", roster[1]["cargo"])
	assert.NoError(t, mock.ExpectationsWereMet())
}
