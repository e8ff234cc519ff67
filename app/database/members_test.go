package database

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albertGil21/ProcesosBackend/app/models"
)

func testMember() *models.Member {
	return &models.Member{
		DNI:          "45879123",
		LastName:     "Quispe",
		FirstName:    "Rosa",
		Email:        "rosa.quispe@example.com",
		Phone:        "987654321",
		Address:      "Av. Arequipa 1200",
		RegisteredAt: time.Date(2024, 4, 15, 0, 0, 0, 0, time.UTC),
	}
}

func TestCreateMemberWithPlanCommitsAllThreeInserts(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	member := testMember()
	start := time.Date(2024, 4, 15, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO usuarios").
		WithArgs(member.DNI, member.LastName, member.FirstName, member.Email,
			member.Phone, member.Address, member.RegisteredAt).
		WillReturnRows(sqlmock.NewRows([]string{"id_usuario"}).AddRow(12))
	mock.ExpectQuery("INSERT INTO membresias").
		WithArgs(12, models.Monthly, DefaultGymID, start, end).
		WillReturnRows(sqlmock.NewRows([]string{"id_membresia"}).AddRow(3))
	mock.ExpectExec("INSERT INTO matriculas").
		WithArgs(12, 3, DefaultGymID, start, "activa").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err = CreateMemberWithPlan(db, member, models.Monthly, start, end)
	require.NoError(t, err)
	assert.Equal(t, 12, member.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateMemberWithPlanRollsBackOnPartialFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	member := testMember()
	start := time.Date(2024, 4, 15, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC)
	boom := errors.New("membresias insert failed")

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO usuarios").
		WithArgs(member.DNI, member.LastName, member.FirstName, member.Email,
			member.Phone, member.Address, member.RegisteredAt).
		WillReturnRows(sqlmock.NewRows([]string{"id_usuario"}).AddRow(12))
	mock.ExpectQuery("INSERT INTO membresias").
		WillReturnError(boom)
	mock.ExpectRollback()

	err = CreateMemberWithPlan(db, member, models.Monthly, start, end)
	assert.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet(), "the member insert must not survive the failure")
}

func TestDeleteMemberCascadeRemovesDependentsInOrder(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	registered := time.Date(2024, 4, 15, 0, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id_usuario, dni, apellido, nombre, email, telefono, direccion, fecha_registro").
		WithArgs(12).
		WillReturnRows(sqlmock.NewRows([]string{
			"id_usuario", "dni", "apellido", "nombre", "email", "telefono", "direccion", "fecha_registro",
		}).AddRow(12, "45879123", "Quispe", "Rosa", "rosa.quispe@example.com", "987654321", "Av. Arequipa 1200", registered))
	mock.ExpectExec("DELETE FROM asistencias").WithArgs(12).WillReturnResult(sqlmock.NewResult(0, 9))
	mock.ExpectExec("DELETE FROM movimientos_financieros").WithArgs(12).WillReturnResult(sqlmock.NewResult(0, 4))
	mock.ExpectExec("DELETE FROM matriculas").WithArgs(12).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM membresias").WithArgs(12).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM usuarios").WithArgs(12).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	member, counts, err := DeleteMemberCascade(db, 12)
	require.NoError(t, err)
	assert.Equal(t, "Rosa", member.FirstName)
	assert.Equal(t, int64(9), counts.Attendance)
	assert.Equal(t, int64(4), counts.FinancialMovements)
	assert.Equal(t, int64(1), counts.Enrollments)
	assert.Equal(t, int64(1), counts.Memberships)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteMemberCascadeUnknownMemberWritesNothing(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id_usuario, dni, apellido, nombre, email, telefono, direccion, fecha_registro").
		WithArgs(99).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	member, counts, err := DeleteMemberCascade(db, 99)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, member)
	assert.Nil(t, counts)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetMembersWithMembershipMapsPlanLabels(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	start := time.Date(2024, 4, 15, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 4, 15, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT DISTINCT ON").
		WillReturnRows(sqlmock.NewRows([]string{
			"dni", "nombre", "apellido", "estado_matricula", "fecha_inicio", "fecha_vencimiento", "id_tipo_membresia",
		}).
			AddRow("45879123", "Rosa", "Quispe", "activa", start, end, 4).
			AddRow("70112233", "Mario", "Flores", nil, nil, nil, nil))

	members, err := GetMembersWithMembership(db)
	require.NoError(t, err)
	require.Len(t, members, 2)

	require.NotNil(t, members[0].MembershipType)
	assert.Equal(t, "anual", *members[0].MembershipType)
	require.NotNil(t, members[0].MembershipStart)
	assert.Equal(t, "2024-04-15", *members[0].MembershipStart)
	require.NotNil(t, members[0].MembershipEnd)
	assert.Equal(t, "2025-04-15", *members[0].MembershipEnd)

	assert.Nil(t, members[1].EnrollmentStatus)
	assert.Nil(t, members[1].MembershipType)
	assert.Nil(t, members[1].MembershipStart)
}
