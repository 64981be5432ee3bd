package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Taller-api/internal/application/dto"
	"github.com/jhoicas/Taller-api/internal/application/usecase"
	"github.com/jhoicas/Taller-api/internal/domain"
	"github.com/jhoicas/Taller-api/internal/domain/entity"
)

type jobFixture struct {
	uc       *usecase.JobUseCase
	jobRepo  *fakeJobRepo
	carRepo  *fakeCarRepo
	apptRepo *fakeAppointmentRepo
}

func newJobFixture() *jobFixture {
	carRepo := &fakeCarRepo{}
	apptRepo := &fakeAppointmentRepo{}
	jobRepo := &fakeJobRepo{cars: carRepo}
	return &jobFixture{
		uc:       usecase.NewJobUseCase(jobRepo, carRepo, apptRepo),
		jobRepo:  jobRepo,
		carRepo:  carRepo,
		apptRepo: apptRepo,
	}
}

func (f *jobFixture) seedCar(t *testing.T, email string) string {
	t.Helper()
	car := &entity.Car{
		LicensePlate: "ABC123", CustomerName: "Cliente", CustomerEmail: email,
		Make: "Toyota", Model: "Corolla", Year: 2018,
	}
	require.NoError(t, f.carRepo.Create(context.Background(), car))
	return car.ID.Hex()
}

func (f *jobFixture) seedAppointment(t *testing.T) string {
	t.Helper()
	appt := &entity.Appointment{
		CustomerName: "Cliente", Vehicle: "Toyota Corolla 2018",
		ServiceType: "cambio de aceite", PreferredDate: time.Now().Add(48 * time.Hour),
		Status: entity.AppointmentScheduled,
	}
	require.NoError(t, f.apptRepo.Create(context.Background(), appt))
	return appt.ID.Hex()
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestJobCreate_SinCarNiAppointment_ErrorDeValidacion(t *testing.T) {
	f := newJobFixture()

	_, err := f.uc.Create(context.Background(), dto.CreateJobRequest{Mechanic: "Luis"})
	var verr *dto.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "car", verr.Fields[0].Field)
	assert.Equal(t, "se requiere car o appointment", verr.Fields[0].Message)
}

func TestJobCreate_CarInexistente_ErrorDeValidacion(t *testing.T) {
	f := newJobFixture()

	_, err := f.uc.Create(context.Background(), dto.CreateJobRequest{
		CarID: "64f000000000000000000099", Mechanic: "Luis",
	})
	var verr *dto.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "car", verr.Fields[0].Field)
	assert.Equal(t, "el vehículo referenciado no existe", verr.Fields[0].Message)
}

func TestJobCreate_TareaSinDescripcion_ErrorDeValidacion(t *testing.T) {
	f := newJobFixture()
	carID := f.seedCar(t, "cliente@taller.test")

	_, err := f.uc.Create(context.Background(), dto.CreateJobRequest{
		CarID: carID,
		Tasks: []dto.JobTaskDTO{{Description: "revisar frenos"}, {Description: ""}},
	})
	var verr *dto.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "tasks[1].description", verr.Fields[0].Field)
}

func TestJobCreate_SoloCar_EstadoPorDefectoPending(t *testing.T) {
	f := newJobFixture()
	carID := f.seedCar(t, "cliente@taller.test")

	resp, err := f.uc.Create(context.Background(), dto.CreateJobRequest{
		CarID:    carID,
		Mechanic: "Luis",
		Tasks:    []dto.JobTaskDTO{{Description: "alineación"}},
	})
	require.NoError(t, err)
	assert.Equal(t, entity.JobPending, resp.Status)
	assert.Equal(t, carID, resp.CarID)
	assert.Empty(t, resp.AppointmentID)
}

// Repetir la creación para la misma cita debe actualizar el Job existente,
// nunca duplicarlo.
func TestJobCreate_PorCita_EsUpsertIdempotente(t *testing.T) {
	f := newJobFixture()
	apptID := f.seedAppointment(t)

	first, err := f.uc.Create(context.Background(), dto.CreateJobRequest{
		AppointmentID: apptID,
		Mechanic:      "Luis",
		Status:        entity.JobPending,
	})
	require.NoError(t, err)

	second, err := f.uc.Create(context.Background(), dto.CreateJobRequest{
		AppointmentID: apptID,
		Mechanic:      "Marta",
		Status:        entity.JobInProgress,
	})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID, "la segunda creación debe reutilizar el mismo Job")
	assert.Equal(t, "Marta", second.Mechanic)
	assert.Equal(t, entity.JobInProgress, second.Status)
	assert.Len(t, f.jobRepo.jobs, 1, "no debe haber un segundo documento para la cita")
}

func TestJobCreate_EstadoDesconocido_ErrorDeValidacion(t *testing.T) {
	f := newJobFixture()
	carID := f.seedCar(t, "cliente@taller.test")

	_, err := f.uc.Create(context.Background(), dto.CreateJobRequest{CarID: carID, Status: "paused"})
	var verr *dto.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "status", verr.Fields[0].Field)
}

// ──────────────────────────────────────────────────────────────────────────────
// List — scoping por rol
// ──────────────────────────────────────────────────────────────────────────────

func TestJobList_RolCustomer_SoloSusVehiculos(t *testing.T) {
	f := newJobFixture()
	mineID := f.seedCar(t, "ana@taller.test")
	otherID := f.seedCar(t, "otro@taller.test")

	_, err := f.uc.Create(context.Background(), dto.CreateJobRequest{CarID: mineID, Mechanic: "Luis"})
	require.NoError(t, err)
	_, err = f.uc.Create(context.Background(), dto.CreateJobRequest{CarID: otherID, Mechanic: "Luis"})
	require.NoError(t, err)

	jobs, total, err := f.uc.List(context.Background(), dto.ListJobsQuery{
		Page: 1, Limit: 10, Role: entity.RoleCustomer, Email: "ana@taller.test",
	})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, jobs, 1)
	assert.Equal(t, mineID, jobs[0].CarID)
}

func TestJobList_RolStaff_VeTodo(t *testing.T) {
	f := newJobFixture()
	carA := f.seedCar(t, "ana@taller.test")
	carB := f.seedCar(t, "otro@taller.test")
	_, err := f.uc.Create(context.Background(), dto.CreateJobRequest{CarID: carA})
	require.NoError(t, err)
	_, err = f.uc.Create(context.Background(), dto.CreateJobRequest{CarID: carB})
	require.NoError(t, err)

	jobs, total, err := f.uc.List(context.Background(), dto.ListJobsQuery{
		Page: 1, Limit: 10, Role: entity.RoleReceptionist,
	})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, jobs, 2)
}

func TestJobList_StatusDesconocido_ErrorDeValidacion(t *testing.T) {
	f := newJobFixture()

	_, _, err := f.uc.List(context.Background(), dto.ListJobsQuery{Page: 1, Limit: 10, Status: "paused"})
	var verr *dto.ValidationError
	assert.ErrorAs(t, err, &verr)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update
// ──────────────────────────────────────────────────────────────────────────────

// Reasignar un Job a una cita que ya tiene otra orden debe fallar con conflicto.
func TestJobUpdate_CitaYaOcupada_RetornaConflicto(t *testing.T) {
	f := newJobFixture()
	apptID := f.seedAppointment(t)
	carID := f.seedCar(t, "cliente@taller.test")

	_, err := f.uc.Create(context.Background(), dto.CreateJobRequest{AppointmentID: apptID})
	require.NoError(t, err)
	other, err := f.uc.Create(context.Background(), dto.CreateJobRequest{CarID: carID})
	require.NoError(t, err)

	_, err = f.uc.Update(context.Background(), other.ID, dto.UpdateJobRequest{AppointmentID: &apptID})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

// Quitar ambas referencias dejaría el Job huérfano: debe rechazarse.
func TestJobUpdate_QuitarAmbasReferencias_ErrorDeValidacion(t *testing.T) {
	f := newJobFixture()
	carID := f.seedCar(t, "cliente@taller.test")
	job, err := f.uc.Create(context.Background(), dto.CreateJobRequest{CarID: carID})
	require.NoError(t, err)

	empty := ""
	_, err = f.uc.Update(context.Background(), job.ID, dto.UpdateJobRequest{CarID: &empty})
	var verr *dto.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "car", verr.Fields[0].Field)
}

func TestJobUpdate_ParcheParcial(t *testing.T) {
	f := newJobFixture()
	carID := f.seedCar(t, "cliente@taller.test")
	job, err := f.uc.Create(context.Background(), dto.CreateJobRequest{
		CarID:    carID,
		Mechanic: "Luis",
		Tasks:    []dto.JobTaskDTO{{Description: "cambio de aceite"}},
	})
	require.NoError(t, err)

	done := entity.JobCompleted
	resp, err := f.uc.Update(context.Background(), job.ID, dto.UpdateJobRequest{Status: &done})
	require.NoError(t, err)
	assert.Equal(t, entity.JobCompleted, resp.Status)
	assert.Equal(t, "Luis", resp.Mechanic, "el mecánico no provisto debe conservarse")
	assert.Len(t, resp.Tasks, 1)
}

func TestJobUpdate_Inexistente_RetornaErrNotFound(t *testing.T) {
	f := newJobFixture()

	_, err := f.uc.Update(context.Background(), "64f000000000000000000099", dto.UpdateJobRequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
