package usecase

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jhoicas/Taller-api/internal/application/dto"
	"github.com/jhoicas/Taller-api/internal/domain"
	"github.com/jhoicas/Taller-api/internal/domain/entity"
	"github.com/jhoicas/Taller-api/internal/domain/repository"
)

// JobUseCase casos de uso para órdenes de trabajo. Valida las referencias a
// Car/Appointment contra sus repositorios y delega en el storage el upsert
// por cita y el scoping por email de cliente.
type JobUseCase struct {
	jobRepo  repository.JobRepository
	carRepo  repository.CarRepository
	apptRepo repository.AppointmentRepository
}

// NewJobUseCase construye el caso de uso.
func NewJobUseCase(jobRepo repository.JobRepository, carRepo repository.CarRepository, apptRepo repository.AppointmentRepository) *JobUseCase {
	return &JobUseCase{jobRepo: jobRepo, carRepo: carRepo, apptRepo: apptRepo}
}

// Create crea una orden de trabajo. Reglas:
//   - al menos una de car/appointment debe venir;
//   - las referencias deben resolver a documentos existentes;
//   - toda tarea necesita descripción no vacía;
//   - con appointment la creación es un upsert: repetir la petición para la
//     misma cita actualiza el Job existente en lugar de duplicarlo.
func (uc *JobUseCase) Create(ctx context.Context, in dto.CreateJobRequest) (*dto.JobResponse, error) {
	if in.CarID == "" && in.AppointmentID == "" {
		return nil, dto.NewValidationError("car", "se requiere car o appointment")
	}
	if err := validateTasks(in.Tasks); err != nil {
		return nil, err
	}
	status := in.Status
	if status == "" {
		status = entity.JobPending
	}
	if !entity.ValidJobStatus(status) {
		return nil, dto.NewValidationError("status", "estado desconocido")
	}

	job := &entity.Job{
		Mechanic:            in.Mechanic,
		Tasks:               toTasks(in.Tasks),
		Status:              status,
		EstimatedCompletion: in.EstimatedCompletion,
		CustomerPhone:       in.CustomerPhone,
	}

	if in.CarID != "" {
		carOID, err := uc.resolveCar(ctx, in.CarID)
		if err != nil {
			return nil, err
		}
		job.CarID = carOID
	}
	if in.AppointmentID != "" {
		apptOID, err := uc.resolveAppointment(ctx, in.AppointmentID)
		if err != nil {
			return nil, err
		}
		job.AppointmentID = apptOID

		// Upsert por cita: índice único sobre appointment_id.
		saved, err := uc.jobRepo.UpsertByAppointment(ctx, job)
		if err != nil {
			return nil, err
		}
		return toJobResponse(saved), nil
	}

	now := time.Now()
	job.CreatedAt = now
	job.UpdatedAt = now
	if err := uc.jobRepo.Create(ctx, job); err != nil {
		return nil, err
	}
	return toJobResponse(job), nil
}

// GetByID obtiene una orden de trabajo por ID.
func (uc *JobUseCase) GetByID(ctx context.Context, id string) (*dto.JobResponse, error) {
	job, err := uc.jobRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, domain.ErrNotFound
	}
	return toJobResponse(job), nil
}

// List lista órdenes de trabajo. Para el rol customer el listado se
// restringe en el storage a los jobs cuyo Car enlazado tiene el email de la
// identidad (join + filtro + paginación en el pipeline de agregación).
func (uc *JobUseCase) List(ctx context.Context, q dto.ListJobsQuery) ([]dto.JobResponse, int64, error) {
	if q.Status != "" && !entity.ValidJobStatus(q.Status) {
		return nil, 0, dto.NewValidationError("status", "estado desconocido")
	}
	var (
		jobs  []*entity.Job
		total int64
		err   error
	)
	if q.Role == entity.RoleCustomer {
		jobs, total, err = uc.jobRepo.ListByCustomerEmail(ctx, q.Email, q.Status, q.Page, q.Limit)
	} else {
		jobs, total, err = uc.jobRepo.List(ctx, q.Status, q.Page, q.Limit)
	}
	if err != nil {
		return nil, 0, err
	}
	items := make([]dto.JobResponse, 0, len(jobs))
	for _, j := range jobs {
		items = append(items, *toJobResponse(j))
	}
	return items, total, nil
}

// Update actualización parcial con las mismas validaciones de referencias y
// tareas que Create.
func (uc *JobUseCase) Update(ctx context.Context, id string, in dto.UpdateJobRequest) (*dto.JobResponse, error) {
	job, err := uc.jobRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, domain.ErrNotFound
	}
	if in.CarID != nil {
		if *in.CarID == "" {
			job.CarID = nil
		} else {
			carOID, err := uc.resolveCar(ctx, *in.CarID)
			if err != nil {
				return nil, err
			}
			job.CarID = carOID
		}
	}
	if in.AppointmentID != nil {
		if *in.AppointmentID == "" {
			job.AppointmentID = nil
		} else {
			apptOID, err := uc.resolveAppointment(ctx, *in.AppointmentID)
			if err != nil {
				return nil, err
			}
			existing, err := uc.jobRepo.GetByAppointmentID(ctx, apptOID.Hex())
			if err != nil {
				return nil, err
			}
			if existing != nil && existing.ID != job.ID {
				return nil, fmt.Errorf("%w: la cita ya tiene una orden de trabajo", domain.ErrConflict)
			}
			job.AppointmentID = apptOID
		}
	}
	if job.CarID == nil && job.AppointmentID == nil {
		return nil, dto.NewValidationError("car", "se requiere car o appointment")
	}
	if in.Tasks != nil {
		if err := validateTasks(*in.Tasks); err != nil {
			return nil, err
		}
		job.Tasks = toTasks(*in.Tasks)
	}
	if in.Mechanic != nil {
		job.Mechanic = *in.Mechanic
	}
	if in.Status != nil {
		if !entity.ValidJobStatus(*in.Status) {
			return nil, dto.NewValidationError("status", "estado desconocido")
		}
		job.Status = *in.Status
	}
	if in.EstimatedCompletion != nil {
		job.EstimatedCompletion = *in.EstimatedCompletion
	}
	if in.CustomerPhone != nil {
		job.CustomerPhone = *in.CustomerPhone
	}
	job.UpdatedAt = time.Now()
	if err := uc.jobRepo.Update(ctx, job); err != nil {
		return nil, err
	}
	return toJobResponse(job), nil
}

// Delete elimina la orden de trabajo.
func (uc *JobUseCase) Delete(ctx context.Context, id string) error {
	return uc.jobRepo.Delete(ctx, id)
}

func (uc *JobUseCase) resolveCar(ctx context.Context, id string) (*primitive.ObjectID, error) {
	car, err := uc.carRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if car == nil {
		return nil, dto.NewValidationError("car", "el vehículo referenciado no existe")
	}
	return &car.ID, nil
}

func (uc *JobUseCase) resolveAppointment(ctx context.Context, id string) (*primitive.ObjectID, error) {
	appt, err := uc.apptRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if appt == nil {
		return nil, dto.NewValidationError("appointment", "la cita referenciada no existe")
	}
	return &appt.ID, nil
}

func validateTasks(tasks []dto.JobTaskDTO) error {
	for i, t := range tasks {
		if t.Description == "" {
			return dto.NewValidationError(fmt.Sprintf("tasks[%d].description", i), "requerida")
		}
	}
	return nil
}

func toTasks(in []dto.JobTaskDTO) []entity.JobTask {
	out := make([]entity.JobTask, 0, len(in))
	for _, t := range in {
		out = append(out, entity.JobTask{Description: t.Description, Completed: t.Completed})
	}
	return out
}

func toJobResponse(j *entity.Job) *dto.JobResponse {
	if j == nil {
		return nil
	}
	resp := &dto.JobResponse{
		ID:                  j.ID.Hex(),
		Mechanic:            j.Mechanic,
		Status:              j.Status,
		EstimatedCompletion: j.EstimatedCompletion,
		CustomerPhone:       j.CustomerPhone,
		CreatedAt:           j.CreatedAt,
		UpdatedAt:           j.UpdatedAt,
	}
	if j.CarID != nil {
		resp.CarID = j.CarID.Hex()
	}
	if j.AppointmentID != nil {
		resp.AppointmentID = j.AppointmentID.Hex()
	}
	resp.Tasks = make([]dto.JobTaskDTO, 0, len(j.Tasks))
	for _, t := range j.Tasks {
		resp.Tasks = append(resp.Tasks, dto.JobTaskDTO{Description: t.Description, Completed: t.Completed})
	}
	return resp
}
