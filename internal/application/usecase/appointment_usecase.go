package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/Taller-api/internal/application/dto"
	"github.com/jhoicas/Taller-api/internal/domain"
	"github.com/jhoicas/Taller-api/internal/domain/entity"
	"github.com/jhoicas/Taller-api/internal/domain/repository"
)

// AppointmentUseCase casos de uso CRUD para citas.
type AppointmentUseCase struct {
	repo repository.AppointmentRepository
}

// NewAppointmentUseCase construye el caso de uso.
func NewAppointmentUseCase(repo repository.AppointmentRepository) *AppointmentUseCase {
	return &AppointmentUseCase{repo: repo}
}

// Create agenda una cita en estado pending.
func (uc *AppointmentUseCase) Create(ctx context.Context, in dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	var errs []dto.FieldError
	if in.CustomerName == "" {
		errs = append(errs, dto.FieldError{Field: "customer_name", Message: "requerido"})
	}
	if in.Vehicle == "" {
		errs = append(errs, dto.FieldError{Field: "vehicle", Message: "requerido"})
	}
	if in.ServiceType == "" {
		errs = append(errs, dto.FieldError{Field: "service_type", Message: "requerido"})
	}
	if in.PreferredDate.IsZero() {
		errs = append(errs, dto.FieldError{Field: "preferred_date", Message: "requerida"})
	}
	if errs != nil {
		return nil, &dto.ValidationError{Fields: errs}
	}
	now := time.Now()
	appt := &entity.Appointment{
		CustomerName:  in.CustomerName,
		CustomerEmail: in.CustomerEmail,
		Vehicle:       in.Vehicle,
		ServiceType:   in.ServiceType,
		PreferredDate: in.PreferredDate,
		Status:        entity.AppointmentPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(ctx, appt); err != nil {
		return nil, err
	}
	return toAppointmentResponse(appt), nil
}

// GetByID obtiene una cita por ID.
func (uc *AppointmentUseCase) GetByID(ctx context.Context, id string) (*dto.AppointmentResponse, error) {
	appt, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if appt == nil {
		return nil, domain.ErrNotFound
	}
	return toAppointmentResponse(appt), nil
}

// List lista citas con filtro opcional por estado.
func (uc *AppointmentUseCase) List(ctx context.Context, status string, page, limit int) ([]dto.AppointmentResponse, int64, error) {
	if status != "" && !entity.ValidAppointmentStatus(status) {
		return nil, 0, dto.NewValidationError("status", "estado desconocido")
	}
	appts, total, err := uc.repo.List(ctx, status, page, limit)
	if err != nil {
		return nil, 0, err
	}
	items := make([]dto.AppointmentResponse, 0, len(appts))
	for _, a := range appts {
		items = append(items, *toAppointmentResponse(a))
	}
	return items, total, nil
}

// Update actualización parcial: solo cambian los campos provistos.
func (uc *AppointmentUseCase) Update(ctx context.Context, id string, in dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	appt, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if appt == nil {
		return nil, domain.ErrNotFound
	}
	if in.CustomerName != nil {
		appt.CustomerName = *in.CustomerName
	}
	if in.CustomerEmail != nil {
		appt.CustomerEmail = *in.CustomerEmail
	}
	if in.Vehicle != nil {
		appt.Vehicle = *in.Vehicle
	}
	if in.ServiceType != nil {
		appt.ServiceType = *in.ServiceType
	}
	if in.PreferredDate != nil {
		appt.PreferredDate = *in.PreferredDate
	}
	if in.Status != nil {
		if !entity.ValidAppointmentStatus(*in.Status) {
			return nil, dto.NewValidationError("status", "estado desconocido")
		}
		appt.Status = *in.Status
	}
	appt.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, appt); err != nil {
		return nil, err
	}
	return toAppointmentResponse(appt), nil
}

// Delete elimina la cita.
func (uc *AppointmentUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func toAppointmentResponse(a *entity.Appointment) *dto.AppointmentResponse {
	if a == nil {
		return nil
	}
	return &dto.AppointmentResponse{
		ID:            a.ID.Hex(),
		CustomerName:  a.CustomerName,
		CustomerEmail: a.CustomerEmail,
		Vehicle:       a.Vehicle,
		ServiceType:   a.ServiceType,
		PreferredDate: a.PreferredDate,
		Status:        a.Status,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}
