package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/Taller-api/internal/application/dto"
	"github.com/jhoicas/Taller-api/internal/domain"
	"github.com/jhoicas/Taller-api/internal/domain/entity"
	"github.com/jhoicas/Taller-api/internal/domain/repository"
)

// MechanicUseCase casos de uso CRUD para mecánicos.
type MechanicUseCase struct {
	repo repository.MechanicRepository
}

// NewMechanicUseCase construye el caso de uso.
func NewMechanicUseCase(repo repository.MechanicRepository) *MechanicUseCase {
	return &MechanicUseCase{repo: repo}
}

// Create da de alta un mecánico. El email es único.
func (uc *MechanicUseCase) Create(ctx context.Context, in dto.CreateMechanicRequest) (*dto.MechanicResponse, error) {
	var errs []dto.FieldError
	if in.Name == "" {
		errs = append(errs, dto.FieldError{Field: "name", Message: "requerido"})
	}
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || !strings.Contains(email, "@") {
		errs = append(errs, dto.FieldError{Field: "email", Message: "email inválido"})
	}
	availability := in.Availability
	if availability == "" {
		availability = entity.MechanicAvailable
	}
	if !entity.ValidAvailability(availability) {
		errs = append(errs, dto.FieldError{Field: "availability", Message: "valor desconocido"})
	}
	if errs != nil {
		return nil, &dto.ValidationError{Fields: errs}
	}
	existing, err := uc.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	m := &entity.Mechanic{
		Name:         in.Name,
		Email:        email,
		Phone:        in.Phone,
		Skills:       in.Skills,
		Availability: availability,
		Experience:   in.Experience,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	return toMechanicResponse(m), nil
}

// GetByID obtiene un mecánico por ID.
func (uc *MechanicUseCase) GetByID(ctx context.Context, id string) (*dto.MechanicResponse, error) {
	m, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNotFound
	}
	return toMechanicResponse(m), nil
}

// List lista mecánicos con búsqueda libre y filtro por disponibilidad.
func (uc *MechanicUseCase) List(ctx context.Context, search, availability string, page, limit int) ([]dto.MechanicResponse, int64, error) {
	if availability != "" && !entity.ValidAvailability(availability) {
		return nil, 0, dto.NewValidationError("availability", "valor desconocido")
	}
	ms, total, err := uc.repo.List(ctx, search, availability, page, limit)
	if err != nil {
		return nil, 0, err
	}
	items := make([]dto.MechanicResponse, 0, len(ms))
	for _, m := range ms {
		items = append(items, *toMechanicResponse(m))
	}
	return items, total, nil
}

// Update actualización parcial: solo cambian los campos provistos.
func (uc *MechanicUseCase) Update(ctx context.Context, id string, in dto.UpdateMechanicRequest) (*dto.MechanicResponse, error) {
	m, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		m.Name = *in.Name
	}
	if in.Phone != nil {
		m.Phone = *in.Phone
	}
	if in.Skills != nil {
		m.Skills = *in.Skills
	}
	if in.Availability != nil {
		if !entity.ValidAvailability(*in.Availability) {
			return nil, dto.NewValidationError("availability", "valor desconocido")
		}
		m.Availability = *in.Availability
	}
	if in.Experience != nil {
		m.Experience = *in.Experience
	}
	m.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, m); err != nil {
		return nil, err
	}
	return toMechanicResponse(m), nil
}

// Delete elimina el mecánico.
func (uc *MechanicUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func toMechanicResponse(m *entity.Mechanic) *dto.MechanicResponse {
	if m == nil {
		return nil
	}
	return &dto.MechanicResponse{
		ID:           m.ID.Hex(),
		Name:         m.Name,
		Email:        m.Email,
		Phone:        m.Phone,
		Skills:       m.Skills,
		Availability: m.Availability,
		Experience:   m.Experience,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}
