package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/Taller-api/internal/application/dto"
	"github.com/jhoicas/Taller-api/internal/domain"
	"github.com/jhoicas/Taller-api/internal/domain/entity"
	"github.com/jhoicas/Taller-api/internal/domain/repository"
)

// CarUseCase casos de uso CRUD para vehículos.
type CarUseCase struct {
	repo repository.CarRepository
}

// NewCarUseCase construye el caso de uso.
func NewCarUseCase(repo repository.CarRepository) *CarUseCase {
	return &CarUseCase{repo: repo}
}

// Create registra un vehículo. El VIN, si viene, debe ser único.
func (uc *CarUseCase) Create(ctx context.Context, in dto.CreateCarRequest) (*dto.CarResponse, error) {
	if errs := validateCar(in); errs != nil {
		return nil, errs
	}
	if in.VIN != "" {
		existing, err := uc.repo.GetByVIN(ctx, in.VIN)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrDuplicate
		}
	}
	now := time.Now()
	car := &entity.Car{
		LicensePlate:  in.LicensePlate,
		CustomerName:  in.CustomerName,
		CustomerPhone: in.CustomerPhone,
		CustomerEmail: in.CustomerEmail,
		Make:          in.Make,
		Model:         in.Model,
		Year:          in.Year,
		Color:         in.Color,
		VIN:           in.VIN,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(ctx, car); err != nil {
		return nil, err
	}
	return toCarResponse(car), nil
}

// GetByID obtiene un vehículo por ID.
func (uc *CarUseCase) GetByID(ctx context.Context, id string) (*dto.CarResponse, error) {
	car, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if car == nil {
		return nil, domain.ErrNotFound
	}
	return toCarResponse(car), nil
}

// List lista vehículos con búsqueda libre y paginación (más recientes primero).
func (uc *CarUseCase) List(ctx context.Context, search string, page, limit int) ([]dto.CarResponse, int64, error) {
	cars, total, err := uc.repo.List(ctx, search, page, limit)
	if err != nil {
		return nil, 0, err
	}
	items := make([]dto.CarResponse, 0, len(cars))
	for _, c := range cars {
		items = append(items, *toCarResponse(c))
	}
	return items, total, nil
}

// Update actualización parcial: solo cambian los campos provistos.
func (uc *CarUseCase) Update(ctx context.Context, id string, in dto.UpdateCarRequest) (*dto.CarResponse, error) {
	car, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if car == nil {
		return nil, domain.ErrNotFound
	}
	if in.LicensePlate != nil {
		car.LicensePlate = *in.LicensePlate
	}
	if in.CustomerName != nil {
		car.CustomerName = *in.CustomerName
	}
	if in.CustomerPhone != nil {
		car.CustomerPhone = *in.CustomerPhone
	}
	if in.CustomerEmail != nil {
		car.CustomerEmail = *in.CustomerEmail
	}
	if in.Make != nil {
		car.Make = *in.Make
	}
	if in.Model != nil {
		car.Model = *in.Model
	}
	if in.Year != nil {
		car.Year = *in.Year
	}
	if in.Color != nil {
		car.Color = *in.Color
	}
	if in.VIN != nil && *in.VIN != car.VIN {
		if *in.VIN != "" {
			existing, err := uc.repo.GetByVIN(ctx, *in.VIN)
			if err != nil {
				return nil, err
			}
			if existing != nil {
				return nil, domain.ErrDuplicate
			}
		}
		car.VIN = *in.VIN
	}
	car.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, car); err != nil {
		return nil, err
	}
	return toCarResponse(car), nil
}

// Delete elimina el vehículo. No hay borrado en cascada: los jobs que lo
// referencian quedan intactos.
func (uc *CarUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func validateCar(in dto.CreateCarRequest) error {
	var errs []dto.FieldError
	if in.LicensePlate == "" {
		errs = append(errs, dto.FieldError{Field: "license_plate", Message: "requerida"})
	}
	if in.CustomerName == "" {
		errs = append(errs, dto.FieldError{Field: "customer_name", Message: "requerido"})
	}
	if in.Make == "" {
		errs = append(errs, dto.FieldError{Field: "make", Message: "requerida"})
	}
	if in.Model == "" {
		errs = append(errs, dto.FieldError{Field: "model", Message: "requerido"})
	}
	if errs != nil {
		return &dto.ValidationError{Fields: errs}
	}
	return nil
}

func toCarResponse(c *entity.Car) *dto.CarResponse {
	if c == nil {
		return nil
	}
	return &dto.CarResponse{
		ID:            c.ID.Hex(),
		LicensePlate:  c.LicensePlate,
		CustomerName:  c.CustomerName,
		CustomerPhone: c.CustomerPhone,
		CustomerEmail: c.CustomerEmail,
		Make:          c.Make,
		Model:         c.Model,
		Year:          c.Year,
		Color:         c.Color,
		VIN:           c.VIN,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}
