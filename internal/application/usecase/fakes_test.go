package usecase_test

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jhoicas/Taller-api/internal/domain"
	"github.com/jhoicas/Taller-api/internal/domain/entity"
	"github.com/jhoicas/Taller-api/internal/domain/repository"
)

var (
	_ repository.InventoryRepository   = (*fakeInventoryRepo)(nil)
	_ repository.CarRepository         = (*fakeCarRepo)(nil)
	_ repository.AppointmentRepository = (*fakeAppointmentRepo)(nil)
	_ repository.JobRepository         = (*fakeJobRepo)(nil)
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los repositorios. Replican el contrato del storage:
// Get* devuelve (nil, nil) cuando no existe y DecrementStock solo aplica si
// la cantidad alcanza. Sin paginación sofisticada: los tests usan page=1.
// ──────────────────────────────────────────────────────────────────────────────

type fakeInventoryRepo struct {
	items []*entity.InventoryItem
}

func (r *fakeInventoryRepo) Create(_ context.Context, item *entity.InventoryItem) error {
	if item.SKU != "" {
		for _, it := range r.items {
			if it.SKU == item.SKU {
				return domain.ErrDuplicate
			}
		}
	}
	if item.ID.IsZero() {
		item.ID = primitive.NewObjectID()
	}
	r.items = append(r.items, item)
	return nil
}

func (r *fakeInventoryRepo) GetByID(_ context.Context, id string) (*entity.InventoryItem, error) {
	for _, it := range r.items {
		if it.ID.Hex() == id {
			return it, nil
		}
	}
	return nil, nil
}

func (r *fakeInventoryRepo) GetBySKU(_ context.Context, sku string) (*entity.InventoryItem, error) {
	for _, it := range r.items {
		if it.SKU == sku {
			return it, nil
		}
	}
	return nil, nil
}

func (r *fakeInventoryRepo) List(_ context.Context, _, _ string, _, _ int) ([]*entity.InventoryItem, int64, error) {
	return r.items, int64(len(r.items)), nil
}

func (r *fakeInventoryRepo) ListAll(_ context.Context) ([]*entity.InventoryItem, error) {
	return r.items, nil
}

func (r *fakeInventoryRepo) Update(_ context.Context, item *entity.InventoryItem) error {
	for i, it := range r.items {
		if it.ID == item.ID {
			r.items[i] = item
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *fakeInventoryRepo) Delete(_ context.Context, id string) error {
	for i, it := range r.items {
		if it.ID.Hex() == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// DecrementStock imita el decremento condicional del storage: ningún efecto
// (nil, nil) cuando el item no existe o la cantidad no alcanza.
func (r *fakeInventoryRepo) DecrementStock(_ context.Context, id string, qty int) (*entity.InventoryItem, error) {
	for _, it := range r.items {
		if it.ID.Hex() == id && it.Quantity >= qty {
			it.Quantity -= qty
			it.UpdatedAt = time.Now()
			return it, nil
		}
	}
	return nil, nil
}

type fakeCarRepo struct {
	cars []*entity.Car
}

func (r *fakeCarRepo) Create(_ context.Context, car *entity.Car) error {
	if car.VIN != "" {
		for _, c := range r.cars {
			if c.VIN == car.VIN {
				return domain.ErrDuplicate
			}
		}
	}
	if car.ID.IsZero() {
		car.ID = primitive.NewObjectID()
	}
	r.cars = append(r.cars, car)
	return nil
}

func (r *fakeCarRepo) GetByID(_ context.Context, id string) (*entity.Car, error) {
	for _, c := range r.cars {
		if c.ID.Hex() == id {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeCarRepo) GetByVIN(_ context.Context, vin string) (*entity.Car, error) {
	for _, c := range r.cars {
		if c.VIN == vin {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeCarRepo) List(_ context.Context, _ string, page, limit int) ([]*entity.Car, int64, error) {
	total := int64(len(r.cars))
	start := (page - 1) * limit
	if start >= len(r.cars) {
		return []*entity.Car{}, total, nil
	}
	end := start + limit
	if end > len(r.cars) {
		end = len(r.cars)
	}
	return r.cars[start:end], total, nil
}

func (r *fakeCarRepo) Update(_ context.Context, car *entity.Car) error {
	for i, c := range r.cars {
		if c.ID == car.ID {
			r.cars[i] = car
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *fakeCarRepo) Delete(_ context.Context, id string) error {
	for i, c := range r.cars {
		if c.ID.Hex() == id {
			r.cars = append(r.cars[:i], r.cars[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

type fakeAppointmentRepo struct {
	appts []*entity.Appointment
}

func (r *fakeAppointmentRepo) Create(_ context.Context, appt *entity.Appointment) error {
	if appt.ID.IsZero() {
		appt.ID = primitive.NewObjectID()
	}
	r.appts = append(r.appts, appt)
	return nil
}

func (r *fakeAppointmentRepo) GetByID(_ context.Context, id string) (*entity.Appointment, error) {
	for _, a := range r.appts {
		if a.ID.Hex() == id {
			return a, nil
		}
	}
	return nil, nil
}

func (r *fakeAppointmentRepo) List(_ context.Context, status string, _, _ int) ([]*entity.Appointment, int64, error) {
	out := make([]*entity.Appointment, 0, len(r.appts))
	for _, a := range r.appts {
		if status == "" || a.Status == status {
			out = append(out, a)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeAppointmentRepo) Update(_ context.Context, appt *entity.Appointment) error {
	for i, a := range r.appts {
		if a.ID == appt.ID {
			r.appts[i] = appt
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *fakeAppointmentRepo) Delete(_ context.Context, id string) error {
	for i, a := range r.appts {
		if a.ID.Hex() == id {
			r.appts = append(r.appts[:i], r.appts[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// fakeJobRepo necesita el repo de cars para replicar el join por email de
// cliente que en el storage real hace el pipeline de agregación.
type fakeJobRepo struct {
	jobs []*entity.Job
	cars *fakeCarRepo
}

func (r *fakeJobRepo) Create(_ context.Context, job *entity.Job) error {
	if job.AppointmentID != nil {
		for _, j := range r.jobs {
			if j.AppointmentID != nil && *j.AppointmentID == *job.AppointmentID {
				return domain.ErrConflict
			}
		}
	}
	if job.ID.IsZero() {
		job.ID = primitive.NewObjectID()
	}
	r.jobs = append(r.jobs, job)
	return nil
}

func (r *fakeJobRepo) GetByID(_ context.Context, id string) (*entity.Job, error) {
	for _, j := range r.jobs {
		if j.ID.Hex() == id {
			return j, nil
		}
	}
	return nil, nil
}

func (r *fakeJobRepo) GetByAppointmentID(_ context.Context, appointmentID string) (*entity.Job, error) {
	for _, j := range r.jobs {
		if j.AppointmentID != nil && j.AppointmentID.Hex() == appointmentID {
			return j, nil
		}
	}
	return nil, nil
}

func (r *fakeJobRepo) List(_ context.Context, status string, _, _ int) ([]*entity.Job, int64, error) {
	out := make([]*entity.Job, 0, len(r.jobs))
	for _, j := range r.jobs {
		if status == "" || j.Status == status {
			out = append(out, j)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeJobRepo) ListByCustomerEmail(ctx context.Context, email, status string, _, _ int) ([]*entity.Job, int64, error) {
	out := make([]*entity.Job, 0)
	for _, j := range r.jobs {
		if status != "" && j.Status != status {
			continue
		}
		if j.CarID == nil {
			continue
		}
		car, _ := r.cars.GetByID(ctx, j.CarID.Hex())
		if car != nil && car.CustomerEmail == email {
			out = append(out, j)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeJobRepo) UpsertByAppointment(_ context.Context, job *entity.Job) (*entity.Job, error) {
	now := time.Now()
	for _, j := range r.jobs {
		if j.AppointmentID != nil && *j.AppointmentID == *job.AppointmentID {
			j.CarID = job.CarID
			j.Mechanic = job.Mechanic
			j.Tasks = job.Tasks
			j.Status = job.Status
			j.EstimatedCompletion = job.EstimatedCompletion
			j.CustomerPhone = job.CustomerPhone
			j.UpdatedAt = now
			return j, nil
		}
	}
	job.ID = primitive.NewObjectID()
	job.CreatedAt = now
	job.UpdatedAt = now
	r.jobs = append(r.jobs, job)
	return job, nil
}

func (r *fakeJobRepo) Update(_ context.Context, job *entity.Job) error {
	for i, j := range r.jobs {
		if j.ID == job.ID {
			r.jobs[i] = job
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *fakeJobRepo) Delete(_ context.Context, id string) error {
	for i, j := range r.jobs {
		if j.ID.Hex() == id {
			r.jobs = append(r.jobs[:i], r.jobs[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}
