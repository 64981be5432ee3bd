package mongodb

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jhoicas/Taller-api/internal/domain"
	"github.com/jhoicas/Taller-api/internal/domain/entity"
	"github.com/jhoicas/Taller-api/internal/domain/repository"
)

// AppointmentRepository implementación MongoDB de repository.AppointmentRepository.
type AppointmentRepository struct {
	col *mongo.Collection
}

// NewAppointmentRepository construye el repositorio sobre la colección de citas.
func NewAppointmentRepository(db *mongo.Database) *AppointmentRepository {
	return &AppointmentRepository{col: db.Collection(colAppointments)}
}

var _ repository.AppointmentRepository = (*AppointmentRepository)(nil)

// Create inserta la cita y asigna el ID generado.
func (r *AppointmentRepository) Create(ctx context.Context, appt *entity.Appointment) error {
	res, err := r.col.InsertOne(ctx, appt)
	if err != nil {
		return err
	}
	appt.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// GetByID busca por ID; (nil, nil) si no existe.
func (r *AppointmentRepository) GetByID(ctx context.Context, id string) (*entity.Appointment, error) {
	oid, ok := objectIDFromHex(id)
	if !ok {
		return nil, nil
	}
	var appt entity.Appointment
	err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&appt)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &appt, nil
}

// List pagina con filtro opcional por estado.
func (r *AppointmentRepository) List(ctx context.Context, status string, page, limit int) ([]*entity.Appointment, int64, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}
	var appts []*entity.Appointment
	total, err := findPage(ctx, r.col, filter, page, limit, &appts)
	if err != nil {
		return nil, 0, err
	}
	return appts, total, nil
}

// Update reemplaza el documento completo.
func (r *AppointmentRepository) Update(ctx context.Context, appt *entity.Appointment) error {
	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": appt.ID}, appt)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina por ID.
func (r *AppointmentRepository) Delete(ctx context.Context, id string) error {
	oid, ok := objectIDFromHex(id)
	if !ok {
		return domain.ErrNotFound
	}
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}
