package mongodb

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jhoicas/Taller-api/internal/domain"
	"github.com/jhoicas/Taller-api/internal/domain/entity"
	"github.com/jhoicas/Taller-api/internal/domain/repository"
)

// JobRepository implementación MongoDB de repository.JobRepository.
type JobRepository struct {
	col *mongo.Collection
}

// NewJobRepository construye el repositorio sobre la colección de órdenes.
func NewJobRepository(db *mongo.Database) *JobRepository {
	return &JobRepository{col: db.Collection(colJobs)}
}

var _ repository.JobRepository = (*JobRepository)(nil)

// Create inserta la orden; el índice único sparse sobre appointment_id
// rechaza una segunda orden para la misma cita.
func (r *JobRepository) Create(ctx context.Context, job *entity.Job) error {
	res, err := r.col.InsertOne(ctx, job)
	if err != nil {
		if isDuplicateKey(err) {
			return domain.ErrConflict
		}
		return err
	}
	job.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// GetByID busca por ID; (nil, nil) si no existe.
func (r *JobRepository) GetByID(ctx context.Context, id string) (*entity.Job, error) {
	oid, ok := objectIDFromHex(id)
	if !ok {
		return nil, nil
	}
	var job entity.Job
	err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&job)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &job, nil
}

// GetByAppointmentID busca la orden asociada a una cita; (nil, nil) si no hay.
func (r *JobRepository) GetByAppointmentID(ctx context.Context, appointmentID string) (*entity.Job, error) {
	oid, ok := objectIDFromHex(appointmentID)
	if !ok {
		return nil, nil
	}
	var job entity.Job
	err := r.col.FindOne(ctx, bson.M{"appointment_id": oid}).Decode(&job)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &job, nil
}

// List pagina con filtro opcional por estado.
func (r *JobRepository) List(ctx context.Context, status string, page, limit int) ([]*entity.Job, int64, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}
	var jobs []*entity.Job
	total, err := findPage(ctx, r.col, filter, page, limit, &jobs)
	if err != nil {
		return nil, 0, err
	}
	return jobs, total, nil
}

// jobsPage resultado del $facet: página de documentos + total de la consulta.
type jobsPage struct {
	Items []*entity.Job `bson:"items"`
	Total []struct {
		Count int64 `bson:"count"`
	} `bson:"total"`
}

// ListByCustomerEmail resuelve la pertenencia en el servidor: $lookup del
// vehículo enlazado, filtro por su customer_email y paginación con $facet.
// Las órdenes sin vehículo (solo cita) no pertenecen a ningún cliente y
// quedan fuera.
func (r *JobRepository) ListByCustomerEmail(ctx context.Context, email, status string, page, limit int) ([]*entity.Job, int64, error) {
	match := bson.M{"car.customer_email": email}
	if status != "" {
		match["status"] = status
	}

	pipeline := mongo.Pipeline{
		{{Key: "$lookup", Value: bson.M{
			"from":         colCars,
			"localField":   "car_id",
			"foreignField": "_id",
			"as":           "car",
		}}},
		{{Key: "$unwind", Value: "$car"}},
		{{Key: "$match", Value: match}},
		{{Key: "$sort", Value: bson.D{{Key: "created_at", Value: -1}}}},
		{{Key: "$facet", Value: bson.M{
			"items": bson.A{
				bson.M{"$skip": int64((page - 1) * limit)},
				bson.M{"$limit": int64(limit)},
			},
			"total": bson.A{bson.M{"$count": "count"}},
		}}},
	}

	cursor, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, 0, err
	}
	var pages []jobsPage
	if err := cursor.All(ctx, &pages); err != nil {
		return nil, 0, err
	}
	if len(pages) == 0 {
		return nil, 0, nil
	}
	var total int64
	if len(pages[0].Total) > 0 {
		total = pages[0].Total[0].Count
	}
	return pages[0].Items, total, nil
}

// UpsertByAppointment inserta o actualiza la orden de la cita en una sola
// operación. Dos upserts concurrentes para la misma cita convergen: el índice
// único hace que el segundo aterrice como update del documento del primero.
func (r *JobRepository) UpsertByAppointment(ctx context.Context, job *entity.Job) (*entity.Job, error) {
	now := time.Now()
	update := bson.M{
		"$set": bson.M{
			"car_id":               job.CarID,
			"mechanic":             job.Mechanic,
			"tasks":                job.Tasks,
			"status":               job.Status,
			"estimated_completion": job.EstimatedCompletion,
			"customer_phone":       job.CustomerPhone,
			"updated_at":           now,
		},
		"$setOnInsert": bson.M{"created_at": now},
	}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var out entity.Job
	err := r.col.FindOneAndUpdate(ctx, bson.M{"appointment_id": job.AppointmentID}, update, opts).Decode(&out)
	if err != nil {
		// Carrera insert-insert sobre el índice único: reintentar una vez,
		// ahora como update del documento ganador.
		if isDuplicateKey(err) {
			err = r.col.FindOneAndUpdate(ctx, bson.M{"appointment_id": job.AppointmentID}, update,
				options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&out)
		}
		if err != nil {
			return nil, err
		}
	}
	return &out, nil
}

// Update reemplaza el documento completo.
func (r *JobRepository) Update(ctx context.Context, job *entity.Job) error {
	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": job.ID}, job)
	if err != nil {
		if isDuplicateKey(err) {
			return domain.ErrConflict
		}
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina por ID.
func (r *JobRepository) Delete(ctx context.Context, id string) error {
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
