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

// MechanicRepository implementación MongoDB de repository.MechanicRepository.
type MechanicRepository struct {
	col *mongo.Collection
}

// NewMechanicRepository construye el repositorio sobre la colección de mecánicos.
func NewMechanicRepository(db *mongo.Database) *MechanicRepository {
	return &MechanicRepository{col: db.Collection(colMechanics)}
}

var _ repository.MechanicRepository = (*MechanicRepository)(nil)

// Create inserta el mecánico; el índice único sobre email ataja duplicados.
func (r *MechanicRepository) Create(ctx context.Context, m *entity.Mechanic) error {
	res, err := r.col.InsertOne(ctx, m)
	if err != nil {
		if isDuplicateKey(err) {
			return domain.ErrDuplicate
		}
		return err
	}
	m.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// GetByID busca por ID; (nil, nil) si no existe.
func (r *MechanicRepository) GetByID(ctx context.Context, id string) (*entity.Mechanic, error) {
	oid, ok := objectIDFromHex(id)
	if !ok {
		return nil, nil
	}
	var m entity.Mechanic
	err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&m)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// GetByEmail busca por email exacto; (nil, nil) si no existe.
func (r *MechanicRepository) GetByEmail(ctx context.Context, email string) (*entity.Mechanic, error) {
	var m entity.Mechanic
	err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&m)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// List pagina con búsqueda libre sobre nombre, email y skills, y filtro
// opcional por disponibilidad.
func (r *MechanicRepository) List(ctx context.Context, search, availability string, page, limit int) ([]*entity.Mechanic, int64, error) {
	filter := bson.M{}
	if search != "" {
		filter = searchFilter(search, "name", "email", "skills")
	}
	if availability != "" {
		filter["availability"] = availability
	}
	var ms []*entity.Mechanic
	total, err := findPage(ctx, r.col, filter, page, limit, &ms)
	if err != nil {
		return nil, 0, err
	}
	return ms, total, nil
}

// Update reemplaza el documento completo.
func (r *MechanicRepository) Update(ctx context.Context, m *entity.Mechanic) error {
	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": m.ID}, m)
	if err != nil {
		if isDuplicateKey(err) {
			return domain.ErrDuplicate
		}
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina por ID.
func (r *MechanicRepository) Delete(ctx context.Context, id string) error {
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
