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

// CarRepository implementación MongoDB de repository.CarRepository.
type CarRepository struct {
	col *mongo.Collection
}

// NewCarRepository construye el repositorio sobre la colección de vehículos.
func NewCarRepository(db *mongo.Database) *CarRepository {
	return &CarRepository{col: db.Collection(colCars)}
}

var _ repository.CarRepository = (*CarRepository)(nil)

// Create inserta el vehículo y asigna el ID generado.
func (r *CarRepository) Create(ctx context.Context, car *entity.Car) error {
	res, err := r.col.InsertOne(ctx, car)
	if err != nil {
		if isDuplicateKey(err) {
			return domain.ErrDuplicate
		}
		return err
	}
	car.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// GetByID busca por ID; (nil, nil) si no existe o el ID está malformado.
func (r *CarRepository) GetByID(ctx context.Context, id string) (*entity.Car, error) {
	oid, ok := objectIDFromHex(id)
	if !ok {
		return nil, nil
	}
	var car entity.Car
	err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&car)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &car, nil
}

// GetByVIN busca por VIN exacto; (nil, nil) si no existe.
func (r *CarRepository) GetByVIN(ctx context.Context, vin string) (*entity.Car, error) {
	var car entity.Car
	err := r.col.FindOne(ctx, bson.M{"vin": vin}).Decode(&car)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &car, nil
}

// List pagina con búsqueda libre sobre placa, cliente, marca y modelo.
func (r *CarRepository) List(ctx context.Context, search string, page, limit int) ([]*entity.Car, int64, error) {
	filter := bson.M{}
	if search != "" {
		filter = searchFilter(search, "license_plate", "customer_name", "make", "model")
	}
	var cars []*entity.Car
	total, err := findPage(ctx, r.col, filter, page, limit, &cars)
	if err != nil {
		return nil, 0, err
	}
	return cars, total, nil
}

// Update reemplaza el documento completo.
func (r *CarRepository) Update(ctx context.Context, car *entity.Car) error {
	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": car.ID}, car)
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
func (r *CarRepository) Delete(ctx context.Context, id string) error {
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
