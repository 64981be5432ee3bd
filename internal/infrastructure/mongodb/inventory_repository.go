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

// InventoryRepository implementación MongoDB de repository.InventoryRepository.
type InventoryRepository struct {
	col *mongo.Collection
}

// NewInventoryRepository construye el repositorio sobre la colección de items.
func NewInventoryRepository(db *mongo.Database) *InventoryRepository {
	return &InventoryRepository{col: db.Collection(colInventory)}
}

var _ repository.InventoryRepository = (*InventoryRepository)(nil)

// Create inserta el item; el índice único sparse sobre sku ataja duplicados.
func (r *InventoryRepository) Create(ctx context.Context, item *entity.InventoryItem) error {
	res, err := r.col.InsertOne(ctx, item)
	if err != nil {
		if isDuplicateKey(err) {
			return domain.ErrDuplicate
		}
		return err
	}
	item.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// GetByID busca por ID; (nil, nil) si no existe.
func (r *InventoryRepository) GetByID(ctx context.Context, id string) (*entity.InventoryItem, error) {
	oid, ok := objectIDFromHex(id)
	if !ok {
		return nil, nil
	}
	var item entity.InventoryItem
	err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// GetBySKU busca por SKU exacto; (nil, nil) si no existe.
func (r *InventoryRepository) GetBySKU(ctx context.Context, sku string) (*entity.InventoryItem, error) {
	var item entity.InventoryItem
	err := r.col.FindOne(ctx, bson.M{"sku": sku}).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// List pagina con búsqueda libre sobre nombre, categoría, proveedor y SKU,
// y filtro opcional por categoría exacta.
func (r *InventoryRepository) List(ctx context.Context, search, category string, page, limit int) ([]*entity.InventoryItem, int64, error) {
	filter := bson.M{}
	if search != "" {
		filter = searchFilter(search, "name", "category", "supplier.name", "sku")
	}
	if category != "" {
		filter["category"] = category
	}
	var items []*entity.InventoryItem
	total, err := findPage(ctx, r.col, filter, page, limit, &items)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// ListAll devuelve el inventario completo ordenado por nombre, para la
// analítica y los reportes que recorren todos los items.
func (r *InventoryRepository) ListAll(ctx context.Context) ([]*entity.InventoryItem, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	var items []*entity.InventoryItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Update reemplaza el documento completo.
func (r *InventoryRepository) Update(ctx context.Context, item *entity.InventoryItem) error {
	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": item.ID}, item)
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
func (r *InventoryRepository) Delete(ctx context.Context, id string) error {
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

// DecrementStock descuenta qty en una sola operación condicional: el filtro
// exige quantity >= qty, de modo que dos descuentos concurrentes nunca dejan
// el stock en negativo. Devuelve el documento ya actualizado, o (nil, nil) si
// ninguno cumplió la condición.
func (r *InventoryRepository) DecrementStock(ctx context.Context, id string, qty int) (*entity.InventoryItem, error) {
	oid, ok := objectIDFromHex(id)
	if !ok {
		return nil, nil
	}
	filter := bson.M{"_id": oid, "quantity": bson.M{"$gte": qty}}
	update := bson.M{
		"$inc": bson.M{"quantity": -qty},
		"$set": bson.M{"updated_at": time.Now()},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var item entity.InventoryItem
	err := r.col.FindOneAndUpdate(ctx, filter, update, opts).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}
