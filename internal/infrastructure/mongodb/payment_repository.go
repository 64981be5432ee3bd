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

// PaymentRepository implementación MongoDB de repository.PaymentRepository.
type PaymentRepository struct {
	col *mongo.Collection
}

// NewPaymentRepository construye el repositorio sobre la colección de pagos.
func NewPaymentRepository(db *mongo.Database) *PaymentRepository {
	return &PaymentRepository{col: db.Collection(colPayments)}
}

var _ repository.PaymentRepository = (*PaymentRepository)(nil)

// Create inserta el pago y asigna el ID generado.
func (r *PaymentRepository) Create(ctx context.Context, p *entity.Payment) error {
	res, err := r.col.InsertOne(ctx, p)
	if err != nil {
		return err
	}
	p.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// GetByID busca por ID; (nil, nil) si no existe.
func (r *PaymentRepository) GetByID(ctx context.Context, id string) (*entity.Payment, error) {
	oid, ok := objectIDFromHex(id)
	if !ok {
		return nil, nil
	}
	var p entity.Payment
	err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// List pagina con filtros opcionales por estado y método.
func (r *PaymentRepository) List(ctx context.Context, status, method string, page, limit int) ([]*entity.Payment, int64, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}
	if method != "" {
		filter["method"] = method
	}
	var ps []*entity.Payment
	total, err := findPage(ctx, r.col, filter, page, limit, &ps)
	if err != nil {
		return nil, 0, err
	}
	return ps, total, nil
}

// Update reemplaza el documento completo.
func (r *PaymentRepository) Update(ctx context.Context, p *entity.Payment) error {
	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": p.ID}, p)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina por ID.
func (r *PaymentRepository) Delete(ctx context.Context, id string) error {
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
