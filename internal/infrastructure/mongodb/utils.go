package mongodb

import (
	"context"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// objectIDFromHex parsea un ID de ruta. Un ID malformado se trata igual que
// uno inexistente: ok=false y el caller responde "no encontrado".
func objectIDFromHex(id string) (primitive.ObjectID, bool) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, false
	}
	return oid, true
}

// searchFilter arma un $or de $regex case-insensitive sobre los campos dados.
// El término se escapa para que el input del usuario no sea sintaxis regex.
func searchFilter(term string, fields ...string) bson.M {
	quoted := regexp.QuoteMeta(term)
	or := make([]bson.M, 0, len(fields))
	for _, f := range fields {
		or = append(or, bson.M{f: bson.M{"$regex": quoted, "$options": "i"}})
	}
	return bson.M{"$or": or}
}

// isDuplicateKey indica si el error es una violación de índice único (E11000).
func isDuplicateKey(err error) bool {
	return mongo.IsDuplicateKeyError(err)
}

// findPage ejecuta el patrón común de listado: cuenta total, busca la página
// pedida ordenada por created_at descendente y decodifica en out.
func findPage(ctx context.Context, col *mongo.Collection, filter bson.M, page, limit int, out interface{}) (int64, error) {
	total, err := col.CountDocuments(ctx, filter)
	if err != nil {
		return 0, err
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))
	cursor, err := col.Find(ctx, filter, opts)
	if err != nil {
		return 0, err
	}
	if err := cursor.All(ctx, out); err != nil {
		return 0, err
	}
	return total, nil
}
