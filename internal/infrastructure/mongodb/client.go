// Package mongodb implementa los puertos de persistencia del dominio sobre
// MongoDB. Convenciones de la capa:
//
//   - Los Get* devuelven (nil, nil) cuando el documento no existe; los
//     sentinelas de dominio los pone la capa de aplicación.
//   - Los listados paginan y ordenan en el servidor (skip/limit + sort por
//     created_at descendente), nunca en memoria.
//   - La unicidad (emails, VIN, SKU, cita por orden) la garantizan índices
//     únicos creados al arrancar, no chequeos read-then-write.
package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jhoicas/Taller-api/pkg/config"
)

// Nombres de colecciones.
const (
	colUsers        = "users"
	colCars         = "cars"
	colAppointments = "appointments"
	colJobs         = "jobs"
	colInventory    = "inventory_items"
	colMechanics    = "mechanics"
	colPayments     = "payments"
)

// Connect abre el cliente, verifica conectividad con un ping y devuelve la
// base de datos de la app con los índices ya asegurados.
func Connect(ctx context.Context, cfg config.MongoConfig) (*mongo.Client, *mongo.Database, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, nil, fmt.Errorf("mongo: conectar: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("mongo: ping: %w", err)
	}

	db := client.Database(cfg.Database)
	if err := ensureIndexes(ctx, db); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, err
	}
	return client, db, nil
}

// ensureIndexes crea los índices únicos de los que depende la lógica de
// negocio. Idempotente: Mongo ignora índices ya existentes.
func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	unique := options.Index().SetUnique(true)
	uniqueSparse := options.Index().SetUnique(true).SetSparse(true)

	specs := []struct {
		col   string
		model mongo.IndexModel
	}{
		{colUsers, mongo.IndexModel{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique}},
		{colMechanics, mongo.IndexModel{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique}},
		// sparse: el VIN y el SKU son opcionales; solo los documentos que
		// los traen participan del índice.
		{colCars, mongo.IndexModel{Keys: bson.D{{Key: "vin", Value: 1}}, Options: uniqueSparse}},
		{colInventory, mongo.IndexModel{Keys: bson.D{{Key: "sku", Value: 1}}, Options: uniqueSparse}},
		// Como máximo una orden de trabajo por cita.
		{colJobs, mongo.IndexModel{Keys: bson.D{{Key: "appointment_id", Value: 1}}, Options: uniqueSparse}},
	}

	for _, s := range specs {
		if _, err := db.Collection(s.col).Indexes().CreateOne(ctx, s.model); err != nil {
			return fmt.Errorf("mongo: índice en %s: %w", s.col, err)
		}
	}
	return nil
}
