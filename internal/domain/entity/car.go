package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Car vehículo de un cliente. La pertenencia es conceptual: se resuelve por
// coincidencia de CustomerEmail con el email de la identidad, no por FK dura.
type Car struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	LicensePlate  string             `bson:"license_plate"`
	CustomerName  string             `bson:"customer_name"`
	CustomerPhone string             `bson:"customer_phone"`
	CustomerEmail string             `bson:"customer_email,omitempty"`
	Make          string             `bson:"make"`
	Model         string             `bson:"model"`
	Year          int                `bson:"year"`
	Color         string             `bson:"color,omitempty"`
	VIN           string             `bson:"vin,omitempty"` // único si está presente
	CreatedAt     time.Time          `bson:"created_at"`
	UpdatedAt     time.Time          `bson:"updated_at"`
}
