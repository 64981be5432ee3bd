package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Disponibilidad de un mecánico.
const (
	MechanicAvailable   = "available"
	MechanicBusy        = "busy"
	MechanicUnavailable = "unavailable"
)

// ValidAvailability indica si la disponibilidad pertenece a la enumeración fija.
func ValidAvailability(s string) bool {
	switch s {
	case MechanicAvailable, MechanicBusy, MechanicUnavailable:
		return true
	}
	return false
}

// Mechanic ficha de un mecánico del taller.
type Mechanic struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Name         string             `bson:"name"`
	Email        string             `bson:"email"` // único
	Phone        string             `bson:"phone,omitempty"`
	Skills       []string           `bson:"skills"`
	Availability string             `bson:"availability"`
	Experience   string             `bson:"experience,omitempty"`
	CreatedAt    time.Time          `bson:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at"`
}
