package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Estados de una cita.
const (
	AppointmentPending   = "pending"
	AppointmentScheduled = "scheduled"
	AppointmentCompleted = "completed"
	AppointmentCancelled = "cancelled"
)

// ValidAppointmentStatus indica si el estado pertenece a la enumeración fija.
func ValidAppointmentStatus(s string) bool {
	switch s {
	case AppointmentPending, AppointmentScheduled, AppointmentCompleted, AppointmentCancelled:
		return true
	}
	return false
}

// Appointment cita solicitada por un cliente.
type Appointment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	CustomerName  string             `bson:"customer_name"`
	CustomerEmail string             `bson:"customer_email,omitempty"`
	Vehicle       string             `bson:"vehicle"` // descripción libre del vehículo
	ServiceType   string             `bson:"service_type"`
	PreferredDate time.Time          `bson:"preferred_date"`
	Status        string             `bson:"status"`
	CreatedAt     time.Time          `bson:"created_at"`
	UpdatedAt     time.Time          `bson:"updated_at"`
}
