package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Estados de una orden de trabajo.
const (
	JobPending    = "pending"
	JobInProgress = "in_progress"
	JobCompleted  = "completed"
)

// ValidJobStatus indica si el estado pertenece a la enumeración fija.
func ValidJobStatus(s string) bool {
	switch s {
	case JobPending, JobInProgress, JobCompleted:
		return true
	}
	return false
}

// JobTask tarea individual dentro de una orden de trabajo.
type JobTask struct {
	Description string `bson:"description"`
	Completed   bool   `bson:"completed"`
}

// Job orden de trabajo. Al menos una de CarID/AppointmentID debe estar
// presente al crear; AppointmentID es única (como máximo un Job por cita).
type Job struct {
	ID                  primitive.ObjectID  `bson:"_id,omitempty"`
	CarID               *primitive.ObjectID `bson:"car_id,omitempty"`
	AppointmentID       *primitive.ObjectID `bson:"appointment_id,omitempty"`
	Mechanic            string              `bson:"mechanic"`
	Tasks               []JobTask           `bson:"tasks"`
	Status              string              `bson:"status"`
	EstimatedCompletion time.Time           `bson:"estimated_completion,omitempty"`
	CustomerPhone       string              `bson:"customer_phone,omitempty"`
	CreatedAt           time.Time           `bson:"created_at"`
	UpdatedAt           time.Time           `bson:"updated_at"`
}
