package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Métodos y estados de pago.
const (
	PaymentMethodCard = "card"
	PaymentMethodCash = "cash"

	PaymentCompleted = "completed"
	PaymentPending   = "pending"
)

// Payment cobro registrado. JobNumber/CarNumber son referencias numéricas
// informativas (no FKs duras hacia Job/Car).
type Payment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	JobNumber     *int               `bson:"job_number,omitempty"`
	CarNumber     *int               `bson:"car_number,omitempty"`
	Amount        float64            `bson:"amount"`
	Method        string             `bson:"method"` // card | cash
	Description   string             `bson:"description,omitempty"`
	Date          time.Time          `bson:"date"`
	Status        string             `bson:"status"` // completed | pending
	TransactionID string             `bson:"transaction_id,omitempty"`
	CardLast4     string             `bson:"card_last4,omitempty"`
	CreatedAt     time.Time          `bson:"created_at"`
	UpdatedAt     time.Time          `bson:"updated_at"`
}
