package dto

import "time"

// CreatePaymentRequest registro de un cobro. Para method=card se genera un
// transaction_id si no viene y se guarda solo el sufijo de la tarjeta.
type CreatePaymentRequest struct {
	JobNumber     *int      `json:"job"`
	CarNumber     *int      `json:"car"`
	Amount        float64   `json:"amount"`
	Method        string    `json:"method"` // card | cash
	Description   string    `json:"description"`
	Date          time.Time `json:"date"`
	Status        string    `json:"status"` // completed | pending
	TransactionID string    `json:"transaction_id"`
	CardLast4     string    `json:"card_last4"`
}

// UpdatePaymentRequest patch explícito por campo (nil = no tocar).
type UpdatePaymentRequest struct {
	Amount      *float64   `json:"amount"`
	Method      *string    `json:"method"`
	Description *string    `json:"description"`
	Date        *time.Time `json:"date"`
	Status      *string    `json:"status"`
}

// PaymentResponse salida de un pago.
type PaymentResponse struct {
	ID            string    `json:"id"`
	JobNumber     *int      `json:"job,omitempty"`
	CarNumber     *int      `json:"car,omitempty"`
	Amount        float64   `json:"amount"`
	Method        string    `json:"method"`
	Description   string    `json:"description,omitempty"`
	Date          time.Time `json:"date"`
	Status        string    `json:"status"`
	TransactionID string    `json:"transaction_id,omitempty"`
	CardLast4     string    `json:"card_last4,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
