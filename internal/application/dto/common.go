package dto

import "strings"

// Envelope sobre uniforme de todas las respuestas JSON de la API.
// Page/Limit/Total solo se rellenan en listados.
type Envelope struct {
	Success bool         `json:"success"`
	Data    interface{}  `json:"data,omitempty"`
	Message string       `json:"message,omitempty"`
	Errors  []FieldError `json:"errors,omitempty"`
	Page    int          `json:"page,omitempty"`
	Limit   int          `json:"limit,omitempty"`
	Total   *int64       `json:"total,omitempty"` // puntero: total=0 también debe serializarse
}

// FieldError mensaje de validación asociado a un campo concreto.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError error de validación con detalle por campo. El ErrorHandler
// central lo traduce a 400 con la lista de errores en el sobre.
type ValidationError struct {
	Fields []FieldError
}

// Error implementa error concatenando los mensajes por campo.
func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Field+": "+f.Message)
	}
	return "validación: " + strings.Join(msgs, "; ")
}

// NewValidationError construye un error de validación de un solo campo.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: []FieldError{{Field: field, Message: message}}}
}

// PageRequest paginación para listados (offset = (page-1)*limit).
type PageRequest struct {
	Page  int `query:"page"`
	Limit int `query:"limit"`
}

// Normalize aplica valores por defecto y topes.
func (p *PageRequest) Normalize() {
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.Limit <= 0 {
		p.Limit = 10
	}
	if p.Limit > 100 {
		p.Limit = 100
	}
}
