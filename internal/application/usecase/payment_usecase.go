package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Taller-api/internal/application/dto"
	"github.com/jhoicas/Taller-api/internal/domain"
	"github.com/jhoicas/Taller-api/internal/domain/entity"
	"github.com/jhoicas/Taller-api/internal/domain/repository"
)

// PaymentUseCase casos de uso CRUD para pagos.
type PaymentUseCase struct {
	repo repository.PaymentRepository
}

// NewPaymentUseCase construye el caso de uso.
func NewPaymentUseCase(repo repository.PaymentRepository) *PaymentUseCase {
	return &PaymentUseCase{repo: repo}
}

// Create registra un cobro. Para method=card sin transaction_id se genera
// uno (TXN-<uuid>); de la tarjeta solo se conserva el sufijo.
func (uc *PaymentUseCase) Create(ctx context.Context, in dto.CreatePaymentRequest) (*dto.PaymentResponse, error) {
	var errs []dto.FieldError
	if in.Amount <= 0 {
		errs = append(errs, dto.FieldError{Field: "amount", Message: "debe ser mayor que cero"})
	}
	if in.Method != entity.PaymentMethodCard && in.Method != entity.PaymentMethodCash {
		errs = append(errs, dto.FieldError{Field: "method", Message: "debe ser card o cash"})
	}
	status := in.Status
	if status == "" {
		status = entity.PaymentCompleted
	}
	if status != entity.PaymentCompleted && status != entity.PaymentPending {
		errs = append(errs, dto.FieldError{Field: "status", Message: "debe ser completed o pending"})
	}
	if errs != nil {
		return nil, &dto.ValidationError{Fields: errs}
	}
	date := in.Date
	if date.IsZero() {
		date = time.Now()
	}
	txID := in.TransactionID
	if in.Method == entity.PaymentMethodCard && txID == "" {
		txID = "TXN-" + uuid.New().String()
	}
	last4 := in.CardLast4
	if len(last4) > 4 {
		last4 = last4[len(last4)-4:]
	}
	now := time.Now()
	p := &entity.Payment{
		JobNumber:     in.JobNumber,
		CarNumber:     in.CarNumber,
		Amount:        in.Amount,
		Method:        in.Method,
		Description:   in.Description,
		Date:          date,
		Status:        status,
		TransactionID: txID,
		CardLast4:     last4,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return toPaymentResponse(p), nil
}

// GetByID obtiene un pago por ID.
func (uc *PaymentUseCase) GetByID(ctx context.Context, id string) (*dto.PaymentResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return toPaymentResponse(p), nil
}

// List lista pagos con filtros opcionales por estado y método.
func (uc *PaymentUseCase) List(ctx context.Context, status, method string, page, limit int) ([]dto.PaymentResponse, int64, error) {
	ps, total, err := uc.repo.List(ctx, status, method, page, limit)
	if err != nil {
		return nil, 0, err
	}
	items := make([]dto.PaymentResponse, 0, len(ps))
	for _, p := range ps {
		items = append(items, *toPaymentResponse(p))
	}
	return items, total, nil
}

// Update actualización parcial: solo cambian los campos provistos.
func (uc *PaymentUseCase) Update(ctx context.Context, id string, in dto.UpdatePaymentRequest) (*dto.PaymentResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if in.Amount != nil {
		if *in.Amount <= 0 {
			return nil, dto.NewValidationError("amount", "debe ser mayor que cero")
		}
		p.Amount = *in.Amount
	}
	if in.Method != nil {
		if *in.Method != entity.PaymentMethodCard && *in.Method != entity.PaymentMethodCash {
			return nil, dto.NewValidationError("method", "debe ser card o cash")
		}
		p.Method = *in.Method
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.Date != nil {
		p.Date = *in.Date
	}
	if in.Status != nil {
		if *in.Status != entity.PaymentCompleted && *in.Status != entity.PaymentPending {
			return nil, dto.NewValidationError("status", "debe ser completed o pending")
		}
		p.Status = *in.Status
	}
	p.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return toPaymentResponse(p), nil
}

// Delete elimina el pago.
func (uc *PaymentUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func toPaymentResponse(p *entity.Payment) *dto.PaymentResponse {
	if p == nil {
		return nil
	}
	return &dto.PaymentResponse{
		ID:            p.ID.Hex(),
		JobNumber:     p.JobNumber,
		CarNumber:     p.CarNumber,
		Amount:        p.Amount,
		Method:        p.Method,
		Description:   p.Description,
		Date:          p.Date,
		Status:        p.Status,
		TransactionID: p.TransactionID,
		CardLast4:     p.CardLast4,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
