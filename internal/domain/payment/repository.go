package payment

import "context"

type PaymentRepository interface {
	Create(ctx context.Context, record Record) (Record, error)
	GetByID(ctx context.Context, id string) (Record, error)
	// ListByTrainerMonth returns all payments for a trainer whose
	// payment_date falls within the given calendar month, ordered by date.
	ListByTrainerMonth(ctx context.Context, trainerID string, year, month int) ([]Record, error)
	ListByCenterMonth(ctx context.Context, centerID string, year, month int) ([]Record, error)
	Delete(ctx context.Context, id string) error
}
