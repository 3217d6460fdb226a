package payment

import "context"

// PaymentService defines business logic for the payments ledger
type PaymentService interface {
	// CreatePayment records a payment made by a member
	CreatePayment(ctx context.Context, req CreatePaymentRequest) (PaymentResponse, error)

	// ListByTrainerMonth lists a trainer's payments for a calendar month
	ListByTrainerMonth(ctx context.Context, trainerID string, year, month int) ([]PaymentResponse, error)

	// GetCarryover returns the previous month's carried-over revenue
	GetCarryover(ctx context.Context, trainerID string, year, month int) (CarryoverResponse, error)

	// GetTrainerSalary resolves a trainer's base salary from their position
	GetTrainerSalary(ctx context.Context, trainerID string) (TrainerSalaryResponse, error)

	// DeletePayment removes a mistakenly entered payment
	DeletePayment(ctx context.Context, id string) error
}
