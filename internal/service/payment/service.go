package payment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/vitalfit/vitalfit-backend-go/internal/domain/master/position"
	"github.com/vitalfit/vitalfit-backend-go/internal/domain/payment"
	"github.com/vitalfit/vitalfit-backend-go/internal/domain/settlement"
	"github.com/vitalfit/vitalfit-backend-go/internal/domain/user"
)

type PaymentServiceImpl struct {
	paymentRepo    payment.PaymentRepository
	settlementRepo settlement.SettlementRepository
	userRepo       user.UserRepository
	positionRepo   position.PositionRepository
}

func NewPaymentService(
	paymentRepo payment.PaymentRepository,
	settlementRepo settlement.SettlementRepository,
	userRepo user.UserRepository,
	positionRepo position.PositionRepository,
) payment.PaymentService {
	return &PaymentServiceImpl{
		paymentRepo:    paymentRepo,
		settlementRepo: settlementRepo,
		userRepo:       userRepo,
		positionRepo:   positionRepo,
	}
}

func (s *PaymentServiceImpl) CreatePayment(ctx context.Context, req payment.CreatePaymentRequest) (payment.PaymentResponse, error) {
	if err := req.Validate(); err != nil {
		return payment.PaymentResponse{}, err
	}

	paymentDate, _ := time.Parse(time.DateOnly, req.PaymentDate)

	created, err := s.paymentRepo.Create(ctx, payment.Record{
		MemberID:      req.MemberID,
		TrainerID:     req.TrainerID,
		CenterID:      req.CenterID,
		PaymentAmount: req.PaymentAmount,
		SessionCount:  req.SessionCount,
		SessionPrice:  req.SessionPrice,
		PaymentDate:   paymentDate,
		PaymentMethod: req.PaymentMethod,
		Notes:         req.Notes,
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // foreign_key_violation
			return payment.PaymentResponse{}, fmt.Errorf("unknown member, trainer or center: %w", err)
		}
		return payment.PaymentResponse{}, fmt.Errorf("failed to record payment: %w", err)
	}

	return toPaymentResponse(created), nil
}

func (s *PaymentServiceImpl) ListByTrainerMonth(ctx context.Context, trainerID string, year, month int) ([]payment.PaymentResponse, error) {
	records, err := s.paymentRepo.ListByTrainerMonth(ctx, trainerID, year, month)
	if err != nil {
		return nil, err
	}

	responses := make([]payment.PaymentResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, toPaymentResponse(record))
	}
	return responses, nil
}

func (s *PaymentServiceImpl) GetCarryover(ctx context.Context, trainerID string, year, month int) (payment.CarryoverResponse, error) {
	prevYear, prevMonth := year, month-1
	if prevMonth == 0 {
		prevYear, prevMonth = year-1, 12
	}

	resp := payment.CarryoverResponse{PrevYear: prevYear, PrevMonth: prevMonth}

	prev, err := s.settlementRepo.GetByUserPeriod(ctx, trainerID, prevYear, prevMonth)
	if err != nil {
		// No prior settlement means nothing carried over.
		if errors.Is(err, settlement.ErrSettlementNotFound) {
			return resp, nil
		}
		return payment.CarryoverResponse{}, err
	}

	resp.CarryoverAmount = prev.CarryoverFromPrev
	return resp, nil
}

func (s *PaymentServiceImpl) GetTrainerSalary(ctx context.Context, trainerID string) (payment.TrainerSalaryResponse, error) {
	trainer, err := s.userRepo.GetByID(ctx, trainerID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return payment.TrainerSalaryResponse{}, payment.ErrTrainerNotFound
		}
		return payment.TrainerSalaryResponse{}, err
	}

	resp := payment.TrainerSalaryResponse{
		TrainerID:   trainer.ID,
		TrainerName: trainer.Name,
	}

	if trainer.PositionID == nil {
		return resp, nil
	}

	pos, err := s.positionRepo.GetByID(ctx, *trainer.PositionID)
	if err != nil {
		if errors.Is(err, position.ErrPositionNotFound) {
			return resp, nil
		}
		return payment.TrainerSalaryResponse{}, err
	}

	resp.PositionName = pos.Name
	resp.BaseSalary = pos.BaseSalary
	return resp, nil
}

func (s *PaymentServiceImpl) DeletePayment(ctx context.Context, id string) error {
	if _, err := s.paymentRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.paymentRepo.Delete(ctx, id)
}

func toPaymentResponse(r payment.Record) payment.PaymentResponse {
	var memberName string
	if r.MemberName != nil {
		memberName = *r.MemberName
	}
	return payment.PaymentResponse{
		ID:            r.ID,
		MemberID:      r.MemberID,
		MemberName:    memberName,
		TrainerID:     r.TrainerID,
		CenterID:      r.CenterID,
		PaymentAmount: r.PaymentAmount,
		SessionCount:  r.SessionCount,
		SessionPrice:  r.SessionPrice,
		PaymentDate:   r.PaymentDate.Format(time.DateOnly),
		PaymentMethod: r.PaymentMethod,
		Notes:         r.Notes,
	}
}
