package settlement

import (
	"context"
	"errors"
	"fmt"

	"github.com/vitalfit/vitalfit-backend-go/internal/domain/bonus"
	"github.com/vitalfit/vitalfit-backend-go/internal/domain/commission"
	"github.com/vitalfit/vitalfit-backend-go/internal/domain/master/position"
	"github.com/vitalfit/vitalfit-backend-go/internal/domain/payment"
	"github.com/vitalfit/vitalfit-backend-go/internal/domain/ptsession"
	"github.com/vitalfit/vitalfit-backend-go/internal/domain/settlement"
	"github.com/vitalfit/vitalfit-backend-go/internal/domain/user"
	commissionsvc "github.com/vitalfit/vitalfit-backend-go/internal/service/commission"
)

type SettlementServiceImpl struct {
	settlementRepo settlement.SettlementRepository
	paymentRepo    payment.PaymentRepository
	sessionRepo    ptsession.SessionRepository
	tierRepo       commission.TierRepository
	ruleRepo       bonus.RuleRepository
	userRepo       user.UserRepository
	positionRepo   position.PositionRepository
}

func NewSettlementService(
	settlementRepo settlement.SettlementRepository,
	paymentRepo payment.PaymentRepository,
	sessionRepo ptsession.SessionRepository,
	tierRepo commission.TierRepository,
	ruleRepo bonus.RuleRepository,
	userRepo user.UserRepository,
	positionRepo position.PositionRepository,
) settlement.SettlementService {
	return &SettlementServiceImpl{
		settlementRepo: settlementRepo,
		paymentRepo:    paymentRepo,
		sessionRepo:    sessionRepo,
		tierRepo:       tierRepo,
		ruleRepo:       ruleRepo,
		userRepo:       userRepo,
		positionRepo:   positionRepo,
	}
}

func (s *SettlementServiceImpl) Generate(ctx context.Context, req settlement.GenerateSettlementRequest) (settlement.SettlementResponse, error) {
	if err := req.Validate(); err != nil {
		return settlement.SettlementResponse{}, err
	}

	trainer, err := s.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		return settlement.SettlementResponse{}, err
	}

	var baseSalary int64
	var positionID string
	if trainer.PositionID != nil {
		pos, err := s.positionRepo.GetByID(ctx, *trainer.PositionID)
		if err != nil && !errors.Is(err, position.ErrPositionNotFound) {
			return settlement.SettlementResponse{}, err
		}
		if err == nil {
			baseSalary = pos.BaseSalary
			positionID = pos.ID
		}
	}

	payments, err := s.paymentRepo.ListByTrainerMonth(ctx, req.UserID, req.Year, req.Month)
	if err != nil {
		return settlement.SettlementResponse{}, fmt.Errorf("failed to load payments: %w", err)
	}

	buckets := AggregateRevenue(payments, req.Year, req.Month)

	var actualRevenue int64
	for _, p := range payments {
		actualRevenue += p.PaymentAmount
	}

	carryover, err := s.carryoverFromPrev(ctx, req.UserID, req.Year, req.Month)
	if err != nil {
		return settlement.SettlementResponse{}, err
	}
	totalRevenue := actualRevenue + carryover

	counts, err := s.sessionRepo.CountByTrainerMonth(ctx, req.UserID, req.Year, req.Month)
	if err != nil {
		return settlement.SettlementResponse{}, fmt.Errorf("failed to count sessions: %w", err)
	}

	tiers, err := s.tierRepo.ListActive(ctx)
	if err != nil {
		return settlement.SettlementResponse{}, fmt.Errorf("failed to load commission tiers: %w", err)
	}

	centerID := trainer.CenterID
	tier, err := commissionsvc.ResolveTier(totalRevenue, positionID, &centerID, tiers)
	tierResolved := err == nil
	if err != nil && !errors.Is(err, commission.ErrNoMatchingTier) {
		return settlement.SettlementResponse{}, err
	}

	var sessionCommission, monthlyCommission int64
	if tierResolved {
		sessionCommission = int64(counts.Regular) * tier.CommissionPerSession
		monthlyCommission = tier.MonthlyCommission
	}

	rules, err := s.ruleRepo.List(ctx)
	if err != nil {
		return settlement.SettlementResponse{}, fmt.Errorf("failed to load bonus rules: %w", err)
	}
	eval := EvaluateBonuses(buckets, rules, req.Year, req.Month)

	result := ComposeSettlement(settlement.ComposeInput{
		BaseSalary:             baseSalary,
		SessionCommissionTotal: sessionCommission,
		MonthlyCommission:      monthlyCommission,
		TierResolved:           tierResolved,
		BonusTotal:             eval.TotalBonus,
		CarryoverFromPrev:      carryover,
	})

	row := settlement.MonthlySettlement{
		UserID:            req.UserID,
		CenterID:          trainer.CenterID,
		SettlementYear:    req.Year,
		SettlementMonth:   req.Month,
		ActualRevenue:     actualRevenue,
		CarryoverFromPrev: carryover,
		TotalRevenue:      totalRevenue,
		SettlementRevenue: totalRevenue,
		RemainingAmount:   0,
		BaseSalary:        result.BaseSalary,
		RegularPTCount:    counts.Regular,
		FreePTCount:       counts.Free,
		PTCommissionTotal: result.SessionCommissionTotal,
		MonthlyCommission: result.MonthlyCommission,
		Bonus:             result.BonusTotal,
		TotalSettlement:   result.TotalSettlement,
		Status:            settlement.StatusDraft,
	}

	if err := s.settlementRepo.Upsert(ctx, &row); err != nil {
		return settlement.SettlementResponse{}, fmt.Errorf("failed to save settlement: %w", err)
	}

	row.TrainerName = &trainer.Name
	return settlement.ToResponseWithTier(row, tierResolved), nil
}

// carryoverFromPrev reads the prior month's recorded carryover; a
// missing prior settlement means zero, not an error.
func (s *SettlementServiceImpl) carryoverFromPrev(ctx context.Context, userID string, year, month int) (int64, error) {
	prevYear, prevMonth := year, month-1
	if prevMonth == 0 {
		prevYear, prevMonth = year-1, 12
	}

	prev, err := s.settlementRepo.GetByUserPeriod(ctx, userID, prevYear, prevMonth)
	if err != nil {
		if errors.Is(err, settlement.ErrSettlementNotFound) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to load previous settlement: %w", err)
	}
	return prev.CarryoverFromPrev, nil
}

func (s *SettlementServiceImpl) GetByID(ctx context.Context, id string) (settlement.SettlementResponse, error) {
	row, err := s.settlementRepo.GetByID(ctx, id)
	if err != nil {
		return settlement.SettlementResponse{}, err
	}
	return settlement.ToResponse(row), nil
}

func (s *SettlementServiceImpl) GetByUserPeriod(ctx context.Context, userID string, year, month int) (settlement.SettlementResponse, error) {
	row, err := s.settlementRepo.GetByUserPeriod(ctx, userID, year, month)
	if err != nil {
		return settlement.SettlementResponse{}, err
	}
	return settlement.ToResponse(row), nil
}

func (s *SettlementServiceImpl) List(ctx context.Context, q settlement.ListSettlementsQuery) ([]settlement.SettlementResponse, error) {
	rows, err := s.settlementRepo.List(ctx, q)
	if err != nil {
		return nil, err
	}

	responses := make([]settlement.SettlementResponse, 0, len(rows))
	for _, row := range rows {
		responses = append(responses, settlement.ToResponse(row))
	}
	return responses, nil
}

// validTransitions: a settlement only moves forward through the
// approval workflow, and a paid settlement is immutable.
var validTransitions = map[settlement.Status]settlement.Status{
	settlement.StatusDraft:     settlement.StatusConfirmed,
	settlement.StatusConfirmed: settlement.StatusPaid,
}

func (s *SettlementServiceImpl) UpdateStatus(ctx context.Context, req settlement.UpdateStatusRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	current, err := s.settlementRepo.GetByID(ctx, req.ID)
	if err != nil {
		return err
	}

	next := settlement.Status(req.Status)
	if current.Status == settlement.StatusPaid {
		return settlement.ErrAlreadyPaid
	}
	if validTransitions[current.Status] != next {
		return settlement.ErrInvalidTransition
	}

	return s.settlementRepo.UpdateStatus(ctx, req.ID, next)
}

func (s *SettlementServiceImpl) UpdateNotes(ctx context.Context, req settlement.UpdateNotesRequest) error {
	if _, err := s.settlementRepo.GetByID(ctx, req.ID); err != nil {
		return err
	}
	return s.settlementRepo.UpdateNotes(ctx, req.ID, req.Notes)
}

func (s *SettlementServiceImpl) Delete(ctx context.Context, id string) error {
	current, err := s.settlementRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if current.Status == settlement.StatusPaid {
		return settlement.ErrAlreadyPaid
	}
	return s.settlementRepo.Delete(ctx, id)
}

func (s *SettlementServiceImpl) CalculateBonus(ctx context.Context, userID string, year, month int) (settlement.BonusCalculationResponse, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return settlement.BonusCalculationResponse{}, err
	}

	payments, err := s.paymentRepo.ListByTrainerMonth(ctx, userID, year, month)
	if err != nil {
		return settlement.BonusCalculationResponse{}, fmt.Errorf("failed to load payments: %w", err)
	}

	rules, err := s.ruleRepo.List(ctx)
	if err != nil {
		return settlement.BonusCalculationResponse{}, fmt.Errorf("failed to load bonus rules: %w", err)
	}

	buckets := AggregateRevenue(payments, year, month)
	eval := EvaluateBonuses(buckets, rules, year, month)

	return settlement.BonusCalculationResponse{
		UserID:        userID,
		Year:          year,
		Month:         month,
		DailyRevenue:  buckets.Daily,
		WeeklyRevenue: buckets.Weekly,
		TotalBonus:    eval.TotalBonus,
		Details:       eval.Details,
	}, nil
}
