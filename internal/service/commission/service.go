package commission

import (
	"errors"
	"fmt"
	"time"

	"context"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/vitalfit/vitalfit-backend-go/internal/domain/commission"
)

type TierServiceImpl struct {
	tierRepo commission.TierRepository
}

func NewTierService(tierRepo commission.TierRepository) commission.TierService {
	return &TierServiceImpl{tierRepo: tierRepo}
}

func (s *TierServiceImpl) CreateTier(ctx context.Context, req commission.CreateTierRequest) (commission.TierResponse, error) {
	if err := req.Validate(); err != nil {
		return commission.TierResponse{}, err
	}

	effectiveDate, _ := time.Parse(time.DateOnly, req.EffectiveDate)

	created, err := s.tierRepo.Create(ctx, commission.Tier{
		MinRevenue:           req.MinRevenue,
		MaxRevenue:           req.MaxRevenue,
		CommissionPerSession: req.CommissionPerSession,
		MonthlyCommission:    req.MonthlyCommission,
		CenterID:             req.CenterID,
		PositionID:           req.PositionID,
		EffectiveDate:        effectiveDate,
		Description:          req.Description,
		IsActive:             true,
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // foreign_key_violation
			return commission.TierResponse{}, fmt.Errorf("unknown center or position: %w", err)
		}
		return commission.TierResponse{}, fmt.Errorf("failed to create commission tier: %w", err)
	}

	return toTierResponse(created), nil
}

func (s *TierServiceImpl) GetTier(ctx context.Context, id string) (commission.TierResponse, error) {
	tier, err := s.tierRepo.GetByID(ctx, id)
	if err != nil {
		return commission.TierResponse{}, err
	}
	return toTierResponse(tier), nil
}

func (s *TierServiceImpl) ListTiers(ctx context.Context, filter commission.TierFilter) ([]commission.TierResponse, error) {
	tiers, err := s.tierRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]commission.TierResponse, 0, len(tiers))
	for _, tier := range tiers {
		responses = append(responses, toTierResponse(tier))
	}
	return responses, nil
}

func (s *TierServiceImpl) UpdateTier(ctx context.Context, req commission.UpdateTierRequest) error {
	if _, err := s.tierRepo.GetByID(ctx, req.ID); err != nil {
		return err
	}
	return s.tierRepo.Update(ctx, req)
}

func (s *TierServiceImpl) DeleteTier(ctx context.Context, id string) error {
	if _, err := s.tierRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.tierRepo.Delete(ctx, id)
}

func (s *TierServiceImpl) ResolveByRevenue(ctx context.Context, q commission.ResolveTierQuery) (commission.TierResponse, error) {
	tiers, err := s.tierRepo.ListActive(ctx)
	if err != nil {
		return commission.TierResponse{}, fmt.Errorf("failed to load commission tiers: %w", err)
	}

	tier, err := ResolveTier(q.TotalRevenue, q.PositionID, q.CenterID, tiers)
	if err != nil {
		return commission.TierResponse{}, err
	}
	return toTierResponse(tier), nil
}

func toTierResponse(t commission.Tier) commission.TierResponse {
	return commission.TierResponse{
		ID:                   t.ID,
		MinRevenue:           t.MinRevenue,
		MaxRevenue:           t.MaxRevenue,
		CommissionPerSession: t.CommissionPerSession,
		MonthlyCommission:    t.MonthlyCommission,
		CenterID:             t.CenterID,
		CenterName:           t.CenterName,
		PositionID:           t.PositionID,
		PositionName:         t.PositionName,
		EffectiveDate:        t.EffectiveDate.Format(time.DateOnly),
		Description:          t.Description,
		IsActive:             t.IsActive,
	}
}
