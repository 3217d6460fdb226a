package bonus

import (
	"context"
	"fmt"

	"github.com/vitalfit/vitalfit-backend-go/internal/domain/bonus"
)

type RuleServiceImpl struct {
	ruleRepo bonus.RuleRepository
}

func NewRuleService(ruleRepo bonus.RuleRepository) bonus.RuleService {
	return &RuleServiceImpl{ruleRepo: ruleRepo}
}

func (s *RuleServiceImpl) CreateRule(ctx context.Context, req bonus.CreateRuleRequest) (bonus.RuleResponse, error) {
	if err := req.Validate(); err != nil {
		return bonus.RuleResponse{}, err
	}

	created, err := s.ruleRepo.Create(ctx, bonus.Rule{
		Name:             req.Name,
		TargetType:       bonus.TargetType(req.TargetType),
		ThresholdAmount:  req.ThresholdAmount,
		AchievementCount: req.AchievementCount,
		BonusAmount:      req.BonusAmount,
		Before11Days:     req.Before11Days,
	})
	if err != nil {
		return bonus.RuleResponse{}, fmt.Errorf("failed to create bonus rule: %w", err)
	}

	return toRuleResponse(created), nil
}

func (s *RuleServiceImpl) ListRules(ctx context.Context) ([]bonus.RuleResponse, error) {
	rules, err := s.ruleRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]bonus.RuleResponse, 0, len(rules))
	for _, rule := range rules {
		responses = append(responses, toRuleResponse(rule))
	}
	return responses, nil
}

func (s *RuleServiceImpl) UpdateRule(ctx context.Context, req bonus.UpdateRuleRequest) error {
	if _, err := s.ruleRepo.GetByID(ctx, req.ID); err != nil {
		return err
	}
	return s.ruleRepo.Update(ctx, req)
}

func (s *RuleServiceImpl) DeleteRule(ctx context.Context, id string) error {
	if _, err := s.ruleRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.ruleRepo.Delete(ctx, id)
}

func toRuleResponse(r bonus.Rule) bonus.RuleResponse {
	return bonus.RuleResponse{
		ID:               r.ID,
		Name:             r.Name,
		TargetType:       string(r.TargetType),
		ThresholdAmount:  r.ThresholdAmount,
		AchievementCount: r.AchievementCount,
		BonusAmount:      r.BonusAmount,
		Before11Days:     r.Before11Days,
	}
}
