package bonus

import "context"

// RuleService defines business logic for bonus rules
type RuleService interface {
	CreateRule(ctx context.Context, req CreateRuleRequest) (RuleResponse, error)
	ListRules(ctx context.Context) ([]RuleResponse, error)
	UpdateRule(ctx context.Context, req UpdateRuleRequest) error
	DeleteRule(ctx context.Context, id string) error
}
