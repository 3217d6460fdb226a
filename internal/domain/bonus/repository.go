package bonus

import "context"

type RuleRepository interface {
	Create(ctx context.Context, rule Rule) (Rule, error)
	GetByID(ctx context.Context, id string) (Rule, error)
	// List returns all rules ordered by creation, the order the
	// evaluator reports awards in.
	List(ctx context.Context) ([]Rule, error)
	Update(ctx context.Context, req UpdateRuleRequest) error
	Delete(ctx context.Context, id string) error
}
