package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/vitalfit/vitalfit-backend-go/internal/domain/bonus"
	"github.com/vitalfit/vitalfit-backend-go/internal/pkg/database"
)

type ruleRepository struct {
	db *database.DB
}

func NewRuleRepository(db *database.DB) bonus.RuleRepository {
	return &ruleRepository{db: db}
}

const ruleColumns = `
	id, name, target_type, threshold_amount, achievement_count,
	bonus_amount, before_11days, created_at, updated_at
`

func scanRule(row pgx.Row) (bonus.Rule, error) {
	var rule bonus.Rule
	err := row.Scan(
		&rule.ID, &rule.Name, &rule.TargetType, &rule.ThresholdAmount,
		&rule.AchievementCount, &rule.BonusAmount, &rule.Before11Days,
		&rule.CreatedAt, &rule.UpdatedAt,
	)
	return rule, err
}

func (r *ruleRepository) Create(ctx context.Context, rule bonus.Rule) (bonus.Rule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO bonus_rules (
			id, name, target_type, threshold_amount, achievement_count,
			bonus_amount, before_11days
		) VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		rule.Name, rule.TargetType, rule.ThresholdAmount,
		rule.AchievementCount, rule.BonusAmount, rule.Before11Days,
	).Scan(&rule.ID, &rule.CreatedAt, &rule.UpdatedAt)
	if err != nil {
		return bonus.Rule{}, fmt.Errorf("failed to create bonus rule: %w", err)
	}
	return rule, nil
}

func (r *ruleRepository) GetByID(ctx context.Context, id string) (bonus.Rule, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + ruleColumns + ` FROM bonus_rules WHERE id = $1`

	rule, err := scanRule(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return bonus.Rule{}, bonus.ErrRuleNotFound
		}
		return bonus.Rule{}, fmt.Errorf("failed to get bonus rule: %w", err)
	}
	return rule, nil
}

func (r *ruleRepository) List(ctx context.Context) ([]bonus.Rule, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + ruleColumns + ` FROM bonus_rules ORDER BY created_at ASC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list bonus rules: %w", err)
	}
	defer rows.Close()

	var rules []bonus.Rule
	for rows.Next() {
		rule, err := scanRule(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bonus rule: %w", err)
		}
		rules = append(rules, rule)
	}
	return rules, rows.Err()
}

func (r *ruleRepository) Update(ctx context.Context, req bonus.UpdateRuleRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE bonus_rules SET
			name = COALESCE($2, name),
			threshold_amount = COALESCE($3, threshold_amount),
			achievement_count = COALESCE($4, achievement_count),
			bonus_amount = COALESCE($5, bonus_amount),
			before_11days = COALESCE($6, before_11days),
			updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		req.ID, req.Name, req.ThresholdAmount, req.AchievementCount,
		req.BonusAmount, req.Before11Days,
	)
	if err != nil {
		return fmt.Errorf("failed to update bonus rule: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return bonus.ErrRuleNotFound
	}
	return nil
}

func (r *ruleRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM bonus_rules WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete bonus rule: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return bonus.ErrRuleNotFound
	}
	return nil
}
