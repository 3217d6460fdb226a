package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/vitalfit/vitalfit-backend-go/internal/domain/commission"
	"github.com/vitalfit/vitalfit-backend-go/internal/pkg/database"
)

type tierRepository struct {
	db *database.DB
}

func NewTierRepository(db *database.DB) commission.TierRepository {
	return &tierRepository{db: db}
}

const tierColumns = `
	r.id, r.min_revenue, r.max_revenue, r.commission_per_session,
	r.monthly_commission, r.center_id, r.position_id, r.effective_date,
	r.description, r.is_active, r.created_at, r.updated_at,
	p.name AS position_name, c.name AS center_name
`

const tierJoins = `
	FROM commission_rates r
	LEFT JOIN positions p ON p.id = r.position_id
	LEFT JOIN centers c ON c.id = r.center_id
`

func scanTier(row pgx.Row) (commission.Tier, error) {
	var t commission.Tier
	err := row.Scan(
		&t.ID, &t.MinRevenue, &t.MaxRevenue, &t.CommissionPerSession,
		&t.MonthlyCommission, &t.CenterID, &t.PositionID, &t.EffectiveDate,
		&t.Description, &t.IsActive, &t.CreatedAt, &t.UpdatedAt,
		&t.PositionName, &t.CenterName,
	)
	return t, err
}

func (r *tierRepository) Create(ctx context.Context, tier commission.Tier) (commission.Tier, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO commission_rates (
			id, min_revenue, max_revenue, commission_per_session,
			monthly_commission, center_id, position_id, effective_date,
			description, is_active
		) VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		tier.MinRevenue, tier.MaxRevenue, tier.CommissionPerSession,
		tier.MonthlyCommission, tier.CenterID, tier.PositionID,
		tier.EffectiveDate, tier.Description, tier.IsActive,
	).Scan(&tier.ID, &tier.CreatedAt, &tier.UpdatedAt)
	if err != nil {
		return commission.Tier{}, fmt.Errorf("failed to create commission tier: %w", err)
	}
	return tier, nil
}

func (r *tierRepository) GetByID(ctx context.Context, id string) (commission.Tier, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + tierColumns + tierJoins + ` WHERE r.id = $1`

	t, err := scanTier(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return commission.Tier{}, commission.ErrTierNotFound
		}
		return commission.Tier{}, fmt.Errorf("failed to get commission tier: %w", err)
	}
	return t, nil
}

func (r *tierRepository) List(ctx context.Context, filter commission.TierFilter) ([]commission.Tier, error) {
	q := GetQuerier(ctx, r.db)

	var conditions []string
	var args []interface{}
	arg := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	// Scope filters include the wildcard (NULL) tiers.
	if filter.PositionID != nil {
		placeholder := arg(*filter.PositionID)
		conditions = append(conditions, "(r.position_id = "+placeholder+" OR r.position_id IS NULL)")
	}
	if filter.CenterID != nil {
		placeholder := arg(*filter.CenterID)
		conditions = append(conditions, "(r.center_id = "+placeholder+" OR r.center_id IS NULL)")
	}
	if filter.IsActive != nil {
		conditions = append(conditions, "r.is_active = "+arg(*filter.IsActive))
	}

	query := `SELECT ` + tierColumns + tierJoins
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY r.min_revenue ASC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list commission tiers: %w", err)
	}
	defer rows.Close()

	var tiers []commission.Tier
	for rows.Next() {
		t, err := scanTier(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan commission tier: %w", err)
		}
		tiers = append(tiers, t)
	}
	return tiers, rows.Err()
}

func (r *tierRepository) ListActive(ctx context.Context) ([]commission.Tier, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + tierColumns + tierJoins + `
		WHERE r.is_active = TRUE
		ORDER BY r.min_revenue ASC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list active commission tiers: %w", err)
	}
	defer rows.Close()

	var tiers []commission.Tier
	for rows.Next() {
		t, err := scanTier(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan commission tier: %w", err)
		}
		tiers = append(tiers, t)
	}
	return tiers, rows.Err()
}

func (r *tierRepository) Update(ctx context.Context, req commission.UpdateTierRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE commission_rates SET
			min_revenue = COALESCE($2, min_revenue),
			max_revenue = COALESCE($3, max_revenue),
			commission_per_session = COALESCE($4, commission_per_session),
			monthly_commission = COALESCE($5, monthly_commission),
			description = COALESCE($6, description),
			is_active = COALESCE($7, is_active),
			updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		req.ID, req.MinRevenue, req.MaxRevenue, req.CommissionPerSession,
		req.MonthlyCommission, req.Description, req.IsActive,
	)
	if err != nil {
		return fmt.Errorf("failed to update commission tier: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return commission.ErrTierNotFound
	}
	return nil
}

func (r *tierRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM commission_rates WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete commission tier: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return commission.ErrTierNotFound
	}
	return nil
}
