package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/vitalfit/vitalfit-backend-go/internal/domain/settlement"
	"github.com/vitalfit/vitalfit-backend-go/internal/pkg/database"
)

type settlementRepository struct {
	db *database.DB
}

func NewSettlementRepository(db *database.DB) settlement.SettlementRepository {
	return &settlementRepository{db: db}
}

const settlementColumns = `
	s.id, s.user_id, s.center_id, s.settlement_year, s.settlement_month,
	s.actual_revenue, s.carryover_from_prev, s.total_revenue,
	s.settlement_revenue, s.remaining_amount, s.base_salary,
	s.regular_pt_count, s.free_pt_count, s.pt_commission_total,
	s.monthly_commission, s.bonus, s.total_settlement, s.status,
	s.notes, s.created_at, s.updated_at,
	u.name AS trainer_name, c.name AS center_name
`

const settlementJoins = `
	FROM monthly_settlements s
	LEFT JOIN users u ON u.id = s.user_id
	LEFT JOIN centers c ON c.id = s.center_id
`

func scanSettlement(row pgx.Row) (settlement.MonthlySettlement, error) {
	var s settlement.MonthlySettlement
	err := row.Scan(
		&s.ID, &s.UserID, &s.CenterID, &s.SettlementYear, &s.SettlementMonth,
		&s.ActualRevenue, &s.CarryoverFromPrev, &s.TotalRevenue,
		&s.SettlementRevenue, &s.RemainingAmount, &s.BaseSalary,
		&s.RegularPTCount, &s.FreePTCount, &s.PTCommissionTotal,
		&s.MonthlyCommission, &s.Bonus, &s.TotalSettlement, &s.Status,
		&s.Notes, &s.CreatedAt, &s.UpdatedAt,
		&s.TrainerName, &s.CenterName,
	)
	return s, err
}

// Upsert replaces the settlement for (user_id, settlement_year,
// settlement_month). Regeneration overwrites all calculated fields but
// keeps the existing row id, status and notes.
func (r *settlementRepository) Upsert(ctx context.Context, s *settlement.MonthlySettlement) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO monthly_settlements (
			id, user_id, center_id, settlement_year, settlement_month,
			actual_revenue, carryover_from_prev, total_revenue,
			settlement_revenue, remaining_amount, base_salary,
			regular_pt_count, free_pt_count, pt_commission_total,
			monthly_commission, bonus, total_settlement, status, notes
		) VALUES (
			gen_random_uuid(), $1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
			$11, $12, $13, $14, $15, $16, $17, $18
		)
		ON CONFLICT (user_id, settlement_year, settlement_month) DO UPDATE SET
			center_id = EXCLUDED.center_id,
			actual_revenue = EXCLUDED.actual_revenue,
			carryover_from_prev = EXCLUDED.carryover_from_prev,
			total_revenue = EXCLUDED.total_revenue,
			settlement_revenue = EXCLUDED.settlement_revenue,
			remaining_amount = EXCLUDED.remaining_amount,
			base_salary = EXCLUDED.base_salary,
			regular_pt_count = EXCLUDED.regular_pt_count,
			free_pt_count = EXCLUDED.free_pt_count,
			pt_commission_total = EXCLUDED.pt_commission_total,
			monthly_commission = EXCLUDED.monthly_commission,
			bonus = EXCLUDED.bonus,
			total_settlement = EXCLUDED.total_settlement,
			updated_at = NOW()
		RETURNING id, status, notes, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		s.UserID, s.CenterID, s.SettlementYear, s.SettlementMonth,
		s.ActualRevenue, s.CarryoverFromPrev, s.TotalRevenue,
		s.SettlementRevenue, s.RemainingAmount, s.BaseSalary,
		s.RegularPTCount, s.FreePTCount, s.PTCommissionTotal,
		s.MonthlyCommission, s.Bonus, s.TotalSettlement, s.Status, s.Notes,
	).Scan(&s.ID, &s.Status, &s.Notes, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert settlement: %w", err)
	}
	return nil
}

func (r *settlementRepository) GetByID(ctx context.Context, id string) (settlement.MonthlySettlement, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + settlementColumns + settlementJoins + ` WHERE s.id = $1`

	s, err := scanSettlement(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return settlement.MonthlySettlement{}, settlement.ErrSettlementNotFound
		}
		return settlement.MonthlySettlement{}, fmt.Errorf("failed to get settlement: %w", err)
	}
	return s, nil
}

func (r *settlementRepository) GetByUserPeriod(ctx context.Context, userID string, year, month int) (settlement.MonthlySettlement, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + settlementColumns + settlementJoins + `
		WHERE s.user_id = $1 AND s.settlement_year = $2 AND s.settlement_month = $3`

	s, err := scanSettlement(q.QueryRow(ctx, query, userID, year, month))
	if err != nil {
		if err == pgx.ErrNoRows {
			return settlement.MonthlySettlement{}, settlement.ErrSettlementNotFound
		}
		return settlement.MonthlySettlement{}, fmt.Errorf("failed to get settlement: %w", err)
	}
	return s, nil
}

func (r *settlementRepository) List(ctx context.Context, query settlement.ListSettlementsQuery) ([]settlement.MonthlySettlement, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"s.settlement_year = $1", "s.settlement_month = $2"}
	args := []interface{}{query.Year, query.Month}
	arg := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if query.CenterID != nil {
		conditions = append(conditions, "s.center_id = "+arg(*query.CenterID))
	}
	if query.UserID != nil {
		conditions = append(conditions, "s.user_id = "+arg(*query.UserID))
	}
	if query.Status != nil {
		conditions = append(conditions, "s.status = "+arg(*query.Status))
	}

	sqlQuery := `SELECT ` + settlementColumns + settlementJoins +
		" WHERE " + strings.Join(conditions, " AND ") +
		" ORDER BY c.name, u.name"

	rows, err := q.Query(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list settlements: %w", err)
	}
	defer rows.Close()

	var settlements []settlement.MonthlySettlement
	for rows.Next() {
		s, err := scanSettlement(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan settlement: %w", err)
		}
		settlements = append(settlements, s)
	}
	return settlements, rows.Err()
}

func (r *settlementRepository) UpdateStatus(ctx context.Context, id string, status settlement.Status) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE monthly_settlements SET status = $2, updated_at = NOW() WHERE id = $1`

	tag, err := q.Exec(ctx, query, id, status)
	if err != nil {
		return fmt.Errorf("failed to update settlement status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return settlement.ErrSettlementNotFound
	}
	return nil
}

func (r *settlementRepository) UpdateNotes(ctx context.Context, id string, notes *string) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE monthly_settlements SET notes = $2, updated_at = NOW() WHERE id = $1`

	tag, err := q.Exec(ctx, query, id, notes)
	if err != nil {
		return fmt.Errorf("failed to update settlement notes: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return settlement.ErrSettlementNotFound
	}
	return nil
}

func (r *settlementRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM monthly_settlements WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete settlement: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return settlement.ErrSettlementNotFound
	}
	return nil
}
