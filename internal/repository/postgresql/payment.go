package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/vitalfit/vitalfit-backend-go/internal/domain/payment"
	"github.com/vitalfit/vitalfit-backend-go/internal/pkg/database"
)

type paymentRepository struct {
	db *database.DB
}

func NewPaymentRepository(db *database.DB) payment.PaymentRepository {
	return &paymentRepository{db: db}
}

const paymentColumns = `
	p.id, p.member_id, p.trainer_id, p.center_id, p.payment_amount,
	p.session_count, p.session_price, p.payment_date, p.payment_method,
	p.notes, p.created_at, p.updated_at, m.name AS member_name
`

const paymentJoins = `
	FROM payments p
	LEFT JOIN members m ON m.id = p.member_id
`

func scanPayment(row pgx.Row) (payment.Record, error) {
	var p payment.Record
	err := row.Scan(
		&p.ID, &p.MemberID, &p.TrainerID, &p.CenterID, &p.PaymentAmount,
		&p.SessionCount, &p.SessionPrice, &p.PaymentDate, &p.PaymentMethod,
		&p.Notes, &p.CreatedAt, &p.UpdatedAt, &p.MemberName,
	)
	return p, err
}

func (r *paymentRepository) Create(ctx context.Context, record payment.Record) (payment.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payments (
			id, member_id, trainer_id, center_id, payment_amount,
			session_count, session_price, payment_date, payment_method, notes
		) VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		record.MemberID, record.TrainerID, record.CenterID, record.PaymentAmount,
		record.SessionCount, record.SessionPrice, record.PaymentDate,
		record.PaymentMethod, record.Notes,
	).Scan(&record.ID, &record.CreatedAt, &record.UpdatedAt)
	if err != nil {
		return payment.Record{}, fmt.Errorf("failed to create payment: %w", err)
	}
	return record, nil
}

func (r *paymentRepository) GetByID(ctx context.Context, id string) (payment.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + paymentColumns + paymentJoins + ` WHERE p.id = $1`

	p, err := scanPayment(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payment.Record{}, payment.ErrPaymentNotFound
		}
		return payment.Record{}, fmt.Errorf("failed to get payment: %w", err)
	}
	return p, nil
}

func (r *paymentRepository) ListByTrainerMonth(ctx context.Context, trainerID string, year, month int) ([]payment.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + paymentColumns + paymentJoins + `
		WHERE p.trainer_id = $1
		  AND p.payment_date >= make_date($2, $3, 1)
		  AND p.payment_date < make_date($2, $3, 1) + INTERVAL '1 month'
		ORDER BY p.payment_date, p.created_at`

	return r.queryPayments(ctx, q, query, trainerID, year, month)
}

func (r *paymentRepository) ListByCenterMonth(ctx context.Context, centerID string, year, month int) ([]payment.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + paymentColumns + paymentJoins + `
		WHERE p.center_id = $1
		  AND p.payment_date >= make_date($2, $3, 1)
		  AND p.payment_date < make_date($2, $3, 1) + INTERVAL '1 month'
		ORDER BY p.payment_date, p.created_at`

	return r.queryPayments(ctx, q, query, centerID, year, month)
}

func (r *paymentRepository) queryPayments(ctx context.Context, q database.Querier, query string, args ...interface{}) ([]payment.Record, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	defer rows.Close()

	var records []payment.Record
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payment: %w", err)
		}
		records = append(records, p)
	}
	return records, rows.Err()
}

func (r *paymentRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM payments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete payment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payment.ErrPaymentNotFound
	}
	return nil
}
