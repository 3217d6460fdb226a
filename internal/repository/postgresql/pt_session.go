package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/vitalfit/vitalfit-backend-go/internal/domain/ptsession"
	"github.com/vitalfit/vitalfit-backend-go/internal/pkg/database"
)

type sessionRepository struct {
	db *database.DB
}

func NewSessionRepository(db *database.DB) ptsession.SessionRepository {
	return &sessionRepository{db: db}
}

const sessionColumns = `
	s.id, s.member_id, s.trainer_id, s.center_id, s.session_type,
	s.session_date, s.signature_data, s.signature_time, s.idempotency_key,
	s.notes, s.created_at, s.updated_at,
	m.name AS member_name, t.name AS trainer_name
`

const sessionJoins = `
	FROM pt_sessions s
	LEFT JOIN members m ON m.id = s.member_id
	LEFT JOIN users t ON t.id = s.trainer_id
`

func scanSession(row pgx.Row) (ptsession.Session, error) {
	var s ptsession.Session
	err := row.Scan(
		&s.ID, &s.MemberID, &s.TrainerID, &s.CenterID, &s.SessionType,
		&s.SessionDate, &s.SignatureData, &s.SignatureTime, &s.IdempotencyKey,
		&s.Notes, &s.CreatedAt, &s.UpdatedAt,
		&s.MemberName, &s.TrainerName,
	)
	return s, err
}

func (r *sessionRepository) Create(ctx context.Context, s *ptsession.Session) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO pt_sessions (
			id, member_id, trainer_id, center_id, session_type, session_date,
			signature_data, signature_time, idempotency_key, notes
		) VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		s.MemberID, s.TrainerID, s.CenterID, s.SessionType, s.SessionDate,
		s.SignatureData, s.SignatureTime, s.IdempotencyKey, s.Notes,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	return nil
}

func (r *sessionRepository) GetByID(ctx context.Context, id string) (ptsession.Session, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + sessionColumns + sessionJoins + ` WHERE s.id = $1`

	s, err := scanSession(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return ptsession.Session{}, ptsession.ErrSessionNotFound
		}
		return ptsession.Session{}, fmt.Errorf("failed to get session: %w", err)
	}
	return s, nil
}

func (r *sessionRepository) GetByIdempotencyKey(ctx context.Context, key string) (ptsession.Session, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + sessionColumns + sessionJoins + ` WHERE s.idempotency_key = $1`

	s, err := scanSession(q.QueryRow(ctx, query, key))
	if err != nil {
		if err == pgx.ErrNoRows {
			return ptsession.Session{}, ptsession.ErrSessionNotFound
		}
		return ptsession.Session{}, fmt.Errorf("failed to get session by idempotency key: %w", err)
	}
	return s, nil
}

func (r *sessionRepository) List(ctx context.Context, filter ptsession.ListSessionsQuery) ([]ptsession.Session, error) {
	q := GetQuerier(ctx, r.db)

	var conditions []string
	var args []interface{}
	arg := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.MemberID != nil {
		conditions = append(conditions, "s.member_id = "+arg(*filter.MemberID))
	}
	if filter.TrainerID != nil {
		conditions = append(conditions, "s.trainer_id = "+arg(*filter.TrainerID))
	}
	if filter.CenterID != nil {
		conditions = append(conditions, "s.center_id = "+arg(*filter.CenterID))
	}
	if filter.Year != 0 && filter.Month != 0 {
		yearArg := arg(filter.Year)
		monthArg := arg(filter.Month)
		conditions = append(conditions,
			"s.session_date >= make_date("+yearArg+", "+monthArg+", 1)",
			"s.session_date < make_date("+yearArg+", "+monthArg+", 1) + INTERVAL '1 month'",
		)
	}

	query := `SELECT ` + sessionColumns + sessionJoins
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY s.session_date DESC, s.created_at DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []ptsession.Session
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}

func (r *sessionRepository) CountByTrainerMonth(ctx context.Context, trainerID string, year, month int) (ptsession.MonthlyCounts, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COUNT(*) FILTER (WHERE session_type = 'regular') AS regular_count,
			COUNT(*) FILTER (WHERE session_type = 'free') AS free_count
		FROM pt_sessions
		WHERE trainer_id = $1
		  AND session_date >= make_date($2, $3, 1)
		  AND session_date < make_date($2, $3, 1) + INTERVAL '1 month'
	`

	var counts ptsession.MonthlyCounts
	err := q.QueryRow(ctx, query, trainerID, year, month).Scan(&counts.Regular, &counts.Free)
	if err != nil {
		return ptsession.MonthlyCounts{}, fmt.Errorf("failed to count sessions: %w", err)
	}
	return counts, nil
}

func (r *sessionRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM pt_sessions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ptsession.ErrSessionNotFound
	}
	return nil
}
