package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/vitalfit/vitalfit-backend-go/internal/domain/member"
	"github.com/vitalfit/vitalfit-backend-go/internal/pkg/database"
)

type memberRepository struct {
	db *database.DB
}

func NewMemberRepository(db *database.DB) member.MemberRepository {
	return &memberRepository{db: db}
}

const memberColumns = `
	m.id, m.name, m.phone, m.center_id, m.trainer_id, m.join_date,
	m.expire_date, m.total_sessions, m.used_sessions, m.free_sessions,
	m.memo, m.status, m.created_at, m.updated_at,
	t.name AS trainer_name, c.name AS center_name
`

const memberJoins = `
	FROM members m
	LEFT JOIN users t ON t.id = m.trainer_id
	LEFT JOIN centers c ON c.id = m.center_id
`

func scanMember(row pgx.Row) (member.Member, error) {
	var m member.Member
	err := row.Scan(
		&m.ID, &m.Name, &m.Phone, &m.CenterID, &m.TrainerID, &m.JoinDate,
		&m.ExpireDate, &m.TotalSessions, &m.UsedSessions, &m.FreeSessions,
		&m.Memo, &m.Status, &m.CreatedAt, &m.UpdatedAt,
		&m.TrainerName, &m.CenterName,
	)
	return m, err
}

func (r *memberRepository) Create(ctx context.Context, m *member.Member) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO members (
			id, name, phone, center_id, trainer_id, join_date, expire_date,
			total_sessions, used_sessions, free_sessions, memo, status
		) VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6, $7, 0, $8, $9, $10)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		m.Name, m.Phone, m.CenterID, m.TrainerID, m.JoinDate, m.ExpireDate,
		m.TotalSessions, m.FreeSessions, m.Memo, m.Status,
	).Scan(&m.ID, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create member: %w", err)
	}
	return nil
}

func (r *memberRepository) GetByID(ctx context.Context, id string) (member.Member, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + memberColumns + memberJoins + ` WHERE m.id = $1`

	m, err := scanMember(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return member.Member{}, member.ErrMemberNotFound
		}
		return member.Member{}, fmt.Errorf("failed to get member: %w", err)
	}
	return m, nil
}

func (r *memberRepository) List(ctx context.Context, filter member.ListMembersQuery) ([]member.Member, error) {
	q := GetQuerier(ctx, r.db)

	var conditions []string
	var args []interface{}
	arg := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.CenterID != nil {
		conditions = append(conditions, "m.center_id = "+arg(*filter.CenterID))
	}
	if filter.TrainerID != nil {
		conditions = append(conditions, "m.trainer_id = "+arg(*filter.TrainerID))
	}
	if filter.Status != nil {
		conditions = append(conditions, "m.status = "+arg(*filter.Status))
	}
	if filter.Search != nil {
		placeholder := arg("%" + *filter.Search + "%")
		conditions = append(conditions, "(m.name ILIKE "+placeholder+" OR m.phone ILIKE "+placeholder+")")
	}

	query := `SELECT ` + memberColumns + memberJoins
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY m.name"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	defer rows.Close()

	var members []member.Member
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

func (r *memberRepository) Update(ctx context.Context, m *member.Member) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE members SET
			name = $2, phone = $3, trainer_id = $4, expire_date = $5,
			total_sessions = $6, free_sessions = $7, memo = $8, status = $9,
			updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		m.ID, m.Name, m.Phone, m.TrainerID, m.ExpireDate,
		m.TotalSessions, m.FreeSessions, m.Memo, m.Status,
	)
	if err != nil {
		return fmt.Errorf("failed to update member: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return member.ErrMemberNotFound
	}
	return nil
}

func (r *memberRepository) AdjustSessions(ctx context.Context, id string, usedDelta, freeDelta int) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE members SET
			used_sessions = used_sessions + $2,
			free_sessions = free_sessions + $3,
			updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, id, usedDelta, freeDelta)
	if err != nil {
		return fmt.Errorf("failed to adjust member sessions: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return member.ErrMemberNotFound
	}
	return nil
}

func (r *memberRepository) ExpireOverdue(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE members SET status = 'expired', updated_at = NOW()
		WHERE status = 'active' AND expire_date IS NOT NULL AND expire_date < CURRENT_DATE
	`

	tag, err := q.Exec(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("failed to expire overdue members: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (r *memberRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM members WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete member: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return member.ErrMemberNotFound
	}
	return nil
}
