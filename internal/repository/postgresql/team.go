package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/vitalfit/vitalfit-backend-go/internal/domain/master/team"
	"github.com/vitalfit/vitalfit-backend-go/internal/pkg/database"
)

type teamRepository struct {
	db *database.DB
}

func NewTeamRepository(db *database.DB) team.TeamRepository {
	return &teamRepository{db: db}
}

func (r *teamRepository) Create(ctx context.Context, t *team.Team) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO teams (id, name, center_id, leader_id, is_active)
		VALUES (gen_random_uuid(), $1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, t.Name, t.CenterID, t.LeaderID, t.IsActive).
		Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create team: %w", err)
	}
	return nil
}

func (r *teamRepository) GetByID(ctx context.Context, id string) (team.Team, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT t.id, t.name, t.center_id, t.leader_id, t.is_active, t.created_at, t.updated_at,
			   c.name AS center_name, l.name AS leader_name,
			   (SELECT COUNT(*) FROM users u WHERE u.team_id = t.id AND u.status = 'active') AS member_count
		FROM teams t
		LEFT JOIN centers c ON c.id = t.center_id
		LEFT JOIN users l ON l.id = t.leader_id
		WHERE t.id = $1
	`

	var t team.Team
	var memberCount int
	err := q.QueryRow(ctx, query, id).Scan(
		&t.ID, &t.Name, &t.CenterID, &t.LeaderID, &t.IsActive, &t.CreatedAt, &t.UpdatedAt,
		&t.CenterName, &t.LeaderName, &memberCount,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return team.Team{}, team.ErrTeamNotFound
		}
		return team.Team{}, fmt.Errorf("failed to get team: %w", err)
	}
	t.MemberCount = &memberCount
	return t, nil
}

func (r *teamRepository) List(ctx context.Context, centerID *string) ([]team.Team, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT t.id, t.name, t.center_id, t.leader_id, t.is_active, t.created_at, t.updated_at,
			   c.name AS center_name, l.name AS leader_name,
			   (SELECT COUNT(*) FROM users u WHERE u.team_id = t.id AND u.status = 'active') AS member_count
		FROM teams t
		LEFT JOIN centers c ON c.id = t.center_id
		LEFT JOIN users l ON l.id = t.leader_id
	`
	var args []interface{}
	if centerID != nil {
		query += ` WHERE t.center_id = $1`
		args = append(args, *centerID)
	}
	query += ` ORDER BY t.name`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	defer rows.Close()

	var teams []team.Team
	for rows.Next() {
		var t team.Team
		var memberCount int
		if err := rows.Scan(&t.ID, &t.Name, &t.CenterID, &t.LeaderID, &t.IsActive,
			&t.CreatedAt, &t.UpdatedAt, &t.CenterName, &t.LeaderName, &memberCount); err != nil {
			return nil, fmt.Errorf("failed to scan team: %w", err)
		}
		t.MemberCount = &memberCount
		teams = append(teams, t)
	}
	return teams, rows.Err()
}

func (r *teamRepository) Update(ctx context.Context, t *team.Team) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE teams SET name = $2, leader_id = $3, is_active = $4, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, t.ID, t.Name, t.LeaderID, t.IsActive)
	if err != nil {
		return fmt.Errorf("failed to update team: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return team.ErrTeamNotFound
	}
	return nil
}

func (r *teamRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM teams WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete team: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return team.ErrTeamNotFound
	}
	return nil
}
