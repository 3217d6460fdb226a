package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/vitalfit/vitalfit-backend-go/internal/domain/user"
	"github.com/vitalfit/vitalfit-backend-go/internal/pkg/database"
)

type userRepository struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepository{db: db}
}

const userColumns = `
	u.id, u.name, u.email, u.password_hash, u.phone, u.role,
	u.position_id, u.team_id, u.center_id, u.join_date, u.leave_date,
	u.status, u.profile_image_path, u.nickname, u.license, u.experience,
	u.education, u.instagram, u.shift, u.last_login_at, u.login_attempts,
	u.is_locked, u.created_at, u.updated_at,
	p.name AS position_name, t.name AS team_name, c.name AS center_name
`

const userJoins = `
	FROM users u
	LEFT JOIN positions p ON p.id = u.position_id
	LEFT JOIN teams t ON t.id = u.team_id
	LEFT JOIN centers c ON c.id = u.center_id
`

func scanUser(row pgx.Row) (user.User, error) {
	var u user.User
	err := row.Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Phone, &u.Role,
		&u.PositionID, &u.TeamID, &u.CenterID, &u.JoinDate, &u.LeaveDate,
		&u.Status, &u.ProfileImagePath, &u.Nickname, &u.License, &u.Experience,
		&u.Education, &u.Instagram, &u.Shift, &u.LastLoginAt, &u.LoginAttempts,
		&u.IsLocked, &u.CreatedAt, &u.UpdatedAt,
		&u.PositionName, &u.TeamName, &u.CenterName,
	)
	return u, err
}

func (r *userRepository) Create(ctx context.Context, u *user.User) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO users (
			id, name, email, password_hash, phone, role, position_id,
			team_id, center_id, join_date, status, nickname, license,
			experience, education, instagram, shift
		) VALUES (
			gen_random_uuid(), $1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
			$11, $12, $13, $14, $15, $16
		)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		u.Name, u.Email, u.PasswordHash, u.Phone, u.Role, u.PositionID,
		u.TeamID, u.CenterID, u.JoinDate, u.Status, u.Nickname, u.License,
		u.Experience, u.Education, u.Instagram, u.Shift,
	).Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + userColumns + userJoins + ` WHERE u.id = $1`

	u, err := scanUser(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user: %w", err)
	}
	return u, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + userColumns + userJoins + ` WHERE u.email = $1`

	u, err := scanUser(q.QueryRow(ctx, query, email))
	if err != nil {
		if err == pgx.ErrNoRows {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}
	return u, nil
}

func (r *userRepository) List(ctx context.Context, filter user.ListUsersQuery) ([]user.User, error) {
	q := GetQuerier(ctx, r.db)

	var conditions []string
	var args []interface{}
	arg := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.CenterID != nil {
		conditions = append(conditions, "u.center_id = "+arg(*filter.CenterID))
	}
	if filter.TeamID != nil {
		conditions = append(conditions, "u.team_id = "+arg(*filter.TeamID))
	}
	if filter.Role != nil {
		conditions = append(conditions, "u.role = "+arg(*filter.Role))
	}
	if filter.Status != nil {
		conditions = append(conditions, "u.status = "+arg(*filter.Status))
	}
	if filter.Search != nil {
		placeholder := arg("%" + *filter.Search + "%")
		conditions = append(conditions, "(u.name ILIKE "+placeholder+" OR u.email ILIKE "+placeholder+")")
	}

	query := `SELECT ` + userColumns + userJoins
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY u.name"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []user.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *userRepository) ListTrainersByCenter(ctx context.Context, centerID string) ([]user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + userColumns + userJoins + `
		WHERE u.center_id = $1
		  AND u.role IN ('team_leader', 'team_member')
		  AND u.status = 'active'
		ORDER BY u.name`

	rows, err := q.Query(ctx, query, centerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list trainers: %w", err)
	}
	defer rows.Close()

	var users []user.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan trainer: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *userRepository) Update(ctx context.Context, u *user.User) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE users SET
			name = $2, phone = $3, role = $4, position_id = $5, team_id = $6,
			center_id = $7, status = $8, leave_date = $9, nickname = $10,
			license = $11, experience = $12, education = $13, instagram = $14,
			shift = $15, login_attempts = $16, is_locked = $17, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		u.ID, u.Name, u.Phone, u.Role, u.PositionID, u.TeamID,
		u.CenterID, u.Status, u.LeaveDate, u.Nickname,
		u.License, u.Experience, u.Education, u.Instagram,
		u.Shift, u.LoginAttempts, u.IsLocked,
	)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}
	return nil
}

func (r *userRepository) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`UPDATE users SET password_hash = $2, updated_at = NOW() WHERE id = $1`,
		id, passwordHash,
	)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}
	return nil
}

func (r *userRepository) UpdateProfileImage(ctx context.Context, id string, path *string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`UPDATE users SET profile_image_path = $2, updated_at = NOW() WHERE id = $1`,
		id, path,
	)
	if err != nil {
		return fmt.Errorf("failed to update profile image: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}
	return nil
}

func (r *userRepository) RecordLogin(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx,
		`UPDATE users SET last_login_at = NOW(), login_attempts = 0, updated_at = NOW() WHERE id = $1`,
		id,
	)
	if err != nil {
		return fmt.Errorf("failed to record login: %w", err)
	}
	return nil
}

func (r *userRepository) RecordFailedLogin(ctx context.Context, id string, attempts int, locked bool) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx,
		`UPDATE users SET login_attempts = $2, is_locked = $3, updated_at = NOW() WHERE id = $1`,
		id, attempts, locked,
	)
	if err != nil {
		return fmt.Errorf("failed to record failed login: %w", err)
	}
	return nil
}

func (r *userRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}
	return nil
}
