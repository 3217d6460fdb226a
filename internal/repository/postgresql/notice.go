package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/vitalfit/vitalfit-backend-go/internal/domain/notice"
	"github.com/vitalfit/vitalfit-backend-go/internal/pkg/database"
)

type noticeRepository struct {
	db *database.DB
}

func NewNoticeRepository(db *database.DB) notice.NoticeRepository {
	return &noticeRepository{db: db}
}

func (r *noticeRepository) Create(ctx context.Context, n *notice.Notice) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO notices (id, sender_id, receiver_type, title, content)
		VALUES (gen_random_uuid(), $1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, n.SenderID, n.ReceiverType, n.Title, n.Content).
		Scan(&n.ID, &n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create notice: %w", err)
	}

	for _, centerID := range n.TargetCenterIDs {
		_, err := q.Exec(ctx,
			`INSERT INTO notice_target_centers (notice_id, center_id) VALUES ($1, $2)`,
			n.ID, centerID,
		)
		if err != nil {
			return fmt.Errorf("failed to add notice target center: %w", err)
		}
	}
	return nil
}

func (r *noticeRepository) UpdateAttachment(ctx context.Context, id, name, path string) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE notices SET attachment_name = $2, attachment_path = $3, updated_at = NOW() WHERE id = $1`

	tag, err := q.Exec(ctx, query, id, name, path)
	if err != nil {
		return fmt.Errorf("failed to update notice attachment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return notice.ErrNoticeNotFound
	}
	return nil
}

func (r *noticeRepository) GetByID(ctx context.Context, id string) (notice.Notice, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT n.id, n.sender_id, n.receiver_type, n.title, n.content,
			n.attachment_name, n.attachment_path, n.created_at, n.updated_at,
			u.name AS sender_name,
			(SELECT COUNT(*) FROM notice_comments nc WHERE nc.notice_id = n.id) AS comment_count,
			COALESCE(ARRAY_AGG(tc.center_id) FILTER (WHERE tc.center_id IS NOT NULL), '{}') AS target_center_ids
		FROM notices n
		LEFT JOIN users u ON u.id = n.sender_id
		LEFT JOIN notice_target_centers tc ON tc.notice_id = n.id
		WHERE n.id = $1
		GROUP BY n.id, u.name
	`

	var n notice.Notice
	err := q.QueryRow(ctx, query, id).Scan(
		&n.ID, &n.SenderID, &n.ReceiverType, &n.Title, &n.Content,
		&n.AttachmentName, &n.AttachmentPath, &n.CreatedAt, &n.UpdatedAt,
		&n.SenderName, &n.CommentCount, &n.TargetCenterIDs,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return notice.Notice{}, notice.ErrNoticeNotFound
		}
		return notice.Notice{}, fmt.Errorf("failed to get notice: %w", err)
	}
	return n, nil
}

func (r *noticeRepository) ListForUser(ctx context.Context, query notice.ListNoticesQuery) ([]notice.Notice, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"nt.user_id = $1"}
	args := []interface{}{query.UserID}
	arg := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if query.UnreadOnly {
		conditions = append(conditions, "nt.is_read = FALSE")
	}
	if query.Search != nil && *query.Search != "" {
		placeholder := arg("%" + *query.Search + "%")
		conditions = append(conditions, "(n.title ILIKE "+placeholder+" OR n.content ILIKE "+placeholder+")")
	}

	sqlQuery := `
		SELECT n.id, n.sender_id, n.receiver_type, n.title, n.content,
			n.attachment_name, n.attachment_path, n.created_at, n.updated_at,
			u.name AS sender_name,
			(SELECT COUNT(*) FROM notice_comments nc WHERE nc.notice_id = n.id) AS comment_count,
			nt.is_read
		FROM notifications nt
		JOIN notices n ON n.id = nt.notice_id
		LEFT JOIN users u ON u.id = n.sender_id
		WHERE ` + strings.Join(conditions, " AND ") + `
		ORDER BY n.created_at DESC
	`

	rows, err := q.Query(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list notices: %w", err)
	}
	defer rows.Close()

	var notices []notice.Notice
	for rows.Next() {
		var n notice.Notice
		err := rows.Scan(
			&n.ID, &n.SenderID, &n.ReceiverType, &n.Title, &n.Content,
			&n.AttachmentName, &n.AttachmentPath, &n.CreatedAt, &n.UpdatedAt,
			&n.SenderName, &n.CommentCount, &n.IsRead,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan notice: %w", err)
		}
		notices = append(notices, n)
	}
	return notices, rows.Err()
}

func (r *noticeRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM notices WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete notice: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return notice.ErrNoticeNotFound
	}
	return nil
}

// ResolveRecipients expands the receiver type (optionally scoped to
// target centers) into user IDs. The sender is excluded; only active
// accounts receive notifications.
func (r *noticeRepository) ResolveRecipients(ctx context.Context, n *notice.Notice) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"status = 'active'", "id != $1"}
	args := []interface{}{n.SenderID}
	arg := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	switch n.ReceiverType {
	case notice.ReceiverAll:
		// every active user
	case notice.ReceiverCenterAll:
		conditions = append(conditions, "center_id = ANY("+arg(n.TargetCenterIDs)+")")
	case notice.ReceiverCenterManager:
		conditions = append(conditions, "role = 'center_manager'")
		if len(n.TargetCenterIDs) > 0 {
			conditions = append(conditions, "center_id = ANY("+arg(n.TargetCenterIDs)+")")
		}
	case notice.ReceiverTeamLeader:
		conditions = append(conditions, "role = 'team_leader'")
		if len(n.TargetCenterIDs) > 0 {
			conditions = append(conditions, "center_id = ANY("+arg(n.TargetCenterIDs)+")")
		}
	case notice.ReceiverTeamMember:
		conditions = append(conditions, "role = 'team_member'")
		if len(n.TargetCenterIDs) > 0 {
			conditions = append(conditions, "center_id = ANY("+arg(n.TargetCenterIDs)+")")
		}
	default:
		return nil, fmt.Errorf("unknown receiver type: %s", n.ReceiverType)
	}

	query := `SELECT id FROM users WHERE ` + strings.Join(conditions, " AND ")

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve notice recipients: %w", err)
	}
	defer rows.Close()

	var userIDs []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan recipient: %w", err)
		}
		userIDs = append(userIDs, id)
	}
	return userIDs, rows.Err()
}

func (r *noticeRepository) CreateNotifications(ctx context.Context, noticeID string, userIDs []string) error {
	if len(userIDs) == 0 {
		return nil
	}
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO notifications (id, notice_id, user_id)
		SELECT gen_random_uuid(), $1, unnest($2::uuid[])
		ON CONFLICT (notice_id, user_id) DO NOTHING
	`

	if _, err := q.Exec(ctx, query, noticeID, userIDs); err != nil {
		return fmt.Errorf("failed to create notifications: %w", err)
	}
	return nil
}

func (r *noticeRepository) MarkRead(ctx context.Context, noticeID, userID string) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE notifications SET is_read = TRUE WHERE notice_id = $1 AND user_id = $2`

	tag, err := q.Exec(ctx, query, noticeID, userID)
	if err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return notice.ErrNotNoticeRecipient
	}
	return nil
}

func (r *noticeRepository) CountUnread(ctx context.Context, userID string) (int, error) {
	q := GetQuerier(ctx, r.db)

	var count int
	err := q.QueryRow(ctx,
		`SELECT COUNT(*) FROM notifications WHERE user_id = $1 AND is_read = FALSE`,
		userID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}
	return count, nil
}

func (r *noticeRepository) CreateComment(ctx context.Context, c *notice.Comment) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO notice_comments (id, notice_id, user_id, content, parent_id, depth)
		VALUES (gen_random_uuid(), $1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, c.NoticeID, c.UserID, c.Content, c.ParentID, c.Depth).
		Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}
	return nil
}

func (r *noticeRepository) GetCommentByID(ctx context.Context, id string) (notice.Comment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT c.id, c.notice_id, c.user_id, c.content, c.parent_id, c.depth,
			c.created_at, c.updated_at, u.name AS user_name
		FROM notice_comments c
		LEFT JOIN users u ON u.id = c.user_id
		WHERE c.id = $1
	`

	var c notice.Comment
	err := q.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.NoticeID, &c.UserID, &c.Content, &c.ParentID, &c.Depth,
		&c.CreatedAt, &c.UpdatedAt, &c.UserName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return notice.Comment{}, notice.ErrCommentNotFound
		}
		return notice.Comment{}, fmt.Errorf("failed to get comment: %w", err)
	}
	return c, nil
}

func (r *noticeRepository) ListComments(ctx context.Context, noticeID string) ([]notice.Comment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT c.id, c.notice_id, c.user_id, c.content, c.parent_id, c.depth,
			c.created_at, c.updated_at, u.name AS user_name
		FROM notice_comments c
		LEFT JOIN users u ON u.id = c.user_id
		WHERE c.notice_id = $1
		ORDER BY c.created_at ASC
	`

	rows, err := q.Query(ctx, query, noticeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	defer rows.Close()

	var comments []notice.Comment
	for rows.Next() {
		var c notice.Comment
		err := rows.Scan(
			&c.ID, &c.NoticeID, &c.UserID, &c.Content, &c.ParentID, &c.Depth,
			&c.CreatedAt, &c.UpdatedAt, &c.UserName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

func (r *noticeRepository) DeleteComment(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM notice_comments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return notice.ErrCommentNotFound
	}
	return nil
}
