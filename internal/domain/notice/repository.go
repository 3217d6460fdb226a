package notice

import "context"

// NoticeRepository defines persistence for notices, comments and
// per-user notifications
type NoticeRepository interface {
	Create(ctx context.Context, n *Notice) error
	UpdateAttachment(ctx context.Context, id, name, path string) error
	GetByID(ctx context.Context, id string) (Notice, error)
	// ListForUser returns notices the user was notified about, newest
	// first, with read state joined in.
	ListForUser(ctx context.Context, q ListNoticesQuery) ([]Notice, error)
	Delete(ctx context.Context, id string) error

	// ResolveRecipients expands a notice's receiver type and target
	// centers into concrete user IDs.
	ResolveRecipients(ctx context.Context, n *Notice) ([]string, error)
	CreateNotifications(ctx context.Context, noticeID string, userIDs []string) error
	MarkRead(ctx context.Context, noticeID, userID string) error
	CountUnread(ctx context.Context, userID string) (int, error)

	CreateComment(ctx context.Context, c *Comment) error
	GetCommentByID(ctx context.Context, id string) (Comment, error)
	ListComments(ctx context.Context, noticeID string) ([]Comment, error)
	DeleteComment(ctx context.Context, id string) error
}
