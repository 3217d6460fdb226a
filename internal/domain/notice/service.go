package notice

import (
	"context"
	"mime/multipart"
)

// NoticeService defines business logic for notices
type NoticeService interface {
	// CreateNotice stores the notice, fans notifications out to every
	// resolved recipient and pushes an SSE event to connected ones.
	CreateNotice(ctx context.Context, req CreateNoticeRequest, attachment multipart.File, attachmentHeader *multipart.FileHeader) (NoticeResponse, error)
	GetNotice(ctx context.Context, id, userID string) (NoticeResponse, error)
	ListNotices(ctx context.Context, q ListNoticesQuery) ([]NoticeResponse, error)
	MarkRead(ctx context.Context, noticeID, userID string) error
	CountUnread(ctx context.Context, userID string) (int, error)
	DeleteNotice(ctx context.Context, id string) error

	CreateComment(ctx context.Context, req CreateCommentRequest) (CommentResponse, error)
	ListComments(ctx context.Context, noticeID string) ([]CommentResponse, error)
	DeleteComment(ctx context.Context, id, userID string) error
}
