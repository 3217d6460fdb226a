package notice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"mime/multipart"
	"time"

	"github.com/vitalfit/vitalfit-backend-go/internal/domain/notice"
	"github.com/vitalfit/vitalfit-backend-go/internal/pkg/sse"
	"github.com/vitalfit/vitalfit-backend-go/internal/service/file"
)

const attachmentURLTTL = 24 * time.Hour

type NoticeServiceImpl struct {
	noticeRepo notice.NoticeRepository
	fileSvc    file.FileService
	hub        *sse.Hub
}

func NewNoticeService(noticeRepo notice.NoticeRepository, fileSvc file.FileService, hub *sse.Hub) notice.NoticeService {
	return &NoticeServiceImpl{
		noticeRepo: noticeRepo,
		fileSvc:    fileSvc,
		hub:        hub,
	}
}

func (s *NoticeServiceImpl) CreateNotice(ctx context.Context, req notice.CreateNoticeRequest, attachment multipart.File, attachmentHeader *multipart.FileHeader) (notice.NoticeResponse, error) {
	if err := req.Validate(); err != nil {
		return notice.NoticeResponse{}, err
	}

	entity := notice.Notice{
		SenderID:        req.SenderID,
		ReceiverType:    notice.ReceiverType(req.ReceiverType),
		Title:           req.Title,
		Content:         req.Content,
		TargetCenterIDs: req.TargetCenterIDs,
	}

	if err := s.noticeRepo.Create(ctx, &entity); err != nil {
		return notice.NoticeResponse{}, fmt.Errorf("failed to create notice: %w", err)
	}

	if attachment != nil && attachmentHeader != nil {
		path, err := s.fileSvc.UploadNoticeAttachment(ctx, entity.ID, attachment, attachmentHeader.Filename)
		if err != nil {
			return notice.NoticeResponse{}, err
		}
		entity.AttachmentName = &attachmentHeader.Filename
		entity.AttachmentPath = &path
		if err := s.noticeRepo.UpdateAttachment(ctx, entity.ID, attachmentHeader.Filename, path); err != nil {
			return notice.NoticeResponse{}, fmt.Errorf("failed to attach file to notice: %w", err)
		}
	}

	recipients, err := s.noticeRepo.ResolveRecipients(ctx, &entity)
	if err != nil {
		return notice.NoticeResponse{}, fmt.Errorf("failed to resolve recipients: %w", err)
	}

	if err := s.noticeRepo.CreateNotifications(ctx, entity.ID, recipients); err != nil {
		return notice.NoticeResponse{}, fmt.Errorf("failed to create notifications: %w", err)
	}

	s.hub.PublishToMany(recipients, sse.Event{
		Event: "notice",
		Data: notice.NoticeEvent{
			NoticeID: entity.ID,
			Title:    entity.Title,
			SentAt:   time.Now().Format(time.RFC3339),
		},
	})
	slog.Info("notice published", "notice_id", entity.ID, "recipients", len(recipients))

	return notice.ToResponse(entity, s.attachmentURL(ctx, entity)), nil
}

func (s *NoticeServiceImpl) GetNotice(ctx context.Context, id, userID string) (notice.NoticeResponse, error) {
	entity, err := s.noticeRepo.GetByID(ctx, id)
	if err != nil {
		return notice.NoticeResponse{}, err
	}

	// Opening a notice marks it read; senders may not be recipients.
	if err := s.noticeRepo.MarkRead(ctx, id, userID); err != nil && !errors.Is(err, notice.ErrNotNoticeRecipient) {
		slog.Error("failed to mark notice read", "notice_id", id, "user_id", userID, "error", err)
	}

	return notice.ToResponse(entity, s.attachmentURL(ctx, entity)), nil
}

func (s *NoticeServiceImpl) ListNotices(ctx context.Context, q notice.ListNoticesQuery) ([]notice.NoticeResponse, error) {
	entities, err := s.noticeRepo.ListForUser(ctx, q)
	if err != nil {
		return nil, err
	}

	responses := make([]notice.NoticeResponse, 0, len(entities))
	for _, entity := range entities {
		responses = append(responses, notice.ToResponse(entity, s.attachmentURL(ctx, entity)))
	}
	return responses, nil
}

func (s *NoticeServiceImpl) MarkRead(ctx context.Context, noticeID, userID string) error {
	return s.noticeRepo.MarkRead(ctx, noticeID, userID)
}

func (s *NoticeServiceImpl) CountUnread(ctx context.Context, userID string) (int, error) {
	return s.noticeRepo.CountUnread(ctx, userID)
}

func (s *NoticeServiceImpl) DeleteNotice(ctx context.Context, id string) error {
	entity, err := s.noticeRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if entity.AttachmentPath != nil {
		if err := s.fileSvc.DeleteFile(ctx, *entity.AttachmentPath); err != nil {
			slog.Error("failed to delete notice attachment", "notice_id", id, "error", err)
		}
	}

	return s.noticeRepo.Delete(ctx, id)
}

func (s *NoticeServiceImpl) CreateComment(ctx context.Context, req notice.CreateCommentRequest) (notice.CommentResponse, error) {
	if err := req.Validate(); err != nil {
		return notice.CommentResponse{}, err
	}

	if _, err := s.noticeRepo.GetByID(ctx, req.NoticeID); err != nil {
		return notice.CommentResponse{}, err
	}

	depth := 0
	if req.ParentID != nil {
		parent, err := s.noticeRepo.GetCommentByID(ctx, *req.ParentID)
		if err != nil {
			return notice.CommentResponse{}, err
		}
		depth = parent.Depth + 1
		if depth > notice.MaxCommentDepth {
			return notice.CommentResponse{}, notice.ErrCommentDepthExceeded
		}
	}

	entity := notice.Comment{
		NoticeID: req.NoticeID,
		UserID:   req.UserID,
		Content:  req.Content,
		ParentID: req.ParentID,
		Depth:    depth,
	}

	if err := s.noticeRepo.CreateComment(ctx, &entity); err != nil {
		return notice.CommentResponse{}, fmt.Errorf("failed to create comment: %w", err)
	}

	return notice.ToCommentResponse(entity), nil
}

func (s *NoticeServiceImpl) ListComments(ctx context.Context, noticeID string) ([]notice.CommentResponse, error) {
	comments, err := s.noticeRepo.ListComments(ctx, noticeID)
	if err != nil {
		return nil, err
	}

	// Thread flat rows into a reply tree, oldest first.
	children := make(map[string][]notice.Comment)
	var roots []notice.Comment
	for _, c := range comments {
		if c.ParentID == nil {
			roots = append(roots, c)
		} else {
			children[*c.ParentID] = append(children[*c.ParentID], c)
		}
	}

	var attach func(c notice.Comment) notice.Comment
	attach = func(c notice.Comment) notice.Comment {
		for _, reply := range children[c.ID] {
			c.Replies = append(c.Replies, attach(reply))
		}
		return c
	}

	responses := make([]notice.CommentResponse, 0, len(roots))
	for _, root := range roots {
		responses = append(responses, notice.ToCommentResponse(attach(root)))
	}
	return responses, nil
}

func (s *NoticeServiceImpl) DeleteComment(ctx context.Context, id, userID string) error {
	comment, err := s.noticeRepo.GetCommentByID(ctx, id)
	if err != nil {
		return err
	}
	if comment.UserID != userID {
		return notice.ErrCommentNotFound
	}
	return s.noticeRepo.DeleteComment(ctx, id)
}

func (s *NoticeServiceImpl) attachmentURL(ctx context.Context, entity notice.Notice) *string {
	if entity.AttachmentPath == nil {
		return nil
	}
	url, err := s.fileSvc.GetFileURL(ctx, *entity.AttachmentPath, attachmentURLTTL)
	if err != nil {
		return nil
	}
	return &url
}
