package notice

import (
	"time"

	"github.com/vitalfit/vitalfit-backend-go/internal/pkg/validator"
)

type CreateNoticeRequest struct {
	SenderID        string   `json:"-"`
	ReceiverType    string   `json:"receiver_type"`
	Title           string   `json:"title"`
	Content         string   `json:"content"`
	TargetCenterIDs []string `json:"target_center_ids"`
}

func (r *CreateNoticeRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.ReceiverType, []string{
		string(ReceiverAll), string(ReceiverCenterAll), string(ReceiverCenterManager),
		string(ReceiverTeamLeader), string(ReceiverTeamMember),
	}) {
		errs = append(errs, validator.ValidationError{
			Field:   "receiver_type",
			Message: "receiver_type must be one of: all, center_all, center_manager, team_leader, team_member",
		})
	}
	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title is required",
		})
	} else if len(r.Title) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title must not exceed 255 characters",
		})
	}
	if validator.IsEmpty(r.Content) {
		errs = append(errs, validator.ValidationError{
			Field:   "content",
			Message: "content is required",
		})
	}
	if r.ReceiverType != string(ReceiverAll) && len(r.TargetCenterIDs) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "target_center_ids",
			Message: "target_center_ids is required for center-scoped notices",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CreateCommentRequest struct {
	NoticeID string  `json:"-"`
	UserID   string  `json:"-"`
	Content  string  `json:"content"`
	ParentID *string `json:"parent_id"`
}

func (r *CreateCommentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Content) {
		errs = append(errs, validator.ValidationError{
			Field:   "content",
			Message: "content is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ListNoticesQuery struct {
	UserID     string
	UnreadOnly bool
	Search     *string
}

type NoticeResponse struct {
	ID              string       `json:"id"`
	SenderID        string       `json:"sender_id"`
	SenderName      *string      `json:"sender_name,omitempty"`
	ReceiverType    ReceiverType `json:"receiver_type"`
	Title           string       `json:"title"`
	Content         string       `json:"content"`
	AttachmentName  *string      `json:"attachment_name,omitempty"`
	AttachmentURL   *string      `json:"attachment_url,omitempty"`
	TargetCenterIDs []string     `json:"target_center_ids,omitempty"`
	CommentCount    *int         `json:"comment_count,omitempty"`
	IsRead          *bool        `json:"is_read,omitempty"`
	CreatedAt       time.Time    `json:"created_at"`
}

type CommentResponse struct {
	ID        string            `json:"id"`
	NoticeID  string            `json:"notice_id"`
	UserID    string            `json:"user_id"`
	UserName  *string           `json:"user_name,omitempty"`
	Content   string            `json:"content"`
	ParentID  *string           `json:"parent_id,omitempty"`
	Depth     int               `json:"depth"`
	Replies   []CommentResponse `json:"replies,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
}

// NoticeEvent is the SSE payload pushed to notified users.
type NoticeEvent struct {
	NoticeID string `json:"notice_id"`
	Title    string `json:"title"`
	SentAt   string `json:"sent_at"`
}

func ToResponse(n Notice, attachmentURL *string) NoticeResponse {
	return NoticeResponse{
		ID:              n.ID,
		SenderID:        n.SenderID,
		SenderName:      n.SenderName,
		ReceiverType:    n.ReceiverType,
		Title:           n.Title,
		Content:         n.Content,
		AttachmentName:  n.AttachmentName,
		AttachmentURL:   attachmentURL,
		TargetCenterIDs: n.TargetCenterIDs,
		CommentCount:    n.CommentCount,
		IsRead:          n.IsRead,
		CreatedAt:       n.CreatedAt,
	}
}

func ToCommentResponse(c Comment) CommentResponse {
	resp := CommentResponse{
		ID:        c.ID,
		NoticeID:  c.NoticeID,
		UserID:    c.UserID,
		UserName:  c.UserName,
		Content:   c.Content,
		ParentID:  c.ParentID,
		Depth:     c.Depth,
		CreatedAt: c.CreatedAt,
	}
	for _, reply := range c.Replies {
		resp.Replies = append(resp.Replies, ToCommentResponse(reply))
	}
	return resp
}
