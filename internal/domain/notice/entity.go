package notice

import "time"

// ReceiverType selects who a notice is delivered to. Center-scoped
// types are combined with the notice's target center list.
type ReceiverType string

const (
	ReceiverAll           ReceiverType = "all"
	ReceiverCenterAll     ReceiverType = "center_all"
	ReceiverCenterManager ReceiverType = "center_manager"
	ReceiverTeamLeader    ReceiverType = "team_leader"
	ReceiverTeamMember    ReceiverType = "team_member"
)

type Notice struct {
	ID              string
	SenderID        string
	ReceiverType    ReceiverType
	Title           string
	Content         string
	AttachmentName  *string
	AttachmentPath  *string
	TargetCenterIDs []string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// DTO / Join
	SenderName   *string
	CommentCount *int
	IsRead       *bool
}

// Comment threads under a notice. Depth 0 is a top-level comment;
// replies nest up to depth 3.
type Comment struct {
	ID        string
	NoticeID  string
	UserID    string
	Content   string
	ParentID  *string
	Depth     int
	CreatedAt time.Time
	UpdatedAt time.Time

	// DTO / Join
	UserName *string
	Replies  []Comment
}

// Notification is the per-user delivery record of a notice. Unique on
// (notice_id, user_id).
type Notification struct {
	ID        string
	NoticeID  string
	UserID    string
	IsRead    bool
	CreatedAt time.Time

	// DTO / Join
	NoticeTitle *string
}

const MaxCommentDepth = 3
