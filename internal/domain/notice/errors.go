package notice

import "errors"

var (
	ErrNoticeNotFound       = errors.New("notice not found")
	ErrCommentNotFound      = errors.New("comment not found")
	ErrCommentDepthExceeded = errors.New("comment nesting depth exceeded")
	ErrNotNoticeRecipient   = errors.New("user is not a recipient of this notice")
)
