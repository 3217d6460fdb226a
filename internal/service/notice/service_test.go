package notice

import (
	"context"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitalfit/vitalfit-backend-go/internal/domain/notice"
	"github.com/vitalfit/vitalfit-backend-go/internal/pkg/sse"
)

type fakeNoticeRepo struct {
	notices  map[string]notice.Notice
	comments map[string]notice.Comment
	seq      int

	recipients  []string
	notified    map[string][]string // notice_id -> user_ids
	read        map[string]bool     // notice_id|user_id
	markReadErr error
}

func newFakeNoticeRepo() *fakeNoticeRepo {
	return &fakeNoticeRepo{
		notices:  make(map[string]notice.Notice),
		comments: make(map[string]notice.Comment),
		notified: make(map[string][]string),
		read:     make(map[string]bool),
	}
}

func (f *fakeNoticeRepo) nextID(prefix string) string {
	f.seq++
	return fmt.Sprintf("%s-%d", prefix, f.seq)
}

func (f *fakeNoticeRepo) Create(_ context.Context, n *notice.Notice) error {
	n.ID = f.nextID("notice")
	n.CreatedAt = time.Now()
	f.notices[n.ID] = *n
	return nil
}

func (f *fakeNoticeRepo) UpdateAttachment(_ context.Context, id, name, path string) error {
	n, ok := f.notices[id]
	if !ok {
		return notice.ErrNoticeNotFound
	}
	n.AttachmentName = &name
	n.AttachmentPath = &path
	f.notices[id] = n
	return nil
}

func (f *fakeNoticeRepo) GetByID(_ context.Context, id string) (notice.Notice, error) {
	if n, ok := f.notices[id]; ok {
		return n, nil
	}
	return notice.Notice{}, notice.ErrNoticeNotFound
}

func (f *fakeNoticeRepo) ListForUser(_ context.Context, q notice.ListNoticesQuery) ([]notice.Notice, error) {
	return nil, nil
}

func (f *fakeNoticeRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.notices[id]; !ok {
		return notice.ErrNoticeNotFound
	}
	delete(f.notices, id)
	return nil
}

func (f *fakeNoticeRepo) ResolveRecipients(_ context.Context, n *notice.Notice) ([]string, error) {
	return f.recipients, nil
}

func (f *fakeNoticeRepo) CreateNotifications(_ context.Context, noticeID string, userIDs []string) error {
	f.notified[noticeID] = append(f.notified[noticeID], userIDs...)
	return nil
}

func (f *fakeNoticeRepo) MarkRead(_ context.Context, noticeID, userID string) error {
	if f.markReadErr != nil {
		return f.markReadErr
	}
	f.read[noticeID+"|"+userID] = true
	return nil
}

func (f *fakeNoticeRepo) CountUnread(_ context.Context, userID string) (int, error) {
	return 0, nil
}

func (f *fakeNoticeRepo) CreateComment(_ context.Context, c *notice.Comment) error {
	c.ID = f.nextID("comment")
	c.CreatedAt = time.Now()
	f.comments[c.ID] = *c
	return nil
}

func (f *fakeNoticeRepo) GetCommentByID(_ context.Context, id string) (notice.Comment, error) {
	if c, ok := f.comments[id]; ok {
		return c, nil
	}
	return notice.Comment{}, notice.ErrCommentNotFound
}

func (f *fakeNoticeRepo) ListComments(_ context.Context, noticeID string) ([]notice.Comment, error) {
	var out []notice.Comment
	for i := 1; i <= f.seq; i++ {
		if c, ok := f.comments[fmt.Sprintf("comment-%d", i)]; ok && c.NoticeID == noticeID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeNoticeRepo) DeleteComment(_ context.Context, id string) error {
	if _, ok := f.comments[id]; !ok {
		return notice.ErrCommentNotFound
	}
	delete(f.comments, id)
	return nil
}

type fakeFileService struct{}

func (fakeFileService) UploadProfileImage(_ context.Context, userID string, file io.Reader, filename string) (string, error) {
	return "uploads/profiles/" + userID + "/" + filename, nil
}

func (fakeFileService) UploadCenterImage(_ context.Context, centerID string, file io.Reader, filename string) (string, error) {
	return "uploads/centers/" + centerID + "/" + filename, nil
}

func (fakeFileService) UploadNoticeAttachment(_ context.Context, noticeID string, file io.Reader, filename string) (string, error) {
	return "uploads/notices/" + noticeID + "/" + filename, nil
}

func (fakeFileService) DeleteFile(_ context.Context, path string) error { return nil }

func (fakeFileService) GetFileURL(_ context.Context, path string, _ time.Duration) (string, error) {
	return "http://localhost:8080/" + path, nil
}

func newNoticeFixture() (*fakeNoticeRepo, notice.NoticeService) {
	repo := newFakeNoticeRepo()
	svc := NewNoticeService(repo, fakeFileService{}, sse.NewHub())
	return repo, svc
}

func TestCreateNotice_NotifiesRecipients(t *testing.T) {
	repo, svc := newNoticeFixture()
	repo.recipients = []string{"user-2", "user-3"}

	resp, err := svc.CreateNotice(context.Background(), notice.CreateNoticeRequest{
		SenderID:     "user-1",
		ReceiverType: "all",
		Title:        "Holiday schedule",
		Content:      "Closed on the 15th.",
	}, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, "Holiday schedule", resp.Title)
	assert.Equal(t, notice.ReceiverAll, resp.ReceiverType)
	assert.Equal(t, []string{"user-2", "user-3"}, repo.notified[resp.ID])
}

func TestCreateNotice_InvalidReceiverType(t *testing.T) {
	_, svc := newNoticeFixture()

	_, err := svc.CreateNotice(context.Background(), notice.CreateNoticeRequest{
		SenderID:     "user-1",
		ReceiverType: "everyone",
		Title:        "t",
		Content:      "c",
	}, nil, nil)
	assert.Error(t, err)
}

func TestGetNotice_MarksRead(t *testing.T) {
	repo, svc := newNoticeFixture()
	created, err := svc.CreateNotice(context.Background(), notice.CreateNoticeRequest{
		SenderID: "user-1", ReceiverType: "all", Title: "t", Content: "c",
	}, nil, nil)
	require.NoError(t, err)

	_, err = svc.GetNotice(context.Background(), created.ID, "user-2")
	require.NoError(t, err)
	assert.True(t, repo.read[created.ID+"|user-2"])
}

func TestGetNotice_SenderIsNotRecipient(t *testing.T) {
	repo, svc := newNoticeFixture()
	created, err := svc.CreateNotice(context.Background(), notice.CreateNoticeRequest{
		SenderID: "user-1", ReceiverType: "all", Title: "t", Content: "c",
	}, nil, nil)
	require.NoError(t, err)

	// The sender never got a notification row; reading must still work.
	repo.markReadErr = notice.ErrNotNoticeRecipient
	resp, err := svc.GetNotice(context.Background(), created.ID, "user-1")
	require.NoError(t, err)
	assert.Equal(t, created.ID, resp.ID)
}

func TestCreateComment_DepthFollowsParent(t *testing.T) {
	_, svc := newNoticeFixture()
	created, err := svc.CreateNotice(context.Background(), notice.CreateNoticeRequest{
		SenderID: "user-1", ReceiverType: "all", Title: "t", Content: "c",
	}, nil, nil)
	require.NoError(t, err)

	root, err := svc.CreateComment(context.Background(), notice.CreateCommentRequest{
		NoticeID: created.ID, UserID: "user-2", Content: "first",
	})
	require.NoError(t, err)
	assert.Equal(t, 0, root.Depth)

	reply, err := svc.CreateComment(context.Background(), notice.CreateCommentRequest{
		NoticeID: created.ID, UserID: "user-3", Content: "reply", ParentID: &root.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, reply.Depth)
	assert.Equal(t, &root.ID, reply.ParentID)
}

func TestCreateComment_DepthLimit(t *testing.T) {
	_, svc := newNoticeFixture()
	created, err := svc.CreateNotice(context.Background(), notice.CreateNoticeRequest{
		SenderID: "user-1", ReceiverType: "all", Title: "t", Content: "c",
	}, nil, nil)
	require.NoError(t, err)

	parentID := ""
	for depth := 0; depth <= notice.MaxCommentDepth; depth++ {
		req := notice.CreateCommentRequest{NoticeID: created.ID, UserID: "user-2", Content: "c"}
		if parentID != "" {
			req.ParentID = &parentID
		}
		c, err := svc.CreateComment(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, depth, c.Depth)
		parentID = c.ID
	}

	_, err = svc.CreateComment(context.Background(), notice.CreateCommentRequest{
		NoticeID: created.ID, UserID: "user-2", Content: "too deep", ParentID: &parentID,
	})
	assert.ErrorIs(t, err, notice.ErrCommentDepthExceeded)
}

func TestListComments_ThreadsReplies(t *testing.T) {
	_, svc := newNoticeFixture()
	created, err := svc.CreateNotice(context.Background(), notice.CreateNoticeRequest{
		SenderID: "user-1", ReceiverType: "all", Title: "t", Content: "c",
	}, nil, nil)
	require.NoError(t, err)

	first, err := svc.CreateComment(context.Background(), notice.CreateCommentRequest{
		NoticeID: created.ID, UserID: "user-2", Content: "first",
	})
	require.NoError(t, err)
	second, err := svc.CreateComment(context.Background(), notice.CreateCommentRequest{
		NoticeID: created.ID, UserID: "user-3", Content: "second",
	})
	require.NoError(t, err)
	reply, err := svc.CreateComment(context.Background(), notice.CreateCommentRequest{
		NoticeID: created.ID, UserID: "user-4", Content: "nested", ParentID: &first.ID,
	})
	require.NoError(t, err)

	threaded, err := svc.ListComments(context.Background(), created.ID)
	require.NoError(t, err)

	require.Len(t, threaded, 2)
	assert.Equal(t, first.ID, threaded[0].ID)
	assert.Equal(t, second.ID, threaded[1].ID)
	require.Len(t, threaded[0].Replies, 1)
	assert.Equal(t, reply.ID, threaded[0].Replies[0].ID)
	assert.Empty(t, threaded[1].Replies)
}

func TestDeleteComment_OnlyAuthor(t *testing.T) {
	_, svc := newNoticeFixture()
	created, err := svc.CreateNotice(context.Background(), notice.CreateNoticeRequest{
		SenderID: "user-1", ReceiverType: "all", Title: "t", Content: "c",
	}, nil, nil)
	require.NoError(t, err)

	c, err := svc.CreateComment(context.Background(), notice.CreateCommentRequest{
		NoticeID: created.ID, UserID: "user-2", Content: "mine",
	})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.DeleteComment(context.Background(), c.ID, "user-3"), notice.ErrCommentNotFound)
	assert.NoError(t, svc.DeleteComment(context.Background(), c.ID, "user-2"))
}
