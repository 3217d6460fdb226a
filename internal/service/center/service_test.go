package center

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitalfit/vitalfit-backend-go/internal/domain/center"
)

type fakeCenterRepo struct {
	centers map[string]center.Center
	images  map[string]center.Image
	seq     int
}

func newFakeCenterRepo() *fakeCenterRepo {
	return &fakeCenterRepo{
		centers: make(map[string]center.Center),
		images:  make(map[string]center.Image),
	}
}

func (f *fakeCenterRepo) Create(_ context.Context, c *center.Center) error {
	f.seq++
	c.ID = fmt.Sprintf("center-%d", f.seq)
	c.CreatedAt = time.Now()
	f.centers[c.ID] = *c
	return nil
}

func (f *fakeCenterRepo) GetByID(_ context.Context, id string) (center.Center, error) {
	if c, ok := f.centers[id]; ok {
		return c, nil
	}
	return center.Center{}, center.ErrCenterNotFound
}

func (f *fakeCenterRepo) List(_ context.Context, activeOnly bool) ([]center.Center, error) {
	return nil, nil
}

func (f *fakeCenterRepo) ListWithCounts(_ context.Context) ([]center.Center, error) {
	return nil, nil
}

func (f *fakeCenterRepo) Update(_ context.Context, c *center.Center) error {
	if _, ok := f.centers[c.ID]; !ok {
		return center.ErrCenterNotFound
	}
	f.centers[c.ID] = *c
	return nil
}

func (f *fakeCenterRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.centers[id]; !ok {
		return center.ErrCenterNotFound
	}
	delete(f.centers, id)
	return nil
}

func (f *fakeCenterRepo) CreateImage(_ context.Context, img *center.Image) error {
	f.seq++
	img.ID = fmt.Sprintf("image-%d", f.seq)
	img.CreatedAt = time.Now()
	f.images[img.ID] = *img
	return nil
}

func (f *fakeCenterRepo) GetImageByID(_ context.Context, id string) (center.Image, error) {
	if img, ok := f.images[id]; ok {
		return img, nil
	}
	return center.Image{}, center.ErrCenterImageNotFound
}

func (f *fakeCenterRepo) ListImages(_ context.Context, centerID string) ([]center.Image, error) {
	var out []center.Image
	for i := 1; i <= f.seq; i++ {
		if img, ok := f.images[fmt.Sprintf("image-%d", i)]; ok && img.CenterID == centerID {
			out = append(out, img)
		}
	}
	return out, nil
}

func (f *fakeCenterRepo) SetMainImage(_ context.Context, centerID, imageID string) error {
	for id, img := range f.images {
		if img.CenterID == centerID {
			img.IsMain = id == imageID
			f.images[id] = img
		}
	}
	return nil
}

func (f *fakeCenterRepo) DeleteImage(_ context.Context, id string) error {
	if _, ok := f.images[id]; !ok {
		return center.ErrCenterImageNotFound
	}
	delete(f.images, id)
	return nil
}

type fakeFileService struct{}

func (fakeFileService) UploadProfileImage(_ context.Context, userID string, _ io.Reader, filename string) (string, error) {
	return "uploads/profiles/" + userID + "/" + filename, nil
}

func (fakeFileService) UploadCenterImage(_ context.Context, centerID string, _ io.Reader, filename string) (string, error) {
	return "uploads/centers/" + centerID + "/" + filename, nil
}

func (fakeFileService) UploadNoticeAttachment(_ context.Context, noticeID string, _ io.Reader, filename string) (string, error) {
	return "uploads/notices/" + noticeID + "/" + filename, nil
}

func (fakeFileService) DeleteFile(_ context.Context, path string) error { return nil }

func (fakeFileService) GetFileURL(_ context.Context, path string, _ time.Duration) (string, error) {
	return "http://localhost:8080/" + path, nil
}

func newCenterFixture(t *testing.T) (*fakeCenterRepo, center.CenterService, string) {
	t.Helper()
	repo := newFakeCenterRepo()
	svc := NewCenterService(repo, fakeFileService{})

	created, err := svc.CreateCenter(context.Background(), center.CreateCenterRequest{Name: "Gangnam"})
	require.NoError(t, err)
	return repo, svc, created.ID
}

func uploadHeader(name string) *multipart.FileHeader {
	return &multipart.FileHeader{Filename: name}
}

func TestUploadImage_FirstBecomesMain(t *testing.T) {
	_, svc, centerID := newCenterFixture(t)

	first, err := svc.UploadImage(context.Background(), centerID, nil, uploadHeader("front.jpg"))
	require.NoError(t, err)
	assert.True(t, first.IsMain)
	assert.Equal(t, 0, first.SortOrder)

	second, err := svc.UploadImage(context.Background(), centerID, nil, uploadHeader("floor.jpg"))
	require.NoError(t, err)
	assert.False(t, second.IsMain)
	assert.Equal(t, 1, second.SortOrder)
}

func TestUploadImage_UnknownCenter(t *testing.T) {
	_, svc, _ := newCenterFixture(t)

	_, err := svc.UploadImage(context.Background(), "missing", nil, uploadHeader("front.jpg"))
	assert.ErrorIs(t, err, center.ErrCenterNotFound)
}

func TestSetMainImage_MovesFlag(t *testing.T) {
	_, svc, centerID := newCenterFixture(t)

	_, err := svc.UploadImage(context.Background(), centerID, nil, uploadHeader("a.jpg"))
	require.NoError(t, err)
	second, err := svc.UploadImage(context.Background(), centerID, nil, uploadHeader("b.jpg"))
	require.NoError(t, err)

	require.NoError(t, svc.SetMainImage(context.Background(), centerID, second.ID))

	images, err := svc.ListImages(context.Background(), centerID)
	require.NoError(t, err)
	require.Len(t, images, 2)
	for _, img := range images {
		assert.Equal(t, img.ID == second.ID, img.IsMain)
	}
}

func TestSetMainImage_WrongCenter(t *testing.T) {
	_, svc, centerID := newCenterFixture(t)

	other, err := svc.CreateCenter(context.Background(), center.CreateCenterRequest{Name: "Hongdae"})
	require.NoError(t, err)

	img, err := svc.UploadImage(context.Background(), centerID, nil, uploadHeader("a.jpg"))
	require.NoError(t, err)

	assert.ErrorIs(t, svc.SetMainImage(context.Background(), other.ID, img.ID), center.ErrCenterImageNotFound)
}

func TestDeleteImage(t *testing.T) {
	repo, svc, centerID := newCenterFixture(t)

	img, err := svc.UploadImage(context.Background(), centerID, nil, uploadHeader("a.jpg"))
	require.NoError(t, err)

	require.NoError(t, svc.DeleteImage(context.Background(), img.ID))
	assert.Empty(t, repo.images)

	assert.ErrorIs(t, svc.DeleteImage(context.Background(), img.ID), center.ErrCenterImageNotFound)
}
