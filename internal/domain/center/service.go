package center

import (
	"context"
	"mime/multipart"
)

// CenterService defines business logic for centers
type CenterService interface {
	CreateCenter(ctx context.Context, req CreateCenterRequest) (CenterResponse, error)
	GetCenter(ctx context.Context, id string) (CenterResponse, error)
	ListCenters(ctx context.Context, activeOnly bool) ([]CenterResponse, error)
	ListCentersWithCounts(ctx context.Context) ([]CenterResponse, error)
	UpdateCenter(ctx context.Context, req UpdateCenterRequest) error
	DeleteCenter(ctx context.Context, id string) error

	UploadImage(ctx context.Context, centerID string, file multipart.File, header *multipart.FileHeader) (ImageResponse, error)
	ListImages(ctx context.Context, centerID string) ([]ImageResponse, error)
	SetMainImage(ctx context.Context, centerID, imageID string) error
	DeleteImage(ctx context.Context, imageID string) error
}
