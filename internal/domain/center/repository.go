package center

import "context"

// CenterRepository defines persistence for centers
type CenterRepository interface {
	Create(ctx context.Context, c *Center) error
	GetByID(ctx context.Context, id string) (Center, error)
	List(ctx context.Context, activeOnly bool) ([]Center, error)
	ListWithCounts(ctx context.Context) ([]Center, error)
	Update(ctx context.Context, c *Center) error
	Delete(ctx context.Context, id string) error

	CreateImage(ctx context.Context, img *Image) error
	GetImageByID(ctx context.Context, id string) (Image, error)
	// ListImages returns a center's gallery, main image first, then
	// sort order.
	ListImages(ctx context.Context, centerID string) ([]Image, error)
	// SetMainImage flags one image as main and clears the flag on the
	// center's other images.
	SetMainImage(ctx context.Context, centerID, imageID string) error
	DeleteImage(ctx context.Context, id string) error
}
