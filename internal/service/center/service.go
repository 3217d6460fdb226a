package center

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"mime/multipart"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/vitalfit/vitalfit-backend-go/internal/domain/center"
	"github.com/vitalfit/vitalfit-backend-go/internal/service/file"
)

const imageURLTTL = 24 * time.Hour

type CenterServiceImpl struct {
	centerRepo center.CenterRepository
	fileSvc    file.FileService
}

func NewCenterService(centerRepo center.CenterRepository, fileSvc file.FileService) center.CenterService {
	return &CenterServiceImpl{centerRepo: centerRepo, fileSvc: fileSvc}
}

func (s *CenterServiceImpl) CreateCenter(ctx context.Context, req center.CreateCenterRequest) (center.CenterResponse, error) {
	if err := req.Validate(); err != nil {
		return center.CenterResponse{}, err
	}

	entity := center.Center{
		Name:     req.Name,
		Address:  req.Address,
		Phone:    req.Phone,
		IsActive: true,
	}

	if err := s.centerRepo.Create(ctx, &entity); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return center.CenterResponse{}, center.ErrCenterNameExists
		}
		return center.CenterResponse{}, fmt.Errorf("failed to create center: %w", err)
	}

	return center.ToResponse(entity), nil
}

func (s *CenterServiceImpl) GetCenter(ctx context.Context, id string) (center.CenterResponse, error) {
	entity, err := s.centerRepo.GetByID(ctx, id)
	if err != nil {
		return center.CenterResponse{}, err
	}
	return center.ToResponse(entity), nil
}

func (s *CenterServiceImpl) ListCenters(ctx context.Context, activeOnly bool) ([]center.CenterResponse, error) {
	entities, err := s.centerRepo.List(ctx, activeOnly)
	if err != nil {
		return nil, err
	}

	responses := make([]center.CenterResponse, 0, len(entities))
	for _, entity := range entities {
		responses = append(responses, center.ToResponse(entity))
	}
	return responses, nil
}

func (s *CenterServiceImpl) ListCentersWithCounts(ctx context.Context) ([]center.CenterResponse, error) {
	entities, err := s.centerRepo.ListWithCounts(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]center.CenterResponse, 0, len(entities))
	for _, entity := range entities {
		responses = append(responses, center.ToResponse(entity))
	}
	return responses, nil
}

func (s *CenterServiceImpl) UpdateCenter(ctx context.Context, req center.UpdateCenterRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	entity, err := s.centerRepo.GetByID(ctx, req.ID)
	if err != nil {
		return err
	}

	if req.Name != nil {
		entity.Name = *req.Name
	}
	if req.Address != nil {
		entity.Address = req.Address
	}
	if req.Phone != nil {
		entity.Phone = req.Phone
	}
	if req.IsActive != nil {
		entity.IsActive = *req.IsActive
	}

	return s.centerRepo.Update(ctx, &entity)
}

func (s *CenterServiceImpl) DeleteCenter(ctx context.Context, id string) error {
	if _, err := s.centerRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.centerRepo.Delete(ctx, id)
}

func (s *CenterServiceImpl) UploadImage(ctx context.Context, centerID string, f multipart.File, header *multipart.FileHeader) (center.ImageResponse, error) {
	if _, err := s.centerRepo.GetByID(ctx, centerID); err != nil {
		return center.ImageResponse{}, err
	}

	path, err := s.fileSvc.UploadCenterImage(ctx, centerID, f, header.Filename)
	if err != nil {
		return center.ImageResponse{}, err
	}

	existing, err := s.centerRepo.ListImages(ctx, centerID)
	if err != nil {
		return center.ImageResponse{}, err
	}

	// The first uploaded image becomes the main one.
	img := center.Image{
		CenterID:  centerID,
		ImageName: header.Filename,
		ImagePath: path,
		IsMain:    len(existing) == 0,
		SortOrder: len(existing),
	}

	if err := s.centerRepo.CreateImage(ctx, &img); err != nil {
		return center.ImageResponse{}, fmt.Errorf("failed to save center image: %w", err)
	}

	return center.ToImageResponse(img, s.imageURL(ctx, img)), nil
}

func (s *CenterServiceImpl) ListImages(ctx context.Context, centerID string) ([]center.ImageResponse, error) {
	if _, err := s.centerRepo.GetByID(ctx, centerID); err != nil {
		return nil, err
	}

	images, err := s.centerRepo.ListImages(ctx, centerID)
	if err != nil {
		return nil, err
	}

	responses := make([]center.ImageResponse, 0, len(images))
	for _, img := range images {
		responses = append(responses, center.ToImageResponse(img, s.imageURL(ctx, img)))
	}
	return responses, nil
}

func (s *CenterServiceImpl) SetMainImage(ctx context.Context, centerID, imageID string) error {
	img, err := s.centerRepo.GetImageByID(ctx, imageID)
	if err != nil {
		return err
	}
	if img.CenterID != centerID {
		return center.ErrCenterImageNotFound
	}
	return s.centerRepo.SetMainImage(ctx, centerID, imageID)
}

func (s *CenterServiceImpl) DeleteImage(ctx context.Context, imageID string) error {
	img, err := s.centerRepo.GetImageByID(ctx, imageID)
	if err != nil {
		return err
	}

	if err := s.fileSvc.DeleteFile(ctx, img.ImagePath); err != nil {
		slog.Error("failed to delete center image file", "image_id", imageID, "error", err)
	}

	return s.centerRepo.DeleteImage(ctx, imageID)
}

func (s *CenterServiceImpl) imageURL(ctx context.Context, img center.Image) *string {
	url, err := s.fileSvc.GetFileURL(ctx, img.ImagePath, imageURLTTL)
	if err != nil {
		return nil
	}
	return &url
}
