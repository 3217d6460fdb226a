package center

import (
	"time"

	"github.com/vitalfit/vitalfit-backend-go/internal/pkg/validator"
)

type CreateCenterRequest struct {
	Name    string  `json:"name"`
	Address *string `json:"address"`
	Phone   *string `json:"phone"`
}

func (r *CreateCenterRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if len(r.Name) > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not exceed 100 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateCenterRequest struct {
	ID       string  `json:"-"`
	Name     *string `json:"name"`
	Address  *string `json:"address"`
	Phone    *string `json:"phone"`
	IsActive *bool   `json:"is_active"`
}

func (r *UpdateCenterRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CenterResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Address      *string   `json:"address,omitempty"`
	Phone        *string   `json:"phone,omitempty"`
	IsActive     bool      `json:"is_active"`
	TrainerCount *int      `json:"trainer_count,omitempty"`
	MemberCount  *int      `json:"member_count,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type ImageResponse struct {
	ID        string    `json:"id"`
	CenterID  string    `json:"center_id"`
	ImageName string    `json:"image_name"`
	ImageURL  *string   `json:"image_url,omitempty"`
	IsMain    bool      `json:"is_main"`
	SortOrder int       `json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
}

func ToImageResponse(img Image, imageURL *string) ImageResponse {
	return ImageResponse{
		ID:        img.ID,
		CenterID:  img.CenterID,
		ImageName: img.ImageName,
		ImageURL:  imageURL,
		IsMain:    img.IsMain,
		SortOrder: img.SortOrder,
		CreatedAt: img.CreatedAt,
	}
}

func ToResponse(c Center) CenterResponse {
	return CenterResponse{
		ID:           c.ID,
		Name:         c.Name,
		Address:      c.Address,
		Phone:        c.Phone,
		IsActive:     c.IsActive,
		TrainerCount: c.TrainerCount,
		MemberCount:  c.MemberCount,
		CreatedAt:    c.CreatedAt,
	}
}
