package position

import (
	"time"

	"github.com/vitalfit/vitalfit-backend-go/internal/pkg/validator"
)

type CreatePositionRequest struct {
	Code          string  `json:"code"`
	Name          string  `json:"name"`
	Level         int     `json:"level"`
	BaseSalary    int64   `json:"base_salary"`
	EffectiveDate string  `json:"effective_date"`
	Description   *string `json:"description"`
}

func (r *CreatePositionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Code) {
		errs = append(errs, validator.ValidationError{
			Field:   "code",
			Message: "code is required",
		})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	} else if len(r.Name) > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not exceed 100 characters",
		})
	}
	if r.Level < 1 {
		errs = append(errs, validator.ValidationError{
			Field:   "level",
			Message: "level must be at least 1",
		})
	}
	if r.BaseSalary < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "base_salary",
			Message: "base_salary must not be negative",
		})
	}
	if validator.IsEmpty(r.EffectiveDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "effective_date",
			Message: "effective_date is required",
		})
	} else if _, ok := validator.IsValidDate(r.EffectiveDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "effective_date",
			Message: "effective_date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdatePositionRequest struct {
	ID          string  `json:"-"`
	Name        *string `json:"name"`
	Level       *int    `json:"level"`
	BaseSalary  *int64  `json:"base_salary"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"is_active"`
}

func (r *UpdatePositionRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}
	if r.BaseSalary != nil && *r.BaseSalary < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "base_salary",
			Message: "base_salary must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type PositionResponse struct {
	ID            string  `json:"id"`
	Code          string  `json:"code"`
	Name          string  `json:"name"`
	Level         int     `json:"level"`
	BaseSalary    int64   `json:"base_salary"`
	EffectiveDate string  `json:"effective_date"`
	Description   *string `json:"description,omitempty"`
	IsActive      bool    `json:"is_active"`
}

func ToResponse(p Position) PositionResponse {
	return PositionResponse{
		ID:            p.ID,
		Code:          p.Code,
		Name:          p.Name,
		Level:         p.Level,
		BaseSalary:    p.BaseSalary,
		EffectiveDate: p.EffectiveDate.Format(time.DateOnly),
		Description:   p.Description,
		IsActive:      p.IsActive,
	}
}
