package user

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"

	"github.com/vitalfit/vitalfit-backend-go/internal/domain/user"
	"github.com/vitalfit/vitalfit-backend-go/internal/service/file"
)

// profileImageURLTTL only matters for signed-URL storage backends;
// local storage returns a static path.
const profileImageURLTTL = 24 * time.Hour

type UserServiceImpl struct {
	userRepo user.UserRepository
	fileSvc  file.FileService
}

func NewUserService(userRepo user.UserRepository, fileSvc file.FileService) user.UserService {
	return &UserServiceImpl{
		userRepo: userRepo,
		fileSvc:  fileSvc,
	}
}

func (s *UserServiceImpl) CreateUser(ctx context.Context, req user.CreateUserRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	joinDate, _ := time.Parse(time.DateOnly, req.JoinDate)

	entity := user.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Phone:        req.Phone,
		Role:         user.Role(req.Role),
		PositionID:   req.PositionID,
		TeamID:       req.TeamID,
		CenterID:     req.CenterID,
		JoinDate:     joinDate,
		Status:       user.StatusActive,
		Nickname:     req.Nickname,
		License:      req.License,
		Experience:   req.Experience,
		Education:    req.Education,
		Instagram:    req.Instagram,
		Shift:        req.Shift,
	}

	if err := s.userRepo.Create(ctx, &entity); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return user.UserResponse{}, user.ErrUserEmailExists
		}
		return user.UserResponse{}, fmt.Errorf("failed to create user: %w", err)
	}

	return user.ToResponse(entity, nil), nil
}

func (s *UserServiceImpl) GetUser(ctx context.Context, id string) (user.UserResponse, error) {
	entity, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return user.UserResponse{}, err
	}
	return user.ToResponse(entity, s.profileImageURL(ctx, entity)), nil
}

func (s *UserServiceImpl) ListUsers(ctx context.Context, q user.ListUsersQuery) ([]user.UserResponse, error) {
	entities, err := s.userRepo.List(ctx, q)
	if err != nil {
		return nil, err
	}

	responses := make([]user.UserResponse, 0, len(entities))
	for _, entity := range entities {
		responses = append(responses, user.ToResponse(entity, s.profileImageURL(ctx, entity)))
	}
	return responses, nil
}

func (s *UserServiceImpl) ListTrainersByCenter(ctx context.Context, centerID string) ([]user.UserResponse, error) {
	entities, err := s.userRepo.ListTrainersByCenter(ctx, centerID)
	if err != nil {
		return nil, err
	}

	responses := make([]user.UserResponse, 0, len(entities))
	for _, entity := range entities {
		responses = append(responses, user.ToResponse(entity, s.profileImageURL(ctx, entity)))
	}
	return responses, nil
}

func (s *UserServiceImpl) UpdateUser(ctx context.Context, req user.UpdateUserRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	entity, err := s.userRepo.GetByID(ctx, req.ID)
	if err != nil {
		return err
	}

	if req.Name != nil {
		entity.Name = *req.Name
	}
	if req.Phone != nil {
		entity.Phone = req.Phone
	}
	if req.Role != nil {
		entity.Role = user.Role(*req.Role)
	}
	if req.PositionID != nil {
		entity.PositionID = req.PositionID
	}
	if req.TeamID != nil {
		entity.TeamID = req.TeamID
	}
	if req.CenterID != nil {
		entity.CenterID = *req.CenterID
	}
	if req.Status != nil {
		entity.Status = user.UserStatus(*req.Status)
		// Reactivating an account clears the login lock.
		if entity.Status == user.StatusActive {
			entity.LoginAttempts = 0
			entity.IsLocked = false
		}
	}
	if req.LeaveDate != nil {
		leaveDate, _ := time.Parse(time.DateOnly, *req.LeaveDate)
		entity.LeaveDate = &leaveDate
	}
	if req.Nickname != nil {
		entity.Nickname = req.Nickname
	}
	if req.License != nil {
		entity.License = req.License
	}
	if req.Experience != nil {
		entity.Experience = req.Experience
	}
	if req.Education != nil {
		entity.Education = req.Education
	}
	if req.Instagram != nil {
		entity.Instagram = req.Instagram
	}
	if req.Shift != nil {
		entity.Shift = req.Shift
	}

	return s.userRepo.Update(ctx, &entity)
}

func (s *UserServiceImpl) ChangePassword(ctx context.Context, req user.ChangePasswordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	entity, err := s.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(entity.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return user.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return s.userRepo.UpdatePassword(ctx, req.UserID, string(hash))
}

func (s *UserServiceImpl) UploadProfileImage(ctx context.Context, userID string, f multipart.File, header *multipart.FileHeader) (user.UserResponse, error) {
	entity, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return user.UserResponse{}, err
	}

	path, err := s.fileSvc.UploadProfileImage(ctx, userID, f, header.Filename)
	if err != nil {
		return user.UserResponse{}, err
	}

	if entity.ProfileImagePath != nil {
		// Old image is stale either way; the new one is already stored.
		_ = s.fileSvc.DeleteFile(ctx, *entity.ProfileImagePath)
	}

	if err := s.userRepo.UpdateProfileImage(ctx, userID, &path); err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to save profile image path: %w", err)
	}

	entity.ProfileImagePath = &path
	return user.ToResponse(entity, s.profileImageURL(ctx, entity)), nil
}

func (s *UserServiceImpl) DeleteUser(ctx context.Context, id string) error {
	if _, err := s.userRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.userRepo.Delete(ctx, id)
}

func (s *UserServiceImpl) profileImageURL(ctx context.Context, entity user.User) *string {
	if entity.ProfileImagePath == nil {
		return nil
	}
	url, err := s.fileSvc.GetFileURL(ctx, *entity.ProfileImagePath, profileImageURLTTL)
	if err != nil {
		return nil
	}
	return &url
}
