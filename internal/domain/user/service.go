package user

import (
	"context"
	"mime/multipart"
)

// UserService defines business logic for staff accounts
type UserService interface {
	CreateUser(ctx context.Context, req CreateUserRequest) (UserResponse, error)
	GetUser(ctx context.Context, id string) (UserResponse, error)
	ListUsers(ctx context.Context, q ListUsersQuery) ([]UserResponse, error)
	ListTrainersByCenter(ctx context.Context, centerID string) ([]UserResponse, error)
	UpdateUser(ctx context.Context, req UpdateUserRequest) error
	ChangePassword(ctx context.Context, req ChangePasswordRequest) error
	UploadProfileImage(ctx context.Context, userID string, file multipart.File, header *multipart.FileHeader) (UserResponse, error)
	DeleteUser(ctx context.Context, id string) error
}
