package user

import "context"

// UserRepository defines persistence for users
type UserRepository interface {
	Create(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	List(ctx context.Context, q ListUsersQuery) ([]User, error)
	ListTrainersByCenter(ctx context.Context, centerID string) ([]User, error)
	Update(ctx context.Context, u *User) error
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	UpdateProfileImage(ctx context.Context, id string, path *string) error
	RecordLogin(ctx context.Context, id string) error
	RecordFailedLogin(ctx context.Context, id string, attempts int, locked bool) error
	Delete(ctx context.Context, id string) error
}
