package auth

import "context"

// AuthService defines authentication flows
type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
	Refresh(ctx context.Context, refreshToken string) (RefreshResponse, error)
	Logout(ctx context.Context, refreshToken string) error
	// ForgotPassword issues a temporary password and mails it to the
	// account's address. Always returns nil for unknown emails so the
	// endpoint cannot be used to enumerate accounts.
	ForgotPassword(ctx context.Context, req ForgotPasswordRequest) error
}
