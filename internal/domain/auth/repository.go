package auth

import "context"

// RefreshTokenRepository persists issued refresh tokens so they can be
// revoked server-side before their JWT expiry.
type RefreshTokenRepository interface {
	Store(ctx context.Context, userID, token string, expiresAt int64) error
	// IsRevoked reports whether the token is unknown or revoked, along
	// with the owning user.
	IsRevoked(ctx context.Context, token string) (userID string, revoked bool, err error)
	Revoke(ctx context.Context, token string) error
	DeleteExpired(ctx context.Context) (int64, error)
}
