package auth

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log/slog"
	"math/big"

	"github.com/go-chi/jwtauth/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/vitalfit/vitalfit-backend-go/internal/domain/auth"
	"github.com/vitalfit/vitalfit-backend-go/internal/domain/user"
	"github.com/vitalfit/vitalfit-backend-go/internal/pkg/email"
	"github.com/vitalfit/vitalfit-backend-go/internal/pkg/jwt"
)

// maxLoginAttempts locks the account once reached; an admin has to
// unlock it through the user update endpoint.
const maxLoginAttempts = 5

type AuthServiceImpl struct {
	userRepo   user.UserRepository
	tokenRepo  auth.RefreshTokenRepository
	jwtService jwt.Service
	emailSvc   email.EmailService
}

func NewAuthService(
	userRepo user.UserRepository,
	tokenRepo auth.RefreshTokenRepository,
	jwtService jwt.Service,
	emailSvc email.EmailService,
) auth.AuthService {
	return &AuthServiceImpl{
		userRepo:   userRepo,
		tokenRepo:  tokenRepo,
		jwtService: jwtService,
		emailSvc:   emailSvc,
	}
}

func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	account, err := a.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.LoginResponse{}, user.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if account.IsLocked {
		return auth.LoginResponse{}, user.ErrAccountLocked
	}
	if account.Status != user.StatusActive {
		return auth.LoginResponse{}, user.ErrAccountInactive
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)); err != nil {
		attempts := account.LoginAttempts + 1
		locked := attempts >= maxLoginAttempts
		if err := a.userRepo.RecordFailedLogin(ctx, account.ID, attempts, locked); err != nil {
			slog.Error("failed to record login attempt", "user_id", account.ID, "error", err)
		}
		if locked {
			return auth.LoginResponse{}, user.ErrAccountLocked
		}
		return auth.LoginResponse{}, user.ErrInvalidCredentials
	}

	accessToken, _, err := a.jwtService.GenerateAccessToken(account.ID, account.Email, account.CenterID, account.Role)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}
	refreshToken, refreshExpiresAt, err := a.jwtService.GenerateRefreshToken(account.ID)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to create refresh token: %w", err)
	}

	if err := a.tokenRepo.Store(ctx, account.ID, refreshToken, refreshExpiresAt); err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to save refresh token: %w", err)
	}

	if err := a.userRepo.RecordLogin(ctx, account.ID); err != nil {
		slog.Error("failed to record login", "user_id", account.ID, "error", err)
	}

	return auth.LoginResponse{
		AccessToken:      accessToken,
		User:             user.ToResponse(account, nil),
		RefreshToken:     refreshToken,
		RefreshExpiresAt: refreshExpiresAt,
	}, nil
}

func (a *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (auth.RefreshResponse, error) {
	token, err := jwtauth.VerifyToken(a.jwtService.JWTAuth(), refreshToken)
	if err != nil {
		return auth.RefreshResponse{}, auth.ErrInvalidRefreshToken
	}

	claims, err := token.AsMap(ctx)
	if err != nil {
		return auth.RefreshResponse{}, auth.ErrInvalidRefreshToken
	}
	if tokenType, ok := claims["type"].(string); !ok || tokenType != "refresh" {
		return auth.RefreshResponse{}, auth.ErrInvalidRefreshToken
	}

	userID, revoked, err := a.tokenRepo.IsRevoked(ctx, refreshToken)
	if err != nil {
		return auth.RefreshResponse{}, auth.ErrInvalidRefreshToken
	}
	if revoked {
		return auth.RefreshResponse{}, auth.ErrTokenRevoked
	}

	account, err := a.userRepo.GetByID(ctx, userID)
	if err != nil {
		return auth.RefreshResponse{}, auth.ErrInvalidRefreshToken
	}
	if account.IsLocked || account.Status != user.StatusActive {
		return auth.RefreshResponse{}, user.ErrAccountInactive
	}

	// Rotate: revoke the used token and issue a fresh pair.
	if err := a.tokenRepo.Revoke(ctx, refreshToken); err != nil {
		return auth.RefreshResponse{}, fmt.Errorf("failed to revoke refresh token: %w", err)
	}

	accessToken, _, err := a.jwtService.GenerateAccessToken(account.ID, account.Email, account.CenterID, account.Role)
	if err != nil {
		return auth.RefreshResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}
	newRefreshToken, expiresAt, err := a.jwtService.GenerateRefreshToken(account.ID)
	if err != nil {
		return auth.RefreshResponse{}, fmt.Errorf("failed to create refresh token: %w", err)
	}
	if err := a.tokenRepo.Store(ctx, account.ID, newRefreshToken, expiresAt); err != nil {
		return auth.RefreshResponse{}, fmt.Errorf("failed to save refresh token: %w", err)
	}

	return auth.RefreshResponse{
		AccessToken:      accessToken,
		RefreshToken:     newRefreshToken,
		RefreshExpiresAt: expiresAt,
	}, nil
}

func (a *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	return a.tokenRepo.Revoke(ctx, refreshToken)
}

func (a *AuthServiceImpl) ForgotPassword(ctx context.Context, req auth.ForgotPasswordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	account, err := a.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			// Silent success so the endpoint cannot enumerate accounts.
			return nil
		}
		return fmt.Errorf("failed to get user by email: %w", err)
	}

	tempPassword, err := generateTempPassword(10)
	if err != nil {
		return fmt.Errorf("failed to generate temporary password: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(tempPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash temporary password: %w", err)
	}

	if err := a.userRepo.UpdatePassword(ctx, account.ID, string(hash)); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	if err := a.emailSvc.SendTempPassword(account.Email, account.Name, tempPassword); err != nil {
		return fmt.Errorf("failed to send temporary password email: %w", err)
	}
	return nil
}

// tempPasswordChars avoids ambiguous characters like 0/O and 1/l.
const tempPasswordChars = "abcdefghjkmnpqrstuvwxyzABCDEFGHJKMNPQRSTUVWXYZ23456789"

func generateTempPassword(length int) (string, error) {
	out := make([]byte, length)
	for i := range out {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(tempPasswordChars))))
		if err != nil {
			return "", err
		}
		out[i] = tempPasswordChars[n.Int64()]
	}
	return string(out), nil
}
