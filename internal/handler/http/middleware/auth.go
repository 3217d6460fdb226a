package middleware

import (
	"context"
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/vitalfit/vitalfit-backend-go/internal/handler/http/response"
)

type contextKey string

const (
	ContextUserID   contextKey = "user_id"
	ContextCenterID contextKey = "center_id"
	ContextRole     contextKey = "role"
)

// AuthRequired verifies the access token and stashes the caller's
// identity claims in the request context.
func AuthRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, _, err := jwtauth.FromContext(r.Context())
			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}
			if token == nil {
				response.Unauthorized(w, "Missing access token")
				return
			}

			claims, err := token.AsMap(r.Context())
			if err != nil {
				response.Unauthorized(w, "Invalid access token")
				return
			}
			tokenType, ok := claims["type"].(string)
			if !ok || tokenType != "access" {
				response.Unauthorized(w, "Invalid access token")
				return
			}

			ctx := r.Context()
			if userID, ok := claims["user_id"].(string); ok {
				ctx = context.WithValue(ctx, ContextUserID, userID)
			}
			if centerID, ok := claims["center_id"].(string); ok {
				ctx = context.WithValue(ctx, ContextCenterID, centerID)
			}
			if role, ok := claims["role"].(string); ok {
				ctx = context.WithValue(ctx, ContextRole, role)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		}
		return http.HandlerFunc(hfn)
	}
}

// UserID returns the authenticated user's id from the request context.
func UserID(ctx context.Context) string {
	id, _ := ctx.Value(ContextUserID).(string)
	return id
}

// Role returns the authenticated user's role from the request context.
func Role(ctx context.Context) string {
	role, _ := ctx.Value(ContextRole).(string)
	return role
}

// CenterID returns the authenticated user's center from the request context.
func CenterID(ctx context.Context) string {
	id, _ := ctx.Value(ContextCenterID).(string)
	return id
}
