package middleware

import (
	"net/http"

	"github.com/vitalfit/vitalfit-backend-go/internal/domain/user"
	"github.com/vitalfit/vitalfit-backend-go/internal/handler/http/response"
)

// AdminOnly restricts a route to head office admins.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if Role(r.Context()) != string(user.RoleAdmin) {
			response.HandleError(w, user.ErrAdminAccessRequired)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ManagerOrAdmin restricts a route to admins and center managers.
func ManagerOrAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role := Role(r.Context())
		if role != string(user.RoleAdmin) && role != string(user.RoleCenterManager) {
			response.HandleError(w, user.ErrManagerAccessRequired)
			return
		}
		next.ServeHTTP(w, r)
	})
}
