package infra

import (
	"context"
	"net/http"
	"strings"

	"github.com/s21platform/conversation-service/internal/config"
	"github.com/s21platform/conversation-service/internal/model"
)

const (
	headerUserUUID = "X-User-Uuid"
	headerUserRole = "X-User-Role"
)

// AuthInterceptorHTTP trusts the identity headers set by the gateway. Authentication
// itself happens upstream.
func AuthInterceptorHTTP(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := strings.TrimSpace(r.Header.Get(headerUserUUID))
		if userID == "" {
			http.Error(w, `{"error":"missing user uuid"}`, http.StatusUnauthorized)
			return
		}

		role := model.UserRole(strings.ToLower(strings.TrimSpace(r.Header.Get(headerUserRole))))
		switch role {
		case "":
			role = model.UserRoleUser
		case model.UserRoleUser, model.UserRoleAgent, model.UserRoleAdmin:
		default:
			http.Error(w, `{"error":"unknown user role"}`, http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), config.KeyUUID, userID)
		ctx = context.WithValue(ctx, config.KeyRole, string(role))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
