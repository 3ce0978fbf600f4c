package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/Varun5711/taskhub/internal/auth"
	"github.com/Varun5711/taskhub/internal/logger"
	"github.com/Varun5711/taskhub/internal/models"
)

type contextKey string

const UserIDKey contextKey = "user_id"

type AuthMiddleware struct {
	jwtManager *auth.JWTManager
	log        *logger.Logger
}

func NewAuthMiddleware(jwtManager *auth.JWTManager) *AuthMiddleware {
	return &AuthMiddleware{
		jwtManager: jwtManager,
		log:        logger.New("auth-middleware"),
	}
}

// RequireAuth rejects requests without a valid bearer token and puts the
// owner id into the request context for downstream handlers.
func (m *AuthMiddleware) RequireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			unauthorized(w, "Authorization header required")
			return
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			unauthorized(w, "Authorization header must be a Bearer token")
			return
		}
		token := authHeader[7:]

		claims, err := m.jwtManager.ValidateToken(token)
		if err != nil {
			m.log.Debug("Invalid token: %v", err)
			unauthorized(w, "Invalid or expired token")
			return
		}

		ctx := context.WithValue(r.Context(), UserIDKey, claims.UserID)
		next.ServeHTTP(w, r.WithContext(ctx))
	}
}

func GetUserID(ctx context.Context) string {
	if userID, ok := ctx.Value(UserIDKey).(string); ok {
		return userID
	}
	return ""
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(models.ErrorResponse{
		Error:   "unauthorized",
		Message: message,
	})
}
