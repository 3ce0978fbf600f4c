package handlers

import (
	"net/http"
	"time"

	"github.com/Varun5711/taskhub/internal/middleware"
)

// RouterConfig collects the handlers mounted on the API mux. Analytics and
// RateLimiter are optional; the routes they back are left off when nil.
type RouterConfig struct {
	Auth        *AuthHandler
	Tasks       *TaskHandler
	Analytics   *AnalyticsHandler
	AuthMW      *middleware.AuthMiddleware
	RateLimiter *middleware.RateLimiter
}

// NewRouter builds the HTTP mux for the task service.
func NewRouter(cfg RouterConfig) *http.ServeMux {
	mux := http.NewServeMux()

	signup := http.HandlerFunc(cfg.Auth.Signup)
	login := http.HandlerFunc(cfg.Auth.Login)
	if cfg.RateLimiter != nil {
		mux.Handle("/api/auth/signup", cfg.RateLimiter.Middleware(signup))
		mux.Handle("/api/auth/login", cfg.RateLimiter.Middleware(login))
	} else {
		mux.Handle("/api/auth/signup", signup)
		mux.Handle("/api/auth/login", login)
	}

	mux.HandleFunc("/api/auth/profile", cfg.AuthMW.RequireAuth(cfg.Auth.Profile))

	mux.HandleFunc("/api/tasks", cfg.AuthMW.RequireAuth(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			cfg.Tasks.List(w, r)
		case http.MethodPost:
			cfg.Tasks.Create(w, r)
		default:
			respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
		}
	}))

	if cfg.Analytics != nil {
		mux.HandleFunc("/api/tasks/stats", cfg.AuthMW.RequireAuth(cfg.Analytics.GetStats))
		mux.HandleFunc("/api/tasks/activity", cfg.AuthMW.RequireAuth(cfg.Analytics.GetActivity))
	}

	mux.HandleFunc("/api/tasks/", cfg.AuthMW.RequireAuth(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPut:
			cfg.Tasks.Update(w, r)
		case http.MethodDelete:
			cfg.Tasks.Delete(w, r)
		default:
			respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
		}
	}))

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]interface{}{
			"status":    "healthy",
			"timestamp": time.Now().Unix(),
		})
	})

	return mux
}
