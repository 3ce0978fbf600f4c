package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Varun5711/taskhub/internal/logger"
	"github.com/Varun5711/taskhub/internal/middleware"
	usermodel "github.com/Varun5711/taskhub/internal/models/user"
	"github.com/Varun5711/taskhub/internal/service"
	"github.com/Varun5711/taskhub/internal/validation"
)

type AuthHandler struct {
	userService *service.UserService
	log         *logger.Logger
}

func NewAuthHandler(userService *service.UserService) *AuthHandler {
	return &AuthHandler{
		userService: userService,
		log:         logger.New("auth-handler"),
	}
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req usermodel.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, token, err := h.userService.Signup(r.Context(), &req)
	if err != nil {
		switch {
		case validation.IsValidationError(err):
			respondError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrEmailTaken):
			respondError(w, http.StatusConflict, service.ErrEmailTaken.Error())
		default:
			h.log.Error("Signup failed: %v", err)
			respondError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	respondJSON(w, http.StatusCreated, usermodel.AuthResponse{
		Message: "User registered successfully",
		Token:   token,
		User:    user,
	})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req usermodel.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, token, err := h.userService.Login(r.Context(), &req)
	if err != nil {
		switch {
		case validation.IsValidationError(err):
			respondError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrInvalidCredentials):
			respondError(w, http.StatusUnauthorized, service.ErrInvalidCredentials.Error())
		default:
			h.log.Error("Login failed: %v", err)
			respondError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	respondJSON(w, http.StatusOK, usermodel.AuthResponse{
		Message: "Login successful",
		Token:   token,
		User:    user,
	})
}

func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	userID := middleware.GetUserID(r.Context())

	user, err := h.userService.Profile(r.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			respondError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		h.log.Error("Failed to get profile: %v", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusOK, usermodel.ProfileResponse{User: user})
}
