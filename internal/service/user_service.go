package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Varun5711/taskhub/internal/auth"
	"github.com/Varun5711/taskhub/internal/logger"
	usermodel "github.com/Varun5711/taskhub/internal/models/user"
	"github.com/Varun5711/taskhub/internal/storage"
	"github.com/Varun5711/taskhub/internal/validation"
)

var (
	ErrEmailTaken         = errors.New("user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
)

type UserService struct {
	store      storage.UserStore
	jwtManager *auth.JWTManager
	log        *logger.Logger
}

func NewUserService(store storage.UserStore, jwtManager *auth.JWTManager) *UserService {
	return &UserService{
		store:      store,
		jwtManager: jwtManager,
		log:        logger.New("user-service"),
	}
}

// normalizeEmail keeps the uniqueness check case-insensitive.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *UserService) Signup(ctx context.Context, req *usermodel.SignupRequest) (*usermodel.User, string, error) {
	if err := validation.ValidateSignup(req.Name, req.Email, req.Password); err != nil {
		return nil, "", err
	}

	email := normalizeEmail(req.Email)

	existing, err := s.store.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, "", fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, "", ErrEmailTaken
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.store.CreateUser(ctx, email, req.Name, passwordHash)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create user: %w", err)
	}

	token, _, err := s.jwtManager.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	return user, token, nil
}

func (s *UserService) Login(ctx context.Context, req *usermodel.LoginRequest) (*usermodel.User, string, error) {
	if err := validation.ValidateLogin(req.Email, req.Password); err != nil {
		return nil, "", err
	}

	user, err := s.store.GetUserByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		return nil, "", fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, "", ErrInvalidCredentials
	}

	if err := auth.CheckPassword(user.PasswordHash, req.Password); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, _, err := s.jwtManager.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	return user, token, nil
}

func (s *UserService) Profile(ctx context.Context, userID string) (*usermodel.User, error) {
	user, err := s.store.GetUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return user, nil
}
