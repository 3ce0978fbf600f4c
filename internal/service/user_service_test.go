package service

import (
	"context"
	"testing"
	"time"

	"github.com/Varun5711/taskhub/internal/auth"
	usermodel "github.com/Varun5711/taskhub/internal/models/user"
	"github.com/Varun5711/taskhub/internal/storage"
	"github.com/Varun5711/taskhub/internal/validation"
)

func newTestUserService() *UserService {
	store := storage.NewMemoryUserStorage()
	jwtManager := auth.NewJWTManager("test-secret", time.Hour)
	return NewUserService(store, jwtManager)
}

func TestSignup(t *testing.T) {
	svc := newTestUserService()

	user, token, err := svc.Signup(context.Background(), &usermodel.SignupRequest{
		Name:     "Alice",
		Email:    "a@x.com",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID == "" {
		t.Error("expected user ID to be set")
	}
	if token == "" {
		t.Error("expected a token")
	}
	if user.Email != "a@x.com" {
		t.Errorf("unexpected email %s", user.Email)
	}
}

func TestSignup_ShortPasswordAccepted(t *testing.T) {
	svc := newTestUserService()

	// Password length is a client-side concern; the server only requires
	// the field to be present.
	user, token, err := svc.Signup(context.Background(), &usermodel.SignupRequest{
		Name:     "Alice",
		Email:    "a@x.com",
		Password: "secret1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user == nil || token == "" {
		t.Error("expected user and token for a 7-character password")
	}
}

func TestSignup_NormalizesEmail(t *testing.T) {
	svc := newTestUserService()
	ctx := context.Background()

	_, _, err := svc.Signup(ctx, &usermodel.SignupRequest{
		Name: "Alice", Email: "  A@X.com ", Password: "secret123",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Uniqueness is case-insensitive.
	_, _, err = svc.Signup(ctx, &usermodel.SignupRequest{
		Name: "Alice Again", Email: "a@x.com", Password: "secret123",
	})
	if err != ErrEmailTaken {
		t.Errorf("expected ErrEmailTaken, got %v", err)
	}
}

func TestSignup_Validation(t *testing.T) {
	svc := newTestUserService()
	ctx := context.Background()

	cases := []struct {
		name string
		req  *usermodel.SignupRequest
	}{
		{"missing name", &usermodel.SignupRequest{Email: "a@x.com", Password: "secret123"}},
		{"missing email", &usermodel.SignupRequest{Name: "A", Password: "secret123"}},
		{"missing password", &usermodel.SignupRequest{Name: "A", Email: "a@x.com"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := svc.Signup(ctx, tc.req)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !validation.IsValidationError(err) {
				t.Errorf("expected a validation error, got %v", err)
			}
		})
	}
}

func TestLogin(t *testing.T) {
	svc := newTestUserService()
	ctx := context.Background()

	if _, _, err := svc.Signup(ctx, &usermodel.SignupRequest{
		Name: "Alice", Email: "a@x.com", Password: "secret123",
	}); err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	_, _, err := svc.Login(ctx, &usermodel.LoginRequest{Email: "a@x.com", Password: "wrong-pass"})
	if err != ErrInvalidCredentials {
		t.Errorf("expected ErrInvalidCredentials for wrong password, got %v", err)
	}

	user, token, err := svc.Login(ctx, &usermodel.LoginRequest{Email: "a@x.com", Password: "secret123"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token == "" {
		t.Fatal("expected a token")
	}

	// The issued token asserts the right identity.
	claims, err := auth.NewJWTManager("test-secret", time.Hour).ValidateToken(token)
	if err != nil {
		t.Fatalf("token did not validate: %v", err)
	}
	if claims.UserID != user.ID {
		t.Errorf("expected token for %s, got %s", user.ID, claims.UserID)
	}
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc := newTestUserService()

	_, _, err := svc.Login(context.Background(), &usermodel.LoginRequest{
		Email: "nobody@x.com", Password: "whatever1",
	})
	if err != ErrInvalidCredentials {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestProfile(t *testing.T) {
	svc := newTestUserService()
	ctx := context.Background()

	user, _, err := svc.Signup(ctx, &usermodel.SignupRequest{
		Name: "Alice", Email: "a@x.com", Password: "secret123",
	})
	if err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	got, err := svc.Profile(ctx, user.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Email != "a@x.com" || got.Name != "Alice" {
		t.Errorf("unexpected profile: %+v", got)
	}

	if _, err := svc.Profile(ctx, "no-such-user"); err != ErrUserNotFound {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}
