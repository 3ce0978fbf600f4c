package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	usermodel "github.com/Varun5711/taskhub/internal/models/user"
)

func TestSignup(t *testing.T) {
	mux := setupAPI(t)

	w := doRequest(mux, http.MethodPost, "/api/auth/signup", "", usermodel.SignupRequest{
		Name:     "New User",
		Email:    "new@example.com",
		Password: "password123",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var resp usermodel.AuthResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Token == "" {
		t.Error("expected a token")
	}
	if resp.User == nil || resp.User.Email != "new@example.com" {
		t.Errorf("unexpected user in response: %+v", resp.User)
	}
}

func TestSignup_ShortPassword(t *testing.T) {
	mux := setupAPI(t)

	w := doRequest(mux, http.MethodPost, "/api/auth/signup", "", usermodel.SignupRequest{
		Name:     "A",
		Email:    "a@x.com",
		Password: "secret1",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 for a 7-character password, got %d: %s", w.Code, w.Body.String())
	}

	var resp usermodel.AuthResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Token == "" {
		t.Error("expected a token")
	}
}

func TestSignup_DuplicateEmail(t *testing.T) {
	mux := setupAPI(t)
	signupUser(t, mux, "dup@example.com")

	w := doRequest(mux, http.MethodPost, "/api/auth/signup", "", usermodel.SignupRequest{
		Name:     "Second",
		Email:    "DUP@example.com",
		Password: "password123",
	})
	if w.Code != http.StatusConflict {
		t.Errorf("expected 409 for duplicate email, got %d", w.Code)
	}
}

func TestSignup_MissingFields(t *testing.T) {
	mux := setupAPI(t)

	w := doRequest(mux, http.MethodPost, "/api/auth/signup", "", usermodel.SignupRequest{
		Email:    "nopassword@example.com",
		Name:     "No Password",
		Password: "",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for missing password, got %d", w.Code)
	}
}

func TestLogin(t *testing.T) {
	mux := setupAPI(t)
	signupUser(t, mux, "login@example.com")

	w := doRequest(mux, http.MethodPost, "/api/auth/login", "", usermodel.LoginRequest{
		Email:    "login@example.com",
		Password: "password123",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp usermodel.AuthResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Token == "" {
		t.Error("expected a token")
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	mux := setupAPI(t)
	signupUser(t, mux, "wrongpw@example.com")

	w := doRequest(mux, http.MethodPost, "/api/auth/login", "", usermodel.LoginRequest{
		Email:    "wrongpw@example.com",
		Password: "not-the-password",
	})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for wrong password, got %d", w.Code)
	}
}

func TestLogin_UnknownEmail(t *testing.T) {
	mux := setupAPI(t)

	w := doRequest(mux, http.MethodPost, "/api/auth/login", "", usermodel.LoginRequest{
		Email:    "ghost@example.com",
		Password: "password123",
	})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for unknown email, got %d", w.Code)
	}
}

func TestProfile(t *testing.T) {
	mux := setupAPI(t)
	token := signupUser(t, mux, "profile@example.com")

	w := doRequest(mux, http.MethodGet, "/api/auth/profile", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp usermodel.ProfileResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.User == nil || resp.User.Email != "profile@example.com" {
		t.Errorf("unexpected profile: %+v", resp.User)
	}

	w = doRequest(mux, http.MethodGet, "/api/auth/profile", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without token, got %d", w.Code)
	}
}
