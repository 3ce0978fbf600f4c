package validation

import "errors"

var (
	ErrNameRequired     = errors.New("name is required")
	ErrEmailRequired    = errors.New("email is required")
	ErrPasswordRequired = errors.New("password is required")
	ErrPasswordTooShort = errors.New("password must be at least 8 characters")
)

const MinPasswordLength = 8

// ValidateSignup checks the required fields only. Any non-empty password is
// accepted server-side; clients that want a length floor use
// ValidatePasswordLength.
func ValidateSignup(name, email, password string) error {
	if name == "" {
		return ErrNameRequired
	}
	if email == "" {
		return ErrEmailRequired
	}
	if password == "" {
		return ErrPasswordRequired
	}
	return nil
}

// ValidatePasswordLength is a client-side pre-check, like ValidateTaskLengths.
func ValidatePasswordLength(password string) error {
	if len(password) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	return nil
}

func ValidateLogin(email, password string) error {
	if email == "" {
		return ErrEmailRequired
	}
	if password == "" {
		return ErrPasswordRequired
	}
	return nil
}
