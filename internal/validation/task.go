package validation

import "errors"

var (
	ErrTitleRequired       = errors.New("title is required")
	ErrDescriptionRequired = errors.New("description is required")
	ErrTitleTooLong        = errors.New("title must be at most 100 characters")
	ErrDescriptionTooLong  = errors.New("description must be at most 500 characters")
)

const (
	MaxTitleLength       = 100
	MaxDescriptionLength = 500
)

// ValidateCreateTask checks the required fields for task creation. Length
// limits are left to the schema; clients that want early feedback use
// ValidateTaskLengths instead.
func ValidateCreateTask(title, description string) error {
	if title == "" {
		return ErrTitleRequired
	}
	if description == "" {
		return ErrDescriptionRequired
	}
	return nil
}

// ValidateTaskLengths mirrors the column limits for client-side pre-checks.
func ValidateTaskLengths(title, description string) error {
	if len(title) > MaxTitleLength {
		return ErrTitleTooLong
	}
	if len(description) > MaxDescriptionLength {
		return ErrDescriptionTooLong
	}
	return nil
}

// IsTaskStatus reports whether s is one of the two recognized status values.
func IsTaskStatus(s string) bool {
	return s == "pending" || s == "completed"
}

// IsValidationError reports whether err is one of the server-enforced
// checks that map to a 400. The client-side mirrors (length floors and
// limits) are not listed: they never reach a handler.
func IsValidationError(err error) bool {
	for _, target := range []error{
		ErrTitleRequired,
		ErrDescriptionRequired,
		ErrNameRequired,
		ErrEmailRequired,
		ErrPasswordRequired,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
