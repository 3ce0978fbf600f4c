package validation

import (
	"strings"
	"testing"
)

func TestValidateCreateTask_Valid(t *testing.T) {
	if err := ValidateCreateTask("Buy milk", "2% from the corner store"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestValidateCreateTask_MissingTitle(t *testing.T) {
	err := ValidateCreateTask("", "some description")
	if err != ErrTitleRequired {
		t.Errorf("expected ErrTitleRequired, got %v", err)
	}
}

func TestValidateCreateTask_MissingDescription(t *testing.T) {
	err := ValidateCreateTask("some title", "")
	if err != ErrDescriptionRequired {
		t.Errorf("expected ErrDescriptionRequired, got %v", err)
	}
}

func TestValidateTaskLengths_TitleTooLong(t *testing.T) {
	err := ValidateTaskLengths(strings.Repeat("a", 101), "ok")
	if err != ErrTitleTooLong {
		t.Errorf("expected ErrTitleTooLong, got %v", err)
	}
}

func TestValidateTaskLengths_DescriptionTooLong(t *testing.T) {
	err := ValidateTaskLengths("ok", strings.Repeat("a", 501))
	if err != ErrDescriptionTooLong {
		t.Errorf("expected ErrDescriptionTooLong, got %v", err)
	}
}

func TestValidateTaskLengths_AtLimit(t *testing.T) {
	err := ValidateTaskLengths(strings.Repeat("a", 100), strings.Repeat("b", 500))
	if err != nil {
		t.Errorf("expected values at the limit to pass, got %v", err)
	}
}

func TestIsTaskStatus(t *testing.T) {
	cases := map[string]bool{
		"pending":   true,
		"completed": true,
		"archived":  false,
		"Pending":   false,
		"":          false,
	}

	for status, want := range cases {
		if got := IsTaskStatus(status); got != want {
			t.Errorf("IsTaskStatus(%q) = %v, want %v", status, got, want)
		}
	}
}

func TestIsValidationError(t *testing.T) {
	if !IsValidationError(ErrTitleRequired) {
		t.Error("expected ErrTitleRequired to be a validation error")
	}
	if IsValidationError(nil) {
		t.Error("expected nil to not be a validation error")
	}

	// Client-side mirrors are not part of the server taxonomy.
	if IsValidationError(ErrTitleTooLong) {
		t.Error("expected ErrTitleTooLong to not be a validation error")
	}
	if IsValidationError(ErrPasswordTooShort) {
		t.Error("expected ErrPasswordTooShort to not be a validation error")
	}
}
