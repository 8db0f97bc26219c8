package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestValidationError(t *testing.T) {
	err := NewValidationError("name", "name is required")
	if err.Error() != "name is required" {
		t.Fatalf("expected message 'name is required', got %q", err.Error())
	}
	if err.Field != "name" {
		t.Fatalf("expected field 'name', got %q", err.Field)
	}
}

func TestIsValidationError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"validation error", NewValidationError("price", "bad price"), true},
		{"wrapped validation error", fmt.Errorf("building product: %w", NewValidationError("price", "bad price")), true},
		{"plain error", errors.New("boom"), false},
		{"nil", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidationError(tt.err); got != tt.want {
				t.Errorf("IsValidationError(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}
